package hotmart

import (
	"context"
	"fmt"
	"sort"
	"time"

	hotmartdomain "github.com/boraedu/bora-hub-api/infrastructure/integrator/hotmart/domain"
	"github.com/boraedu/bora-hub-api/infrastructure/integrator/hotmart/hotmartclient"
	"github.com/boraedu/bora-hub-api/internal/config"
	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks

// Eventos de compra tratados pelo webhook
var purchaseEvents = map[string]bool{
	"PURCHASE_APPROVED":       true,
	"PURCHASE_COMPLETE":       true,
	"PURCHASE_CANCELED":       true,
	"PURCHASE_REFUNDED":       true,
	"PURCHASE_CHARGEBACK":     true,
	"PURCHASE_PROTEST":        true,
	"PURCHASE_EXPIRED":        true,
	"PURCHASE_DELAYED":        true,
	"PURCHASE_BILLET_PRINTED": true,
}

type HotmartIntegrator interface {
	FetchPlans(ctx context.Context, secretName string, period domain.Period) ([]domain.GatewayPlan, error)
	PlansFromWebhook(ctx context.Context, secretName string, event *hotmartdomain.WebhookEvent) ([]domain.GatewayPlan, error)
}

type HotmartService struct {
	cfg       *config.Config
	Client    hotmartclient.Client
	pageDelay time.Duration
}

func New(cfg *config.Config, client hotmartclient.Client) HotmartIntegrator {
	return &HotmartService{
		cfg:       cfg,
		Client:    client,
		pageDelay: time.Duration(cfg.PaymentSync.RequestDelaySeconds) * time.Second,
	}
}

// FetchPlans percorre o histórico de vendas do período e agrupa assinaturas e compras avulsas
func (s *HotmartService) FetchPlans(ctx context.Context, secretName string, period domain.Period) ([]domain.GatewayPlan, error) {
	params := hotmartdomain.SalesHistoryParams{StartDate: period.Start}
	if !period.End.IsZero() {
		params.EndDate = period.EndOfDay()
	}

	items, err := s.listAll(ctx, secretName, params)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"secret_name": secretName,
		"items":       len(items),
	}).Debug("Histórico de vendas da Hotmart carregado")

	return groupPlans(items), nil
}

// PlansFromWebhook converte a notificação; em assinaturas recarrega o histórico do assinante no produto
func (s *HotmartService) PlansFromWebhook(ctx context.Context, secretName string, event *hotmartdomain.WebhookEvent) ([]domain.GatewayPlan, error) {
	if !purchaseEvents[event.Event] || event.Data.Purchase.Transaction == "" {
		return nil, nil
	}

	items := []hotmartdomain.SaleItem{event.Data}
	if event.Data.Purchase.IsSubscription || event.Data.Subscription != nil {
		history, err := s.listAll(ctx, secretName, hotmartdomain.SalesHistoryParams{
			ProductID:  event.Data.Product.ID,
			BuyerEmail: event.Data.Buyer.Email,
		})
		if err != nil {
			return nil, err
		}

		// o histórico pode ainda não refletir a transação notificada
		items = mergeItem(history, event.Data)
	}

	return groupPlans(items), nil
}

func (s *HotmartService) listAll(ctx context.Context, secretName string, params hotmartdomain.SalesHistoryParams) ([]hotmartdomain.SaleItem, error) {
	params.MaxResults = s.cfg.Hotmart.PageSize
	if params.MaxResults <= 0 {
		params.MaxResults = 50
	}

	var items []hotmartdomain.SaleItem
	for {
		page, err := s.Client.GetSalesHistory(ctx, secretName, params)
		if err != nil {
			return nil, fmt.Errorf("erro ao consultar histórico de vendas: %w", err)
		}

		items = append(items, page.Items...)
		if page.PageInfo.NextPageToken == "" || len(page.Items) == 0 {
			return items, nil
		}
		params.PageToken = page.PageInfo.NextPageToken

		if s.pageDelay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(s.pageDelay):
			}
		}
	}
}

func mergeItem(items []hotmartdomain.SaleItem, item hotmartdomain.SaleItem) []hotmartdomain.SaleItem {
	for i := range items {
		if items[i].Purchase.Transaction == item.Purchase.Transaction {
			items[i].Purchase = item.Purchase
			if item.Subscription != nil {
				items[i].Subscription = item.Subscription
			}
			return items
		}
	}
	return append(items, item)
}

func groupPlans(items []hotmartdomain.SaleItem) []domain.GatewayPlan {
	groups := make(map[string][]hotmartdomain.SaleItem)
	order := make([]string, 0)
	for _, item := range items {
		key := item.GroupKey()
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], item)
	}

	plans := make([]domain.GatewayPlan, 0, len(order))
	for _, key := range order {
		group := groups[key]
		sort.SliceStable(group, func(i, j int) bool {
			if group[i].Purchase.RecurrencyNumber != group[j].Purchase.RecurrencyNumber {
				return group[i].Purchase.RecurrencyNumber < group[j].Purchase.RecurrencyNumber
			}
			return group[i].Purchase.OrderDate < group[j].Purchase.OrderDate
		})

		first := group[0]
		plan := domain.GatewayPlan{
			Source:        domain.SaleSourceHotmart,
			ExternalID:    key,
			CustomerName:  first.Buyer.Name,
			CustomerEmail: first.Buyer.Email,
			Product:       first.Product.Name,
			SoldAt:        first.Purchase.OrderedAt(),
			Payments:      make([]domain.GatewayPayment, 0, len(group)),
		}

		// a recorrência é a posição real da cobrança; a janela consultada pode não trazer as anteriores
		numbers := make([]int, len(group))
		count := len(group)
		for i, item := range group {
			numbers[i] = item.Purchase.RecurrencyNumber
			if numbers[i] <= 0 {
				numbers[i] = i + 1
			}
			if numbers[i] > count {
				count = numbers[i]
			}
		}

		for i, item := range group {
			plan.Payments = append(plan.Payments, domain.GatewayPayment{
				ExternalID:    item.Purchase.Transaction,
				GroupKey:      key,
				Number:        numbers[i],
				Count:         count,
				Value:         item.Purchase.Price.Value,
				DueDate:       item.Purchase.OrderedAt(),
				Status:        domain.InstallmentStatusFromHotmart(item.Purchase.Status),
				PaidAt:        item.Purchase.ApprovedAt(),
				CustomerName:  item.Buyer.Name,
				CustomerEmail: item.Buyer.Email,
				Product:       item.Product.Name,
				CreatedAt:     item.Purchase.OrderedAt(),
			})
		}

		plans = append(plans, plan)
	}

	return plans
}
