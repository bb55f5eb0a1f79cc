package asaas

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/boraedu/bora-hub-api/infrastructure/integrator/asaas/asaasclient"
	asaasdomain "github.com/boraedu/bora-hub-api/infrastructure/integrator/asaas/domain"
	"github.com/boraedu/bora-hub-api/internal/config"
	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks

// Eventos de webhook que alteram o status de uma cobrança
var paymentEvents = map[string]bool{
	"PAYMENT_CREATED":                      true,
	"PAYMENT_UPDATED":                      true,
	"PAYMENT_CONFIRMED":                    true,
	"PAYMENT_RECEIVED":                     true,
	"PAYMENT_OVERDUE":                      true,
	"PAYMENT_DELETED":                      true,
	"PAYMENT_RESTORED":                     true,
	"PAYMENT_REFUNDED":                     true,
	"PAYMENT_REFUND_IN_PROGRESS":           true,
	"PAYMENT_RECEIVED_IN_CASH_UNDONE":      true,
	"PAYMENT_CHARGEBACK_REQUESTED":         true,
	"PAYMENT_CHARGEBACK_DISPUTE":           true,
	"PAYMENT_AWAITING_CHARGEBACK_REVERSAL": true,
	"PAYMENT_DUNNING_RECEIVED":             true,
	"PAYMENT_DUNNING_REQUESTED":            true,
}

type AsaasIntegrator interface {
	FetchPlans(ctx context.Context, secretName string, period domain.Period) ([]domain.GatewayPlan, error)
	PlansFromWebhook(ctx context.Context, secretName string, event *asaasdomain.WebhookEvent) ([]domain.GatewayPlan, error)
}

type AsaasService struct {
	cfg       *config.Config
	Client    asaasclient.Client
	pageDelay time.Duration
}

func New(cfg *config.Config, client asaasclient.Client) AsaasIntegrator {
	return &AsaasService{
		cfg:       cfg,
		Client:    client,
		pageDelay: time.Duration(cfg.PaymentSync.RequestDelaySeconds) * time.Second,
	}
}

func (s *AsaasService) apiKey(secretName string) (string, error) {
	key, ok := s.cfg.Asaas.Keys[secretName]
	if !ok {
		return "", fmt.Errorf("chave do Asaas não configurada para %q", secretName)
	}
	return key, nil
}

// FetchPlans busca as cobranças criadas no período e agrupa por parcelamento
func (s *AsaasService) FetchPlans(ctx context.Context, secretName string, period domain.Period) ([]domain.GatewayPlan, error) {
	key, err := s.apiKey(secretName)
	if err != nil {
		return nil, err
	}

	payments, err := s.listAll(ctx, key, asaasdomain.ListPaymentsParams{
		CreatedFrom: period.Start,
		CreatedTo:   period.End,
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"secret_name": secretName,
		"payments":    len(payments),
	}).Debug("Cobranças do Asaas carregadas")

	return s.groupPlans(ctx, key, payments), nil
}

// PlansFromWebhook recarrega o parcelamento completo da cobrança notificada
func (s *AsaasService) PlansFromWebhook(ctx context.Context, secretName string, event *asaasdomain.WebhookEvent) ([]domain.GatewayPlan, error) {
	if event.Payment == nil || !paymentEvents[event.Event] {
		return nil, nil
	}

	key, err := s.apiKey(secretName)
	if err != nil {
		return nil, err
	}

	payments := []asaasdomain.Payment{*event.Payment}
	if event.Payment.Installment != "" {
		payments, err = s.listAll(ctx, key, asaasdomain.ListPaymentsParams{Installment: event.Payment.Installment})
		if err != nil {
			return nil, err
		}
	}

	return s.groupPlans(ctx, key, payments), nil
}

func (s *AsaasService) listAll(ctx context.Context, key string, params asaasdomain.ListPaymentsParams) ([]asaasdomain.Payment, error) {
	params.Limit = s.cfg.Asaas.PageLimit
	if params.Limit <= 0 {
		params.Limit = 100
	}

	var payments []asaasdomain.Payment
	for {
		page, err := s.Client.ListPayments(ctx, key, params)
		if err != nil {
			return nil, fmt.Errorf("erro ao listar cobranças (offset %d): %w", params.Offset, err)
		}

		payments = append(payments, page.Data...)
		if !page.HasMore || len(page.Data) == 0 {
			return payments, nil
		}
		params.Offset += len(page.Data)

		if s.pageDelay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(s.pageDelay):
			}
		}
	}
}

func (s *AsaasService) groupPlans(ctx context.Context, key string, payments []asaasdomain.Payment) []domain.GatewayPlan {
	groups := make(map[string][]asaasdomain.Payment)
	order := make([]string, 0)
	for _, payment := range payments {
		groupKey := payment.GroupKey()
		if _, ok := groups[groupKey]; !ok {
			order = append(order, groupKey)
		}
		groups[groupKey] = append(groups[groupKey], payment)
	}

	customers := make(map[string]*asaasdomain.Customer)
	plans := make([]domain.GatewayPlan, 0, len(order))
	for _, groupKey := range order {
		group := groups[groupKey]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].InstallmentNumber < group[j].InstallmentNumber
		})

		first := group[0]
		plan := domain.GatewayPlan{
			Source:     domain.SaleSourceAsaas,
			ExternalID: groupKey,
			Product:    first.Description,
			SoldAt:     first.Created(),
			Payments:   make([]domain.GatewayPayment, 0, len(group)),
		}
		if plan.Product == "" {
			plan.Product = "Cobrança Asaas"
		}

		customer := s.customer(ctx, key, first.Customer, customers)
		plan.CustomerName = first.Customer
		if customer != nil {
			plan.CustomerName = customer.Name
			plan.CustomerEmail = customer.Email
		}

		numbers := make([]int, len(group))
		count := len(group)
		for i, payment := range group {
			numbers[i] = payment.InstallmentNumber
			if numbers[i] <= 0 {
				numbers[i] = i + 1
			}
			if numbers[i] > count {
				count = numbers[i]
			}
		}

		for i, payment := range group {
			plan.Payments = append(plan.Payments, domain.GatewayPayment{
				ExternalID: payment.ID,
				GroupKey:   groupKey,
				Number:     numbers[i],
				Count:      count,
				Value:      payment.Value,
				DueDate:    payment.Due(),
				Status:     paymentStatus(payment),
				PaidAt:     payment.PaidAt(),
				CreatedAt:  payment.Created(),
			})
		}

		plans = append(plans, plan)
	}

	return plans
}

func paymentStatus(payment asaasdomain.Payment) domain.InstallmentStatus {
	if payment.Deleted {
		return domain.InstallmentStatusCancelled
	}
	return domain.InstallmentStatusFromAsaas(payment.Status)
}

// customer consulta o cliente uma única vez por execução; falhas mantêm o id como nome
func (s *AsaasService) customer(ctx context.Context, key, id string, cache map[string]*asaasdomain.Customer) *asaasdomain.Customer {
	if id == "" {
		return nil
	}
	if customer, ok := cache[id]; ok {
		return customer
	}

	customer, err := s.Client.GetCustomer(ctx, key, id)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer": id,
			"error":    err,
		}).Warn("Não foi possível carregar o cliente do Asaas")
	}
	cache[id] = customer
	return customer
}
