package reconciling

import (
	"context"
	"database/sql"
	"time"

	"github.com/boraedu/bora-hub-api/infrastructure/cache"
	"github.com/boraedu/bora-hub-api/infrastructure/database/postgres"
	"github.com/boraedu/bora-hub-api/infrastructure/integrator/asaas"
	asaasdomain "github.com/boraedu/bora-hub-api/infrastructure/integrator/asaas/domain"
	"github.com/boraedu/bora-hub-api/infrastructure/integrator/hotmart"
	hotmartdomain "github.com/boraedu/bora-hub-api/infrastructure/integrator/hotmart/domain"
	"github.com/boraedu/bora-hub-api/infrastructure/repository"
	"github.com/boraedu/bora-hub-api/internal/config"
	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/internal/usecases/selling"
	"github.com/boraedu/bora-hub-api/pkg/log"
	"github.com/boraedu/bora-hub-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks

var ErrInvalidWebhookToken = errors.New("token de webhook inválido")

type Reconciler interface {
	CreateIntegration(ctx context.Context, tenantID string, req *domain.CreateIntegrationRequest) (*domain.Integration, error)
	UpdateIntegration(ctx context.Context, tenantID, id string, req *domain.UpdateIntegrationRequest) (*domain.Integration, error)
	GetIntegration(ctx context.Context, tenantID, id string) (*domain.Integration, error)
	ListIntegrations(ctx context.Context, tenantID string) ([]*domain.Integration, error)
	DeleteIntegration(ctx context.Context, tenantID, id string) error

	ListActiveIntegrations(ctx context.Context) ([]*domain.Integration, error)
	SyncIntegration(ctx context.Context, integration *domain.Integration, period domain.Period) (*domain.SyncResult, error)

	HandleAsaasWebhook(ctx context.Context, token string, event *asaasdomain.WebhookEvent) (bool, error)
	HandleHotmartWebhook(ctx context.Context, token string, event *hotmartdomain.WebhookEvent) (bool, error)
}

type Service struct {
	integrationRepo repository.IntegrationRepository
	saleRepo        repository.SaleRepository
	transactor      postgres.Transactor
	asaas           asaas.AsaasIntegrator
	hotmart         hotmart.HotmartIntegrator
	idempotency     cache.IdempotencyStore
	idempotencyTTL  time.Duration
	now             func() time.Time
}

func NewService(
	cfg *config.Config,
	integrationRepo repository.IntegrationRepository,
	saleRepo repository.SaleRepository,
	transactor postgres.Transactor,
	asaasIntegrator asaas.AsaasIntegrator,
	hotmartIntegrator hotmart.HotmartIntegrator,
	idempotency cache.IdempotencyStore,
) Reconciler {
	ttl := cfg.Redis.IdempotencyTTL
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}

	return &Service{
		integrationRepo: integrationRepo,
		saleRepo:        saleRepo,
		transactor:      transactor,
		asaas:           asaasIntegrator,
		hotmart:         hotmartIntegrator,
		idempotency:     idempotency,
		idempotencyTTL:  ttl,
		now:             time.Now,
	}
}

func (s *Service) CreateIntegration(ctx context.Context, tenantID string, req *domain.CreateIntegrationRequest) (*domain.Integration, error) {
	provider := domain.IntegrationProvider(req.Provider)
	if !provider.Valid() {
		return nil, errors.Wrapf(domain.ErrInvalidInput, "provedor %q", req.Provider)
	}
	if err := validPercent(req.DefaultCommissionPercent); err != nil {
		return nil, err
	}

	now := s.now()
	integration := &domain.Integration{
		ID:                       utils.NewID(),
		TenantID:                 tenantID,
		Provider:                 provider,
		Name:                     req.Name,
		SecretName:               req.SecretName,
		WebhookToken:             req.WebhookToken,
		DefaultSellerID:          req.DefaultSellerID,
		DefaultCommissionPercent: req.DefaultCommissionPercent,
		Active:                   true,
		CreatedAt:                now,
		UpdatedAt:                now,
	}

	if err := s.integrationRepo.Create(ctx, integration); err != nil {
		return nil, errors.Wrap(err, "criando integração")
	}

	return integration, nil
}

func (s *Service) UpdateIntegration(ctx context.Context, tenantID, id string, req *domain.UpdateIntegrationRequest) (*domain.Integration, error) {
	integration, err := s.integrationRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		integration.Name = *req.Name
	}
	if req.SecretName != nil {
		integration.SecretName = *req.SecretName
	}
	if req.WebhookToken != nil {
		integration.WebhookToken = *req.WebhookToken
	}
	if req.DefaultSellerID != nil {
		integration.DefaultSellerID = req.DefaultSellerID
	}
	if req.DefaultCommissionPercent != nil {
		if err := validPercent(*req.DefaultCommissionPercent); err != nil {
			return nil, err
		}
		integration.DefaultCommissionPercent = *req.DefaultCommissionPercent
	}
	if req.Active != nil {
		integration.Active = *req.Active
	}

	integration.UpdatedAt = s.now()
	if err := s.integrationRepo.Update(ctx, integration); err != nil {
		return nil, errors.Wrap(err, "atualizando integração")
	}

	return integration, nil
}

func (s *Service) GetIntegration(ctx context.Context, tenantID, id string) (*domain.Integration, error) {
	return s.integrationRepo.GetByID(ctx, tenantID, id)
}

func (s *Service) ListIntegrations(ctx context.Context, tenantID string) ([]*domain.Integration, error) {
	return s.integrationRepo.List(ctx, tenantID)
}

func (s *Service) DeleteIntegration(ctx context.Context, tenantID, id string) error {
	return s.integrationRepo.Delete(ctx, tenantID, id)
}

func (s *Service) ListActiveIntegrations(ctx context.Context) ([]*domain.Integration, error) {
	return s.integrationRepo.ListActive(ctx)
}

// SyncIntegration busca as cobranças do gateway no período e concilia cada plano numa transação própria
func (s *Service) SyncIntegration(ctx context.Context, integration *domain.Integration, period domain.Period) (*domain.SyncResult, error) {
	result := &domain.SyncResult{IntegrationID: integration.ID}

	plans, err := s.fetchPlans(ctx, integration, period)
	if err != nil {
		result.Error = err.Error()
		return result, errors.Wrapf(err, "buscando cobranças da integração %s", integration.Name)
	}

	for _, plan := range plans {
		changed, err := s.applyPlan(ctx, integration, plan)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"tenant_id":      integration.TenantID,
				"integration_id": integration.ID,
				"external_id":    plan.ExternalID,
				"error":          err,
			}).Error("Erro ao conciliar plano de pagamento")
			result.Error = err.Error()
			continue
		}

		result.Plans++
		result.Installments += len(plan.Payments)
		result.Changed += changed
	}

	if err := s.integrationRepo.TouchLastSync(ctx, integration.ID, s.now()); err != nil {
		logrus.WithError(err).Warnf("Não foi possível registrar a sincronização da integração %s", integration.ID)
	}

	return result, nil
}

func (s *Service) fetchPlans(ctx context.Context, integration *domain.Integration, period domain.Period) ([]domain.GatewayPlan, error) {
	switch integration.Provider {
	case domain.ProviderAsaas:
		return s.asaas.FetchPlans(ctx, integration.SecretName, period)
	case domain.ProviderHotmart:
		return s.hotmart.FetchPlans(ctx, integration.SecretName, period)
	default:
		return nil, errors.Wrapf(domain.ErrInvalidInput, "provedor %q", integration.Provider)
	}
}

// HandleAsaasWebhook devolve false quando o evento já havia sido processado
func (s *Service) HandleAsaasWebhook(ctx context.Context, token string, event *asaasdomain.WebhookEvent) (bool, error) {
	integration, err := s.webhookIntegration(ctx, domain.ProviderAsaas, token)
	if err != nil {
		return false, err
	}

	eventID := event.ID
	if eventID == "" && event.Payment != nil && event.Payment.ID != "" {
		eventID = event.Event + ":" + event.Payment.ID
	}

	return s.handleWebhook(ctx, integration, eventID, func() ([]domain.GatewayPlan, error) {
		return s.asaas.PlansFromWebhook(ctx, integration.SecretName, event)
	})
}

func (s *Service) HandleHotmartWebhook(ctx context.Context, token string, event *hotmartdomain.WebhookEvent) (bool, error) {
	integration, err := s.webhookIntegration(ctx, domain.ProviderHotmart, token)
	if err != nil {
		return false, err
	}

	eventID := event.ID
	if eventID == "" && event.Data.Purchase.Transaction != "" {
		eventID = event.Event + ":" + event.Data.Purchase.Transaction
	}

	return s.handleWebhook(ctx, integration, eventID, func() ([]domain.GatewayPlan, error) {
		return s.hotmart.PlansFromWebhook(ctx, integration.SecretName, event)
	})
}

func (s *Service) webhookIntegration(ctx context.Context, provider domain.IntegrationProvider, token string) (*domain.Integration, error) {
	if token == "" {
		return nil, ErrInvalidWebhookToken
	}

	integration, err := s.integrationRepo.GetByWebhookToken(ctx, provider, token)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrInvalidWebhookToken
	}
	if err != nil {
		return nil, err
	}
	return integration, nil
}

func (s *Service) handleWebhook(ctx context.Context, integration *domain.Integration, eventID string, plans func() ([]domain.GatewayPlan, error)) (bool, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"integration_id": integration.ID,
		"event_id":       eventID,
	})

	// sem identificador não há como deduplicar; o upsert das parcelas continua idempotente
	key := ""
	if eventID == "" {
		logger.Warn("Evento de webhook sem identificador, processando sem deduplicação")
	} else {
		key = string(integration.Provider) + ":" + integration.ID + ":" + eventID
		claimed, err := s.idempotency.Claim(ctx, key, s.idempotencyTTL)
		if err != nil {
			return false, errors.Wrap(err, "registrando evento")
		}
		if !claimed {
			logger.Info("Evento de webhook repetido ignorado")
			return false, nil
		}
	}

	gatewayPlans, err := plans()
	if err != nil {
		s.release(ctx, key)
		return false, errors.Wrap(err, "carregando cobranças do evento")
	}

	for _, plan := range gatewayPlans {
		if _, err := s.applyPlan(ctx, integration, plan); err != nil {
			s.release(ctx, key)
			return false, errors.Wrapf(err, "conciliando plano %s", plan.ExternalID)
		}
	}

	logger.Infof("Webhook processado com %d plano(s)", len(gatewayPlans))
	return true, nil
}

// release devolve o evento para que o gateway possa reenviá-lo
func (s *Service) release(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.idempotency.Release(ctx, key); err != nil {
		log.ForContext(ctx).WithError(err).WithField("key", key).Warn("Erro ao liberar evento de webhook")
	}
}

// applyPlan grava venda, parcelas e comissões do plano numa transação e devolve quantas parcelas mudaram de status
func (s *Service) applyPlan(ctx context.Context, integration *domain.Integration, plan domain.GatewayPlan) (int, error) {
	changed := 0
	err := s.transactor.RunInTransaction(ctx, func(tx *sql.Tx) error {
		var err error
		changed, err = s.upsertPlan(ctx, s.saleRepo.WithTx(tx), integration, plan)
		return err
	})
	return changed, err
}

func (s *Service) upsertPlan(ctx context.Context, sales repository.SaleRepository, integration *domain.Integration, plan domain.GatewayPlan) (int, error) {
	now := s.now()

	count := len(plan.Payments)
	for _, payment := range plan.Payments {
		if payment.Count > count {
			count = payment.Count
		}
		if payment.Number > count {
			count = payment.Number
		}
	}

	sale := &domain.Sale{
		ID:                utils.NewID(),
		TenantID:          integration.TenantID,
		Source:            plan.Source,
		ExternalID:        plan.ExternalID,
		CustomerName:      plan.CustomerName,
		CustomerEmail:     plan.CustomerEmail,
		Product:           plan.Product,
		TotalValue:        plan.Total(),
		InstallmentsCount: count,
		SellerID:          integration.DefaultSellerID,
		CommissionPercent: integration.DefaultCommissionPercent,
		Status:            domain.SaleStatusActive,
		SoldAt:            plan.SoldAt,
	}
	if sale.SoldAt.IsZero() {
		sale.SoldAt = now
	}

	// o upsert devolve o id, o vendedor e o percentual já gravados
	if err := sales.UpsertSale(ctx, sale); err != nil {
		return 0, errors.Wrap(err, "gravando venda")
	}

	current, err := sales.ListInstallments(ctx, sale.TenantID, sale.ID)
	if err != nil {
		return 0, errors.Wrap(err, "listando parcelas")
	}
	byNumber := make(map[int]*domain.Installment, len(current))
	for _, installment := range current {
		byNumber[installment.Number] = installment
	}

	changed := 0
	for _, payment := range plan.Payments {
		externalID := payment.ExternalID
		installment := &domain.Installment{
			ID:         utils.NewID(),
			TenantID:   sale.TenantID,
			SaleID:     sale.ID,
			Number:     payment.Number,
			Value:      payment.Value,
			DueDate:    payment.DueDate,
			PaidAt:     payment.PaidAt,
			ExternalID: &externalID,
		}
		previous, exists := byNumber[payment.Number]

		// o gateway segue informando pendente depois do vencimento; a parcela já marcada como vencida não volta
		status := payment.Status
		if exists && previous.Status == domain.InstallmentStatusOverdue && status == domain.InstallmentStatusPending {
			status = domain.InstallmentStatusOverdue
		}
		installment.ApplyStatus(status, now)

		statusChanged := !exists || previous.Status != status
		if exists && previous.PaidAt != nil && installment.Status == domain.InstallmentStatusPaid {
			installment.PaidAt = previous.PaidAt
		}

		if err := sales.UpsertInstallment(ctx, installment); err != nil {
			return 0, errors.Wrapf(err, "gravando parcela %d", payment.Number)
		}

		valueChanged := exists && !previous.Value.Equal(installment.Value)
		if !statusChanged && !valueChanged && previous.Commission != nil {
			continue
		}
		if statusChanged {
			changed++
		}

		commission := &domain.Commission{
			ID:            utils.NewID(),
			TenantID:      sale.TenantID,
			InstallmentID: installment.ID,
			SellerID:      sale.SellerID,
			Percent:       sale.CommissionPercent,
			Value:         domain.CommissionValue(installment.Value, sale.CommissionPercent),
		}
		if exists && previous.Commission != nil {
			commission.ReleasedAt = previous.Commission.ReleasedAt
		}
		commission.FollowInstallment(installment.Status, now)

		if err := sales.UpsertCommission(ctx, commission); err != nil {
			return 0, errors.Wrapf(err, "gravando comissão da parcela %d", payment.Number)
		}
	}

	// o plano pode trazer só parte das parcelas; o total vem do que está gravado
	if err := sales.RefreshSaleTotals(ctx, sale.TenantID, sale.ID); err != nil {
		return 0, errors.Wrap(err, "recalculando totais da venda")
	}

	if err := selling.RefreshSaleStatus(ctx, sales, sale.TenantID, sale.ID); err != nil {
		return 0, err
	}

	return changed, nil
}

var maxPercent = decimal.NewFromInt(100)

func validPercent(percent decimal.Decimal) error {
	if percent.IsNegative() || percent.GreaterThan(maxPercent) {
		return errors.Wrap(domain.ErrInvalidInput, "percentual de comissão fora do intervalo 0-100")
	}
	return nil
}
