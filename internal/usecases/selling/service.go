package selling

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/boraedu/bora-hub-api/infrastructure/database/postgres"
	"github.com/boraedu/bora-hub-api/infrastructure/repository"
	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/pkg/log"
	"github.com/boraedu/bora-hub-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks

var maxPercent = decimal.NewFromInt(100)

type Selling interface {
	CreateSale(ctx context.Context, tenantID string, req *domain.CreateSaleRequest) (*domain.Sale, error)
	GetSale(ctx context.Context, tenantID, id string) (*domain.Sale, error)
	ListSales(ctx context.Context, tenantID string, filter domain.SaleFilter) ([]*domain.Sale, error)
	DeleteSale(ctx context.Context, tenantID, id string) error
	UpdateInstallmentStatus(ctx context.Context, tenantID, installmentID string, status domain.InstallmentStatus) (*domain.Installment, error)
	ListCommissions(ctx context.Context, tenantID string, filter domain.CommissionFilter) ([]*domain.Commission, error)
	CommissionSummary(ctx context.Context, tenantID string, filter domain.CommissionFilter) ([]*domain.CommissionSummary, error)
	MarkOverdue(ctx context.Context) (int, error)
}

type Service struct {
	saleRepo   repository.SaleRepository
	transactor postgres.Transactor
	now        func() time.Time
}

func NewService(saleRepo repository.SaleRepository, transactor postgres.Transactor) Selling {
	return &Service{
		saleRepo:   saleRepo,
		transactor: transactor,
		now:        time.Now,
	}
}

// CreateSale registra uma venda manual com as parcelas mensais e uma comissão por parcela
func (s *Service) CreateSale(ctx context.Context, tenantID string, req *domain.CreateSaleRequest) (*domain.Sale, error) {
	if !req.TotalValue.IsPositive() {
		return nil, errors.Wrap(domain.ErrInvalidInput, "valor total deve ser positivo")
	}
	if req.CommissionPercent.IsNegative() || req.CommissionPercent.GreaterThan(maxPercent) {
		return nil, errors.Wrap(domain.ErrInvalidInput, "percentual de comissão fora do intervalo 0-100")
	}

	soldAt, err := time.Parse(domain.DateLayout, req.SoldAt)
	if err != nil {
		return nil, errors.Wrap(domain.ErrInvalidInput, "data da venda")
	}
	firstDue, err := time.Parse(domain.DateLayout, req.FirstDueDate)
	if err != nil {
		return nil, errors.Wrap(domain.ErrInvalidInput, "primeiro vencimento")
	}

	values, err := domain.SplitInstallments(req.TotalValue, req.InstallmentsCount)
	if err != nil {
		return nil, errors.Wrap(err, "dividindo parcelas")
	}
	dueDates := domain.MonthlyDueDates(firstDue, req.InstallmentsCount)

	sale := &domain.Sale{
		ID:                utils.NewID(),
		TenantID:          tenantID,
		Source:            domain.SaleSourceManual,
		ExternalID:        req.ExternalID,
		CustomerName:      req.CustomerName,
		CustomerEmail:     req.CustomerEmail,
		Product:           req.Product,
		TotalValue:        req.TotalValue.Round(2),
		InstallmentsCount: req.InstallmentsCount,
		SellerID:          req.SellerID,
		CommissionPercent: req.CommissionPercent,
		Status:            domain.SaleStatusActive,
		SoldAt:            soldAt,
	}
	if sale.ExternalID == "" {
		sale.ExternalID = sale.ID
	}

	sale.Installments = make([]*domain.Installment, 0, len(values))
	for i, value := range values {
		installmentID := utils.NewID()
		sale.Installments = append(sale.Installments, &domain.Installment{
			ID:       installmentID,
			TenantID: tenantID,
			SaleID:   sale.ID,
			Number:   i + 1,
			Value:    value,
			DueDate:  dueDates[i],
			Status:   domain.InstallmentStatusPending,
			Commission: &domain.Commission{
				ID:            utils.NewID(),
				TenantID:      tenantID,
				InstallmentID: installmentID,
				SellerID:      req.SellerID,
				Percent:       req.CommissionPercent,
				Value:         domain.CommissionValue(value, req.CommissionPercent),
				Status:        domain.CommissionStatusPending,
			},
		})
	}

	err = s.transactor.RunInTransaction(ctx, func(tx *sql.Tx) error {
		sales := s.saleRepo.WithTx(tx)

		if err := sales.CreateSale(ctx, sale); err != nil {
			return errors.Wrap(err, "criando venda")
		}
		for _, installment := range sale.Installments {
			if err := sales.CreateInstallment(ctx, installment); err != nil {
				return errors.Wrapf(err, "criando parcela %d", installment.Number)
			}
			if err := sales.CreateCommission(ctx, installment.Commission); err != nil {
				return errors.Wrapf(err, "criando comissão da parcela %d", installment.Number)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"sale_id":      sale.ID,
		"installments": len(sale.Installments),
	}).Info("Venda manual registrada")

	return sale, nil
}

func (s *Service) GetSale(ctx context.Context, tenantID, id string) (*domain.Sale, error) {
	sale, err := s.saleRepo.GetSale(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	sale.Installments, err = s.saleRepo.ListInstallments(ctx, tenantID, id)
	if err != nil {
		return nil, errors.Wrap(err, "listando parcelas")
	}

	return sale, nil
}

func (s *Service) ListSales(ctx context.Context, tenantID string, filter domain.SaleFilter) ([]*domain.Sale, error) {
	return s.saleRepo.ListSales(ctx, tenantID, filter)
}

// DeleteSale remove comissões, parcelas e a venda na mesma transação
func (s *Service) DeleteSale(ctx context.Context, tenantID, id string) error {
	return s.transactor.RunInTransaction(ctx, func(tx *sql.Tx) error {
		sales := s.saleRepo.WithTx(tx)

		if _, err := sales.GetSale(ctx, tenantID, id); err != nil {
			return err
		}
		if err := sales.DeleteCommissions(ctx, tenantID, id); err != nil {
			return errors.Wrap(err, "removendo comissões")
		}
		if err := sales.DeleteInstallments(ctx, tenantID, id); err != nil {
			return errors.Wrap(err, "removendo parcelas")
		}
		return sales.DeleteSale(ctx, tenantID, id)
	})
}

// UpdateInstallmentStatus altera o status da parcela, aplica a regra de comissão e recalcula o status da venda
func (s *Service) UpdateInstallmentStatus(ctx context.Context, tenantID, installmentID string, status domain.InstallmentStatus) (*domain.Installment, error) {
	if !status.Valid() {
		return nil, errors.Wrapf(domain.ErrInvalidInput, "status %q", status)
	}

	var installment *domain.Installment
	err := s.transactor.RunInTransaction(ctx, func(tx *sql.Tx) error {
		sales := s.saleRepo.WithTx(tx)

		var err error
		installment, err = sales.GetInstallment(ctx, tenantID, installmentID)
		if err != nil {
			return err
		}

		return ApplyInstallmentStatus(ctx, sales, installment, status, s.now())
	})
	if err != nil {
		return nil, err
	}

	return installment, nil
}

// ApplyInstallmentStatus é o caminho único de transição de parcelas: grava a parcela,
// a comissão derivada e o novo status da venda. Deve rodar dentro de uma transação.
func ApplyInstallmentStatus(ctx context.Context, sales repository.SaleRepository, installment *domain.Installment, status domain.InstallmentStatus, now time.Time) error {
	installment.ApplyStatus(status, now)
	installment.UpdatedAt = now
	if err := sales.UpdateInstallment(ctx, installment); err != nil {
		return errors.Wrap(err, "atualizando parcela")
	}

	if installment.Commission != nil {
		installment.Commission.FollowInstallment(status, now)
		installment.Commission.UpdatedAt = now
		if err := sales.UpdateCommission(ctx, installment.Commission); err != nil {
			return errors.Wrap(err, "atualizando comissão")
		}
	}

	return RefreshSaleStatus(ctx, sales, installment.TenantID, installment.SaleID)
}

// RefreshSaleStatus recalcula o status da venda a partir das parcelas gravadas
func RefreshSaleStatus(ctx context.Context, sales repository.SaleRepository, tenantID, saleID string) error {
	installments, err := sales.ListInstallments(ctx, tenantID, saleID)
	if err != nil {
		return errors.Wrap(err, "listando parcelas da venda")
	}

	statuses := make([]domain.InstallmentStatus, 0, len(installments))
	for _, installment := range installments {
		statuses = append(statuses, installment.Status)
	}

	if err := sales.UpdateSaleStatus(ctx, tenantID, saleID, domain.DeriveSaleStatus(statuses)); err != nil {
		return errors.Wrap(err, "atualizando status da venda")
	}
	return nil
}

func (s *Service) ListCommissions(ctx context.Context, tenantID string, filter domain.CommissionFilter) ([]*domain.Commission, error) {
	return s.saleRepo.ListCommissions(ctx, tenantID, filter)
}

// CommissionSummary soma as comissões por vendedor e status no período
func (s *Service) CommissionSummary(ctx context.Context, tenantID string, filter domain.CommissionFilter) ([]*domain.CommissionSummary, error) {
	commissions, err := s.saleRepo.ListCommissions(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	return SummarizeCommissions(commissions), nil
}

// SummarizeCommissions agrupa por vendedor; comissões sem vendedor ficam num grupo próprio
func SummarizeCommissions(commissions []*domain.Commission) []*domain.CommissionSummary {
	const unassigned = -1

	bySeller := make(map[int]*domain.CommissionSummary)
	for _, commission := range commissions {
		key := unassigned
		if commission.SellerID != nil {
			key = *commission.SellerID
		}

		summary, ok := bySeller[key]
		if !ok {
			summary = &domain.CommissionSummary{SellerID: commission.SellerID}
			bySeller[key] = summary
		}
		summary.Add(commission.Status, commission.Value)
	}

	keys := make([]int, 0, len(bySeller))
	for key := range bySeller {
		keys = append(keys, key)
	}
	sort.Ints(keys)

	summaries := make([]*domain.CommissionSummary, 0, len(keys))
	for _, key := range keys {
		summaries = append(summaries, bySeller[key])
	}
	return summaries
}

// MarkOverdue marca como vencidas as parcelas pendentes com vencimento anterior a hoje, em todos os tenants
func (s *Service) MarkOverdue(ctx context.Context) (int, error) {
	today := utils.StartOfDay(s.now())

	installments, err := s.saleRepo.ListPendingDueBefore(ctx, today)
	if err != nil {
		return 0, errors.Wrap(err, "listando parcelas vencidas")
	}

	updated := 0
	for _, installment := range installments {
		skipped := false
		err := s.transactor.RunInTransaction(ctx, func(tx *sql.Tx) error {
			sales := s.saleRepo.WithTx(tx)

			// um webhook pode ter quitado a parcela depois da listagem
			current, err := sales.GetInstallmentForUpdate(ctx, installment.TenantID, installment.ID)
			if err != nil {
				return err
			}
			if current.Status != domain.InstallmentStatusPending || !current.DueDate.Before(today) {
				skipped = true
				return nil
			}

			return ApplyInstallmentStatus(ctx, sales, current, domain.InstallmentStatusOverdue, s.now())
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"tenant_id":      installment.TenantID,
				"installment_id": installment.ID,
				"error":          err,
			}).Error("Erro ao marcar parcela como vencida")
			continue
		}
		if skipped {
			logrus.WithField("installment_id", installment.ID).Debug("Parcela mudou de status antes da marcação de vencida")
			continue
		}
		updated++
	}

	return updated, nil
}
