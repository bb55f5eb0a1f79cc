package sponsoring

import (
	"context"
	"time"

	"github.com/boraedu/bora-hub-api/infrastructure/repository"
	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/pkg/utils"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks

type Sponsoring interface {
	Create(ctx context.Context, tenantID string, req *domain.CreateSponsorshipRequest) (*domain.Sponsorship, error)
	Update(ctx context.Context, tenantID, id string, req *domain.UpdateSponsorshipRequest) (*domain.Sponsorship, error)
	Get(ctx context.Context, tenantID, id string) (*domain.Sponsorship, error)
	List(ctx context.Context, tenantID string, status domain.SponsorshipStatus, period domain.Period) ([]*domain.Sponsorship, error)
	Pipeline(ctx context.Context, tenantID string, period domain.Period) ([]domain.PipelineStage, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type Service struct {
	sponsorshipRepo repository.SponsorshipRepository
	now             func() time.Time
}

func NewService(sponsorshipRepo repository.SponsorshipRepository) Sponsoring {
	return &Service{
		sponsorshipRepo: sponsorshipRepo,
		now:             time.Now,
	}
}

func validStatus(status domain.SponsorshipStatus) bool {
	for _, s := range domain.SponsorshipStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func validDates(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return domain.ErrInvalidInput
	}
	return nil
}

func (s *Service) Create(ctx context.Context, tenantID string, req *domain.CreateSponsorshipRequest) (*domain.Sponsorship, error) {
	if req.Value.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	status := domain.SponsorshipStatus(req.Status)
	if status == "" {
		status = domain.SponsorshipStatusProspecting
	}
	if !validStatus(status) {
		return nil, domain.ErrInvalidInput
	}

	startDate, err := domain.ParseOptionalDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := domain.ParseOptionalDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	if err := validDates(startDate, endDate); err != nil {
		return nil, err
	}

	now := s.now()
	sponsorship := &domain.Sponsorship{
		ID:           utils.NewID(),
		TenantID:     tenantID,
		Sponsor:      req.Sponsor,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		Value:        req.Value,
		Status:       status,
		StartDate:    startDate,
		EndDate:      endDate,
		Counterparts: req.Counterparts,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.sponsorshipRepo.Create(ctx, sponsorship); err != nil {
		return nil, errors.Wrap(err, "criando patrocínio")
	}
	return sponsorship, nil
}

func (s *Service) Update(ctx context.Context, tenantID, id string, req *domain.UpdateSponsorshipRequest) (*domain.Sponsorship, error) {
	sponsorship, err := s.sponsorshipRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Sponsor != nil {
		sponsorship.Sponsor = *req.Sponsor
	}
	if req.ContactName != nil {
		sponsorship.ContactName = *req.ContactName
	}
	if req.ContactEmail != nil {
		sponsorship.ContactEmail = *req.ContactEmail
	}
	if req.Counterparts != nil {
		sponsorship.Counterparts = *req.Counterparts
	}
	if req.Value != nil {
		if req.Value.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		sponsorship.Value = *req.Value
	}
	if req.Status != nil {
		status := domain.SponsorshipStatus(*req.Status)
		if !validStatus(status) {
			return nil, domain.ErrInvalidInput
		}
		sponsorship.Status = status
	}
	if req.StartDate != nil {
		if sponsorship.StartDate, err = domain.ParseOptionalDate(req.StartDate); err != nil {
			return nil, err
		}
	}
	if req.EndDate != nil {
		if sponsorship.EndDate, err = domain.ParseOptionalDate(req.EndDate); err != nil {
			return nil, err
		}
	}
	if err := validDates(sponsorship.StartDate, sponsorship.EndDate); err != nil {
		return nil, err
	}

	sponsorship.UpdatedAt = s.now()
	if err := s.sponsorshipRepo.Update(ctx, sponsorship); err != nil {
		return nil, errors.Wrap(err, "atualizando patrocínio")
	}
	return sponsorship, nil
}

func (s *Service) Get(ctx context.Context, tenantID, id string) (*domain.Sponsorship, error) {
	return s.sponsorshipRepo.GetByID(ctx, tenantID, id)
}

func (s *Service) List(ctx context.Context, tenantID string, status domain.SponsorshipStatus, period domain.Period) ([]*domain.Sponsorship, error) {
	if status != "" && !validStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	return s.sponsorshipRepo.List(ctx, tenantID, status, period)
}

// Pipeline resume quantidade e valor por status do funil
func (s *Service) Pipeline(ctx context.Context, tenantID string, period domain.Period) ([]domain.PipelineStage, error) {
	sponsorships, err := s.sponsorshipRepo.List(ctx, tenantID, "", period)
	if err != nil {
		return nil, err
	}
	return domain.BuildPipeline(sponsorships), nil
}

func (s *Service) Delete(ctx context.Context, tenantID, id string) error {
	return s.sponsorshipRepo.Delete(ctx, tenantID, id)
}
