package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/boraedu/bora-hub-api/infrastructure/database/postgres"
	"github.com/boraedu/bora-hub-api/internal/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks

const sponsorshipsTable = "sponsorships"

var sponsorshipColumns = []string{
	"id", "tenant_id", "sponsor", "COALESCE(contact_name, '')", "COALESCE(contact_email, '')", "value", "status",
	"start_date", "end_date", "COALESCE(counterparts, '')", "created_at", "updated_at",
}

type SponsorshipRepository interface {
	Create(ctx context.Context, sponsorship *domain.Sponsorship) error
	Update(ctx context.Context, sponsorship *domain.Sponsorship) error
	GetByID(ctx context.Context, tenantID, id string) (*domain.Sponsorship, error)
	List(ctx context.Context, tenantID string, status domain.SponsorshipStatus, period domain.Period) ([]*domain.Sponsorship, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type sponsorshipRepository struct {
	db postgres.Queryer
}

func NewSponsorshipRepository(db postgres.Queryer) SponsorshipRepository {
	return &sponsorshipRepository{db: db}
}

func (r *sponsorshipRepository) Create(ctx context.Context, s *domain.Sponsorship) error {
	return execute(ctx, r.db, psql.
		Insert(sponsorshipsTable).
		Columns("id", "tenant_id", "sponsor", "contact_name", "contact_email", "value", "status", "start_date",
			"end_date", "counterparts", "created_at", "updated_at").
		Values(s.ID, s.TenantID, s.Sponsor, nullString(s.ContactName), nullString(s.ContactEmail), s.Value,
			s.Status, s.StartDate, s.EndDate, nullString(s.Counterparts), s.CreatedAt, s.UpdatedAt), false)
}

func (r *sponsorshipRepository) Update(ctx context.Context, s *domain.Sponsorship) error {
	return execute(ctx, r.db, psql.
		Update(sponsorshipsTable).
		Set("sponsor", s.Sponsor).
		Set("contact_name", nullString(s.ContactName)).
		Set("contact_email", nullString(s.ContactEmail)).
		Set("value", s.Value).
		Set("status", s.Status).
		Set("start_date", s.StartDate).
		Set("end_date", s.EndDate).
		Set("counterparts", nullString(s.Counterparts)).
		Set("updated_at", s.UpdatedAt).
		Where(squirrel.Eq{"id": s.ID, "tenant_id": s.TenantID}), true)
}

func (r *sponsorshipRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Sponsorship, error) {
	return selectOne(ctx, r.db, psql.
		Select(sponsorshipColumns...).
		From(sponsorshipsTable).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}), scanSponsorship)
}

// List filtra por status e pela data de cadastro
func (r *sponsorshipRepository) List(ctx context.Context, tenantID string, status domain.SponsorshipStatus, period domain.Period) ([]*domain.Sponsorship, error) {
	builder := psql.
		Select(sponsorshipColumns...).
		From(sponsorshipsTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("created_at DESC")

	if status != "" {
		builder = builder.Where(squirrel.Eq{"status": status})
	}

	return selectAll(ctx, r.db, applyPeriod(builder, "created_at", period), scanSponsorship)
}

func (r *sponsorshipRepository) Delete(ctx context.Context, tenantID, id string) error {
	return execute(ctx, r.db, psql.
		Delete(sponsorshipsTable).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}), true)
}

func scanSponsorship(row rowScanner) (*domain.Sponsorship, error) {
	var s domain.Sponsorship
	err := row.Scan(
		&s.ID,
		&s.TenantID,
		&s.Sponsor,
		&s.ContactName,
		&s.ContactEmail,
		&s.Value,
		&s.Status,
		&s.StartDate,
		&s.EndDate,
		&s.Counterparts,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
