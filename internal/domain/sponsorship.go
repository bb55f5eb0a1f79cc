package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type SponsorshipStatus string

const (
	SponsorshipStatusProspecting SponsorshipStatus = "prospeccao"
	SponsorshipStatusNegotiating SponsorshipStatus = "negociacao"
	SponsorshipStatusClosed      SponsorshipStatus = "fechado"
	SponsorshipStatusLost        SponsorshipStatus = "perdido"
)

var SponsorshipStatuses = []SponsorshipStatus{
	SponsorshipStatusProspecting,
	SponsorshipStatusNegotiating,
	SponsorshipStatusClosed,
	SponsorshipStatusLost,
}

type Sponsorship struct {
	ID           string            `json:"id"`
	TenantID     string            `json:"tenant_id"`
	Sponsor      string            `json:"sponsor"`
	ContactName  string            `json:"contact_name"`
	ContactEmail string            `json:"contact_email"`
	Value        decimal.Decimal   `json:"value"`
	Status       SponsorshipStatus `json:"status"`
	StartDate    *time.Time        `json:"start_date"`
	EndDate      *time.Time        `json:"end_date"`
	Counterparts string            `json:"counterparts"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// PipelineStage agrega quantidade e valor de patrocínios em um status
type PipelineStage struct {
	Status SponsorshipStatus `json:"status"`
	Count  int               `json:"count"`
	Value  decimal.Decimal   `json:"value"`
}

// BuildPipeline agrupa os patrocínios por status, mantendo todas as etapas na resposta
func BuildPipeline(sponsorships []*Sponsorship) []PipelineStage {
	index := make(map[SponsorshipStatus]int, len(SponsorshipStatuses))
	stages := make([]PipelineStage, len(SponsorshipStatuses))
	for i, status := range SponsorshipStatuses {
		stages[i] = PipelineStage{Status: status, Value: decimal.Zero}
		index[status] = i
	}

	for _, s := range sponsorships {
		i, ok := index[s.Status]
		if !ok {
			continue
		}
		stages[i].Count++
		stages[i].Value = stages[i].Value.Add(s.Value)
	}

	return stages
}

type CreateSponsorshipRequest struct {
	Sponsor      string          `json:"sponsor" validate:"required,max=200"`
	ContactName  string          `json:"contact_name" validate:"max=150"`
	ContactEmail string          `json:"contact_email" validate:"omitempty,email"`
	Value        decimal.Decimal `json:"value"`
	Status       string          `json:"status" validate:"omitempty,oneof=prospeccao negociacao fechado perdido"`
	StartDate    *string         `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate      *string         `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Counterparts string          `json:"counterparts"`
}

type UpdateSponsorshipRequest struct {
	Sponsor      *string          `json:"sponsor" validate:"omitempty,max=200"`
	ContactName  *string          `json:"contact_name" validate:"omitempty,max=150"`
	ContactEmail *string          `json:"contact_email" validate:"omitempty,email"`
	Value        *decimal.Decimal `json:"value"`
	Status       *string          `json:"status" validate:"omitempty,oneof=prospeccao negociacao fechado perdido"`
	StartDate    *string          `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate      *string          `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Counterparts *string          `json:"counterparts"`
}
