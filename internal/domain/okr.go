package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OKRCycle struct {
	ID         string       `json:"id"`
	TenantID   string       `json:"tenant_id"`
	Name       string       `json:"name"`
	StartDate  time.Time    `json:"start_date"`
	EndDate    time.Time    `json:"end_date"`
	Status     string       `json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
	Progress   float64      `json:"progress"`
	Objectives []*Objective `json:"objectives,omitempty"`
}

type Objective struct {
	ID          string       `json:"id"`
	TenantID    string       `json:"tenant_id"`
	CycleID     string       `json:"cycle_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	OwnerID     *int         `json:"owner_id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Progress    float64      `json:"progress"`
	KeyResults  []*KeyResult `json:"key_results,omitempty"`
}

type KeyResult struct {
	ID           string          `json:"id"`
	TenantID     string          `json:"tenant_id"`
	ObjectiveID  string          `json:"objective_id"`
	Title        string          `json:"title"`
	Unit         string          `json:"unit"`
	StartValue   decimal.Decimal `json:"start_value"`
	CurrentValue decimal.Decimal `json:"current_value"`
	TargetValue  decimal.Decimal `json:"target_value"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	Progress     float64         `json:"progress"`
}

// KeyResultProgress é a razão atual/meta limitada a [0, 1]; meta não positiva resulta em 0
func KeyResultProgress(current, target decimal.Decimal) float64 {
	if !target.IsPositive() {
		return 0
	}

	ratio, _ := current.Div(target).Float64()
	switch {
	case ratio < 0:
		return 0
	case ratio > 1:
		return 1
	}
	return ratio
}

func average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// ComputeProgress preenche o progresso de key results, objetivos e do ciclo
func (c *OKRCycle) ComputeProgress() {
	objectives := make([]float64, 0, len(c.Objectives))
	for _, objective := range c.Objectives {
		objectives = append(objectives, objective.ComputeProgress())
	}
	c.Progress = average(objectives)
}

func (o *Objective) ComputeProgress() float64 {
	results := make([]float64, 0, len(o.KeyResults))
	for _, kr := range o.KeyResults {
		kr.Progress = KeyResultProgress(kr.CurrentValue, kr.TargetValue)
		results = append(results, kr.Progress)
	}
	o.Progress = average(results)
	return o.Progress
}

type CreateCycleRequest struct {
	Name      string `json:"name" validate:"required,max=120"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Status    string `json:"status" validate:"omitempty,oneof=planejado ativo encerrado"`
}

type CreateObjectiveRequest struct {
	CycleID     string `json:"cycle_id" validate:"required,uuid"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	OwnerID     *int   `json:"owner_id"`
}

type CreateKeyResultRequest struct {
	ObjectiveID  string          `json:"objective_id" validate:"required,uuid"`
	Title        string          `json:"title" validate:"required,max=200"`
	Unit         string          `json:"unit" validate:"max=30"`
	StartValue   decimal.Decimal `json:"start_value"`
	CurrentValue decimal.Decimal `json:"current_value"`
	TargetValue  decimal.Decimal `json:"target_value"`
}

type CheckInRequest struct {
	CurrentValue decimal.Decimal `json:"current_value"`
}

type UpdateCycleRequest struct {
	Name      *string `json:"name" validate:"omitempty,max=120"`
	StartDate *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Status    *string `json:"status" validate:"omitempty,oneof=planejado ativo encerrado"`
}

type UpdateObjectiveRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description"`
	OwnerID     *int    `json:"owner_id"`
}

type UpdateKeyResultRequest struct {
	Title       *string          `json:"title" validate:"omitempty,max=200"`
	Unit        *string          `json:"unit" validate:"omitempty,max=30"`
	StartValue  *decimal.Decimal `json:"start_value"`
	TargetValue *decimal.Decimal `json:"target_value"`
}
