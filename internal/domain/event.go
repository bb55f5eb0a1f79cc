package domain

import "time"

type Event struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Location    string    `json:"location"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	AllDay      bool      `json:"all_day"`
	CreatedBy   *int      `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate garante que o evento não termina antes de começar
func (e *Event) Validate() error {
	if e.EndAt.Before(e.StartAt) {
		return ErrInvalidInput
	}
	return nil
}

type EventFilter struct {
	Period Period
	Type   string
}

type CreateEventRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	Type        string `json:"type" validate:"required,oneof=reuniao aula evento live prazo outro"`
	Location    string `json:"location" validate:"max=200"`
	StartAt     string `json:"start_at" validate:"required"`
	EndAt       string `json:"end_at" validate:"required"`
	AllDay      bool   `json:"all_day"`
}

type UpdateEventRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description"`
	Type        *string `json:"type" validate:"omitempty,oneof=reuniao aula evento live prazo outro"`
	Location    *string `json:"location" validate:"omitempty,max=200"`
	StartAt     *string `json:"start_at"`
	EndAt       *string `json:"end_at"`
	AllDay      *bool   `json:"all_day"`
}
