package domain

import (
	"time"
)

type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "baixa"
	TicketPriorityMedium TicketPriority = "media"
	TicketPriorityHigh   TicketPriority = "alta"
	TicketPriorityUrgent TicketPriority = "urgente"
)

var ticketSLA = map[TicketPriority]time.Duration{
	TicketPriorityLow:    72 * time.Hour,
	TicketPriorityMedium: 48 * time.Hour,
	TicketPriorityHigh:   24 * time.Hour,
	TicketPriorityUrgent: 4 * time.Hour,
}

func (p TicketPriority) Valid() bool {
	_, ok := ticketSLA[p]
	return ok
}

// SLA retorna o prazo de atendimento da prioridade
func (p TicketPriority) SLA() time.Duration {
	return ticketSLA[p]
}

// SLADeadline calcula o vencimento do SLA a partir da abertura do chamado
func SLADeadline(createdAt time.Time, priority TicketPriority) time.Time {
	return createdAt.Add(priority.SLA())
}

type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "aberto"
	TicketStatusInProgress TicketStatus = "em_andamento"
	TicketStatusWaiting    TicketStatus = "aguardando"
	TicketStatusResolved   TicketStatus = "resolvido"
	TicketStatusClosed     TicketStatus = "fechado"
)

var ticketTransitions = map[TicketStatus][]TicketStatus{
	TicketStatusOpen:       {TicketStatusInProgress, TicketStatusWaiting, TicketStatusResolved, TicketStatusClosed},
	TicketStatusInProgress: {TicketStatusWaiting, TicketStatusResolved, TicketStatusClosed},
	TicketStatusWaiting:    {TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed},
	TicketStatusResolved:   {TicketStatusClosed, TicketStatusOpen},
	TicketStatusClosed:     {TicketStatusOpen},
}

func (s TicketStatus) Valid() bool {
	_, ok := ticketTransitions[s]
	return ok
}

// CanTransitionTo indica se a mudança de status é permitida
func (s TicketStatus) CanTransitionTo(next TicketStatus) bool {
	for _, allowed := range ticketTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsFinished indica se o chamado já foi resolvido ou fechado
func (s TicketStatus) IsFinished() bool {
	return s == TicketStatusResolved || s == TicketStatusClosed
}

type Ticket struct {
	ID          string         `json:"id"`
	TenantID    string         `json:"tenant_id"`
	Code        string         `json:"code"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Priority    TicketPriority `json:"priority"`
	Status      TicketStatus   `json:"status"`
	SLADeadline time.Time      `json:"sla_deadline"`
	RequesterID *int           `json:"requester_id"`
	AssigneeID  *int           `json:"assignee_id"`
	TaskID      *string        `json:"task_id"`
	ResolvedAt  *time.Time     `json:"resolved_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Overdue     bool           `json:"overdue"`
}

// IsOverdue indica se o SLA venceu sem que o chamado tenha sido finalizado
func (t *Ticket) IsOverdue(now time.Time) bool {
	return !t.Status.IsFinished() && now.After(t.SLADeadline)
}

type TicketFilter struct {
	Status     TicketStatus
	Priority   TicketPriority
	AssigneeID *int
	Overdue    bool
	Now        time.Time
}

type CreateTicketRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"max=60"`
	Priority    string `json:"priority" validate:"required,oneof=baixa media alta urgente"`
	AssigneeID  *int   `json:"assignee_id"`
}

type UpdateTicketRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description"`
	Category    *string `json:"category" validate:"omitempty,max=60"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=baixa media alta urgente"`
	Status      *string `json:"status" validate:"omitempty,oneof=aberto em_andamento aguardando resolvido fechado"`
	AssigneeID  *int    `json:"assignee_id"`
}
