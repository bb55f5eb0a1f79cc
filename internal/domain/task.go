package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pendente"
	TaskStatusInProgress TaskStatus = "em_andamento"
	TaskStatusDone       TaskStatus = "concluida"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type Task struct {
	ID          string     `json:"id"`
	TenantID    string     `json:"tenant_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	AssigneeID  *int       `json:"assignee_id"`
	TicketID    *string    `json:"ticket_id"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedBy   *int       `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// SetStatus altera o status mantendo completed_at coerente com a conclusão
func (t *Task) SetStatus(status TaskStatus, now time.Time) {
	t.Status = status
	if status == TaskStatusDone {
		if t.CompletedAt == nil {
			t.CompletedAt = &now
		}
		return
	}
	t.CompletedAt = nil
}

type TaskFilter struct {
	Status     TaskStatus
	AssigneeID *int
	TicketID   string
	Period     Period
}

type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description"`
	Priority    string  `json:"priority" validate:"omitempty,oneof=baixa media alta urgente"`
	DueDate     *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	AssigneeID  *int    `json:"assignee_id"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=baixa media alta urgente"`
	Status      *string `json:"status" validate:"omitempty,oneof=pendente em_andamento concluida"`
	DueDate     *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	AssigneeID  *int    `json:"assignee_id"`
}
