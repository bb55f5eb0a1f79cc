package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSLADeadline(t *testing.T) {
	createdAt := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		priority TicketPriority
		expected time.Time
	}{
		{TicketPriorityLow, createdAt.Add(72 * time.Hour)},
		{TicketPriorityMedium, createdAt.Add(48 * time.Hour)},
		{TicketPriorityHigh, createdAt.Add(24 * time.Hour)},
		{TicketPriorityUrgent, createdAt.Add(4 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			assert.True(t, tt.priority.Valid())
			assert.Equal(t, tt.expected, SLADeadline(createdAt, tt.priority))
		})
	}

	assert.False(t, TicketPriority("critica").Valid())
}

func TestTicketStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    TicketStatus
		to      TicketStatus
		allowed bool
	}{
		{"aberto para em andamento", TicketStatusOpen, TicketStatusInProgress, true},
		{"aberto para fechado", TicketStatusOpen, TicketStatusClosed, true},
		{"em andamento para aberto", TicketStatusInProgress, TicketStatusOpen, false},
		{"aguardando para em andamento", TicketStatusWaiting, TicketStatusInProgress, true},
		{"resolvido reabre", TicketStatusResolved, TicketStatusOpen, true},
		{"resolvido para em andamento", TicketStatusResolved, TicketStatusInProgress, false},
		{"fechado reabre", TicketStatusClosed, TicketStatusOpen, true},
		{"fechado para resolvido", TicketStatusClosed, TicketStatusResolved, false},
		{"status desconhecido", TicketStatus("x"), TicketStatusOpen, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestTicket_IsOverdue(t *testing.T) {
	deadline := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	ticket := &Ticket{Status: TicketStatusOpen, SLADeadline: deadline}

	assert.False(t, ticket.IsOverdue(deadline.Add(-time.Minute)))
	assert.True(t, ticket.IsOverdue(deadline.Add(time.Minute)))

	ticket.Status = TicketStatusResolved
	assert.False(t, ticket.IsOverdue(deadline.Add(time.Hour)))
}

func TestTask_SetStatus(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	task := &Task{Status: TaskStatusPending}

	task.SetStatus(TaskStatusDone, now)
	assert.Equal(t, TaskStatusDone, task.Status)
	assert.Equal(t, &now, task.CompletedAt)

	later := now.Add(time.Hour)
	task.SetStatus(TaskStatusDone, later)
	assert.Equal(t, now, *task.CompletedAt)

	task.SetStatus(TaskStatusPending, later)
	assert.Nil(t, task.CompletedAt)
}
