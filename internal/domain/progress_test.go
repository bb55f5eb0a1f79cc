package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMentoriaProcesso_ComputeProgress(t *testing.T) {
	processo := &MentoriaProcesso{
		Etapas: []*MentoriaEtapa{
			{Tarefas: []*MentoriaTarefa{{Status: TaskStatusDone}, {Status: TaskStatusPending}}},
			{Tarefas: []*MentoriaTarefa{{Status: TaskStatusDone}, {Status: TaskStatusDone}}},
			{},
		},
	}

	processo.ComputeProgress()

	assert.InDelta(t, 0.5, processo.Etapas[0].Progress, 0.0001)
	assert.InDelta(t, 1.0, processo.Etapas[1].Progress, 0.0001)
	assert.Equal(t, 0.0, processo.Etapas[2].Progress)
	assert.InDelta(t, 0.75, processo.Progress, 0.0001)
}

func TestPDI_ComputeProgress(t *testing.T) {
	pdi := &PDI{Aulas: []*PDIAula{{Completed: true}, {}, {}, {Completed: true}}}
	pdi.ComputeProgress()
	assert.InDelta(t, 0.5, pdi.Progress, 0.0001)

	pdi = &PDI{}
	pdi.ComputeProgress()
	assert.Equal(t, 0.0, pdi.Progress)
}

func TestBuildPipeline(t *testing.T) {
	stages := BuildPipeline([]*Sponsorship{
		{Status: SponsorshipStatusClosed, Value: decimal.RequireFromString("1000")},
		{Status: SponsorshipStatusClosed, Value: decimal.RequireFromString("500.50")},
		{Status: SponsorshipStatusProspecting, Value: decimal.RequireFromString("200")},
	})

	assert.Len(t, stages, 4)
	assert.Equal(t, SponsorshipStatusProspecting, stages[0].Status)
	assert.Equal(t, 1, stages[0].Count)
	assert.Equal(t, 0, stages[1].Count)
	assert.Equal(t, 2, stages[2].Count)
	assert.Equal(t, "1500.50", stages[2].Value.StringFixed(2))
}

func TestContentPost_SetStatus(t *testing.T) {
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	post := &ContentPost{Status: PostStatusScheduled}

	post.SetStatus(PostStatusPublished, now)
	assert.Equal(t, &now, post.PublishedAt)

	post.SetStatus(PostStatusApproval, now)
	assert.Nil(t, post.PublishedAt)
}

func TestPeriod(t *testing.T) {
	period, err := ParsePeriod("2024-01-01", "2024-01-31")
	assert.NoError(t, err)
	assert.True(t, period.Overlaps(time.Date(2023, 12, 30, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)))
	assert.True(t, period.Overlaps(time.Date(2024, 1, 31, 20, 0, 0, 0, time.UTC), time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)))
	assert.False(t, period.Overlaps(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)))

	_, err = ParsePeriod("2024-02-01", "2024-01-01")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ParsePeriod("01/02/2024", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	event := &Event{StartAt: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC), EndAt: time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)}
	assert.ErrorIs(t, event.Validate(), ErrInvalidInput)
}
