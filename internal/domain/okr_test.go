package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestKeyResultProgress(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		target   string
		expected float64
	}{
		{"metade", "50", "100", 0.5},
		{"meta superada é limitada", "150", "100", 1},
		{"valor negativo é limitado", "-10", "100", 0},
		{"meta zero", "10", "0", 0},
		{"meta negativa", "10", "-5", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, KeyResultProgress(d(tt.current), d(tt.target)), 0.0001)
		})
	}
}

func TestOKRCycle_ComputeProgress(t *testing.T) {
	cycle := &OKRCycle{
		Objectives: []*Objective{
			{
				KeyResults: []*KeyResult{
					{CurrentValue: d("50"), TargetValue: d("100")},
					{CurrentValue: d("100"), TargetValue: d("100")},
				},
			},
			{},
		},
	}

	cycle.ComputeProgress()

	assert.InDelta(t, 0.5, cycle.Objectives[0].KeyResults[0].Progress, 0.0001)
	assert.InDelta(t, 0.75, cycle.Objectives[0].Progress, 0.0001)
	assert.InDelta(t, 0.0, cycle.Objectives[1].Progress, 0.0001)
	assert.InDelta(t, 0.375, cycle.Progress, 0.0001)

	empty := &OKRCycle{}
	empty.ComputeProgress()
	assert.Equal(t, 0.0, empty.Progress)
}
