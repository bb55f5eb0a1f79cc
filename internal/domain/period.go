package domain

import "time"

const DateLayout = "2006-01-02"

// Period representa um intervalo fechado de datas usado nos filtros de listagem e relatórios
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (p Period) IsZero() bool {
	return p.Start.IsZero() && p.End.IsZero()
}

// Valid indica se o fim não é anterior ao início
func (p Period) Valid() bool {
	if p.Start.IsZero() || p.End.IsZero() {
		return true
	}
	return !p.End.Before(p.Start)
}

// EndOfDay retorna o último instante do dia final, usado em comparações com timestamps
func (p Period) EndOfDay() time.Time {
	y, m, d := p.End.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), p.End.Location())
}

// Overlaps indica se o intervalo [start, end] intercepta o período
func (p Period) Overlaps(start, end time.Time) bool {
	if !p.Start.IsZero() && end.Before(p.Start) {
		return false
	}
	if !p.End.IsZero() && start.After(p.EndOfDay()) {
		return false
	}
	return true
}

// ParsePeriod converte as datas no formato yyyy-mm-dd, aceitando valores vazios
func ParsePeriod(start, end string) (Period, error) {
	var period Period
	var err error

	if start != "" {
		period.Start, err = time.Parse(DateLayout, start)
		if err != nil {
			return Period{}, ErrInvalidInput
		}
	}

	if end != "" {
		period.End, err = time.Parse(DateLayout, end)
		if err != nil {
			return Period{}, ErrInvalidInput
		}
	}

	if !period.Valid() {
		return Period{}, ErrInvalidInput
	}

	return period, nil
}

// ParseTimestamp aceita RFC3339 ou apenas a data (yyyy-mm-dd)
func ParseTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidInput
	}
	return t, nil
}

// ParseOptionalDate converte uma data opcional no formato yyyy-mm-dd
func ParseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	t, err := time.Parse(DateLayout, *value)
	if err != nil {
		return nil, ErrInvalidInput
	}
	return &t, nil
}
