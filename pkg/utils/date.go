package utils

import "time"

// StartOfDay zera o horário mantendo o fuso
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysAgo retorna o início do dia n dias antes de t
func DaysAgo(t time.Time, days int) time.Time {
	return StartOfDay(t).AddDate(0, 0, -days)
}
