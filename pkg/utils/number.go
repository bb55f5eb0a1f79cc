package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// Percent converte uma fração em percentual com duas casas
func Percent(fraction float64) float64 {
	return RoundWithTwoDecimalPlace(fraction * 100)
}
