package utils

import (
	"fmt"
	"math"
)

// RoundCurrency rounds an amount to 2 decimal places.
func RoundCurrency(amount float64) float64 {
	return math.Round(amount*100) / 100
}

func FormatCurrency(amount float64) string {
	return fmt.Sprintf("$%.2f", RoundCurrency(amount))
}
