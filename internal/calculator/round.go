package calculator

import "github.com/shopspring/decimal"

// Round2 rounds v to two decimal places for display.
// Internal sums are never rounded; only values leaving the package are.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
