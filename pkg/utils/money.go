package utils

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

// TaxRatePercent is the sales tax rate applied to every sale
const TaxRatePercent = 8

// DecimalToCents converts a decimal money value to integer cents,
// rounding to the nearest cent
func DecimalToCents(value float64) int64 {
	return int64(math.Round(value * 100))
}

// CentsToDecimal converts integer cents to a decimal money value
func CentsToDecimal(cents int64) float64 {
	return float64(cents) / 100
}

// TaxCents returns the tax on a subtotal in cents, rounded half-up to the
// nearest cent. Integer arithmetic keeps the result exact.
func TaxCents(subtotalCents int64) int64 {
	return (subtotalCents*TaxRatePercent + 50) / 100
}

// GenerateSaleNumber produces a sale number of the form
// SALE-YYYYMMDD-NNNN with a random zero-padded suffix. Uniqueness is
// enforced by the database; collisions are retried by the caller.
func GenerateSaleNumber(t time.Time) string {
	return fmt.Sprintf("SALE-%s-%04d", t.Format("20060102"), rand.IntN(9999)+1)
}
