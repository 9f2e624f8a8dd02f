package utils

import (
	"regexp"
	"testing"
	"time"
)

func TestTaxCents(t *testing.T) {
	cases := []struct {
		subtotal int64
		want     int64
	}{
		{0, 0},
		{100, 8},     // 1.00 -> 0.08
		{3000, 240},  // 30.00 -> 2.40
		{1250, 100},  // 12.50 -> 1.00 exact
		{106, 8},     // 8.48 cents rounds down
		{107, 9},     // 8.56 cents rounds up
		{1056, 84},   // 84.48 rounds down
		{1057, 85},   // 84.56 rounds up
		{625, 50},    // 50.00 exactly
		{631, 50},    // 50.48 rounds down
		{632, 51},    // 50.56 rounds up
		{99999999, 8000000}, // large subtotal stays exact
	}

	for _, tc := range cases {
		if got := TaxCents(tc.subtotal); got != tc.want {
			t.Errorf("TaxCents(%d) = %d, want %d", tc.subtotal, got, tc.want)
		}
	}
}

func TestTaxCentsHalfRoundsUp(t *testing.T) {
	// 6.25 * 8% = 0.5 cents exactly; half rounds up
	if got := TaxCents(6); got != 0 {
		t.Errorf("TaxCents(6) = %d, want 0 (0.48 rounds down)", got)
	}
	if got := TaxCents(7); got != 1 {
		t.Errorf("TaxCents(7) = %d, want 1 (0.56 rounds up)", got)
	}
}

func TestDecimalToCents(t *testing.T) {
	cases := []struct {
		value float64
		want  int64
	}{
		{0, 0},
		{10.00, 1000},
		{19.99, 1999},
		{0.01, 1},
		{999999.99, 99999999},
		{32.40, 3240},
	}

	for _, tc := range cases {
		if got := DecimalToCents(tc.value); got != tc.want {
			t.Errorf("DecimalToCents(%v) = %d, want %d", tc.value, got, tc.want)
		}
	}
}

func TestCentsToDecimal(t *testing.T) {
	if got := CentsToDecimal(3240); got != 32.40 {
		t.Errorf("CentsToDecimal(3240) = %v, want 32.40", got)
	}
	if got := CentsToDecimal(0); got != 0 {
		t.Errorf("CentsToDecimal(0) = %v, want 0", got)
	}
}

func TestGenerateSaleNumber(t *testing.T) {
	at := time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^SALE-20260831-\d{4}$`)

	for i := 0; i < 100; i++ {
		number := GenerateSaleNumber(at)
		if !pattern.MatchString(number) {
			t.Fatalf("sale number %q does not match SALE-20260831-NNNN", number)
		}
	}
}
