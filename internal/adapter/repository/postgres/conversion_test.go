package postgres

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNumericConversionRoundTrip(t *testing.T) {
	for _, raw := range []string{"0", "100.00", "-30.50", "0.250000", "12345.67"} {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			t.Fatalf("bad input %q: %v", raw, err)
		}

		got := numericToDecimal(decimalToNumeric(d))
		if !got.Equal(d) {
			t.Fatalf("round trip of %s gave %s", d, got)
		}
	}
}

func TestNumericToDecimalNull(t *testing.T) {
	var got = numericToDecimal(decimalToNumeric(decimal.Zero))
	if !got.IsZero() {
		t.Fatalf("expected zero, got %s", got)
	}
}
