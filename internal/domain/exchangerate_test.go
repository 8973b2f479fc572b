package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewExchangeRate_RejectsNonPositive(t *testing.T) {
	tests := []struct {
		name string
		rate string
	}{
		{name: "zero", rate: "0"},
		{name: "negative", rate: "-0.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, _ := decimal.NewFromString(tt.rate)

			_, err := NewExchangeRate(rate, CurrencyPLN, CurrencyEUR)
			if !errors.Is(err, ErrInvalidExchangeRate) {
				t.Errorf("expected ErrInvalidExchangeRate, got %v", err)
			}
		})
	}
}

func TestIdentityRate_ConvertIsIdentity(t *testing.T) {
	amounts := []string{"0.00", "100.00", "-30.00", "0.01", "999999.99"}

	for _, amount := range amounts {
		m := mustMoney(t, amount, CurrencyGBP)

		got := IdentityRate(CurrencyGBP).Convert(m)
		if !got.Equal(m) {
			t.Errorf("identity conversion of %s yielded %s", m, got)
		}
	}
}

func TestCalculateRate(t *testing.T) {
	tests := []struct {
		name         string
		source       string
		sourceCur    Currency
		target       string
		targetCur    Currency
		expectedRate string
	}{
		{name: "pln to eur", source: "100.00", sourceCur: CurrencyPLN, target: "25.00", targetCur: CurrencyEUR, expectedRate: "0.250000"},
		{name: "eur to pln", source: "25.00", sourceCur: CurrencyEUR, target: "100.00", targetCur: CurrencyPLN, expectedRate: "4.000000"},
		{name: "repeating decimal rounds at six digits", source: "3.00", sourceCur: CurrencyUSD, target: "1.00", targetCur: CurrencyGBP, expectedRate: "0.333333"},
		{name: "same magnitude", source: "50.00", sourceCur: CurrencyUSD, target: "50.00", targetCur: CurrencyEUR, expectedRate: "1.000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := mustMoney(t, tt.source, tt.sourceCur)
			target := mustMoney(t, tt.target, tt.targetCur)

			rate, err := CalculateRate(source, target)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got := rate.Rate().StringFixed(6); got != tt.expectedRate {
				t.Errorf("expected rate %s, got %s", tt.expectedRate, got)
			}

			if rate.From() != tt.sourceCur || rate.To() != tt.targetCur {
				t.Errorf("expected %s->%s, got %s->%s", tt.sourceCur, tt.targetCur, rate.From(), rate.To())
			}
		})
	}
}

func TestCalculateRate_NonPositiveSource(t *testing.T) {
	target := mustMoney(t, "25.00", CurrencyEUR)

	zero := mustMoney(t, "0.00", CurrencyPLN)
	if _, err := CalculateRate(zero, target); !errors.Is(err, ErrInvalidExchangeRate) {
		t.Errorf("zero source: expected ErrInvalidExchangeRate, got %v", err)
	}

	negative := mustMoney(t, "-10.00", CurrencyPLN)
	if _, err := CalculateRate(negative, target); !errors.Is(err, ErrInvalidExchangeRate) {
		t.Errorf("negative source: expected ErrInvalidExchangeRate, got %v", err)
	}
}

func TestExchangeRate_Convert(t *testing.T) {
	source := mustMoney(t, "100.00", CurrencyPLN)
	target := mustMoney(t, "25.00", CurrencyEUR)

	rate, err := CalculateRate(source, target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	converted := rate.Convert(source)
	if !converted.Equal(target) {
		t.Errorf("expected %s, got %s", target, converted)
	}

	// Conversion re-normalizes to two decimals.
	odd := mustMoney(t, "10.01", CurrencyPLN)

	converted = rate.Convert(odd)
	if got := converted.Amount().StringFixed(2); got != "2.50" {
		t.Errorf("expected 2.50, got %s", got)
	}

	if converted.Currency() != CurrencyEUR {
		t.Errorf("expected EUR, got %s", converted.Currency())
	}
}
