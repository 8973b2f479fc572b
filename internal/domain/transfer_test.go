package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewTransfer(t *testing.T) {
	now := time.Now().UTC()

	source := mustMoney(t, "100.00", CurrencyPLN)
	target := mustMoney(t, "25.00", CurrencyEUR)

	rate, err := CalculateRate(source, target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	transfer, err := NewTransfer("tr-1", "acc-1", "acc-2", source, target, rate, "monthly savings", testAudit(now))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := transfer.Rate.Rate().StringFixed(6); got != "0.250000" {
		t.Errorf("expected rate 0.250000, got %s", got)
	}

	if transfer.Tombstone.Deleted {
		t.Errorf("new transfer must be active")
	}
}

func TestNewTransfer_SameAccount(t *testing.T) {
	now := time.Now().UTC()

	amount := mustMoney(t, "100.00", CurrencyPLN)

	_, err := NewTransfer("tr-1", "acc-1", "acc-1", amount, amount, IdentityRate(CurrencyPLN), "", testAudit(now))
	if !errors.Is(err, ErrSameAccount) {
		t.Fatalf("expected ErrSameAccount, got %v", err)
	}
}

func TestNewTransfer_RateCurrencyConsistency(t *testing.T) {
	now := time.Now().UTC()

	pln := mustMoney(t, "100.00", CurrencyPLN)
	eur := mustMoney(t, "25.00", CurrencyEUR)

	tests := []struct {
		name   string
		source Money
		target Money
		rate   ExchangeRate
	}{
		{name: "rate from wrong currency", source: pln, target: eur, rate: IdentityRate(CurrencyEUR)},
		{name: "rate to wrong currency", source: pln, target: eur, rate: IdentityRate(CurrencyPLN)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTransfer("tr-1", "acc-1", "acc-2", tt.source, tt.target, tt.rate, "", testAudit(now))
			if !errors.Is(err, ErrCurrencyMismatch) {
				t.Errorf("expected ErrCurrencyMismatch, got %v", err)
			}
		})
	}
}

func TestNewTransfer_Description(t *testing.T) {
	now := time.Now().UTC()

	amount := mustMoney(t, "100.00", CurrencyPLN)

	// Empty description is allowed.
	if _, err := NewTransfer("tr-1", "acc-1", "acc-2", amount, amount, IdentityRate(CurrencyPLN), "", testAudit(now)); err != nil {
		t.Errorf("empty description: unexpected error %v", err)
	}

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}

	if _, err := NewTransfer("tr-1", "acc-1", "acc-2", amount, amount, IdentityRate(CurrencyPLN), string(long), testAudit(now)); !errors.Is(err, ErrInvalidDescription) {
		t.Errorf("long description: expected ErrInvalidDescription, got %v", err)
	}

	if _, err := NewTransfer("tr-1", "acc-1", "acc-2", amount, amount, IdentityRate(CurrencyPLN), "rent; --", testAudit(now)); !errors.Is(err, ErrInvalidDescription) {
		t.Errorf("forbidden characters: expected ErrInvalidDescription, got %v", err)
	}
}
