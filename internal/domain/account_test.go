package domain

import (
	"errors"
	"testing"
	"time"
)

func testAudit(at time.Time) AuditInfo {
	return NewAuditInfo("user-1", "group-1", at)
}

func TestNewAccount(t *testing.T) {
	now := time.Now().UTC()

	account, err := NewAccount("acc-1", "Groceries", CurrencyPLN, testAudit(now))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !account.Balance.IsZero() || account.Balance.Currency() != CurrencyPLN {
		t.Errorf("expected zero PLN balance, got %s", account.Balance)
	}

	if account.CreatedInfo != account.UpdatedInfo {
		t.Errorf("created and updated info should match at creation")
	}

	if account.Tombstone.Deleted {
		t.Errorf("new account must be active")
	}
}

func TestNewAccount_InvalidName(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name    string
		accName string
	}{
		{name: "empty", accName: ""},
		{name: "too long", accName: string(make([]byte, 101))},
		{name: "forbidden characters", accName: "savings; DROP TABLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAccount("acc-1", tt.accName, CurrencyPLN, testAudit(now))
			if !errors.Is(err, ErrInvalidName) {
				t.Errorf("expected ErrInvalidName, got %v", err)
			}
		})
	}
}

func TestAccount_DepositWithdrawScenario(t *testing.T) {
	now := time.Now().UTC()

	account, err := NewAccount("acc-1", "Wallet", CurrencyPLN, testAudit(now))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	account, err = account.Deposit(mustMoney(t, "100.00", CurrencyPLN), testAudit(now.Add(time.Minute)))
	if err != nil {
		t.Fatalf("deposit: %v", err)
	}

	if got := account.Balance.Amount().StringFixed(2); got != "100.00" {
		t.Fatalf("expected balance 100.00, got %s", got)
	}

	account, err = account.Withdraw(mustMoney(t, "50.00", CurrencyPLN), testAudit(now.Add(2*time.Minute)))
	if err != nil {
		t.Fatalf("withdraw: %v", err)
	}

	if got := account.Balance.Amount().StringFixed(2); got != "50.00" {
		t.Fatalf("expected balance 50.00, got %s", got)
	}
}

func TestAccount_WithdrawAllowsOverdraft(t *testing.T) {
	now := time.Now().UTC()

	account, _ := NewAccount("acc-1", "Wallet", CurrencyPLN, testAudit(now))

	account, err := account.Withdraw(mustMoney(t, "30.00", CurrencyPLN), testAudit(now))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := account.Balance.Amount().StringFixed(2); got != "-30.00" {
		t.Errorf("expected balance -30.00, got %s", got)
	}
}

func TestAccount_DepositCurrencyMismatch(t *testing.T) {
	now := time.Now().UTC()

	account, _ := NewAccount("acc-1", "Wallet", CurrencyPLN, testAudit(now))

	if _, err := account.Deposit(mustMoney(t, "10.00", CurrencyEUR), testAudit(now)); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("deposit: expected ErrCurrencyMismatch, got %v", err)
	}

	if _, err := account.Withdraw(mustMoney(t, "10.00", CurrencyEUR), testAudit(now)); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("withdraw: expected ErrCurrencyMismatch, got %v", err)
	}
}

func TestAccount_ValueSemantics(t *testing.T) {
	now := time.Now().UTC()

	original, _ := NewAccount("acc-1", "Wallet", CurrencyPLN, testAudit(now))

	renamed, err := original.Rename("Holiday", testAudit(now.Add(time.Minute)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if original.Name != "Wallet" {
		t.Errorf("rename mutated the original value")
	}

	if renamed.Name != "Holiday" {
		t.Errorf("expected renamed account, got %q", renamed.Name)
	}

	if renamed.CreatedInfo != original.CreatedInfo {
		t.Errorf("rename must not touch created info")
	}

	if renamed.UpdatedInfo == original.UpdatedInfo {
		t.Errorf("rename must refresh updated info")
	}
}

func TestAccount_MarkDeleted(t *testing.T) {
	now := time.Now().UTC()

	account, _ := NewAccount("acc-1", "Wallet", CurrencyPLN, testAudit(now))

	deletedAt := now.Add(time.Hour)

	deleted := account.MarkDeleted(deletedAt, testAudit(deletedAt))
	if !deleted.Tombstone.Deleted {
		t.Fatalf("expected tombstone set")
	}

	if deleted.Tombstone.DeletedAt == nil || !deleted.Tombstone.DeletedAt.Equal(deletedAt) {
		t.Errorf("expected deletion time %s, got %v", deletedAt, deleted.Tombstone.DeletedAt)
	}

	if account.Tombstone.Deleted {
		t.Errorf("MarkDeleted mutated the original value")
	}
}
