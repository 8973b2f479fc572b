package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobudget/internal/domain"
)

func TestAccountResponseSerialization(t *testing.T) {
	audit := domain.NewAuditInfo("user-1", "group-1", time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	account, err := domain.NewAccount("acc-1", "Groceries", domain.CurrencyPLN, audit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := json.Marshal(AccountFromDomain(account))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	body := string(data)
	if !strings.Contains(body, `"balance":{"amount":"0.00","currency":"PLN"}`) {
		t.Fatalf("expected money object in response, got %s", body)
	}
	if strings.Contains(body, "deleted_at") {
		t.Fatalf("expected deleted_at omitted for active account, got %s", body)
	}
}

func TestTransferResponseSerialization(t *testing.T) {
	audit := domain.NewAuditInfo("user-1", "group-1", time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	source, err := domain.NewMoney(decimal.RequireFromString("100"), domain.CurrencyPLN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	target, err := domain.NewMoney(decimal.RequireFromString("25"), domain.CurrencyEUR)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rate, err := domain.CalculateRate(source, target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	transfer, err := domain.NewTransfer("tr-1", "src", "dst", source, target, rate, "savings", audit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := json.Marshal(TransferFromDomain(transfer))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	body := string(data)
	if !strings.Contains(body, `"source_amount":{"amount":"100.00","currency":"PLN"}`) {
		t.Fatalf("expected source amount in response, got %s", body)
	}
	if !strings.Contains(body, `"rate":"0.250000"`) {
		t.Fatalf("expected six decimal rate in response, got %s", body)
	}
}
