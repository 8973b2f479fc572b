package dto

import (
	"time"

	"github.com/iho/gobudget/internal/domain"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Balance   domain.Money `json:"balance"`
	Version   int64        `json:"version"`
	CreatedBy string       `json:"created_by"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedBy string       `json:"updated_by"`
	UpdatedAt time.Time    `json:"updated_at"`
	Deleted   bool         `json:"deleted"`
	DeletedAt *time.Time   `json:"deleted_at,omitempty"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a domain.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Balance:   a.Balance,
		Version:   a.Version,
		CreatedBy: a.CreatedInfo.UserID,
		CreatedAt: a.CreatedInfo.At,
		UpdatedBy: a.UpdatedInfo.UserID,
		UpdatedAt: a.UpdatedInfo.At,
		Deleted:   a.Tombstone.Deleted,
		DeletedAt: a.Tombstone.DeletedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []domain.Account) []AccountResponse {
	result := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse wraps a page of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Total    int64             `json:"total"`
}

// TransferResponse represents a transfer in API responses.
type TransferResponse struct {
	ID              string              `json:"id"`
	SourceAccountID string              `json:"source_account_id"`
	TargetAccountID string              `json:"target_account_id"`
	SourceAmount    domain.Money        `json:"source_amount"`
	TargetAmount    domain.Money        `json:"target_amount"`
	ExchangeRate    domain.ExchangeRate `json:"exchange_rate"`
	Description     string              `json:"description,omitempty"`
	CreatedBy       string              `json:"created_by"`
	CreatedAt       time.Time           `json:"created_at"`
}

// TransferFromDomain converts domain transfer to response.
func TransferFromDomain(t domain.Transfer) TransferResponse {
	return TransferResponse{
		ID:              t.ID,
		SourceAccountID: t.SourceAccountID,
		TargetAccountID: t.TargetAccountID,
		SourceAmount:    t.SourceAmount,
		TargetAmount:    t.TargetAmount,
		ExchangeRate:    t.Rate,
		Description:     t.Description,
		CreatedBy:       t.CreatedInfo.UserID,
		CreatedAt:       t.CreatedInfo.At,
	}
}

// TransfersFromDomain converts domain transfers to responses.
func TransfersFromDomain(transfers []domain.Transfer) []TransferResponse {
	result := make([]TransferResponse, len(transfers))
	for i, t := range transfers {
		result[i] = TransferFromDomain(t)
	}
	return result
}

// ListTransfersResponse wraps a page of transfers.
type ListTransfersResponse struct {
	Transfers []TransferResponse `json:"transfers"`
	Total     int64              `json:"total"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
