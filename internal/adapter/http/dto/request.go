package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/usecase"
)

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput(userID string) usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		UserID:   userID,
		Name:     r.Name,
		Currency: r.Currency,
	}
}

// RenameAccountRequest represents a request to rename an account.
type RenameAccountRequest struct {
	Name string `json:"name"`
}

// ToUseCaseInput converts to use case input.
func (r *RenameAccountRequest) ToUseCaseInput(userID, accountID string) usecase.RenameAccountInput {
	return usecase.RenameAccountInput{
		UserID:    userID,
		AccountID: accountID,
		Name:      r.Name,
	}
}

// BalanceChangeRequest represents a deposit or withdrawal. The amount carries
// its own currency and must match the account's.
type BalanceChangeRequest struct {
	Amount domain.Money `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *BalanceChangeRequest) ToUseCaseInput(userID, accountID string) usecase.BalanceChangeInput {
	return usecase.BalanceChangeInput{
		UserID:    userID,
		AccountID: accountID,
		Amount:    r.Amount,
	}
}

// CreateTransferRequest represents a request to create a transfer. Amounts
// are magnitudes; each side is denominated in its account's currency. An
// omitted target amount defaults to the source magnitude.
type CreateTransferRequest struct {
	SourceAccountID string           `json:"source_account_id"`
	TargetAccountID string           `json:"target_account_id"`
	SourceAmount    decimal.Decimal  `json:"source_amount"`
	TargetAmount    *decimal.Decimal `json:"target_amount,omitempty"`
	Description     string           `json:"description,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateTransferRequest) ToUseCaseInput(userID string) usecase.CreateTransferInput {
	return usecase.CreateTransferInput{
		UserID:          userID,
		SourceAccountID: r.SourceAccountID,
		TargetAccountID: r.TargetAccountID,
		SourceAmount:    r.SourceAmount,
		TargetAmount:    r.TargetAmount,
		Description:     r.Description,
	}
}
