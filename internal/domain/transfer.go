package domain

import "fmt"

// Transfer records a completed movement of money between two accounts,
// together with the exchange rate that priced it. Once created a transfer is
// financially immutable: later writes may only touch audit and tombstone
// fields, never the amounts.
type Transfer struct {
	ID              string       `json:"id"`
	SourceAccountID string       `json:"source_account_id"`
	TargetAccountID string       `json:"target_account_id"`
	SourceAmount    Money        `json:"source_amount"`
	TargetAmount    Money        `json:"target_amount"`
	Rate            ExchangeRate `json:"exchange_rate"`
	Description     string       `json:"description,omitempty"`
	CreatedInfo     AuditInfo    `json:"created_info"`
	UpdatedInfo     AuditInfo    `json:"updated_info"`
	Tombstone       Tombstone    `json:"tombstone"`
}

// NewTransfer creates a transfer, enforcing its invariants: distinct
// accounts, a valid description, and a rate whose endpoints match the two
// amounts' currencies.
func NewTransfer(
	id, sourceAccountID, targetAccountID string,
	sourceAmount, targetAmount Money,
	rate ExchangeRate,
	description string,
	created AuditInfo,
) (Transfer, error) {
	if sourceAccountID == targetAccountID {
		return Transfer{}, ErrSameAccount
	}

	if err := ValidateDescription(description); err != nil {
		return Transfer{}, err
	}

	if rate.From() != sourceAmount.Currency() {
		return Transfer{}, fmt.Errorf("%w: rate is from %s but source amount is %s",
			ErrCurrencyMismatch, rate.From(), sourceAmount.Currency())
	}

	if rate.To() != targetAmount.Currency() {
		return Transfer{}, fmt.Errorf("%w: rate is to %s but target amount is %s",
			ErrCurrencyMismatch, rate.To(), targetAmount.Currency())
	}

	return Transfer{
		ID:              id,
		SourceAccountID: sourceAccountID,
		TargetAccountID: targetAccountID,
		SourceAmount:    sourceAmount,
		TargetAmount:    targetAmount,
		Rate:            rate,
		Description:     description,
		CreatedInfo:     created,
		UpdatedInfo:     created,
		Tombstone:       ActiveTombstone(),
	}, nil
}

// GroupID returns the owning group the transfer was created under.
func (t Transfer) GroupID() string {
	return t.CreatedInfo.GroupID
}
