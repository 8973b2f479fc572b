package domain

import "time"

// Account is a ledger account holding a balance in a fixed currency. The
// currency is set at creation and never changes. Mutating methods are
// defined on the value and return a new Account; nothing is updated in
// place.
type Account struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Balance     Money     `json:"balance"`
	Version     int64     `json:"version"`
	CreatedInfo AuditInfo `json:"created_info"`
	UpdatedInfo AuditInfo `json:"updated_info"`
	Tombstone   Tombstone `json:"tombstone"`
}

// NewAccount creates an active account with a zero balance.
func NewAccount(id, name string, currency Currency, created AuditInfo) (Account, error) {
	if err := ValidateName(name); err != nil {
		return Account{}, err
	}

	balance, err := Zero(currency)
	if err != nil {
		return Account{}, err
	}

	return Account{
		ID:          id,
		Name:        name,
		Balance:     balance,
		Version:     0,
		CreatedInfo: created,
		UpdatedInfo: created,
		Tombstone:   ActiveTombstone(),
	}, nil
}

// GroupID returns the owning group the account was created under.
func (a Account) GroupID() string {
	return a.CreatedInfo.GroupID
}

// Rename returns the account with a new name and a refreshed update stamp.
func (a Account) Rename(name string, updated AuditInfo) (Account, error) {
	if err := ValidateName(name); err != nil {
		return Account{}, err
	}

	a.Name = name
	a.UpdatedInfo = updated

	return a, nil
}

// Deposit returns the account with the amount added to its balance. The
// amount must be in the account's currency.
func (a Account) Deposit(amount Money, updated AuditInfo) (Account, error) {
	balance, err := a.Balance.Add(amount)
	if err != nil {
		return Account{}, err
	}

	a.Balance = balance
	a.UpdatedInfo = updated

	return a, nil
}

// Withdraw returns the account with the negated amount added to its balance.
// No lower bound is enforced; balances may go negative.
func (a Account) Withdraw(amount Money, updated AuditInfo) (Account, error) {
	return a.Deposit(amount.Neg(), updated)
}

// MarkDeleted returns the account tombstoned at the given time. Deleted is a
// terminal state; the caller is responsible for checking that no transfers
// reference the account.
func (a Account) MarkDeleted(at time.Time, updated AuditInfo) Account {
	a.Tombstone = DeletedTombstone(at)
	a.UpdatedInfo = updated

	return a
}
