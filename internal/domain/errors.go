package domain

import "errors"

var (
	// Value errors
	ErrInvalidCurrency     = errors.New("invalid currency code")
	ErrCurrencyMismatch    = errors.New("currencies do not match")
	ErrInvalidExchangeRate = errors.New("exchange rate must be positive")

	// Account errors
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountAlreadyExists = errors.New("account with this name and currency already exists")
	ErrAccountHasTransfers  = errors.New("account has associated transfers")

	// Group errors
	ErrGroupNotFound = errors.New("no group for user")

	// Transfer errors
	ErrSameAccount      = errors.New("cannot transfer to same account")
	ErrTransferNotFound = errors.New("transfer not found")

	// ErrVersionConflict signals a concurrent modification of the same
	// aggregate. The caller decides whether to retry.
	ErrVersionConflict = errors.New("aggregate was modified concurrently")
)
