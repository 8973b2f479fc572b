package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of fractional digits every Money amount carries.
const moneyScale = 2

// Money is an immutable amount of a single currency. The amount is always
// normalized to two fractional digits, rounded half-up.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney creates a Money value, normalizing the amount to two decimals.
func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	if !currency.IsValid() {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidCurrency, string(currency))
	}

	return Money{amount: amount.Round(moneyScale), currency: currency}, nil
}

// Zero returns a zero amount in the given currency.
func Zero(currency Currency) (Money, error) {
	return NewMoney(decimal.Zero, currency)
}

// Amount returns the normalized amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency.
func (m Money) Currency() Currency {
	return m.currency
}

// Add returns the sum of two amounts of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.currency, other.currency)
	}

	return Money{amount: m.amount.Add(other.amount).Round(moneyScale), currency: m.currency}, nil
}

// Sub returns the difference of two amounts of the same currency.
func (m Money) Sub(other Money) (Money, error) {
	return m.Add(other.Neg())
}

// Mul scales the amount by an arbitrary-precision factor and re-normalizes.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor).Round(moneyScale), currency: m.currency}
}

// Neg returns the amount negated.
func (m Money) Neg() Money {
	return Money{amount: m.amount.Neg(), currency: m.currency}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Equal reports whether both currency and amount match.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String renders the amount with two decimals and the currency code.
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale) + " " + string(m.currency)
}

type moneyJSON struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// MarshalJSON serializes Money as a two-decimal string plus currency code.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{
		Amount:   m.amount.StringFixed(moneyScale),
		Currency: string(m.currency),
	})
}

// UnmarshalJSON parses and validates the wire representation.
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw moneyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	currency, err := ParseCurrency(raw.Currency)
	if err != nil {
		return err
	}

	amount, err := decimal.NewFromString(raw.Amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", raw.Amount, err)
	}

	parsed, err := NewMoney(amount, currency)
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}
