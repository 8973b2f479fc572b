package domain

import "fmt"

// Currency is an ISO 4217 code from the closed set this ledger supports.
type Currency string

// Supported currencies.
const (
	CurrencyPLN Currency = "PLN"
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
)

var validCurrencies = map[Currency]struct{}{
	CurrencyPLN: {},
	CurrencyEUR: {},
	CurrencyUSD: {},
	CurrencyGBP: {},
}

// ParseCurrency parses a currency code, rejecting anything outside the
// supported set.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(code)
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
	}

	return c, nil
}

// IsValid reports whether the currency belongs to the supported set.
func (c Currency) IsValid() bool {
	_, ok := validCurrencies[c]
	return ok
}

func (c Currency) String() string {
	return string(c)
}
