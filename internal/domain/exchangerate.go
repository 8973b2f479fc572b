package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// rateScale is the number of fractional digits an exchange rate carries.
const rateScale = 6

// ExchangeRate is an immutable conversion factor between two currencies.
type ExchangeRate struct {
	rate decimal.Decimal
	from Currency
	to   Currency
}

// NewExchangeRate creates an ExchangeRate. The rate must be positive.
func NewExchangeRate(rate decimal.Decimal, from, to Currency) (ExchangeRate, error) {
	if rate.LessThanOrEqual(decimal.Zero) {
		return ExchangeRate{}, fmt.Errorf("%w: %s", ErrInvalidExchangeRate, rate)
	}

	return ExchangeRate{rate: rate.Round(rateScale), from: from, to: to}, nil
}

// IdentityRate returns the trivial 1:1 rate within a single currency.
func IdentityRate(currency Currency) ExchangeRate {
	return ExchangeRate{rate: decimal.NewFromInt(1), from: currency, to: currency}
}

// CalculateRate derives the rate implied by pricing source as target:
// target amount divided by source amount, at six decimals.
func CalculateRate(source, target Money) (ExchangeRate, error) {
	if source.Amount().IsZero() {
		return ExchangeRate{}, fmt.Errorf("%w: source amount is zero", ErrInvalidExchangeRate)
	}

	rate := target.Amount().DivRound(source.Amount(), rateScale)

	return NewExchangeRate(rate, source.Currency(), target.Currency())
}

// Rate returns the conversion factor.
func (r ExchangeRate) Rate() decimal.Decimal {
	return r.rate
}

// From returns the source currency.
func (r ExchangeRate) From() Currency {
	return r.from
}

// To returns the target currency.
func (r ExchangeRate) To() Currency {
	return r.to
}

// Convert applies the rate to a source amount. The result is in the target
// currency, normalized to two decimals. The input is expected to be in the
// source currency.
func (r ExchangeRate) Convert(m Money) Money {
	return Money{
		amount:   m.Amount().Mul(r.rate).Round(moneyScale),
		currency: r.to,
	}
}

type exchangeRateJSON struct {
	Rate string `json:"rate"`
	From string `json:"from"`
	To   string `json:"to"`
}

// MarshalJSON serializes the rate as a six-decimal string.
func (r ExchangeRate) MarshalJSON() ([]byte, error) {
	return json.Marshal(exchangeRateJSON{
		Rate: r.rate.StringFixed(rateScale),
		From: string(r.from),
		To:   string(r.to),
	})
}

// UnmarshalJSON parses and validates the wire representation.
func (r *ExchangeRate) UnmarshalJSON(data []byte) error {
	var raw exchangeRateJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	from, err := ParseCurrency(raw.From)
	if err != nil {
		return err
	}

	to, err := ParseCurrency(raw.To)
	if err != nil {
		return err
	}

	rate, err := decimal.NewFromString(raw.Rate)
	if err != nil {
		return fmt.Errorf("invalid rate %q: %w", raw.Rate, err)
	}

	parsed, err := NewExchangeRate(rate, from, to)
	if err != nil {
		return err
	}

	*r = parsed

	return nil
}
