package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Money is a decimal amount in an ISO-4217 currency, as returned by the
// identity provider. The amount stays a string end to end; it is parsed only
// for display.
type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

// Display symbols and spelled-out names for the currencies the storefront
// sells in. Codes outside these tables fall back to "<amount> <code>".
var symbols = map[string]string{
	"USD": "$",
	"CAD": "CA$",
	"EUR": "€",
	"GBP": "£",
	"AUD": "A$",
	"NZD": "NZ$",
	"JPY": "¥",
}

var names = map[string]string{
	"USD": "US dollars",
	"CAD": "Canadian dollars",
	"EUR": "euros",
	"GBP": "British pounds",
	"AUD": "Australian dollars",
	"NZD": "New Zealand dollars",
	"JPY": "Japanese yen",
}

// Format renders the money for display, e.g. "$150.00" or "CA$150.00".
// An amount that does not parse as a finite number or a currency code that is
// not valid ISO 4217 produces a plain-text fallback instead of an error.
func (m Money) Format() string {
	amount, err := decimal.NewFromString(m.Amount)
	if err != nil {
		return fallback(m.Amount, m.CurrencyCode)
	}

	unit, err := currency.ParseISO(m.CurrencyCode)
	if err != nil {
		return fallback(amount.StringFixed(2), m.CurrencyCode)
	}

	symbol, ok := symbols[unit.String()]
	if !ok {
		return fallback(amount.StringFixed(2), unit.String())
	}

	return symbol + amount.StringFixed(2)
}

// Label renders the money with the currency spelled out, e.g.
// "150.00 US dollars", for assistive technology. Fallbacks mirror Format.
func (m Money) Label() string {
	amount, err := decimal.NewFromString(m.Amount)
	if err != nil {
		return fallback(m.Amount, m.CurrencyCode)
	}

	unit, err := currency.ParseISO(m.CurrencyCode)
	if err != nil {
		return fallback(amount.StringFixed(2), m.CurrencyCode)
	}

	name, ok := names[unit.String()]
	if !ok {
		name = unit.String()
	}

	return amount.StringFixed(2) + " " + name
}

func fallback(amount, code string) string {
	if code == "" {
		return amount
	}

	return amount + " " + code
}
