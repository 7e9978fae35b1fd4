package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		money Money
		want  string
	}{
		{
			name:  "usd",
			money: Money{Amount: "150.00", CurrencyCode: "USD"},
			want:  "$150.00",
		},
		{
			name:  "cad",
			money: Money{Amount: "150.00", CurrencyCode: "CAD"},
			want:  "CA$150.00",
		},
		{
			name:  "eur",
			money: Money{Amount: "99.9", CurrencyCode: "EUR"},
			want:  "€99.90",
		},
		{
			name:  "amount does not parse",
			money: Money{Amount: "abc", CurrencyCode: "USD"},
			want:  "abc USD",
		},
		{
			name:  "invalid currency code",
			money: Money{Amount: "150.00", CurrencyCode: "NOPE"},
			want:  "150.00 NOPE",
		},
		{
			name:  "valid but unmapped currency",
			money: Money{Amount: "150.00", CurrencyCode: "CHF"},
			want:  "150.00 CHF",
		},
		{
			name:  "empty everything",
			money: Money{},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.money.Format())
		})
	}
}

func TestFormatNeverPanics(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = Money{Amount: "NaN", CurrencyCode: "USD"}.Format()
		_ = Money{Amount: "1e999", CurrencyCode: ""}.Format()
	})
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name  string
		money Money
		want  string
	}{
		{
			name:  "usd",
			money: Money{Amount: "150.00", CurrencyCode: "USD"},
			want:  "150.00 US dollars",
		},
		{
			name:  "cad",
			money: Money{Amount: "150.00", CurrencyCode: "CAD"},
			want:  "150.00 Canadian dollars",
		},
		{
			name:  "unmapped currency falls back to code",
			money: Money{Amount: "150.00", CurrencyCode: "CHF"},
			want:  "150.00 CHF",
		},
		{
			name:  "amount does not parse",
			money: Money{Amount: "abc", CurrencyCode: "USD"},
			want:  "abc USD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.money.Label())
		})
	}
}
