// Package money holds the decimal amount type used for prices and totals.
package money

import "github.com/shopspring/decimal"

// Amount is a decimal that encodes as a bare JSON number (29.99, not
// "29.99"). Decoding accepts either form.
type Amount struct {
	decimal.Decimal
}

func MustParse(s string) Amount {
	return Amount{Decimal: decimal.RequireFromString(s)}
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}
