package moneybook

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money pairs an exact decimal amount with a currency code for display.
// Amounts inside the document stay plain decimals; Money only enters the
// picture when a value is rendered for a human.
type Money struct {
	value decimal.Decimal // in major units
	cur   string
}

func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// currency returns a never-nil currency, falling back to a generic
// formatter for unknown codes.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String formats the amount with the currency's grapheme and fraction rules.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// SignedString is like String but with an explicit sign, and "-" for zero.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string        { return m.cur }
func (m Money) Amount() decimal.Decimal { return m.value }
func (m Money) IsZero() bool            { return m.value.IsZero() }
func (m Money) IsNegative() bool        { return m.value.IsNegative() }
func (m Money) Neg() Money              { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Add(n Money) Money       { return Money{value: m.value.Add(n.value), cur: m.cur} }
func (m Money) Sub(n Money) Money       { return Money{value: m.value.Sub(n.value), cur: m.cur} }

// ValidCurrency reports whether code names a currency known to the
// formatting tables.
func ValidCurrency(code string) bool {
	return money.GetCurrency(code) != nil
}
