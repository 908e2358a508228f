package stockchart

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a monetary display value: an exact decimal amount paired with the
// currency of the charted security. Math stays on decimal.Decimal; Money
// only exists to format amounts the way the currency wants them formatted.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M pairs an amount with a currency code. An empty code formats as a plain
// 2-decimal number.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// String renders the amount with the currency's own symbol, fraction digits
// and grouping.
func (m Money) String() string {
	if m.cur == "" {
		return m.value.StringFixed(2)
	}
	cur := *money.New(0, m.cur).Currency()
	minor := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}
