package stockchart

import (
	"github.com/shopspring/decimal"
)

// DailyPosition is the net trading activity for one calendar date: every
// buy and sell dated that day folded into one signed quantity and cost.
type DailyPosition struct {
	NetQuantity int64           // positive when the day nets to a buy
	NetCost     decimal.Decimal // signed, same convention as NetQuantity
}

// AveragePrice returns the unsigned average price paid (or received) that
// day. A day whose buys and sells net to exactly zero has no average price,
// reported by ok=false rather than a division by zero.
func (p DailyPosition) AveragePrice() (avg decimal.Decimal, ok bool) {
	if p.NetQuantity == 0 {
		return decimal.Decimal{}, false
	}
	return p.NetCost.Div(decimal.NewFromInt(p.NetQuantity)).Abs(), true
}

// Aggregate folds a transaction list into one DailyPosition per calendar
// date. Input order is irrelevant: accumulation within a date is associative
// and commutative. A fresh map is returned on every call, no state is kept
// between loads.
//
// The first structurally broken transaction aborts the whole aggregation:
// a record must not be dropped silently.
func Aggregate(transactions []Transaction) (map[Date]DailyPosition, error) {
	positions := make(map[Date]DailyPosition, len(transactions))
	for _, tx := range transactions {
		if err := tx.Validate(); err != nil {
			return nil, err
		}
		qty := tx.Quantity * tx.Side.sign()
		p := positions[tx.Date]
		p.NetQuantity += qty
		p.NetCost = p.NetCost.Add(tx.Price.Mul(decimal.NewFromInt(qty)))
		positions[tx.Date] = p
	}
	return positions, nil
}

// PositionTotals is the cumulative position over the whole plotted series:
// total signed quantity, total signed cost, and the resulting average price
// paid. It is computed once per load from the joined series and never
// updated in place.
type PositionTotals struct {
	Quantity int64
	Cost     decimal.Decimal
}

// AveragePrice returns the unsigned average cost per share over the whole
// series, ok=false when the position nets to zero (nothing held, nothing to
// display).
func (t PositionTotals) AveragePrice() (avg decimal.Decimal, ok bool) {
	return DailyPosition{NetQuantity: t.Quantity, NetCost: t.Cost}.AveragePrice()
}

// IsZero reports whether no bar in the series carried a position.
func (t PositionTotals) IsZero() bool { return t.Quantity == 0 && t.Cost.IsZero() }

// Totals folds the positions attached to a joined series. Bars without a
// position contribute nothing; an all-bare series yields the zero totals.
func Totals(series []EnrichedBar) PositionTotals {
	var t PositionTotals
	for _, b := range series {
		if b.Position == nil {
			continue
		}
		t.Quantity += b.Position.NetQuantity
		t.Cost = t.Cost.Add(b.Position.NetCost)
	}
	return t
}
