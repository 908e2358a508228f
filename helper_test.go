package stockchart

import (
	"testing"

	"github.com/shopspring/decimal"
)

// day is a terse fixture helper for test dates.
func day(t *testing.T, str string) Date {
	t.Helper()
	d, err := ParseDate(str)
	if err != nil {
		t.Fatalf("bad fixture date %q: %v", str, err)
	}
	return d
}

// bar builds a complete fixture bar. vol < 0 means the feed reported no
// volume.
func bar(t *testing.T, date string, open, high, low, close float64, vol int64) Bar {
	t.Helper()
	b := Bar{
		Date:  day(t, date),
		Open:  decimal.NewFromFloat(open),
		High:  decimal.NewFromFloat(high),
		Low:   decimal.NewFromFloat(low),
		Close: decimal.NewFromFloat(close),
	}
	if vol >= 0 {
		b.Volume = &vol
	}
	return b
}

// tx builds a fixture transaction.
func tx(t *testing.T, side Side, date string, qty int64, price float64) Transaction {
	t.Helper()
	return Transaction{
		Side:     side,
		Date:     day(t, date),
		Quantity: qty,
		Price:    decimal.NewFromFloat(price),
	}
}

// cp is a date/close pair for terse series fixtures.
type cp struct {
	date  string
	close float64
}

// seriesOf builds an enriched series with only dates and closes set, for
// derivation and resolution tests that ignore the other fields.
func seriesOf(t *testing.T, points ...cp) []EnrichedBar {
	t.Helper()
	series := make([]EnrichedBar, 0, len(points))
	for _, p := range points {
		series = append(series, EnrichedBar{Bar: bar(t, p.date, p.close, p.close, p.close, p.close, -1)})
	}
	return series
}
