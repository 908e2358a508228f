package stockchart

import (
	"log"

	"github.com/shopspring/decimal"
)

// Bar is one trading day of the market feed. The engine never mutates a
// Bar's quote fields; it only decorates bars with user positions.
//
// Volume is nil when the feed reported none for that day.
type Bar struct {
	Date   Date
	Open   decimal.Decimal
	High   decimal.Decimal
	Low    decimal.Decimal
	Close  decimal.Decimal
	Volume *int64
}

// complete reports whether all four quote fields carry a usable value.
// Feeds encode a missing quote as null, which decodes to zero, and a
// zero-priced bar cannot be plotted either way.
func (b Bar) complete() bool {
	return !b.Open.IsZero() && !b.High.IsZero() && !b.Low.IsZero() && !b.Close.IsZero()
}

// EnrichedBar is a Bar joined with the day's trading activity, when any.
//
// Position is nil when the user did not trade that day. That is distinct
// from a non-nil position netting to zero shares: the latter still shows in
// the legend as matched activity with no average price.
type EnrichedBar struct {
	Bar
	Position *DailyPosition
}

// CleanBars removes bars with a missing open, high, low or close. A partial
// record cannot be plotted safely, so it is excluded from the series rather
// than surfaced as a per-point error.
func CleanBars(bars []Bar) []Bar {
	kept := make([]Bar, 0, len(bars))
	for _, b := range bars {
		if b.complete() {
			kept = append(kept, b)
		}
	}
	return kept
}

// FilterRange keeps the bars whose date passes the cutoffs.
func FilterRange(bars []Bar, r Range) []Bar {
	if r.IsZero() {
		return bars
	}
	kept := make([]Bar, 0, len(bars))
	for _, b := range bars {
		if r.Contains(b.Date) {
			kept = append(kept, b)
		}
	}
	return kept
}

// Join decorates each bar with the daily position for its date, preserving
// bar order and count exactly. Bars are required to be strictly ascending by
// date; a disordered or duplicated feed is broken input, not something to
// silently re-sort.
//
// Positions dated off the bar grid (a non-trading day, or outside the
// plotted period) are left out of the joined series. When debug is true each
// dropped date is logged, so a mistyped transaction date is at least visible.
func Join(bars []Bar, positions map[Date]DailyPosition, debug bool) ([]EnrichedBar, error) {
	series := make([]EnrichedBar, 0, len(bars))
	matched := 0
	for i, b := range bars {
		if i > 0 && bars[i-1].Date.Compare(b.Date) >= 0 {
			return nil, invalidInput("bars", "dates not strictly ascending at %s", b.Date)
		}
		eb := EnrichedBar{Bar: b}
		if p, ok := positions[b.Date]; ok {
			p := p
			eb.Position = &p
			matched++
		}
		series = append(series, eb)
	}
	if debug && matched < len(positions) {
		for day := range positions {
			if _, ok := findDate(series, day); !ok {
				log.Printf("transaction on %s has no bar, dropped from the chart", day)
			}
		}
	}
	return series, nil
}

// findDate reports whether the series has a bar exactly at day.
func findDate(series []EnrichedBar, day Date) (int, bool) {
	for i, b := range series {
		if b.Date == day {
			return i, true
		}
	}
	return 0, false
}
