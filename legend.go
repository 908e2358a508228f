package stockchart

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// LegendEntry is one display line of the crosshair legend.
type LegendEntry struct {
	Label string
	Text  string
}

// LegendOptions tune how a resolved point is formatted.
type LegendOptions struct {
	// Anonymize hides absolute position sizes: the bought/sold line keeps
	// its direction but not its magnitude.
	Anonymize bool
}

// Legend formats a resolved point into ordered label/text pairs: the
// calendar date, the four quotes at two decimals, the raw traded volume,
// and, when the point carries a non-zero position, the day's average price
// and a bought/sold line keyed on the sign of the net quantity. Fields with
// no defined value are left out entirely, never shown as zero.
func Legend(pt EnrichedBar, opts LegendOptions) []LegendEntry {
	entries := []LegendEntry{
		{"date", pt.Date.String()},
		{"open", pt.Open.StringFixed(2)},
		{"high", pt.High.StringFixed(2)},
		{"low", pt.Low.StringFixed(2)},
		{"close", pt.Close.StringFixed(2)},
	}
	if pt.Volume != nil {
		entries = append(entries, LegendEntry{"volume", strconv.FormatInt(*pt.Volume, 10)})
	}
	if pt.Position == nil {
		return entries
	}
	avg, ok := pt.Position.AveragePrice()
	if !ok {
		// The day's buys and sells matched exactly: no price, no direction.
		return entries
	}
	entries = append(entries, LegendEntry{"@ price", avg.StringFixed(2)})

	label := "bought"
	if pt.Position.NetQuantity < 0 {
		label = "sold"
	}
	size := strconv.FormatInt(abs64(pt.Position.NetQuantity), 10)
	if opts.Anonymize {
		size = "undisclosed"
	}
	return append(entries, LegendEntry{label, size})
}

// Summary renders the whole-series holding as one line, "15 @ $191.78
// +12.3%", comparing the average price paid with the latest close. The
// count is hidden when anonymize is set, and an empty string is returned
// when nothing is held.
func (t PositionTotals) Summary(lastClose decimal.Decimal, currency string, anonymize bool) string {
	avg, ok := t.AveragePrice()
	if !ok {
		return ""
	}
	count := ""
	if !anonymize {
		count = fmt.Sprintf("%d @ ", t.Quantity)
	}
	deltaText := ""
	// a zero average happens on valid input (partial sells netting to zero
	// cost); there is no meaningful delta against it.
	if !lastClose.IsZero() && !avg.IsZero() {
		delta := lastClose.Div(avg).Mul(decimal.NewFromInt(100)).Sub(decimal.NewFromInt(100))
		if !delta.IsZero() {
			sign := ""
			if delta.IsPositive() {
				sign = "+"
			}
			deltaText = " " + sign + delta.StringFixed(1) + "%"
		}
	}
	return count + M(avg, currency).String() + deltaText
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
