package stockchart

import "github.com/shopspring/decimal"

// DefaultAverageSpan is the trailing offset of the default simple moving
// average: each point averages over itself and the 49 bars before it, a
// 50-day average once the series is long enough.
const DefaultAverageSpan = 49

// MovingAveragePoint is one point of the moving-average curve.
type MovingAveragePoint struct {
	Date    Date
	Average decimal.Decimal
}

// MovingAverage computes the trailing simple moving average of closing
// prices: point i averages close[max(0, i-span) .. i]. The window is clamped
// at the series start, so the first point equals its own close and windows
// grow until they reach span+1 bars. One point per input bar, same dates.
func MovingAverage(series []EnrichedBar, span int) []MovingAveragePoint {
	if span < 0 {
		span = 0
	}
	points := make([]MovingAveragePoint, 0, len(series))
	var sum decimal.Decimal
	for i, b := range series {
		sum = sum.Add(b.Close)
		start := i - span
		if start > 0 {
			sum = sum.Sub(series[start-1].Close)
		} else {
			start = 0
		}
		width := decimal.NewFromInt(int64(i - start + 1))
		points = append(points, MovingAveragePoint{
			Date:    b.Date,
			Average: sum.Div(width),
		})
	}
	return points
}
