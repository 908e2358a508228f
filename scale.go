package stockchart

import "math"

// pricePadding is subtracted from the price domain floor so the price line
// never hugs the bottom edge of its band.
const pricePadding = 5

// LinearScale is an affine map from a data domain [d0,d1] onto a pixel range
// [r0,r1], with its inverse. It is pure data, independent of any rendering
// API; a renderer only ever calls Map, a pointer handler only Invert.
type LinearScale struct {
	d0, d1 float64
	r0, r1 float64
}

// NewLinearScale builds the scale mapping [d0,d1] onto [r0,r1]. An inverted
// pixel range (r0 > r1) is fine and is how y scales grow upward.
func NewLinearScale(d0, d1, r0, r1 float64) LinearScale {
	return LinearScale{d0: d0, d1: d1, r0: r0, r1: r1}
}

// Map converts a domain value to its pixel position. A degenerate domain
// (min == max) collapses to the middle of the pixel range instead of
// dividing by zero.
func (s LinearScale) Map(v float64) float64 {
	if s.d1 == s.d0 {
		return (s.r0 + s.r1) / 2
	}
	return s.r0 + (v-s.d0)/(s.d1-s.d0)*(s.r1-s.r0)
}

// Invert converts a pixel position back to a domain value. Degenerate scales
// invert to the domain floor.
func (s LinearScale) Invert(p float64) float64 {
	if s.r1 == s.r0 || s.d1 == s.d0 {
		return s.d0
	}
	return s.d0 + (p-s.r0)/(s.r1-s.r0)*(s.d1-s.d0)
}

// TimeScale maps calendar dates onto a horizontal pixel range, linearly over
// whole-day offsets from the domain start.
type TimeScale struct {
	epoch Date
	days  LinearScale
}

// NewTimeScale builds the scale mapping [from,to] onto [r0,r1] pixels.
func NewTimeScale(from, to Date, r0, r1 float64) TimeScale {
	return TimeScale{
		epoch: from,
		days:  NewLinearScale(0, float64(to.Sub(from)), r0, r1),
	}
}

// Map converts a date to its pixel position.
func (s TimeScale) Map(d Date) float64 { return s.days.Map(float64(d.Sub(s.epoch))) }

// Invert converts a pixel position to a continuous day offset from the
// domain start. Fractional offsets fall between trading days.
func (s TimeScale) Invert(p float64) float64 { return s.days.Invert(p) }

// InvertDate converts a pixel position to the nearest calendar date,
// preferring the earlier day when the position is exactly between two.
func (s TimeScale) InvertDate(p float64) Date {
	off := s.Invert(p)
	return s.epoch.Add(int(math.Ceil(off - 0.5)))
}

// Scales holds the four coordinate mappings of one chart: the shared time
// axis, and independent vertical bands for price, traded volume and position
// size. The three value series share a canvas but never a scale.
type Scales struct {
	Time     TimeScale
	Price    LinearScale // full height, growing upward
	Volume   LinearScale // bottom quarter of the canvas
	Position LinearScale // position magnitude, top quarter
}

// BuildScales computes the domain extrema of a joined series once and
// derives all four mappings for a width x height canvas. The series must not
// be empty.
func BuildScales(series []EnrichedBar, width, height float64) Scales {
	first, last := series[0].Date, series[len(series)-1].Date

	minClose, maxClose := math.Inf(1), math.Inf(-1)
	minVol, maxVol := math.Inf(1), math.Inf(-1)
	minPos, maxPos := math.Inf(1), math.Inf(-1)
	hasVol, hasPos := false, false

	for _, b := range series {
		c := b.Close.InexactFloat64()
		minClose = math.Min(minClose, c)
		maxClose = math.Max(maxClose, c)

		// zero-volume days carry no drawable bar, same as missing volume.
		if b.Volume != nil && *b.Volume > 0 {
			v := float64(*b.Volume)
			minVol, maxVol = math.Min(minVol, v), math.Max(maxVol, v)
			hasVol = true
		}
		if b.Position != nil {
			m := math.Abs(float64(b.Position.NetQuantity))
			minPos, maxPos = math.Min(minPos, m), math.Max(maxPos, m)
			hasPos = true
		}
	}
	if !hasVol {
		minVol, maxVol = 0, 0
	}
	if !hasPos {
		minPos, maxPos = 0, 0
	}

	return Scales{
		Time:     NewTimeScale(first, last, 0, width),
		Price:    NewLinearScale(minClose-pricePadding, maxClose, height, 0),
		Volume:   NewLinearScale(minVol, maxVol, height, height*3/4),
		Position: NewLinearScale(minPos, maxPos, 0, height/4),
	}
}
