package stockchart

import "log"

// Default canvas size, used when the caller does not provide one.
const (
	DefaultWidth  = 960
	DefaultHeight = 500
)

// Options carries the display parameters of one chart load. They arrive
// decoded by the caller (CLI flags, URL fragment, ...); the engine treats
// them as plain values.
type Options struct {
	Span      int     // moving-average trailing offset, DefaultAverageSpan when 0
	Cutoff    Range   // optional before/after date trimming
	Width     float64 // canvas width in pixels
	Height    float64 // canvas height in pixels
	Currency  string  // currency of the charted security, for money display
	Anonymize bool    // hide absolute position sizes
	Debug     bool    // log domain extrema and dropped transactions
}

func (o Options) withDefaults() Options {
	if o.Span == 0 {
		o.Span = DefaultAverageSpan
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	return o
}

// Chart is one fully-derived load cycle: the joined series, its derived
// curves and totals, and the coordinate mappings, all computed from the
// inputs in one pass. Every field is a fresh immutable value; a new load
// builds a new Chart instead of mutating this one.
type Chart struct {
	Series  []EnrichedBar
	Average []MovingAveragePoint
	Totals  PositionTotals
	Scales  Scales

	opts Options
}

// New runs one load cycle: clean the bars, trim them to the cutoff range,
// aggregate and join the transactions, and derive the moving average,
// totals and scales. Nothing is exposed unless the whole cycle succeeds.
//
// An empty post-filter series returns ErrNoData; broken transactions or a
// disordered bar feed return an InvalidInputError.
func New(bars []Bar, transactions []Transaction, opts Options) (*Chart, error) {
	opts = opts.withDefaults()

	bars = FilterRange(CleanBars(bars), opts.Cutoff)
	if len(bars) == 0 {
		return nil, ErrNoData
	}

	positions, err := Aggregate(transactions)
	if err != nil {
		return nil, err
	}
	series, err := Join(bars, positions, opts.Debug)
	if err != nil {
		return nil, err
	}

	c := &Chart{
		Series:  series,
		Average: MovingAverage(series, opts.Span),
		Totals:  Totals(series),
		Scales:  BuildScales(series, opts.Width, opts.Height),
		opts:    opts,
	}
	if opts.Debug {
		log.Printf("chart: %d bars from %s to %s, %d position days",
			len(series), series[0].Date, series[len(series)-1].Date, len(positions))
	}
	return c, nil
}

// Options returns the effective options of the load, defaults applied.
func (c *Chart) Options() Options { return c.opts }

// Last returns the most recent bar of the series.
func (c *Chart) Last() EnrichedBar { return c.Series[len(c.Series)-1] }

// Summary renders the whole-series holding against the latest close, or ""
// when no bar carries a position.
func (c *Chart) Summary() string {
	return c.Totals.Summary(c.Last().Close, c.opts.Currency, c.opts.Anonymize)
}

// Crosshair is the outcome of one pointer event: the resolved data point,
// its pixel position, and its legend lines.
type Crosshair struct {
	Point  EnrichedBar
	X, Y   float64
	Legend []LegendEntry
}

// Crosshair resolves a pointer x-coordinate to the nearest bar. Each call
// is independent and stateless: two queued pointer events evaluate in
// arrival order and the last result simply wins the display.
func (c *Chart) Crosshair(x float64) Crosshair {
	pt := c.Series[Nearest(c.Series, c.Scales.Time.InvertDate(x))]
	return Crosshair{
		Point:  pt,
		X:      c.Scales.Time.Map(pt.Date),
		Y:      c.Scales.Price.Map(pt.Close.InexactFloat64()),
		Legend: Legend(pt, LegendOptions{Anonymize: c.opts.Anonymize}),
	}
}

// At resolves a calendar date instead of a pixel position, for non-pointer
// callers such as the CLI.
func (c *Chart) At(day Date) Crosshair {
	return c.Crosshair(c.Scales.Time.Map(day))
}
