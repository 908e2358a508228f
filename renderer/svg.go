// Package renderer draws a loaded chart. It consumes the engine's series,
// derived curves and scale mappings as opaque data and owns no aggregation
// logic of its own.
package renderer

import (
	"bytes"
	"fmt"
	"html"
	"strconv"

	"github.com/etnz/stockchart"
)

// palette of the chart.
const (
	colorUp      = "#03a678" // rising volume bar, net-buy marker
	colorDown    = "#c0392b" // falling volume bar, net-sell marker
	colorPrice   = "steelblue"
	colorAverage = "#FF8900"
	colorPaid    = "rgba(255, 220, 200, 0.75)" // average price paid line
	colorText    = "#e8e8e8"
	colorBack    = "#12161f"
)

// Margin is the space around the plot area, where axis labels live.
const Margin = 50.0

// SVG renders the chart as a standalone SVG image. The plot area has the
// chart's canvas size; margins are added around it.
func SVG(c *stockchart.Chart) []byte {
	opts := c.Options()
	w, h := opts.Width, opts.Height
	total := func(v float64) string { return ftoa(v + 2*Margin) }

	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s" font-family="sans-serif" font-size="11">`+"\n",
		total(w), total(h), total(w), total(h))
	fmt.Fprintf(&buf, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", colorBack)
	fmt.Fprintf(&buf, `<g transform="translate(%v, %v)">`+"\n", Margin, Margin)

	writeAxes(&buf, c, w, h)
	writeVolumeBars(&buf, c)
	writePriceLine(&buf, c)
	writeAverageLine(&buf, c)
	writeTradeMarkers(&buf, c)
	writePaidLine(&buf, c)

	buf.WriteString("</g>\n</svg>\n")
	return buf.Bytes()
}

// writePriceLine draws the closing price as a polyline.
func writePriceLine(buf *bytes.Buffer, c *stockchart.Chart) {
	var path bytes.Buffer
	for i, b := range c.Series {
		x := c.Scales.Time.Map(b.Date)
		y := c.Scales.Price.Map(b.Close.InexactFloat64())
		if i == 0 {
			fmt.Fprintf(&path, "M%s %s", ftoa(x), ftoa(y))
		} else {
			fmt.Fprintf(&path, " L%s %s", ftoa(x), ftoa(y))
		}
	}
	fmt.Fprintf(buf, `<path id="priceChart" fill="none" stroke="%s" stroke-width="1.5" d="%s"/>`+"\n",
		colorPrice, path.String())
}

// writeAverageLine draws the moving average as a smoothed curve: quadratic
// segments through the midpoints, the cheap stand-in for a basis spline.
func writeAverageLine(buf *bytes.Buffer, c *stockchart.Chart) {
	if len(c.Average) == 0 {
		return
	}
	pts := make([][2]float64, 0, len(c.Average))
	for _, p := range c.Average {
		pts = append(pts, [2]float64{
			c.Scales.Time.Map(p.Date),
			c.Scales.Price.Map(p.Average.InexactFloat64()),
		})
	}
	var path bytes.Buffer
	fmt.Fprintf(&path, "M%s %s", ftoa(pts[0][0]), ftoa(pts[0][1]))
	for i := 1; i < len(pts)-1; i++ {
		mx, my := (pts[i][0]+pts[i+1][0])/2, (pts[i][1]+pts[i+1][1])/2
		fmt.Fprintf(&path, " Q%s %s %s %s", ftoa(pts[i][0]), ftoa(pts[i][1]), ftoa(mx), ftoa(my))
	}
	last := pts[len(pts)-1]
	fmt.Fprintf(&path, " L%s %s", ftoa(last[0]), ftoa(last[1]))
	fmt.Fprintf(buf, `<path id="movingAverageLine" fill="none" stroke="%s" d="%s"/>`+"\n",
		colorAverage, path.String())
}

// writeVolumeBars draws one 1px bar per reported volume, green when the
// close rose from the previous drawable day, red when it fell.
func writeVolumeBars(buf *bytes.Buffer, c *stockchart.Chart) {
	opts := c.Options()
	var prev *stockchart.EnrichedBar
	for i := range c.Series {
		b := c.Series[i]
		if b.Volume == nil || *b.Volume <= 0 {
			continue
		}
		fill := colorUp
		if prev != nil && prev.Close.GreaterThan(b.Close) {
			fill = colorDown
		}
		x := c.Scales.Time.Map(b.Date)
		y := c.Scales.Volume.Map(float64(*b.Volume))
		fmt.Fprintf(buf, `<rect class="vol" x="%s" y="%s" width="1" height="%s" fill="%s"/>`+"\n",
			ftoa(x), ftoa(y), ftoa(opts.Height-y), fill)
		prev = &c.Series[i]
	}
}

// writeTradeMarkers draws the user's trading days: a vertical notch at the
// day's average price, a horizontal bar through it whose length encodes the
// position magnitude, and a top-edge bar with the same encoding.
func writeTradeMarkers(buf *bytes.Buffer, c *stockchart.Chart) {
	for _, b := range c.Series {
		if b.Position == nil {
			continue
		}
		avg, ok := b.Position.AveragePrice()
		if !ok {
			continue
		}
		fill := colorUp
		if b.Position.NetQuantity < 0 {
			fill = colorDown
		}
		x := c.Scales.Time.Map(b.Date)
		y := c.Scales.Price.Map(avg.InexactFloat64())
		size := c.Scales.Position.Map(float64(abs(b.Position.NetQuantity)))

		fmt.Fprintf(buf, `<rect class="txn" x="%s" y="%s" width="1" height="10" fill="%s"/>`+"\n",
			ftoa(x), ftoa(y-5), fill)
		fmt.Fprintf(buf, `<rect class="txn" x="%s" y="%s" width="%s" height="1" fill="%s"/>`+"\n",
			ftoa(x-size/2), ftoa(y), ftoa(size), fill)
		fmt.Fprintf(buf, `<rect class="txn" x="%s" y="0" width="1" height="%s" fill="%s"/>`+"\n",
			ftoa(x), ftoa(size), fill)
	}
}

// writePaidLine draws the average price paid across the whole series, from
// the first to the last trading day, with the summary label above it.
func writePaidLine(buf *bytes.Buffer, c *stockchart.Chart) {
	avg, ok := c.Totals.AveragePrice()
	if !ok {
		return
	}
	var first, last stockchart.Date
	for _, b := range c.Series {
		if b.Position == nil {
			continue
		}
		if first.IsZero() {
			first = b.Date
		}
		last = b.Date
	}
	x0, x1 := c.Scales.Time.Map(first), c.Scales.Time.Map(last)
	y := c.Scales.Price.Map(avg.InexactFloat64())
	fmt.Fprintf(buf, `<line id="averagePricePaid" x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s"/>`+"\n",
		ftoa(x0), ftoa(y), ftoa(x1), ftoa(y), colorPaid)

	summary := c.Summary()
	if summary == "" {
		return
	}
	fill := colorPaid
	lastClose := c.Last().Close.InexactFloat64()
	if lastClose > avg.InexactFloat64() {
		fill = colorUp
	} else if lastClose < avg.InexactFloat64() {
		fill = colorDown
	}
	fmt.Fprintf(buf, `<text x="%s" y="%s" fill="%s">%s</text>`+"\n",
		ftoa(x0+5), ftoa(y-5), fill, html.EscapeString(summary))
}

// writeAxes draws first/last date labels along the bottom and min/max close
// labels along the right edge.
func writeAxes(buf *bytes.Buffer, c *stockchart.Chart, w, h float64) {
	first, last := c.Series[0], c.Last()
	fmt.Fprintf(buf, `<text x="0" y="%s" fill="%s">%s</text>`+"\n",
		ftoa(h+20), colorText, first.Date)
	fmt.Fprintf(buf, `<text x="%s" y="%s" fill="%s" text-anchor="end">%s</text>`+"\n",
		ftoa(w), ftoa(h+20), colorText, last.Date)

	lo := c.Scales.Price.Invert(h)
	hi := c.Scales.Price.Invert(0)
	fmt.Fprintf(buf, `<text x="%s" y="%s" fill="%s">%s</text>`+"\n",
		ftoa(w+5), ftoa(h), colorText, strconv.FormatFloat(lo, 'f', 2, 64))
	fmt.Fprintf(buf, `<text x="%s" y="12" fill="%s">%s</text>`+"\n",
		ftoa(w+5), colorText, strconv.FormatFloat(hi, 'f', 2, 64))
}

func ftoa(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
