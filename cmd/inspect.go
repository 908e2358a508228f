package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/stockchart"
	"github.com/etnz/stockchart/renderer"
)

type inspectCmd struct {
	chartFlags
	date string
	x    float64
}

func (*inspectCmd) Name() string     { return "inspect" }
func (*inspectCmd) Synopsis() string { return "show the legend for the bar nearest a date" }
func (*inspectCmd) Usage() string {
	return `schart inspect [-d <date>] [-x <pixel>]

  Resolves a date (or a pixel x-coordinate, the way a pointer event would)
  to the nearest trading day and prints its legend: date, quotes, volume,
  and your own activity that day if any. Defaults to the latest bar.

Usage Examples:
$ schart inspect -d 2021-01-05
$ schart inspect -x 420.5
`
}

func (c *inspectCmd) SetFlags(f *flag.FlagSet) {
	c.chartFlags.register(f)
	f.StringVar(&c.date, "d", "", "date to inspect")
	f.Float64Var(&c.x, "x", -1, "pixel x-coordinate to inspect, overrides -d")
}

func (c *inspectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	chart, _, err := c.loadChart()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var ch stockchart.Crosshair
	switch {
	case c.x >= 0:
		ch = chart.Crosshair(c.x)
	case c.date != "":
		d, err := stockchart.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -d: %v\n", err)
			return subcommands.ExitUsageError
		}
		ch = chart.At(d)
	default:
		ch = chart.At(chart.Last().Date)
	}

	printMarkdown(renderer.LegendMarkdown(ch))
	if c.debug {
		fmt.Printf("resolved to (%.1f, %.1f)\n", ch.X, ch.Y)
	}
	return subcommands.ExitSuccess
}
