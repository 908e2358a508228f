package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/etnz/stockchart/renderer"
)

type renderCmd struct {
	chartFlags
	output string
}

func (*renderCmd) Name() string     { return "render" }
func (*renderCmd) Synopsis() string { return "render the annotated chart to SVG or HTML" }
func (*renderCmd) Usage() string {
	return `schart render [-o <file.svg|file.html>] [-after <date>] [-before <date>]

  Builds the annotated chart from the chart document and renders it. The
  output format follows the file extension: .svg for the bare image, .html
  for a full report page.

Usage Examples:
$ schart render -o tsla.svg -after 2020-06-29
$ schart render -o tsla.html -anon
`
}

func (c *renderCmd) SetFlags(f *flag.FlagSet) {
	c.chartFlags.register(f)
	f.StringVar(&c.output, "o", "chart.svg", "output file, .svg or .html")
}

func (c *renderCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	chart, quotes, err := c.loadChart()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if strings.HasSuffix(c.output, ".html") {
		out, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
		if err := renderer.HTMLReport(chart, quotes.Symbol, out); err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering %s: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
	} else {
		if err := os.WriteFile(c.output, renderer.SVG(chart), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
	}
	fmt.Printf("Rendered %d bars of %s into %s\n", len(chart.Series), quotes.Symbol, c.output)
	return subcommands.ExitSuccess
}
