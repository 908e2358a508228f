package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/stockchart/renderer"
)

type summaryCmd struct {
	chartFlags
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the chart period, latest bar and holding" }
func (*summaryCmd) Usage() string {
	return `schart summary [-after <date>] [-before <date>] [-anon]

  Prints a report of the loaded chart: the plotted period, the latest bar's
  legend, and the cumulative holding with its average price paid against
  the latest close.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.chartFlags.register(f)
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	chart, quotes, err := c.loadChart()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Markdown(chart, quotes.Symbol))
	return subcommands.ExitSuccess
}
