package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/stockchart"
	"github.com/etnz/stockchart/yahoo"
)

type fetchCmd struct {
	symbol string
	from   string
	to     string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "download the daily chart document for a symbol" }
func (*fetchCmd) Usage() string {
	return `schart fetch -s <symbol> [-from <date>] [-to <date>]

  Downloads the daily bars for a symbol from the chart feed and writes the
  raw document to the -chart-file path. Responses are cached on disk for a
  day, so refetching is cheap.

Usage Examples:
$ schart fetch -s TSLA -from 2020-06-29
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "symbol to fetch")
	f.StringVar(&c.from, "from", "2010-06-29", "first date to fetch")
	f.StringVar(&c.to, "to", "", "last date to fetch (defaults to today)")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(os.Stderr, "-s <symbol> is required")
		return subcommands.ExitUsageError
	}
	from, err := stockchart.ParseDate(c.from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -from: %v\n", err)
		return subcommands.ExitUsageError
	}
	to := stockchart.Today()
	if c.to != "" {
		if to, err = stockchart.ParseDate(c.to); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -to: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	quotes, err := yahoo.Fetch(nil, c.symbol, from, to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching %s: %v\n", c.symbol, err)
		return subcommands.ExitFailure
	}

	if err := yahoo.Save(*chartFile, quotes); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *chartFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Fetched %d bars of %s into %s\n", len(quotes.Bars), quotes.Symbol, *chartFile)
	return subcommands.ExitSuccess
}
