// Package cmd implements the CLI application around the chart engine.
package cmd

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/etnz/stockchart"
	"github.com/etnz/stockchart/yahoo"
)

// Commands lists the subcommands a main package registers.
var Commands = []subcommands.Command{
	&fetchCmd{},
	&renderCmd{},
	&inspectCmd{},
	&summaryCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var chartFile = flag.String("chart-file", "chart.json", "Path to the chart document (Yahoo v8 JSON)")
var txnsFile = flag.String("txns-file", "", "Path to an extra transactions file (JSONL), merged with the document's own")

// chartFlags are the display parameters every chart-building command shares.
type chartFlags struct {
	after  string
	before string
	span   int
	width  float64
	height float64
	anon   bool
	debug  bool
}

func (c *chartFlags) register(f *flag.FlagSet) {
	f.StringVar(&c.after, "after", "", "Only plot bars after this date (exclusive)")
	f.StringVar(&c.before, "before", "", "Only plot bars up to this date (inclusive)")
	f.IntVar(&c.span, "span", stockchart.DefaultAverageSpan, "Trailing offset of the moving average")
	f.Float64Var(&c.width, "w", stockchart.DefaultWidth, "Plot width in pixels")
	f.Float64Var(&c.height, "h", stockchart.DefaultHeight, "Plot height in pixels")
	f.BoolVar(&c.anon, "anon", false, "Hide absolute position sizes")
	f.BoolVar(&c.debug, "debug", false, "Log domain extrema and dropped transactions")
}

// options decodes the display parameters into engine options.
func (c *chartFlags) options() (stockchart.Options, error) {
	opts := stockchart.Options{
		Span:      c.span,
		Width:     c.width,
		Height:    c.height,
		Anonymize: c.anon,
		Debug:     c.debug,
	}
	if c.after != "" {
		d, err := stockchart.ParseDate(c.after)
		if err != nil {
			return opts, fmt.Errorf("bad -after: %w", err)
		}
		opts.Cutoff.After = d
	}
	if c.before != "" {
		d, err := stockchart.ParseDate(c.before)
		if err != nil {
			return opts, fmt.Errorf("bad -before: %w", err)
		}
		opts.Cutoff.Before = d
	}
	return opts, nil
}

// loadChart reads the chart document, merges extra transactions, and runs
// one load cycle.
func (c *chartFlags) loadChart() (*stockchart.Chart, *yahoo.Quotes, error) {
	opts, err := c.options()
	if err != nil {
		return nil, nil, err
	}

	raw, err := os.ReadFile(*chartFile)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read chart document: %w", err)
	}
	quotes, err := yahoo.Decode(raw)
	if err != nil {
		return nil, nil, err
	}
	opts.Currency = quotes.Currency

	txns := quotes.Transactions
	if *txnsFile != "" {
		extra, err := readTransactions(*txnsFile)
		if err != nil {
			return nil, nil, err
		}
		txns = append(txns, extra...)
	}

	chart, err := stockchart.New(quotes.Bars, txns, opts)
	if err != nil {
		return nil, nil, err
	}
	return chart, &quotes, nil
}

// readTransactions decodes a JSONL transactions file, one transaction per
// line in either the object or the tuple form.
func readTransactions(filename string) ([]stockchart.Transaction, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot read transactions file: %w", err)
	}
	defer f.Close()

	var txns []stockchart.Transaction
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 {
			continue
		}
		var tx stockchart.Transaction
		if err := json.Unmarshal(text, &tx); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", filename, line, err)
		}
		txns = append(txns, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read transactions file: %w", err)
	}
	return txns, nil
}

// printMarkdown renders markdown for the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "dark")
	if err != nil {
		// fall back to the raw markdown rather than losing the report.
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
