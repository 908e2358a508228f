package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/stockchart"
)

func TestReadTransactions(t *testing.T) {
	file := filepath.Join(t.TempDir(), "txns.jsonl")
	content := `["b", "2020-12-08", 15, 208.333]

{"side":"sell","date":"2021-01-08","quantity":3,"price":284.86}
`
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	txns, err := readTransactions(file)
	if err != nil {
		t.Fatalf("readTransactions() returned unexpected error: %v", err)
	}
	if len(txns) != 2 {
		t.Fatalf("readTransactions() = %d transactions, want 2", len(txns))
	}
	if txns[0].Side != stockchart.Buy || txns[0].Quantity != 15 {
		t.Errorf("first transaction = %+v, want buy of 15", txns[0])
	}
	if txns[1].Side != stockchart.Sell || txns[1].Quantity != 3 {
		t.Errorf("second transaction = %+v, want sell of 3", txns[1])
	}
}

func TestReadTransactions_BadLineReportsPosition(t *testing.T) {
	file := filepath.Join(t.TempDir(), "txns.jsonl")
	if err := os.WriteFile(file, []byte(`["x", "2020-12-08", 15, 208.333]`), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := readTransactions(file)
	if err == nil {
		t.Fatal("readTransactions() succeeded on an unknown side")
	}
}

func TestChartFlags_Options(t *testing.T) {
	c := chartFlags{after: "2020-06-29", before: "2021-01-08", span: 10, width: 800, height: 600, anon: true}
	opts, err := c.options()
	if err != nil {
		t.Fatalf("options() returned unexpected error: %v", err)
	}
	if opts.Cutoff.After != stockchart.MustParseDate("2020-06-29") {
		t.Errorf("Cutoff.After = %v, want 2020-06-29", opts.Cutoff.After)
	}
	if opts.Cutoff.Before != stockchart.MustParseDate("2021-01-08") {
		t.Errorf("Cutoff.Before = %v, want 2021-01-08", opts.Cutoff.Before)
	}
	if !opts.Anonymize || opts.Span != 10 {
		t.Errorf("options() = %+v, want anonymize and span carried over", opts)
	}

	c.after = "not-a-date"
	if _, err := c.options(); err == nil {
		t.Error("options() succeeded with a bad -after")
	}
}
