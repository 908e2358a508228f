package renderer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/etnz/stockchart"
)

// markdown converter for reports; legend tables need the table extension.
var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// Markdown renders a textual report of the loaded chart: the period, the
// latest bar's legend, and the holding summary. It is what the CLI prints
// and what the HTML report embeds.
func Markdown(c *stockchart.Chart, title string) string {
	var buf bytes.Buffer
	if title != "" {
		fmt.Fprintf(&buf, "# %s\n\n", title)
	}
	first, last := c.Series[0], c.Last()
	fmt.Fprintf(&buf, "%d trading days from %s to %s.\n\n", len(c.Series), first.Date, last.Date)

	buf.WriteString(legendTable(stockchart.Legend(last, stockchart.LegendOptions{
		Anonymize: c.Options().Anonymize,
	})))

	if summary := c.Summary(); summary != "" {
		fmt.Fprintf(&buf, "\nHolding: **%s**\n", summary)
	}
	return buf.String()
}

// LegendMarkdown renders one resolved point as a markdown table.
func LegendMarkdown(ch stockchart.Crosshair) string {
	return legendTable(ch.Legend)
}

func legendTable(entries []stockchart.LegendEntry) string {
	var buf bytes.Buffer
	buf.WriteString("| | |\n|---|---|\n")
	for _, e := range entries {
		fmt.Fprintf(&buf, "| %s | %s |\n", e.Label, e.Text)
	}
	return buf.String()
}

// HTMLReport writes a self-contained HTML page: the SVG chart inline,
// followed by the markdown report converted to HTML.
func HTMLReport(c *stockchart.Chart, title string, w io.Writer) error {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(Markdown(c, title)), &body); err != nil {
		return fmt.Errorf("cannot render report markdown: %w", err)
	}

	if _, err := fmt.Fprintf(w,
		"<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>%s</title>"+
			"<style>body{background:%s;color:%s;font-family:sans-serif;margin:2em}"+
			"table{border-collapse:collapse}td{padding:2px 8px}</style>"+
			"</head><body>\n", title, colorBack, colorText); err != nil {
		return err
	}
	if _, err := w.Write(SVG(c)); err != nil {
		return err
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</body></html>\n")
	return err
}
