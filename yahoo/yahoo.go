// Package yahoo downloads and decodes the Yahoo Finance v8 chart document
// for one symbol: daily bars plus, when the document was annotated by hand,
// an embedded list of the user's own transactions.
package yahoo

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"

	"github.com/etnz/stockchart"
)

const chartURL = "https://query1.finance.yahoo.com/v8/finance/chart/"

// Quotes is a decoded chart document: the bar series in feed order, and any
// transactions embedded alongside it.
type Quotes struct {
	Symbol       string
	Currency     string
	Bars         []stockchart.Bar
	Transactions []stockchart.Transaction
}

// document mirrors the part of the v8 payload we consume.
//
//	{ "chart": { "result": [ {
//	    "meta": { "currency": "USD", "symbol": "TSLA" },
//	    "timestamp": [ 1277818200, ... ],
//	    "indicators": { "quote": [ { "open": [...], "high": [...],
//	                                 "low": [...], "close": [...],
//	                                 "volume": [...] } ] } } ],
//	  "error": null },
//	  "txns": [ ["b","2020-12-08",15,208.333], ... ] }
type document struct {
	Chart chart                    `json:"chart"`
	Txns  []stockchart.Transaction `json:"txns,omitempty"`
}

type chart struct {
	Result []result `json:"result"`
}

type result struct {
	Meta       meta       `json:"meta"`
	Timestamp  []int64    `json:"timestamp"`
	Indicators indicators `json:"indicators"`
}

type meta struct {
	Currency string `json:"currency"`
	Symbol   string `json:"symbol"`
}

type indicators struct {
	Quote []quote `json:"quote"`
}

type quote struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}

// Decode turns a raw chart document into quotes. Feed nulls decode to
// zero-valued quote fields; stockchart.CleanBars is the place that excludes
// those bars, not here.
func Decode(data []byte) (Quotes, error) {
	// the error member is a loose object, easier reached by path than by
	// yet another struct layer.
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return Quotes{}, fmt.Errorf("invalid chart document: %w", err)
	}
	if desc, err := jsonpath.Get("$.chart.error.description", jobj); err == nil && desc != nil {
		return Quotes{}, fmt.Errorf("chart feed error: %v", desc)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Quotes{}, fmt.Errorf("invalid chart document: %w", err)
	}
	if len(doc.Chart.Result) == 0 {
		return Quotes{}, fmt.Errorf("chart document has no result")
	}
	res := doc.Chart.Result[0]
	if len(res.Indicators.Quote) == 0 {
		return Quotes{}, fmt.Errorf("chart document has no quote series")
	}
	qt := res.Indicators.Quote[0]

	q := Quotes{
		Symbol:       res.Meta.Symbol,
		Currency:     res.Meta.Currency,
		Bars:         make([]stockchart.Bar, 0, len(res.Timestamp)),
		Transactions: doc.Txns,
	}
	for i, ts := range res.Timestamp {
		q.Bars = append(q.Bars, stockchart.Bar{
			Date:   stockchart.DateOf(time.Unix(ts, 0).UTC()),
			Open:   price(qt.Open, i),
			High:   price(qt.High, i),
			Low:    price(qt.Low, i),
			Close:  price(qt.Close, i),
			Volume: at(qt.Volume, i),
		})
	}
	return q, nil
}

// price reads one element of a quote array, zero when the feed reported
// null or the array is short.
func price(values []*float64, i int) decimal.Decimal {
	if i >= len(values) || values[i] == nil {
		return decimal.Decimal{}
	}
	return decimal.NewFromFloat(*values[i])
}

func at[T any](values []*T, i int) *T {
	if i >= len(values) {
		return nil
	}
	return values[i]
}

// Fetch downloads the daily chart document for symbol over [from, to] and
// decodes it. A nil client defaults to the daily-caching one, so repeated
// loads within a day hit the disk instead of the feed.
func Fetch(client *http.Client, symbol string, from, to stockchart.Date) (Quotes, error) {
	if client == nil {
		client = stockchart.DailyCachingClient()
	}

	v := url.Values{}
	v.Set("symbol", symbol)
	v.Set("interval", "1d")
	v.Set("period1", fmt.Sprint(unix(from)))
	v.Set("period2", fmt.Sprint(unix(to.Add(1)))) // bound is exclusive upstream
	addr := chartURL + url.PathEscape(symbol) + "?" + v.Encode()

	resp, err := client.Get(addr)
	if err != nil {
		return Quotes{}, fmt.Errorf("cannot fetch chart for %q: %w", symbol, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Quotes{}, fmt.Errorf("cannot fetch chart for %q: %s", symbol, resp.Status)
	}

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return Quotes{}, fmt.Errorf("cannot read chart for %q: %w", symbol, err)
	}
	return Decode(buf)
}

func unix(d stockchart.Date) int64 {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC).Unix()
}
