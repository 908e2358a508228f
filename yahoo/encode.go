package yahoo

import (
	"encoding/json"
	"fmt"
	"os"
)

// Encode writes quotes back in the chart document shape Decode reads, so a
// fetched series can be kept as a local file and annotated with
// transactions by hand.
func Encode(q Quotes) ([]byte, error) {
	qt := quote{
		Open:   make([]*float64, len(q.Bars)),
		High:   make([]*float64, len(q.Bars)),
		Low:    make([]*float64, len(q.Bars)),
		Close:  make([]*float64, len(q.Bars)),
		Volume: make([]*int64, len(q.Bars)),
	}
	timestamps := make([]int64, len(q.Bars))
	for i, b := range q.Bars {
		timestamps[i] = unix(b.Date)
		qt.Open[i] = value(b.Open.InexactFloat64())
		qt.High[i] = value(b.High.InexactFloat64())
		qt.Low[i] = value(b.Low.InexactFloat64())
		qt.Close[i] = value(b.Close.InexactFloat64())
		qt.Volume[i] = b.Volume
	}

	doc := document{
		Chart: chart{Result: []result{{
			Meta:       meta{Currency: q.Currency, Symbol: q.Symbol},
			Timestamp:  timestamps,
			Indicators: indicators{Quote: []quote{qt}},
		}}},
		Txns: q.Transactions,
	}
	return json.MarshalIndent(doc, "", " ")
}

// value keeps a feed null as a null: a zero quote field never came from a
// real trading day.
func value(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}

// Save encodes quotes into a chart document file.
func Save(filename string, q Quotes) error {
	data, err := Encode(q)
	if err != nil {
		return fmt.Errorf("cannot encode chart document: %w", err)
	}
	return os.WriteFile(filename, data, 0644)
}
