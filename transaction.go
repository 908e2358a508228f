package stockchart

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Side is a typed string identifying the direction of a transaction.
type Side string

// The two recognized transaction sides.
const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// ParseSide decodes a side tag. The compact one-letter forms "b" and "s"
// used by exported transaction lists are accepted too.
func ParseSide(s string) (Side, error) {
	switch s {
	case "b", "buy":
		return Buy, nil
	case "s", "sell":
		return Sell, nil
	default:
		return "", invalidInput("side", "unknown side %q, want buy or sell", s)
	}
}

// sign returns +1 for a buy and -1 for a sell.
func (s Side) sign() int64 {
	if s == Sell {
		return -1
	}
	return 1
}

// Transaction records one buy or sell of the charted security.
//
// Transactions are immutable inputs: the engine never rewrites them, it only
// aggregates them per calendar date.
type Transaction struct {
	Side     Side
	Date     Date
	Quantity int64 // number of shares, always positive; the side carries the sign
	Price    decimal.Decimal
}

// Validate checks the structural shape of the transaction.
func (t Transaction) Validate() error {
	if _, err := ParseSide(string(t.Side)); err != nil {
		return err
	}
	if t.Date.IsZero() {
		return invalidInput("date", "transaction has no date")
	}
	if t.Quantity <= 0 {
		return invalidInput("quantity", "want a positive share count, got %d", t.Quantity)
	}
	if t.Price.IsNegative() {
		return invalidInput("price", "want a non-negative price, got %s", t.Price)
	}
	return nil
}

// String renders the transaction the way a ledger line reads.
func (t Transaction) String() string {
	return fmt.Sprintf("%s %d @ %s on %s", t.Side, t.Quantity, t.Price, t.Date)
}

// UnmarshalJSON accepts both the object form
//
//	{"side":"buy","date":"2020-12-08","quantity":15,"price":208.333}
//
// and the compact tuple form exported with chart documents
//
//	["b", "2020-12-08", 15, 208.333]
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err == nil {
		if len(tuple) != 4 {
			return invalidInput("transaction", "tuple form wants 4 elements, got %d", len(tuple))
		}
		var tag string
		if err := json.Unmarshal(tuple[0], &tag); err != nil {
			return err
		}
		side, err := ParseSide(tag)
		if err != nil {
			return err
		}
		t.Side = side
		if err := json.Unmarshal(tuple[1], &t.Date); err != nil {
			return err
		}
		if err := json.Unmarshal(tuple[2], &t.Quantity); err != nil {
			return err
		}
		return json.Unmarshal(tuple[3], &t.Price)
	}

	// object form. An alias type avoids recursing into this method.
	type plain struct {
		Side     string          `json:"side"`
		Date     Date            `json:"date"`
		Quantity int64           `json:"quantity"`
		Price    decimal.Decimal `json:"price"`
	}
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	side, err := ParseSide(p.Side)
	if err != nil {
		return err
	}
	t.Side, t.Date, t.Quantity, t.Price = side, p.Date, p.Quantity, p.Price
	return nil
}

// MarshalJSON writes the object form.
func (t Transaction) MarshalJSON() ([]byte, error) {
	type plain struct {
		Side     Side            `json:"side"`
		Date     Date            `json:"date"`
		Quantity int64           `json:"quantity"`
		Price    decimal.Decimal `json:"price"`
	}
	return json.Marshal(plain{t.Side, t.Date, t.Quantity, t.Price})
}

var _ json.Unmarshaler = (*Transaction)(nil)
var _ json.Marshaler = (*Transaction)(nil)
