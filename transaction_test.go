package stockchart

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseSide(t *testing.T) {
	testCases := []struct {
		in      string
		want    Side
		wantErr bool
	}{
		{in: "b", want: Buy},
		{in: "buy", want: Buy},
		{in: "s", want: Sell},
		{in: "sell", want: Sell},
		{in: "hold", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseSide(tc.in)
			if tc.wantErr {
				var ie *InvalidInputError
				if !errors.As(err, &ie) {
					t.Fatalf("ParseSide(%q) error = %v, want an InvalidInputError", tc.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSide(%q) returned unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseSide(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTransaction_Validate(t *testing.T) {
	valid := tx(t, Buy, "2020-12-08", 15, 208.333)

	testCases := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr bool
	}{
		{"valid", func(*Transaction) {}, false},
		{"unknown side", func(x *Transaction) { x.Side = "short" }, true},
		{"no date", func(x *Transaction) { x.Date = Date{} }, true},
		{"zero quantity", func(x *Transaction) { x.Quantity = 0 }, true},
		{"negative quantity", func(x *Transaction) { x.Quantity = -3 }, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			x := valid
			tc.mutate(&x)
			err := x.Validate()
			if tc.wantErr && err == nil {
				t.Errorf("Validate() expected an error for %s", tc.name)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Validate() returned unexpected error: %v", err)
			}
		})
	}
}

func TestTransaction_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want Transaction
	}{
		{
			name: "tuple form",
			in:   `["b", "2020-12-08", 15, 208.333]`,
			want: tx(t, Buy, "2020-12-08", 15, 208.333),
		},
		{
			name: "tuple sell",
			in:   `["s", "2021-01-08", 3, 284.86]`,
			want: tx(t, Sell, "2021-01-08", 3, 284.86),
		},
		{
			name: "object form",
			in:   `{"side":"buy","date":"2022-10-17","quantity":50,"price":201}`,
			want: tx(t, Buy, "2022-10-17", 50, 201),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got Transaction
			if err := json.Unmarshal([]byte(tc.in), &got); err != nil {
				t.Fatalf("Unmarshal(%s) returned unexpected error: %v", tc.in, err)
			}
			if got.Side != tc.want.Side || got.Date != tc.want.Date || got.Quantity != tc.want.Quantity {
				t.Errorf("Unmarshal(%s) = %+v, want %+v", tc.in, got, tc.want)
			}
			if !got.Price.Equal(tc.want.Price) {
				t.Errorf("Unmarshal(%s) price = %s, want %s", tc.in, got.Price, tc.want.Price)
			}
		})
	}

	t.Run("unknown side fails", func(t *testing.T) {
		var got Transaction
		err := json.Unmarshal([]byte(`["x", "2020-12-08", 15, 208.333]`), &got)
		var ie *InvalidInputError
		if !errors.As(err, &ie) {
			t.Fatalf("Unmarshal() error = %v, want an InvalidInputError", err)
		}
	})
}
