package stockchart

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCleanBars(t *testing.T) {
	missingHigh := bar(t, "2021-01-05", 100, 111, 99, 110, 1200)
	missingHigh.High = decimal.Decimal{} // feed null decodes to zero

	bars := []Bar{
		bar(t, "2021-01-04", 99, 101, 98, 100, 1000),
		missingHigh,
		bar(t, "2021-01-06", 110, 121, 109, 120, 900),
	}
	got := CleanBars(bars)
	if len(got) != 2 {
		t.Fatalf("CleanBars() kept %d bars, want 2", len(got))
	}
	if got[0].Date != day(t, "2021-01-04") || got[1].Date != day(t, "2021-01-06") {
		t.Errorf("CleanBars() kept wrong bars: %v, %v", got[0].Date, got[1].Date)
	}
}

func TestFilterRange(t *testing.T) {
	bars := []Bar{
		bar(t, "2021-01-04", 99, 101, 98, 100, 1000),
		bar(t, "2021-01-05", 100, 111, 99, 110, 1200),
		bar(t, "2021-01-06", 110, 121, 109, 120, 900),
	}
	// after is exclusive: the 4th itself is cut, the 5th and 6th stay.
	got := FilterRange(bars, Range{After: day(t, "2021-01-04")})
	if len(got) != 2 || got[0].Date != day(t, "2021-01-05") {
		t.Fatalf("FilterRange(after) kept %d bars starting %v, want 2 starting 2021-01-05", len(got), got[0].Date)
	}
	// before is inclusive.
	got = FilterRange(bars, Range{Before: day(t, "2021-01-05")})
	if len(got) != 2 || got[1].Date != day(t, "2021-01-05") {
		t.Fatalf("FilterRange(before) kept %d bars, want 2 ending 2021-01-05", len(got))
	}
}

func TestJoin(t *testing.T) {
	bars := []Bar{
		bar(t, "2021-01-04", 99, 101, 98, 100, 1000),
		bar(t, "2021-01-05", 100, 111, 99, 110, 1200),
		bar(t, "2021-01-06", 110, 121, 109, 120, 900),
	}
	positions, err := Aggregate([]Transaction{
		tx(t, Buy, "2021-01-05", 10, 95),
		tx(t, Buy, "2021-01-09", 5, 100), // no bar on that date: dropped
	})
	if err != nil {
		t.Fatalf("Aggregate() returned unexpected error: %v", err)
	}

	series, err := Join(bars, positions, false)
	if err != nil {
		t.Fatalf("Join() returned unexpected error: %v", err)
	}

	// order and count preserved exactly, no bar duplicated or dropped.
	if len(series) != len(bars) {
		t.Fatalf("Join() produced %d bars, want %d", len(series), len(bars))
	}
	for i := range bars {
		if series[i].Date != bars[i].Date {
			t.Errorf("series[%d].Date = %v, want %v", i, series[i].Date, bars[i].Date)
		}
	}

	if series[0].Position != nil {
		t.Error("series[0] has a position, want none")
	}
	if series[1].Position == nil {
		t.Fatal("series[1] has no position, want one")
	} else if series[1].Position.NetQuantity != 10 {
		t.Errorf("series[1].Position.NetQuantity = %d, want 10", series[1].Position.NetQuantity)
	}
	if series[2].Position != nil {
		t.Error("series[2] has a position, want none")
	}
}

// A day netting to zero keeps its position attached: "matched activity" and
// "no activity" must stay distinguishable downstream.
func TestJoin_ZeroNetPositionIsNotDropped(t *testing.T) {
	bars := []Bar{bar(t, "2021-01-05", 100, 111, 99, 110, 1200)}
	positions, err := Aggregate([]Transaction{
		tx(t, Buy, "2021-01-05", 10, 100),
		tx(t, Sell, "2021-01-05", 10, 120),
	})
	if err != nil {
		t.Fatalf("Aggregate() returned unexpected error: %v", err)
	}
	series, err := Join(bars, positions, false)
	if err != nil {
		t.Fatalf("Join() returned unexpected error: %v", err)
	}
	if series[0].Position == nil {
		t.Fatal("matched day lost its position, want it attached with zero net quantity")
	}
	if series[0].Position.NetQuantity != 0 {
		t.Errorf("NetQuantity = %d, want 0", series[0].Position.NetQuantity)
	}
}

func TestJoin_RejectsDisorderedBars(t *testing.T) {
	testCases := []struct {
		name string
		bars []Bar
	}{
		{
			name: "descending",
			bars: []Bar{
				bar(t, "2021-01-05", 100, 111, 99, 110, 1200),
				bar(t, "2021-01-04", 99, 101, 98, 100, 1000),
			},
		},
		{
			name: "duplicate date",
			bars: []Bar{
				bar(t, "2021-01-04", 99, 101, 98, 100, 1000),
				bar(t, "2021-01-04", 99, 101, 98, 100, 1000),
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Join(tc.bars, nil, false)
			var ie *InvalidInputError
			if !errors.As(err, &ie) {
				t.Fatalf("Join() error = %v, want an InvalidInputError", err)
			}
		})
	}
}
