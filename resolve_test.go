package stockchart

import "testing"

func TestNearest(t *testing.T) {
	// trading days with a weekend gap between the 8th and the 11th.
	series := seriesOf(t,
		cp{"2021-01-04", 100},
		cp{"2021-01-05", 110},
		cp{"2021-01-06", 120},
		cp{"2021-01-08", 130},
		cp{"2021-01-11", 140},
	)

	testCases := []struct {
		name  string
		query string
		want  int
	}{
		{"exact hit", "2021-01-05", 1},
		{"exact first", "2021-01-04", 0},
		{"exact last", "2021-01-11", 4},
		{"before first clamps", "2020-12-25", 0},
		{"after last clamps", "2021-02-01", 4},
		{"closer to previous", "2021-01-09", 3},
		{"closer to next", "2021-01-10", 4},
		{"gap of one day, equidistant, earlier wins", "2021-01-07", 2},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Nearest(series, day(t, tc.query))
			if got != tc.want {
				t.Errorf("Nearest(%s) = %d (%v), want %d (%v)",
					tc.query, got, series[got].Date, tc.want, series[tc.want].Date)
			}
		})
	}
}

// Resolution is total and idempotent: every query maps to exactly one bar,
// and resolving a bar's own date returns that bar.
func TestNearest_Idempotent(t *testing.T) {
	series := seriesOf(t,
		cp{"2021-01-04", 100},
		cp{"2021-01-06", 120},
		cp{"2021-01-11", 140},
	)
	for q := day(t, "2020-12-28"); !q.After(day(t, "2021-01-18")); q = q.Add(1) {
		i := Nearest(series, q)
		if i < 0 || i >= len(series) {
			t.Fatalf("Nearest(%v) = %d, out of range", q, i)
		}
		if again := Nearest(series, series[i].Date); again != i {
			t.Errorf("Nearest(%v) not idempotent: %d then %d", q, i, again)
		}
		// never farther from the result than from either neighbor.
		d := abs64(int64(q.Sub(series[i].Date)))
		if i > 0 {
			if alt := abs64(int64(q.Sub(series[i-1].Date))); alt < d {
				t.Errorf("Nearest(%v) = %v but %v is closer", q, series[i].Date, series[i-1].Date)
			}
		}
		if i < len(series)-1 {
			if alt := abs64(int64(q.Sub(series[i+1].Date))); alt < d {
				t.Errorf("Nearest(%v) = %v but %v is closer", q, series[i].Date, series[i+1].Date)
			}
		}
	}
}

func TestNearestBar_SingleElement(t *testing.T) {
	series := seriesOf(t, cp{"2021-01-04", 100})
	if got := NearestBar(series, day(t, "2030-06-15")); got.Date != day(t, "2021-01-04") {
		t.Errorf("NearestBar() = %v, want the only bar", got.Date)
	}
}
