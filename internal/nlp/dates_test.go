package nlp

import (
	"testing"
	"time"
)

// 2025-01-01 is a Wednesday; relative expressions below depend on that.
var dateRef = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func TestResolveDateRanges(t *testing.T) {
	r := NewDateResolver()
	cases := []struct {
		text     string
		checkIn  string
		checkOut string
	}{
		{"next weekend", "2025-01-10", "2025-01-12"},
		{"this weekend", "2025-01-03", "2025-01-05"},
		{"2025-11-05 to 2025-11-08", "2025-11-05", "2025-11-08"},
		{"anything from 2025-03-01 until 2025-03-04?", "2025-03-01", "2025-03-04"},
		// Short month ranges read the end day as the last night.
		{"Nov 5-8", "2025-11-05", "2025-11-09"},
		{"nov 5 - 8, 2026", "2026-11-05", "2026-11-09"},
		{"November 5 to November 7", "2025-11-05", "2025-11-08"},
		{"11/20-11/22", "2025-11-20", "2025-11-23"},
		{"11/20/26 to 11/22/26", "2026-11-20", "2026-11-23"},
		// Single dates get the default two-night stay.
		{"arriving 2025-03-10", "2025-03-10", "2025-03-12"},
		{"tomorrow", "2025-01-02", "2025-01-04"},
		{"coming friday", "2025-01-03", "2025-01-05"},
		{"March 10", "2025-03-10", "2025-03-12"},
		// Reversed ranges are swapped; equal endpoints stay as given and the
		// pricing layer clamps the stay to one night.
		{"2025-11-08 to 2025-11-05", "2025-11-05", "2025-11-08"},
		{"2025-03-01 to 2025-03-01", "2025-03-01", "2025-03-01"},
		// No dates at all.
		{"do you have a pool", "", ""},
		{"", "", ""},
	}
	for _, tc := range cases {
		got := r.Resolve(tc.text, dateRef)
		if got.CheckIn != tc.checkIn || got.CheckOut != tc.checkOut {
			t.Errorf("Resolve(%q) = %q..%q, want %q..%q",
				tc.text, got.CheckIn, got.CheckOut, tc.checkIn, tc.checkOut)
		}
	}
}

func TestResolveWeekendFromFriday(t *testing.T) {
	r := NewDateResolver()
	// Asking on a Friday targets the following Friday, not the same day.
	friday := time.Date(2025, 1, 3, 9, 0, 0, 0, time.UTC)
	got := r.Resolve("this weekend", friday)
	if got.CheckIn != "2025-01-10" || got.CheckOut != "2025-01-12" {
		t.Fatalf("Resolve = %q..%q", got.CheckIn, got.CheckOut)
	}
}

func TestResolveDeterministic(t *testing.T) {
	r := NewDateResolver()
	a := r.Resolve("next weekend", dateRef)
	b := r.Resolve("next weekend", dateRef)
	if a != b {
		t.Fatalf("Resolve not deterministic: %+v vs %+v", a, b)
	}
}
