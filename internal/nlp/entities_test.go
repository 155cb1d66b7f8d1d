package nlp

import (
	"testing"
	"time"
)

var refTime = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func TestExtractGuests(t *testing.T) {
	e := NewExtractor()
	cases := []struct {
		text string
		want int
	}{
		{"for 2 guests", 2},
		{"3 people please", 3},
		{"party of 12", 0},   // out of range
		{"room for 0", 0},    // out of range
		{"just a couple", 2}, // count word
		{"traveling solo", 1},
		{"family with kids", 3},
		{"no numbers here", 0},
		// The explicit count wins over digits earlier in the text, and date
		// fragments alone never read as a guest count.
		{"2025-11-05 to 2025-11-08 for 2 guests", 2},
		{"2025-11-05 to 2025-11-08", 0},
		{"Nov 5-8", 0},
	}
	for _, tc := range cases {
		if got := e.Extract(tc.text, refTime).Guests; got != tc.want {
			t.Errorf("Extract(%q).Guests = %d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestExtractRoomType(t *testing.T) {
	e := NewExtractor()
	cases := []struct {
		text string
		want string
	}{
		{"a Deluxe King please", "deluxe king"},
		{"the king room", "deluxe king"},
		{"queen bed", "cosy queen"},
		{"the penthouse", "penthouse suite"},
		{"a suite for four", "family suite"},
		{"penthouse suite", "penthouse suite"},
		{"any room", ""},
	}
	for _, tc := range cases {
		if got := e.Extract(tc.text, refTime).RoomType; got != tc.want {
			t.Errorf("Extract(%q).RoomType = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestExtractContact(t *testing.T) {
	e := NewExtractor()

	got := e.Extract("I'm Alex, Alex@Example.com", refTime)
	if got.Name != "Alex" {
		t.Errorf("Name = %q, want Alex", got.Name)
	}
	if got.Email != "alex@example.com" {
		t.Errorf("Email = %q, want lowercased address", got.Email)
	}

	got = e.Extract("My name is John Smith", refTime)
	if got.Name != "John Smith" {
		t.Errorf("Name = %q, want John Smith", got.Name)
	}

	// Lowercase continuations are not names.
	if got := e.Extract("i am interested in a room", refTime); got.Name != "" {
		t.Errorf("Name = %q, want empty", got.Name)
	}

	if got := e.Extract("call me on +1 555-123-4567", refTime); got.Phone == "" {
		t.Error("expected a phone match")
	}
}

func TestExtractRepeatable(t *testing.T) {
	e := NewExtractor()
	text := "I'm Alex, alex@example.com, Deluxe King next weekend for 2 guests"
	first := e.Extract(text, refTime)
	second := e.Extract(text, refTime)
	if first != second {
		t.Fatalf("extraction diverged:\n%+v\n%+v", first, second)
	}
}

func TestExtractDatesDelegated(t *testing.T) {
	e := NewExtractor()
	got := e.Extract("arriving 2025-11-05, leaving 2025-11-08", refTime)
	if got.CheckIn != "2025-11-05" || got.CheckOut != "2025-11-08" {
		t.Fatalf("dates = %q..%q", got.CheckIn, got.CheckOut)
	}
}
