package nlp

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Entities holds everything extractable from one turn of free text. Zero
// values mean "not found"; extraction never fails.
type Entities struct {
	Guests   int
	Email    string
	Phone    string
	RoomType string
	CheckIn  string // ISO date
	CheckOut string // ISO date
	Name     string
}

var (
	emailAddrPattern = regexp.MustCompile(`(?i)[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}`)
	phonePattern     = regexp.MustCompile(`\+?\d[\d\s-]{7,}\d`)
	// Name phrases are followed by 1-3 capitalized-looking words; lowercase
	// continuations ("i am interested in...") are not names.
	namePattern = regexp.MustCompile(`\b(?:[Ii] am|[Ii]'m|[Mm]y name is|[Tt]his is|[Nn]ame is)\s+([A-Z][A-Za-z'-]*(?:\s+[A-Z][A-Za-z'-]*){0,2})`)
)

// roomAliases maps the known room-type names and their single-word shorthands
// to catalog room names. Containment is tested longest-alias-first so that
// "penthouse suite" wins over "suite".
var roomAliases = []struct{ alias, room string }{
	{"penthouse suite", "penthouse suite"},
	{"family suite", "family suite"},
	{"deluxe king", "deluxe king"},
	{"cosy queen", "cosy queen"},
	{"penthouse", "penthouse suite"},
	{"family", "family suite"},
	{"suite", "family suite"},
	{"king", "deluxe king"},
	{"queen", "cosy queen"},
}

// Extractor pulls booking entities out of free text. Dates are delegated to
// the date-range resolver with the supplied reference time so that relative
// expressions stay deterministic under test.
type Extractor struct {
	dates *DateResolver
}

func NewExtractor() *Extractor {
	return &Extractor{dates: NewDateResolver()}
}

func (e *Extractor) Extract(text string, now time.Time) Entities {
	normalized := Normalize(text)
	out := Entities{
		Guests:   extractGuests(normalized),
		RoomType: extractRoomType(normalized),
		Name:     extractName(text),
	}
	if m := emailAddrPattern.FindString(text); m != "" {
		out.Email = strings.ToLower(m)
	}
	if m := phonePattern.FindString(text); m != "" {
		out.Phone = m
	}
	r := e.dates.Resolve(text, now)
	out.CheckIn, out.CheckOut = r.CheckIn, r.CheckOut
	return out
}

// extractGuests takes the first standalone number token in [1,8]; digits
// embedded in date tokens ("2025-11-05", "5-8") never count. Count words are
// the fallback when no number matched.
func extractGuests(normalized string) int {
	for _, tok := range strings.Fields(normalized) {
		if n, err := strconv.Atoi(tok); err == nil && n >= 1 && n <= 8 {
			return n
		}
	}
	switch {
	case containsPhrase(normalized, "couple") || containsPhrase(normalized, "two of us"):
		return 2
	case containsPhrase(normalized, "solo") || strings.Contains(normalized, "just me"):
		return 1
	case containsPhrase(normalized, "family") || containsPhrase(normalized, "kids") || containsPhrase(normalized, "children"):
		return 3
	}
	return 0
}

func extractRoomType(normalized string) string {
	for _, a := range roomAliases {
		if strings.Contains(normalized, a.alias) {
			return a.room
		}
	}
	return ""
}

func extractName(text string) string {
	m := namePattern.FindStringSubmatch(text)
	if m == nil || len(m[1]) < 2 {
		return ""
	}
	return TitleCase(m[1])
}
