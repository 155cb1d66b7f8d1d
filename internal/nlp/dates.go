package nlp

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateRange is a resolved stay window as ISO dates. Either side may be empty
// when nothing matched.
type DateRange struct {
	CheckIn  string
	CheckOut string
}

const isoDate = "2006-01-02"

// defaultStayNights is applied when only a check-in was found.
const defaultStayNights = 2

var (
	isoTokenPattern   = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	monthDayPattern   = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(\d{1,2})(?:,?\s*(\d{4}))?`)
	shortRangePattern = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s*(\d{1,2})\s*[-\x{2013}]\s*(\d{1,2})(?:,?\s*(\d{4}))?`)
	longRangePattern  = regexp.MustCompile(`(?i)((?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{1,2}(?:,?\s*\d{4})?)\s*(?:to|[-\x{2013}])\s*((?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{1,2}(?:,?\s*\d{4})?)`)
	numRangePattern   = regexp.MustCompile(`\b(\d{1,2})[/.-](\d{1,2})(?:[/.-](\d{2,4}))?\s*(?:to|[-\x{2013}])\s*(\d{1,2})[/.-](\d{1,2})(?:[/.-](\d{2,4}))?`)
	numSinglePattern  = regexp.MustCompile(`\b(\d{1,2})[/.-](\d{1,2})(?:[/.-](\d{2,4}))?`)
)

var monthByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

var weekdayByName = map[string]time.Weekday{
	"monday": time.Monday, "tuesday": time.Tuesday, "wednesday": time.Wednesday,
	"thursday": time.Thursday, "friday": time.Friday, "saturday": time.Saturday,
	"sunday": time.Sunday,
}

// dateRule is one resolver in the chain: it returns check-in and optional
// check-out, or two zero times when it does not apply.
type dateRule func(raw, normalized string, now time.Time) (time.Time, time.Time)

// DateResolver interprets date expressions relative to an injected reference
// time. Rules are tried in priority order and the first hit wins.
type DateResolver struct {
	rules []dateRule
}

func NewDateResolver() *DateResolver {
	return &DateResolver{rules: []dateRule{
		resolveWeekend,
		resolveISOPair,
		resolveShortMonthRange,
		resolveLongMonthRange,
		resolveNumericRange,
		resolveSingleDate,
	}}
}

// Resolve applies the rule chain, fills a default-length stay when only a
// check-in matched, and swaps a strictly reversed range. Deterministic for a
// fixed now.
func (r *DateResolver) Resolve(text string, now time.Time) DateRange {
	normalized := Normalize(text)
	var in, out time.Time
	for _, rule := range r.rules {
		in, out = rule(text, normalized, now)
		if !in.IsZero() {
			break
		}
	}
	if in.IsZero() {
		return DateRange{}
	}
	if out.IsZero() {
		out = in.AddDate(0, 0, defaultStayNights)
	}
	if in.After(out) {
		in, out = out, in
	}
	return DateRange{CheckIn: in.Format(isoDate), CheckOut: out.Format(isoDate)}
}

func midnight(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dateOf(t time.Time) time.Time {
	return midnight(t.Year(), t.Month(), t.Day())
}

// nextWeekday returns the next strictly-future occurrence of w after base.
func nextWeekday(base time.Time, w time.Weekday) time.Time {
	delta := (int(w) + 7 - int(base.Weekday())) % 7
	if delta == 0 {
		delta = 7
	}
	return dateOf(base).AddDate(0, 0, delta)
}

// "this weekend" targets the coming Friday; "next weekend" looks for the
// Friday after advancing the reference a week. Checkout is Sunday.
func resolveWeekend(_, normalized string, now time.Time) (time.Time, time.Time) {
	base := dateOf(now)
	switch {
	case strings.Contains(normalized, "next weekend"):
		base = base.AddDate(0, 0, 7)
	case strings.Contains(normalized, "this weekend"):
	default:
		return time.Time{}, time.Time{}
	}
	friday := nextWeekday(base, time.Friday)
	return friday, friday.AddDate(0, 0, 2)
}

// Two ISO tokens are taken literally as check-in and check-out.
func resolveISOPair(raw, _ string, _ time.Time) (time.Time, time.Time) {
	ms := isoTokenPattern.FindAllStringSubmatch(raw, 2)
	if len(ms) < 2 {
		return time.Time{}, time.Time{}
	}
	a, okA := parseISOParts(ms[0])
	b, okB := parseISOParts(ms[1])
	if !okA || !okB {
		return time.Time{}, time.Time{}
	}
	return a, b
}

func parseISOParts(m []string) (time.Time, bool) {
	y, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	d, _ := strconv.Atoi(m[3])
	if mo < 1 || mo > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}
	return midnight(y, time.Month(mo), d), true
}

// "Nov 5-8" style: one month applied to both days, checkout = end day + 1.
func resolveShortMonthRange(raw, _ string, now time.Time) (time.Time, time.Time) {
	m := shortRangePattern.FindStringSubmatch(raw)
	if m == nil {
		return time.Time{}, time.Time{}
	}
	month := monthByPrefix[strings.ToLower(m[1])]
	d1, _ := strconv.Atoi(m[2])
	d2, _ := strconv.Atoi(m[3])
	year := now.Year()
	if m[4] != "" {
		year, _ = strconv.Atoi(m[4])
	}
	return midnight(year, month, d1), midnight(year, month, d2).AddDate(0, 0, 1)
}

// "November 5 to November 7, 2025" style: both sides parsed independently,
// checkout = parsed end + 1.
func resolveLongMonthRange(raw, _ string, now time.Time) (time.Time, time.Time) {
	m := longRangePattern.FindStringSubmatch(raw)
	if m == nil {
		return time.Time{}, time.Time{}
	}
	a, okA := parseMonthDay(m[1], now)
	b, okB := parseMonthDay(m[2], now)
	if !okA || !okB {
		return time.Time{}, time.Time{}
	}
	return a, b.AddDate(0, 0, 1)
}

func parseMonthDay(s string, now time.Time) (time.Time, bool) {
	m := monthDayPattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	month := monthByPrefix[strings.ToLower(m[1])]
	day, _ := strconv.Atoi(m[2])
	year := now.Year()
	if m[3] != "" {
		year, _ = strconv.Atoi(m[3])
	}
	return midnight(year, month, day), true
}

// "11/20-11/22" or "11/20/25 to 11/22/25": month/day[/year], two-digit years
// read as 2000+yy, the second year defaulting to the first.
func resolveNumericRange(raw, _ string, now time.Time) (time.Time, time.Time) {
	m := numRangePattern.FindStringSubmatch(raw)
	if m == nil {
		return time.Time{}, time.Time{}
	}
	mo1, _ := strconv.Atoi(m[1])
	d1, _ := strconv.Atoi(m[2])
	mo2, _ := strconv.Atoi(m[4])
	d2, _ := strconv.Atoi(m[5])
	if mo1 < 1 || mo1 > 12 || mo2 < 1 || mo2 > 12 {
		return time.Time{}, time.Time{}
	}
	y1 := now.Year()
	if m[3] != "" {
		y1 = expandYear(m[3])
	}
	y2 := y1
	if m[6] != "" {
		y2 = expandYear(m[6])
	}
	return midnight(y1, time.Month(mo1), d1), midnight(y2, time.Month(mo2), d2).AddDate(0, 0, 1)
}

func expandYear(s string) int {
	y, _ := strconv.Atoi(s)
	if y < 100 {
		y += 2000
	}
	return y
}

// Single date anywhere: ISO token, today/tomorrow, a weekday name (next
// occurrence), a single month-day, or a single numeric date. Check-in only.
func resolveSingleDate(raw, normalized string, now time.Time) (time.Time, time.Time) {
	for _, tok := range strings.Fields(normalized) {
		if d, ok := parseDateToken(tok, now); ok {
			return d, time.Time{}
		}
	}
	if d, ok := parseMonthDay(raw, now); ok {
		return d, time.Time{}
	}
	if m := numSinglePattern.FindStringSubmatch(raw); m != nil {
		mo, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		if mo >= 1 && mo <= 12 {
			year := now.Year()
			if m[3] != "" {
				year = expandYear(m[3])
			}
			return midnight(year, time.Month(mo), day), time.Time{}
		}
	}
	return time.Time{}, time.Time{}
}

func parseDateToken(tok string, now time.Time) (time.Time, bool) {
	if m := isoTokenPattern.FindStringSubmatch(tok); m != nil && len(m[0]) == len(tok) {
		if d, ok := parseISOParts(m); ok {
			return d, true
		}
	}
	switch tok {
	case "today":
		return dateOf(now), true
	case "tomorrow":
		return dateOf(now).AddDate(0, 0, 1), true
	}
	if w, ok := weekdayByName[tok]; ok {
		return nextWeekday(now, w), true
	}
	return time.Time{}, false
}
