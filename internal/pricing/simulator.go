// Package pricing simulates availability and rates deterministically: the
// same stay request always yields the same quote, with no I/O. Occupancy and
// sold-out decisions come from a seeded pseudo-random stream so results look
// varied across dates while staying reproducible for tests.
package pricing

import (
	"hash/fnv"
	"math"
	"strings"
	"time"

	"aurora_concierge/internal/domain"
)

// Room is one bookable room class with its rack rate.
type Room struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Base     int    `json:"base"`
}

// Catalog is the fixed room inventory.
var Catalog = []Room{
	{ID: "cosy-queen", Name: "Cosy Queen", Capacity: 2, Base: 140},
	{ID: "deluxe-king", Name: "Deluxe King", Capacity: 3, Base: 190},
	{ID: "family-suite", Name: "Family Suite", Capacity: 4, Base: 260},
	{ID: "penthouse-suite", Name: "Penthouse Suite", Capacity: 5, Base: 420},
}

const isoDate = "2006-01-02"

// rng is an xorshift32 stream seeded from an FNV-1a hash of a label, so each
// label gets its own reproducible sequence.
type rng struct{ state uint32 }

func newRNG(label string) *rng {
	h := fnv.New32a()
	_, _ = h.Write([]byte(label))
	s := h.Sum32()
	if s == 0 {
		s = 1
	}
	return &rng{state: s}
}

func (r *rng) next() float64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 17
	r.state ^= r.state << 5
	return float64(r.state) / float64(math.MaxUint32)
}

func seasonMultiplier(d time.Time) float64 {
	switch m := d.Month(); {
	case m >= time.June && m <= time.September:
		return 1.15
	case m == time.December:
		return 1.20
	default:
		return 1.0
	}
}

func weekendMultiplier(d time.Time) float64 {
	if w := d.Weekday(); w == time.Friday || w == time.Saturday {
		return 1.20
	}
	return 1.0
}

// occupancyForDate simulates 50-100% occupancy per room for one date.
func occupancyForDate(dateISO string) map[string]int {
	r := newRNG("occ:" + dateISO)
	occ := make(map[string]int, len(Catalog))
	for _, room := range Catalog {
		occ[room.ID] = int(50 + r.next()*50)
	}
	return occ
}

func nightlyRate(room Room, day time.Time) int {
	occ := occupancyForDate(day.Format(isoDate))[room.ID]
	occMult := 1.0
	switch {
	case occ > 80:
		occMult = 1.12
	case occ > 65:
		occMult = 1.06
	}
	rate := float64(room.Base) * seasonMultiplier(day) * weekendMultiplier(day) * occMult
	return int(math.Round(rate))
}

// Nights is the stay length between two ISO dates, clamped to a minimum of
// one night: a zero-length range is treated as a one-night stay.
func Nights(checkIn, checkOut string) int {
	a, errA := time.Parse(isoDate, checkIn)
	b, errB := time.Parse(isoDate, checkOut)
	if errA != nil || errB != nil {
		return 0
	}
	n := int(math.Round(b.Sub(a).Hours() / 24))
	if n < 1 {
		return 1
	}
	return n
}

// Simulator implements domain.Quoter over the fixed catalog.
type Simulator struct{}

func NewSimulator() *Simulator { return &Simulator{} }

// Quote prices every room that fits the party (or the preferred room only),
// applies a long-stay discount from five nights, then drops rooms the seeded
// sold-out draw removes. Deterministic for identical inputs.
func (s *Simulator) Quote(roomType, checkIn, checkOut string, guests int) domain.QuoteResult {
	if checkIn == "" || checkOut == "" {
		return domain.QuoteResult{Error: "Please provide both check-in and check-out dates."}
	}
	start, err := time.Parse(isoDate, checkIn)
	if err != nil {
		return domain.QuoteResult{Error: "Please provide both check-in and check-out dates."}
	}
	if guests <= 0 {
		guests = 2
	}
	if roomType == "" {
		roomType = domain.RoomAny
	}

	nights := Nights(checkIn, checkOut)
	offers := make([]domain.Offer, 0, len(Catalog))
	for _, room := range Catalog {
		if guests > room.Capacity {
			continue
		}
		if roomType != domain.RoomAny && strings.ToLower(room.Name) != roomType {
			continue
		}
		nightly := make([]int, nights)
		total := 0
		for i := 0; i < nights; i++ {
			nightly[i] = nightlyRate(room, start.AddDate(0, 0, i))
			total += nightly[i]
		}
		if nights >= 5 {
			total = int(math.Round(float64(total) * 0.95))
		}
		offers = append(offers, domain.Offer{RoomName: room.Name, Capacity: room.Capacity, NightlyRates: nightly, Total: total})
	}
	if len(offers) == 0 {
		return domain.QuoteResult{Error: "No rooms fit your party size. Try reducing guests or a different room."}
	}

	available := offers[:0:0]
	for _, o := range offers {
		if !soldOut(o, checkIn, checkOut) {
			available = append(available, o)
		}
	}
	if len(available) == 0 {
		return domain.QuoteResult{Error: "These dates are very popular. Different dates or fewer nights may help."}
	}
	return domain.QuoteResult{OK: true, Nights: nights, Offers: available}
}

// soldOut occasionally removes an offer on high-demand draws.
func soldOut(o domain.Offer, checkIn, checkOut string) bool {
	sum := 0
	for _, n := range o.NightlyRates {
		sum += n
	}
	avgNight := int(math.Round(float64(sum) / float64(len(o.NightlyRates))))
	draw := newRNG("soldout:" + o.RoomName + checkIn + checkOut).next()
	return draw < 0.12 && float64(avgNight) > float64(o.Total)/float64(len(o.NightlyRates))
}
