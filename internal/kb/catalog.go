// Package kb is the hand-written Aurora Hotel knowledge base. The catalog is
// fixed at compile time; the dialog core never mutates it.
package kb

import (
	"strconv"

	"aurora_concierge/internal/domain"
)

type faq struct {
	q    string
	a    string
	tags []string
}

var faqs = []faq{
	{"what time is check in", "Check-in starts at 3:00 PM. Early check-in from 1:00 PM is subject to availability.", []string{"policy", "checkin"}},
	{"what time is check out", "Check-out is 11:00 AM. Late check-out until 1:00 PM may be available for a small fee.", []string{"policy", "checkout"}},
	{"do you have parking", "Yes. Valet parking is available for $25/night. EV charging included.", []string{"parking"}},
	{"wifi speed", "Secure fiber Wi-Fi up to 500 Mbps in all areas.", []string{"wifi"}},
	{"is breakfast included", "Breakfast is available at Cafe Aurora from 7-11 AM. Packages with breakfast can be selected during booking.", []string{"dining", "breakfast"}},
	{"pool hours", "The heated infinity pool is open daily 7 AM - 9 PM.", []string{"pool", "amenities"}},
	{"gym hours", "Our 24/7 fitness studio is always open.", []string{"gym", "amenities"}},
	{"spa hours", "Rooftop spa is open 10 AM - 8 PM. Appointments recommended.", []string{"spa"}},
	{"pet policy", "We welcome well-behaved dogs up to 30 lb on designated floors. A $40/night cleaning fee applies.", []string{"pets", "policy"}},
	{"cancellation policy", "Free cancellation up to 48 hours before check-in. Within 48 hours, one night charged.", []string{"policy", "cancellation"}},
	{"address", "100 Harbor Walk, Old Town District. Waterfront promenade meets arts quarter.", []string{"location", "address"}},
	{"airport distance", "Aurora Hotel is ~25 minutes by car from the airport, traffic permitting.", []string{"transport", "airport"}},
	{"do you have restaurant", "Yes. Cafe Aurora (all-day) and a rooftop bar with small plates from 5 PM.", []string{"dining"}},
	{"room service", "Room service is available 7 AM - 10 PM.", []string{"dining", "room-service"}},
	{"housekeeping", "Daily housekeeping included. Eco refresh on request.", []string{"housekeeping"}},
}

var docs = []domain.KnowledgeDocument{
	{ID: "about", Text: "Aurora Hotel is a boutique property on the waterfront at the edge of Old Town. Interiors feature natural woods, stone, and soft textiles. Amenities include a rooftop spa and sauna, a heated infinity pool, a 24/7 fitness studio, fast fiber Wi-Fi, valet parking with EV charging, complimentary bicycles, and pet-friendly floors.", Tags: []string{"about", "amenities"}},
	{ID: "dining", Text: "Cafe Aurora serves an all-day menu focused on seasonal local produce, excellent coffee, and bakery goods. The rooftop bar offers cocktails and small plates from late afternoon through evening.", Tags: []string{"dining"}},
	{ID: "location", Text: "We're located at 100 Harbor Walk in the Old Town District, where the waterfront promenade meets the arts quarter. The neighborhood includes galleries, independent shops, and weekend markets.", Tags: []string{"location"}},
	{ID: "policies", Text: "Check-in from 3 PM, check-out by 11 AM. Free cancellation up to 48 hours before check-in. Pets up to 30 lb on designated floors with a nightly cleaning fee. Valet parking available with EV charging.", Tags: []string{"policy"}},
	{ID: "wellness", Text: "Our rooftop spa (10 AM - 8 PM) offers massages and facials by appointment. The heated infinity pool is open 7 AM - 9 PM daily. The fitness studio is open 24/7.", Tags: []string{"amenities", "spa", "pool", "gym"}},
}

// Catalog returns the searchable corpus: FAQ entries (question+answer bodies
// with the answer as curated reply) followed by the longer documents. Order
// is stable; retrieval tie-breaks depend on it.
func Catalog() []domain.KnowledgeDocument {
	out := make([]domain.KnowledgeDocument, 0, len(faqs)+len(docs))
	for i, f := range faqs {
		out = append(out, domain.KnowledgeDocument{
			ID:     "faq-" + strconv.Itoa(i),
			Text:   f.q + " " + f.a,
			Answer: f.a,
			Tags:   f.tags,
		})
	}
	out = append(out, docs...)
	return out
}
