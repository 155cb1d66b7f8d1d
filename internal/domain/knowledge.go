package domain

// KnowledgeDocument is one immutable entry of the concierge knowledge base.
// Answer, when set, is the curated reply preferred over the raw body.
type KnowledgeDocument struct {
	ID     string
	Text   string
	Answer string
	Tags   []string
}

// Reply returns the curated answer, falling back to the searchable body.
func (d KnowledgeDocument) Reply() string {
	if d.Answer != "" {
		return d.Answer
	}
	return d.Text
}

// Offer is one priced room proposal from the availability simulator.
type Offer struct {
	RoomName     string `json:"room"`
	Capacity     int    `json:"capacity"`
	NightlyRates []int  `json:"nightly"`
	Total        int    `json:"total"`
}

// QuoteResult is the availability simulator's answer for one stay request.
// When OK is false, Error carries a user-facing explanation.
type QuoteResult struct {
	OK     bool
	Nights int
	Offers []Offer
	Error  string
}
