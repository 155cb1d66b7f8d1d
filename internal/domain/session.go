package domain

// Intent is the discrete conversational purpose of one user turn.
type Intent string

const (
	IntentGreet          Intent = "greet"
	IntentGoodbye        Intent = "goodbye"
	IntentThanks         Intent = "thanks"
	IntentHelp           Intent = "help"
	IntentCancel         Intent = "cancel"
	IntentProvideContact Intent = "provide_contact"
	IntentConfirm        Intent = "confirm"
	IntentHold           Intent = "hold"
	IntentAvailability   Intent = "availability"
	IntentPrice          Intent = "price"
	IntentAmenities      Intent = "amenities"
	IntentDining         Intent = "dining"
	IntentPolicy         Intent = "policy"
	IntentLocation       Intent = "location"
	IntentSmalltalk      Intent = "smalltalk"
	IntentUnknown        Intent = "unknown"
)

// RoomAny marks a draft with no concrete room preference yet.
const RoomAny = "any"

// BookingDraft accumulates booking slots across turns. Empty strings and
// zero guests mean "not provided yet"; later extractions overwrite earlier
// values, missing extractions never clear them.
type BookingDraft struct {
	RoomType     string `json:"room_type,omitempty"`
	Guests       int    `json:"guests,omitempty"`
	CheckIn      string `json:"check_in,omitempty"`  // ISO date
	CheckOut     string `json:"check_out,omitempty"` // ISO date
	ContactName  string `json:"contact_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
	Confirmed    bool   `json:"confirmed,omitempty"`
}

// Active reports whether the draft holds anything worth cancelling.
func (d BookingDraft) Active() bool {
	return d.RoomType != "" || d.CheckIn != "" || d.CheckOut != "" || d.Guests != 0
}

// HasConcreteRoom reports whether a specific room type was chosen (a hold
// cannot be placed on "any").
func (d BookingDraft) HasConcreteRoom() bool {
	return d.RoomType != "" && d.RoomType != RoomAny
}

// Session is the per-conversation state owned by the dialog engine. Hosts may
// serialize it (e.g. into redis) between turns; the engine itself keeps no
// cross-session state.
type Session struct {
	ID            string       `json:"id"`
	Name          string       `json:"name,omitempty"`
	LastIntent    Intent       `json:"last_intent,omitempty"`
	FallbackCount int          `json:"fallback_count,omitempty"`
	PendingHold   bool         `json:"pending_hold,omitempty"`
	Draft         BookingDraft `json:"draft"`
}

// Reply is the engine's answer to one turn: one or more chat bubbles plus
// quick-reply suggestions, in render order.
type Reply struct {
	Messages    []string `json:"messages"`
	Suggestions []string `json:"suggestions"`
}
