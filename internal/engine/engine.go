// Package engine drives the concierge conversation: one turn in, one reply
// out, with all booking state carried on the session. The engine never errors
// on user text; anything unparseable just leaves slots empty and the
// slot-filling prompts take it from there.
package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"aurora_concierge/internal/domain"
	"aurora_concierge/internal/nlp"
)

var quickReplies = []string{
	"Check availability", "Pool hours", "Parking", "Breakfast",
	"Wi-Fi", "Pet policy", "Contact", "Location",
}

// Engine is safe to share across sessions: all mutable state lives on the
// Session passed into each turn. Callers must not process two turns of the
// same session concurrently.
type Engine struct {
	classifier *nlp.Classifier
	extractor  *nlp.Extractor
	retriever  domain.Retriever
	quoter     domain.Quoter
	log        zerolog.Logger
	now        func() time.Time
}

func New(retriever domain.Retriever, quoter domain.Quoter, log zerolog.Logger) *Engine {
	return &Engine{
		classifier: nlp.NewClassifier(nlp.ClassifierConfig{}),
		extractor:  nlp.NewExtractor(),
		retriever:  retriever,
		quoter:     quoter,
		log:        log,
		now:        time.Now,
	}
}

// WithClock fixes the reference time used for relative date expressions.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Greet opens a conversation.
func (e *Engine) Greet() domain.Reply {
	return domain.Reply{
		Messages: []string{"Hi! I'm Aurora's concierge. I can check availability, quote prices, explain amenities and policies, and help plan your stay. What can I do for you?"},
		Suggestions: quickReplies,
	}
}

// HandleTurn processes one user message: classify, extract, merge slots,
// dispatch. The session is mutated in place.
func (e *Engine) HandleTurn(sess *domain.Session, raw string) domain.Reply {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.Reply{}
	}

	intent := e.classifier.Classify(raw)
	ents := e.extractor.Extract(raw, e.now())
	sess.LastIntent = intent
	mergeEntities(sess, ents)

	e.log.Debug().
		Str("session", sess.ID).
		Str("intent", string(intent)).
		Str("room", ents.RoomType).
		Int("guests", ents.Guests).
		Str("check_in", ents.CheckIn).
		Msg("turn")

	reply, fellBack := e.dispatch(sess, intent, ents, raw)
	if fellBack {
		sess.FallbackCount++
		reply = e.fallbackReply(sess)
	} else {
		sess.FallbackCount = 0
	}
	return reply
}

// mergeEntities applies the overwrite-if-present policy: non-empty
// extractions replace earlier slot values, empty ones never clear them.
func mergeEntities(sess *domain.Session, ents nlp.Entities) {
	d := &sess.Draft
	if ents.CheckIn != "" {
		d.CheckIn = ents.CheckIn
	}
	if ents.CheckOut != "" {
		d.CheckOut = ents.CheckOut
	}
	if ents.Guests != 0 {
		d.Guests = ents.Guests
	}
	if ents.RoomType != "" {
		d.RoomType = ents.RoomType
	}
	if ents.Email != "" {
		d.ContactEmail = ents.Email
	}
	if ents.Phone != "" {
		d.ContactPhone = ents.Phone
	}
	if ents.Name != "" {
		sess.Name = ents.Name
		d.ContactName = ents.Name
	}
}

// dispatch returns the reply for one classified turn; the second result is
// true when nothing applied and the graduated fallback should speak instead.
func (e *Engine) dispatch(sess *domain.Session, intent domain.Intent, ents nlp.Entities, raw string) (domain.Reply, bool) {
	switch intent {
	case domain.IntentGreet, domain.IntentHelp:
		return e.Greet(), false
	case domain.IntentGoodbye:
		return domain.Reply{
			Messages:    []string{"Safe travels! If you need anything else, I'm just a click away."},
			Suggestions: []string{"Contact", "Policies", "Book"},
		}, false
	case domain.IntentThanks:
		return domain.Reply{
			Messages:    []string{"You're very welcome!"},
			Suggestions: []string{"Check availability", "Amenities"},
		}, false
	case domain.IntentCancel:
		return e.handleCancel(sess), false
	}

	// A pending hold converts as soon as a turn brings an email, whatever
	// else the turn says.
	if sess.PendingHold && ents.Email != "" {
		return e.confirmHold(sess), false
	}

	switch intent {
	case domain.IntentProvideContact:
		return e.handleProvideContact(sess), false
	case domain.IntentConfirm:
		return e.handleConfirm(sess), false
	case domain.IntentHold:
		return e.handleHold(sess), false
	case domain.IntentAvailability, domain.IntentPrice:
		return e.handleAvailability(sess), false
	case domain.IntentAmenities, domain.IntentPolicy, domain.IntentLocation, domain.IntentDining, domain.IntentSmalltalk:
		if docs := e.retriever.Search(raw, 2); len(docs) > 0 {
			return domain.Reply{Messages: []string{docs[0].Reply()}, Suggestions: quickReplies}, false
		}
	}

	// Generic retrieval before giving up.
	if docs := e.retriever.Search(raw, 3); len(docs) > 0 {
		return domain.Reply{Messages: []string{docs[0].Reply()}, Suggestions: quickReplies}, false
	}
	return domain.Reply{}, true
}

func (e *Engine) fallbackReply(sess *domain.Session) domain.Reply {
	if sess.FallbackCount < 2 {
		return domain.Reply{
			Messages:    []string{"I didn't catch that. I can help with availability, amenities, policies, and location."},
			Suggestions: quickReplies,
		}
	}
	return domain.Reply{
		Messages:    []string{"Let's try this: ask me to 'check availability', 'pool hours', 'parking', or 'pet policy'."},
		Suggestions: quickReplies,
	}
}

func (e *Engine) handleCancel(sess *domain.Session) domain.Reply {
	if !sess.Draft.Active() {
		return domain.Reply{
			Messages:    []string{"Nothing to cancel - there's no booking in progress."},
			Suggestions: quickReplies,
		}
	}
	sess.Draft = domain.BookingDraft{}
	sess.PendingHold = false
	return domain.Reply{
		Messages:    []string{"Your tentative booking has been cleared."},
		Suggestions: []string{"Check availability", "Amenities", "Policies"},
	}
}

// confirmHold completes a courtesy hold once an email has arrived.
func (e *Engine) confirmHold(sess *domain.Session) domain.Reply {
	d := &sess.Draft
	sess.PendingHold = false
	d.Confirmed = true
	greeting := "Thanks"
	if sess.Name != "" {
		greeting += ", " + sess.Name
	}
	return domain.Reply{
		Messages: []string{fmt.Sprintf(
			"%s! I've saved %s. You'll receive a confirmation link for the %s from %s to %s.",
			greeting, d.ContactEmail, nlp.TitleCase(d.RoomType), d.CheckIn, d.CheckOut)},
		Suggestions: []string{"Change dates", "Policies", "Location"},
	}
}

func (e *Engine) handleProvideContact(sess *domain.Session) domain.Reply {
	d := sess.Draft
	if d.ContactName == "" && d.ContactEmail == "" {
		return domain.Reply{
			Messages:    []string{`Please share a name and email, e.g. "I'm Alex, alex@example.com".`},
			Suggestions: quickReplies,
		}
	}
	if d.ContactName != "" && d.ContactEmail != "" {
		return e.handleConfirm(sess)
	}
	missing := "email"
	if d.ContactName == "" {
		missing = "name"
	}
	return domain.Reply{
		Messages:    []string{fmt.Sprintf("Thanks! I still need your %s to confirm.", missing)},
		Suggestions: quickReplies,
	}
}

func (e *Engine) handleConfirm(sess *domain.Session) domain.Reply {
	d := &sess.Draft
	if d.CheckIn == "" || d.CheckOut == "" || !d.HasConcreteRoom() {
		return domain.Reply{
			Messages:    []string{`Let's pick a room and dates first. Try: "Book Deluxe King 2025-11-10 to 2025-11-12".`},
			Suggestions: []string{"Deluxe King", "Family Suite", "Next weekend"},
		}
	}
	if d.ContactName == "" || d.ContactEmail == "" {
		return domain.Reply{
			Messages:    []string{"Great! Please share your name and email to confirm."},
			Suggestions: []string{"Check availability", "Change dates"},
		}
	}
	d.Confirmed = true
	sess.PendingHold = false
	return domain.Reply{
		Messages: []string{fmt.Sprintf(
			"All set, %s! Your %s from %s to %s is confirmed. A confirmation will be sent to %s.",
			d.ContactName, nlp.TitleCase(d.RoomType), d.CheckIn, d.CheckOut, d.ContactEmail)},
		Suggestions: []string{"Amenities", "Dining", "Location"},
	}
}

func (e *Engine) handleHold(sess *domain.Session) domain.Reply {
	d := &sess.Draft
	var missing []string
	if d.CheckIn == "" {
		missing = append(missing, "check-in date")
	}
	if d.CheckOut == "" {
		missing = append(missing, "check-out date")
	}
	if d.Guests == 0 {
		missing = append(missing, "guest count")
	}
	if !d.HasConcreteRoom() {
		missing = append(missing, "room type")
	}
	if d.ContactEmail == "" && sess.Name == "" {
		missing = append(missing, "name or email")
	}
	if len(missing) > 0 {
		return domain.Reply{
			Messages: []string{fmt.Sprintf(
				`I can place a 24-hour hold, but I'm missing: %s. You can say "Hold Deluxe King Nov 5-8 for 2 guests. I'm Alex."`,
				strings.Join(missing, ", "))},
			Suggestions: []string{"Hold Deluxe King", "Hold Family Suite", "Next weekend", "2 guests"},
		}
	}

	sess.PendingHold = true
	under := ""
	if sess.Name != "" {
		under = " under " + sess.Name
	}
	return domain.Reply{
		Messages: []string{fmt.Sprintf(
			"Done! I've placed a 24-hour courtesy hold on a %s from %s to %s for %d %s%s. Reply with your email to receive a confirmation link.",
			nlp.TitleCase(d.RoomType), d.CheckIn, d.CheckOut, d.Guests, plural(d.Guests, "guest"), under)},
		Suggestions: []string{"Send my email", "Change dates", "Change room"},
	}
}

func (e *Engine) handleAvailability(sess *domain.Session) domain.Reply {
	d := &sess.Draft
	var missing []string
	if d.CheckIn == "" {
		missing = append(missing, "check-in date")
	}
	if d.CheckOut == "" {
		missing = append(missing, "check-out date")
	}
	if d.Guests == 0 {
		missing = append(missing, "guest count")
	}
	if len(missing) > 0 {
		return domain.Reply{
			Messages: []string{fmt.Sprintf(
				`I can check that. I'm missing your %s. You can type dates like "2025-11-05 to 2025-11-08" or "next weekend".`,
				strings.Join(missing, ", "))},
			Suggestions: []string{"2 guests", "3 guests", "Deluxe King", "Family Suite", "Next weekend"},
		}
	}

	room := d.RoomType
	if room == "" {
		room = domain.RoomAny
	}
	result := e.quoter.Quote(room, d.CheckIn, d.CheckOut, d.Guests)
	if !result.OK {
		return domain.Reply{
			Messages:    []string{result.Error},
			Suggestions: []string{"Try different dates", "Reduce guests", "Any room"},
		}
	}

	offers := result.Offers
	if len(offers) > 3 {
		offers = offers[:3]
	}
	messages := []string{fmt.Sprintf(
		"Here's what I can offer from %s to %s for %d %s:",
		d.CheckIn, d.CheckOut, d.Guests, plural(d.Guests, "guest"))}
	for _, o := range offers {
		messages = append(messages, fmt.Sprintf(
			"%s (sleeps %d) - $%d total for %d %s",
			o.RoomName, o.Capacity, o.Total, result.Nights, plural(result.Nights, "night")))
	}
	messages = append(messages, "Would you like me to hold one of these? I can take your name and email.")

	suggestions := make([]string, 0, 4)
	for i, o := range offers {
		if i == 2 {
			break
		}
		suggestions = append(suggestions, "Hold "+o.RoomName)
	}
	suggestions = append(suggestions, "Change dates", "Change guests")
	return domain.Reply{Messages: messages, Suggestions: suggestions}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
