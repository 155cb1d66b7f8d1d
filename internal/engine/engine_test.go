package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"aurora_concierge/internal/domain"
	"aurora_concierge/internal/kb"
	"aurora_concierge/internal/pricing"
	"aurora_concierge/internal/retrieval"
)

func newEngine() *Engine {
	idx := retrieval.NewIndex(kb.Catalog(), retrieval.Options{})
	return New(idx, pricing.NewSimulator(), zerolog.Nop()).
		WithClock(func() time.Time { return time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC) })
}

func flat(r domain.Reply) string { return strings.Join(r.Messages, " ") }

func TestGreet(t *testing.T) {
	r := newEngine().Greet()
	if len(r.Messages) == 0 || !strings.Contains(r.Messages[0], "concierge") {
		t.Fatalf("unexpected greeting: %+v", r)
	}
	if len(r.Suggestions) == 0 {
		t.Fatal("greeting must carry quick replies")
	}
}

func TestBookingDialog(t *testing.T) {
	e := newEngine()
	sess := &domain.Session{ID: "dlg"}

	r := e.HandleTurn(sess, "I want to book a Deluxe King for 2 guests")
	if sess.LastIntent != domain.IntentHold {
		t.Fatalf("turn 1 intent = %s", sess.LastIntent)
	}
	if sess.Draft.RoomType != "deluxe king" || sess.Draft.Guests != 2 {
		t.Fatalf("turn 1 draft = %+v", sess.Draft)
	}
	if !strings.Contains(flat(r), "missing") {
		t.Fatalf("turn 1 should list missing slots: %q", flat(r))
	}

	e.HandleTurn(sess, "2025-11-05 to 2025-11-08")
	if sess.Draft.CheckIn != "2025-11-05" || sess.Draft.CheckOut != "2025-11-08" {
		t.Fatalf("turn 2 dates = %+v", sess.Draft)
	}
	// Slots from turn 1 survive.
	if sess.Draft.RoomType != "deluxe king" || sess.Draft.Guests != 2 {
		t.Fatalf("turn 2 lost earlier slots: %+v", sess.Draft)
	}

	r = e.HandleTurn(sess, "I'm Alex, alex@example.com")
	if !sess.Draft.Confirmed {
		t.Fatalf("booking not confirmed: %+v", sess.Draft)
	}
	if sess.Draft.ContactName != "Alex" || sess.Draft.ContactEmail != "alex@example.com" {
		t.Fatalf("contact = %+v", sess.Draft)
	}
	got := flat(r)
	if !strings.Contains(got, "Alex") || !strings.Contains(got, "alex@example.com") {
		t.Fatalf("confirmation should echo contact: %q", got)
	}
}

func TestHoldOnEmptyDraft(t *testing.T) {
	e := newEngine()
	sess := &domain.Session{ID: "empty"}
	r := e.HandleTurn(sess, "book it")

	got := flat(r)
	for _, want := range []string{"check-in date", "check-out date", "guest count", "room type", "name or email"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing-slot prompt lacks %q: %q", want, got)
		}
	}
	if sess.PendingHold {
		t.Fatal("incomplete hold must not go pending")
	}
}

func TestHoldThenEmailConfirms(t *testing.T) {
	e := newEngine()
	sess := &domain.Session{ID: "hold"}

	r := e.HandleTurn(sess, "My name is Alex")
	if sess.Name != "Alex" || !strings.Contains(flat(r), "email") {
		t.Fatalf("name turn: sess=%+v reply=%q", sess, flat(r))
	}

	r = e.HandleTurn(sess, "Hold the Deluxe King Nov 5-8 for 2 guests")
	if !sess.PendingHold {
		t.Fatalf("expected a pending hold, got %+v reply=%q", sess, flat(r))
	}
	if sess.Draft.CheckIn != "2025-11-05" || sess.Draft.CheckOut != "2025-11-09" {
		t.Fatalf("hold dates = %+v", sess.Draft)
	}

	r = e.HandleTurn(sess, "alex@example.com")
	if sess.PendingHold || !sess.Draft.Confirmed {
		t.Fatalf("email should convert the hold: %+v", sess)
	}
	if !strings.Contains(flat(r), "alex@example.com") {
		t.Fatalf("confirmation should echo the address: %q", flat(r))
	}
}

func TestAvailabilityQuote(t *testing.T) {
	e := newEngine()
	sess := &domain.Session{ID: "avail"}

	r := e.HandleTurn(sess, "any availability?")
	if !strings.Contains(flat(r), "missing") {
		t.Fatalf("should ask for missing slots: %q", flat(r))
	}

	r = e.HandleTurn(sess, "2025-03-10 to 2025-03-13 for 2 guests, please check availability")
	got := flat(r)
	if !strings.Contains(got, "2025-03-10") {
		t.Fatalf("quote should echo dates: %q", got)
	}
}

func TestCancelClearsDraft(t *testing.T) {
	e := newEngine()
	sess := &domain.Session{ID: "cx"}

	e.HandleTurn(sess, "book the family suite")
	if !sess.Draft.Active() {
		t.Fatal("draft should be active")
	}

	r := e.HandleTurn(sess, "cancel that")
	if sess.Draft.Active() || sess.PendingHold {
		t.Fatalf("cancel left state behind: %+v", sess)
	}
	if !strings.Contains(flat(r), "cleared") {
		t.Fatalf("unexpected cancel reply: %q", flat(r))
	}

	r = e.HandleTurn(sess, "cancel")
	if !strings.Contains(flat(r), "Nothing to cancel") {
		t.Fatalf("second cancel should say nothing is pending: %q", flat(r))
	}
}

func TestKnowledgeAnswer(t *testing.T) {
	e := newEngine()
	sess := &domain.Session{ID: "kb"}
	r := e.HandleTurn(sess, "what are the pool hours?")
	if !strings.Contains(strings.ToLower(flat(r)), "pool") {
		t.Fatalf("expected a pool answer, got %q", flat(r))
	}
}

func TestFallbackGraduates(t *testing.T) {
	e := newEngine()
	sess := &domain.Session{ID: "fb"}

	r1 := e.HandleTurn(sess, "zzzq xqzz qqxz")
	if sess.FallbackCount != 1 || !strings.Contains(flat(r1), "didn't catch") {
		t.Fatalf("first fallback: count=%d reply=%q", sess.FallbackCount, flat(r1))
	}

	r2 := e.HandleTurn(sess, "zzzq xqzz qqxz")
	if sess.FallbackCount != 2 || !strings.Contains(flat(r2), "try this") {
		t.Fatalf("second fallback: count=%d reply=%q", sess.FallbackCount, flat(r2))
	}

	e.HandleTurn(sess, "hello")
	if sess.FallbackCount != 0 {
		t.Fatalf("understood turn should reset the counter, got %d", sess.FallbackCount)
	}
}

func TestGreetOutranksBooking(t *testing.T) {
	e := newEngine()
	sess := &domain.Session{ID: "pri"}
	e.HandleTurn(sess, "hello, I'd like to book a room")
	if sess.LastIntent != domain.IntentGreet {
		t.Fatalf("intent = %s, want greet", sess.LastIntent)
	}
}

func TestEmptyTurn(t *testing.T) {
	e := newEngine()
	sess := &domain.Session{ID: "zero"}
	r := e.HandleTurn(sess, "   ")
	if len(r.Messages) != 0 || sess.FallbackCount != 0 {
		t.Fatalf("blank turn should be a no-op, got %+v", r)
	}
}
