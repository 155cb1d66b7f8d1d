package nlp

import (
	"testing"

	"aurora_concierge/internal/domain"
)

func TestClassify(t *testing.T) {
	c := NewClassifier(ClassifierConfig{})

	cases := []struct {
		text string
		want domain.Intent
	}{
		{"hello", domain.IntentGreet},
		{"Hey there!", domain.IntentGreet},
		// First matching rule wins: greet outranks hold.
		{"hello, I'd like to book a room", domain.IntentGreet},
		{"book it", domain.IntentHold},
		{"reserve a room for us", domain.IntentHold},
		{"yes", domain.IntentConfirm},
		{"cancel my booking", domain.IntentCancel},
		{"thanks a lot", domain.IntentThanks},
		{"do you have a pool", domain.IntentAmenities},
		{"what's your pet policy", domain.IntentPolicy},
		{"how much is a night", domain.IntentPrice},
		{"where are you located", domain.IntentLocation},
		{"is breakfast included", domain.IntentDining},
		{"any availability in November?", domain.IntentAvailability},
		{"reach me at jo@example.com", domain.IntentProvideContact},
		{"xylophone quartz vortex", domain.IntentUnknown},
		{"", domain.IntentUnknown},
	}
	for _, tc := range cases {
		if got := c.Classify(tc.text); got != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.text, got, tc.want)
		}
	}
}

func TestClassifyFuzzyKeyword(t *testing.T) {
	c := NewClassifier(ClassifierConfig{})
	// Misspelling close enough to clear the high-confidence bar.
	if got := c.Classify("avalability"); got != domain.IntentAvailability {
		t.Fatalf("Classify(avalability) = %s, want availability", got)
	}
}

func TestClassifyWholeWordBoundary(t *testing.T) {
	c := NewClassifier(ClassifierConfig{})
	// "hi" must not fire inside "this"; the sentence should fall through to
	// the policy rule via "check out".
	if got := c.Classify("this check out thing"); got != domain.IntentPolicy {
		t.Fatalf("Classify = %s, want policy", got)
	}
}

func TestClassifyThresholdOverride(t *testing.T) {
	strict := NewClassifier(ClassifierConfig{FuzzyThreshold: 0.999})
	if got := strict.Classify("avalability"); got != domain.IntentUnknown {
		t.Fatalf("strict threshold should reject the misspelling, got %s", got)
	}
}
