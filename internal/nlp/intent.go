package nlp

import (
	"regexp"
	"strings"

	"aurora_concierge/internal/domain"
)

// DefaultFuzzyThreshold is the high-confidence bar a fuzzy keyword score must
// clear when the keyword is not contained verbatim. Tuned, not derived.
const DefaultFuzzyThreshold = 0.9

// ClassifierConfig carries the tunable knobs of intent classification.
type ClassifierConfig struct {
	FuzzyThreshold float64
}

type intentRule struct {
	intent   domain.Intent
	keywords []string
	pattern  *regexp.Regexp // optional, tested against the raw text
}

var emailPattern = regexp.MustCompile(`(?i)[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}`)

// Classifier maps one turn of user text to a single intent. Rules are held in
// declaration order and the first intent to satisfy any of its rules wins, so
// a message carrying both "hello" and "book" resolves to greet.
type Classifier struct {
	rules     []intentRule
	threshold float64
}

func NewClassifier(cfg ClassifierConfig) *Classifier {
	th := cfg.FuzzyThreshold
	if th <= 0 {
		th = DefaultFuzzyThreshold
	}
	return &Classifier{threshold: th, rules: []intentRule{
		{intent: domain.IntentGreet, keywords: []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening"}},
		{intent: domain.IntentGoodbye, keywords: []string{"bye", "goodbye", "see you", "later"}},
		{intent: domain.IntentThanks, keywords: []string{"thanks", "thank you", "appreciate"}},
		{intent: domain.IntentHelp, keywords: []string{"help", "what can you do", "how does this work", "assist"}},
		{intent: domain.IntentCancel, keywords: []string{"cancel", "never mind", "start over"}},
		{intent: domain.IntentProvideContact, keywords: []string{"my name is", "name is", "i am", "i m", "this is", "email is"}, pattern: emailPattern},
		{intent: domain.IntentConfirm, keywords: []string{"yes", "yep", "yeah", "confirm", "go ahead", "sounds good"}},
		{intent: domain.IntentHold, keywords: []string{"hold", "book", "reserve"}},
		{intent: domain.IntentAvailability, keywords: []string{"availability", "available", "check availability", "dates"}},
		{intent: domain.IntentPrice, keywords: []string{"price", "rate", "cost", "how much"}},
		{intent: domain.IntentAmenities, keywords: []string{"amenities", "spa", "pool", "gym", "wifi", "wi-fi", "parking", "bar", "restaurant"}},
		{intent: domain.IntentDining, keywords: []string{"dining", "breakfast", "dinner", "menu", "vegan", "room service"}},
		{intent: domain.IntentPolicy, keywords: []string{"policy", "policies", "check in", "check-in", "check out", "check-out", "cancellation", "pet", "pets", "smoking"}},
		{intent: domain.IntentLocation, keywords: []string{"where", "address", "location", "directions", "airport"}},
		{intent: domain.IntentSmalltalk, keywords: []string{"weather", "rain", "sunny", "snow", "joke", "funny"}},
	}}
}

// Classify never fails; unmatched text maps to IntentUnknown.
func (c *Classifier) Classify(text string) domain.Intent {
	normalized := Normalize(text)
	for _, rule := range c.rules {
		if rule.pattern != nil && rule.pattern.MatchString(text) {
			return rule.intent
		}
		for _, kw := range rule.keywords {
			if containsPhrase(normalized, kw) || Similarity(normalized, kw) > c.threshold {
				return rule.intent
			}
		}
	}
	return domain.IntentUnknown
}

// containsPhrase matches the keyword on whole-word boundaries so that "hi"
// does not fire inside "this".
func containsPhrase(normalized, phrase string) bool {
	return strings.Contains(" "+normalized+" ", " "+phrase+" ")
}
