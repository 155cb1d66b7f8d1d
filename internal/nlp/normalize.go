package nlp

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// accentFolder decomposes to NFKD and drops combining marks ("café" -> "cafe").
var accentFolder = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases, folds accents, strips punctuation (keeping in-word
// hyphens) and collapses whitespace. Total: any input, including empty,
// yields a valid result, and the function is idempotent.
func Normalize(text string) string {
	folded, _, err := transform.String(accentFolder, strings.ToLower(text))
	if err != nil {
		folded = strings.ToLower(text)
	}
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case r == '_' || r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize splits normalized text on whitespace.
func Tokenize(text string) []string {
	return strings.Fields(Normalize(text))
}

// TitleCase capitalizes the first letter of each whitespace-separated word.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
