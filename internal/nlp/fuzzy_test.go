package nlp

import (
	"math"
	"testing"
)

func TestSimilarityIdentity(t *testing.T) {
	for _, s := range []string{"a", "hi", "availability", "deluxe king"} {
		if got := Similarity(s, s); got != 1 {
			t.Errorf("Similarity(%q, %q) = %v, want 1", s, s, got)
		}
	}
}

func TestSimilarityEmpty(t *testing.T) {
	if Similarity("", "hotel") != 0 || Similarity("hotel", "") != 0 || Similarity("", "") != 0 {
		t.Fatal("empty input must score 0")
	}
}

func TestSimilaritySymmetry(t *testing.T) {
	pairs := [][2]string{{"martha", "marhta"}, {"pool", "spa"}, {"availability", "avalability"}}
	for _, p := range pairs {
		if a, b := Similarity(p[0], p[1]), Similarity(p[1], p[0]); a != b {
			t.Errorf("Similarity(%q,%q)=%v != Similarity(%q,%q)=%v", p[0], p[1], a, p[1], p[0], b)
		}
	}
}

func TestSimilarityKnownValue(t *testing.T) {
	// The textbook Jaro-Winkler example.
	if got := Similarity("martha", "marhta"); math.Abs(got-0.9611) > 0.001 {
		t.Fatalf("Similarity(martha, marhta) = %v, want ~0.9611", got)
	}
}

func TestSimilarityDisjoint(t *testing.T) {
	if got := Similarity("abc", "xyz"); got != 0 {
		t.Fatalf("disjoint strings scored %v, want 0", got)
	}
}
