// Package retrieval ranks knowledge documents against free-text queries
// with TF-IDF weighted cosine similarity.
package retrieval

import (
	"math"
	"sort"

	"aurora_concierge/internal/domain"
	"aurora_concierge/internal/nlp"
)

// DefaultMinScore is the relevance floor below which results are discarded.
// Tuned, not derived.
const DefaultMinScore = 0.08

// Options carries the tunable knobs of retrieval.
type Options struct {
	MinScore float64
}

// Index holds per-term smoothed inverse document frequencies and one weight
// vector per document. Read-only after construction; rebuild if the catalog
// changes.
type Index struct {
	docs     []domain.KnowledgeDocument
	idf      map[string]float64
	vectors  []map[string]float64
	minScore float64
}

// NewIndex builds the index over an immutable catalog.
// idf(term) = ln((N+1)/(df+1)) + 1, so every term keeps positive weight.
func NewIndex(docs []domain.KnowledgeDocument, opts Options) *Index {
	minScore := opts.MinScore
	if minScore <= 0 {
		minScore = DefaultMinScore
	}

	tokens := make([][]string, len(docs))
	df := map[string]int{}
	for i, d := range docs {
		tokens[i] = nlp.Tokenize(d.Text)
		seen := map[string]bool{}
		for _, t := range tokens[i] {
			if !seen[t] {
				seen[t] = true
				df[t]++
			}
		}
	}

	idf := make(map[string]float64, len(df))
	n := float64(len(docs))
	for term, count := range df {
		idf[term] = math.Log((n+1)/float64(count+1)) + 1
	}

	idx := &Index{docs: docs, idf: idf, minScore: minScore}
	idx.vectors = make([]map[string]float64, len(docs))
	for i := range docs {
		idx.vectors[i] = idx.weigh(tokens[i])
	}
	return idx
}

// Search returns up to topK documents ranked by cosine similarity to the
// query, best first. Documents under the relevance floor are dropped even
// when topK has room; ties keep catalog order.
func (x *Index) Search(query string, topK int) []domain.KnowledgeDocument {
	qv := x.weigh(nlp.Tokenize(query))

	type scored struct {
		i     int
		score float64
	}
	ranked := make([]scored, 0, len(x.docs))
	for i, dv := range x.vectors {
		ranked = append(ranked, scored{i: i, score: cosine(qv, dv)})
	}
	sort.SliceStable(ranked, func(a, b int) bool { return ranked[a].score > ranked[b].score })

	out := make([]domain.KnowledgeDocument, 0, topK)
	for _, s := range ranked {
		if len(out) == topK {
			break
		}
		if s.score <= x.minScore {
			break
		}
		out = append(out, x.docs[s.i])
	}
	return out
}

// weigh maps tokens to normalized-TF x IDF weights.
func (x *Index) weigh(tokens []string) map[string]float64 {
	if len(tokens) == 0 {
		return nil
	}
	tf := map[string]int{}
	for _, t := range tokens {
		tf[t]++
	}
	vec := make(map[string]float64, len(tf))
	total := float64(len(tokens))
	for term, count := range tf {
		vec[term] = (float64(count) / total) * x.idf[term]
	}
	return vec
}

// cosine over the union of term keys; zero vectors score 0.
func cosine(a, b map[string]float64) float64 {
	var dot, na, nb float64
	for term, va := range a {
		dot += va * b[term]
		na += va * va
	}
	for _, vb := range b {
		nb += vb * vb
	}
	if dot == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
