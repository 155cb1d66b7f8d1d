package observability

import "aurora_concierge/internal/domain"

// InstrumentedRetriever counts hit/miss outcomes around another retriever.
type InstrumentedRetriever struct {
	Inner domain.Retriever
}

func (r InstrumentedRetriever) Search(query string, topK int) []domain.KnowledgeDocument {
	docs := r.Inner.Search(query, topK)
	if len(docs) > 0 {
		ObserveRetrieval("hit")
	} else {
		ObserveRetrieval("miss")
	}
	return docs
}
