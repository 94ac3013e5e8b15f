package vectorstore

import (
	"math"
	"sort"
	"strings"

	"gugugu/internal/domain"
)

// Weights blending semantic similarity with lexical overlap when reranking.
const (
	semanticWeight = 0.7
	keywordWeight  = 0.3
)

// Search embeds the query and ranks candidate chunks by exact cosine
// similarity, descending, ties broken by insertion order. A path or name
// restricts candidates to that document; a scope that cannot be resolved
// yields an empty result, not an error. An empty store yields an empty
// result. topK <= 0 defaults to 5.
func (s *Store) Search(query, path, name string, topK int) ([]domain.SearchResult, error) {
	// Resolve the scope before taking the lock; it is pure filesystem I/O.
	scope := ""
	if path != "" || name != "" {
		resolved, err := s.resolver.Resolve(path, name)
		if err != nil {
			return nil, nil
		}
		scope = resolved
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.embeddings) == 0 {
		return nil, nil
	}

	queryVec := s.embedOrFallback(query)

	results := make([]domain.SearchResult, 0, len(s.order))
	for _, id := range s.order {
		ch := s.chunks[id]
		if scope != "" && ch.FilePath != scope {
			continue
		}
		results = append(results, domain.SearchResult{
			ChunkID:    id,
			Chunk:      ch,
			Similarity: cosine(queryVec, s.embeddings[id]),
		})
	}
	if len(results) == 0 {
		return nil, nil
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	if topK <= 0 {
		topK = 5
	}
	if topK > len(results) {
		topK = len(results)
	}
	return results[:topK], nil
}

// Rerank blends each result's semantic similarity with its lexical overlap
// against the query and re-sorts by the combined score, descending. It fills
// KeywordScore and CombinedScore on the given results and returns them.
// Deterministic given identical inputs; an empty query scores 0 everywhere
// and leaves the similarity order unchanged.
func (s *Store) Rerank(results []domain.SearchResult, query string) []domain.SearchResult {
	queryWords := wordSet(query)

	for i := range results {
		keyword := 0.0
		if len(queryWords) > 0 {
			contentWords := wordSet(results[i].Chunk.Content)
			overlap := 0
			for w := range queryWords {
				if _, ok := contentWords[w]; ok {
					overlap++
				}
			}
			keyword = float64(overlap) / float64(len(queryWords))
		}
		results[i].KeywordScore = keyword
		results[i].CombinedScore = semanticWeight*results[i].Similarity + keywordWeight*keyword
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CombinedScore > results[j].CombinedScore
	})
	return results
}

// wordSet tokenizes text into a case-insensitive whitespace-separated word set.
func wordSet(text string) map[string]struct{} {
	words := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// cosine is the normalized dot product of two vectors. Mismatched dimensions
// or a zero magnitude score 0.
func cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
