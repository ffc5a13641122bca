// Package index provides an exhaustive in-memory nearest-neighbor index over
// squared Euclidean distance.
package index

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"docqa/internal/domain"
)

// Flat stores one vector per chunk, in chunk order, and scans all of them on
// every search. It is rebuilt wholesale per run; Build is all-or-nothing and
// a failed build leaves the index empty.
type Flat struct {
	embedder  domain.Embedder
	chunks    []domain.Chunk
	vectors   [][]float32
	dimension int
}

func NewFlat(embedder domain.Embedder) *Flat {
	return &Flat{embedder: embedder}
}

// Build embeds every chunk's text through the batch entry point and stores
// the vectors. Chunk order is preserved; any embedding failure discards all
// previously computed vectors for this build.
func (f *Flat) Build(ctx context.Context, chunks []domain.Chunk) error {
	f.chunks, f.vectors, f.dimension = nil, nil, 0
	if len(chunks) == 0 {
		return errors.New("no chunks to index")
	}
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}
	vectors, err := f.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return &domain.CollaboratorError{Collaborator: "embedder", Err: err}
	}
	if len(vectors) != len(chunks) {
		return fmt.Errorf("embedder returned %d vectors for %d chunks", len(vectors), len(chunks))
	}
	dim := len(vectors[0])
	for i, v := range vectors {
		if len(v) != dim {
			return fmt.Errorf("vector %d has dimension %d, want %d", i, len(v), dim)
		}
	}
	f.chunks = append([]domain.Chunk(nil), chunks...)
	f.vectors = vectors
	f.dimension = dim
	return nil
}

// Len reports the number of indexed chunks.
func (f *Flat) Len() int { return len(f.chunks) }

// Search embeds the query through the single-item entry point and returns the
// k nearest chunks ascending by squared Euclidean distance. Ties keep
// original chunk order. k larger than the index returns everything.
func (f *Flat) Search(ctx context.Context, query string, k int) ([]domain.RetrievalResult, error) {
	if len(f.vectors) == 0 {
		return nil, errors.New("index is empty")
	}
	if k <= 0 {
		return nil, nil
	}
	qv, err := f.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, &domain.CollaboratorError{Collaborator: "embedder", Err: err}
	}
	if len(qv) != f.dimension {
		return nil, fmt.Errorf("query dimension %d does not match index dimension %d", len(qv), f.dimension)
	}
	order := make([]int, len(f.vectors))
	scores := make([]float32, len(f.vectors))
	for i, v := range f.vectors {
		order[i] = i
		scores[i] = sqDist(qv, v)
	}
	sort.SliceStable(order, func(a, b int) bool { return scores[order[a]] < scores[order[b]] })
	if k > len(order) {
		k = len(order)
	}
	results := make([]domain.RetrievalResult, 0, k)
	for _, i := range order[:k] {
		results = append(results, domain.RetrievalResult{Chunk: f.chunks[i], Score: scores[i]})
	}
	return results, nil
}

// sqDist is raw squared Euclidean distance. No normalization is applied, so
// embedding magnitude affects ranking; embedders wanting cosine ordering must
// normalize their vectors before indexing.
func sqDist(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
