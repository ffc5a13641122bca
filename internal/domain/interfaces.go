package domain

import "context"

// Document is a source file read for ingestion. Format is the lowercase
// filename extension without the dot ("pdf", "docx", "xlsx").
type Document struct {
	Path   string
	Data   []byte
	Format string
}

// Chunk is a fixed-size window of a document's words, the unit of retrieval.
type Chunk struct {
	Text       string
	SourceFile string
}

// RetrievalResult pairs a chunk with its squared Euclidean distance to the
// query vector. Lower scores are more relevant.
type RetrievalResult struct {
	Chunk Chunk
	Score float32
}

// Result is a generated answer together with the chunks that were supplied as
// grounding context, ascending by score. An empty Answer means the model
// found nothing applicable in the context; it is not an error.
type Result struct {
	Answer  string
	Sources []RetrievalResult
}

// Extractor converts a document of a known container format into plain text.
// Unrecognized formats and undecodable content yield an empty string; partial
// extraction is preferred over failure.
type Extractor interface {
	Extract(doc Document) (string, error)
}

// Chunker splits plain text into chunks tagged with their source file.
type Chunker interface {
	Chunk(text, sourceFile string) []Chunk
}

// Embedder converts free text into fixed-length numeric vectors. All vectors
// produced by one embedder configuration have the same dimensionality.
type Embedder interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
}

// Index holds chunk vectors and supports nearest-neighbor lookup. It is
// rebuilt wholesale per run; a failed build leaves it unusable.
type Index interface {
	Build(ctx context.Context, chunks []Chunk) error
	Search(ctx context.Context, query string, k int) ([]RetrievalResult, error)
}

// Answerer is a hosted text-generation collaborator. Stateless per call.
type Answerer interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Summarizer produces a brief summary of the provided text.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// QAService defines the operations exposed by the application core.
type QAService interface {
	LoadDocuments(ctx context.Context, paths []string) (chunks int, err error)
	Answer(ctx context.Context, question string) (Result, error)
}
