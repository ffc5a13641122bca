package service

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"

	"docqa/internal/domain"
	"docqa/internal/extractor"
)

// QAServiceImpl wires extraction, chunking, indexing and answer generation
// into one request/response cycle. Collaborators are injected; the service
// holds no cross-request state beyond the index built by LoadDocuments.
type QAServiceImpl struct {
	extractor  domain.Extractor
	chunker    domain.Chunker
	index      domain.Index
	answerer   domain.Answerer
	summarizer domain.Summarizer
	topK       int
}

func NewQAService(extractor domain.Extractor, chunker domain.Chunker, index domain.Index, answerer domain.Answerer, summarizer domain.Summarizer, topK int) *QAServiceImpl {
	if topK <= 0 {
		topK = 3
	}
	return &QAServiceImpl{
		extractor:  extractor,
		chunker:    chunker,
		index:      index,
		answerer:   answerer,
		summarizer: summarizer,
		topK:       topK,
	}
}

// LoadDocuments reads, extracts and chunks the given files and builds the
// index over all chunks combined. Missing files and files yielding no text
// are skipped with a warning; zero chunks overall is ErrNoUsableContent and
// no collaborator is called. Returns the number of indexed chunks.
func (s *QAServiceImpl) LoadDocuments(ctx context.Context, paths []string) (int, error) {
	var chunks []domain.Chunk
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || info.IsDir() {
			log.Printf("warning: skipping %s: not a readable file", p)
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil {
			log.Printf("warning: skipping %s: %v", p, err)
			continue
		}
		text, err := s.extractor.Extract(domain.Document{
			Path:   p,
			Data:   data,
			Format: extractor.FormatOf(p),
		})
		if err != nil {
			log.Printf("warning: could not extract %s: %v", p, err)
			continue
		}
		if strings.TrimSpace(text) == "" {
			log.Printf("warning: no text extracted from %s", p)
			continue
		}
		chunks = append(chunks, s.chunker.Chunk(text, filepath.Base(p))...)
	}
	if len(chunks) == 0 {
		return 0, domain.ErrNoUsableContent
	}
	if err := s.index.Build(ctx, chunks); err != nil {
		return 0, err
	}
	return len(chunks), nil
}

// Answer retrieves the most relevant chunks for the question and asks the
// answerer to respond using only that context. An empty trimmed answer is a
// valid "no answer found" outcome, not an error.
func (s *QAServiceImpl) Answer(ctx context.Context, question string) (domain.Result, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return domain.Result{}, errors.New("empty question")
	}
	sources, err := s.index.Search(ctx, question, s.topK)
	if err != nil {
		return domain.Result{}, err
	}
	answer, err := s.answerer.Generate(ctx, buildPrompt(question, sources))
	if err != nil {
		return domain.Result{}, &domain.CollaboratorError{Collaborator: "answerer", Err: err}
	}
	return domain.Result{Answer: strings.TrimSpace(answer), Sources: sources}, nil
}

// SummarizeDocument extracts a single file and produces a standalone summary
// of its contents. No index is involved.
func (s *QAServiceImpl) SummarizeDocument(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	text, err := s.extractor.Extract(domain.Document{
		Path:   path,
		Data:   data,
		Format: extractor.FormatOf(path),
	})
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", domain.ErrNoUsableContent
	}
	return s.summarizer.Summarize(ctx, text)
}

// buildPrompt embeds the retrieved chunk texts as context and instructs the
// answerer to respond only from it.
func buildPrompt(question string, sources []domain.RetrievalResult) string {
	texts := make([]string, len(sources))
	for i, r := range sources {
		texts[i] = r.Chunk.Text
	}
	var b strings.Builder
	b.WriteString("Answer the following question in a complete and detailed sentence based only on the provided context.\n\n")
	b.WriteString("Context:\n")
	b.WriteString(strings.Join(texts, "\n\n"))
	b.WriteString("\n\nQuestion: ")
	b.WriteString(question)
	b.WriteString("\n\n")
	return b.String()
}
