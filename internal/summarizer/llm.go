package summarizer

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"docqa/internal/domain"
)

// LLMSummarizer summarizes a document by cleaning its text, splitting it into
// character windows and asking the answerer to compress each window, joining
// the partial summaries with spaces.
type LLMSummarizer struct {
	answerer     domain.Answerer
	chunkChars   int
	overlapChars int
	wordLimit    int
}

var (
	tableRowRe = regexp.MustCompile(`\|.*\|`)
	listNumRe  = regexp.MustCompile(`\d+\.`)
	newlineRe  = regexp.MustCompile(`[\r\n]+`)
)

func NewLLMSummarizer(answerer domain.Answerer, chunkChars, overlapChars, wordLimit int) *LLMSummarizer {
	if chunkChars <= 0 {
		chunkChars = 1000
	}
	if overlapChars < 0 || overlapChars >= chunkChars {
		overlapChars = 30
	}
	if wordLimit <= 0 {
		wordLimit = 100
	}
	return &LLMSummarizer{
		answerer:     answerer,
		chunkChars:   chunkChars,
		overlapChars: overlapChars,
		wordLimit:    wordLimit,
	}
}

func (s *LLMSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	cleaned := CleanText(text)
	if cleaned == "" {
		return "", nil
	}
	var summaries []string
	for _, part := range splitChars(cleaned, s.chunkChars, s.overlapChars) {
		prompt := fmt.Sprintf("Summarize the following text in the same language within %d words:\n\n%s", s.wordLimit, part)
		out, err := s.answerer.Generate(ctx, prompt)
		if err != nil {
			return "", &domain.CollaboratorError{Collaborator: "answerer", Err: err}
		}
		if out = strings.TrimSpace(out); out != "" {
			summaries = append(summaries, out)
		}
	}
	return strings.Join(summaries, " "), nil
}

// CleanText strips table-like rows, numbered-list markers and newlines before
// summarization.
func CleanText(text string) string {
	text = tableRowRe.ReplaceAllString(text, "")
	text = listNumRe.ReplaceAllString(text, "")
	text = newlineRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// splitChars cuts text into rune windows of the given size with overlap
// between consecutive windows.
func splitChars(text string, size, overlap int) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	step := size - overlap
	if step <= 0 {
		step = size
	}
	var parts []string
	for i := 0; i < len(runes); i += step {
		end := i + size
		if end > len(runes) {
			end = len(runes)
		}
		parts = append(parts, string(runes[i:end]))
		if end >= len(runes) {
			break
		}
	}
	return parts
}
