package chunker

import (
	"strings"

	"docqa/internal/domain"
)

// WordChunker splits whitespace-tokenized text into consecutive
// non-overlapping windows of a fixed word count. The last window may be
// shorter; word order is preserved.
type WordChunker struct {
	chunkSize int
}

func NewWordChunker(chunkSize int) *WordChunker {
	if chunkSize <= 0 {
		chunkSize = 250
	}
	return &WordChunker{chunkSize: chunkSize}
}

func (c *WordChunker) Chunk(text, sourceFile string) []domain.Chunk {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	chunks := make([]domain.Chunk, 0, (len(words)+c.chunkSize-1)/c.chunkSize)
	for i := 0; i < len(words); i += c.chunkSize {
		end := i + c.chunkSize
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, domain.Chunk{
			Text:       strings.Join(words[i:end], " "),
			SourceFile: sourceFile,
		})
	}
	return chunks
}
