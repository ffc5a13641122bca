package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkFixedWindows(t *testing.T) {
	c := NewWordChunker(2)
	chunks := c.Chunk("alpha beta gamma delta", "report.pdf")
	require.Len(t, chunks, 2)
	assert.Equal(t, "alpha beta", chunks[0].Text)
	assert.Equal(t, "gamma delta", chunks[1].Text)
	for _, ch := range chunks {
		assert.Equal(t, "report.pdf", ch.SourceFile)
	}
}

func TestChunkShortTail(t *testing.T) {
	c := NewWordChunker(3)
	chunks := c.Chunk("one two three four", "letter.docx")
	require.Len(t, chunks, 2)
	assert.Equal(t, "one two three", chunks[0].Text)
	assert.Equal(t, "four", chunks[1].Text)
}

func TestChunkLossless(t *testing.T) {
	text := "  the   quick\nbrown\tfox jumps over the lazy dog  "
	for _, size := range []int{1, 2, 3, 5, 100} {
		c := NewWordChunker(size)
		chunks := c.Chunk(text, "sheet.xlsx")
		parts := make([]string, 0, len(chunks))
		for _, ch := range chunks {
			parts = append(parts, ch.Text)
		}
		assert.Equal(t, strings.Fields(text), strings.Fields(strings.Join(parts, " ")), "chunk size %d", size)
	}
}

func TestChunkEmptyInput(t *testing.T) {
	c := NewWordChunker(4)
	assert.Empty(t, c.Chunk("", "a.pdf"))
	assert.Empty(t, c.Chunk("   \n\t ", "a.pdf"))
}

func TestChunkSizeDefault(t *testing.T) {
	c := NewWordChunker(0)
	words := make([]string, 600)
	for i := range words {
		words[i] = "w"
	}
	chunks := c.Chunk(strings.Join(words, " "), "big.pdf")
	require.Len(t, chunks, 3)
	assert.Len(t, strings.Fields(chunks[0].Text), 250)
	assert.Len(t, strings.Fields(chunks[2].Text), 100)
}
