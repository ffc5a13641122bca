package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.Embedder.Type)
	assert.Equal(t, "text-embedding-3-small", cfg.Embedder.OpenAI.Model)
	assert.Equal(t, "OPENAI_API_KEY", cfg.Embedder.OpenAI.APIKeyEnv)
	assert.Equal(t, 250, cfg.Chunker.ChunkSizeWords)
	assert.Equal(t, 3, cfg.Retriever.TopK)
	assert.Equal(t, "gpt-4o-mini", cfg.Answerer.Model)
	assert.Equal(t, 1000, cfg.Summarizer.ChunkChars)
}

func TestLoadAppliesDefaultsToPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
embedder:
  type: tfidf
chunker:
  chunk_size_words: 100
retriever:
  top_k: 5
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tfidf", cfg.Embedder.Type)
	assert.Nil(t, cfg.Embedder.OpenAI)
	assert.Equal(t, 100, cfg.Chunker.ChunkSizeWords)
	assert.Equal(t, 5, cfg.Retriever.TopK)
	assert.Equal(t, "gpt-4o-mini", cfg.Answerer.Model)
	assert.Equal(t, 1024, cfg.Answerer.MaxTokens)
	assert.Equal(t, 30, cfg.Summarizer.OverlapChars)
}

func TestLoadMalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("embedder: [not: a: mapping"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := defaultConfig()
	cfg.Chunker.ChunkSizeWords = 42
	cfg.Retriever.TopK = 7
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 42, loaded.Chunker.ChunkSizeWords)
	assert.Equal(t, 7, loaded.Retriever.TopK)
	assert.Equal(t, cfg.Embedder.Type, loaded.Embedder.Type)
}
