package summarizer

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docqa/internal/domain"
)

type fakeAnswerer struct {
	reply   string
	err     error
	prompts []string
}

func (a *fakeAnswerer) Generate(_ context.Context, prompt string) (string, error) {
	a.prompts = append(a.prompts, prompt)
	if a.err != nil {
		return "", a.err
	}
	if a.reply != "" {
		return a.reply, nil
	}
	return fmt.Sprintf("summary %d", len(a.prompts)), nil
}

func TestCleanText(t *testing.T) {
	in := "alpha beta\n|tab|le|\r\ngamma 12. delta\n"
	assert.Equal(t, "alpha beta gamma  delta", CleanText(in))
}

func TestCleanTextAllNoise(t *testing.T) {
	assert.Equal(t, "", CleanText("\n\n|a|b|\n"))
	assert.Equal(t, "", CleanText("   "))
}

func TestSplitCharsWindowsAndOverlap(t *testing.T) {
	parts := splitChars("abcdefghij", 5, 2)
	assert.Equal(t, []string{"abcde", "defgh", "ghij"}, parts)
}

func TestSplitCharsSingleWindow(t *testing.T) {
	parts := splitChars("short", 100, 30)
	assert.Equal(t, []string{"short"}, parts)
}

func TestSplitCharsRuneSafe(t *testing.T) {
	parts := splitChars("日本語テキスト", 3, 1)
	assert.Equal(t, []string{"日本語", "語テキ", "キスト"}, parts)
}

func TestSummarizeJoinsChunkSummaries(t *testing.T) {
	ans := &fakeAnswerer{}
	s := NewLLMSummarizer(ans, 10, 0, 50)

	out, err := s.Summarize(context.Background(), "abcdefghijklmno")
	require.NoError(t, err)
	assert.Equal(t, "summary 1 summary 2", out)
	require.Len(t, ans.prompts, 2)
	assert.Contains(t, ans.prompts[0], "within 50 words")
	assert.Contains(t, ans.prompts[0], "abcdefghij")
	assert.Contains(t, ans.prompts[1], "klmno")
}

func TestSummarizeEmptyAfterCleaning(t *testing.T) {
	ans := &fakeAnswerer{}
	s := NewLLMSummarizer(ans, 1000, 30, 100)

	out, err := s.Summarize(context.Background(), "\n|only|a|table|\n")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Empty(t, ans.prompts)
}

func TestSummarizeWrapsAnswererFailure(t *testing.T) {
	ans := &fakeAnswerer{err: errors.New("model overloaded")}
	s := NewLLMSummarizer(ans, 1000, 30, 100)

	_, err := s.Summarize(context.Background(), "some document text")
	require.Error(t, err)
	var ce *domain.CollaboratorError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "answerer", ce.Collaborator)
}
