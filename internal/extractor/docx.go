package extractor

import (
	"bytes"
	"strings"

	docx "github.com/fumiama/go-docx"
)

// extractDOCX joins non-blank paragraphs with newlines.
func extractDOCX(data []byte) string {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}
	var paragraphs []string
	for _, item := range doc.Document.Body.Items {
		p, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := strings.TrimSpace(p.String())
		if text != "" {
			paragraphs = append(paragraphs, text)
		}
	}
	return strings.Join(paragraphs, "\n")
}
