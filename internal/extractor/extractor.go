// Package extractor converts documents of known container formats into plain
// text. Extraction is best effort: unreadable pages, paragraphs and sheets
// are skipped, and an unrecognized format yields an empty string rather than
// an error.
package extractor

import (
	"path/filepath"
	"strings"

	"docqa/internal/domain"
)

// FileExtractor dispatches on the document's format tag.
type FileExtractor struct{}

func New() *FileExtractor { return &FileExtractor{} }

func (e *FileExtractor) Extract(doc domain.Document) (string, error) {
	switch doc.Format {
	case "pdf":
		return extractPDF(doc.Data), nil
	case "docx":
		return extractDOCX(doc.Data), nil
	case "xlsx":
		return extractXLSX(doc.Data), nil
	default:
		return "", nil
	}
}

// FormatOf derives the format tag from a file name: the lowercase extension
// without the dot.
func FormatOf(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}
