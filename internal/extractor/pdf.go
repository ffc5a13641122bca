package extractor

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF joins the text of each page with newlines, skipping pages that
// yield no text. The parser can panic on malformed input; both the reader
// setup and each page are guarded so partial extraction still succeeds.
func extractPDF(data []byte) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}
	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		page, ok := pageText(r, i)
		if ok && strings.TrimSpace(page) != "" {
			pages = append(pages, page)
		}
	}
	return strings.Join(pages, "\n")
}

// pageText recovers from parser panics so one broken page cannot sink the
// whole document.
func pageText(r *pdf.Reader, n int) (text string, ok bool) {
	defer func() {
		if recover() != nil {
			text, ok = "", false
		}
	}()
	p := r.Page(n)
	if p.V.IsNull() {
		return "", false
	}
	t, err := p.GetPlainText(nil)
	if err != nil {
		return "", false
	}
	return t, true
}
