package autofill

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ReadDocumentText extracts plain text from a PDF or DOCX file. Any other
// extension is rejected with ErrUnsupportedFormat before opening the file.
func ReadDocumentText(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return readPDFText(path)
	case ".docx":
		return readDocxText(path)
	default:
		return "", ErrUnsupportedFormat
	}
}

func readPDFText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", &ReadError{Path: path, Cause: err}
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		// Pages that fail to decode are skipped; extraction stays
		// best-effort per page.
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

var (
	docxParaRe = regexp.MustCompile(`</w:p>`)
	docxTagRe  = regexp.MustCompile(`<[^>]+>`)
)

func readDocxText(path string) (string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", &ReadError{Path: path, Cause: err}
	}
	defer doc.Close()

	// GetContent returns the raw document XML; paragraph ends become
	// newlines, remaining tags are stripped.
	content := doc.Editable().GetContent()
	content = docxParaRe.ReplaceAllString(content, "\n")
	content = docxTagRe.ReplaceAllString(content, "")
	content = strings.ReplaceAll(content, "&amp;", "&")
	content = strings.ReplaceAll(content, "&lt;", "<")
	content = strings.ReplaceAll(content, "&gt;", ">")
	return content, nil
}
