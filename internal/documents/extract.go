// Package documents extracts plain text from uploaded resume files.
// Supported formats are PDF, DOCX, and plain text.
package documents

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ErrUnsupportedFormat indicates a file extension the extractor cannot
// handle.
type ErrUnsupportedFormat struct {
	Extension string
}

func (e *ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported document format: %q (supported: .pdf, .docx, .txt)", e.Extension)
}

// ExtractText extracts the text content from a document, dispatching on the
// filename extension. The returned text is cleaned: whitespace collapsed and
// non-printable characters removed.
func ExtractText(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var (
		text string
		err  error
	)
	switch ext {
	case ".pdf":
		text, err = extractPDF(data)
	case ".docx":
		text, err = extractDOCX(data)
	case ".txt":
		text = string(data)
	default:
		return "", &ErrUnsupportedFormat{Extension: ext}
	}
	if err != nil {
		return "", err
	}

	return CleanText(text), nil
}

// extractPDF pulls plain text out of every page of a PDF.
func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single corrupt page should not discard the rest.
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// extractDOCX pulls the document body text out of a DOCX archive. The raw
// content is WordprocessingML, so markup tags are stripped afterwards.
func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()
	return stripXMLTags(content), nil
}

var (
	xmlTagRe     = regexp.MustCompile(`<[^>]+>`)
	whitespaceRe = regexp.MustCompile(`[ \t]+`)
	blankLinesRe = regexp.MustCompile(`\n{3,}`)
)

// stripXMLTags removes markup, turning paragraph boundaries into newlines.
func stripXMLTags(s string) string {
	s = strings.ReplaceAll(s, "</w:p>", "\n")
	return xmlTagRe.ReplaceAllString(s, " ")
}

// CleanText normalizes extracted text: control characters dropped, runs of
// spaces and blank lines collapsed, lines trimmed.
func CleanText(text string) string {
	var sb strings.Builder
	for _, r := range text {
		if r == '\n' || r == '\t' || r >= ' ' {
			sb.WriteRune(r)
		}
	}

	cleaned := whitespaceRe.ReplaceAllString(sb.String(), " ")
	lines := strings.Split(cleaned, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	cleaned = strings.Join(lines, "\n")
	cleaned = blankLinesRe.ReplaceAllString(cleaned, "\n\n")
	return strings.TrimSpace(cleaned)
}
