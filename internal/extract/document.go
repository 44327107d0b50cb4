package extract

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Supported document MIME types. The variant is resolved once at the boundary
// and dispatched through DocumentParser implementations.
const (
	MimePDF       = "application/pdf"
	MimeDocx      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimePlainText = "text/plain"
)

// DocumentParser converts raw document bytes into plain text. Parsing is best
// effort: failures are reported as human-readable warnings and whatever text
// was accumulated is returned, so a broken page or paragraph never aborts the
// pipeline.
type DocumentParser interface {
	Parse(data []byte) (text string, warnings []string)
}

// ParserFor resolves the parser for a declared MIME type. Unsupported types
// are the only hard failure in text extraction.
func ParserFor(mimeType string) (DocumentParser, error) {
	switch mimeType {
	case MimePDF:
		return &PDFParser{}, nil
	case MimeDocx:
		return &DocxParser{}, nil
	case MimePlainText:
		return &PlainTextParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported document type: %s", mimeType)
	}
}

// ExtractText is the boundary contract: resolve the variant, then parse.
func ExtractText(data []byte, mimeType string) (string, []string, error) {
	parser, err := ParserFor(mimeType)
	if err != nil {
		return "", nil, err
	}
	text, warnings := parser.Parse(data)
	return text, warnings, nil
}

// pdfDocument abstracts the page-level PDF reader so the accumulation policy
// can be tested without crafting broken PDF fixtures.
type pdfDocument interface {
	NumPages() int
	PageText(i int) (string, error)
}

// PDFParser extracts text page by page, joining pages with newlines.
type PDFParser struct{}

func (p *PDFParser) Parse(data []byte) (string, []string) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", []string{fmt.Sprintf("PDF parsing error: %v", err)}
	}
	return collectPages(&pdfReaderAdapter{reader: reader})
}

// collectPages concatenates page text with newline separators. A failing page
// is recorded as a warning and skipped; earlier pages' text is preserved.
func collectPages(doc pdfDocument) (string, []string) {
	var builder strings.Builder
	var warnings []string

	for i := 1; i <= doc.NumPages(); i++ {
		text, err := doc.PageText(i)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("PDF parsing error on page %d: %v", i, err))
			continue
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}

	return builder.String(), warnings
}

// pdfReaderAdapter adapts *pdf.Reader to the pdfDocument interface.
type pdfReaderAdapter struct {
	reader *pdf.Reader
}

func (a *pdfReaderAdapter) NumPages() int {
	return a.reader.NumPage()
}

func (a *pdfReaderAdapter) PageText(i int) (string, error) {
	page := a.reader.Page(i)
	if page.V.IsNull() {
		return "", nil
	}
	return page.GetPlainText(nil)
}

// DocxParser extracts text paragraph by paragraph, joining with newlines.
type DocxParser struct{}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>`)
	docxTags         = regexp.MustCompile(`<[^>]+>`)
)

func (p *DocxParser) Parse(data []byte) (string, []string) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", []string{fmt.Sprintf("DOCX parsing error: %v", err)}
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	return docxParagraphText(content), nil
}

// docxParagraphText flattens WordprocessingML into one line per paragraph.
func docxParagraphText(content string) string {
	var builder strings.Builder
	for _, paragraph := range docxParagraphEnd.Split(content, -1) {
		text := strings.TrimSpace(html.UnescapeString(docxTags.ReplaceAllString(paragraph, "")))
		if text == "" {
			continue
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}
	return builder.String()
}

// PlainTextParser decodes bytes as UTF-8, dropping undecodable sequences.
// It never fails.
type PlainTextParser struct{}

func (p *PlainTextParser) Parse(data []byte) (string, []string) {
	return strings.ToValidUTF8(string(data), ""), nil
}
