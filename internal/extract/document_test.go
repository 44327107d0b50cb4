package extract

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestParserFor(t *testing.T) {
	tests := []struct {
		name        string
		mimeType    string
		expectError bool
	}{
		{name: "pdf", mimeType: MimePDF},
		{name: "docx", mimeType: MimeDocx},
		{name: "plain text", mimeType: MimePlainText},
		{name: "unsupported", mimeType: "image/png", expectError: true},
		{name: "empty", mimeType: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser, err := ParserFor(tt.mimeType)
			if tt.expectError {
				if err == nil {
					t.Errorf("expected error for %q, got parser %T", tt.mimeType, parser)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error for %q: %v", tt.mimeType, err)
			}
			if parser == nil {
				t.Errorf("expected parser for %q, got nil", tt.mimeType)
			}
		})
	}
}

func TestPlainTextParser(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected string
	}{
		{
			name:     "valid utf-8 passes through",
			data:     []byte("Python developer, 5 years"),
			expected: "Python developer, 5 years",
		},
		{
			name:     "invalid utf-8 sequences are dropped",
			data:     []byte{'P', 'y', 0xff, 0xfe, 't', 'h', 'o', 'n'},
			expected: "Python",
		},
		{
			name:     "empty input",
			data:     nil,
			expected: "",
		},
	}

	parser := &PlainTextParser{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, warnings := parser.Parse(tt.data)
			if text != tt.expected {
				t.Errorf("Parse() = %q, want %q", text, tt.expected)
			}
			if len(warnings) != 0 {
				t.Errorf("expected no warnings, got %v", warnings)
			}
		})
	}
}

// fakePDF simulates a page-level PDF document with selectively failing pages.
type fakePDF struct {
	pages    []string
	failures map[int]error
}

func (f *fakePDF) NumPages() int { return len(f.pages) }

func (f *fakePDF) PageText(i int) (string, error) {
	if err, ok := f.failures[i]; ok {
		return "", err
	}
	return f.pages[i-1], nil
}

func TestCollectPages(t *testing.T) {
	tests := []struct {
		name         string
		doc          *fakePDF
		expectedText string
		expectedWarn []string
	}{
		{
			name:         "all pages succeed",
			doc:          &fakePDF{pages: []string{"page one", "page two"}},
			expectedText: "page one\npage two\n",
			expectedWarn: nil,
		},
		{
			name: "failing page is skipped with a warning",
			doc: &fakePDF{
				pages:    []string{"page one", "broken", "page three"},
				failures: map[int]error{2: fmt.Errorf("bad xref")},
			},
			expectedText: "page one\npage three\n",
			expectedWarn: []string{"PDF parsing error on page 2: bad xref"},
		},
		{
			name: "all pages fail",
			doc: &fakePDF{
				pages:    []string{"a", "b"},
				failures: map[int]error{1: fmt.Errorf("bad"), 2: fmt.Errorf("worse")},
			},
			expectedText: "",
			expectedWarn: []string{
				"PDF parsing error on page 1: bad",
				"PDF parsing error on page 2: worse",
			},
		},
		{
			name:         "no pages",
			doc:          &fakePDF{},
			expectedText: "",
			expectedWarn: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, warnings := collectPages(tt.doc)
			if text != tt.expectedText {
				t.Errorf("collectPages() text = %q, want %q", text, tt.expectedText)
			}
			if !reflect.DeepEqual(warnings, tt.expectedWarn) {
				t.Errorf("collectPages() warnings = %v, want %v", warnings, tt.expectedWarn)
			}
		})
	}
}

func TestPDFParserInvalidData(t *testing.T) {
	parser := &PDFParser{}
	text, warnings := parser.Parse([]byte("not a pdf"))
	if text != "" {
		t.Errorf("expected empty text for invalid PDF, got %q", text)
	}
	if len(warnings) != 1 || !strings.HasPrefix(warnings[0], "PDF parsing error") {
		t.Errorf("expected a single PDF parsing warning, got %v", warnings)
	}
}

func TestDocxParagraphText(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "paragraphs become lines",
			content:  `<w:p><w:r><w:t>First paragraph</w:t></w:r></w:p><w:p><w:r><w:t>Second</w:t></w:r></w:p>`,
			expected: "First paragraph\nSecond\n",
		},
		{
			name:     "entities are unescaped",
			content:  `<w:p><w:t>C&amp;D analysis</w:t></w:p>`,
			expected: "C&D analysis\n",
		},
		{
			name:     "empty paragraphs are dropped",
			content:  `<w:p></w:p><w:p><w:t>Only content</w:t></w:p><w:p>   </w:p>`,
			expected: "Only content\n",
		},
		{
			name:     "no markup",
			content:  "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := docxParagraphText(tt.content)
			if got != tt.expected {
				t.Errorf("docxParagraphText(%q) = %q, want %q", tt.content, got, tt.expected)
			}
		})
	}
}

func TestDocxParserInvalidData(t *testing.T) {
	parser := &DocxParser{}
	text, warnings := parser.Parse([]byte("not a docx archive"))
	if text != "" {
		t.Errorf("expected empty text for invalid DOCX, got %q", text)
	}
	if len(warnings) != 1 || !strings.HasPrefix(warnings[0], "DOCX parsing error") {
		t.Errorf("expected a single DOCX parsing warning, got %v", warnings)
	}
}

func TestExtractTextUnsupportedType(t *testing.T) {
	_, _, err := ExtractText([]byte("data"), "application/zip")
	if err == nil {
		t.Fatal("expected error for unsupported document type")
	}
	if !strings.Contains(err.Error(), "unsupported document type") {
		t.Errorf("unexpected error: %v", err)
	}
}
