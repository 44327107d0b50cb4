package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetectMimeType(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected string
	}{
		{name: "pdf", filename: "resume.pdf", expected: "application/pdf"},
		{name: "pdf uppercase extension", filename: "RESUME.PDF", expected: "application/pdf"},
		{name: "docx", filename: "resume.docx", expected: "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{name: "txt", filename: "resume.txt", expected: "text/plain"},
		{name: "markdown falls back to plain text", filename: "resume.md", expected: "text/plain"},
		{name: "no extension", filename: "resume", expected: "text/plain"},
		{name: "old word format falls back to plain text", filename: "resume.doc", expected: "text/plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectMimeType(tt.filename); got != tt.expected {
				t.Errorf("DetectMimeType(%q) = %q, want %q", tt.filename, got, tt.expected)
			}
		})
	}
}

func TestGetFileExtension(t *testing.T) {
	tests := []struct {
		filename string
		expected string
	}{
		{"resume.PDF", ".pdf"},
		{"resume.docx", ".docx"},
		{"resume", ""},
		{"archive.tar.gz", ".gz"},
	}

	for _, tt := range tests {
		if got := GetFileExtension(tt.filename); got != tt.expected {
			t.Errorf("GetFileExtension(%q) = %q, want %q", tt.filename, got, tt.expected)
		}
	}
}

func TestValidateInputFile(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "resume.txt")
	if err := os.WriteFile(existing, []byte("content"), 0600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		filename    string
		expectError bool
	}{
		{name: "existing file", filename: existing},
		{name: "missing file", filename: filepath.Join(dir, "missing.txt"), expectError: true},
		{name: "directory", filename: dir, expectError: true},
		{name: "empty filename", filename: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInputFile(tt.filename)
			if tt.expectError && err == nil {
				t.Errorf("expected error for %q", tt.filename)
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error for %q: %v", tt.filename, err)
			}
		})
	}
}

func TestIsTextFile(t *testing.T) {
	if !IsTextFile("notes.md") {
		t.Error("notes.md should be a text file")
	}
	if IsTextFile("resume.pdf") {
		t.Error("resume.pdf should not be a text file")
	}
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		size     int64
		expected string
	}{
		{512, "512 B"},
		{1024, "1.0 KB"},
		{10 * 1024 * 1024, "10.0 MB"},
	}

	for _, tt := range tests {
		if got := FormatFileSize(tt.size); got != tt.expected {
			t.Errorf("FormatFileSize(%d) = %q, want %q", tt.size, got, tt.expected)
		}
	}
}
