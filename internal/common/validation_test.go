package common

import (
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	supported := []string{"json", "text", "markdown"}

	tests := []struct {
		name             string
		format           string
		supportedFormats []string
		expectError      bool
	}{
		{name: "valid format - json", format: "json", supportedFormats: supported},
		{name: "valid format - text", format: "text", supportedFormats: supported},
		{name: "valid format - markdown", format: "markdown", supportedFormats: supported},
		{name: "invalid format - xml", format: "xml", supportedFormats: supported, expectError: true},
		{name: "case sensitive - JSON uppercase", format: "JSON", supportedFormats: supported, expectError: true},
		{name: "empty format string", format: "", supportedFormats: supported, expectError: true},
		{name: "empty supported formats allows anything", format: "xml", supportedFormats: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format, tt.supportedFormats)
			if tt.expectError && err == nil {
				t.Errorf("expected error for format %q", tt.format)
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error for format %q: %v", tt.format, err)
			}
		})
	}
}
