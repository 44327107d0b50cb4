package extract

import (
	"reflect"
	"testing"
)

func TestWordTokenizer(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "simple words",
			text:     "Python and SQL",
			expected: []string{"Python", "and", "SQL"},
		},
		{
			name:     "dotted skill names survive",
			text:     "I know Node.js well",
			expected: []string{"I", "know", "Node.js", "well"},
		},
		{
			name:     "plus and hash skill names survive",
			text:     "C++ and C# developer",
			expected: []string{"C++", "and", "C#", "developer"},
		},
		{
			name:     "sentence punctuation is trimmed",
			text:     "Skills: Python, SQL.",
			expected: []string{"Skills", "Python", "SQL"},
		},
		{
			name:     "hyphenated words stay whole",
			text:     "full-stack developer",
			expected: []string{"full-stack", "developer"},
		},
		{
			name:     "empty input",
			text:     "",
			expected: []string{},
		},
		{
			name:     "only punctuation",
			text:     "... --- !!!",
			expected: []string{},
		},
	}

	tokenizer := WordTokenizer{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenizer.Tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}
