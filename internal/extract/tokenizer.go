package extract

import (
	"strings"
	"unicode"
)

// Tokenizer produces word-level tokens from free text. The skill matcher only
// needs membership checks against a small vocabulary, so any reasonable
// whitespace/punctuation tokenizer satisfies this contract.
type Tokenizer interface {
	Tokenize(text string) []string
}

// WordTokenizer is the default tokenizer. It splits on runs of characters that
// cannot appear inside a skill name, keeping ".", "+", "#" and "-" so tokens
// like "Node.js" and "C++" survive, then trims stray punctuation from token
// edges.
type WordTokenizer struct{}

func (WordTokenizer) Tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
		switch r {
		case '.', '+', '#', '-':
			return false
		}
		return true
	})

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		token := strings.Trim(field, ".-")
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
