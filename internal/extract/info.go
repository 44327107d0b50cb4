package extract

import (
	"math"
	"regexp"
	"strings"
)

// educationPatterns are the recognized degree mentions. Matching is
// case-insensitive; results keep the casing found in the text.
var educationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)B\.Tech`),
	regexp.MustCompile(`(?i)M\.Tech`),
	regexp.MustCompile(`(?i)Bachelor`),
	regexp.MustCompile(`(?i)Master`),
	regexp.MustCompile(`(?i)PhD`),
}

// experiencePattern captures the numeric part of "<N> year(s)" mentions.
var experiencePattern = regexp.MustCompile(`(?i)(\d+)\s+years?`)

// InfoExtractor derives a user profile from resume text: confidence-weighted
// skills against a fixed vocabulary, education credential mentions, and
// experience-duration mentions.
type InfoExtractor struct {
	tokenizer Tokenizer
}

// NewInfoExtractor creates an extractor with the given tokenizer. A nil
// tokenizer falls back to the default WordTokenizer.
func NewInfoExtractor(tokenizer Tokenizer) *InfoExtractor {
	if tokenizer == nil {
		tokenizer = WordTokenizer{}
	}
	return &InfoExtractor{tokenizer: tokenizer}
}

// ExtractSkills tokenizes the text and tallies case-insensitive matches
// against the vocabulary. Counts are normalized by the maximum count observed,
// so the most frequent matched skill always scores 1.0, and rounded to two
// decimals. Keys carry the vocabulary's canonical casing. An empty map is
// returned when nothing matches.
func (e *InfoExtractor) ExtractSkills(text string, vocabulary []string) map[string]float64 {
	canonical := make(map[string]string, len(vocabulary))
	for _, skill := range vocabulary {
		canonical[strings.ToLower(skill)] = skill
	}

	counts := make(map[string]int)
	for _, token := range e.tokenizer.Tokenize(text) {
		if skill, ok := canonical[strings.ToLower(token)]; ok {
			counts[skill]++
		}
	}

	// Guard the divisor so an empty tally can never divide by zero.
	maxCount := 1
	for _, count := range counts {
		if count > maxCount {
			maxCount = count
		}
	}

	confidences := make(map[string]float64, len(counts))
	for skill, count := range counts {
		confidences[skill] = math.Round(float64(count)/float64(maxCount)*100) / 100
	}
	return confidences
}

// ExtractEducation returns the deduplicated degree mentions found in the text.
func (e *InfoExtractor) ExtractEducation(text string) []string {
	seen := make(map[string]bool)
	var mentions []string
	for _, pattern := range educationPatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			if !seen[match] {
				seen[match] = true
				mentions = append(mentions, match)
			}
		}
	}
	return mentions
}

// ExtractExperience returns every "<N> year(s)" duration in order of
// appearance, duplicates preserved. Only the numeric part is returned.
func (e *InfoExtractor) ExtractExperience(text string) []string {
	var durations []string
	for _, match := range experiencePattern.FindAllStringSubmatch(text, -1) {
		durations = append(durations, match[1])
	}
	return durations
}
