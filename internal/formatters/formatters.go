package formatters

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"skilladvisor/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "AdviseOutput", &AdviseTextFormatter{})
	registry.RegisterFormatter("markdown", "AdviseOutput", &AdviseMarkdownFormatter{})
	registry.RegisterFormatter("text", "ExtractOutput", &ExtractTextFormatter{})
	registry.RegisterFormatter("markdown", "ExtractOutput", &ExtractMarkdownFormatter{})
	registry.RegisterFormatter("text", "PlanItems", &PlanTextFormatter{})
	registry.RegisterFormatter("markdown", "PlanItems", &PlanMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.AdviseOutput:
		return "AdviseOutput"
	case types.ExtractOutput:
		return "ExtractOutput"
	case []types.PlanItem:
		return "PlanItems"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// sortedSkills renders a confidence map in a stable, readable order:
// descending confidence, then name.
func sortedSkills(skills map[string]float64) []string {
	names := make([]string, 0, len(skills))
	for name := range skills {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if skills[names[i]] != skills[names[j]] {
			return skills[names[i]] > skills[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}

func writeProfileText(output *strings.Builder, profile types.UserProfile) {
	output.WriteString("Skills:\n")
	if len(profile.Skills) == 0 {
		output.WriteString("  (none)\n")
	}
	for _, name := range sortedSkills(profile.Skills) {
		output.WriteString(fmt.Sprintf("  %s (%.2f)\n", name, profile.Skills[name]))
	}
	if len(profile.Education) > 0 {
		output.WriteString(fmt.Sprintf("Education: %s\n", strings.Join(profile.Education, ", ")))
	}
	if len(profile.Experience) > 0 {
		output.WriteString(fmt.Sprintf("Experience (years mentioned): %s\n", strings.Join(profile.Experience, ", ")))
	}
}

// AdviseTextFormatter handles text formatting for advisory results
type AdviseTextFormatter struct{}

func (atf *AdviseTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AdviseOutput)
	if !ok {
		return "", fmt.Errorf("expected AdviseOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== EXTRACTED PROFILE ===\n")
	writeProfileText(&output, result.Profile)
	output.WriteString("\n")

	output.WriteString("=== CAREER RECOMMENDATIONS ===\n")
	for i, rec := range result.Recommendations {
		output.WriteString(fmt.Sprintf("%d. %s: %.2f%%\n", i+1, rec.Role, rec.MatchPercent))
		output.WriteString(fmt.Sprintf("   Matched: %s\n", joinOrNone(rec.MatchedSkills)))
		output.WriteString(fmt.Sprintf("   Missing: %s\n", joinOrNone(rec.MissingSkills)))
	}
	output.WriteString("\n")

	output.WriteString("=== LEARNING PLAN ===\n")
	if len(result.Plan) == 0 {
		output.WriteString("Nothing to learn: all requirements covered.\n")
	}
	for _, item := range result.Plan {
		output.WriteString(fmt.Sprintf("Week %d: %s (%s)\n", item.Week, item.Skill, strings.Join(item.Resources, "; ")))
	}

	if len(result.Warnings) > 0 {
		output.WriteString("\n=== WARNINGS ===\n")
		for _, warning := range result.Warnings {
			output.WriteString(fmt.Sprintf("- %s\n", warning))
		}
	}

	return output.String(), nil
}

func (atf *AdviseTextFormatter) SupportedType() string {
	return "AdviseOutput"
}

// AdviseMarkdownFormatter handles markdown formatting for advisory results
type AdviseMarkdownFormatter struct{}

func (amf *AdviseMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AdviseOutput)
	if !ok {
		return "", fmt.Errorf("expected AdviseOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Career Recommendations\n\n")
	output.WriteString("| Role | Match % | Matched Skills | Missing Skills |\n")
	output.WriteString("|------|---------|----------------|----------------|\n")
	for _, rec := range result.Recommendations {
		output.WriteString(fmt.Sprintf("| %s | %.2f | %s | %s |\n",
			rec.Role, rec.MatchPercent, joinOrNone(rec.MatchedSkills), joinOrNone(rec.MissingSkills)))
	}
	output.WriteString("\n")

	output.WriteString("## Learning Plan\n\n")
	if len(result.Plan) == 0 {
		output.WriteString("Nothing to learn: all requirements covered.\n")
	} else {
		output.WriteString("| Week | Skill | Resources |\n")
		output.WriteString("|------|-------|----------|\n")
		for _, item := range result.Plan {
			output.WriteString(fmt.Sprintf("| %d | %s | %s |\n", item.Week, item.Skill, strings.Join(item.Resources, "; ")))
		}
	}
	output.WriteString("\n")

	output.WriteString("## Extracted Profile\n\n")
	for _, name := range sortedSkills(result.Profile.Skills) {
		output.WriteString(fmt.Sprintf("- **%s**: %.2f\n", name, result.Profile.Skills[name]))
	}
	if len(result.Profile.Education) > 0 {
		output.WriteString(fmt.Sprintf("\n**Education:** %s\n", strings.Join(result.Profile.Education, ", ")))
	}
	if len(result.Profile.Experience) > 0 {
		output.WriteString(fmt.Sprintf("\n**Experience (years mentioned):** %s\n", strings.Join(result.Profile.Experience, ", ")))
	}

	if len(result.Warnings) > 0 {
		output.WriteString("\n## Warnings\n\n")
		for _, warning := range result.Warnings {
			output.WriteString(fmt.Sprintf("- %s\n", warning))
		}
	}

	return output.String(), nil
}

func (amf *AdviseMarkdownFormatter) SupportedType() string {
	return "AdviseOutput"
}

// ExtractTextFormatter handles text formatting for extraction results
type ExtractTextFormatter struct{}

func (etf *ExtractTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ExtractOutput)
	if !ok {
		return "", fmt.Errorf("expected ExtractOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== EXTRACTED PROFILE ===\n")
	writeProfileText(&output, result.Profile)

	if len(result.Warnings) > 0 {
		output.WriteString("\n=== WARNINGS ===\n")
		for _, warning := range result.Warnings {
			output.WriteString(fmt.Sprintf("- %s\n", warning))
		}
	}

	return output.String(), nil
}

func (etf *ExtractTextFormatter) SupportedType() string {
	return "ExtractOutput"
}

// ExtractMarkdownFormatter handles markdown formatting for extraction results
type ExtractMarkdownFormatter struct{}

func (emf *ExtractMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ExtractOutput)
	if !ok {
		return "", fmt.Errorf("expected ExtractOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Extracted Profile\n\n")
	if len(result.Profile.Skills) == 0 {
		output.WriteString("No recognizable skills found.\n")
	}
	for _, name := range sortedSkills(result.Profile.Skills) {
		output.WriteString(fmt.Sprintf("- **%s**: %.2f\n", name, result.Profile.Skills[name]))
	}
	if len(result.Profile.Education) > 0 {
		output.WriteString(fmt.Sprintf("\n**Education:** %s\n", strings.Join(result.Profile.Education, ", ")))
	}
	if len(result.Profile.Experience) > 0 {
		output.WriteString(fmt.Sprintf("\n**Experience (years mentioned):** %s\n", strings.Join(result.Profile.Experience, ", ")))
	}

	if len(result.Warnings) > 0 {
		output.WriteString("\n## Warnings\n\n")
		for _, warning := range result.Warnings {
			output.WriteString(fmt.Sprintf("- %s\n", warning))
		}
	}

	return output.String(), nil
}

func (emf *ExtractMarkdownFormatter) SupportedType() string {
	return "ExtractOutput"
}

// PlanTextFormatter handles text formatting for standalone learning plans
type PlanTextFormatter struct{}

func (ptf *PlanTextFormatter) Format(data any) (string, error) {
	items, ok := data.([]types.PlanItem)
	if !ok {
		return "", fmt.Errorf("expected []PlanItem, got %T", data)
	}

	var output strings.Builder
	output.WriteString("=== LEARNING PLAN ===\n")
	if len(items) == 0 {
		output.WriteString("Nothing to learn: all requirements covered.\n")
	}
	for _, item := range items {
		output.WriteString(fmt.Sprintf("Week %d: %s (%s)\n", item.Week, item.Skill, strings.Join(item.Resources, "; ")))
	}
	return output.String(), nil
}

func (ptf *PlanTextFormatter) SupportedType() string {
	return "PlanItems"
}

// PlanMarkdownFormatter handles markdown formatting for standalone learning plans
type PlanMarkdownFormatter struct{}

func (pmf *PlanMarkdownFormatter) Format(data any) (string, error) {
	items, ok := data.([]types.PlanItem)
	if !ok {
		return "", fmt.Errorf("expected []PlanItem, got %T", data)
	}

	var output strings.Builder
	output.WriteString("# Learning Plan\n\n")
	if len(items) == 0 {
		output.WriteString("Nothing to learn: all requirements covered.\n")
		return output.String(), nil
	}
	output.WriteString("| Week | Skill | Resources |\n")
	output.WriteString("|------|-------|----------|\n")
	for _, item := range items {
		output.WriteString(fmt.Sprintf("| %d | %s | %s |\n", item.Week, item.Skill, strings.Join(item.Resources, "; ")))
	}
	return output.String(), nil
}

func (pmf *PlanMarkdownFormatter) SupportedType() string {
	return "PlanItems"
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ", ")
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
