package advisor

import (
	"context"
	"strings"
	"sync/atomic"

	"skilladvisor/internal/charts"
	"skilladvisor/internal/errors"
	"skilladvisor/internal/extract"
	"skilladvisor/internal/match"
	"skilladvisor/internal/plan"
	"skilladvisor/internal/types"
)

// DefaultTopRoles is how many of the best-matched roles feed the learning
// plan and the radar charts.
const DefaultTopRoles = 5

// Service runs the advisory pipeline: resume bytes or manual skills in,
// recommendations, learning plan and chart specs out. Every run is stateless;
// the catalog is the only shared value and is swapped atomically so hot
// reloads never race in-flight requests.
type Service struct {
	catalog  atomic.Pointer[types.Catalog]
	info     *extract.InfoExtractor
	topRoles int
	logger   *errors.Logger
}

// NewService creates an advisor service over an immutable role catalog.
// topRoles <= 0 falls back to DefaultTopRoles.
func NewService(catalog types.Catalog, topRoles int, logger *errors.Logger) *Service {
	if topRoles <= 0 {
		topRoles = DefaultTopRoles
	}
	s := &Service{
		info:     extract.NewInfoExtractor(nil),
		topRoles: topRoles,
		logger:   logger,
	}
	s.catalog.Store(&catalog)
	return s
}

// Catalog returns the catalog currently used for new pipeline runs.
func (s *Service) Catalog() types.Catalog {
	return *s.catalog.Load()
}

// SetCatalog swaps the role catalog. In-flight runs keep the catalog they
// started with.
func (s *Service) SetCatalog(catalog types.Catalog) {
	s.catalog.Store(&catalog)
}

// Extract runs text extraction and info extraction on resume content.
// Parse failures degrade to warnings; the only error is an unsupported
// document type.
func (s *Service) Extract(ctx context.Context, data []byte, mimeType string) (types.ExtractOutput, error) {
	catalog := s.Catalog()

	text, warnings, err := extract.ExtractText(data, mimeType)
	if err != nil {
		return types.ExtractOutput{}, errors.NewValidationError(errors.ErrCodeUnsupportedMime,
			"Cannot extract text from document", err).WithContext("mime_type", mimeType)
	}

	profile := types.UserProfile{
		Skills:     s.info.ExtractSkills(text, catalog.Vocabulary()),
		Education:  s.info.ExtractEducation(text),
		Experience: s.info.ExtractExperience(text),
	}

	if s.logger != nil {
		s.logger.Debug("Resume extraction completed",
			"text_chars", len(text),
			"skills_found", len(profile.Skills),
			"warnings", len(warnings))
	}

	return types.ExtractOutput{Profile: profile, Warnings: warnings}, nil
}

// Advise runs the full pipeline for one request. An empty input (no resume,
// no manual skills) is a valid idle state: every role scores zero, the plan
// is empty, and the radar user series is all zeros.
func (s *Service) Advise(ctx context.Context, input types.AdviseInput) (types.AdviseOutput, error) {
	catalog := s.Catalog()
	vocabulary := catalog.Vocabulary()

	var profile types.UserProfile
	var skillOrder []string
	var warnings []string
	idle := false

	switch {
	case len(input.Resume) > 0:
		extracted, err := s.Extract(ctx, input.Resume, input.MimeType)
		if err != nil {
			return types.AdviseOutput{}, err
		}
		profile = extracted.Profile
		warnings = extracted.Warnings
		// Deterministic axis order: vocabulary order filtered to what matched.
		for _, skill := range vocabulary {
			if _, ok := profile.Skills[skill]; ok {
				skillOrder = append(skillOrder, skill)
			}
		}
	case strings.TrimSpace(input.ManualSkill) != "":
		profile.Skills, skillOrder = parseManualSkills(input.ManualSkill)
	default:
		profile.Skills = map[string]float64{}
		idle = true
	}

	scores := match.ScoreRoles(profile.Skills, catalog)

	topN := input.TopRoles
	if topN <= 0 {
		topN = s.topRoles
	}
	top := match.TopRoles(scores, topN)

	radars := make([]types.RadarSpec, 0, len(top))
	for _, score := range top {
		role, ok := catalog.Role(score.Role)
		if !ok {
			continue
		}
		radars = append(radars, charts.Radar(profile.Skills, skillOrder, role.Name, role.Skills))
	}

	// With no input at all there is nothing to remediate yet; skip the plan
	// so the idle state does not prescribe the whole catalog.
	var planItems []types.PlanItem
	if !idle {
		planItems = plan.Build(scores, topN)
	}

	output := types.AdviseOutput{
		Profile:         profile,
		Recommendations: top,
		Plan:            planItems,
		Radars:          radars,
		Heatmap:         charts.Heatmap(top, vocabulary, catalog),
		WeeklyHours:     input.WeeklyHours,
		Warnings:        warnings,
	}

	if s.logger != nil {
		s.logger.Info("Advisory pipeline completed",
			"skills", len(profile.Skills),
			"roles_recommended", len(top),
			"plan_items", len(output.Plan))
	}

	return output, nil
}

// parseManualSkills splits a comma-separated skill list, assigning every
// entry confidence 1.0. Entry order is preserved for chart axes.
func parseManualSkills(raw string) (map[string]float64, []string) {
	skills := make(map[string]float64)
	var order []string
	for _, part := range strings.Split(raw, ",") {
		skill := strings.TrimSpace(part)
		if skill == "" {
			continue
		}
		if _, ok := skills[skill]; !ok {
			order = append(order, skill)
		}
		skills[skill] = 1.0
	}
	return skills, order
}
