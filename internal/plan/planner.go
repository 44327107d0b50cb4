package plan

import (
	"encoding/json"
	"fmt"

	"skilladvisor/internal/types"
)

// Filename is the suggested name for a downloaded learning plan.
const Filename = "learning_plan.json"

// Build emits one learning-plan item per missing skill across the first topN
// role scores, role-major, preserving each role's missing-skill order. A skill
// missing from two roles appears twice. Every item is scheduled for week 1;
// multi-week pacing is a future extension.
func Build(scores []types.RoleScore, topN int) []types.PlanItem {
	if topN < 0 {
		topN = 0
	}
	if topN > len(scores) {
		topN = len(scores)
	}

	items := make([]types.PlanItem, 0)
	for _, score := range scores[:topN] {
		for _, skill := range score.MissingSkills {
			items = append(items, types.PlanItem{
				Week:      1,
				Skill:     skill,
				Resources: []string{fmt.Sprintf("Coursera/YouTube Course on %s", skill)},
			})
		}
	}
	return items
}

// MarshalJSON renders a plan in its downloadable shape: a JSON array of
// {Week, Skill, Resources} objects, pretty-printed with 2-space indentation.
func MarshalJSON(items []types.PlanItem) ([]byte, error) {
	if items == nil {
		items = []types.PlanItem{}
	}
	return json.MarshalIndent(items, "", "  ")
}
