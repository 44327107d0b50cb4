package charts

import (
	"fmt"

	"skilladvisor/internal/types"
)

// DefaultColorScale is the sequential color scale applied to heatmaps.
const DefaultColorScale = "Viridis"

// Radar builds the chart spec comparing a user's skill confidence against one
// role's requirements. The axis set is the union of the user's skills and the
// role's required skills: user skills first in the given order, then required
// skills not already present. The user series carries the confidence per axis
// (0 when absent), the role series carries 1 for required skills and 0
// otherwise. The radial range is fixed to [0,1].
func Radar(userSkills map[string]float64, userOrder []string, roleName string, required []string) types.RadarSpec {
	seen := make(map[string]bool, len(userOrder)+len(required))
	axes := make([]string, 0, len(userOrder)+len(required))
	for _, skill := range userOrder {
		if !seen[skill] {
			seen[skill] = true
			axes = append(axes, skill)
		}
	}
	requiredSet := make(map[string]bool, len(required))
	for _, skill := range required {
		requiredSet[skill] = true
		if !seen[skill] {
			seen[skill] = true
			axes = append(axes, skill)
		}
	}

	userValues := make([]float64, len(axes))
	roleValues := make([]float64, len(axes))
	for i, axis := range axes {
		userValues[i] = userSkills[axis]
		if requiredSet[axis] {
			roleValues[i] = 1
		}
	}

	return types.RadarSpec{
		Title: fmt.Sprintf("%s Radar Chart", roleName),
		Axes:  axes,
		Series: []types.RadarSeries{
			{Name: "Your Skills", Values: userValues, Fill: "toself"},
			{Name: fmt.Sprintf("%s Required Skills", roleName), Values: roleValues, Fill: "toself"},
		},
		RadialRange: [2]float64{0, 1},
	}
}

// Heatmap builds the roles-by-vocabulary binary membership heatmap for the
// given score subset. Rows follow the score order, columns the full
// vocabulary.
func Heatmap(scores []types.RoleScore, vocabulary []string, catalog types.Catalog) types.HeatmapSpec {
	roles := make([]string, 0, len(scores))
	values := make([][]int, 0, len(scores))

	for _, score := range scores {
		roles = append(roles, score.Role)

		requiredSet := make(map[string]bool)
		if role, ok := catalog.Role(score.Role); ok {
			for _, skill := range role.Skills {
				requiredSet[skill] = true
			}
		}

		row := make([]int, len(vocabulary))
		for i, skill := range vocabulary {
			if requiredSet[skill] {
				row[i] = 1
			}
		}
		values = append(values, row)
	}

	return types.HeatmapSpec{
		Skills:     vocabulary,
		Roles:      roles,
		Values:     values,
		ColorScale: DefaultColorScale,
	}
}
