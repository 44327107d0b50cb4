package match

import (
	"math"
	"sort"

	"skilladvisor/internal/types"
)

// ScoreRoles computes a match percentage for every role in the catalog and
// partitions each role's required skills into matched and missing, preserving
// the required-skill order. Matching is an exact, case-sensitive membership
// check against the user's skills.
//
// The result is sorted descending by match percentage; the sort is stable, so
// roles with equal scores keep their catalog order. A role with no required
// skills scores 0 rather than dividing by zero, and an empty skill set simply
// scores 0 for every role with requirements.
func ScoreRoles(userSkills map[string]float64, catalog types.Catalog) []types.RoleScore {
	scores := make([]types.RoleScore, 0, len(catalog.Roles))

	for _, role := range catalog.Roles {
		matched := make([]string, 0, len(role.Skills))
		missing := make([]string, 0, len(role.Skills))
		for _, skill := range role.Skills {
			if _, ok := userSkills[skill]; ok {
				matched = append(matched, skill)
			} else {
				missing = append(missing, skill)
			}
		}

		var percent float64
		if len(role.Skills) > 0 {
			percent = math.Round(float64(len(matched))/float64(len(role.Skills))*100*100) / 100
		}

		scores = append(scores, types.RoleScore{
			Role:          role.Name,
			MatchPercent:  percent,
			MatchedSkills: matched,
			MissingSkills: missing,
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].MatchPercent > scores[j].MatchPercent
	})

	return scores
}

// TopRoles returns the first n scores of an already-sorted score list.
func TopRoles(scores []types.RoleScore, n int) []types.RoleScore {
	if n < 0 {
		n = 0
	}
	if n > len(scores) {
		n = len(scores)
	}
	return scores[:n]
}
