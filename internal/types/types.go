package types

// RoleProfile describes a job role and the skills it requires. The order of
// Skills is significant: matched/missing partitions preserve it.
type RoleProfile struct {
	Name   string   `json:"name" yaml:"name" mapstructure:"name"`
	Skills []string `json:"skills" yaml:"skills" mapstructure:"skills"`
}

// Catalog is the fixed mapping from role name to required skills. It is an
// ordered list so that tie-breaking in role scoring is well defined. A Catalog
// is immutable once built; callers must not mutate it after handing it to the
// pipeline.
type Catalog struct {
	Roles []RoleProfile `json:"roles" yaml:"roles" mapstructure:"roles"`
}

// Vocabulary returns the deduplicated union of all required skills across the
// catalog, preserving first-appearance order.
func (c Catalog) Vocabulary() []string {
	seen := make(map[string]bool)
	var vocab []string
	for _, role := range c.Roles {
		for _, skill := range role.Skills {
			if !seen[skill] {
				seen[skill] = true
				vocab = append(vocab, skill)
			}
		}
	}
	return vocab
}

// Role looks up a role profile by name. The second return reports whether the
// role exists in the catalog.
func (c Catalog) Role(name string) (RoleProfile, bool) {
	for _, role := range c.Roles {
		if role.Name == name {
			return role, true
		}
	}
	return RoleProfile{}, false
}

// UserProfile holds everything extracted from a resume (or entered manually).
// Skills maps skill name to a confidence score in [0,1].
type UserProfile struct {
	Skills     map[string]float64 `json:"skills"`
	Education  []string           `json:"education,omitempty"`
	Experience []string           `json:"experience,omitempty"`
}

// SkillNames returns the profile's skill names. Order is not significant;
// confidence lookups should go through Skills directly.
func (p UserProfile) SkillNames() []string {
	names := make([]string, 0, len(p.Skills))
	for name := range p.Skills {
		names = append(names, name)
	}
	return names
}

// RoleScore is the per-role result of matching a user's skills against the
// catalog.
type RoleScore struct {
	Role          string   `json:"role"`
	MatchPercent  float64  `json:"matchPercent"`
	MatchedSkills []string `json:"matchedSkills"`
	MissingSkills []string `json:"missingSkills"`
}

// AdviseInput represents a single advisory request: either resume content with
// a declared MIME type, or a manual comma-separated skill list. WeeklyHours is
// accepted for future pacing logic and echoed in the output.
type AdviseInput struct {
	Resume      []byte `json:"-"`
	MimeType    string `json:"mimeType,omitempty"`
	ManualSkill string `json:"skills,omitempty"`
	WeeklyHours int    `json:"weeklyHours,omitempty"`
	TopRoles    int    `json:"topRoles,omitempty"`
}

// ExtractOutput is the result of resume text extraction and info extraction.
type ExtractOutput struct {
	Profile  UserProfile `json:"profile"`
	Warnings []string    `json:"warnings,omitempty"`
}

// AdviseOutput is the full result of one pipeline run.
type AdviseOutput struct {
	Profile         UserProfile `json:"profile"`
	Recommendations []RoleScore `json:"recommendations"`
	Plan            []PlanItem  `json:"plan"`
	Radars          []RadarSpec `json:"radars"`
	Heatmap         HeatmapSpec `json:"heatmap"`
	WeeklyHours     int         `json:"weeklyHours"`
	Warnings        []string    `json:"warnings,omitempty"`
}

// PlanItem is one unit of the learning plan: a missing skill tied to
// placeholder learning resources. Field names match the downloadable JSON
// shape exactly.
type PlanItem struct {
	Week      int      `json:"Week"`
	Skill     string   `json:"Skill"`
	Resources []string `json:"Resources"`
}

// RadarSeries is one overlaid trace on a radar chart.
type RadarSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
	Fill   string    `json:"fill"`
}

// RadarSpec describes a radar chart comparing the user's skill confidence
// against one role's requirements. Axes and series value order correspond
// one-to-one.
type RadarSpec struct {
	Title       string        `json:"title"`
	Axes        []string      `json:"axes"`
	Series      []RadarSeries `json:"series"`
	RadialRange [2]float64    `json:"radialRange"`
}

// HeatmapSpec describes a roles-by-skills binary membership heatmap.
type HeatmapSpec struct {
	Skills     []string `json:"skills"`
	Roles      []string `json:"roles"`
	Values     [][]int  `json:"values"`
	ColorScale string   `json:"colorScale"`
}
