package charts

import (
	"reflect"
	"testing"

	"skilladvisor/internal/types"
)

func TestRadar(t *testing.T) {
	userSkills := map[string]float64{"Python": 1.0, "SQL": 0.5}
	userOrder := []string{"Python", "SQL"}
	required := []string{"Python", "Machine Learning"}

	spec := Radar(userSkills, userOrder, "Data Scientist", required)

	if spec.Title != "Data Scientist Radar Chart" {
		t.Errorf("title = %q", spec.Title)
	}
	if spec.RadialRange != [2]float64{0, 1} {
		t.Errorf("radial range = %v, want [0 1]", spec.RadialRange)
	}

	// Axes: user skills first in given order, then unseen required skills.
	wantAxes := []string{"Python", "SQL", "Machine Learning"}
	if !reflect.DeepEqual(spec.Axes, wantAxes) {
		t.Fatalf("axes = %v, want %v", spec.Axes, wantAxes)
	}

	if len(spec.Series) != 2 {
		t.Fatalf("expected 2 series, got %d", len(spec.Series))
	}

	user := spec.Series[0]
	if user.Name != "Your Skills" || user.Fill != "toself" {
		t.Errorf("user series = %q fill %q", user.Name, user.Fill)
	}
	if !reflect.DeepEqual(user.Values, []float64{1.0, 0.5, 0}) {
		t.Errorf("user values = %v, want [1 0.5 0]", user.Values)
	}

	role := spec.Series[1]
	if role.Name != "Data Scientist Required Skills" || role.Fill != "toself" {
		t.Errorf("role series = %q fill %q", role.Name, role.Fill)
	}
	if !reflect.DeepEqual(role.Values, []float64{1, 0, 1}) {
		t.Errorf("role values = %v, want [1 0 1]", role.Values)
	}
}

func TestRadarDeduplicatesAxes(t *testing.T) {
	spec := Radar(map[string]float64{"Python": 1}, []string{"Python", "Python"}, "Role", []string{"Python"})
	if !reflect.DeepEqual(spec.Axes, []string{"Python"}) {
		t.Errorf("axes = %v, want [Python]", spec.Axes)
	}
}

func TestRadarEmptyProfile(t *testing.T) {
	spec := Radar(nil, nil, "Cloud Engineer", []string{"AWS", "Docker"})
	if !reflect.DeepEqual(spec.Axes, []string{"AWS", "Docker"}) {
		t.Errorf("axes = %v, want required skills only", spec.Axes)
	}
	if !reflect.DeepEqual(spec.Series[0].Values, []float64{0, 0}) {
		t.Errorf("user values = %v, want zeros", spec.Series[0].Values)
	}
	if !reflect.DeepEqual(spec.Series[1].Values, []float64{1, 1}) {
		t.Errorf("role values = %v, want ones", spec.Series[1].Values)
	}
}

func TestHeatmap(t *testing.T) {
	catalog := types.Catalog{
		Roles: []types.RoleProfile{
			{Name: "Data Scientist", Skills: []string{"Python", "SQL"}},
			{Name: "Cloud Engineer", Skills: []string{"AWS", "Python"}},
		},
	}
	vocabulary := catalog.Vocabulary() // Python, SQL, AWS

	scores := []types.RoleScore{
		{Role: "Cloud Engineer"},
		{Role: "Data Scientist"},
	}

	spec := Heatmap(scores, vocabulary, catalog)

	if spec.ColorScale != DefaultColorScale {
		t.Errorf("color scale = %q, want %q", spec.ColorScale, DefaultColorScale)
	}
	if !reflect.DeepEqual(spec.Skills, []string{"Python", "SQL", "AWS"}) {
		t.Errorf("skills = %v", spec.Skills)
	}
	// Rows follow the score order, not the catalog order.
	if !reflect.DeepEqual(spec.Roles, []string{"Cloud Engineer", "Data Scientist"}) {
		t.Errorf("roles = %v", spec.Roles)
	}
	wantValues := [][]int{
		{1, 0, 1}, // Cloud Engineer: Python, AWS
		{1, 1, 0}, // Data Scientist: Python, SQL
	}
	if !reflect.DeepEqual(spec.Values, wantValues) {
		t.Errorf("values = %v, want %v", spec.Values, wantValues)
	}
}

func TestHeatmapUnknownRole(t *testing.T) {
	catalog := types.Catalog{
		Roles: []types.RoleProfile{{Name: "A", Skills: []string{"X"}}},
	}
	spec := Heatmap([]types.RoleScore{{Role: "Gone"}}, []string{"X"}, catalog)
	if !reflect.DeepEqual(spec.Values, [][]int{{0}}) {
		t.Errorf("unknown role should produce a zero row, got %v", spec.Values)
	}
}

func TestHeatmapEmptyScores(t *testing.T) {
	spec := Heatmap(nil, []string{"X"}, types.Catalog{})
	if len(spec.Roles) != 0 || len(spec.Values) != 0 {
		t.Errorf("expected empty heatmap, got roles=%v values=%v", spec.Roles, spec.Values)
	}
}
