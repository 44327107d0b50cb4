package advisor

import (
	"context"
	"reflect"
	"testing"

	"skilladvisor/internal/config"
	"skilladvisor/internal/extract"
	"skilladvisor/internal/types"
)

func newTestService() *Service {
	return NewService(config.DefaultCatalog(), 0, nil)
}

func TestAdviseManualSkills(t *testing.T) {
	svc := newTestService()

	output, err := svc.Advise(context.Background(), types.AdviseInput{
		ManualSkill: "Python, SQL, Statistics",
	})
	if err != nil {
		t.Fatalf("Advise: %v", err)
	}

	wantSkills := map[string]float64{"Python": 1.0, "SQL": 1.0, "Statistics": 1.0}
	if !reflect.DeepEqual(output.Profile.Skills, wantSkills) {
		t.Errorf("profile skills = %v, want %v", output.Profile.Skills, wantSkills)
	}

	if len(output.Recommendations) != 5 {
		t.Fatalf("expected 5 recommendations, got %d", len(output.Recommendations))
	}
	top := output.Recommendations[0]
	if top.Role != "Data Scientist" || top.MatchPercent != 60 {
		t.Errorf("top role = %s at %.2f%%, want Data Scientist at 60%%", top.Role, top.MatchPercent)
	}

	// Every recommended role contributes its missing skills to the plan.
	totalMissing := 0
	for _, rec := range output.Recommendations {
		totalMissing += len(rec.MissingSkills)
	}
	if len(output.Plan) != totalMissing {
		t.Errorf("plan has %d items, want %d (one per missing skill)", len(output.Plan), totalMissing)
	}

	if len(output.Radars) != 5 {
		t.Errorf("expected one radar per recommended role, got %d", len(output.Radars))
	}
	if len(output.Heatmap.Roles) != 5 {
		t.Errorf("heatmap covers %d roles, want 5", len(output.Heatmap.Roles))
	}
}

func TestAdviseManualSkillsAreCaseSensitive(t *testing.T) {
	svc := newTestService()

	output, err := svc.Advise(context.Background(), types.AdviseInput{
		ManualSkill: "python, sql",
	})
	if err != nil {
		t.Fatalf("Advise: %v", err)
	}
	for _, rec := range output.Recommendations {
		if rec.MatchPercent != 0 {
			t.Errorf("role %s scored %.2f%%; lowercase manual skills must not match", rec.Role, rec.MatchPercent)
		}
	}
}

func TestAdviseEmptyInput(t *testing.T) {
	svc := newTestService()

	output, err := svc.Advise(context.Background(), types.AdviseInput{})
	if err != nil {
		t.Fatalf("Advise: %v", err)
	}

	if len(output.Profile.Skills) != 0 {
		t.Errorf("expected empty profile, got %v", output.Profile.Skills)
	}
	for _, rec := range output.Recommendations {
		if rec.MatchPercent != 0 {
			t.Errorf("role %s scored %.2f%%, want 0", rec.Role, rec.MatchPercent)
		}
		if len(rec.MatchedSkills) != 0 {
			t.Errorf("role %s matched %v, want none", rec.Role, rec.MatchedSkills)
		}
	}

	// The idle state recommends nothing to learn.
	if len(output.Plan) != 0 {
		t.Errorf("plan has %d items, want none for empty input", len(output.Plan))
	}

	// Radars still render, with an all-zero user series.
	if len(output.Radars) == 0 {
		t.Fatal("expected radar specs for the idle state")
	}
	for _, value := range output.Radars[0].Series[0].Values {
		if value != 0 {
			t.Errorf("idle radar user series contains %v, want all zeros", value)
		}
	}
}

func TestAdviseResumeText(t *testing.T) {
	svc := newTestService()

	resume := `Jane Doe
B.Tech in Computer Science, 4 years of experience.
Built data products in Python with SQL pipelines.
Python was the main tool; also some AWS and Docker.`

	output, err := svc.Advise(context.Background(), types.AdviseInput{
		Resume:   []byte(resume),
		MimeType: extract.MimePlainText,
	})
	if err != nil {
		t.Fatalf("Advise: %v", err)
	}

	// Python appears twice, everything else once.
	if output.Profile.Skills["Python"] != 1.0 {
		t.Errorf("Python confidence = %v, want 1.0", output.Profile.Skills["Python"])
	}
	if output.Profile.Skills["SQL"] != 0.5 {
		t.Errorf("SQL confidence = %v, want 0.5", output.Profile.Skills["SQL"])
	}
	if output.Profile.Skills["AWS"] != 0.5 {
		t.Errorf("AWS confidence = %v, want 0.5", output.Profile.Skills["AWS"])
	}

	if !reflect.DeepEqual(output.Profile.Education, []string{"B.Tech"}) {
		t.Errorf("education = %v, want [B.Tech]", output.Profile.Education)
	}
	if !reflect.DeepEqual(output.Profile.Experience, []string{"4"}) {
		t.Errorf("experience = %v, want [4]", output.Profile.Experience)
	}

	if len(output.Recommendations) == 0 || output.Recommendations[0].MatchPercent == 0 {
		t.Errorf("expected a non-zero top recommendation, got %v", output.Recommendations)
	}
}

func TestAdviseUnsupportedMimeType(t *testing.T) {
	svc := newTestService()

	_, err := svc.Advise(context.Background(), types.AdviseInput{
		Resume:   []byte("data"),
		MimeType: "image/png",
	})
	if err == nil {
		t.Fatal("expected error for unsupported document type")
	}
}

func TestAdviseTopRolesOverride(t *testing.T) {
	svc := newTestService()

	output, err := svc.Advise(context.Background(), types.AdviseInput{
		ManualSkill: "Python",
		TopRoles:    2,
	})
	if err != nil {
		t.Fatalf("Advise: %v", err)
	}
	if len(output.Recommendations) != 2 {
		t.Errorf("expected 2 recommendations, got %d", len(output.Recommendations))
	}
	if len(output.Radars) != 2 {
		t.Errorf("expected 2 radars, got %d", len(output.Radars))
	}
	if len(output.Heatmap.Roles) != 2 {
		t.Errorf("expected 2 heatmap rows, got %d", len(output.Heatmap.Roles))
	}
}

func TestAdviseEchoesWeeklyHours(t *testing.T) {
	svc := newTestService()
	output, err := svc.Advise(context.Background(), types.AdviseInput{WeeklyHours: 12})
	if err != nil {
		t.Fatalf("Advise: %v", err)
	}
	if output.WeeklyHours != 12 {
		t.Errorf("weekly hours = %d, want 12", output.WeeklyHours)
	}
}

func TestExtract(t *testing.T) {
	svc := newTestService()

	result, err := svc.Extract(context.Background(), []byte("Python and Linux, 3 years"), extract.MimePlainText)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if result.Profile.Skills["Python"] != 1.0 || result.Profile.Skills["Linux"] != 1.0 {
		t.Errorf("skills = %v", result.Profile.Skills)
	}
	if !reflect.DeepEqual(result.Profile.Experience, []string{"3"}) {
		t.Errorf("experience = %v, want [3]", result.Profile.Experience)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestSetCatalogSwapsAtomically(t *testing.T) {
	svc := newTestService()

	replacement := types.Catalog{
		Roles: []types.RoleProfile{
			{Name: "Only Role", Skills: []string{"Go"}},
		},
	}
	svc.SetCatalog(replacement)

	output, err := svc.Advise(context.Background(), types.AdviseInput{ManualSkill: "Go"})
	if err != nil {
		t.Fatalf("Advise: %v", err)
	}
	if len(output.Recommendations) != 1 || output.Recommendations[0].Role != "Only Role" {
		t.Errorf("recommendations = %v, want the replacement catalog's role", output.Recommendations)
	}
	if output.Recommendations[0].MatchPercent != 100 {
		t.Errorf("match = %.2f, want 100", output.Recommendations[0].MatchPercent)
	}
}

func TestParseManualSkills(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantOrder []string
	}{
		{name: "simple list", raw: "Python, SQL", wantOrder: []string{"Python", "SQL"}},
		{name: "whitespace trimmed", raw: "  Python ,SQL  ", wantOrder: []string{"Python", "SQL"}},
		{name: "empty entries dropped", raw: "Python,,SQL,", wantOrder: []string{"Python", "SQL"}},
		{name: "duplicates keep first position", raw: "Python, SQL, Python", wantOrder: []string{"Python", "SQL"}},
		{name: "blank input", raw: "   ", wantOrder: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skills, order := parseManualSkills(tt.raw)
			if !reflect.DeepEqual(order, tt.wantOrder) {
				t.Errorf("order = %v, want %v", order, tt.wantOrder)
			}
			for _, name := range order {
				if skills[name] != 1.0 {
					t.Errorf("skill %s confidence = %v, want 1.0", name, skills[name])
				}
			}
			if len(skills) != len(tt.wantOrder) {
				t.Errorf("skills map has %d entries, want %d", len(skills), len(tt.wantOrder))
			}
		})
	}
}
