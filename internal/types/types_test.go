package types

import (
	"reflect"
	"testing"
)

func TestCatalogVocabulary(t *testing.T) {
	catalog := Catalog{
		Roles: []RoleProfile{
			{Name: "A", Skills: []string{"Python", "SQL"}},
			{Name: "B", Skills: []string{"SQL", "AWS"}},
			{Name: "C", Skills: []string{"Python"}},
		},
	}

	got := catalog.Vocabulary()
	want := []string{"Python", "SQL", "AWS"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Vocabulary() = %v, want %v", got, want)
	}
}

func TestCatalogVocabularyEmpty(t *testing.T) {
	if got := (Catalog{}).Vocabulary(); len(got) != 0 {
		t.Errorf("empty catalog vocabulary = %v, want none", got)
	}
}

func TestCatalogRole(t *testing.T) {
	catalog := Catalog{
		Roles: []RoleProfile{
			{Name: "Data Scientist", Skills: []string{"Python"}},
		},
	}

	role, ok := catalog.Role("Data Scientist")
	if !ok || role.Name != "Data Scientist" {
		t.Errorf("Role() = %v, %v", role, ok)
	}

	if _, ok := catalog.Role("Missing"); ok {
		t.Error("lookup of unknown role should report false")
	}

	// Lookup is exact, not case-insensitive.
	if _, ok := catalog.Role("data scientist"); ok {
		t.Error("role lookup must be case-sensitive")
	}
}

func TestUserProfileSkillNames(t *testing.T) {
	profile := UserProfile{Skills: map[string]float64{"Python": 1, "SQL": 0.5}}
	names := profile.SkillNames()
	if len(names) != 2 {
		t.Errorf("SkillNames() = %v, want 2 entries", names)
	}
}
