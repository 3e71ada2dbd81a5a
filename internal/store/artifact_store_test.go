package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pzielak/workforge/internal/model"
)

func newTestStore(t *testing.T) *ArtifactStore {
	t.Helper()
	root := t.TempDir()
	return NewArtifactStore(
		filepath.Join(root, "programmers"),
		filepath.Join(root, "projects"),
		filepath.Join(root, "RFP"),
	)
}

func TestProfilesRoundTrip(t *testing.T) {
	s := newTestStore(t)
	in := []model.Profile{
		{ID: 1, Name: "Ada Lovelace", Currency: "USD", Skills: []model.Skill{
			{Name: "Python", Category: "Programming Languages", Proficiency: model.ProficiencyExpert, YearsExperience: 9},
		}},
		{ID: 2, Name: "Grace Hopper", Currency: "USD"},
	}
	if err := s.SaveProfiles(in); err != nil {
		t.Fatalf("SaveProfiles: %v", err)
	}

	out, err := s.LoadProfiles()
	if err != nil {
		t.Fatalf("LoadProfiles: %v", err)
	}
	if len(out) != 2 || out[0].Name != "Ada Lovelace" || out[1].ID != 2 {
		t.Fatalf("round trip mismatch: %+v", out)
	}
	if out[0].Skills[0].Proficiency != model.ProficiencyExpert {
		t.Fatalf("nested skill lost: %+v", out[0].Skills)
	}
}

func TestProfilesJSONShape(t *testing.T) {
	s := newTestStore(t)
	if err := s.SaveProfiles([]model.Profile{{ID: 1, Name: "Ada"}}); err != nil {
		t.Fatalf("SaveProfiles: %v", err)
	}
	data, err := os.ReadFile(s.ProfilesPath())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	content := string(data)
	for _, key := range []string{`"id"`, `"total_years_experience"`, `"hourly_rate"`} {
		if !strings.Contains(content, key) {
			t.Fatalf("artifact missing key %s:\n%s", key, content)
		}
	}
	if !strings.Contains(content, "\n  {") {
		t.Fatalf("artifact should be two-space indented:\n%s", content)
	}
	if !strings.HasSuffix(content, "\n") {
		t.Fatalf("artifact should end with a newline")
	}
}

func TestLoadMissingArtifactsIsNotAnError(t *testing.T) {
	s := newTestStore(t)

	if profiles, err := s.LoadProfiles(); err != nil || profiles != nil {
		t.Fatalf("LoadProfiles on empty store: %v, %v", profiles, err)
	}
	if projects, err := s.LoadProjects(); err != nil || projects != nil {
		t.Fatalf("LoadProjects on empty store: %v, %v", projects, err)
	}
	if rfps, err := s.LoadRFPs(); err != nil || rfps != nil {
		t.Fatalf("LoadRFPs on empty store: %v, %v", rfps, err)
	}
}

func TestLoadCorruptArtifactFails(t *testing.T) {
	s := newTestStore(t)
	if err := os.MkdirAll(filepath.Dir(s.ProfilesPath()), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(s.ProfilesPath(), []byte("{nope"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := s.LoadProfiles(); err == nil {
		t.Fatalf("corrupt JSON should surface an error")
	}
}

func TestLastProfileID(t *testing.T) {
	s := newTestStore(t)

	id, err := s.LastProfileID()
	if err != nil || id != 0 {
		t.Fatalf("empty store: id=%d err=%v, want 0", id, err)
	}

	if err := s.SaveProfiles([]model.Profile{{ID: 3}, {ID: 7}}); err != nil {
		t.Fatalf("SaveProfiles: %v", err)
	}
	id, err = s.LastProfileID()
	if err != nil || id != 7 {
		t.Fatalf("id=%d err=%v, want 7", id, err)
	}
}

func TestProjectsRoundTripKeepsOpenEndDates(t *testing.T) {
	s := newTestStore(t)
	end := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	in := []model.Project{
		{ID: "PRJ-001", StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), EndDate: &end,
			Status: model.ProjectStatusCompleted, AssignedProgrammers: []model.Assignment{}},
		{ID: "PRJ-002", StartDate: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			Status: model.ProjectStatusActive, AssignedProgrammers: []model.Assignment{}},
	}
	if err := s.SaveProjects(in); err != nil {
		t.Fatalf("SaveProjects: %v", err)
	}
	out, err := s.LoadProjects()
	if err != nil {
		t.Fatalf("LoadProjects: %v", err)
	}
	if out[0].EndDate == nil || !out[0].EndDate.Equal(end) {
		t.Fatalf("bounded end date lost: %+v", out[0])
	}
	if out[1].EndDate != nil {
		t.Fatalf("open end date should stay nil, got %v", out[1].EndDate)
	}
}
