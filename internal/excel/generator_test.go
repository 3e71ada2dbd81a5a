package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/pzielak/workforge/internal/model"
)

func testDataset() model.Dataset {
	end := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return model.Dataset{
		RunID:       uuid.New(),
		GeneratedAt: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
		Profiles: []model.Profile{
			{ID: 1, Name: "Ada Lovelace", Location: "London", TotalYearsExperience: 9, HourlyRate: 120,
				Skills: []model.Skill{{Name: "Python", Proficiency: model.ProficiencyExpert}}},
			{ID: 2, Name: "Grace Hopper", Location: "New York", TotalYearsExperience: 12, HourlyRate: 150},
		},
		Projects: []model.Project{
			{ID: "PRJ-001", Name: "Platform for Acme", Status: model.ProjectStatusCompleted,
				StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), EndDate: &end, TeamSize: 3,
				AssignedProgrammers: []model.Assignment{{ProgrammerID: 1}}},
			{ID: "PRJ-002", Name: "Portal for Globex", Status: model.ProjectStatusActive,
				StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), TeamSize: 4},
		},
		RFPs: []model.RFP{
			{ID: "RFP-001", Title: "Cloud Migration", Client: "Initech", TeamSize: 5,
				BudgetRange: "$500K-$1M", Deadline: time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
				Requirements: []model.RFPRequirement{{SkillName: "Go", RequiredCount: 3}}},
		},
	}
}

func TestGenerateWorkbookStructure(t *testing.T) {
	dataset := testDataset()
	content, err := NewGenerator().Generate(dataset)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	file, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer file.Close()

	wantSheets := []string{"Summary", "Profiles", "Projects", "RFPs"}
	got := file.GetSheetList()
	if len(got) != len(wantSheets) {
		t.Fatalf("sheets %v, want %v", got, wantSheets)
	}
	for i, name := range wantSheets {
		if got[i] != name {
			t.Fatalf("sheets %v, want %v", got, wantSheets)
		}
	}
}

func TestGenerateSummaryCounts(t *testing.T) {
	dataset := testDataset()
	content, err := NewGenerator().Generate(dataset)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	file, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer file.Close()

	cases := []struct{ cell, want string }{
		{"B1", dataset.RunID.String()},
		{"B3", "2"},
		{"B4", "2"},
		{"B5", "1"},
		{"B6", "1"},
		{"B7", "1"},
		{"B8", "1"},
	}
	for _, tc := range cases {
		got, err := file.GetCellValue("Summary", tc.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", tc.cell, err)
		}
		if got != tc.want {
			t.Fatalf("Summary!%s = %q, want %q", tc.cell, got, tc.want)
		}
	}
}

func TestGenerateRowContent(t *testing.T) {
	content, err := NewGenerator().Generate(testDataset())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	file, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer file.Close()

	if got, _ := file.GetCellValue("Profiles", "B2"); got != "Ada Lovelace" {
		t.Fatalf("Profiles!B2 = %q", got)
	}
	if got, _ := file.GetCellValue("Profiles", "F2"); got != "Python (Expert)" {
		t.Fatalf("Profiles!F2 = %q", got)
	}
	if got, _ := file.GetCellValue("Projects", "E2"); got != "2025-06-01" {
		t.Fatalf("Projects!E2 = %q", got)
	}
	if got, _ := file.GetCellValue("Projects", "E3"); got != "" {
		t.Fatalf("Projects!E3 = %q, open-ended projects leave the end blank", got)
	}
	if got, _ := file.GetCellValue("RFPs", "G2"); got != "Go x3" {
		t.Fatalf("RFPs!G2 = %q", got)
	}
}
