package excel

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/pzielak/workforge/internal/model"
)

// Generator writes a summary workbook over a generated dataset: one sheet per
// entity kind plus a totals sheet.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(dataset model.Dataset) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, dataset); err != nil {
		return nil, err
	}

	file.NewSheet("Profiles")
	if err := g.writeProfiles(file, "Profiles", dataset.Profiles); err != nil {
		return nil, err
	}

	file.NewSheet("Projects")
	if err := g.writeProjects(file, "Projects", dataset.Projects); err != nil {
		return nil, err
	}

	file.NewSheet("RFPs")
	if err := g.writeRFPs(file, "RFPs", dataset.RFPs); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, dataset model.Dataset) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Run ID")
	set("B1", dataset.RunID.String())
	set("A2", "Generated at")
	set("B2", dataset.GeneratedAt.Format(time.RFC3339))
	set("A3", "Programmers")
	set("B3", len(dataset.Profiles))
	set("A4", "Projects")
	set("B4", len(dataset.Projects))
	set("A5", "Historical projects")
	set("B5", dataset.NumHistorical())
	set("A6", "Active projects")
	set("B6", len(dataset.Projects)-dataset.NumHistorical())
	set("A7", "Staffed projects")
	set("B7", dataset.NumStaffed())
	set("A8", "RFPs")
	set("B8", len(dataset.RFPs))

	_ = file.SetColWidth(sheet, "A", "A", 24)
	_ = file.SetColWidth(sheet, "B", "B", 40)
	return nil
}

func (g *Generator) writeProfiles(file *excelize.File, sheet string, profiles []model.Profile) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{"ID", "Name", "Location", "Experience (yrs)", "Rate (USD/hr)", "Skills", "Certifications"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		set(cell, header)
	}

	for i, profile := range profiles {
		row := i + 2
		skills := make([]string, 0, len(profile.Skills))
		for _, skill := range profile.Skills {
			skills = append(skills, fmt.Sprintf("%s (%s)", skill.Name, skill.Proficiency))
		}
		set(fmt.Sprintf("A%d", row), profile.ID)
		set(fmt.Sprintf("B%d", row), profile.Name)
		set(fmt.Sprintf("C%d", row), profile.Location)
		set(fmt.Sprintf("D%d", row), profile.TotalYearsExperience)
		set(fmt.Sprintf("E%d", row), profile.HourlyRate)
		set(fmt.Sprintf("F%d", row), strings.Join(skills, ", "))
		set(fmt.Sprintf("G%d", row), len(profile.Certifications))
	}

	_ = file.SetColWidth(sheet, "B", "B", 26)
	_ = file.SetColWidth(sheet, "F", "F", 60)
	return nil
}

func (g *Generator) writeProjects(file *excelize.File, sheet string, projects []model.Project) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{"ID", "Name", "Status", "Start", "End", "Team size", "Assigned", "Budget"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		set(cell, header)
	}

	for i, project := range projects {
		row := i + 2
		set(fmt.Sprintf("A%d", row), project.ID)
		set(fmt.Sprintf("B%d", row), project.Name)
		set(fmt.Sprintf("C%d", row), string(project.Status))
		set(fmt.Sprintf("D%d", row), formatDate(project.StartDate))
		if project.EndDate != nil {
			set(fmt.Sprintf("E%d", row), formatDate(*project.EndDate))
		}
		set(fmt.Sprintf("F%d", row), project.TeamSize)
		set(fmt.Sprintf("G%d", row), len(project.AssignedProgrammers))
		set(fmt.Sprintf("H%d", row), project.Budget)
	}

	_ = file.SetColWidth(sheet, "B", "B", 44)
	return nil
}

func (g *Generator) writeRFPs(file *excelize.File, sheet string, rfps []model.RFP) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{"ID", "Title", "Client", "Team size", "Budget range", "Deadline", "Skill quotas"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		set(cell, header)
	}

	for i, rfp := range rfps {
		row := i + 2
		quotas := make([]string, 0, len(rfp.Requirements))
		for _, req := range rfp.Requirements {
			quotas = append(quotas, fmt.Sprintf("%s x%d", req.SkillName, req.RequiredCount))
		}
		set(fmt.Sprintf("A%d", row), rfp.ID)
		set(fmt.Sprintf("B%d", row), rfp.Title)
		set(fmt.Sprintf("C%d", row), rfp.Client)
		set(fmt.Sprintf("D%d", row), rfp.TeamSize)
		set(fmt.Sprintf("E%d", row), rfp.BudgetRange)
		set(fmt.Sprintf("F%d", row), formatDate(rfp.Deadline))
		set(fmt.Sprintf("G%d", row), strings.Join(quotas, ", "))
	}

	_ = file.SetColWidth(sheet, "B", "B", 32)
	_ = file.SetColWidth(sheet, "G", "G", 50)
	return nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
