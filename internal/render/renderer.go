// Package render turns structured records into markdown documents, either
// through the LLM collaborator or, for RFP re-rendering, a fixed offline
// template.
package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/pzielak/workforge/internal/llm"
	"github.com/pzielak/workforge/internal/model"
)

type DocumentRenderer struct {
	client llm.Client
}

func NewDocumentRenderer(client llm.Client) *DocumentRenderer {
	return &DocumentRenderer{client: client}
}

// CV produces a markdown CV for a profile. The prompt pins every structured
// value so the model cannot drift from the dataset.
func (r *DocumentRenderer) CV(ctx context.Context, profile model.Profile) (string, error) {
	content, err := r.client.Generate(ctx, cvPrompt(profile))
	if err != nil {
		return "", fmt.Errorf("cv for %s: %w", profile.Name, err)
	}
	return content, nil
}

// RFP produces a markdown RFP document with a fixed header structure so
// downstream parsers can rely on it.
func (r *DocumentRenderer) RFP(ctx context.Context, rfp model.RFP) (string, error) {
	content, err := r.client.Generate(ctx, rfpPrompt(rfp))
	if err != nil {
		return "", fmt.Errorf("rfp %s: %w", rfp.ID, err)
	}
	return content, nil
}

func cvPrompt(profile model.Profile) string {
	skills := make([]string, 0, len(profile.Skills))
	for _, skill := range profile.Skills {
		skills = append(skills, fmt.Sprintf("%s (%s, %d yrs)", skill.Name, skill.Proficiency, skill.YearsExperience))
	}

	soft := make([]string, 0, len(profile.SoftSkills))
	for _, s := range profile.SoftSkills {
		soft = append(soft, s.Name)
	}

	langs := make([]string, 0, len(profile.Languages))
	for _, l := range profile.Languages {
		langs = append(langs, fmt.Sprintf("%s (%s)", l.Name, l.Level))
	}

	certs := make([]string, 0, len(profile.Certifications))
	for _, c := range profile.Certifications {
		certs = append(certs, fmt.Sprintf("%s (Score: %d, Exp: %s)", c.Name, c.Score, c.ExpiryDate.Format("2006-01-02")))
	}

	edu := profile.Education
	eduText := fmt.Sprintf("%s at %s (Rank: #%d, GPA: %.2f)", edu.Degree, edu.UniversityName, edu.UniversityRanking, edu.GPA)

	return fmt.Sprintf(`Create a professional CV in markdown format for a programmer.

VITAL DATA TO INCLUDE (Do not hallucinate different values):
Name: %s
Email: %s | Phone: %s
Location: %s
Hourly Rate: $%d/hr
Total Experience: %d years

EDUCATION:
%s

SKILLS:
%s

SOFT SKILLS:
%s

LANGUAGES:
%s

CERTIFICATIONS:
%s

PROJECT CONTEXT (Mention these names in Experience):
%s

Requirements:
1. Use proper markdown formatting.
2. **Explicitly mention** the Hourly Rate, University Ranking, GPA, and Exam Scores in the text.
3. In the Experience section, invent 2-3 detailed roles. For each role, mention the **Company Industry** (e.g. FinTech) and **Size** (Startup/Enterprise).
4. Use the specific years of experience provided for skills.
5. Create a Summary section highlighting total years and soft skills.

IMPORTANT: Return ONLY the CV content in markdown format.`,
		profile.Name, profile.Email, profile.Phone, profile.Location,
		profile.HourlyRate, profile.TotalYearsExperience,
		eduText,
		strings.Join(skills, ", "),
		strings.Join(soft, ", "),
		strings.Join(langs, ", "),
		strings.Join(certs, ", "),
		strings.Join(profile.Projects, ", "),
	)
}

func rfpPrompt(rfp model.RFP) string {
	requirements := make([]string, 0, len(rfp.Requirements))
	for _, req := range rfp.Requirements {
		requirements = append(requirements, fmt.Sprintf("- %s: Required %s (Preferred: %s)", req.SkillName, req.MinProficiency, req.PreferredProficiency))
	}

	return fmt.Sprintf(`Create a professional RFP (Request for Proposal) document in markdown format.

CRITICAL INSTRUCTION: You MUST use EXACTLY the following headers in this order:
# Executive Summary
# Project Scope
# Technical Requirements
# Team Structure & Budget
# Timeline
# Submission Guidelines

DETAILS TO INCLUDE:
Project: %s
Client: %s
Budget: %s
Start Date: %s
Duration: %d months

Technical Requirements List:
%s

Make it sound professional and business-oriented. Return ONLY the RFP content in markdown.`,
		rfp.Title, rfp.Client, rfp.BudgetRange,
		rfp.StartDate.Format("2006-01-02"), rfp.DurationMonths,
		strings.Join(requirements, "\n"),
	)
}

// OfflineRFP renders an RFP document without the LLM, including the open
// position counts per skill. Used to re-render PDFs from persisted JSON.
func OfflineRFP(rfp model.RFP) string {
	rows := make([]string, 0, len(rfp.Requirements))
	for _, req := range rfp.Requirements {
		count := req.RequiredCount
		if count == 0 {
			count = 1
		}
		rows = append(rows, fmt.Sprintf("- **%s**: %s (Open Positions: %d)", req.SkillName, req.MinProficiency, count))
	}

	return fmt.Sprintf(`# Request for Proposal: %s

**Client:** %s
**Budget:** %s
**Deadline:** %s

## 1. Executive Summary
Strategic initiative for %s.
We are looking to assemble a team of **%d specialists**.

## 2. Technical Requirements & Capacity
The following skills and capacity are required for the successful delivery:

%s

## 3. Submission Guidelines
Proposals should be submitted by %s.
Contact: rfp@%s.com`,
		rfp.Title, rfp.Client, rfp.BudgetRange,
		rfp.Deadline.Format("2006-01-02"),
		rfp.ProjectType, rfp.TeamSize,
		strings.Join(rows, "\n"),
		rfp.StartDate.Format("2006-01-02"),
		strings.ReplaceAll(strings.ToLower(rfp.Client), " ", ""),
	)
}

// SafeName turns a display name into a filename fragment: spaces become
// underscores, dots and slashes are dropped.
func SafeName(name string) string {
	replacer := strings.NewReplacer(" ", "_", ".", "", "/", "")
	return replacer.Replace(name)
}
