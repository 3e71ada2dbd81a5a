package model

import "time"

type RFPRequirement struct {
	SkillName               string      `json:"skill_name"`
	MinProficiency          Proficiency `json:"min_proficiency"`
	PreferredProficiency    Proficiency `json:"preferred_proficiency"`
	IsMandatory             bool        `json:"is_mandatory"`
	RequiredCount           int         `json:"required_count"`
	PreferredCertifications []string    `json:"preferred_certifications"`
}

// RFP is a synthesized request for proposal. Requirement counts always sum to
// TeamSize, with every skill receiving at least one slot.
type RFP struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Client         string           `json:"client"`
	Description    string           `json:"description"`
	ProjectType    string           `json:"project_type"`
	DurationMonths int              `json:"duration_months"`
	TeamSize       int              `json:"team_size"`
	BudgetRange    string           `json:"budget_range"`
	StartDate      time.Time        `json:"start_date"`
	Deadline       time.Time        `json:"deadline"`
	Requirements   []RFPRequirement `json:"requirements"`
	Location       string           `json:"location"`
	RemoteAllowed  bool             `json:"remote_allowed"`
}
