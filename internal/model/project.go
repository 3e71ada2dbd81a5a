package model

import "time"

type ProjectStatus string

const (
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusActive    ProjectStatus = "active"
)

type Requirement struct {
	SkillName            string      `json:"skill_name"`
	MinProficiency       Proficiency `json:"min_proficiency"`
	PreferredProficiency Proficiency `json:"preferred_proficiency"`
	IsMandatory          bool        `json:"is_mandatory"`
}

// Assignment records one programmer staffed on one project. The same value is
// appended to the project and to the per-programmer ledger.
type Assignment struct {
	ProgrammerName      string     `json:"programmer_name"`
	ProgrammerID        int        `json:"programmer_id"`
	AssignmentStartDate time.Time  `json:"assignment_start_date"`
	AssignmentEndDate   *time.Time `json:"assignment_end_date"`
	RoleInProject       string     `json:"role_in_project"`
	AllocationPercent   int        `json:"allocation_percent"`
	PerformanceRating   int        `json:"performance_rating"`
	ProjectOutcome      string     `json:"project_outcome"`
}

// Interval is the date range the assignment occupies in the ledger.
func (a Assignment) Interval() Interval {
	return Interval{Start: a.AssignmentStartDate, End: a.AssignmentEndDate}
}

// Project is a synthesized engagement. EndDate is nil only on the fallback
// date path, which normal generation never takes.
type Project struct {
	ID                      string        `json:"id"`
	Name                    string        `json:"name"`
	Client                  string        `json:"client"`
	Description             string        `json:"description"`
	StartDate               time.Time     `json:"start_date"`
	EndDate                 *time.Time    `json:"end_date"`
	EstimatedDurationMonths int           `json:"estimated_duration_months"`
	Budget                  int           `json:"budget"`
	Status                  ProjectStatus `json:"status"`
	TeamSize                int           `json:"team_size"`
	Requirements            []Requirement `json:"requirements"`
	AssignedProgrammers     []Assignment  `json:"assigned_programmers"`
}

// Interval is the project's own date range, the one candidates are checked
// against (not the eventual assignment's).
func (p Project) Interval() Interval {
	return Interval{Start: p.StartDate, End: p.EndDate}
}

// MandatoryRequirements returns the hard eligibility gates in declaration order.
func (p Project) MandatoryRequirements() []Requirement {
	var mandatory []Requirement
	for _, req := range p.Requirements {
		if req.IsMandatory {
			mandatory = append(mandatory, req)
		}
	}
	return mandatory
}
