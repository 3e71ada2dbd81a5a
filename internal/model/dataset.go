package model

import (
	"time"

	"github.com/google/uuid"
)

// Dataset is one full generation run: the corpus plus run metadata.
type Dataset struct {
	RunID       uuid.UUID
	GeneratedAt time.Time
	Profiles    []Profile
	Projects    []Project
	RFPs        []RFP
}

// NumHistorical counts completed projects in the set.
func (d Dataset) NumHistorical() int {
	n := 0
	for _, p := range d.Projects {
		if p.Status == ProjectStatusCompleted {
			n++
		}
	}
	return n
}

// NumStaffed counts projects that received at least one assignment.
func (d Dataset) NumStaffed() int {
	n := 0
	for _, p := range d.Projects {
		if len(p.AssignedProgrammers) > 0 {
			n++
		}
	}
	return n
}
