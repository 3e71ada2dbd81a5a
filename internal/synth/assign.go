package synth

import (
	"math/rand"

	"github.com/pzielak/workforge/internal/catalog"
	"github.com/pzielak/workforge/internal/model"
)

// AssignmentEngine staffs projects from a fixed profile pool. It keeps a
// per-run ledger of every assignment made so far, keyed by programmer id, so
// no programmer ends up on two projects with colliding date ranges. The
// ledger starts empty on every Assign call and is discarded afterwards; it
// survives only as the denormalized assigned_programmers field on each
// project.
type AssignmentEngine struct {
	catalog     *catalog.Catalog
	probability float64
	rng         *rand.Rand
}

// NewAssignmentEngine configures the per-project staffing gate: a project is
// staffed at all only with probability p, which keeps a fraction of the bench
// free.
func NewAssignmentEngine(cat *catalog.Catalog, p float64, rng *rand.Rand) *AssignmentEngine {
	return &AssignmentEngine{catalog: cat, probability: p, rng: rng}
}

// Assign enriches projects in place, processing them in the order given.
// Order matters: assignments made for earlier projects constrain availability
// for later ones, so callers must pass projects in generation order to get
// reproducible results. A project with no eligible candidates simply stays
// unstaffed.
func (e *AssignmentEngine) Assign(projects []model.Project, profiles []model.Profile) {
	ledger := make(map[int][]model.Assignment, len(profiles))
	for _, profile := range profiles {
		ledger[profile.ID] = nil
	}

	for i := range projects {
		e.staff(&projects[i], profiles, ledger)
	}
}

func (e *AssignmentEngine) staff(project *model.Project, profiles []model.Profile, ledger map[int][]model.Assignment) {
	if e.rng.Float64() > e.probability {
		return
	}

	mandatory := project.MandatoryRequirements()

	var eligible []model.Profile
	for _, profile := range profiles {
		if !meetsMandatory(profile, mandatory) {
			continue
		}
		if !isAvailable(ledger[profile.ID], project.Interval()) {
			continue
		}
		eligible = append(eligible, profile)
	}

	// Uniform pick without replacement; no weighting by skill closeness,
	// seniority, or rate.
	k := min(project.TeamSize, len(profiles), len(eligible))
	for _, idx := range e.rng.Perm(len(eligible))[:k] {
		assignment := e.materialize(project, eligible[idx])
		project.AssignedProgrammers = append(project.AssignedProgrammers, assignment)
		ledger[assignment.ProgrammerID] = append(ledger[assignment.ProgrammerID], assignment)
	}
}

// meetsMandatory checks every mandatory requirement against the profile's
// skill list. Only the minimum tier matters; preferred tiers are advisory.
func meetsMandatory(profile model.Profile, mandatory []model.Requirement) bool {
	for _, req := range mandatory {
		if !profile.HasSkillAtLeast(req.SkillName, req.MinProficiency) {
			return false
		}
	}
	return true
}

// isAvailable checks the candidate project interval against every ledger
// entry the programmer already holds.
func isAvailable(entries []model.Assignment, candidate model.Interval) bool {
	for _, entry := range entries {
		if entry.Interval().Blocks(candidate) {
			return false
		}
	}
	return true
}

func (e *AssignmentEngine) materialize(project *model.Project, profile model.Profile) model.Assignment {
	end := project.EndDate
	if end == nil {
		// No project end recorded: estimate from the declared duration.
		estimated := model.DateOnly(project.StartDate).AddDate(0, 0, project.EstimatedDurationMonths*daysPerMonth)
		end = &estimated
	}

	allocation := 100
	if project.Status == model.ProjectStatusActive && e.rng.Intn(2) == 0 {
		allocation = 50
	}

	rating := e.rating()
	outcome := "Completed with challenges"
	if rating >= 4 {
		outcome = "Successfully delivered"
	}

	return model.Assignment{
		ProgrammerName:      profile.Name,
		ProgrammerID:        profile.ID,
		AssignmentStartDate: project.StartDate,
		AssignmentEndDate:   end,
		RoleInProject:       choice(e.rng, e.catalog.Roles),
		AllocationPercent:   allocation,
		PerformanceRating:   rating,
		ProjectOutcome:      outcome,
	}
}

// rating draws from {3,4,5} with weights {10,40,50}.
func (e *AssignmentEngine) rating() int {
	switch v := e.rng.Intn(100); {
	case v < 10:
		return 3
	case v < 50:
		return 4
	default:
		return 5
	}
}
