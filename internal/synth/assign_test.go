package synth

import (
	"math/rand"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/pzielak/workforge/internal/catalog"
	"github.com/pzielak/workforge/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(t time.Time) *time.Time { return &t }

func newEngine(p float64, seed int64) *AssignmentEngine {
	return NewAssignmentEngine(catalog.Default(), p, rand.New(rand.NewSource(seed)))
}

func skillProfile(id int, name string, skills ...model.Skill) model.Profile {
	return model.Profile{ID: id, Name: name, Skills: skills}
}

func boundedProject(id string, start, end time.Time, teamSize int, reqs ...model.Requirement) model.Project {
	return model.Project{
		ID:                      id,
		StartDate:               start,
		EndDate:                 datePtr(end),
		EstimatedDurationMonths: 6,
		Status:                  model.ProjectStatusCompleted,
		TeamSize:                teamSize,
		Requirements:            reqs,
	}
}

func TestAssignSkipsEverythingAtZeroProbability(t *testing.T) {
	engine := newEngine(0, 1)
	profiles := []model.Profile{skillProfile(1, "Ada")}
	projects := []model.Project{boundedProject("PRJ-001", day(2025, 1, 1), day(2025, 6, 1), 3)}

	engine.Assign(projects, profiles)
	if len(projects[0].AssignedProgrammers) != 0 {
		t.Fatalf("zero probability must leave every project unstaffed")
	}
}

func TestAssignFiltersOnMandatorySkillFloor(t *testing.T) {
	profiles := []model.Profile{
		skillProfile(1, "Ada", model.Skill{Name: "Python", Proficiency: model.ProficiencyAdvanced}),
		skillProfile(2, "Grace", model.Skill{Name: "Python", Proficiency: model.ProficiencyIntermediate}),
		skillProfile(3, "Linus", model.Skill{Name: "Go", Proficiency: model.ProficiencyExpert}),
	}
	project := boundedProject("PRJ-001", day(2025, 1, 1), day(2025, 6, 1), 5,
		model.Requirement{SkillName: "Python", MinProficiency: model.ProficiencyAdvanced, IsMandatory: true},
	)

	engine := newEngine(1, 1)
	projects := []model.Project{project}
	engine.Assign(projects, profiles)

	if len(projects[0].AssignedProgrammers) != 1 {
		t.Fatalf("got %d assignments, want exactly the one qualifying profile", len(projects[0].AssignedProgrammers))
	}
	if got := projects[0].AssignedProgrammers[0].ProgrammerID; got != 1 {
		t.Fatalf("assigned programmer %d, want 1", got)
	}
}

func TestAssignPreferredTierIsAdvisory(t *testing.T) {
	profiles := []model.Profile{
		skillProfile(1, "Ada", model.Skill{Name: "Python", Proficiency: model.ProficiencyAdvanced}),
	}
	project := boundedProject("PRJ-001", day(2025, 1, 1), day(2025, 6, 1), 2,
		model.Requirement{
			SkillName:            "Python",
			MinProficiency:       model.ProficiencyAdvanced,
			PreferredProficiency: model.ProficiencyExpert,
			IsMandatory:          true,
		},
	)

	engine := newEngine(1, 1)
	projects := []model.Project{project}
	engine.Assign(projects, profiles)

	if len(projects[0].AssignedProgrammers) != 1 {
		t.Fatalf("meeting the minimum tier must be enough even below the preferred tier")
	}
}

func TestAssignHonorsLedgerOverlap(t *testing.T) {
	profiles := []model.Profile{skillProfile(1, "Ada")}
	projects := []model.Project{
		boundedProject("PRJ-001", day(2025, 1, 1), day(2025, 3, 1), 1),
		boundedProject("PRJ-002", day(2025, 2, 1), day(2025, 4, 1), 1),
		boundedProject("PRJ-003", day(2025, 3, 2), day(2025, 4, 1), 1),
	}

	engine := newEngine(1, 1)
	engine.Assign(projects, profiles)

	if len(projects[0].AssignedProgrammers) != 1 {
		t.Fatalf("first project should take the only profile")
	}
	if len(projects[1].AssignedProgrammers) != 0 {
		t.Fatalf("overlapping second project must stay unstaffed")
	}
	if len(projects[2].AssignedProgrammers) != 1 {
		t.Fatalf("third project starts after the first ends and should be staffed")
	}
}

func TestAssignNeverDoubleBooks(t *testing.T) {
	seed := int64(11)
	rng := rand.New(rand.NewSource(seed))
	faker := gofakeit.New(uint64(seed))
	cat := catalog.Default()

	profiles, err := NewProfileSynthesizer(cat, rng, faker).Generate(30)
	if err != nil {
		t.Fatalf("profiles: %v", err)
	}
	projects, err := NewProjectSynthesizer(cat, rng).Generate(60, profiles)
	if err != nil {
		t.Fatalf("projects: %v", err)
	}
	NewAssignmentEngine(cat, 1, rng).Assign(projects, profiles)

	held := make(map[int][]model.Interval)
	for _, project := range projects {
		for _, assignment := range project.AssignedProgrammers {
			candidate := assignment.Interval()
			for _, existing := range held[assignment.ProgrammerID] {
				if existing.Blocks(candidate) {
					t.Fatalf("programmer %d double-booked on %s", assignment.ProgrammerID, project.ID)
				}
			}
			held[assignment.ProgrammerID] = append(held[assignment.ProgrammerID], candidate)
		}
	}
}

func TestAssignRespectsTeamSize(t *testing.T) {
	profiles := make([]model.Profile, 0, 10)
	for i := 1; i <= 10; i++ {
		profiles = append(profiles, skillProfile(i, "P"))
	}
	projects := []model.Project{boundedProject("PRJ-001", day(2025, 1, 1), day(2025, 6, 1), 4)}

	engine := newEngine(1, 3)
	engine.Assign(projects, profiles)

	if got := len(projects[0].AssignedProgrammers); got != 4 {
		t.Fatalf("got %d assignments, want the full team size of 4", got)
	}
}

func TestAssignmentFields(t *testing.T) {
	profiles := []model.Profile{skillProfile(1, "Ada")}
	end := day(2025, 6, 1)
	projects := []model.Project{{
		ID:                      "PRJ-001",
		StartDate:               day(2025, 1, 1),
		EndDate:                 &end,
		EstimatedDurationMonths: 5,
		Status:                  model.ProjectStatusActive,
		TeamSize:                1,
	}}

	engine := newEngine(1, 2)
	engine.Assign(projects, profiles)
	if len(projects[0].AssignedProgrammers) != 1 {
		t.Fatalf("expected one assignment")
	}

	a := projects[0].AssignedProgrammers[0]
	if a.ProgrammerName != "Ada" || a.ProgrammerID != 1 {
		t.Fatalf("identity not carried over: %+v", a)
	}
	if !a.AssignmentStartDate.Equal(projects[0].StartDate) {
		t.Fatalf("assignment start %v, want project start", a.AssignmentStartDate)
	}
	if a.AssignmentEndDate == nil || !a.AssignmentEndDate.Equal(end) {
		t.Fatalf("assignment end %v, want project end", a.AssignmentEndDate)
	}
	if a.AllocationPercent != 50 && a.AllocationPercent != 100 {
		t.Fatalf("allocation %d, want 50 or 100", a.AllocationPercent)
	}
	if a.PerformanceRating < 3 || a.PerformanceRating > 5 {
		t.Fatalf("rating %d out of [3,5]", a.PerformanceRating)
	}
	wantOutcome := "Completed with challenges"
	if a.PerformanceRating >= 4 {
		wantOutcome = "Successfully delivered"
	}
	if a.ProjectOutcome != wantOutcome {
		t.Fatalf("outcome %q does not match rating %d", a.ProjectOutcome, a.PerformanceRating)
	}
	if a.RoleInProject == "" {
		t.Fatalf("role must be set")
	}
}

func TestAssignEstimatesEndForOpenProjects(t *testing.T) {
	profiles := []model.Profile{skillProfile(1, "Ada")}
	projects := []model.Project{{
		ID:                      "PRJ-001",
		StartDate:               day(2025, 1, 1),
		EstimatedDurationMonths: 2,
		Status:                  model.ProjectStatusActive,
		TeamSize:                1,
	}}

	engine := newEngine(1, 2)
	engine.Assign(projects, profiles)
	if len(projects[0].AssignedProgrammers) != 1 {
		t.Fatalf("expected one assignment")
	}
	a := projects[0].AssignedProgrammers[0]
	want := day(2025, 1, 1).AddDate(0, 0, 2*daysPerMonth)
	if a.AssignmentEndDate == nil || !a.AssignmentEndDate.Equal(want) {
		t.Fatalf("estimated end %v, want %v", a.AssignmentEndDate, want)
	}
}
