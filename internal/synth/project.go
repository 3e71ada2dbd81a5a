package synth

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/pzielak/workforge/internal/catalog"
	"github.com/pzielak/workforge/internal/model"
)

const daysPerMonth = 30

// ProjectSynthesizer produces projects with a strict historical/active split:
// completed projects lie fully in the past, active ones span the present.
type ProjectSynthesizer struct {
	catalog *catalog.Catalog
	rng     *rand.Rand
}

func NewProjectSynthesizer(cat *catalog.Catalog, rng *rand.Rand) *ProjectSynthesizer {
	return &ProjectSynthesizer{catalog: cat, rng: rng}
}

// Generate returns n projects, floor(0.67*n) completed followed by the active
// remainder, numbered PRJ-001 upward in that order. Requirement skills come
// from the names observed across the profile pool, or the static fallback pool
// when no profiles are supplied. Assignment is a separate step.
func (s *ProjectSynthesizer) Generate(n int, pool []model.Profile) ([]model.Project, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: number of projects %d", ErrInvalidCount, n)
	}

	skillNames := observedSkillNames(pool)
	if len(skillNames) == 0 {
		skillNames = s.catalog.FallbackSkills
	}

	now := time.Now()
	numHistorical := int(float64(n) * 0.67)

	projects := make([]model.Project, 0, n)
	for i := 0; i < numHistorical; i++ {
		projects = append(projects, s.build(model.ProjectStatusCompleted, i+1, now, skillNames))
	}
	for i := 0; i < n-numHistorical; i++ {
		projects = append(projects, s.build(model.ProjectStatusActive, numHistorical+i+1, now, skillNames))
	}
	return projects, nil
}

func (s *ProjectSynthesizer) build(status model.ProjectStatus, idx int, now time.Time, skillNames []string) model.Project {
	projectType := choice(s.rng, s.catalog.ProjectTypes)
	client := choice(s.rng, s.catalog.ProjectClients)
	durationMonths := intBetween(s.rng, 3, 18)

	var startDate time.Time
	var endDate *time.Time

	switch status {
	case model.ProjectStatusCompleted:
		// Anchor a random end point in the past and walk back by duration.
		end := now.AddDate(0, 0, -intBetween(s.rng, 30, 700))
		startDate = end.AddDate(0, 0, -durationMonths*daysPerMonth)
		endDate = &end
	case model.ProjectStatusActive:
		// Some whole months have already elapsed, so now falls strictly
		// inside the interval.
		monthsPassed := 0
		if durationMonths > 1 {
			monthsPassed = intBetween(s.rng, 1, durationMonths-1)
		}
		startDate = now.AddDate(0, 0, -monthsPassed*daysPerMonth)
		end := startDate.AddDate(0, 0, durationMonths*daysPerMonth)
		endDate = &end
	default:
		// Fallback path, unreachable through Generate.
		startDate = now
		endDate = nil
	}

	return model.Project{
		ID:                      fmt.Sprintf("PRJ-%03d", idx),
		Name:                    fmt.Sprintf("%s for %s", projectType, client),
		Client:                  client,
		Description:             fmt.Sprintf("Development of %s focusing on scalability.", strings.ToLower(projectType)),
		StartDate:               startDate,
		EndDate:                 endDate,
		EstimatedDurationMonths: durationMonths,
		Budget:                  intBetween(s.rng, 50000, 500000),
		Status:                  status,
		TeamSize:                intBetween(s.rng, 2, 8),
		Requirements:            s.requirements(skillNames),
		AssignedProgrammers:     []model.Assignment{},
	}
}

// requirements picks 3-8 distinct skills, a minimum tier from the bottom
// three, the preferred tier one level up, and marks roughly two thirds
// mandatory.
func (s *ProjectSynthesizer) requirements(skillNames []string) []model.Requirement {
	picked := sampleStrings(s.rng, skillNames, intBetween(s.rng, 3, 8))

	tiers := []model.Proficiency{
		model.ProficiencyBeginner,
		model.ProficiencyIntermediate,
		model.ProficiencyAdvanced,
	}

	reqs := make([]model.Requirement, 0, len(picked))
	for _, skill := range picked {
		minTier := tiers[s.rng.Intn(len(tiers))]
		reqs = append(reqs, model.Requirement{
			SkillName:            skill,
			MinProficiency:       minTier,
			PreferredProficiency: model.NextProficiency(minTier),
			IsMandatory:          s.rng.Intn(3) < 2,
		})
	}
	return reqs
}

// observedSkillNames collects distinct skill names across a profile pool in
// first-seen order.
func observedSkillNames(pool []model.Profile) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, profile := range pool {
		for _, skill := range profile.Skills {
			if _, ok := seen[skill.Name]; ok {
				continue
			}
			seen[skill.Name] = struct{}{}
			names = append(names, skill.Name)
		}
	}
	return names
}
