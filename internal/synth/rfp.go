package synth

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/pzielak/workforge/internal/catalog"
	"github.com/pzielak/workforge/internal/model"
)

// RFPSynthesizer produces request-for-proposal records whose skill quotas
// always sum to the requested team size.
type RFPSynthesizer struct {
	catalog *catalog.Catalog
	rng     *rand.Rand
	faker   *gofakeit.Faker
}

func NewRFPSynthesizer(cat *catalog.Catalog, rng *rand.Rand, faker *gofakeit.Faker) *RFPSynthesizer {
	return &RFPSynthesizer{catalog: cat, rng: rng, faker: faker}
}

// Generate returns n RFPs numbered RFP-001 upward. The skill selection is
// clamped to the team size so the quota split is always feasible.
func (s *RFPSynthesizer) Generate(n int) ([]model.RFP, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: number of RFPs %d", ErrInvalidCount, n)
	}

	now := time.Now()
	rfps := make([]model.RFP, 0, n)

	for i := 0; i < n; i++ {
		startDate := model.DateOnly(s.faker.DateRange(now.AddDate(0, 1, 0), now.AddDate(0, 6, 0)))
		durationMonths := intBetween(s.rng, 6, 24)
		teamSize := intBetween(s.rng, 3, 12)

		numSkills := intBetween(s.rng, 3, 6)
		if numSkills > teamSize {
			numSkills = teamSize
		}
		skills := sampleStrings(s.rng, s.catalog.RFPSkills, numSkills)

		counts, err := splitQuota(s.rng, teamSize, len(skills))
		if err != nil {
			return nil, err
		}

		requirements := make([]model.RFPRequirement, 0, len(skills))
		for j, skill := range skills {
			requirements = append(requirements, model.RFPRequirement{
				SkillName:               skill,
				MinProficiency:          model.ProficiencyAdvanced,
				PreferredProficiency:    model.ProficiencyExpert,
				IsMandatory:             true,
				RequiredCount:           counts[j],
				PreferredCertifications: []string{},
			})
		}

		rfps = append(rfps, model.RFP{
			ID:             fmt.Sprintf("RFP-%03d", i+1),
			Title:          choice(s.rng, s.catalog.RFPTypes),
			Client:         choice(s.rng, s.catalog.RFPClients),
			Description:    fmt.Sprintf("Strategic initiative for %s.", choice(s.rng, s.catalog.RFPTypes)),
			ProjectType:    "Software Development",
			DurationMonths: durationMonths,
			TeamSize:       teamSize,
			BudgetRange:    choice(s.rng, s.catalog.BudgetRanges),
			StartDate:      startDate,
			Deadline:       startDate.AddDate(0, 0, durationMonths*daysPerMonth),
			Requirements:   requirements,
			Location:       s.faker.City(),
			RemoteAllowed:  true,
		})
	}
	return rfps, nil
}

// splitQuota distributes teamSize slots across numSkills skills left to
// right: every skill except the last takes 1..min(3, what can be spared while
// leaving one slot per remaining skill), and the last absorbs the remainder.
// The split is greedy and feasible, not uniform. teamSize < numSkills is a
// precondition violation, never a silent zero count.
func splitQuota(rng *rand.Rand, teamSize, numSkills int) ([]int, error) {
	if numSkills <= 0 {
		return nil, fmt.Errorf("%w: no skills selected", ErrInvalidCount)
	}
	if teamSize < numSkills {
		return nil, fmt.Errorf("%w: %d slots for %d skills", ErrQuotaInfeasible, teamSize, numSkills)
	}

	counts := make([]int, numSkills)
	slotsLeft := teamSize
	for i := 0; i < numSkills-1; i++ {
		maxAlloc := slotsLeft - (numSkills - i - 1)
		if maxAlloc > 3 {
			maxAlloc = 3
		}
		counts[i] = intBetween(rng, 1, maxAlloc)
		slotsLeft -= counts[i]
	}
	counts[numSkills-1] = max(1, slotsLeft)
	return counts, nil
}
