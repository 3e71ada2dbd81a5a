package synth

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/pzielak/workforge/internal/catalog"
	"github.com/pzielak/workforge/internal/model"
)

// ProfileSynthesizer produces programmer profiles from the catalogs plus
// randomized attributes. All randomness flows through the injected rng and
// faker, so a fixed seed reproduces the same profiles.
type ProfileSynthesizer struct {
	catalog *catalog.Catalog
	rng     *rand.Rand
	faker   *gofakeit.Faker
}

func NewProfileSynthesizer(cat *catalog.Catalog, rng *rand.Rand, faker *gofakeit.Faker) *ProfileSynthesizer {
	return &ProfileSynthesizer{catalog: cat, rng: rng, faker: faker}
}

// Generate returns n freshly numbered profiles, ids 1..n. Append-mode callers
// overwrite the ids to continue an existing sequence.
func (s *ProfileSynthesizer) Generate(n int) ([]model.Profile, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: number of profiles %d", ErrInvalidCount, n)
	}

	profiles := make([]model.Profile, 0, n)
	for i := 0; i < n; i++ {
		totalExp := intBetween(s.rng, 2, 15)

		profiles = append(profiles, model.Profile{
			ID:                   i + 1,
			Name:                 s.faker.Name(),
			Email:                s.faker.Email(),
			Phone:                s.faker.Phone(),
			Location:             s.faker.City(),
			TotalYearsExperience: totalExp,
			HourlyRate:           intBetween(s.rng, 45, 160),
			Currency:             "USD",
			Education:            s.education(totalExp),
			SoftSkills:           s.softSkills(),
			Languages:            s.languages(),
			Skills:               s.skills(totalExp),
			Projects:             sampleStrings(s.rng, s.catalog.CVProjectNames, intBetween(s.rng, 2, 5)),
			Certifications:       s.certifications(),
		})
	}
	return profiles, nil
}

// education keeps the graduation year consistent with total experience.
func (s *ProfileSynthesizer) education(totalExp int) model.Education {
	univ := s.catalog.Universities[s.rng.Intn(len(s.catalog.Universities))]
	gradYear := time.Now().Year() - totalExp - s.rng.Intn(3)

	return model.Education{
		UniversityName:     univ.Name,
		UniversityLocation: univ.Location,
		UniversityRanking:  univ.Ranking,
		Degree:             choice(s.rng, s.catalog.Degrees),
		GraduationYear:     gradYear,
		GPA:                math.Round((3.2+s.rng.Float64()*0.8)*100) / 100,
	}
}

// skills samples each taxonomy category independently with 70% probability,
// taking 1-3 skills per hit. Per-skill years never exceed total experience and
// the proficiency tier follows directly from those years.
func (s *ProfileSynthesizer) skills(totalExp int) []model.Skill {
	selected := make([]model.Skill, 0, 8)
	for _, category := range s.catalog.SkillTaxonomy {
		if s.rng.Float64() >= 0.7 {
			continue
		}
		for _, name := range sampleStrings(s.rng, category.Skills, intBetween(s.rng, 1, 3)) {
			years := intBetween(s.rng, 1, totalExp)
			selected = append(selected, model.Skill{
				Name:            name,
				Category:        category.Name,
				Proficiency:     model.ProficiencyForYears(years),
				YearsExperience: years,
			})
		}
	}
	return selected
}

func (s *ProfileSynthesizer) softSkills() []model.SoftSkill {
	names := sampleStrings(s.rng, s.catalog.SoftSkills, intBetween(s.rng, 3, 5))
	skills := make([]model.SoftSkill, 0, len(names))
	for _, name := range names {
		skills = append(skills, model.SoftSkill{Name: name})
	}
	return skills
}

// languages always includes English, plus up to two others from the catalog.
func (s *ProfileSynthesizer) languages() []model.Language {
	english := s.catalog.Languages[0]
	langs := []model.Language{{Name: english.Name, Level: choice(s.rng, english.Levels)}}

	others := s.catalog.Languages[1:]
	for _, i := range s.rng.Perm(len(others))[:s.rng.Intn(3)] {
		langs = append(langs, model.Language{
			Name:  others[i].Name,
			Level: choice(s.rng, others[i].Levels),
		})
	}
	return langs
}

func (s *ProfileSynthesizer) certifications() []model.Certification {
	num := s.rng.Intn(4)
	certs := make([]model.Certification, 0, num)
	if num == 0 {
		return certs
	}

	now := time.Now()
	for _, i := range s.rng.Perm(len(s.catalog.Certificates))[:num] {
		template := s.catalog.Certificates[i]
		earned := model.DateOnly(s.faker.DateRange(now.AddDate(-3, 0, 0), now))
		certs = append(certs, model.Certification{
			Name:       template.Name,
			Provider:   template.Provider,
			DateEarned: earned,
			ExpiryDate: earned.AddDate(0, 0, 365*3),
			Score:      intBetween(s.rng, 700, 1000),
		})
	}
	return certs
}
