package model

import "time"

type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "Beginner"
	ProficiencyIntermediate Proficiency = "Intermediate"
	ProficiencyAdvanced     Proficiency = "Advanced"
	ProficiencyExpert       Proficiency = "Expert"
)

// Ordinal maps a proficiency tier to its comparable rank (1..4).
// Unknown values rank below Beginner.
func (p Proficiency) Ordinal() int {
	switch p {
	case ProficiencyBeginner:
		return 1
	case ProficiencyIntermediate:
		return 2
	case ProficiencyAdvanced:
		return 3
	case ProficiencyExpert:
		return 4
	default:
		return 0
	}
}

// ProficiencyForYears maps years of hands-on experience to a tier:
// under 2 Beginner, under 4 Intermediate, under 7 Advanced, otherwise Expert.
func ProficiencyForYears(years int) Proficiency {
	switch {
	case years < 2:
		return ProficiencyBeginner
	case years < 4:
		return ProficiencyIntermediate
	case years < 7:
		return ProficiencyAdvanced
	default:
		return ProficiencyExpert
	}
}

// NextProficiency returns the tier one level up, capped at Expert.
func NextProficiency(p Proficiency) Proficiency {
	switch p {
	case ProficiencyBeginner:
		return ProficiencyIntermediate
	case ProficiencyIntermediate:
		return ProficiencyAdvanced
	default:
		return ProficiencyExpert
	}
}

type Skill struct {
	Name            string      `json:"name"`
	Category        string      `json:"category"`
	Proficiency     Proficiency `json:"proficiency"`
	YearsExperience int         `json:"years_experience"`
}

type Education struct {
	UniversityName     string  `json:"university_name"`
	UniversityLocation string  `json:"university_location"`
	UniversityRanking  int     `json:"university_ranking"`
	Degree             string  `json:"degree"`
	GraduationYear     int     `json:"graduation_year"`
	GPA                float64 `json:"gpa"`
}

type Certification struct {
	Name       string    `json:"name"`
	Provider   string    `json:"provider"`
	DateEarned time.Time `json:"date_earned"`
	ExpiryDate time.Time `json:"expiry_date"`
	Score      int       `json:"score"`
}

type SoftSkill struct {
	Name string `json:"name"`
}

type Language struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// Profile is a synthesized programmer. IDs are assigned monotonically; append
// runs overwrite the generated ID to continue the existing sequence.
type Profile struct {
	ID                   int             `json:"id"`
	Name                 string          `json:"name"`
	Email                string          `json:"email"`
	Phone                string          `json:"phone"`
	Location             string          `json:"location"`
	TotalYearsExperience int             `json:"total_years_experience"`
	HourlyRate           int             `json:"hourly_rate"`
	Currency             string          `json:"currency"`
	Education            Education       `json:"education"`
	SoftSkills           []SoftSkill     `json:"soft_skills"`
	Languages            []Language      `json:"languages"`
	Skills               []Skill         `json:"skills"`
	Projects             []string        `json:"projects"`
	Certifications       []Certification `json:"certifications"`
}

// HasSkillAtLeast reports whether the profile lists the named skill at or
// above the given tier. Only the floor matters; preferred tiers on a
// requirement never affect eligibility.
func (p Profile) HasSkillAtLeast(skillName string, min Proficiency) bool {
	for _, skill := range p.Skills {
		if skill.Name == skillName {
			return skill.Proficiency.Ordinal() >= min.Ordinal()
		}
	}
	return false
}
