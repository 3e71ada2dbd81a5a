package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/pzielak/workforge/internal/model"
)

// DatasetRepository mirrors a generated dataset into the relational sink, one
// run per transaction.
type DatasetRepository struct {
	db *gorm.DB
}

func NewDatasetRepository(db *gorm.DB) *DatasetRepository {
	return &DatasetRepository{db: db}
}

func (r *DatasetRepository) SaveDataset(ctx context.Context, dataset model.Dataset) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Exec(`
			INSERT INTO generation_runs (id, generated_at, num_programmers, num_projects, num_rfps)
			VALUES (?, ?, ?, ?, ?)
		`, dataset.RunID, dataset.GeneratedAt, len(dataset.Profiles), len(dataset.Projects), len(dataset.RFPs)).Error
		if err != nil {
			return err
		}

		for _, profile := range dataset.Profiles {
			err := tx.Exec(`
				INSERT INTO programmers (run_id, id, name, email, phone, location,
					total_years_experience, hourly_rate, currency, university, graduation_year, gpa)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, dataset.RunID, profile.ID, profile.Name, profile.Email, profile.Phone, profile.Location,
				profile.TotalYearsExperience, profile.HourlyRate, profile.Currency,
				profile.Education.UniversityName, profile.Education.GraduationYear, profile.Education.GPA).Error
			if err != nil {
				return err
			}

			for _, skill := range profile.Skills {
				err := tx.Exec(`
					INSERT INTO programmer_skills (run_id, programmer_id, name, category, proficiency, years_experience)
					VALUES (?, ?, ?, ?, ?, ?)
				`, dataset.RunID, profile.ID, skill.Name, skill.Category, string(skill.Proficiency), skill.YearsExperience).Error
				if err != nil {
					return err
				}
			}
		}

		for _, project := range dataset.Projects {
			err := tx.Exec(`
				INSERT INTO projects (run_id, id, name, client, status, start_date, end_date,
					estimated_duration_months, budget, team_size)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, dataset.RunID, project.ID, project.Name, project.Client, string(project.Status),
				model.DateOnly(project.StartDate), nullableDate(project.EndDate),
				project.EstimatedDurationMonths, project.Budget, project.TeamSize).Error
			if err != nil {
				return err
			}

			for _, req := range project.Requirements {
				err := tx.Exec(`
					INSERT INTO project_requirements (run_id, project_id, skill_name, min_proficiency, preferred_proficiency, is_mandatory)
					VALUES (?, ?, ?, ?, ?, ?)
				`, dataset.RunID, project.ID, req.SkillName, string(req.MinProficiency), string(req.PreferredProficiency), req.IsMandatory).Error
				if err != nil {
					return err
				}
			}

			for _, assignment := range project.AssignedProgrammers {
				err := tx.Exec(`
					INSERT INTO assignments (run_id, project_id, programmer_id, programmer_name,
						assignment_start_date, assignment_end_date, role_in_project,
						allocation_percent, performance_rating, project_outcome)
					VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
				`, dataset.RunID, project.ID, assignment.ProgrammerID, assignment.ProgrammerName,
					model.DateOnly(assignment.AssignmentStartDate), nullableDate(assignment.AssignmentEndDate),
					assignment.RoleInProject, assignment.AllocationPercent,
					assignment.PerformanceRating, assignment.ProjectOutcome).Error
				if err != nil {
					return err
				}
			}
		}

		for _, rfp := range dataset.RFPs {
			err := tx.Exec(`
				INSERT INTO rfps (run_id, id, title, client, project_type, duration_months,
					team_size, budget_range, start_date, deadline, location, remote_allowed)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, dataset.RunID, rfp.ID, rfp.Title, rfp.Client, rfp.ProjectType, rfp.DurationMonths,
				rfp.TeamSize, rfp.BudgetRange, model.DateOnly(rfp.StartDate), model.DateOnly(rfp.Deadline),
				rfp.Location, rfp.RemoteAllowed).Error
			if err != nil {
				return err
			}

			for _, req := range rfp.Requirements {
				err := tx.Exec(`
					INSERT INTO rfp_requirements (run_id, rfp_id, skill_name, min_proficiency, preferred_proficiency, is_mandatory, required_count)
					VALUES (?, ?, ?, ?, ?, ?, ?)
				`, dataset.RunID, rfp.ID, req.SkillName, string(req.MinProficiency), string(req.PreferredProficiency), req.IsMandatory, req.RequiredCount).Error
				if err != nil {
					return err
				}
			}
		}

		return nil
	})
}

func nullableDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return model.DateOnly(*t)
}
