package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS generation_runs (
		id UUID PRIMARY KEY,
		generated_at TIMESTAMPTZ NOT NULL,
		num_programmers INT NOT NULL,
		num_projects INT NOT NULL,
		num_rfps INT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS programmers (
		run_id UUID NOT NULL REFERENCES generation_runs(id) ON DELETE CASCADE,
		id INT NOT NULL,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		location TEXT NOT NULL,
		total_years_experience INT NOT NULL,
		hourly_rate INT NOT NULL,
		currency VARCHAR(8) NOT NULL,
		university TEXT NOT NULL,
		graduation_year INT NOT NULL,
		gpa NUMERIC(4,2) NOT NULL,
		PRIMARY KEY (run_id, id)
	);`,
	`CREATE TABLE IF NOT EXISTS programmer_skills (
		run_id UUID NOT NULL,
		programmer_id INT NOT NULL,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		proficiency VARCHAR(16) NOT NULL,
		years_experience INT NOT NULL,
		FOREIGN KEY (run_id, programmer_id) REFERENCES programmers(run_id, id) ON DELETE CASCADE
	);`,
	`CREATE TABLE IF NOT EXISTS projects (
		run_id UUID NOT NULL REFERENCES generation_runs(id) ON DELETE CASCADE,
		id VARCHAR(16) NOT NULL,
		name TEXT NOT NULL,
		client TEXT NOT NULL,
		status VARCHAR(16) NOT NULL,
		start_date DATE NOT NULL,
		end_date DATE,
		estimated_duration_months INT NOT NULL,
		budget INT NOT NULL,
		team_size INT NOT NULL,
		PRIMARY KEY (run_id, id)
	);`,
	`CREATE TABLE IF NOT EXISTS project_requirements (
		run_id UUID NOT NULL,
		project_id VARCHAR(16) NOT NULL,
		skill_name TEXT NOT NULL,
		min_proficiency VARCHAR(16) NOT NULL,
		preferred_proficiency VARCHAR(16) NOT NULL,
		is_mandatory BOOLEAN NOT NULL,
		FOREIGN KEY (run_id, project_id) REFERENCES projects(run_id, id) ON DELETE CASCADE
	);`,
	`CREATE TABLE IF NOT EXISTS assignments (
		run_id UUID NOT NULL,
		project_id VARCHAR(16) NOT NULL,
		programmer_id INT NOT NULL,
		programmer_name TEXT NOT NULL,
		assignment_start_date DATE NOT NULL,
		assignment_end_date DATE,
		role_in_project TEXT NOT NULL,
		allocation_percent INT NOT NULL,
		performance_rating INT NOT NULL,
		project_outcome TEXT NOT NULL,
		FOREIGN KEY (run_id, project_id) REFERENCES projects(run_id, id) ON DELETE CASCADE
	);`,
	`CREATE INDEX IF NOT EXISTS idx_assignments_programmer ON assignments (run_id, programmer_id);`,
	`CREATE TABLE IF NOT EXISTS rfps (
		run_id UUID NOT NULL REFERENCES generation_runs(id) ON DELETE CASCADE,
		id VARCHAR(16) NOT NULL,
		title TEXT NOT NULL,
		client TEXT NOT NULL,
		project_type TEXT NOT NULL,
		duration_months INT NOT NULL,
		team_size INT NOT NULL,
		budget_range TEXT NOT NULL,
		start_date DATE NOT NULL,
		deadline DATE NOT NULL,
		location TEXT NOT NULL,
		remote_allowed BOOLEAN NOT NULL,
		PRIMARY KEY (run_id, id)
	);`,
	`CREATE TABLE IF NOT EXISTS rfp_requirements (
		run_id UUID NOT NULL,
		rfp_id VARCHAR(16) NOT NULL,
		skill_name TEXT NOT NULL,
		min_proficiency VARCHAR(16) NOT NULL,
		preferred_proficiency VARCHAR(16) NOT NULL,
		is_mandatory BOOLEAN NOT NULL,
		required_count INT NOT NULL,
		FOREIGN KEY (run_id, rfp_id) REFERENCES rfps(run_id, id) ON DELETE CASCADE
	);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
