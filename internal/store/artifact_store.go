// Package store persists and reloads the generated corpus as JSON artifacts.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pzielak/workforge/internal/model"
)

const (
	profilesFileName = "programmer_profiles.json"
	projectsFileName = "projects.json"
	rfpsFileName     = "rfps.json"
)

// ArtifactStore reads and writes the three JSON artifacts under their
// configured directories.
type ArtifactStore struct {
	programmersDir string
	projectsDir    string
	rfpsDir        string
}

func NewArtifactStore(programmersDir, projectsDir, rfpsDir string) *ArtifactStore {
	return &ArtifactStore{
		programmersDir: programmersDir,
		projectsDir:    projectsDir,
		rfpsDir:        rfpsDir,
	}
}

func (s *ArtifactStore) ProgrammersDir() string { return s.programmersDir }
func (s *ArtifactStore) RFPsDir() string        { return s.rfpsDir }

func (s *ArtifactStore) ProfilesPath() string {
	return filepath.Join(s.programmersDir, profilesFileName)
}

func (s *ArtifactStore) ProjectsPath() string {
	return filepath.Join(s.projectsDir, projectsFileName)
}

func (s *ArtifactStore) RFPsPath() string {
	return filepath.Join(s.rfpsDir, rfpsFileName)
}

func (s *ArtifactStore) SaveProfiles(profiles []model.Profile) error {
	return writeJSON(s.ProfilesPath(), profiles)
}

func (s *ArtifactStore) SaveProjects(projects []model.Project) error {
	return writeJSON(s.ProjectsPath(), projects)
}

func (s *ArtifactStore) SaveRFPs(rfps []model.RFP) error {
	return writeJSON(s.RFPsPath(), rfps)
}

// LoadProfiles returns the persisted profiles. A missing file is not an
// error: append runs start from zero in that case.
func (s *ArtifactStore) LoadProfiles() ([]model.Profile, error) {
	var profiles []model.Profile
	if err := readJSON(s.ProfilesPath(), &profiles); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return profiles, nil
}

func (s *ArtifactStore) LoadProjects() ([]model.Project, error) {
	var projects []model.Project
	if err := readJSON(s.ProjectsPath(), &projects); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return projects, nil
}

func (s *ArtifactStore) LoadRFPs() ([]model.RFP, error) {
	var rfps []model.RFP
	if err := readJSON(s.RFPsPath(), &rfps); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return rfps, nil
}

// LastProfileID returns the highest id already persisted, 0 when none.
func (s *ArtifactStore) LastProfileID() (int, error) {
	profiles, err := s.LoadProfiles()
	if err != nil {
		return 0, err
	}
	if len(profiles) == 0 {
		return 0, nil
	}
	return profiles[len(profiles)-1].ID, nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
