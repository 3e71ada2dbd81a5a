package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pzielak/workforge/internal/config"
	"github.com/pzielak/workforge/internal/model"
	"github.com/pzielak/workforge/internal/render"
	"github.com/pzielak/workforge/internal/store"
	"github.com/pzielak/workforge/internal/synth"
)

// TextRenderer turns structured records into markdown documents.
type TextRenderer interface {
	CV(ctx context.Context, profile model.Profile) (string, error)
	RFP(ctx context.Context, rfp model.RFP) (string, error)
}

// DocumentPublisher writes a markdown document as <baseName>.pdf under
// outputDir and returns the file path.
type DocumentPublisher interface {
	Publish(markdownContent, baseName, outputDir string) (string, error)
}

// SummaryGenerator produces the dataset summary workbook.
type SummaryGenerator interface {
	Generate(dataset model.Dataset) ([]byte, error)
}

// DatasetSink mirrors a dataset into secondary storage. Optional.
type DatasetSink interface {
	SaveDataset(ctx context.Context, dataset model.Dataset) error
}

// GeneratorService drives the full pipeline: synthesize entities, render and
// publish their documents, persist the JSON artifacts. Document rendering is
// paced and per-item failures are logged and skipped, never retried in place.
type GeneratorService struct {
	cfg       *config.Config
	store     *store.ArtifactStore
	profiles  *synth.ProfileSynthesizer
	projects  *synth.ProjectSynthesizer
	engine    *synth.AssignmentEngine
	rfps      *synth.RFPSynthesizer
	renderer  TextRenderer
	publisher DocumentPublisher
	summary   SummaryGenerator
	sink      DatasetSink
	log       zerolog.Logger
}

type GeneratorDeps struct {
	Store     *store.ArtifactStore
	Profiles  *synth.ProfileSynthesizer
	Projects  *synth.ProjectSynthesizer
	Engine    *synth.AssignmentEngine
	RFPs      *synth.RFPSynthesizer
	Renderer  TextRenderer
	Publisher DocumentPublisher
	Summary   SummaryGenerator
	Sink      DatasetSink
}

func NewGeneratorService(cfg *config.Config, deps GeneratorDeps, log zerolog.Logger) *GeneratorService {
	return &GeneratorService{
		cfg:       cfg,
		store:     deps.Store,
		profiles:  deps.Profiles,
		projects:  deps.Projects,
		engine:    deps.Engine,
		rfps:      deps.RFPs,
		renderer:  deps.Renderer,
		publisher: deps.Publisher,
		summary:   deps.Summary,
		sink:      deps.Sink,
		log:       log,
	}
}

// GenerateAll produces a complete corpus: profiles with CV PDFs, projects
// with assignments, RFPs with PDFs, the JSON artifacts and the summary
// workbook.
func (s *GeneratorService) GenerateAll(ctx context.Context) (*model.Dataset, error) {
	gen := s.cfg.Generation

	profiles, err := s.profiles.Generate(gen.NumProgrammers)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("count", len(profiles)).Msg("profiles synthesized")

	for i, profile := range profiles {
		if _, err := s.publishCV(ctx, profile, i+1, len(profiles)); err != nil {
			return nil, err
		}
	}

	projects, err := s.projects.Generate(gen.NumProjects, profiles)
	if err != nil {
		return nil, err
	}
	s.engine.Assign(projects, profiles)
	s.log.Info().Int("count", len(projects)).Msg("projects synthesized and staffed")

	rfps, err := s.rfps.Generate(gen.NumRFPs)
	if err != nil {
		return nil, err
	}
	for i, rfp := range rfps {
		if err := s.publishRFP(ctx, rfp, i+1, len(rfps)); err != nil {
			return nil, err
		}
	}

	if err := s.store.SaveProfiles(profiles); err != nil {
		return nil, err
	}
	if err := s.store.SaveProjects(projects); err != nil {
		return nil, err
	}
	if err := s.store.SaveRFPs(rfps); err != nil {
		return nil, err
	}

	dataset := model.Dataset{
		RunID:       uuid.New(),
		GeneratedAt: time.Now(),
		Profiles:    profiles,
		Projects:    projects,
		RFPs:        rfps,
	}

	if err := s.writeSummary(dataset); err != nil {
		return nil, err
	}
	if s.sink != nil {
		if err := s.sink.SaveDataset(ctx, dataset); err != nil {
			return nil, fmt.Errorf("database sink: %w", err)
		}
	}

	s.log.Info().
		Str("run_id", dataset.RunID.String()).
		Int("profiles", len(profiles)).
		Int("projects", len(projects)).
		Int("rfps", len(rfps)).
		Msg("generation complete")
	return &dataset, nil
}

// Append continues an existing profile sequence: generates profiles one at a
// time starting from the last persisted id, publishes their CVs, and
// checkpoints the combined file every few items. Projects and RFPs stay
// untouched, so appended programmers are deliberately unassigned.
func (s *GeneratorService) Append(ctx context.Context) error {
	existing, err := s.store.LoadProfiles()
	if err != nil {
		return err
	}
	lastID := 0
	if len(existing) > 0 {
		lastID = existing[len(existing)-1].ID
	}
	s.log.Info().Int("existing", len(existing)).Int("last_id", lastID).Msg("append starting")

	num := s.cfg.Generation.NumProgrammers
	var appended []model.Profile

	for i := 0; i < num; i++ {
		batch, err := s.profiles.Generate(1)
		if err != nil {
			return err
		}
		profile := batch[0]
		profile.ID = lastID + i + 1

		published, err := s.publishCV(ctx, profile, i+1, num)
		if err != nil {
			return err
		}
		if !published {
			continue
		}
		appended = append(appended, profile)

		if (i+1)%s.cfg.Pacing.CheckpointEvery == 0 {
			s.log.Info().Int("saved", len(existing)+len(appended)).Msg("checkpoint")
			if err := s.store.SaveProfiles(combine(existing, appended)); err != nil {
				return err
			}
		}
	}

	if err := s.store.SaveProfiles(combine(existing, appended)); err != nil {
		return err
	}
	s.log.Info().Int("total", len(existing)+len(appended)).Msg("append complete")
	return nil
}

// Backfill generates projects (with assignments) and RFPs for an
// already-persisted profile pool.
func (s *GeneratorService) Backfill(ctx context.Context) error {
	profiles, err := s.store.LoadProfiles()
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		return ErrNoProfiles
	}
	s.log.Info().Int("profiles", len(profiles)).Msg("backfill starting")

	projects, err := s.projects.Generate(s.cfg.Generation.NumProjects, profiles)
	if err != nil {
		return err
	}
	s.engine.Assign(projects, profiles)
	if err := s.store.SaveProjects(projects); err != nil {
		return err
	}

	rfps, err := s.rfps.Generate(s.cfg.Generation.NumRFPs)
	if err != nil {
		return err
	}
	if err := s.store.SaveRFPs(rfps); err != nil {
		return err
	}
	for i, rfp := range rfps {
		if err := s.publishRFP(ctx, rfp, i+1, len(rfps)); err != nil {
			return err
		}
	}
	return nil
}

// RegenerateRFPDocs re-renders RFP PDFs offline from the persisted JSON,
// including the open position counts. No LLM call is involved.
func (s *GeneratorService) RegenerateRFPDocs(_ context.Context) error {
	rfps, err := s.store.LoadRFPs()
	if err != nil {
		return err
	}
	if len(rfps) == 0 {
		return ErrNoRFPs
	}

	for _, rfp := range rfps {
		baseName := fmt.Sprintf("rfp_%s_%s", rfp.ID, render.SafeName(rfp.Title))
		path, err := s.publisher.Publish(render.OfflineRFP(rfp), baseName, s.store.RFPsDir())
		if err != nil {
			return err
		}
		s.log.Info().Str("path", path).Msg("rfp pdf regenerated")
	}
	return nil
}

// publishCV renders and publishes one CV. A render or publish failure is
// logged, followed by the longer error pause, and the item is skipped; the
// batch carries on. The bool reports whether the document was produced.
func (s *GeneratorService) publishCV(ctx context.Context, profile model.Profile, seq, total int) (bool, error) {
	s.log.Info().
		Int("seq", seq).
		Int("total", total).
		Str("name", profile.Name).
		Int("rate", profile.HourlyRate).
		Msg("generating cv")

	markdown, err := s.renderer.CV(ctx, profile)
	if err != nil {
		s.log.Error().Err(err).Str("name", profile.Name).Msg("cv generation failed, skipping")
		return false, s.pause(ctx, s.cfg.Pacing.ErrorDelay)
	}

	baseName := fmt.Sprintf("cv_%03d_%s", profile.ID, render.SafeName(profile.Name))
	if _, err := s.publisher.Publish(markdown, baseName, s.store.ProgrammersDir()); err != nil {
		s.log.Error().Err(err).Str("name", profile.Name).Msg("cv publish failed, skipping")
		return false, s.pause(ctx, s.cfg.Pacing.ErrorDelay)
	}
	return true, s.pause(ctx, s.cfg.Pacing.RenderDelay)
}

func (s *GeneratorService) publishRFP(ctx context.Context, rfp model.RFP, seq, total int) error {
	s.log.Info().
		Int("seq", seq).
		Int("total", total).
		Str("title", rfp.Title).
		Msg("generating rfp document")

	markdown, err := s.renderer.RFP(ctx, rfp)
	if err != nil {
		s.log.Error().Err(err).Str("rfp", rfp.ID).Msg("rfp generation failed, skipping")
		return s.pause(ctx, s.cfg.Pacing.ErrorDelay)
	}

	baseName := fmt.Sprintf("rfp_%s_%s", rfp.ID, render.SafeName(rfp.Title))
	if _, err := s.publisher.Publish(markdown, baseName, s.store.RFPsDir()); err != nil {
		s.log.Error().Err(err).Str("rfp", rfp.ID).Msg("rfp publish failed, skipping")
		return s.pause(ctx, s.cfg.Pacing.ErrorDelay)
	}
	return s.pause(ctx, s.cfg.Pacing.RenderDelay)
}

func (s *GeneratorService) writeSummary(dataset model.Dataset) error {
	if s.summary == nil {
		return nil
	}
	content, err := s.summary.Generate(dataset)
	if err != nil {
		return fmt.Errorf("summary workbook: %w", err)
	}
	path := s.cfg.Output.SummaryPath
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, content, 0o644)
}

func combine(existing, appended []model.Profile) []model.Profile {
	combined := make([]model.Profile, 0, len(existing)+len(appended))
	combined = append(combined, existing...)
	combined = append(combined, appended...)
	return combined
}

// pause respects the configured collaborator rate limit. Zero delays make it
// a no-op, which tests rely on.
func (s *GeneratorService) pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
