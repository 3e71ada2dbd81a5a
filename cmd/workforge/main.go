package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/pzielak/workforge/internal/catalog"
	"github.com/pzielak/workforge/internal/config"
	"github.com/pzielak/workforge/internal/db"
	"github.com/pzielak/workforge/internal/excel"
	httphandler "github.com/pzielak/workforge/internal/http"
	"github.com/pzielak/workforge/internal/llm"
	"github.com/pzielak/workforge/internal/logger"
	"github.com/pzielak/workforge/internal/pdf"
	"github.com/pzielak/workforge/internal/render"
	"github.com/pzielak/workforge/internal/repository"
	"github.com/pzielak/workforge/internal/service"
	"github.com/pzielak/workforge/internal/store"
	"github.com/pzielak/workforge/internal/synth"
)

const usage = `usage: workforge <command>

commands:
  generate   synthesize a full corpus: profiles, projects, RFPs, documents (default)
  append     add programmers to an existing corpus, one at a time
  backfill   synthesize projects, assignments and RFPs for existing profiles
  rfp-pdfs   rebuild RFP PDFs from the stored records, no LLM involved
  serve      preview the generated artifacts over HTTP
`

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	command := "generate"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch command {
	case "generate", "append", "backfill":
		if err := cfg.ValidateLLM(); err != nil {
			log.Fatal().Err(err).Msg("LLM configuration incomplete")
		}
		runGenerator(ctx, cfg, log, command)
	case "rfp-pdfs":
		runGenerator(ctx, cfg, log, command)
	case "serve":
		runServer(cfg, log)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", command, usage)
		os.Exit(2)
	}
}

func runGenerator(ctx context.Context, cfg *config.Config, log zerolog.Logger, command string) {
	seed := cfg.Generation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	faker := gofakeit.New(uint64(seed))
	cat := catalog.Default()

	var renderer service.TextRenderer
	if command != "rfp-pdfs" {
		client, err := llm.New(cfg.LLM)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to init LLM client")
		}
		renderer = render.NewDocumentRenderer(client)
	}

	var sink service.DatasetSink
	if cfg.DB.DSN != "" {
		database, err := db.New(cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect database")
		}
		sink = repository.NewDatasetRepository(database)
	}

	deps := service.GeneratorDeps{
		Store:     newStore(cfg),
		Profiles:  synth.NewProfileSynthesizer(cat, rng, faker),
		Projects:  synth.NewProjectSynthesizer(cat, rng),
		Engine:    synth.NewAssignmentEngine(cat, cfg.Assignment.Probability, rng),
		RFPs:      synth.NewRFPSynthesizer(cat, rng, faker),
		Renderer:  renderer,
		Publisher: pdf.NewPublisher(),
		Summary:   excel.NewGenerator(),
		Sink:      sink,
	}
	generator := service.NewGeneratorService(cfg, deps, log)

	log.Info().Str("command", command).Int64("seed", seed).Msg("starting generation")

	switch command {
	case "generate":
		_, err := generator.GenerateAll(ctx)
		exitOn(err, log, "generation failed")
	case "append":
		exitOn(generator.Append(ctx), log, "append failed")
	case "backfill":
		exitOn(generator.Backfill(ctx), log, "backfill failed")
	case "rfp-pdfs":
		exitOn(generator.RegenerateRFPDocs(ctx), log, "RFP regeneration failed")
	}

	log.Info().Str("command", command).Msg("done")
}

func runServer(cfg *config.Config, log zerolog.Logger) {
	handler := httphandler.NewHandler(newStore(cfg), log)
	router := httphandler.NewRouter(handler, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting preview server")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

func newStore(cfg *config.Config) *store.ArtifactStore {
	return store.NewArtifactStore(cfg.Output.ProgrammersDir, cfg.Output.ProjectsDir, cfg.Output.RFPsDir)
}

func exitOn(err error, log zerolog.Logger, msg string) {
	if err != nil {
		log.Fatal().Err(err).Msg(msg)
	}
}
