package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type GenerationConfig struct {
	NumProgrammers int
	NumProjects    int
	NumRFPs        int
	Seed           int64
}

type AssignmentConfig struct {
	Probability float64
}

type OutputConfig struct {
	ProgrammersDir string
	ProjectsDir    string
	RFPsDir        string
	SummaryPath    string
}

type LLMConfig struct {
	Provider        string // "openai", "azure" or "huggingface"
	APIKey          string
	Model           string
	AzureEndpoint   string
	AzureDeployment string
}

type PacingConfig struct {
	RenderDelay     time.Duration
	ErrorDelay      time.Duration
	CheckpointEvery int
}

type HTTPConfig struct {
	Host string
	Port int
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

type Config struct {
	Environment string
	Generation  GenerationConfig
	Assignment  AssignmentConfig
	Output      OutputConfig
	LLM         LLMConfig
	Pacing      PacingConfig
	HTTP        HTTPConfig
	DB          DBConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		Generation: GenerationConfig{
			NumProgrammers: v.GetInt("GEN_NUM_PROGRAMMERS"),
			NumProjects:    v.GetInt("GEN_NUM_PROJECTS"),
			NumRFPs:        v.GetInt("GEN_NUM_RFPS"),
			Seed:           v.GetInt64("GEN_SEED"),
		},
		Assignment: AssignmentConfig{
			Probability: v.GetFloat64("ASSIGNMENT_PROBABILITY"),
		},
		Output: OutputConfig{
			ProgrammersDir: v.GetString("OUTPUT_PROGRAMMERS_DIR"),
			ProjectsDir:    v.GetString("OUTPUT_PROJECTS_DIR"),
			RFPsDir:        v.GetString("OUTPUT_RFPS_DIR"),
			SummaryPath:    v.GetString("OUTPUT_SUMMARY_PATH"),
		},
		LLM: LLMConfig{
			Provider:        v.GetString("LLM_PROVIDER"),
			APIKey:          firstNonEmpty(v.GetString("AZURE_OPENAI_API_KEY"), v.GetString("OPENAI_API_KEY"), v.GetString("LLM_API_KEY")),
			Model:           v.GetString("LLM_MODEL"),
			AzureEndpoint:   v.GetString("AZURE_OPENAI_ENDPOINT"),
			AzureDeployment: v.GetString("AZURE_DEPLOYMENT_NAME"),
		},
		Pacing: PacingConfig{
			RenderDelay:     v.GetDuration("PACING_RENDER_DELAY"),
			ErrorDelay:      v.GetDuration("PACING_ERROR_DELAY"),
			CheckpointEvery: v.GetInt("PACING_CHECKPOINT_EVERY"),
		},
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		DB: DBConfig{
			DSN:          v.GetString("DB_DSN"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
		},
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.Generation.NumProgrammers == 0 {
		cfg.Generation.NumProgrammers = 10
	}
	if cfg.Generation.NumProjects == 0 {
		cfg.Generation.NumProjects = 20
	}
	if cfg.Generation.NumRFPs == 0 {
		cfg.Generation.NumRFPs = 3
	}
	if cfg.Assignment.Probability == 0 {
		cfg.Assignment.Probability = 0.8
	}
	if cfg.Output.ProgrammersDir == "" {
		cfg.Output.ProgrammersDir = "data/programmers"
	}
	if cfg.Output.ProjectsDir == "" {
		cfg.Output.ProjectsDir = "data/projects"
	}
	if cfg.Output.RFPsDir == "" {
		cfg.Output.RFPsDir = "data/RFP"
	}
	if cfg.Output.SummaryPath == "" {
		cfg.Output.SummaryPath = "data/dataset_summary.xlsx"
	}
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "openai"
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = "gpt-4o-mini"
	}
	if cfg.Pacing.RenderDelay == 0 {
		cfg.Pacing.RenderDelay = 3 * time.Second
	}
	if cfg.Pacing.ErrorDelay == 0 {
		cfg.Pacing.ErrorDelay = 5 * time.Second
	}
	if cfg.Pacing.CheckpointEvery == 0 {
		cfg.Pacing.CheckpointEvery = 10
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 7090
	}
}

func validate(cfg *Config) error {
	if cfg.Assignment.Probability < 0 || cfg.Assignment.Probability > 1 {
		return fmt.Errorf("ASSIGNMENT_PROBABILITY must be within [0,1], got %v", cfg.Assignment.Probability)
	}
	switch strings.ToLower(cfg.LLM.Provider) {
	case "openai", "azure", "huggingface":
	default:
		return fmt.Errorf("LLM_PROVIDER must be one of openai, azure, huggingface, got %q", cfg.LLM.Provider)
	}
	return nil
}

// ValidateLLM is required by commands that render documents; offline commands
// skip it.
func (c *Config) ValidateLLM() error {
	if c.LLM.APIKey == "" {
		return fmt.Errorf("an LLM API key is required: set AZURE_OPENAI_API_KEY, OPENAI_API_KEY or LLM_API_KEY")
	}
	if strings.ToLower(c.LLM.Provider) == "azure" {
		if c.LLM.AzureEndpoint == "" {
			return fmt.Errorf("AZURE_OPENAI_ENDPOINT is required for the azure provider")
		}
		if c.LLM.AzureDeployment == "" {
			return fmt.Errorf("AZURE_DEPLOYMENT_NAME is required for the azure provider")
		}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
