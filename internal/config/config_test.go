package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Environment != "development" {
		t.Fatalf("environment %q", cfg.Environment)
	}
	if cfg.Generation.NumProgrammers != 10 || cfg.Generation.NumProjects != 20 || cfg.Generation.NumRFPs != 3 {
		t.Fatalf("generation defaults: %+v", cfg.Generation)
	}
	if cfg.Assignment.Probability != 0.8 {
		t.Fatalf("probability %v", cfg.Assignment.Probability)
	}
	if cfg.Output.ProgrammersDir != "data/programmers" || cfg.Output.RFPsDir != "data/RFP" {
		t.Fatalf("output defaults: %+v", cfg.Output)
	}
	if cfg.LLM.Provider != "openai" || cfg.LLM.Model != "gpt-4o-mini" {
		t.Fatalf("llm defaults: %+v", cfg.LLM)
	}
	if cfg.Pacing.RenderDelay != 3*time.Second || cfg.Pacing.ErrorDelay != 5*time.Second || cfg.Pacing.CheckpointEvery != 10 {
		t.Fatalf("pacing defaults: %+v", cfg.Pacing)
	}
	if cfg.HTTP.Port != 7090 {
		t.Fatalf("http defaults: %+v", cfg.HTTP)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("GEN_NUM_PROGRAMMERS", "120")
	t.Setenv("GEN_SEED", "42")
	t.Setenv("ASSIGNMENT_PROBABILITY", "0.5")
	t.Setenv("PACING_RENDER_DELAY", "250ms")
	t.Setenv("LLM_PROVIDER", "huggingface")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Environment != "production" {
		t.Fatalf("environment %q", cfg.Environment)
	}
	if cfg.Generation.NumProgrammers != 120 || cfg.Generation.Seed != 42 {
		t.Fatalf("generation: %+v", cfg.Generation)
	}
	if cfg.Assignment.Probability != 0.5 {
		t.Fatalf("probability %v", cfg.Assignment.Probability)
	}
	if cfg.Pacing.RenderDelay != 250*time.Millisecond {
		t.Fatalf("render delay %v", cfg.Pacing.RenderDelay)
	}
	if cfg.LLM.Provider != "huggingface" {
		t.Fatalf("provider %q", cfg.LLM.Provider)
	}
}

func TestLoadValidatesProbability(t *testing.T) {
	t.Setenv("ASSIGNMENT_PROBABILITY", "1.5")
	if _, err := Load(); err == nil {
		t.Fatalf("probability above 1 must be rejected")
	}
}

func TestLoadValidatesProvider(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "oracle")
	if _, err := Load(); err == nil {
		t.Fatalf("unknown provider must be rejected")
	}
}

func TestAPIKeyFallbackChain(t *testing.T) {
	t.Setenv("AZURE_OPENAI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "openai-key")
	t.Setenv("LLM_API_KEY", "generic-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LLM.APIKey != "openai-key" {
		t.Fatalf("api key %q, want the OpenAI one to win over the generic", cfg.LLM.APIKey)
	}
}

func TestValidateLLM(t *testing.T) {
	cfg := &Config{LLM: LLMConfig{Provider: "openai"}}
	if err := cfg.ValidateLLM(); err == nil {
		t.Fatalf("missing api key must be rejected")
	}

	cfg.LLM.APIKey = "key"
	if err := cfg.ValidateLLM(); err != nil {
		t.Fatalf("openai with key: %v", err)
	}

	cfg.LLM.Provider = "azure"
	if err := cfg.ValidateLLM(); err == nil {
		t.Fatalf("azure without endpoint must be rejected")
	}
	cfg.LLM.AzureEndpoint = "https://example.openai.azure.com"
	if err := cfg.ValidateLLM(); err == nil {
		t.Fatalf("azure without deployment must be rejected")
	}
	cfg.LLM.AzureDeployment = "dep"
	if err := cfg.ValidateLLM(); err != nil {
		t.Fatalf("fully configured azure: %v", err)
	}
}
