// Package llm wraps the text-generation collaborator. Everything here is a
// thin adapter: prompts go in, markdown comes out, and blank output is an
// error rather than something to paper over.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hupe1980/go-huggingface"
	openai "github.com/sashabaranov/go-openai"

	"github.com/pzielak/workforge/internal/config"
)

// ErrEmptyContent signals that the collaborator returned blank output for a
// record. Callers log and skip the item; no placeholder text is ever
// substituted.
var ErrEmptyContent = errors.New("empty generation result")

// Client generates markdown from a prompt.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// New selects a client implementation from config.
func New(cfg config.LLMConfig) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return newOpenAIClient(openai.DefaultConfig(cfg.APIKey), cfg.Model), nil
	case "azure":
		azureCfg := openai.DefaultAzureConfig(cfg.APIKey, cfg.AzureEndpoint)
		azureCfg.AzureModelMapperFunc = func(string) string { return cfg.AzureDeployment }
		return newOpenAIClient(azureCfg, cfg.Model), nil
	case "huggingface":
		return &hfClient{client: huggingface.NewInferenceClient(cfg.APIKey), model: cfg.Model}, nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

type openAIClient struct {
	client *openai.Client
	model  string
}

func newOpenAIClient(cfg openai.ClientConfig, model string) *openAIClient {
	return &openAIClient{client: openai.NewClientWithConfig(cfg), model: model}
}

func (c *openAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.7,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyContent
	}
	return clean(resp.Choices[0].Message.Content)
}

type hfClient struct {
	client *huggingface.InferenceClient
	model  string
}

func (c *hfClient) Generate(ctx context.Context, prompt string) (string, error) {
	res, err := c.client.TextGeneration(ctx, &huggingface.TextGenerationRequest{
		Inputs: prompt,
		Model:  c.model,
		Parameters: huggingface.TextGenerationParameters{
			MaxNewTokens:   intPtr(1500),
			Temperature:    float64Ptr(0.7),
			ReturnFullText: boolPtr(false),
		},
	})
	if err != nil {
		return "", fmt.Errorf("text generation: %w", err)
	}
	if len(res) == 0 {
		return "", ErrEmptyContent
	}
	return clean(res[0].GeneratedText)
}

// clean strips code fencing the model tends to wrap documents in and rejects
// blank output.
func clean(raw string) (string, error) {
	content := strings.ReplaceAll(raw, "```markdown", "")
	content = strings.ReplaceAll(content, "```", "")
	content = strings.TrimSpace(content)
	if content == "" {
		return "", ErrEmptyContent
	}
	return content, nil
}

func intPtr(i int) *int             { return &i }
func float64Ptr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool          { return &b }
