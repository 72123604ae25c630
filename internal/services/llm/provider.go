package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/greentrip/internal/common"
	"github.com/ternarybob/greentrip/internal/interfaces"
	"google.golang.org/genai"
)

const systemPrompt = "You are a travel planning assistant. Respond with a single JSON object matching the requested schema and nothing else."

// NewGenerator creates a generator for the configured default provider
func NewGenerator(config *common.Config) (interfaces.IGenerator, error) {
	switch config.LLM.DefaultProvider {
	case common.LLMProviderClaude:
		return newClaudeGenerator(config)
	case common.LLMProviderGemini, "":
		return newGeminiGenerator(config)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", config.LLM.DefaultProvider)
	}
}

// ---------------------------------------------------------------------
// Gemini

type geminiGenerator struct {
	client      *genai.Client
	model       string
	maxTokens   int
	temperature float32
	timeout     time.Duration
	logger      arbor.ILogger
}

func newGeminiGenerator(config *common.Config) (interfaces.IGenerator, error) {
	if config.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini API key not configured")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  config.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	timeout, err := time.ParseDuration(config.Gemini.Timeout)
	if err != nil {
		timeout = 2 * time.Minute
	}

	return &geminiGenerator{
		client:      client,
		model:       config.Gemini.Model,
		maxTokens:   config.Gemini.MaxTokens,
		temperature: config.Gemini.Temperature,
		timeout:     timeout,
		logger:      common.GetLogger(),
	}, nil
}

func (g *geminiGenerator) Name() string {
	return "gemini"
}

// Generate runs a single bounded completion; no retry on failure
func (g *geminiGenerator) Generate(ctx context.Context, instruction string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	config := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(g.temperature),
		MaxOutputTokens:   int32(g.maxTokens),
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}

	contents := []*genai.Content{
		genai.NewContentFromText(instruction, genai.RoleUser),
	}

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}

	g.logger.Debug().
		Str("model", g.model).
		Str("duration", time.Since(start).String()).
		Msg("Generation completed")

	return text, nil
}

// ---------------------------------------------------------------------
// Claude

type claudeGenerator struct {
	client      anthropic.Client
	model       string
	maxTokens   int
	temperature float32
	timeout     time.Duration
	logger      arbor.ILogger
}

func newClaudeGenerator(config *common.Config) (interfaces.IGenerator, error) {
	if config.Claude.APIKey == "" {
		return nil, fmt.Errorf("claude API key not configured")
	}

	timeout, err := time.ParseDuration(config.Claude.Timeout)
	if err != nil {
		timeout = 2 * time.Minute
	}

	return &claudeGenerator{
		client:      anthropic.NewClient(option.WithAPIKey(config.Claude.APIKey)),
		model:       config.Claude.Model,
		maxTokens:   config.Claude.MaxTokens,
		temperature: config.Claude.Temperature,
		timeout:     timeout,
		logger:      common.GetLogger(),
	}, nil
}

func (g *claudeGenerator) Name() string {
	return "claude"
}

// Generate runs a single bounded completion; no retry on failure
func (g *claudeGenerator) Generate(ctx context.Context, instruction string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: int64(g.maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(instruction)),
		},
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Temperature: anthropic.Float(float64(g.temperature)),
	}

	start := time.Now()
	message, err := g.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("claude generation failed: %w", err)
	}

	var text string
	for _, block := range message.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("claude returned an empty response")
	}

	g.logger.Debug().
		Str("model", g.model).
		Str("duration", time.Since(start).String()).
		Msg("Generation completed")

	return text, nil
}
