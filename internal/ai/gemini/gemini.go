package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// Client implements the ai.Generator interface for Google's Gemini via the
// langchain googleai bindings.
type Client struct {
	llm   llms.Model
	model string
}

// Config contains configuration for the Gemini client
type Config struct {
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
}

// New creates a configured Gemini client. Construction failure is a
// configuration error and should be fatal at the caller.
func New(ctx context.Context, config Config) (*Client, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	if config.Model == "" {
		config.Model = "gemini-1.5-flash"
	}

	maxTokens := config.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 8192
	}

	opts := []googleai.Option{
		googleai.WithAPIKey(config.APIKey),
		googleai.WithDefaultModel(config.Model),
		googleai.WithDefaultMaxTokens(maxTokens),
	}
	if config.Temperature > 0 {
		opts = append(opts, googleai.WithDefaultTemperature(config.Temperature))
	}

	llm, err := googleai.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to configure Gemini: %w", err)
	}

	return &Client{llm: llm, model: config.Model}, nil
}

// Generate sends the prompt and returns the extracted text, or "" when the
// service errored, blocked the content, or produced nothing usable. Errors
// never propagate past this method.
func (c *Client) Generate(ctx context.Context, prompt string) string {
	resp, err := c.llm.GenerateContent(ctx, []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	})
	if err != nil {
		log.Error().Err(err).Str("model", c.model).Msg("Gemini API call failed")
		return ""
	}

	if len(resp.Choices) == 0 {
		log.Error().Str("model", c.model).Msg("Gemini returned no candidates")
		return ""
	}

	// Prefer the first candidate's content; a blocked or filtered response
	// surfaces as an empty first choice, so fall back to concatenating every
	// candidate's text before giving up.
	text := strings.TrimSpace(resp.Choices[0].Content)
	if text == "" {
		log.Warn().Msg("First candidate is empty (possibly due to content blocking); checking remaining candidates")
		var b strings.Builder
		for _, choice := range resp.Choices {
			b.WriteString(choice.Content)
		}
		text = strings.TrimSpace(b.String())
	}

	if text == "" {
		first := resp.Choices[0]
		log.Error().
			Str("model", c.model).
			Str("stop_reason", first.StopReason).
			Interface("generation_info", first.GenerationInfo).
			Msg("Could not extract text from Gemini response")
		return ""
	}

	return text
}

// Name returns the provider's name
func (c *Client) Name() string {
	return "gemini"
}
