package models

import (
	"fmt"

	"github.com/tmc/langchaingo/llms/openai"
)

// DefaultOpenAIModel is used when OpenAIOptions.Model is empty.
const DefaultOpenAIModel = "gpt-4o"

// OpenAIOptions configures NewOpenAI.
type OpenAIOptions struct {
	// Token is the API key. Required.
	Token string

	// Model defaults to DefaultOpenAIModel.
	Model string

	// BaseURL points the client at an OpenAI-compatible endpoint. Empty uses the
	// provider default.
	BaseURL string

	// Temperature defaults to DefaultTemperature when zero.
	Temperature float64
}

// NewOpenAI creates a chat client backed by an OpenAI-compatible chat completions API.
//
// Additional openai.Option values are applied after the ones derived from opts, so they
// can override them (e.g. WithHTTPClient).
func NewOpenAI(opts OpenAIOptions, extra ...openai.Option) (*LCGClient, error) {
	if opts.Token == "" {
		return nil, fmt.Errorf("openai token is required")
	}
	model := opts.Model
	if model == "" {
		model = DefaultOpenAIModel
	}

	lcgOpts := []openai.Option{
		openai.WithToken(opts.Token),
		openai.WithModel(model),
	}
	if opts.BaseURL != "" {
		lcgOpts = append(lcgOpts, openai.WithBaseURL(opts.BaseURL))
	}
	lcgOpts = append(lcgOpts, extra...)

	llm, err := openai.New(lcgOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	client := NewLCGClient(llm).WithModelName(model)
	if opts.Temperature != 0 {
		client.WithTemperature(opts.Temperature)
	}
	return client, nil
}
