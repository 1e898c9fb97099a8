package models

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rodrigo1987mza/reactagent"
	"github.com/tmc/langchaingo/llms"
)

// DefaultTemperature is the sampling temperature used when none is configured.
const DefaultTemperature = 0.7

// ErrNoChoices is returned when the provider answers without any choice.
var ErrNoChoices = errors.New("model returned no choices")

// Usage is a running total of token usage across calls.
type Usage struct {
	Calls        int
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// LCGClient wraps an llms.Model and implements reactagent.ChatClient.
// It maps transcript roles to langchaingo message types, sends the whole transcript, and
// returns the text of the first choice. Token usage is normalized across providers and
// accumulated.
//
// Example usage:
//
//	llm, _ := openai.New(openai.WithToken(apiKey))
//	client := models.NewLCGClient(llm).WithModelName("gpt-4o")
//	content, err := client.Send(ctx, transcript)
type LCGClient struct {
	model       llms.Model
	modelName   string
	temperature float64
	logger      *slog.Logger

	mu    sync.Mutex
	usage Usage
}

// NewLCGClient creates a new LCGClient wrapping the given llms.Model.
func NewLCGClient(model llms.Model) *LCGClient {
	return &LCGClient{
		model:       model,
		temperature: DefaultTemperature,
		logger:      slog.New(slog.DiscardHandler),
	}
}

// WithModelName sets the model name used in log records.
// Returns the client for chaining.
func (c *LCGClient) WithModelName(name string) *LCGClient {
	c.modelName = name
	return c
}

// WithTemperature sets the sampling temperature passed on every call.
func (c *LCGClient) WithTemperature(temperature float64) *LCGClient {
	c.temperature = temperature
	return c
}

// WithLogger sets the structured logger.
func (c *LCGClient) WithLogger(logger *slog.Logger) *LCGClient {
	c.logger = logger
	return c
}

// Unwrap returns the underlying llms.Model.
func (c *LCGClient) Unwrap() llms.Model {
	return c.model
}

// ModelName returns the configured model name.
func (c *LCGClient) ModelName() string {
	return c.modelName
}

// Usage returns the accumulated token usage.
func (c *LCGClient) Usage() Usage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.usage
}

// Send implements reactagent.ChatClient.
func (c *LCGClient) Send(ctx context.Context, messages []reactagent.Message) (string, error) {
	content, err := toMessageContent(messages)
	if err != nil {
		return "", err
	}

	start := time.Now()
	resp, err := c.model.GenerateContent(ctx, content, llms.WithTemperature(c.temperature))
	duration := time.Since(start)
	if err != nil {
		c.logger.Debug("model call failed", "model", c.modelName, "duration", duration, "error", err)
		return "", err
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}

	choice := resp.Choices[0]
	call := Usage{Calls: 1}
	if choice.GenerationInfo != nil {
		call.InputTokens = extractInputTokens(choice.GenerationInfo)
		call.OutputTokens = extractOutputTokens(choice.GenerationInfo)
		call.TotalTokens = extractTotalTokens(choice.GenerationInfo, call.InputTokens, call.OutputTokens)
	}
	c.addUsage(call)

	c.logger.Debug("model call",
		"model", c.modelName,
		"duration", duration,
		"input_tokens", call.InputTokens,
		"output_tokens", call.OutputTokens,
		"stop_reason", choice.StopReason,
	)
	return choice.Content, nil
}

func (c *LCGClient) addUsage(u Usage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.usage.Calls += u.Calls
	c.usage.InputTokens += u.InputTokens
	c.usage.OutputTokens += u.OutputTokens
	c.usage.TotalTokens += u.TotalTokens
}

// toMessageContent maps transcript messages to langchaingo messages.
func toMessageContent(messages []reactagent.Message) ([]llms.MessageContent, error) {
	out := make([]llms.MessageContent, 0, len(messages))
	for _, m := range messages {
		var role llms.ChatMessageType
		switch m.Role {
		case reactagent.RoleSystem:
			role = llms.ChatMessageTypeSystem
		case reactagent.RoleUser:
			role = llms.ChatMessageTypeHuman
		case reactagent.RoleAssistant:
			role = llms.ChatMessageTypeAI
		default:
			return nil, fmt.Errorf("unknown message role %q", m.Role)
		}
		out = append(out, llms.TextParts(role, m.Content))
	}
	return out, nil
}

// extractInputTokens extracts input/prompt token count from GenerationInfo.
// Handles different key names used by different providers.
func extractInputTokens(info map[string]any) int {
	// OpenAI / Ollama / Google (compat)
	if v := getIntFromMap(info, "PromptTokens"); v > 0 {
		return v
	}
	// Anthropic
	if v := getIntFromMap(info, "InputTokens"); v > 0 {
		return v
	}
	// Google / Bedrock
	return getIntFromMap(info, "input_tokens")
}

// extractOutputTokens extracts output/completion token count from GenerationInfo.
func extractOutputTokens(info map[string]any) int {
	if v := getIntFromMap(info, "CompletionTokens"); v > 0 {
		return v
	}
	if v := getIntFromMap(info, "OutputTokens"); v > 0 {
		return v
	}
	return getIntFromMap(info, "output_tokens")
}

// extractTotalTokens extracts total token count or computes it.
func extractTotalTokens(info map[string]any, input, output int) int {
	if v := getIntFromMap(info, "TotalTokens"); v > 0 {
		return v
	}
	if v := getIntFromMap(info, "total_tokens"); v > 0 {
		return v
	}
	return input + output
}

// getIntFromMap extracts an int value from a map, handling various numeric types.
func getIntFromMap(m map[string]any, key string) int {
	switch n := m[key].(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		return int(n)
	case float32:
		return int(n)
	default:
		return 0
	}
}

// Compile-time check that LCGClient implements reactagent.ChatClient.
var _ reactagent.ChatClient = (*LCGClient)(nil)
