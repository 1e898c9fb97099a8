package reactagent

import (
	"context"
)

// Role identifies the author of a transcript message.
type Role string

const (
	// RoleSystem is the single instruction message placed first in every transcript.
	RoleSystem Role = "system"

	// RoleUser carries the question and every observation fed back by the environment.
	RoleUser Role = "user"

	// RoleAssistant carries the raw model responses.
	RoleAssistant Role = "assistant"
)

// Message is a single entry in the conversation transcript.
type Message struct {
	Role    Role   `yaml:"role" json:"role"`
	Content string `yaml:"content" json:"content"`
}

// ChatClient is the collaborator that talks to the LLM chat endpoint.
//
// Send receives the full ordered transcript and returns the next assistant message.
// Implementations must preserve message order and role values exactly as supplied.
// The agent treats any returned error as fatal for the current run.
type ChatClient interface {
	Send(ctx context.Context, messages []Message) (string, error)
}

// ChatClientFunc adapts a plain function into a ChatClient.
type ChatClientFunc func(ctx context.Context, messages []Message) (string, error)

// Send calls f(ctx, messages).
func (f ChatClientFunc) Send(ctx context.Context, messages []Message) (string, error) {
	return f(ctx, messages)
}

// Compile-time check that ChatClientFunc implements ChatClient.
var _ ChatClient = ChatClientFunc(nil)
