// Package tt provides test helpers shared by the reactagent packages.
package tt

import (
	"context"
	"sync"

	"github.com/rodrigo1987mza/reactagent"
)

// -----------------------------------------------------------------------------
// ScriptedChatClient - implements reactagent.ChatClient from a queue
// -----------------------------------------------------------------------------

// ScriptedChatClient replies with queued responses and errors, in order.
// Once the queue is exhausted it returns DefaultResponse.
type ScriptedChatClient struct {
	mu        sync.Mutex
	responses []string
	errors    []error
	callCount int

	// DefaultResponse is returned once the queue runs out.
	DefaultResponse string

	// CapturedMessages stores the transcript passed to each Send call.
	CapturedMessages [][]reactagent.Message

	// OnSend, when set, runs at the start of every Send with the 0-based call index.
	OnSend func(ctx context.Context, call int)
}

// NewScriptedChatClient creates a client that answers with responses in order.
func NewScriptedChatClient(responses ...string) *ScriptedChatClient {
	return &ScriptedChatClient{
		responses:       responses,
		DefaultResponse: "<thought>done</thought><final_answer>done</final_answer>",
	}
}

// AddResponse queues a response.
func (c *ScriptedChatClient) AddResponse(content string) *ScriptedChatClient {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.responses = append(c.responses, content)
	return c
}

// AddError queues an error for the next unanswered call.
func (c *ScriptedChatClient) AddError(err error) *ScriptedChatClient {
	c.mu.Lock()
	defer c.mu.Unlock()
	for len(c.errors) < len(c.responses) {
		c.errors = append(c.errors, nil)
	}
	c.errors = append(c.errors, err)
	c.responses = append(c.responses, "")
	return c
}

// CallCount returns the number of Send calls so far.
func (c *ScriptedChatClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.callCount
}

// Send implements reactagent.ChatClient.
func (c *ScriptedChatClient) Send(ctx context.Context, messages []reactagent.Message) (string, error) {
	c.mu.Lock()
	idx := c.callCount
	c.callCount++
	captured := make([]reactagent.Message, len(messages))
	copy(captured, messages)
	c.CapturedMessages = append(c.CapturedMessages, captured)
	onSend := c.OnSend
	c.mu.Unlock()

	if onSend != nil {
		onSend(ctx, idx)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if idx < len(c.errors) && c.errors[idx] != nil {
		return "", c.errors[idx]
	}
	if idx < len(c.responses) {
		return c.responses[idx], nil
	}
	return c.DefaultResponse, nil
}

var _ reactagent.ChatClient = (*ScriptedChatClient)(nil)
