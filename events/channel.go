package events

import (
	"github.com/rodrigo1987mza/reactagent"
	"github.com/rodrigo1987mza/reactagent/internal/buffer"
)

// Channel is a subscriber that forwards every event into a channel.
// Sends never block; events queue up until the reader catches up.
type Channel struct {
	buf *buffer.Unbounded[reactagent.Event]
}

// NewChannel creates a Channel ready to be subscribed.
func NewChannel() *Channel {
	return &Channel{buf: buffer.NewUnbounded[reactagent.Event]()}
}

// Events returns the receive side. It is closed after Close once pending events are drained.
func (c *Channel) Events() <-chan reactagent.Event {
	return c.buf.Receive()
}

// Close stops accepting events. Safe to call multiple times.
func (c *Channel) Close() {
	c.buf.Close()
}

func (c *Channel) OnStepAdded(e *reactagent.StepAddedEvent)           { c.buf.Send(e) }
func (c *Channel) OnRunningChanged(e *reactagent.RunningChangedEvent) { c.buf.Send(e) }
func (c *Channel) OnChatCall(e *reactagent.ChatCallEvent)             { c.buf.Send(e) }
func (c *Channel) OnToolCall(e *reactagent.ToolCallEvent)             { c.buf.Send(e) }

// Compile-time checks that Channel receives every event type.
var (
	_ reactagent.StepAddedSubscriber      = (*Channel)(nil)
	_ reactagent.RunningChangedSubscriber = (*Channel)(nil)
	_ reactagent.ChatCallSubscriber       = (*Channel)(nil)
	_ reactagent.ToolCallSubscriber       = (*Channel)(nil)
)
