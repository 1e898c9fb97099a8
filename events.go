package reactagent

import "time"

// -----------------------------------------------------------------------------
// Event Interface
// -----------------------------------------------------------------------------

// Event is a marker interface for all events published by the agent loop.
type Event interface {
	event()
}

// -----------------------------------------------------------------------------
// Run Events
// -----------------------------------------------------------------------------

// RunningChangedEvent is published when a run starts (Running=true) and when it reaches a
// terminal state (Running=false), regardless of outcome.
type RunningChangedEvent struct {
	// RunID identifies the run. It is stable across all events of one run.
	RunID string

	// Question is the user input the run was started with.
	Question string

	// Running is the new value of the running flag.
	Running bool

	// Answer is the final answer. Only set when Running is false and the run succeeded.
	Answer string

	// Err is the fatal error. Only set when Running is false and the run failed.
	Err error

	// Time is when the transition happened.
	Time time.Time
}

func (*RunningChangedEvent) event() {}

// StepAddedEvent is published every time a Step is appended to the run history.
type StepAddedEvent struct {
	RunID string

	// Index is the zero-based position of the step in the run history.
	Index int

	Step Step
}

func (*StepAddedEvent) event() {}

// -----------------------------------------------------------------------------
// Call Events
// -----------------------------------------------------------------------------

// ChatCallEvent is published after each chat client call, successful or not.
type ChatCallEvent struct {
	RunID string

	// Iteration is the 1-indexed loop iteration.
	Iteration int

	// Messages is the transcript length sent to the client.
	Messages int

	// Response is the assistant content. Empty on failure.
	Response string

	Duration time.Duration
	Err      error
}

func (*ChatCallEvent) event() {}

// ToolCallEvent is published after each action dispatch, including parse failures.
type ToolCallEvent struct {
	RunID     string
	Iteration int

	// Action is the raw action text as extracted from the response.
	Action string

	// Tool and Args are empty when the action failed to parse.
	Tool string
	Args []string

	Result   string
	Duration time.Duration
	Err      error
}

func (*ToolCallEvent) event() {}
