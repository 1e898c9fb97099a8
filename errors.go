package reactagent

import (
	"errors"
	"fmt"
)

var (
	// ErrNoActionFound is returned when a model response contains neither an action nor a
	// final answer. It ends the run.
	ErrNoActionFound = errors.New("no action found in model response")

	// ErrInvalidActionFormat is returned when action text matches neither `name` nor
	// `name(args...)`. The run continues with an error observation.
	ErrInvalidActionFormat = errors.New("invalid action format")

	// ErrMaxIterationsExceeded is returned when a configured iteration cap is reached.
	ErrMaxIterationsExceeded = errors.New("maximum iterations exceeded")

	// ErrRunInProgress is returned when Run is called while another run is active.
	ErrRunInProgress = errors.New("agent run already in progress")
)

// ToolNotFoundError is returned when an action names a tool that is not registered.
type ToolNotFoundError struct {
	Name string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("tool '%s' not found", e.Name)
}

// ExecutionError is returned when a tool's precondition fails or its underlying operation
// fails (I/O failure, bad expression, missing arguments).
type ExecutionError struct {
	Message string
	Err     error
}

// NewExecutionError creates an ExecutionError with a formatted message.
func NewExecutionError(format string, args ...any) *ExecutionError {
	return &ExecutionError{Message: fmt.Sprintf(format, args...)}
}

// WrapExecutionError creates an ExecutionError whose message ends with err's text.
func WrapExecutionError(err error, message string) *ExecutionError {
	return &ExecutionError{Message: message + ": " + err.Error(), Err: err}
}

func (e *ExecutionError) Error() string {
	return "execution error: " + e.Message
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// ChatClientError wraps a failure of the chat client. It ends the run.
type ChatClientError struct {
	Err error
}

func (e *ChatClientError) Error() string {
	return fmt.Sprintf("chat client: %v", e.Err)
}

func (e *ChatClientError) Unwrap() error {
	return e.Err
}
