package reactagent

import (
	"context"
)

// Tool represents a single capability the model can invoke through an action.
//
// Responsibility design:
//   - Tool: validate its own arguments, execute, return a plain string result
//   - toolchain.Registry: parse the action text, look up the tool, normalise errors
//
// Arguments arrive exactly as the action parser produced them: ordered, unquoted strings.
// A tool that needs fewer arguments than it received ignores the rest.
type Tool interface {
	// Name returns the identifier used in actions. It is the registry key.
	Name() string

	// Description returns a human-readable description shown in the system prompt.
	Description() string

	// Call executes the tool. Failures should be reported as *ExecutionError.
	Call(ctx context.Context, args []string) (string, error)
}

// ToolFunc is a convenience type for creating tools from functions.
type ToolFunc struct {
	name        string
	description string
	fn          func(ctx context.Context, args []string) (string, error)
}

// NewToolFunc creates a new ToolFunc.
func NewToolFunc(
	name, description string,
	fn func(ctx context.Context, args []string) (string, error),
) *ToolFunc {
	return &ToolFunc{
		name:        name,
		description: description,
		fn:          fn,
	}
}

// Name returns the tool's identifier.
func (t *ToolFunc) Name() string {
	return t.name
}

// Description returns a human-readable description for the LLM.
func (t *ToolFunc) Description() string {
	return t.description
}

// Call executes the tool function with the given arguments.
func (t *ToolFunc) Call(ctx context.Context, args []string) (string, error) {
	return t.fn(ctx, args)
}

// Compile-time check that ToolFunc implements Tool.
var _ Tool = (*ToolFunc)(nil)
