package toolchain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rodrigo1987mza/reactagent"
)

var (
	// ErrDuplicateTool is returned when two tools share a name.
	ErrDuplicateTool = errors.New("duplicate tool name")

	// ErrEmptyToolName is returned when a tool has an empty name.
	ErrEmptyToolName = errors.New("tool name is empty")
)

// Registry is a fixed mapping from tool name to Tool.
//
// It is populated once by NewRegistry and is immutable afterwards, so it is safe for concurrent
// lookups. Registration order is preserved and used when describing tools to the model.
type Registry struct {
	tools   []reactagent.Tool
	toolMap map[string]reactagent.Tool
}

// NewRegistry creates a Registry holding the given tools.
func NewRegistry(tools ...reactagent.Tool) (*Registry, error) {
	r := &Registry{
		tools:   make([]reactagent.Tool, 0, len(tools)),
		toolMap: make(map[string]reactagent.Tool, len(tools)),
	}

	for _, tool := range tools {
		name := tool.Name()
		if name == "" {
			return nil, ErrEmptyToolName
		}
		if _, exists := r.toolMap[name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTool, name)
		}
		r.tools = append(r.tools, tool)
		r.toolMap[name] = tool
	}

	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on error.
// Use this for registries defined at init time.
func MustNewRegistry(tools ...reactagent.Tool) *Registry {
	r, err := NewRegistry(tools...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the tool registered under name.
func (r *Registry) Lookup(name string) (reactagent.Tool, bool) {
	tool, ok := r.toolMap[name]
	return tool, ok
}

// Tools returns the registered tools in registration order.
func (r *Registry) Tools() []reactagent.Tool {
	out := make([]reactagent.Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.tools)
}

// Describe returns one "- name: description" line per tool, in registration order.
func (r *Registry) Describe() string {
	lines := make([]string, 0, len(r.tools))
	for _, tool := range r.tools {
		lines = append(lines, fmt.Sprintf("- %s: %s", tool.Name(), tool.Description()))
	}
	return strings.Join(lines, "\n")
}

// Dispatch calls the named tool with args.
//
// Returns *reactagent.ToolNotFoundError when the tool is not registered. Any other tool failure
// is returned as *reactagent.ExecutionError.
func (r *Registry) Dispatch(ctx context.Context, name string, args []string) (string, error) {
	tool, ok := r.toolMap[name]
	if !ok {
		return "", &reactagent.ToolNotFoundError{Name: name}
	}

	result, err := tool.Call(ctx, args)
	if err != nil {
		var execErr *reactagent.ExecutionError
		if errors.As(err, &execErr) {
			return "", execErr
		}
		return "", &reactagent.ExecutionError{Message: err.Error(), Err: err}
	}

	return result, nil
}

// Execute parses raw action text and dispatches it.
// The parsed action is returned even when dispatch fails; it is nil only on a parse failure.
func (r *Registry) Execute(ctx context.Context, raw string) (*Action, string, error) {
	action, err := ParseAction(raw)
	if err != nil {
		return nil, "", err
	}

	result, err := r.Dispatch(ctx, action.Tool, action.Args)
	return action, result, err
}
