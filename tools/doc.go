// Package tools provides the built-in agent tools: file access inside a scratch directory,
// the current time, and arithmetic evaluation.
//
// All file tools resolve paths relative to one scratch root that is injected at construction.
// Paths are joined onto the root without further containment checks, so ".." segments can reach
// outside it. The scratch root is shared state with no locking: do not point several concurrently
// running agents at the same directory.
package tools

import (
	"github.com/rodrigo1987mza/reactagent"
)

// Builtins returns read_file, write_to_file, get_current_time and calculate, in that order,
// using the system clock.
func Builtins(scratchRoot string) []reactagent.Tool {
	return BuiltinsWithClock(scratchRoot, reactagent.NewDefaultTimeProvider())
}

// BuiltinsWithClock is like Builtins but reads the time from tp.
func BuiltinsWithClock(scratchRoot string, tp reactagent.TimeProvider) []reactagent.Tool {
	return []reactagent.Tool{
		NewReadFile(scratchRoot),
		NewWriteFile(scratchRoot),
		NewCurrentTime(tp),
		NewCalculate(),
	}
}
