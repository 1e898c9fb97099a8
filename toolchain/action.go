package toolchain

import (
	"regexp"
	"strings"

	"github.com/rodrigo1987mza/reactagent"
)

var (
	// callPattern matches the whole action as identifier(blob); the blob may span lines.
	callPattern = regexp.MustCompile(`(?s)^(\w+)\((.*)\)$`)

	// barePattern matches the zero-argument form without parentheses.
	barePattern = regexp.MustCompile(`^\w+$`)
)

// Action is a parsed tool invocation.
type Action struct {
	Tool string
	Args []string
}

// ParseAction turns the text of an <action> tag into a tool name and its arguments.
// Returns reactagent.ErrInvalidActionFormat when neither grammar form matches.
func ParseAction(raw string) (*Action, error) {
	trimmed := strings.TrimSpace(raw)

	if match := callPattern.FindStringSubmatch(trimmed); match != nil {
		return &Action{
			Tool: match[1],
			Args: ParseArguments(match[2]),
		}, nil
	}

	if barePattern.MatchString(trimmed) {
		return &Action{
			Tool: trimmed,
			Args: []string{},
		}, nil
	}

	return nil, reactagent.ErrInvalidActionFormat
}

// ParseArguments splits an argument blob on unquoted commas.
//
// Quote characters (" or ') switch into quoted mode and are dropped from the output. Inside
// quotes only the same quote character closes the quote; everything else, commas included, is
// kept verbatim. Each comma-terminated argument is trimmed and kept even when empty; the final
// argument is kept only when it is non-empty after trimming.
func ParseArguments(blob string) []string {
	args := []string{}

	var current strings.Builder
	inQuotes := false
	var quoteChar rune

	for _, ch := range blob {
		if inQuotes {
			if ch == quoteChar {
				inQuotes = false
				continue
			}
			current.WriteRune(ch)
			continue
		}

		switch ch {
		case '"', '\'':
			inQuotes = true
			quoteChar = ch
		case ',':
			args = append(args, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}

	if last := strings.TrimSpace(current.String()); last != "" {
		args = append(args, last)
	}

	return args
}
