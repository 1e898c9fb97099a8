package loggers

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rodrigo1987mza/reactagent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2025, 7, 26, 10, 0, 0, 0, time.UTC)

func sampleEvents() []reactagent.Event {
	return []reactagent.Event{
		&reactagent.RunningChangedEvent{RunID: "run-1", Question: "What is 6*7?", Running: true},
		&reactagent.ChatCallEvent{
			RunID:     "run-1",
			Iteration: 1,
			Messages:  2,
			Response:  "<thought>multiply</thought>\n<action>calculate(\"6*7\")</action>",
			Duration:  150 * time.Millisecond,
		},
		&reactagent.StepAddedEvent{
			RunID: "run-1",
			Index: 0,
			Step:  reactagent.NewStep(reactagent.StepThought, "multiply", fixedTime),
		},
		&reactagent.ToolCallEvent{
			RunID:     "run-1",
			Iteration: 1,
			Action:    `calculate("6*7")`,
			Tool:      "calculate",
			Args:      []string{"6*7"},
			Result:    "42",
		},
		&reactagent.ToolCallEvent{
			RunID:     "run-1",
			Iteration: 2,
			Action:    "??",
			Err:       reactagent.ErrInvalidActionFormat,
		},
		&reactagent.ChatCallEvent{RunID: "run-1", Iteration: 3, Err: errors.New("timeout")},
		&reactagent.RunningChangedEvent{RunID: "run-1", Running: false, Answer: "42"},
		&reactagent.RunningChangedEvent{RunID: "run-2", Running: false, Err: reactagent.ErrNoActionFound},
	}
}

type subscriber interface {
	reactagent.RunningChangedSubscriber
	reactagent.StepAddedSubscriber
	reactagent.ChatCallSubscriber
	reactagent.ToolCallSubscriber
}

func dispatch(s subscriber, events []reactagent.Event) {
	for _, e := range events {
		switch ev := e.(type) {
		case *reactagent.RunningChangedEvent:
			s.OnRunningChanged(ev)
		case *reactagent.StepAddedEvent:
			s.OnStepAdded(ev)
		case *reactagent.ChatCallEvent:
			s.OnChatCall(ev)
		case *reactagent.ToolCallEvent:
			s.OnToolCall(ev)
		}
	}
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	logger := NewYAML(&buf).WithTimeProvider(reactagent.NewMockTimeProvider(fixedTime))

	dispatch(logger, sampleEvents())
	out := buf.String()

	expectedFragments := []string{
		">>> [RunStarted]: 2025-07-26 10:00:00.000",
		"RUN STARTED",
		"run_id: run-1",
		">>> [ChatCall 1]",
		"response: |-",
		"<action>calculate(\"6*7\")</action>",
		"duration: 150ms",
		">>> [Step 0: thought]",
		"content: multiply",
		">>> [ToolCall 1: calculate]",
		"result: \"42\"",
		"error: invalid action format",
		"error: timeout",
		"RUN FINISHED",
		"answer: \"42\"",
		"error: no action found in model response",
	}
	for _, fragment := range expectedFragments {
		assert.Contains(t, out, fragment)
	}

	// The failed tool call never parsed, so no tool or args are written for it.
	failed := out[strings.Index(out, ">>> [ToolCall 2: ]"):]
	failed = failed[:strings.Index(failed, ">>> [ChatCall 3]")]
	assert.NotContains(t, failed, "args:")
}

func TestSlog(t *testing.T) {
	tests := []struct {
		name        string
		level       slog.Level
		contains    []string
		notContains []string
	}{
		{
			name:  "info",
			level: slog.LevelInfo,
			contains: []string{
				`msg="run started" run_id=run-1`,
				`msg="tool call failed"`,
				`msg="chat call failed"`,
				`msg="run finished"`,
				`msg="run failed" run_id=run-2 error="no action found in model response"`,
			},
			notContains: []string{`msg=step`, `msg="chat call" `, `msg="chat response"`},
		},
		{
			name:        "debug",
			level:       slog.LevelDebug,
			contains:    []string{`msg=step`, "kind=thought", `msg="tool call" `, "tool=calculate"},
			notContains: []string{`msg="chat response"`},
		},
		{
			name:     "trace",
			level:    levelTrace,
			contains: []string{`msg="chat response"`},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: tc.level}))
			dispatch(NewSlog(logger), sampleEvents())

			out := buf.String()
			for _, s := range tc.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tc.notContains {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestSlog_DebugChatCall(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	NewSlog(logger).OnChatCall(&reactagent.ChatCallEvent{RunID: "r", Iteration: 1, Messages: 4, Response: "abc"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "messages=4")
	assert.Contains(t, lines[0], "response_len=3")
}
