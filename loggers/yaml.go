// Package loggers provides event subscribers that log what happens during a run.
//
// [YAML] dumps every event in full as YAML blocks, for reading transcripts after the fact.
// [Slog] writes one structured record per event to an *slog.Logger.
//
// Both implement every subscriber interface, so a single Subscribe call wires them in:
//
//	registry := events.NewRegistry().
//	    Subscribe(loggers.NewSlog(logger)).
//	    Subscribe(loggers.NewYAML(file))
package loggers

import (
	"fmt"
	"io"
	"sync"

	"github.com/rodrigo1987mza/reactagent"
	"gopkg.in/yaml.v3"
)

const (
	heavyRule = "================================================================================"
	lightRule = "--------------------------------------------------------------------------------"
)

// YAML logs every event as YAML with block scalars for easy reading.
// Nothing is truncated; full model responses and tool results are written.
type YAML struct {
	mu    sync.Mutex
	out   io.Writer
	clock reactagent.TimeProvider
}

// NewYAML creates a YAML logger writing to w.
func NewYAML(w io.Writer) *YAML {
	return &YAML{out: w, clock: reactagent.NewDefaultTimeProvider()}
}

// WithTimeProvider sets the clock used for event header timestamps.
func (h *YAML) WithTimeProvider(tp reactagent.TimeProvider) *YAML {
	h.clock = tp
	return h
}

// logEvent logs an event header with timestamp.
func (h *YAML) logEvent(name string) {
	timestamp := h.clock.Format("2006-01-02 15:04:05.000")
	fmt.Fprintf(h.out, "\n>>> [%s]: %s\n", name, timestamp)
}

// log writes a line without any prefix.
func (h *YAML) log(format string, args ...any) {
	fmt.Fprintf(h.out, format+"\n", args...)
}

func (h *YAML) logYAML(v any) {
	data, err := yaml.Marshal(v)
	if err != nil {
		h.log("(failed to marshal: %v)", err)
		return
	}
	fmt.Fprint(h.out, string(data))
}

// OnRunningChanged logs run start and completion.
func (h *YAML) OnRunningChanged(e *reactagent.RunningChangedEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if e.Running {
		h.logEvent("RunStarted")
		h.log(heavyRule)
		h.log("RUN STARTED")
		h.log(heavyRule)
		h.logYAML(map[string]any{
			"run_id":   e.RunID,
			"question": e.Question,
		})
		return
	}

	h.logEvent("RunFinished")
	h.log(heavyRule)
	h.log("RUN FINISHED")
	h.log(heavyRule)
	data := map[string]any{"run_id": e.RunID}
	if e.Err != nil {
		data["error"] = e.Err.Error()
	} else {
		data["answer"] = e.Answer
	}
	h.logYAML(data)
}

// OnStepAdded logs a step.
func (h *YAML) OnStepAdded(e *reactagent.StepAddedEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.logEvent(fmt.Sprintf("Step %d: %s", e.Index, e.Step.Kind))
	h.logYAML(map[string]any{
		"id":      e.Step.ID.String(),
		"kind":    string(e.Step.Kind),
		"content": e.Step.Content,
	})
}

// OnChatCall logs a chat call with the full response.
func (h *YAML) OnChatCall(e *reactagent.ChatCallEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.logEvent(fmt.Sprintf("ChatCall %d", e.Iteration))
	h.log(lightRule)
	data := map[string]any{
		"messages": e.Messages,
		"duration": e.Duration.String(),
	}
	if e.Err != nil {
		data["error"] = e.Err.Error()
	} else {
		data["response"] = e.Response
	}
	h.logYAML(data)
}

// OnToolCall logs a tool dispatch.
func (h *YAML) OnToolCall(e *reactagent.ToolCallEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.logEvent(fmt.Sprintf("ToolCall %d: %s", e.Iteration, e.Tool))
	data := map[string]any{
		"action":   e.Action,
		"duration": e.Duration.String(),
	}
	if e.Tool != "" {
		data["tool"] = e.Tool
		data["args"] = e.Args
	}
	if e.Err != nil {
		data["error"] = e.Err.Error()
	} else {
		data["result"] = e.Result
	}
	h.logYAML(data)
}

var (
	_ reactagent.RunningChangedSubscriber = (*YAML)(nil)
	_ reactagent.StepAddedSubscriber      = (*YAML)(nil)
	_ reactagent.ChatCallSubscriber       = (*YAML)(nil)
	_ reactagent.ToolCallSubscriber       = (*YAML)(nil)
)
