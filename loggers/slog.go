package loggers

import (
	"context"
	"log/slog"

	"github.com/rodrigo1987mza/reactagent"
)

// levelTrace matches config.LevelTrace. Full responses are logged at this level only.
const levelTrace = slog.Level(-8)

// Slog writes one structured record per event.
//
// Levels: run lifecycle and tool failures at Info/Warn, steps and calls at Debug, full chat
// responses at Trace.
type Slog struct {
	logger *slog.Logger
}

// NewSlog creates a Slog subscriber.
func NewSlog(logger *slog.Logger) *Slog {
	return &Slog{logger: logger}
}

// OnRunningChanged logs run start and completion.
func (s *Slog) OnRunningChanged(e *reactagent.RunningChangedEvent) {
	if e.Running {
		s.logger.Info("run started", "run_id", e.RunID, "question", e.Question)
		return
	}
	if e.Err != nil {
		s.logger.Warn("run failed", "run_id", e.RunID, "error", e.Err)
		return
	}
	s.logger.Info("run finished", "run_id", e.RunID, "answer_len", len(e.Answer))
}

// OnStepAdded logs a step.
func (s *Slog) OnStepAdded(e *reactagent.StepAddedEvent) {
	s.logger.Debug("step",
		"run_id", e.RunID,
		"index", e.Index,
		"kind", string(e.Step.Kind),
		"content", e.Step.Content,
	)
}

// OnChatCall logs a chat call.
func (s *Slog) OnChatCall(e *reactagent.ChatCallEvent) {
	if e.Err != nil {
		s.logger.Warn("chat call failed",
			"run_id", e.RunID,
			"iteration", e.Iteration,
			"duration", e.Duration,
			"error", e.Err,
		)
		return
	}
	s.logger.Debug("chat call",
		"run_id", e.RunID,
		"iteration", e.Iteration,
		"messages", e.Messages,
		"duration", e.Duration,
		"response_len", len(e.Response),
	)
	s.logger.Log(context.Background(), levelTrace, "chat response",
		"run_id", e.RunID,
		"iteration", e.Iteration,
		"response", e.Response,
	)
}

// OnToolCall logs a tool dispatch.
func (s *Slog) OnToolCall(e *reactagent.ToolCallEvent) {
	if e.Err != nil {
		s.logger.Info("tool call failed",
			"run_id", e.RunID,
			"iteration", e.Iteration,
			"action", e.Action,
			"error", e.Err,
		)
		return
	}
	s.logger.Debug("tool call",
		"run_id", e.RunID,
		"iteration", e.Iteration,
		"tool", e.Tool,
		"args", e.Args,
		"duration", e.Duration,
	)
}

var (
	_ reactagent.RunningChangedSubscriber = (*Slog)(nil)
	_ reactagent.StepAddedSubscriber      = (*Slog)(nil)
	_ reactagent.ChatCallSubscriber       = (*Slog)(nil)
	_ reactagent.ToolCallSubscriber       = (*Slog)(nil)
)
