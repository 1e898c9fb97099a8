package journal

import (
	"context"

	"github.com/rodrigo1987mza/reactagent"
)

// OnRunningChanged records run start and finish. Write failures are logged, never returned,
// so a broken journal cannot stop a run.
func (s *Store) OnRunningChanged(e *reactagent.RunningChangedEvent) {
	ctx := context.Background()
	if e.Running {
		if err := s.StartRun(ctx, e.RunID, e.Question, e.Time); err != nil {
			s.logger.Warn("journal write failed", "run_id", e.RunID, "error", err)
		}
		return
	}
	if err := s.FinishRun(ctx, e.RunID, e.Answer, e.Err, e.Time); err != nil {
		s.logger.Warn("journal write failed", "run_id", e.RunID, "error", err)
	}
}

// OnStepAdded records a step.
func (s *Store) OnStepAdded(e *reactagent.StepAddedEvent) {
	if err := s.AddStep(context.Background(), e.RunID, e.Index, e.Step); err != nil {
		s.logger.Warn("journal write failed", "run_id", e.RunID, "index", e.Index, "error", err)
	}
}

var (
	_ reactagent.RunningChangedSubscriber = (*Store)(nil)
	_ reactagent.StepAddedSubscriber      = (*Store)(nil)
)
