package journal

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/rodrigo1987mza/reactagent"
	"github.com/rodrigo1987mza/reactagent/agents/react"
	"github.com/rodrigo1987mza/reactagent/events"
	"github.com/rodrigo1987mza/reactagent/internal/tt"
	"github.com/rodrigo1987mza/reactagent/toolchain"
	"github.com/rodrigo1987mza/reactagent/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 7, 26, 10, 0, 0, 0, time.UTC)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_RunLifecycle(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.StartRun(ctx, "run-1", "What time is it?", base))

	steps := []reactagent.Step{
		reactagent.NewStep(reactagent.StepThought, "check the clock", base.Add(time.Second)),
		reactagent.NewStep(reactagent.StepAction, "get_current_time", base.Add(2*time.Second)),
		reactagent.NewStep(reactagent.StepObservation, "Jul 26, 2025 at 10:00:02 AM", base.Add(3*time.Second)),
		reactagent.NewStep(reactagent.StepFinalAnswer, "10 AM", base.Add(4*time.Second)),
	}
	for i, step := range steps {
		require.NoError(t, s.AddStep(ctx, "run-1", i, step))
	}

	run, err := s.Run(ctx, "run-1")
	require.NoError(t, err)
	assert.True(t, run.FinishedAt.IsZero(), "run is still in progress")
	assert.Equal(t, 4, run.Steps)

	require.NoError(t, s.FinishRun(ctx, "run-1", "10 AM", nil, base.Add(5*time.Second)))

	run, err = s.Run(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, Run{
		ID:         "run-1",
		Question:   "What time is it?",
		StartedAt:  base,
		FinishedAt: base.Add(5 * time.Second),
		Outcome:    OutcomeAnswered,
		Answer:     "10 AM",
		Steps:      4,
	}, *run)

	got, err := s.Steps(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, steps, got)
}

func TestStore_FailedRun(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.StartRun(ctx, "run-1", "q", base))
	require.NoError(t, s.FinishRun(ctx, "run-1", "ignored", reactagent.ErrNoActionFound, base))

	run, err := s.Run(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, OutcomeFailed, run.Outcome)
	assert.Equal(t, "no action found in model response", run.Error)
	assert.Empty(t, run.Answer)
}

func TestStore_Errors(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	_, err := s.Run(ctx, "missing")
	assert.ErrorIs(t, err, ErrRunNotFound)

	err = s.FinishRun(ctx, "missing", "", nil, base)
	assert.Error(t, err)

	require.NoError(t, s.StartRun(ctx, "run-1", "q", base))
	assert.Error(t, s.StartRun(ctx, "run-1", "q", base), "duplicate run id")

	step := reactagent.NewStep(reactagent.StepThought, "t", base)
	require.NoError(t, s.AddStep(ctx, "run-1", 0, step))
	assert.Error(t, s.AddStep(ctx, "run-1", 0, reactagent.NewStep(reactagent.StepThought, "t", base)),
		"duplicate index")
	assert.Error(t, s.AddStep(ctx, "no-such-run", 0, reactagent.NewStep(reactagent.StepThought, "t", base)),
		"unknown run")

	steps, err := s.Steps(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, steps)
}

func TestStore_Runs(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, s.StartRun(ctx, id, "q-"+id, base.Add(time.Duration(i)*time.Minute)))
	}

	tests := []struct {
		name     string
		limit    int
		expected []string
	}{
		{name: "all", limit: 0, expected: []string{"c", "b", "a"}},
		{name: "limited", limit: 2, expected: []string{"c", "b"}},
		{name: "limit larger than count", limit: 10, expected: []string{"c", "b", "a"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			runs, err := s.Runs(ctx, tc.limit)
			require.NoError(t, err)
			ids := make([]string, 0, len(runs))
			for _, r := range runs {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tc.expected, ids)
		})
	}
}

func TestStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.StartRun(ctx, "run-1", "q", base))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	runs, err := s.Runs(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "run-1", runs[0].ID)
}

func TestStore_RecordsAgentRun(t *testing.T) {
	s := testStore(t)
	clock := reactagent.NewMockTimeProvider(base)

	registry, err := toolchain.NewRegistry(tools.BuiltinsWithClock(t.TempDir(), clock)...)
	require.NoError(t, err)
	client := tt.NewScriptedChatClient(
		"<thought>T</thought><action>get_current_time()</action>",
		"<thought>T2</thought><final_answer>Done</final_answer>",
	)
	agent := react.NewAgent(client, registry).
		WithEvents(events.NewRegistry().Subscribe(s)).
		WithTimeProvider(clock)

	answer, err := agent.Run(context.Background(), "What time is it?")
	require.NoError(t, err)
	assert.Equal(t, "Done", answer)

	run, err := s.Run(context.Background(), agent.RunID())
	require.NoError(t, err)
	assert.Equal(t, OutcomeAnswered, run.Outcome)
	assert.Equal(t, "Done", run.Answer)
	assert.Equal(t, "What time is it?", run.Question)

	stored, err := s.Steps(context.Background(), agent.RunID())
	require.NoError(t, err)
	assert.Equal(t, agent.Steps(), stored)
}

func TestStore_SubscriberLogsWriteFailures(t *testing.T) {
	s := testStore(t)
	var buf bytes.Buffer
	s.WithLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	// Finishing a run that was never started cannot be written.
	s.OnRunningChanged(&reactagent.RunningChangedEvent{
		RunID:   "ghost",
		Running: false,
		Err:     errors.New("boom"),
		Time:    base,
	})
	assert.Contains(t, buf.String(), "journal write failed")
	assert.Contains(t, buf.String(), "run_id=ghost")
}
