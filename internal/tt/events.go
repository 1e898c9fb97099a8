package tt

import (
	"sync"

	"github.com/rodrigo1987mza/reactagent"
)

// Recorder subscribes to every event type and keeps them in arrival order.
type Recorder struct {
	mu     sync.Mutex
	events []reactagent.Event
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(e reactagent.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *Recorder) OnStepAdded(e *reactagent.StepAddedEvent)           { r.record(e) }
func (r *Recorder) OnRunningChanged(e *reactagent.RunningChangedEvent) { r.record(e) }
func (r *Recorder) OnChatCall(e *reactagent.ChatCallEvent)             { r.record(e) }
func (r *Recorder) OnToolCall(e *reactagent.ToolCallEvent)             { r.record(e) }

// Events returns a copy of all recorded events.
func (r *Recorder) Events() []reactagent.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]reactagent.Event, len(r.events))
	copy(out, r.events)
	return out
}

// Steps returns the steps from recorded StepAddedEvents, in order.
func (r *Recorder) Steps() []reactagent.Step {
	var steps []reactagent.Step
	for _, e := range r.Events() {
		if added, ok := e.(*reactagent.StepAddedEvent); ok {
			steps = append(steps, added.Step)
		}
	}
	return steps
}

// RunningChanges returns the Running values of recorded RunningChangedEvents, in order.
func (r *Recorder) RunningChanges() []bool {
	var changes []bool
	for _, e := range r.Events() {
		if changed, ok := e.(*reactagent.RunningChangedEvent); ok {
			changes = append(changes, changed.Running)
		}
	}
	return changes
}

// ToolCalls returns the recorded ToolCallEvents, in order.
func (r *Recorder) ToolCalls() []*reactagent.ToolCallEvent {
	var calls []*reactagent.ToolCallEvent
	for _, e := range r.Events() {
		if call, ok := e.(*reactagent.ToolCallEvent); ok {
			calls = append(calls, call)
		}
	}
	return calls
}
