package reactagent

// Subscriber interfaces define type-safe event subscriptions.
//
// Implement any combination of these interfaces on a single struct to receive
// multiple event types. The events.Registry detects which interfaces your struct
// implements and calls the matching methods.
//
// # Example
//
//	type StepPrinter struct {
//	    out io.Writer
//	}
//
//	func (s *StepPrinter) OnStepAdded(event *StepAddedEvent) {
//	    fmt.Fprintf(s.out, "%s: %s\n", event.Step.Kind, event.Step.Content)
//	}
//
//	func (s *StepPrinter) OnRunningChanged(event *RunningChangedEvent) {
//	    fmt.Fprintf(s.out, "running=%v\n", event.Running)
//	}
//
//	registry := events.NewRegistry()
//	registry.Subscribe(&StepPrinter{out: os.Stdout})

// StepAddedSubscriber receives StepAddedEvent events.
type StepAddedSubscriber interface {
	OnStepAdded(event *StepAddedEvent)
}

// RunningChangedSubscriber receives RunningChangedEvent events.
type RunningChangedSubscriber interface {
	OnRunningChanged(event *RunningChangedEvent)
}

// ChatCallSubscriber receives ChatCallEvent events.
type ChatCallSubscriber interface {
	OnChatCall(event *ChatCallEvent)
}

// ToolCallSubscriber receives ToolCallEvent events.
type ToolCallSubscriber interface {
	OnToolCall(event *ToolCallEvent)
}

// EventPublisher is implemented by anything that can fan events out to subscribers.
// events.Registry is the standard implementation.
type EventPublisher interface {
	Dispatch(event Event)
}
