package events

import (
	"sync"

	"github.com/rodrigo1987mza/reactagent"
)

// Registry manages event subscribers and dispatches events to them.
//
// Subscribers can implement any combination of subscriber interfaces - they only
// receive events for the interfaces they implement.
//
// # Thread Safety
//
// Subscribe and Dispatch may be called from different goroutines. Subscribers added while a
// dispatch is in flight receive events starting with the next dispatch.
type Registry struct {
	mu          sync.RWMutex
	subscribers []any
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		subscribers: make([]any, 0),
	}
}

// Subscribe adds a subscriber to the registry.
// Subscribers are called in the order they are registered.
func (r *Registry) Subscribe(subscriber any) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subscribers = append(r.subscribers, subscriber)
	return r
}

// Dispatch sends an event to all matching subscribers.
func (r *Registry) Dispatch(event reactagent.Event) {
	r.mu.RLock()
	subscribers := r.subscribers
	r.mu.RUnlock()

	switch e := event.(type) {
	case *reactagent.StepAddedEvent:
		for _, s := range subscribers {
			if sub, ok := s.(reactagent.StepAddedSubscriber); ok {
				sub.OnStepAdded(e)
			}
		}
	case *reactagent.RunningChangedEvent:
		for _, s := range subscribers {
			if sub, ok := s.(reactagent.RunningChangedSubscriber); ok {
				sub.OnRunningChanged(e)
			}
		}
	case *reactagent.ChatCallEvent:
		for _, s := range subscribers {
			if sub, ok := s.(reactagent.ChatCallSubscriber); ok {
				sub.OnChatCall(e)
			}
		}
	case *reactagent.ToolCallEvent:
		for _, s := range subscribers {
			if sub, ok := s.(reactagent.ToolCallSubscriber); ok {
				sub.OnToolCall(e)
			}
		}
	}
}

// Len returns the number of registered subscribers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subscribers)
}

// Compile-time check that Registry implements reactagent.EventPublisher.
var _ reactagent.EventPublisher = (*Registry)(nil)
