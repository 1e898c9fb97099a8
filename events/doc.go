// Package events dispatches agent events to subscribers.
//
// # Overview
//
// The agent publishes every state change as an event: steps being added, the running flag
// flipping, chat calls and tool calls. [Registry] fans each event out, synchronously and in
// registration order, to the subscribers that implement the matching interface from the root
// package (StepAddedSubscriber, RunningChangedSubscriber, ChatCallSubscriber, ToolCallSubscriber).
//
// Because dispatch happens on the run goroutine, observers see events in exactly the order they
// were emitted.
//
// # Channel Observers
//
// UIs that render from their own goroutine can subscribe a [Channel]. It forwards every event
// into an unbounded buffer, so the agent never blocks on a slow reader:
//
//	ch := events.NewChannel()
//	registry := events.NewRegistry().Subscribe(ch)
//
//	go func() {
//	    for event := range ch.Events() {
//	        render(event)
//	    }
//	}()
//
//	agent.Run(ctx, question)
//	ch.Close()
package events
