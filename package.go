// Package reactagent provides the building blocks of a ReAct-style reasoning agent in Go.
//
// The agent drives an iterative "think -> act -> observe" loop against an LLM chat endpoint.
// The model answers in free-form text containing XML-like tags; the agent extracts those tags,
// parses the single textual action into a tool call, dispatches it through a fixed tool table,
// and feeds the tool result back into the conversation until the model produces a final answer.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "os"
//
//	    "github.com/rodrigo1987mza/reactagent/agents/react"
//	    "github.com/rodrigo1987mza/reactagent/models"
//	    "github.com/rodrigo1987mza/reactagent/toolchain"
//	    "github.com/rodrigo1987mza/reactagent/tools"
//	)
//
//	func main() {
//	    // 1. Create a chat client
//	    client, _ := models.NewOpenAI(models.OpenAIOptions{Token: os.Getenv("OPENAI_API_KEY")})
//
//	    // 2. Create the tool registry
//	    registry, _ := toolchain.NewRegistry(tools.Builtins(os.TempDir())...)
//
//	    // 3. Build the agent and run it
//	    agent := react.NewAgent(client, registry)
//	    answer, err := agent.Run(context.Background(), "What time is it?")
//	    if err != nil {
//	        fmt.Println("run failed:", err)
//	        return
//	    }
//	    fmt.Println(answer)
//	}
//
// # Tag Protocol
//
// The transcript exchanged with the model uses the tags <question>, <thought>, <action>,
// <observation> and <final_answer>. The agent writes <question> and <observation>; the model
// writes the rest. Actions follow a tiny grammar:
//
//	get_current_time
//	write_to_file("notes/a.txt", "hello\nworld")
//
// See the format and toolchain packages for the extractor and the parser.
//
// # Steps and Events
//
// Each run records an append-only sequence of [Step] values (thought, action, observation,
// final_answer, error). Observers subscribe to the events package registry and receive
// [StepAddedEvent] and [RunningChangedEvent] in emission order:
//
//	type Printer struct{}
//
//	func (p *Printer) OnStepAdded(e *reactagent.StepAddedEvent) {
//	    fmt.Printf("[%s] %s\n", e.Step.Kind, e.Step.Content)
//	}
//
//	registry := events.NewRegistry().Subscribe(&Printer{})
//	agent := react.NewAgent(client, tools).WithEvents(registry)
//
// # Errors
//
// Only a chat client failure, a response without action or final answer, cancellation, and the
// optional iteration cap end a run. Parse errors, unknown tools and tool failures are folded back
// into the transcript as "Error: ..." observations so the model can recover. See errors.go.
package reactagent
