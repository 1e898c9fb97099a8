// Package react implements the ReAct (Reasoning and Acting) agent loop pattern.
//
// # Overview
//
// Each iteration sends the full transcript to the chat client and inspects the response:
//
//	<thought>I need the current time first.</thought>
//	<action>get_current_time</action>
//
// The agent records a step for every tag it acts on, dispatches the action through the
// toolchain.Registry, and appends the result as a user message:
//
//	<observation>Jul 26, 2025 at 4:45:03 PM</observation>
//
// # Agent Loop Behavior
//
// The loop applies these rules in order on every response:
//
//  1. A <thought> tag, if present, becomes a thought step.
//  2. A <final_answer> tag ends the run successfully, even if the response also has an action.
//  3. A missing <action> tag ends the run with reactagent.ErrNoActionFound.
//  4. Otherwise the action is parsed and dispatched. A parse error, an unknown tool or a tool
//     failure becomes an error step plus an "<observation>Error: ...</observation>" message, and
//     the loop continues so the model can correct itself.
//
// A chat client failure ends the run with an error step. So does a cancelled context, and the
// optional iteration cap set with WithMaxIterations. The running flag is cleared on every exit.
//
// # Observing a Run
//
// Subscribe to an events.Registry and pass it with WithEvents. Steps and running changes are
// dispatched synchronously on the run goroutine, so observers see them in emission order:
//
//	registry := events.NewRegistry().Subscribe(myPrinter)
//	agent := react.NewAgent(client, tools).WithEvents(registry)
//
// Steps(), Transcript() and Running() return snapshots and may be called from any goroutine.
package react
