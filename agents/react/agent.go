package react

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"text/template"
	"time"

	"github.com/google/uuid"
	"github.com/rodrigo1987mza/reactagent"
	"github.com/rodrigo1987mza/reactagent/events"
	"github.com/rodrigo1987mza/reactagent/format"
	"github.com/rodrigo1987mza/reactagent/toolchain"
)

// Agent implements the ReAct (Reasoning and Acting) agent loop.
// Flow: Think -> Act -> Observe -> Repeat until a final answer or a fatal error.
//
// The transcript sent to the chat client is built like this:
//   - System message: protocol rules, tool list and environment (see DefaultReActSystemTemplate)
//   - User message: <question>...</question>
//   - Then, per iteration: the assistant response verbatim, followed by a user message holding
//     <observation>...</observation> when an action was dispatched
//
// An Agent runs one question at a time. Run returns ErrRunInProgress if called while another
// run is active.
type Agent struct {
	client         reactagent.ChatClient
	registry       *toolchain.Registry
	format         *format.XML
	events         reactagent.EventPublisher
	timeProvider   reactagent.TimeProvider
	logger         *slog.Logger
	systemTemplate *template.Template
	environment    Environment
	maxIterations  int

	mu         sync.Mutex
	running    bool
	runID      string
	steps      []reactagent.Step
	transcript []reactagent.Message
}

// NewAgent creates a new Agent with the given chat client and tool registry.
// Defaults:
//   - Events: an empty events.Registry
//   - TimeProvider: reactagent.NewDefaultTimeProvider()
//   - Logger: discards everything
//   - SystemTemplate: DefaultReActSystemTemplate
//   - Environment: DefaultEnvironment()
//   - MaxIterations: 0 (unbounded)
func NewAgent(client reactagent.ChatClient, registry *toolchain.Registry) *Agent {
	return &Agent{
		client:         client,
		registry:       registry,
		format:         format.NewXML(),
		events:         events.NewRegistry(),
		timeProvider:   reactagent.NewDefaultTimeProvider(),
		logger:         slog.New(slog.DiscardHandler),
		systemTemplate: DefaultReActSystemTemplate,
		environment:    DefaultEnvironment(),
	}
}

// WithEvents sets the publisher that receives step and running events.
func (a *Agent) WithEvents(publisher reactagent.EventPublisher) *Agent {
	a.events = publisher
	return a
}

// WithTimeProvider sets the time provider used for step timestamps.
// Use this to inject a mock time provider for testing.
func (a *Agent) WithTimeProvider(tp reactagent.TimeProvider) *Agent {
	a.timeProvider = tp
	return a
}

// WithLogger sets the structured logger.
func (a *Agent) WithLogger(logger *slog.Logger) *Agent {
	a.logger = logger
	return a
}

// WithSystemTemplate sets a custom system prompt template.
// The template receives SystemPromptData.
func (a *Agent) WithSystemTemplate(tmpl *template.Template) *Agent {
	a.systemTemplate = tmpl
	return a
}

// WithSystemTemplateString parses tmplStr and uses it as the system prompt template.
// Returns error if the template string is invalid.
func (a *Agent) WithSystemTemplateString(tmplStr string) (*Agent, error) {
	tmpl, err := template.New("react_system").Parse(tmplStr)
	if err != nil {
		return a, fmt.Errorf("failed to parse template: %w", err)
	}
	a.systemTemplate = tmpl
	return a, nil
}

// WithEnvironment sets the environment metadata shown at the end of the system prompt.
func (a *Agent) WithEnvironment(env Environment) *Agent {
	a.environment = env
	return a
}

// WithMaxIterations caps the number of chat calls per run. Zero means no cap, which lets a
// model that never answers loop forever.
func (a *Agent) WithMaxIterations(n int) *Agent {
	a.maxIterations = n
	return a
}

// Running reports whether a run is in progress.
func (a *Agent) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

// Steps returns a copy of the current (or last) run's step history.
func (a *Agent) Steps() []reactagent.Step {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]reactagent.Step, len(a.steps))
	copy(out, a.steps)
	return out
}

// Transcript returns a copy of the current (or last) run's transcript.
func (a *Agent) Transcript() []reactagent.Message {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]reactagent.Message, len(a.transcript))
	copy(out, a.transcript)
	return out
}

// RunID returns the identifier of the current (or last) run.
func (a *Agent) RunID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.runID
}

// Run answers question by looping think -> act -> observe until the model emits a final answer.
//
// It returns the final answer, or the fatal error that ended the run:
//   - *reactagent.ChatClientError when the chat client fails
//   - reactagent.ErrNoActionFound when a response has neither action nor final answer
//   - reactagent.ErrMaxIterationsExceeded when the optional cap is reached
//   - the context error when ctx is done before a chat call
//
// Parse errors, unknown tools and tool failures never end the run. They are recorded as error
// steps and fed back to the model as "Error: ..." observations.
func (a *Agent) Run(ctx context.Context, question string) (string, error) {
	runID, ok := a.begin(question)
	if !ok {
		return "", reactagent.ErrRunInProgress
	}

	answer, err := a.loop(ctx, runID, question)
	a.finish(runID, question, answer, err)
	return answer, err
}

// begin resets the run state and flips the running flag.
func (a *Agent) begin(question string) (string, bool) {
	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return "", false
	}
	runID := uuid.NewString()
	a.running = true
	a.runID = runID
	a.steps = nil
	a.transcript = nil
	a.mu.Unlock()

	a.logger.Info("agent run started", "run_id", runID)
	a.events.Dispatch(&reactagent.RunningChangedEvent{
		RunID:    runID,
		Question: question,
		Running:  true,
		Time:     a.timeProvider.Now(),
	})
	return runID, true
}

// finish clears the running flag. Called on every exit path of Run.
func (a *Agent) finish(runID, question, answer string, err error) {
	a.mu.Lock()
	a.running = false
	steps := len(a.steps)
	a.mu.Unlock()

	if err != nil {
		a.logger.Warn("agent run failed", "run_id", runID, "steps", steps, "error", err)
	} else {
		a.logger.Info("agent run finished", "run_id", runID, "steps", steps)
	}
	a.events.Dispatch(&reactagent.RunningChangedEvent{
		RunID:    runID,
		Question: question,
		Running:  false,
		Answer:   answer,
		Err:      err,
		Time:     a.timeProvider.Now(),
	})
}

func (a *Agent) loop(ctx context.Context, runID, question string) (string, error) {
	systemPrompt, err := BuildSystemPrompt(a.systemTemplate, a.registry.Tools(), a.environment)
	if err != nil {
		err = fmt.Errorf("build system prompt: %w", err)
		a.addStep(runID, reactagent.StepError, err.Error())
		return "", err
	}
	a.appendMessage(reactagent.RoleSystem, systemPrompt)
	a.appendMessage(reactagent.RoleUser, a.format.FormatSection(format.TagQuestion, question))

	for iteration := 1; ; iteration++ {
		if a.maxIterations > 0 && iteration > a.maxIterations {
			err := fmt.Errorf("%w (%d)", reactagent.ErrMaxIterationsExceeded, a.maxIterations)
			a.addStep(runID, reactagent.StepError, err.Error())
			return "", err
		}
		if err := ctx.Err(); err != nil {
			a.addStep(runID, reactagent.StepError, err.Error())
			return "", err
		}

		content, err := a.callChat(ctx, runID, iteration)
		if err != nil {
			chatErr := &reactagent.ChatClientError{Err: err}
			a.addStep(runID, reactagent.StepError, chatErr.Error())
			return "", chatErr
		}
		a.appendMessage(reactagent.RoleAssistant, content)

		if thought, ok := a.format.Extract(content, format.TagThought); ok {
			a.addStep(runID, reactagent.StepThought, thought)
		}

		// A final answer wins over an action in the same response.
		if answer, ok := a.format.Extract(content, format.TagFinalAnswer); ok {
			a.addStep(runID, reactagent.StepFinalAnswer, answer)
			return answer, nil
		}

		rawAction, ok := a.format.Extract(content, format.TagAction)
		if !ok {
			a.addStep(runID, reactagent.StepError, reactagent.ErrNoActionFound.Error())
			return "", reactagent.ErrNoActionFound
		}
		a.addStep(runID, reactagent.StepAction, rawAction)

		result, err := a.dispatch(ctx, runID, iteration, rawAction)
		if err != nil {
			a.addStep(runID, reactagent.StepError, err.Error())
			a.appendMessage(reactagent.RoleUser,
				a.format.FormatSection(format.TagObservation, "Error: "+err.Error()))
			continue
		}

		a.addStep(runID, reactagent.StepObservation, result)
		a.appendMessage(reactagent.RoleUser, a.format.FormatSection(format.TagObservation, result))
	}
}

// callChat sends the whole transcript and publishes a ChatCallEvent.
func (a *Agent) callChat(ctx context.Context, runID string, iteration int) (string, error) {
	messages := a.Transcript()

	a.logger.Debug("chat call", "run_id", runID, "iteration", iteration, "messages", len(messages))
	start := time.Now()
	content, err := a.client.Send(ctx, messages)
	duration := time.Since(start)

	a.events.Dispatch(&reactagent.ChatCallEvent{
		RunID:     runID,
		Iteration: iteration,
		Messages:  len(messages),
		Response:  content,
		Duration:  duration,
		Err:       err,
	})
	return content, err
}

// dispatch parses and executes one action and publishes a ToolCallEvent.
func (a *Agent) dispatch(
	ctx context.Context,
	runID string,
	iteration int,
	rawAction string,
) (string, error) {
	start := time.Now()
	action, result, err := a.registry.Execute(ctx, rawAction)
	duration := time.Since(start)

	event := &reactagent.ToolCallEvent{
		RunID:     runID,
		Iteration: iteration,
		Action:    rawAction,
		Result:    result,
		Duration:  duration,
		Err:       err,
	}
	if action != nil {
		event.Tool = action.Tool
		event.Args = action.Args
	}
	a.events.Dispatch(event)

	return result, err
}

func (a *Agent) addStep(runID string, kind reactagent.StepKind, content string) {
	step := reactagent.NewStep(kind, content, a.timeProvider.Now())

	a.mu.Lock()
	a.steps = append(a.steps, step)
	index := len(a.steps) - 1
	a.mu.Unlock()

	a.events.Dispatch(&reactagent.StepAddedEvent{RunID: runID, Index: index, Step: step})
}

func (a *Agent) appendMessage(role reactagent.Role, content string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.transcript = append(a.transcript, reactagent.Message{Role: role, Content: content})
}
