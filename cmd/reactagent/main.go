// Command reactagent answers questions with a ReAct agent from the terminal.
//
// Usage:
//
//	reactagent [-config path] [-question text] [-log-level level]
//
// Without -question it starts an interactive prompt. Commands: history, clear, q/quit.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rodrigo1987mza/reactagent"
	"github.com/rodrigo1987mza/reactagent/agents/react"
	"github.com/rodrigo1987mza/reactagent/config"
	"github.com/rodrigo1987mza/reactagent/events"
	"github.com/rodrigo1987mza/reactagent/journal"
	"github.com/rodrigo1987mza/reactagent/loggers"
	"github.com/rodrigo1987mza/reactagent/models"
	"github.com/rodrigo1987mza/reactagent/toolchain"
	"github.com/rodrigo1987mza/reactagent/tools"
)

const emptyInputMessage = "Please enter a question or task."

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%sError: %v%s\n", colorRed, err, colorReset)
		os.Exit(1)
	}
}

type app struct {
	agent   *react.Agent
	client  *models.LCGClient
	journal *journal.Store
	view    *view
}

func run() error {
	configPath := flag.String("config", "", "path to a YAML config file")
	question := flag.String("question", "", "answer one question and exit")
	logLevel := flag.String("log-level", "", "log level: trace, debug, info, warn, error")
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	path, err := config.FindConfig(*configPath)
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	logger, err := cfg.Log.Logger(os.Stderr)
	if err != nil {
		return err
	}
	if path != "" {
		logger.Debug("config loaded", "path", path)
	}

	a, cleanup, err := newApp(cfg, logger, os.Stdout)
	if err != nil {
		return err
	}
	defer cleanup()

	if *question != "" {
		return a.ask(context.Background(), *question)
	}
	return a.repl()
}

func newClient(cfg *config.Config, logger *slog.Logger) (*models.LCGClient, error) {
	opts := models.OpenAIOptions{
		Token:   cfg.Model.APIKey,
		Model:   cfg.Model.Name,
		BaseURL: cfg.Model.BaseURL,
	}

	var client *models.LCGClient
	var err error
	switch cfg.Model.Provider {
	case config.ProviderGitHub:
		if opts.Model == config.Default().Model.Name {
			opts.Model = models.DefaultGitHubModel
		}
		client, err = models.NewGitHub(opts)
	default:
		client, err = models.NewOpenAI(opts)
	}
	if err != nil {
		return nil, err
	}
	return client.WithTemperature(cfg.Model.Temperature).WithLogger(logger), nil
}

// newApp wires the agent, its observers and the optional journal. cleanup releases
// everything newApp opened.
func newApp(cfg *config.Config, logger *slog.Logger, out io.Writer) (*app, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	client, err := newClient(cfg, logger)
	if err != nil {
		return nil, cleanup, err
	}

	registry, err := toolchain.NewRegistry(tools.Builtins(cfg.Agent.ScratchDir)...)
	if err != nil {
		return nil, cleanup, err
	}

	channel := events.NewChannel()
	v := newView(out)
	done := make(chan struct{})
	go func() {
		defer close(done)
		v.consume(channel.Events())
	}()
	closers = append(closers, func() {
		channel.Close()
		<-done
	})

	observers := events.NewRegistry().
		Subscribe(channel).
		Subscribe(loggers.NewSlog(logger))

	if cfg.Log.Events != "" {
		f, err := os.OpenFile(cfg.Log.Events, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			cleanup()
			return nil, func() {}, fmt.Errorf("open event log: %w", err)
		}
		closers = append(closers, func() { f.Close() })
		observers.Subscribe(loggers.NewYAML(f))
	}

	var store *journal.Store
	if cfg.Journal.Path != "" {
		store, err = journal.Open(cfg.Journal.Path)
		if err != nil {
			cleanup()
			return nil, func() {}, err
		}
		closers = append(closers, func() { store.Close() })
		observers.Subscribe(store.WithLogger(logger))
	}

	env := react.DefaultEnvironment()
	if cfg.Agent.OperatingSystem != "" {
		env.OperatingSystem = cfg.Agent.OperatingSystem
	}
	env.Extra = cfg.Agent.Environment

	agent := react.NewAgent(client, registry).
		WithEvents(observers).
		WithLogger(logger).
		WithEnvironment(env).
		WithMaxIterations(cfg.Agent.MaxIterations)

	return &app{
		agent:   agent,
		client:  client,
		journal: store,
		view:    v,
	}, cleanup, nil
}

// ask runs one question. SIGINT and SIGTERM cancel the run.
func (a *app) ask(ctx context.Context, question string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err := a.agent.Run(ctx, question)
	if errors.Is(err, reactagent.ErrRunInProgress) {
		return err
	}
	// Wait for the view to print the last step before returning to the prompt.
	<-a.view.idle
	if errors.Is(err, context.Canceled) {
		fmt.Fprintf(a.view.w, "%sRun cancelled.%s\n", colorYellow, colorReset)
		return nil
	}
	return err
}

func (a *app) repl() error {
	rl, err := readline.New(colorCyan + colorBold + "Ask: " + colorReset)
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	fmt.Printf("%s%sReAct agent%s %s(%s)%s\n",
		colorBold, colorYellow, colorReset, colorDim, a.client.ModelName(), colorReset)
	fmt.Printf("%sType a question and press Enter. Commands: history, clear, q.%s\n\n",
		colorDim, colorReset)

	for {
		input, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				fmt.Printf("\n%sGoodbye!%s\n", colorGreen, colorReset)
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		input = strings.TrimSpace(input)
		switch strings.ToLower(input) {
		case "":
			fmt.Printf("%s%s%s\n", colorYellow, emptyInputMessage, colorReset)
			continue
		case "q", "quit", "exit":
			a.printUsage()
			fmt.Printf("%sGoodbye!%s\n", colorGreen, colorReset)
			return nil
		case "clear":
			readline.ClearScreen(os.Stdout)
			continue
		case "history":
			a.printHistory()
			continue
		}

		if err := a.ask(context.Background(), input); err != nil {
			fmt.Fprintf(os.Stderr, "%sRun failed: %v%s\n", colorRed, err, colorReset)
		}
	}
}

func (a *app) printHistory() {
	if a.journal == nil {
		fmt.Printf("%sJournal disabled. Set journal.path to keep history.%s\n", colorDim, colorReset)
		return
	}
	runs, err := a.journal.Runs(context.Background(), 20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%sHistory unavailable: %v%s\n", colorRed, err, colorReset)
		return
	}
	renderHistory(os.Stdout, runs)
}

func (a *app) printUsage() {
	u := a.client.Usage()
	if u.Calls == 0 {
		return
	}
	fmt.Printf("%s[Usage: %d calls, %d input tokens, %d output tokens]%s\n",
		colorDim, u.Calls, u.InputTokens, u.OutputTokens, colorReset)
}
