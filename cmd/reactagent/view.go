package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rodrigo1987mza/reactagent"
	"github.com/rodrigo1987mza/reactagent/journal"
)

// ANSI color codes
const (
	colorReset   = "\033[0m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
	colorBold    = "\033[1m"
	colorDim     = "\033[2m"
)

type stepStyle struct {
	title string
	color string
}

var stepStyles = map[reactagent.StepKind]stepStyle{
	reactagent.StepThought:     {title: "💭 Thought", color: colorBlue},
	reactagent.StepAction:      {title: "🔧 Action", color: colorYellow},
	reactagent.StepObservation: {title: "🔍 Observation", color: colorGreen},
	reactagent.StepFinalAnswer: {title: "✅ Final Answer", color: colorMagenta},
	reactagent.StepError:       {title: "❌ Error", color: colorRed},
}

// styleFor returns the title and color for a step kind.
func styleFor(kind reactagent.StepKind) stepStyle {
	if style, ok := stepStyles[kind]; ok {
		return style
	}
	return stepStyle{title: string(kind), color: colorReset}
}

// view renders agent events to a terminal.
type view struct {
	w io.Writer

	// idle receives after each run-finished event has been rendered.
	idle chan struct{}
}

func newView(w io.Writer) *view {
	return &view{w: w, idle: make(chan struct{}, 1)}
}

// consume renders events until the channel is closed.
func (v *view) consume(events <-chan reactagent.Event) {
	for e := range events {
		v.render(e)
		if changed, ok := e.(*reactagent.RunningChangedEvent); ok && !changed.Running {
			select {
			case v.idle <- struct{}{}:
			default:
			}
		}
	}
}

func (v *view) render(e reactagent.Event) {
	switch ev := e.(type) {
	case *reactagent.RunningChangedEvent:
		if ev.Running {
			fmt.Fprintf(v.w, "\n%s%sRunning: %s%s\n", colorBold, colorCyan, ev.Question, colorReset)
			return
		}
		fmt.Fprintf(v.w, "%s%s%s\n\n", colorDim, strings.Repeat("-", 60), colorReset)
	case *reactagent.StepAddedEvent:
		renderStep(v.w, ev.Step)
	case *reactagent.ChatCallEvent:
		if ev.Err == nil {
			fmt.Fprintf(v.w, "%s  LLM: iteration %d, %s%s\n",
				colorDim, ev.Iteration, ev.Duration.Round(time.Millisecond), colorReset)
		}
	}
}

// renderStep writes a step as a colored title line followed by its indented content.
func renderStep(w io.Writer, step reactagent.Step) {
	style := styleFor(step.Kind)
	fmt.Fprintf(w, "%s%s%s%s %s%s%s\n",
		colorBold, style.color, style.title, colorReset,
		colorDim, step.CreatedAt.Format("15:04:05"), colorReset)
	for _, line := range strings.Split(step.Content, "\n") {
		fmt.Fprintf(w, "%s  %s%s\n", style.color, line, colorReset)
	}
}

// renderHistory lists journaled runs, newest first.
func renderHistory(w io.Writer, runs []journal.Run) {
	if len(runs) == 0 {
		fmt.Fprintf(w, "%sNo runs recorded yet.%s\n", colorDim, colorReset)
		return
	}
	for _, r := range runs {
		outcome, color := r.Outcome, colorGreen
		switch {
		case r.FinishedAt.IsZero():
			outcome, color = "running", colorYellow
		case r.Outcome == journal.OutcomeFailed:
			color = colorRed
		}
		fmt.Fprintf(w, "%s%s%s %s%-8s%s %2d steps  %s\n",
			colorDim, r.StartedAt.Local().Format("2006-01-02 15:04"), colorReset,
			color, outcome, colorReset,
			r.Steps, r.Question)
	}
}
