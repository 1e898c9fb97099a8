package tools

import (
	"context"

	"github.com/rodrigo1987mza/reactagent"
)

const CurrentTimeName = "get_current_time"

// CurrentTime reports the current date and time in medium date and time style.
type CurrentTime struct {
	timeProvider reactagent.TimeProvider
}

// NewCurrentTime creates the get_current_time tool reading from tp.
func NewCurrentTime(tp reactagent.TimeProvider) *CurrentTime {
	return &CurrentTime{timeProvider: tp}
}

func (t *CurrentTime) Name() string        { return CurrentTimeName }
func (t *CurrentTime) Description() string { return "Get current date and time" }

// Call ignores its arguments.
func (t *CurrentTime) Call(_ context.Context, _ []string) (string, error) {
	return t.timeProvider.Format(reactagent.MediumDateTimeLayout), nil
}

var _ reactagent.Tool = (*CurrentTime)(nil)
