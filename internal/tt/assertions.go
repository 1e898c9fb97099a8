package tt

import (
	"testing"

	"github.com/rodrigo1987mza/reactagent"
	"github.com/stretchr/testify/assert"
)

// StepKinds returns the kind of each step.
func StepKinds(steps []reactagent.Step) []reactagent.StepKind {
	kinds := make([]reactagent.StepKind, 0, len(steps))
	for _, s := range steps {
		kinds = append(kinds, s.Kind)
	}
	return kinds
}

// StepContents returns the content of each step.
func StepContents(steps []reactagent.Step) []string {
	contents := make([]string, 0, len(steps))
	for _, s := range steps {
		contents = append(contents, s.Content)
	}
	return contents
}

// AssertStepKinds asserts the step sequence has exactly the given kinds.
func AssertStepKinds(t *testing.T, expected []reactagent.StepKind, steps []reactagent.Step) {
	t.Helper()
	assert.Equal(t, expected, StepKinds(steps), "step kinds mismatch")
}

// AssertRoles asserts the transcript has exactly the given roles.
func AssertRoles(t *testing.T, expected []reactagent.Role, messages []reactagent.Message) {
	t.Helper()
	roles := make([]reactagent.Role, 0, len(messages))
	for _, m := range messages {
		roles = append(roles, m.Role)
	}
	assert.Equal(t, expected, roles, "transcript roles mismatch")
}
