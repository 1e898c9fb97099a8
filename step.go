package reactagent

import (
	"time"

	"github.com/google/uuid"
)

// StepKind classifies a Step.
type StepKind string

const (
	StepThought     StepKind = "thought"
	StepAction      StepKind = "action"
	StepObservation StepKind = "observation"
	StepFinalAnswer StepKind = "final_answer"
	StepError       StepKind = "error"
)

// Step is an immutable record of one agent-loop event.
// Steps are only ever appended to a run's history, never modified.
type Step struct {
	ID        uuid.UUID `yaml:"id" json:"id"`
	Kind      StepKind  `yaml:"kind" json:"kind"`
	Content   string    `yaml:"content" json:"content"`
	CreatedAt time.Time `yaml:"created_at" json:"created_at"`
}

// NewStep creates a Step with a fresh time-ordered identity.
func NewStep(kind StepKind, content string, createdAt time.Time) Step {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return Step{
		ID:        id,
		Kind:      kind,
		Content:   content,
		CreatedAt: createdAt,
	}
}
