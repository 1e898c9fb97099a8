package reactagent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTimeProvider_Now(t *testing.T) {
	tp := NewDefaultTimeProvider()

	before := time.Now()
	result := tp.Now()
	after := time.Now()

	if result.Before(before) || result.After(after) {
		t.Errorf("Now() returned time outside expected range")
	}
}

func TestMockTimeProvider_Format(t *testing.T) {
	type input struct {
		at     time.Time
		layout string
	}

	tests := []struct {
		name     string
		input    input
		expected string
	}{
		{
			name: "medium date and time in the afternoon",
			input: input{
				at:     time.Date(2025, 2, 15, 14, 30, 0, 0, time.UTC),
				layout: MediumDateTimeLayout,
			},
			expected: "Feb 15, 2025 at 2:30:00 PM",
		},
		{
			name: "medium date and time in the morning",
			input: input{
				at:     time.Date(2024, 12, 1, 9, 5, 7, 0, time.UTC),
				layout: MediumDateTimeLayout,
			},
			expected: "Dec 1, 2024 at 9:05:07 AM",
		},
		{
			name: "iso date",
			input: input{
				at:     time.Date(2025, 7, 26, 0, 0, 0, 0, time.UTC),
				layout: "2006-01-02",
			},
			expected: "2025-07-26",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp := NewMockTimeProvider(tt.input.at)
			assert.Equal(t, tt.expected, tp.Format(tt.input.layout))
		})
	}
}

func TestMockTimeProvider_Advance(t *testing.T) {
	start := time.Date(2025, 2, 15, 14, 30, 0, 0, time.UTC)
	tp := NewMockTimeProvider(start)

	tp.Advance(90 * time.Second)
	assert.Equal(t, start.Add(90*time.Second), tp.Now())

	tp.SetTime(start)
	assert.Equal(t, start, tp.Now())
}
