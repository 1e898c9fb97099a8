package tools

import (
	"context"
	"testing"
	"time"

	"github.com/rodrigo1987mza/reactagent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentTime_Call(t *testing.T) {
	tp := reactagent.NewMockTimeProvider(time.Date(2025, 7, 26, 16, 45, 3, 0, time.UTC))

	result, err := NewCurrentTime(tp).Call(context.Background(), []string{"ignored"})
	require.NoError(t, err)
	assert.Equal(t, "Jul 26, 2025 at 4:45:03 PM", result)
}

func TestBuiltins(t *testing.T) {
	names := make([]string, 0, 4)
	for _, tool := range Builtins(t.TempDir()) {
		names = append(names, tool.Name())
		assert.NotEmpty(t, tool.Description())
	}
	assert.Equal(t, []string{"read_file", "write_to_file", "get_current_time", "calculate"}, names)
}
