package tools

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rodrigo1987mza/reactagent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenRead_RoundTrip(t *testing.T) {
	type expected struct {
		content string
	}

	tests := []struct {
		name     string
		input    string
		expected expected
	}{
		{
			name:     "plain text",
			input:    "hello world",
			expected: expected{content: "hello world"},
		},
		{
			name:     "literal backslash-n becomes a newline",
			input:    `hello\nworld`,
			expected: expected{content: "hello\nworld"},
		},
		{
			name:     "conversion happens exactly once",
			input:    `a\\nb`,
			expected: expected{content: "a\\\nb"},
		},
		{
			name:     "real newlines are kept",
			input:    "line one\nline two\n",
			expected: expected{content: "line one\nline two\n"},
		},
		{
			name:     "empty content",
			input:    "",
			expected: expected{content: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			ctx := context.Background()

			result, err := NewWriteFile(root).Call(ctx, []string{"notes/today/a.txt", tt.input})
			require.NoError(t, err)
			assert.Equal(t, WriteSuccess, result)

			content, err := NewReadFile(root).Call(ctx, []string{"notes/today/a.txt"})
			require.NoError(t, err)
			assert.Equal(t, tt.expected.content, content)
		})
	}
}

func TestWriteFile_OverwritesExisting(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("old content that is longer"), 0o644))

	_, err := NewWriteFile(root).Call(context.Background(), []string{"a.txt", "new"})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestWriteFile_AbsolutePathStaysUnderRoot(t *testing.T) {
	root := t.TempDir()

	_, err := NewWriteFile(root).Call(context.Background(), []string{"/path/to/file.txt", "x"})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(root, "path", "to", "file.txt"))
}

func TestWriteFile_Errors(t *testing.T) {
	root := t.TempDir()
	// A regular file where a parent directory is needed makes MkdirAll fail.
	require.NoError(t, os.WriteFile(filepath.Join(root, "blocker"), []byte("x"), 0o644))

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "no arguments",
			args:     nil,
			expected: "file path and content required",
		},
		{
			name:     "content missing",
			args:     []string{"a.txt"},
			expected: "file path and content required",
		},
		{
			name:     "parent is a file",
			args:     []string{"blocker/a.txt", "x"},
			expected: "could not write file: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWriteFile(root).Call(context.Background(), tt.args)
			var execErr *reactagent.ExecutionError
			require.ErrorAs(t, err, &execErr)
			assert.Contains(t, execErr.Message, tt.expected)
		})
	}
}

func TestReadFile_Errors(t *testing.T) {
	root := t.TempDir()

	t.Run("path missing", func(t *testing.T) {
		_, err := NewReadFile(root).Call(context.Background(), nil)
		var execErr *reactagent.ExecutionError
		require.ErrorAs(t, err, &execErr)
		assert.Equal(t, "file path required", execErr.Message)
	})

	t.Run("file does not exist includes os diagnostics", func(t *testing.T) {
		_, err := NewReadFile(root).Call(context.Background(), []string{"nope.txt"})
		var execErr *reactagent.ExecutionError
		require.ErrorAs(t, err, &execErr)
		assert.Contains(t, execErr.Message, "could not read file: ")
		assert.Contains(t, execErr.Message, "nope.txt")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
