package tools

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/moby/sys/atomicwriter"
	"github.com/rodrigo1987mza/reactagent"
)

const (
	ReadFileName  = "read_file"
	WriteFileName = "write_to_file"

	// WriteSuccess is returned by write_to_file after a successful write.
	WriteSuccess = "Write successful"
)

// ReadFile returns the full text contents of a file under the scratch root.
type ReadFile struct {
	root string
}

// NewReadFile creates the read_file tool rooted at root.
func NewReadFile(root string) *ReadFile {
	return &ReadFile{root: root}
}

func (t *ReadFile) Name() string        { return ReadFileName }
func (t *ReadFile) Description() string { return "Read contents of a file" }

// Call reads args[0] relative to the scratch root.
func (t *ReadFile) Call(_ context.Context, args []string) (string, error) {
	if len(args) < 1 {
		return "", reactagent.NewExecutionError("file path required")
	}

	content, err := os.ReadFile(resolve(t.root, args[0]))
	if err != nil {
		return "", reactagent.WrapExecutionError(err, "could not read file")
	}
	return string(content), nil
}

// WriteFile replaces a file under the scratch root with new content.
type WriteFile struct {
	root string
	perm os.FileMode
}

// NewWriteFile creates the write_to_file tool rooted at root.
func NewWriteFile(root string) *WriteFile {
	return &WriteFile{root: root, perm: 0o644}
}

func (t *WriteFile) Name() string        { return WriteFileName }
func (t *WriteFile) Description() string { return "Write content to a file" }

// Call writes args[1] to args[0], creating parent directories as needed.
// Literal two-character \n sequences in the content become real newlines.
func (t *WriteFile) Call(_ context.Context, args []string) (string, error) {
	if len(args) < 2 {
		return "", reactagent.NewExecutionError("file path and content required")
	}

	path := resolve(t.root, args[0])
	content := strings.ReplaceAll(args[1], `\n`, "\n")

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", reactagent.WrapExecutionError(err, "could not write file")
	}
	if err := atomicwriter.WriteFile(path, []byte(content), t.perm); err != nil {
		return "", reactagent.WrapExecutionError(err, "could not write file")
	}
	return WriteSuccess, nil
}

// resolve joins rel onto root. Absolute paths are treated as relative to root.
func resolve(root, rel string) string {
	return filepath.Join(root, rel)
}

// Compile-time checks that the file tools implement reactagent.Tool.
var (
	_ reactagent.Tool = (*ReadFile)(nil)
	_ reactagent.Tool = (*WriteFile)(nil)
)
