package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// PuzzleInput is the worked example from the puzzle statement.
const PuzzleInput = "1721\n979\n366\n299\n675\n1456\n"

// WriteFile writes content to name inside a fresh temporary directory and
// returns the full path. Intermediate directories in name are created.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "failed to set up test file")
	return path
}

// FailingWriter is an io.Writer that always returns Err.
type FailingWriter struct {
	Err error
}

// Write implements the io.Writer interface for FailingWriter.
func (w FailingWriter) Write([]byte) (int, error) {
	return 0, w.Err
}
