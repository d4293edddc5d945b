package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/specialistvlad/pairsum/internal/ctxlog"
)

const utf8BOM = "\uFEFF"

// Source is anything that can produce the value list for a path.
type Source interface {
	Load(ctx context.Context, path string) ([]int, error)
}

// FileSource reads values from the local filesystem.
type FileSource struct{}

// NewFileSource creates a new filesystem-backed Source.
func NewFileSource() *FileSource {
	return &FileSource{}
}

// Load opens path and parses it with Parse.
func (s *FileSource) Load(ctx context.Context, path string) ([]int, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Opening value file.", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open value file: %w", err)
	}
	defer f.Close()

	values, err := Parse(f, path)
	if err != nil {
		return nil, err
	}

	logger.Debug("Value file parsed.", "path", path, "count", len(values))
	return values, nil
}

// Parse reads one integer per line from r. Surrounding whitespace is ignored
// and a trailing newline does not count as an extra line, but any other line
// that is not an integer, blank lines included, yields a *ParseError.
func Parse(r io.Reader, name string) ([]int, error) {
	var values []int
	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++
		text := scanner.Text()
		if line == 1 {
			text = strings.TrimPrefix(text, utf8BOM)
		}

		n, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return nil, &ParseError{Source: name, Line: line, Text: text, Err: err}
		}
		values = append(values, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return values, nil
}
