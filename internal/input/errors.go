package input

import "fmt"

// ParseError reports a line that does not hold an integer.
type ParseError struct {
	Source string // file name or other label of the input
	Line   int    // 1-based
	Text   string
	Err    error
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: invalid integer %q: %v", e.Source, e.Line, e.Text, e.Err)
}

// Unwrap returns the underlying strconv error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
