package ulog

import "fmt"

// LineFormatError is returned when a line cannot be framed into a record:
// missing prefix, a token that is not a hex byte, or a byte count that does
// not form whole words.
type LineFormatError struct {
	// Line is the raw input line
	Line string
	// Reason is a short description of what was wrong
	Reason string
	// Underlying error if any
	Err error
}

func (e *LineFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *LineFormatError) Unwrap() error {
	return e.Err
}
