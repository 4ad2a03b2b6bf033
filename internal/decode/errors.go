package decode

import (
	"errors"
	"fmt"

	"github.com/muurk/rpmlog/internal/messages"
	"github.com/muurk/rpmlog/internal/ulog"
)

// ErrorKind classifies per-line failures.
type ErrorKind int

const (
	// KindFormat is a line that could not be framed into a record
	KindFormat ErrorKind = iota
	// KindOpcode is a record whose message id has no decoder
	KindOpcode
	// KindPayload is a record whose payload could not be rendered
	KindPayload
)

// String returns the kind name
func (k ErrorKind) String() string {
	switch k {
	case KindFormat:
		return "format"
	case KindOpcode:
		return "unknown message"
	case KindPayload:
		return "payload"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// AllKinds lists every kind in display order
var AllKinds = []ErrorKind{KindFormat, KindOpcode, KindPayload}

// RecordError reports a line that was skipped.
type RecordError struct {
	// LineNo is the 1-based line number in the input file
	LineNo int
	// Line is the raw input line
	Line string
	// Record is set once the line was framed
	Record *ulog.Record
	// Kind classifies Err
	Kind ErrorKind
	// Err is the underlying failure
	Err error
}

func (e *RecordError) Error() string {
	if e.Record == nil {
		return fmt.Sprintf("line %d: cannot parse %q: %v", e.LineNo, e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: cannot decode message (timestamp: 0x%x) (id: 0x%x) (payload: %s): %v",
		e.LineNo, e.Record.Timestamp, e.Record.Opcode, e.Record.PayloadString(), e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// kindOf classifies a render error
func kindOf(err error) ErrorKind {
	var lfe *ulog.LineFormatError
	var unknown *messages.UnknownOpcodeError
	switch {
	case errors.As(err, &lfe):
		return KindFormat
	case errors.As(err, &unknown):
		return KindOpcode
	default:
		return KindPayload
	}
}
