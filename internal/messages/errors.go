package messages

import "fmt"

// UnknownOpcodeError is returned for a message id with no registered entry.
type UnknownOpcodeError struct {
	Opcode uint32
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("no decoder for message id 0x%x", e.Opcode)
}

// PayloadError is returned when a payload is shorter than the words a
// renderer needs.
type PayloadError struct {
	Need int
	Have int
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("payload has %d words, need %d", e.Have, e.Need)
}

// FieldError is returned when an enumerated payload field holds a value
// with no rendering.
type FieldError struct {
	Field string
	Value uint32
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("no rendering for %s %d", e.Field, e.Value)
}

// DuplicateOpcodeError is returned when a registry is built with two entries
// for the same id.
type DuplicateOpcodeError struct {
	Opcode uint32
	First  string
	Second string
}

func (e *DuplicateOpcodeError) Error() string {
	return fmt.Sprintf("message id 0x%x registered twice (%s, %s)", e.Opcode, e.First, e.Second)
}
