package ulog

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// Record framing constants
const (
	LinePrefix    = "- "
	WordSize      = 4
	HeaderWords   = 2 // timestamp + opcode
	MinRecordSize = HeaderWords * WordSize
)

// Record is one decoded log entry.
type Record struct {
	Timestamp uint32   // Raw tick count
	Opcode    uint32   // Message id
	Payload   []uint32 // Message specific words, in log order
}

// ParseLine frames one text line into a Record.
//
// The line must start with "- " followed by hex byte tokens separated by
// commas. A trailing comma and surrounding whitespace are ignored.
func ParseLine(line string) (Record, error) {
	raw := strings.TrimRight(line, "\r\n")

	if !strings.HasPrefix(raw, LinePrefix) {
		return Record{}, &LineFormatError{Line: line, Reason: "missing \"- \" prefix"}
	}

	body := strings.TrimSpace(raw[len(LinePrefix):])
	body = strings.TrimSuffix(body, ",")

	data, err := parseHexBytes(body)
	if err != nil {
		return Record{}, &LineFormatError{Line: line, Reason: "malformed byte token", Err: err}
	}

	rec, err := ParseBytes(data)
	if err != nil {
		return Record{}, &LineFormatError{Line: line, Reason: "bad record size", Err: err}
	}
	return rec, nil
}

// ParseBytes reinterprets data as little-endian words and splits them into
// a Record.
func ParseBytes(data []byte) (Record, error) {
	if len(data)%WordSize != 0 {
		return Record{}, fmt.Errorf("byte count %d is not a multiple of %d", len(data), WordSize)
	}
	if len(data) < MinRecordSize {
		return Record{}, fmt.Errorf("record has %d bytes (minimum %d)", len(data), MinRecordSize)
	}

	words := make([]uint32, len(data)/WordSize)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*WordSize:])
	}

	return Record{
		Timestamp: words[0],
		Opcode:    words[1],
		Payload:   words[HeaderWords:],
	}, nil
}

// parseHexBytes converts "00, 1a, ff" into bytes.
func parseHexBytes(body string) ([]byte, error) {
	if body == "" {
		return nil, nil
	}

	tokens := strings.Split(body, ",")
	data := make([]byte, 0, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if len(tok) == 0 || len(tok) > 2 {
			return nil, fmt.Errorf("token %d %q is not a hex byte", i, tok)
		}
		b, err := strconv.ParseUint(tok, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("token %d %q is not a hex byte: %w", i, tok, err)
		}
		data = append(data, byte(b))
	}
	return data, nil
}

// PayloadString formats the payload as hex words, e.g. "[0x00000001 0x0000002c]".
func (r Record) PayloadString() string {
	parts := make([]string, len(r.Payload))
	for i, w := range r.Payload {
		parts[i] = fmt.Sprintf("0x%08x", w)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// String returns a debug representation of the record
func (r Record) String() string {
	return fmt.Sprintf("Record{timestamp=0x%08x, opcode=0x%x, payload=%s}",
		r.Timestamp, r.Opcode, r.PayloadString())
}
