package ulog

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Bytes encodes the record back into its little-endian wire form.
func (r Record) Bytes() []byte {
	data := make([]byte, (HeaderWords+len(r.Payload))*WordSize)
	binary.LittleEndian.PutUint32(data[0:], r.Timestamp)
	binary.LittleEndian.PutUint32(data[4:], r.Opcode)
	for i, w := range r.Payload {
		binary.LittleEndian.PutUint32(data[(HeaderWords+i)*WordSize:], w)
	}
	return data
}

// FormatLine renders a record in the ULog text dump format, including the
// trailing comma the dump tools emit.
func FormatLine(r Record) string {
	return FormatBytes(r.Bytes())
}

// FormatBytes renders raw bytes in the ULog text dump format.
func FormatBytes(data []byte) string {
	var b strings.Builder
	b.WriteString(LinePrefix)
	for _, v := range data {
		b.WriteString(fmt.Sprintf("%02x, ", v))
	}
	return strings.TrimRight(b.String(), " ")
}
