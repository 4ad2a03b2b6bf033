// Package ulog frames RPM ULog text dumps into records.
//
// The RPM writes its log as a ring of fixed-width binary entries. Tools that
// pull the ring out of RAM print every entry as a line of comma separated
// hex bytes:
//
//	- 2c, 01, 00, 00, 05, 00, 00, 00, 01, 00, 00, 00,
//
// # Record Layout
//
// The bytes are a sequence of little-endian 32-bit words:
//   - Word 0: timestamp in 32768 Hz sleep clock ticks
//   - Word 1: message id (opcode)
//   - Words 2..n: message payload, 0 to 5 words depending on the opcode
//
// # Usage Example
//
//	rec, err := ulog.ParseLine(line)
//	if err != nil {
//	    var lfe *ulog.LineFormatError
//	    if errors.As(err, &lfe) {
//	        // report and move on to the next line
//	    }
//	}
//	fmt.Printf("%s\n", rec)
//
// FormatLine does the reverse and is used to build fixtures.
package ulog
