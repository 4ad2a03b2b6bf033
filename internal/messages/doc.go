// Package messages renders RPM log messages.
//
// Every message id the RPM firmware emits has one Entry in a Registry. An
// entry names the message, says how many payload words it always reads and
// holds the function that turns the payload into text.
//
// Message ids fall into three ranges:
//   - 0x00-0x2d: RPM core events (boot, drivers, masters, sets, sleep)
//   - 0x1000-0x100b: NPA request lifecycle, resolved through Symbols
//   - 0x2f-0x44: CPR, Railway and IPQ vote tracking
//
// The default registry is built once from a fixed list; registering the same
// id twice is an error.
package messages
