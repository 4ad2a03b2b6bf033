// Package timing derives inter-record deltas from the high-precision counter
// that some RPM builds log alongside each message.
package timing

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/muurk/rpmlog/internal/logging"
)

const (
	// CounterWord is the payload index holding the counter sample
	CounterWord = 4

	// TickPeriodMicros is the length of one counter tick in microseconds
	TickPeriodMicros = 0.148148148

	// UnavailableWarning is emitted once when a record has no counter sample
	UnavailableWarning = "This log does not contain high-precision timestamp data."
)

// Warner receives tracker diagnostics.
type Warner interface {
	Warn(msg string)
}

// Sample is the delta between two consecutive counter readings.
type Sample struct {
	Previous     uint32
	Current      uint32
	ElapsedTicks uint32
}

// ElapsedMicros converts the tick delta to microseconds.
func (s Sample) ElapsedMicros() float64 {
	return float64(s.ElapsedTicks) * TickPeriodMicros
}

// String renders the timestamp suffix, e.g. " [+   7.407 us] {00000064 -> 00000096}".
func (s Sample) String() string {
	return fmt.Sprintf(" [+%8.3f us] {%08x -> %08x}", s.ElapsedMicros(), s.Previous, s.Current)
}

// Tracker remembers the last counter sample across records. It is fed records
// in file order and is not safe for concurrent use.
type Tracker struct {
	enabled  bool
	disabled bool // set when a record lacked the counter word
	last     uint32
	haveLast bool
	warn     Warner
}

// NewTracker creates a tracker. A tracker created with enabled false ignores
// every record.
func NewTracker(enabled bool, w Warner) *Tracker {
	return &Tracker{enabled: enabled, warn: w}
}

// Enabled reports whether the tracker still processes records.
func (t *Tracker) Enabled() bool {
	return t.enabled && !t.disabled
}

// Disabled reports whether the tracker turned itself off mid-run.
func (t *Tracker) Disabled() bool {
	return t.disabled
}

// Observe feeds one record payload. It returns a Sample and true when both a
// previous and a current reading exist. A payload without the counter word
// turns the tracker off for the rest of the run.
func (t *Tracker) Observe(payload []uint32) (Sample, bool) {
	if !t.Enabled() {
		return Sample{}, false
	}

	if len(payload) <= CounterWord {
		t.disabled = true
		if t.warn != nil {
			t.warn.Warn(UnavailableWarning)
		}
		logging.LogStateChange("timing", "enabled", "disabled")
		logging.Debug("Counter word missing", zap.Int("payload_words", len(payload)))
		return Sample{}, false
	}

	current := payload[CounterWord]
	if !t.haveLast {
		t.last = current
		t.haveLast = true
		return Sample{}, false
	}

	s := Sample{
		Previous:     t.last,
		Current:      current,
		ElapsedTicks: current - t.last,
	}
	t.last = current
	return s, true
}
