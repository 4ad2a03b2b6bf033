package decode

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/rpmlog/internal/logging"
	"github.com/muurk/rpmlog/internal/messages"
	"github.com/muurk/rpmlog/internal/target"
	"github.com/muurk/rpmlog/internal/timing"
	"github.com/muurk/rpmlog/internal/ulog"
)

// TicksPerSecond is the rate of the record timestamp clock
const TicksPerSecond = 32768.0

// TimestampFormat selects how record timestamps are printed.
type TimestampFormat int

const (
	// TimestampPretty prints seconds, e.g. "1.500000"
	TimestampPretty TimestampFormat = iota
	// TimestampRaw prints the tick count in hex, e.g. "0xc000"
	TimestampRaw
)

// String returns the format name
func (f TimestampFormat) String() string {
	if f == TimestampRaw {
		return "raw"
	}
	return "pretty"
}

// FormatTimestamp renders a tick count.
func FormatTimestamp(ticks uint32, f TimestampFormat) string {
	if f == TimestampRaw {
		return fmt.Sprintf("0x%x", ticks)
	}
	return fmt.Sprintf("%f", float64(ticks)/TicksPerSecond)
}

// Options controls output formatting.
type Options struct {
	Timestamps    TimestampFormat
	HighPrecision bool
}

// Diagnostics receives warnings and per-line errors.
type Diagnostics interface {
	Warn(msg string)
	Error(msg string)
}

// Decoder turns log lines into text. It owns the sequential state of a run
// and must be fed lines in file order from a single goroutine.
type Decoder struct {
	registry *messages.Registry
	ctx      *messages.Context
	opts     Options
	tracker  *timing.Tracker
	diag     Diagnostics
}

// New creates a decoder. symbols is usually the *npa.Resolver built with
// the same Diagnostics sink.
func New(registry *messages.Registry, profile *target.Profile, symbols messages.Symbols, opts Options, diag Diagnostics) *Decoder {
	return &Decoder{
		registry: registry,
		ctx:      &messages.Context{Profile: profile, Symbols: symbols},
		opts:     opts,
		tracker:  timing.NewTracker(opts.HighPrecision, diag),
		diag:     diag,
	}
}

// DecodeLine decodes one input line into "<timestamp>: <message>".
// Failures are returned as *RecordError.
func (d *Decoder) DecodeLine(lineNo int, line string) (string, error) {
	rec, err := ulog.ParseLine(line)
	if err != nil {
		return "", &RecordError{LineNo: lineNo, Line: line, Kind: KindFormat, Err: err}
	}

	ts := FormatTimestamp(rec.Timestamp, d.opts.Timestamps)
	if sample, ok := d.tracker.Observe(rec.Payload); ok {
		ts += sample.String()
	}

	text, err := d.registry.Render(d.ctx, rec.Opcode, rec.Payload)
	if err != nil {
		return "", &RecordError{LineNo: lineNo, Line: line, Record: &rec, Kind: kindOf(err), Err: err}
	}

	return ts + ": " + text, nil
}

// Run decodes every line and writes the results to out, one per line.
// Per-line failures are reported to Diagnostics and counted in the summary;
// only a write error on out stops the run.
func (d *Decoder) Run(lines []string, out io.Writer) (*Summary, error) {
	summary := NewSummary()

	for i, line := range lines {
		lineNo := i + 1
		summary.Lines++
		logging.LogRawLine(lineNo, line)

		if strings.TrimSpace(line) == "" {
			summary.Blank++
			continue
		}

		text, err := d.DecodeLine(lineNo, line)
		if err != nil {
			summary.recordFailure(err)
			logging.LogRecordFailure(lineNo, err)
			if d.diag != nil {
				d.diag.Error(err.Error())
			}
			continue
		}

		if _, err := fmt.Fprintln(out, text); err != nil {
			return summary, fmt.Errorf("failed to write output: %w", err)
		}
		summary.Decoded++
	}

	summary.TimingDisabled = d.tracker.Disabled()
	logging.Info("Decode finished",
		zap.Int("lines", summary.Lines),
		zap.Int("decoded", summary.Decoded),
		zap.Int("failed", summary.Failed()),
	)
	return summary, nil
}
