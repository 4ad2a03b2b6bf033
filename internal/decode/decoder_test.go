package decode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"github.com/muurk/rpmlog/internal/messages"
	"github.com/muurk/rpmlog/internal/npa"
	"github.com/muurk/rpmlog/internal/target"
	"github.com/muurk/rpmlog/internal/timing"
	"github.com/muurk/rpmlog/internal/ulog"
)

// recorder collects diagnostics in order
type recorder struct {
	warnings []string
	errors   []string
}

func (r *recorder) Warn(msg string)  { r.warnings = append(r.warnings, msg) }
func (r *recorder) Error(msg string) { r.errors = append(r.errors, msg) }

func newDecoder(t *testing.T, targetID string, opts Options) (*Decoder, *recorder) {
	t.Helper()

	c, err := target.Builtin()
	if err != nil {
		t.Fatal(err)
	}
	profile, err := c.Get(targetID)
	if err != nil {
		t.Fatal(err)
	}
	reg, err := messages.Default()
	if err != nil {
		t.Fatal(err)
	}

	rec := &recorder{}
	return New(reg, profile, npa.NewResolver(rec), opts, rec), rec
}

func line(ts, op uint32, payload ...uint32) string {
	return ulog.FormatLine(ulog.Record{Timestamp: ts, Opcode: op, Payload: payload})
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		ticks uint32
		f     TimestampFormat
		want  string
	}{
		{0, TimestampPretty, "0.000000"},
		{0, TimestampRaw, "0x0"},
		{49152, TimestampPretty, "1.500000"},
		{49152, TimestampRaw, "0xc000"},
		{1, TimestampPretty, "0.000031"},
		{0xffffffff, TimestampRaw, "0xffffffff"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatTimestamp(tt.ticks, tt.f); got != tt.want {
				t.Errorf("FormatTimestamp(%d, %v) = %q, want %q", tt.ticks, tt.f, got, tt.want)
			}
		})
	}
}

func TestDecodeLine_RoundTrip(t *testing.T) {
	for _, id := range []string{"8660", "8960", "8930", "8064"} {
		for _, tt := range []struct {
			f    TimestampFormat
			want string
		}{
			{TimestampPretty, "0.000000: rpm_boot_started"},
			{TimestampRaw, "0x0: rpm_boot_started"},
		} {
			t.Run(id+"/"+tt.f.String(), func(t *testing.T) {
				d, _ := newDecoder(t, id, Options{Timestamps: tt.f})
				got, err := d.DecodeLine(1, line(0, 0))
				if err != nil {
					t.Fatalf("DecodeLine() error = %v", err)
				}
				if got != tt.want {
					t.Errorf("DecodeLine() = %q, want %q", got, tt.want)
				}
			})
		}
	}
}

func TestRun_BadLineDoesNotStopRun(t *testing.T) {
	d, rec := newDecoder(t, "8660", Options{})

	lines := []string{
		"- 00, 00, 00, 00, 00, 00, 00, 00, 01,",
		line(0x8000, 0x05, 0),
		"",
		line(0x8000, 0x99),
		line(0x8000, 0x06, 0, 1),
		line(0x10000, 0x0b),
	}

	var out bytes.Buffer
	summary, err := d.Run(lines, &out)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := `1.000000: rpm_message_int_received (master: "APSS")
2.000000: rpm_no_driver
`
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}

	if len(rec.errors) != 3 {
		t.Fatalf("got %d diagnostics, want 3: %q", len(rec.errors), rec.errors)
	}
	if !strings.Contains(rec.errors[0], "line 1") {
		t.Errorf("format diagnostic should name the line: %q", rec.errors[0])
	}
	for _, want := range []string{"line 4", "timestamp: 0x8000", "id: 0x99", "payload: []"} {
		if !strings.Contains(rec.errors[1], want) {
			t.Errorf("opcode diagnostic %q missing %q", rec.errors[1], want)
		}
	}
	if !strings.Contains(rec.errors[2], "payload: [0x00000000 0x00000001]") {
		t.Errorf("payload diagnostic %q should carry the raw payload", rec.errors[2])
	}

	wantSummary := &Summary{
		Lines:   6,
		Blank:   1,
		Decoded: 2,
		Failures: map[ErrorKind]int{
			KindFormat:  1,
			KindOpcode:  1,
			KindPayload: 1,
		},
	}
	if diff := cmp.Diff(wantSummary, summary); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
	if summary.Failed() != 3 || summary.Attempted() != 5 {
		t.Errorf("Failed() = %d, Attempted() = %d", summary.Failed(), summary.Attempted())
	}
}

func TestDecodeLine_ErrorKinds(t *testing.T) {
	d, _ := newDecoder(t, "8660", Options{})

	tests := []struct {
		name string
		line string
		kind ErrorKind
	}{
		{"no prefix", "00, 00", KindFormat},
		{"odd bytes", "- 00, 00, 00, 00, 00, 00, 00,", KindFormat},
		{"unknown id", line(0, 0x3f), KindOpcode},
		{"short payload", line(0, 0x17, 1), KindPayload},
		{"bad enum", line(0, 0x07, 0, 8), KindPayload},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.DecodeLine(7, tt.line)
			var re *RecordError
			if !errors.As(err, &re) {
				t.Fatalf("error = %v, want *RecordError", err)
			}
			if re.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", re.Kind, tt.kind)
			}
			if re.LineNo != 7 {
				t.Errorf("LineNo = %d, want 7", re.LineNo)
			}
			if tt.kind == KindFormat && re.Record != nil {
				t.Error("format errors should not carry a record")
			}
			if tt.kind != KindFormat && re.Record == nil {
				t.Error("render errors should carry the framed record")
			}
		})
	}
}

func TestRun_HighPrecision(t *testing.T) {
	d, rec := newDecoder(t, "8660", Options{Timestamps: TimestampRaw, HighPrecision: true})

	lines := []string{
		line(0x10, 0x06, 0, 0, 0, 0, 100),
		line(0x20, 0x06, 0, 0, 0, 0, 150),
		line(0x30, 0x06, 0, 0, 0, 0, 400),
		line(0x40, 0x0b),
		line(0x50, 0x06, 0, 0, 0, 0, 500),
	}

	var out bytes.Buffer
	summary, err := d.Run(lines, &out)
	if err != nil {
		t.Fatal(err)
	}

	got := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	want := []string{
		`0x10: rpm_servicing_master (master: "APSS") (state: idle) (preempt: 0) (stop_time: 0x0)`,
		`0x20 [+   7.407 us] {00000064 -> 00000096}: rpm_servicing_master (master: "APSS") (state: idle) (preempt: 0) (stop_time: 0x0)`,
		`0x30 [+  37.037 us] {00000096 -> 00000190}: rpm_servicing_master (master: "APSS") (state: idle) (preempt: 0) (stop_time: 0x0)`,
		`0x40: rpm_no_driver`,
		`0x50: rpm_servicing_master (master: "APSS") (state: idle) (preempt: 0) (stop_time: 0x0)`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{timing.UnavailableWarning}, rec.warnings); diff != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", diff)
	}
	if !summary.TimingDisabled {
		t.Error("summary should report timing disabled")
	}
}

func TestRun_NPAWithoutDump(t *testing.T) {
	d, rec := newDecoder(t, "8960", Options{})

	lines := []string{
		line(0, 0x1003, 0x2a00c4, 1),
		line(0, 0x1005, 0x2a00c8),
	}
	var out bytes.Buffer
	if _, err := d.Run(lines, &out); err != nil {
		t.Fatal(err)
	}

	want := `0.000000: npa_issue_required_request (handle: 0x002a00c4) (client: "0x002a00c4") (request: 1) (resource: "0x002a00c4")
0.000000: npa_issue_impulse_request (handle: 0x002a00c8) (client: "0x002a00c8") (resource: "0x002a00c8")
`
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
	if len(rec.warnings) != 2 {
		t.Errorf("got %d warnings, want the two-line notice once: %q", len(rec.warnings), rec.warnings)
	}
}

func TestReadLines(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := line(0, 0) + "\r\n" + line(1, 0x0b) + "\n\n"
	if err := afero.WriteFile(fs, "/rpm.ulog", []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	lines, size, err := ReadLines(fs, "/rpm.ulog")
	if err != nil {
		t.Fatalf("ReadLines() error = %v", err)
	}
	if size != int64(len(content)) {
		t.Errorf("size = %d, want %d", size, len(content))
	}
	want := []string{line(0, 0), line(1, 0x0b), ""}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}

	if _, _, err := ReadLines(fs, "/missing.ulog"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSummary_DecodedRatio(t *testing.T) {
	s := NewSummary()
	if s.DecodedRatio() != 1 {
		t.Errorf("empty DecodedRatio() = %f, want 1", s.DecodedRatio())
	}
	s.Lines, s.Decoded = 4, 3
	if s.DecodedRatio() != 0.75 {
		t.Errorf("DecodedRatio() = %f, want 0.75", s.DecodedRatio())
	}
}
