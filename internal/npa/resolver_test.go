package npa

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
)

// recorder collects warnings
type recorder struct {
	msgs []string
}

func (r *recorder) Warn(msg string) {
	r.msgs = append(r.msgs, msg)
}

const sampleDump = `NPA dump taken at boot
0x0001: npa_client (name: rpm_vdd_dig) (handle: 0x2a00c4) (resource: 0x2a0010)
0x0002: npa_client (name: ) (handle: 2a00d0) (resource: 0x2a0020)
0x0003: npa_resource (name: "/clk/cpu") (handle: 0x2a0010) (units: KHz)
0x0004: npa_resource (name: "/bus/ahb") (handle: 0xzz)
0x0005: npa_client (name: dangling) (handle: 0x2a00e0) (resource: 0x99)
garbage line: npa_client without parens
`

func TestResolver_UnloadedWarnsOnce(t *testing.T) {
	rec := &recorder{}
	r := NewResolver(rec)

	if got := r.ClientName(0x1234); got != "0x00001234" {
		t.Errorf("ClientName() = %q, want hex placeholder", got)
	}
	if got := r.ResourceName(0xabcdef01); got != "0xabcdef01" {
		t.Errorf("ResourceName() = %q, want hex placeholder", got)
	}
	if got := r.ClientResourceName(0x5); got != "0x00000005" {
		t.Errorf("ClientResourceName() = %q, want hex placeholder", got)
	}

	want := []string{warnNotLoaded, warnSilentMode}
	if diff := cmp.Diff(want, rec.msgs); diff != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", diff)
	}
	if r.State() != StateDegraded {
		t.Errorf("State() = %v, want degraded", r.State())
	}
}

func TestResolver_NilWarner(t *testing.T) {
	r := NewResolver(nil)
	if got := r.ClientName(1); got != "0x00000001" {
		t.Errorf("ClientName() = %q", got)
	}
}

func TestResolver_Load(t *testing.T) {
	rec := &recorder{}
	r := NewResolver(rec)

	stats, err := r.Load(strings.NewReader(sampleDump))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	wantStats := LoadStats{Lines: 7, Clients: 3, Resources: 1, Skipped: 1}
	if diff := cmp.Diff(wantStats, stats); diff != "" {
		t.Errorf("LoadStats mismatch (-want +got):\n%s", diff)
	}
	if !r.Loaded() {
		t.Fatal("expected loaded state")
	}

	tests := []struct {
		name string
		got  func() string
		want string
		warn bool
	}{
		{"client name", func() string { return r.ClientName(0x2a00c4) }, "rpm_vdd_dig", false},
		{"empty client name", func() string { return r.ClientName(0x2a00d0) }, "", false},
		{"resource name", func() string { return r.ResourceName(0x2a0010) }, "/clk/cpu", false},
		{"client resource", func() string { return r.ClientResourceName(0x2a00c4) }, "/clk/cpu", false},
		{"client miss", func() string { return r.ClientName(0x77) }, "0x00000077", true},
		{"resource miss", func() string { return r.ResourceName(0x2a0020) }, "0x002a0020", true},
		{"client resource first hop miss", func() string { return r.ClientResourceName(0x77) }, LookupFailed, true},
		{"client resource second hop miss", func() string { return r.ClientResourceName(0x2a00e0) }, LookupFailed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec.msgs = nil
			if got := tt.got(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if tt.warn {
				if len(rec.msgs) != 1 || !strings.HasPrefix(rec.msgs[0], "failed to match npa handle 0x") {
					t.Errorf("warnings = %q, want one miss warning", rec.msgs)
				}
			} else if len(rec.msgs) != 0 {
				t.Errorf("unexpected warnings %q", rec.msgs)
			}
		})
	}
}

func TestResolver_LoadFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/npa.txt", []byte(sampleDump), 0644); err != nil {
		t.Fatal(err)
	}

	r := NewResolver(nil)
	stats, err := r.LoadFile(fs, "/npa.txt")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if stats.Clients != 3 {
		t.Errorf("Clients = %d, want 3", stats.Clients)
	}

	if _, err := NewResolver(nil).LoadFile(fs, "/missing.txt"); err == nil {
		t.Error("expected error for missing dump")
	}
}

func TestParseHandle(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"0x2a00c4", 0x2a00c4, false},
		{"2A00C4", 0x2a00c4, false},
		{" 0Xff ", 0xff, false},
		{"0x123456789", 0, true},
		{"handle", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseHandle(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseHandle(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseHandle(%q) = %#x, want %#x", tt.in, got, tt.want)
			}
		})
	}
}
