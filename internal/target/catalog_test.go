package target

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
)

func TestBuiltin(t *testing.T) {
	c, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin() failed: %v", err)
	}

	want := []string{"8064", "8660", "8930", "8960"}
	if diff := cmp.Diff(want, c.IDs()); diff != "" {
		t.Errorf("IDs() mismatch (-want +got):\n%s", diff)
	}

	// Singleton
	c2, err := Builtin()
	if err != nil {
		t.Fatalf("second Builtin() failed: %v", err)
	}
	if c != c2 {
		t.Error("expected Builtin to return the same instance")
	}

	if c.Platform == nil {
		t.Fatal("expected platform tables in embedded catalog")
	}
}

func TestCatalog_Get(t *testing.T) {
	c, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin() failed: %v", err)
	}

	p, err := c.Get(DefaultID)
	if err != nil {
		t.Fatalf("Get(%q) failed: %v", DefaultID, err)
	}
	if p.ID != DefaultID {
		t.Errorf("ID = %q, want %q", p.ID, DefaultID)
	}
	if p.Platform != c.Platform {
		t.Error("profile should share the catalog platform tables")
	}

	_, err = c.Get("1234")
	var unknown *UnknownTargetError
	if !errors.As(err, &unknown) {
		t.Fatalf("Get(1234) error = %v, want *UnknownTargetError", err)
	}
	if unknown.ID != "1234" {
		t.Errorf("UnknownTargetError.ID = %q, want 1234", unknown.ID)
	}
	if !strings.Contains(err.Error(), "8960") {
		t.Errorf("error should list known targets, got: %v", err)
	}
}

func TestProfile_Lookups(t *testing.T) {
	c, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin() failed: %v", err)
	}

	tests := []struct {
		target string
		got    func(p *Profile) string
		want   string
	}{
		{"8660", func(p *Profile) string { return p.ResourceName(5) }, `"CXO"`},
		{"8660", func(p *Profile) string { return p.ResourceName(500) }, `"Unknown resource 500"`},
		{"8960", func(p *Profile) string { return p.ResourceName(4) }, `"Unknown resource 4"`},
		{"8064", func(p *Profile) string { return p.ResourceName(10) }, `"NSS0 Fabric Clock"`},
		{"8660", func(p *Profile) string { return p.MasterName(1) }, `"MSS"`},
		{"8064", func(p *Profile) string { return p.MasterName(1) }, `"GSS"`},
		{"8660", func(p *Profile) string { return p.MasterName(9) }, `"Unknown master 9"`},
		{"8660", func(p *Profile) string { return p.InterruptName(0) }, "timetick"},
		{"8660", func(p *Profile) string { return p.InterruptName(64) }, "Unknown interrupt 64"},
		{"8064", func(p *Profile) string { return p.SMBClientName(3) }, "CLKRGM_SMB_CLIENT_FABRIC"},
		{"8064", func(p *Profile) string { return p.SMBClientName(99) }, "Unknown client 99"},
		{"8064", func(p *Profile) string { return p.PMICRailName(3) }, "IPQ_PMIC_VDD_CX"},
		{"8064", func(p *Profile) string { return p.PMICRailName(8) }, "Unknown rail 8"},
		{"8064", func(p *Profile) string { return p.PMICClientName(4) }, "IPQ_PMIC_CLIENTS_FABRIC"},
		{"8064", func(p *Profile) string { return p.SMBLevelVoltage(1) }, "110000"},
		{"8064", func(p *Profile) string { return p.SMBLevelVoltage(7) }, "Unknown level 7"},
	}

	for _, tt := range tests {
		t.Run(tt.target+"/"+tt.want, func(t *testing.T) {
			p, err := c.Get(tt.target)
			if err != nil {
				t.Fatalf("Get(%q) failed: %v", tt.target, err)
			}
			if got := tt.got(p); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProfile_NilPlatform(t *testing.T) {
	p := &Profile{ID: "x"}
	if got := p.SMBClientName(1); got != "Unknown client 1" {
		t.Errorf("SMBClientName() = %q, want placeholder", got)
	}
	if got := p.ResourceName(1); got != `"Unknown resource 1"` {
		t.Errorf("ResourceName() = %q, want placeholder", got)
	}
}

func TestLoadFile_With(t *testing.T) {
	fs := afero.NewMemMapFs()
	extra := `
targets:
  "9999":
    name: "Lab board"
    resources:
      0: "Only Resource"
    masters:
      0: "APPS"
  "8660":
    name: "MSM8660 (patched)"
    resources:
      5: "XO"
`
	if err := afero.WriteFile(fs, "/extra.yaml", []byte(extra), 0644); err != nil {
		t.Fatal(err)
	}

	other, err := LoadFile(fs, "/extra.yaml")
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}

	builtin, err := Builtin()
	if err != nil {
		t.Fatal(err)
	}
	merged := builtin.With(other)

	if merged.Count() != builtin.Count()+1 {
		t.Errorf("merged Count() = %d, want %d", merged.Count(), builtin.Count()+1)
	}

	lab, err := merged.Get("9999")
	if err != nil {
		t.Fatalf("Get(9999) failed: %v", err)
	}
	if got := lab.MasterName(0); got != `"APPS"` {
		t.Errorf("MasterName(0) = %q", got)
	}
	// extra file has no platform section, so built-in tables are kept
	if got := lab.SMBClientName(1); got != "CLKRGM_SMB_CLIENT_MCPU" {
		t.Errorf("SMBClientName(1) = %q, want built-in platform name", got)
	}

	patched, err := merged.Get("8660")
	if err != nil {
		t.Fatal(err)
	}
	if got := patched.ResourceName(5); got != `"XO"` {
		t.Errorf("overridden ResourceName(5) = %q, want \"XO\"", got)
	}

	// the built-in catalog is untouched
	orig, _ := builtin.Get("8660")
	if got := orig.ResourceName(5); got != `"CXO"` {
		t.Errorf("builtin ResourceName(5) = %q after merge, want \"CXO\"", got)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()
	if _, err := LoadFile(fs, "/missing.yaml"); err == nil {
		t.Error("expected error for missing file")
	}

	if err := afero.WriteFile(fs, "/bad.yaml", []byte("targets: [oops"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(fs, "/bad.yaml"); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
