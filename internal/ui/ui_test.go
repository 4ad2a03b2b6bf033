package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/rpmlog/internal/decode"
)

func TestDiagnostics_Plain(t *testing.T) {
	var buf bytes.Buffer
	d := NewDiagnostics(&buf)

	d.Warn("no NPA dump loaded.")
	d.Error("line 3: cannot parse \"x\": missing prefix")
	d.Warn("second")

	want := "WARNING: no NPA dump loaded.\n" +
		"ERROR: line 3: cannot parse \"x\": missing prefix\n" +
		"WARNING: second\n"
	if got := buf.String(); got != want {
		t.Errorf("output mismatch\ngot:  %q\nwant: %q", got, want)
	}

	warnings, errs := d.Counts()
	if warnings != 2 || errs != 1 {
		t.Errorf("Counts() = (%d, %d), want (2, 1)", warnings, errs)
	}
}

func TestPrinter_Plain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	if p.Styled() {
		t.Fatal("bytes.Buffer should not be treated as a terminal")
	}

	p.Header(NewHeader("RPM log decode", "rpmlog -f x", 80).Add("Target", "8660"))
	if buf.Len() != 0 {
		t.Errorf("header should be skipped in plain mode, got %q", buf.String())
	}

	p.Failure(NewFailure("Load NPA dump", errors.New("file not found"), []string{"Check the path"}, 80))
	got := buf.String()
	for _, want := range []string{"Error: Load NPA dump: file not found", "  - Check the path"} {
		if !strings.Contains(got, want) {
			t.Errorf("failure output missing %q:\n%s", want, got)
		}
	}
}

func TestSummary(t *testing.T) {
	result := decode.NewSummary()
	result.Lines = 12
	result.Blank = 2
	result.Decoded = 8
	result.Failures[decode.KindFormat] = 1
	result.Failures[decode.KindOpcode] = 1
	result.TimingDisabled = true

	s := &Summary{File: "boot.ulog", Size: 2048, Target: "8660", Result: result}

	if got := s.Title(); got != "DECODE COMPLETE WITH ERRORS" {
		t.Errorf("Title() = %q", got)
	}

	plain := s.Plain()
	for _, want := range []string{
		"boot.ulog (2.0 kB)",
		"Decoded:",
		"8 (80.0%)",
		"Skipped format:",
		"Skipped unknown message:",
		"High precision:",
	} {
		if !strings.Contains(plain, want) {
			t.Errorf("Plain() missing %q:\n%s", want, plain)
		}
	}
	if strings.Contains(plain, "Skipped payload") {
		t.Errorf("Plain() should omit kinds with no failures:\n%s", plain)
	}

	// Render must not panic and must carry the title
	if !strings.Contains(s.Render(), "DECODE COMPLETE WITH ERRORS") {
		t.Error("Render() missing title")
	}

	clean := &Summary{File: "a", Target: "8960", Result: decode.NewSummary()}
	if got := clean.Title(); got != "DECODE COMPLETE" {
		t.Errorf("Title() for clean run = %q", got)
	}
}

func TestPagerModel(t *testing.T) {
	content := strings.Repeat("0.000000: rpm_bringup_req\n", 200)
	m := NewPagerModel("boot.ulog", content)

	if got := m.View(); got != "Loading..." {
		t.Errorf("View() before size = %q", got)
	}

	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = model.(PagerModel)
	if !m.Ready {
		t.Fatal("pager should be ready after WindowSizeMsg")
	}

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	m = model.(PagerModel)
	if m.ScrollOffset() == 0 {
		t.Error("G should scroll to the bottom")
	}

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	m = model.(PagerModel)
	if m.ScrollOffset() != 0 {
		t.Errorf("g should scroll to the top, offset = %d", m.ScrollOffset())
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
}
