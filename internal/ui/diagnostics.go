package ui

import (
	"fmt"
	"io"
	"sync"
)

// Diagnostics writes warnings and per-line errors to a writer. It satisfies
// the Warner interfaces of the npa and timing packages and the decode
// Diagnostics interface.
type Diagnostics struct {
	mu     sync.Mutex
	out    io.Writer
	styled bool

	warnings int
	errors   int
}

// NewDiagnostics creates a sink writing to out. Styling is enabled when out
// is a terminal.
func NewDiagnostics(out io.Writer) *Diagnostics {
	return &Diagnostics{out: out, styled: IsTerminal(out)}
}

// NewPlainDiagnostics creates a sink that never styles its output
func NewPlainDiagnostics(out io.Writer) *Diagnostics {
	return &Diagnostics{out: out}
}

// Warn writes a warning line
func (d *Diagnostics) Warn(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.warnings++
	d.write("WARNING", WarningLabelStyle.Render(WarningMarker+" WARNING"), msg)
}

// Error writes an error line
func (d *Diagnostics) Error(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.errors++
	d.write("ERROR", ErrorLabelStyle.Render(FailureMarker+" ERROR"), msg)
}

// Counts returns the number of warnings and errors written so far
func (d *Diagnostics) Counts() (warnings, errors int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.warnings, d.errors
}

func (d *Diagnostics) write(plainLabel, styledLabel, msg string) {
	if d.styled {
		fmt.Fprintf(d.out, "%s %s\n", styledLabel, DiagnosticTextStyle.Render(msg))
		return
	}
	fmt.Fprintf(d.out, "%s: %s\n", plainLabel, msg)
}
