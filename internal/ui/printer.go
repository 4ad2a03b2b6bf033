package ui

import (
	"fmt"
	"io"
)

// Printer writes run decoration (header, summary, failures) to one writer.
// Boxes are only drawn on a terminal; otherwise headers are skipped and
// summaries and failures fall back to plain text.
type Printer struct {
	out    io.Writer
	width  int
	styled bool
}

// NewPrinter creates a printer for out, detecting terminal support
func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out:    out,
		width:  GetTerminalWidth(out),
		styled: IsTerminal(out),
	}
}

// NewPlainPrinter creates a printer that never styles its output
func NewPlainPrinter(out io.Writer) *Printer {
	return &Printer{out: out, width: MinTerminalWidth}
}

// Styled reports whether boxes are drawn
func (p *Printer) Styled() bool {
	return p.styled
}

// Width returns the content width used for boxes
func (p *Printer) Width() int {
	return p.width
}

// Header prints the run banner. Nothing is printed in plain mode.
func (p *Printer) Header(h *Header) {
	if !p.styled {
		return
	}
	h.Width = p.width
	fmt.Fprintln(p.out, h.Render())
	fmt.Fprintln(p.out)
}

// Summary prints the end-of-run summary
func (p *Printer) Summary(s *Summary) {
	if !p.styled {
		fmt.Fprint(p.out, s.Plain())
		return
	}
	s.Width = p.width
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, s.Render())
}

// Failure prints a setup failure
func (p *Printer) Failure(f *Failure) {
	if !p.styled {
		fmt.Fprint(p.out, f.Plain())
		return
	}
	f.Width = p.width
	fmt.Fprintln(p.out, f.Render())
}
