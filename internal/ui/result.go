package ui

import (
	"fmt"
	"strings"
)

// Failure is a setup error box shown when decoding cannot start.
type Failure struct {
	Title           string
	Error           error
	Troubleshooting []string
	Width           int
}

// NewFailure creates a failure box
func NewFailure(title string, err error, troubleshooting []string, width int) *Failure {
	return &Failure{
		Title:           title,
		Error:           err,
		Troubleshooting: troubleshooting,
		Width:           width,
	}
}

// Render returns the styled failure box as a string
func (f *Failure) Render() string {
	width := f.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	lines := []string{
		"",
		ErrorTitleStyle.Render(fmt.Sprintf("   %s  FAILED  ─  %s", FailureMarker, f.Title)),
		"",
	}

	if f.Error != nil {
		lines = append(lines, ErrorMessageStyle.Render("   Error: "+f.Error.Error()), "")
	}

	if len(f.Troubleshooting) > 0 {
		tips := []string{TroubleshootingTitleStyle.Render("Troubleshooting:"), ""}
		for _, tip := range f.Troubleshooting {
			tips = append(tips, TroubleshootingItemStyle.Render("  • "+tip))
		}
		lines = append(lines, TroubleshootingBoxStyle(width).Render(strings.Join(tips, "\n")), "")
	}

	return BoxStyle(width, ErrorColor).Render(strings.Join(lines, "\n"))
}

// Plain renders the failure without styling
func (f *Failure) Plain() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: %s", f.Title)
	if f.Error != nil {
		fmt.Fprintf(&b, ": %v", f.Error)
	}
	b.WriteString("\n")
	for _, tip := range f.Troubleshooting {
		fmt.Fprintf(&b, "  - %s\n", tip)
	}
	return b.String()
}

// String implements fmt.Stringer
func (f *Failure) String() string {
	return f.Render()
}
