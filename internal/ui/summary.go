package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/dustin/go-humanize"

	"github.com/muurk/rpmlog/internal/decode"
)

// Summary is the end-of-run box printed after decoding.
type Summary struct {
	File    string
	Size    int64
	Target  string
	Result  *decode.Summary
	Elapsed string
	Width   int
}

// Title returns the headline for the run outcome
func (s *Summary) Title() string {
	if s.Result.Failed() == 0 {
		return "DECODE COMPLETE"
	}
	return "DECODE COMPLETE WITH ERRORS"
}

// Render returns the styled summary box
func (s *Summary) Render() string {
	width := s.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	color := SuccessColor
	title := SuccessTitleStyle.Render(fmt.Sprintf("   %s  %s", SuccessMarker, s.Title()))
	if s.Result.Failed() > 0 {
		color = WarningColor
		title = WarningTitleStyle.Render(fmt.Sprintf("   %s  %s", WarningMarker, s.Title()))
	}

	barWidth := width - 16
	if barWidth > 60 {
		barWidth = 60
	}
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
	)

	lines := []string{"", title, "", "   " + bar.ViewAs(s.Result.DecodedRatio()), ""}
	for _, d := range s.details() {
		lines = append(lines, "   "+ResultKeyStyle.Render(d.Key+":")+" "+ResultValueStyle.Render(d.Value))
	}
	lines = append(lines, "")

	return BoxStyle(width, color).Render(strings.Join(lines, "\n"))
}

// Plain renders the summary without styling
func (s *Summary) Plain() string {
	var b strings.Builder
	b.WriteString(s.Title() + "\n")
	for _, d := range s.details() {
		fmt.Fprintf(&b, "  %-16s %s\n", d.Key+":", d.Value)
	}
	return b.String()
}

func (s *Summary) details() []Param {
	r := s.Result
	details := []Param{
		{"File", fmt.Sprintf("%s (%s)", s.File, humanize.Bytes(uint64(s.Size)))},
		{"Target", s.Target},
		{"Lines", humanize.Comma(int64(r.Lines))},
		{"Decoded", fmt.Sprintf("%s (%.1f%%)", humanize.Comma(int64(r.Decoded)), r.DecodedRatio()*100)},
	}

	for _, k := range decode.AllKinds {
		if n := r.Failures[k]; n > 0 {
			details = append(details, Param{"Skipped " + k.String(), humanize.Comma(int64(n))})
		}
	}

	if r.TimingDisabled {
		details = append(details, Param{"High precision", "disabled (no counter data)"})
	}
	if s.Elapsed != "" {
		details = append(details, Param{"Elapsed", s.Elapsed})
	}
	return details
}

// String implements fmt.Stringer
func (s *Summary) String() string {
	return s.Render()
}
