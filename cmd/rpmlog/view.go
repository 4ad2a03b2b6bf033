package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/muurk/rpmlog/internal/ui"
)

// viewCmd implements the 'view' command
var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Decode a log and browse it in a pager",
	Long: `Decode a ULog file and open the result in a scrollable pager.

Takes the same flags as a plain decode. Warnings and per-line errors are
shown inline, at the point in the log where they occurred.`,
	Example: `  rpmlog view -f rpm.ulog -n npa_dump.txt`,
	Args:    cobra.NoArgs,
	RunE:    runView,
}

func init() {
	addDecodeFlags(viewCmd)
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	initLogging()

	printer := ui.NewPrinter(os.Stderr)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		err := fmt.Errorf("stdout is not a terminal")
		printer.Failure(ui.NewFailure("Open pager", err, []string{
			"Run without 'view' to write decoded output to a pipe or file",
		}, printer.Width()))
		return err
	}

	s, err := loadSettings(cmd)
	if err != nil {
		reportSetupFailure(printer, err)
		return err
	}

	var buf bytes.Buffer
	sess, err := newSession(s, ui.NewPlainDiagnostics(&buf))
	if err != nil {
		reportSetupFailure(printer, err)
		return err
	}

	summary, err := sess.decoder.Run(sess.lines, &buf)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s  %s  %d/%d decoded", filepath.Base(s.File), sess.profile.ID, summary.Decoded, summary.Attempted())
	return ui.RunPager(title, buf.String())
}
