// Rpmlog decodes RPM firmware ULog traces into readable text.
//
// The RPM (resource and power manager) writes binary trace records into a
// ULog buffer that is usually captured as text, one record per line:
//
//	- 2c, 01, 00, 00, 00, 00, 00, 00,
//
// rpmlog frames each line into a timestamp, a message id and a payload and
// prints one "<timestamp>: <message>" line per record. NPA client and
// resource handles are resolved to names when an NPA dump is supplied.
//
// Usage:
//
//	rpmlog -f <log> [-n <npa dump>] [-t <target>] [-r | -p] [-x]
//
// See 'rpmlog --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/rpmlog/internal/logging"
	"github.com/muurk/rpmlog/internal/version"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rpmlog",
	Short: "RPM ULog trace decoder",
	Long: `Decode RPM firmware ULog traces into readable text.

Each input line holds one raw record as comma separated hex bytes. Decoded
records are written to stdout; warnings and per-line errors go to stderr
(or stdout, see 'rpmlog config').

A line that cannot be decoded is reported and skipped. Only setup problems
(missing log file, unknown target, unreadable NPA dump) stop the run.`,
	Version: version.Version,
	Example: `  # Decode a log for the default target
  rpmlog -f rpm.ulog

  # Resolve NPA handles and print raw tick counts
  rpmlog -f rpm.ulog -n npa_dump.txt -r

  # Decode an 8960 log with high-precision deltas
  rpmlog -f rpm.ulog -t 8960 -x

  # Browse the decoded log in a pager
  rpmlog view -f rpm.ulog`,
	Args: cobra.NoArgs,
	RunE: runDecode,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("{{.Name}} " + version.Full() + "\n")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Banner("rpmlog"))
	},
}
