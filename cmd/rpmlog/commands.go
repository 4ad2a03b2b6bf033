package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/rpmlog/internal/config"
	"github.com/muurk/rpmlog/internal/decode"
	"github.com/muurk/rpmlog/internal/logging"
	"github.com/muurk/rpmlog/internal/messages"
	"github.com/muurk/rpmlog/internal/npa"
	"github.com/muurk/rpmlog/internal/target"
	"github.com/muurk/rpmlog/internal/ui"
)

// Command flags
var (
	logFile        string
	npaDump        string
	rawTimestamp   bool
	prettyTimestamp bool
	highPrecision  bool
	targetID       string
	profilesFile   string
	logLevel       string
)

// osFs is where log, dump and profile files are read from
var osFs = afero.NewOsFs()

func init() {
	addDecodeFlags(rootCmd)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Internal log level (debug, info, warn, error); overrides "+logging.LogLevelEnvVar)
}

// addDecodeFlags registers the decode flags on cmd. The root command and
// 'view' share them.
func addDecodeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&logFile, "file", "f", "", "ULog file to decode")
	cmd.Flags().StringVarP(&npaDump, "npa_dump", "n", "", "NPA dump used to resolve client and resource handles")
	cmd.Flags().BoolVarP(&rawTimestamp, "raw_timestamp", "r", false, "Print timestamps as raw hex tick counts")
	cmd.Flags().BoolVarP(&prettyTimestamp, "pretty_timestamp", "p", false, "Print timestamps in seconds (default)")
	cmd.Flags().BoolVarP(&highPrecision, "high_precision", "x", false, "Append high-precision counter deltas to timestamps")
	cmd.Flags().StringVarP(&targetID, "target", "t", target.DefaultID, "Target chipset id")
	cmd.Flags().StringVar(&profilesFile, "profiles", "", "Extra target profile YAML merged over the built-in tables")

	_ = cmd.MarkFlagRequired("file")
	cmd.MarkFlagsMutuallyExclusive("raw_timestamp", "pretty_timestamp")
}

// settings is the effective configuration of one run: config file
// preferences overridden by any flag set on the command line.
type settings struct {
	File          string
	NPADump       string
	Target        string
	Profiles      string
	Timestamps    decode.TimestampFormat
	HighPrecision bool
	Diagnostics   string
}

func resolveSettings(cmd *cobra.Command, reg *config.Registry) settings {
	prefs := reg.Preferences
	if prefs == nil {
		prefs = config.DefaultPreferences()
	}
	changed := cmd.Flags().Changed

	s := settings{
		File:          logFile,
		NPADump:       npaDump,
		Target:        prefs.DefaultTarget,
		Profiles:      reg.Profiles,
		HighPrecision: prefs.HighPrecision,
		Diagnostics:   prefs.Diagnostics,
	}
	if prefs.RawTimestamp {
		s.Timestamps = decode.TimestampRaw
	}

	if changed("target") {
		s.Target = targetID
	}
	if changed("profiles") {
		s.Profiles = profilesFile
	}
	if changed("high_precision") {
		s.HighPrecision = highPrecision
	}
	switch {
	case changed("raw_timestamp") && rawTimestamp:
		s.Timestamps = decode.TimestampRaw
	case changed("pretty_timestamp") && prettyTimestamp:
		s.Timestamps = decode.TimestampPretty
	}

	if s.Target == "" {
		s.Target = target.DefaultID
	}
	return s
}

// session is everything a decode needs, prepared before the first line is
// read. Any error while building it is a setup failure.
type session struct {
	settings settings
	profile  *target.Profile
	resolver *npa.Resolver
	decoder  *decode.Decoder
	lines    []string
	size     int64
}

// setupError pairs a setup failure with its troubleshooting tips
type setupError struct {
	title string
	tips  []string
	err   error
}

func (e *setupError) Error() string {
	return fmt.Sprintf("%s: %v", strings.ToLower(e.title), e.err)
}

func (e *setupError) Unwrap() error {
	return e.err
}

func initLogging() {
	if err := logging.Initialize(logLevel); err != nil {
		// Fall back to the silent logger on a bad level
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		_ = logging.Initialize("")
	}
}

func loadSettings(cmd *cobra.Command) (settings, error) {
	reg, err := config.LoadRegistry()
	if err != nil {
		path, _ := config.GetConfigPath()
		return settings{}, &setupError{
			title: "Load configuration",
			err:   err,
			tips: []string{
				"Check the file: " + path,
				"Recreate it with: rpmlog config init --force",
			},
		}
	}
	return resolveSettings(cmd, reg), nil
}

// newSession loads the target profile, the optional NPA dump and the log
// file. diag receives resolver and decoder diagnostics.
func newSession(s settings, diag *ui.Diagnostics) (*session, error) {
	catalog, err := target.Builtin()
	if err != nil {
		return nil, &setupError{title: "Load target profiles", err: err}
	}
	if s.Profiles != "" {
		extra, err := target.LoadFile(osFs, s.Profiles)
		if err != nil {
			return nil, &setupError{
				title: "Load target profiles",
				err:   err,
				tips:  []string{"Check the --profiles file follows the targets.yaml schema"},
			}
		}
		catalog = catalog.With(extra)
	}

	profile, err := catalog.Get(s.Target)
	if err != nil {
		return nil, &setupError{
			title: "Select target",
			err:   err,
			tips:  []string{"List supported targets: rpmlog targets"},
		}
	}
	logging.Info("Target selected", zap.String("target", profile.ID), zap.String("name", profile.Name))

	resolver := npa.NewResolver(diag)
	if s.NPADump != "" {
		stats, err := resolver.LoadFile(osFs, s.NPADump)
		if err != nil {
			return nil, &setupError{
				title: "Load NPA dump",
				err:   err,
				tips:  []string{"Check the --npa_dump path", "Run without -n to print handles as hex"},
			}
		}
		logging.Info("NPA dump loaded", zap.Stringer("stats", stats))
	}

	lines, size, err := decode.ReadLines(osFs, s.File)
	if err != nil {
		return nil, &setupError{
			title: "Read log file",
			err:   err,
			tips:  []string{"Check the --file path"},
		}
	}

	registry, err := messages.Default()
	if err != nil {
		return nil, &setupError{title: "Build message registry", err: err}
	}

	opts := decode.Options{Timestamps: s.Timestamps, HighPrecision: s.HighPrecision}
	return &session{
		settings: s,
		profile:  profile,
		resolver: resolver,
		decoder:  decode.New(registry, profile, resolver, opts, diag),
		lines:    lines,
		size:     size,
	}, nil
}

// header describes the run for the banner
func (s *session) header(command string) *ui.Header {
	h := ui.NewHeader("RPM log decode", command, 0).
		Add("Log file", s.settings.File).
		Add("Target", fmt.Sprintf("%s (%s)", s.profile.ID, s.profile.Name)).
		Add("Timestamps", s.settings.Timestamps.String())
	if s.settings.NPADump != "" {
		h.Add("NPA dump", s.settings.NPADump)
	}
	if s.settings.HighPrecision {
		h.Add("High precision", "on")
	}
	return h
}

// diagnosticsWriter returns the destination configured for warnings and
// per-line errors. Diagnostics sent to stdout share the decode output
// writer so they stay in line order.
func diagnosticsWriter(s settings, out io.Writer) io.Writer {
	if s.Diagnostics == config.DiagnosticsStdout {
		return out
	}
	return os.Stderr
}

// reportSetupFailure prints a failure box for err on stderr
func reportSetupFailure(printer *ui.Printer, err error) {
	if se, ok := err.(*setupError); ok {
		printer.Failure(ui.NewFailure(se.title, se.err, se.tips, printer.Width()))
		return
	}
	printer.Failure(ui.NewFailure("Decode", err, nil, printer.Width()))
}

func runDecode(cmd *cobra.Command, args []string) error {
	// Suppress usage on execution errors (we're past argument parsing)
	cmd.SilenceUsage = true
	initLogging()

	printer := ui.NewPrinter(os.Stderr)

	s, err := loadSettings(cmd)
	if err != nil {
		reportSetupFailure(printer, err)
		return err
	}

	out := bufio.NewWriter(os.Stdout)
	diag := ui.NewDiagnostics(diagnosticsWriter(s, out))
	sess, err := newSession(s, diag)
	if err != nil {
		reportSetupFailure(printer, err)
		return err
	}
	logging.LogFileLoaded("log", s.File, sess.size, len(sess.lines))

	printer.Header(sess.header(cmd.CommandPath() + " " + strings.Join(os.Args[1:], " ")))

	start := time.Now()
	summary, err := sess.decoder.Run(sess.lines, out)
	if flushErr := out.Flush(); err == nil && flushErr != nil {
		err = fmt.Errorf("failed to write output: %w", flushErr)
	}
	if err != nil {
		return err
	}

	if printer.Styled() {
		printer.Summary(&ui.Summary{
			File:    s.File,
			Size:    sess.size,
			Target:  sess.profile.ID,
			Result:  summary,
			Elapsed: time.Since(start).Round(time.Millisecond).String(),
		})
	}
	return nil
}
