// Package ui provides terminal output components for the rpmlog CLI.
//
// Decoded records always go to stdout as plain text. Everything else the tool
// prints (run header, warnings, per-line errors, the run summary and setup
// failures) goes through this package and is styled with Lipgloss when the
// destination is a terminal.
//
// # Components
//
//   - Header: run banner with the input file, target and options
//   - Diagnostics: sink for resolver, timing and per-line messages
//   - Summary: decoded/failed counts with a ratio bar
//   - Failure: setup error box with troubleshooting tips
//   - Pager: Bubble Tea viewer for `rpmlog view`
//
// # Plain Mode
//
// When the destination is not a terminal, boxes are skipped and diagnostics
// are written as bare "WARNING: ..." and "ERROR: ..." lines so redirected
// output stays grep-friendly.
//
// # Logging Integration
//
// zap logging is controlled separately via RPMLOG_LOG_LEVEL and is silent by
// default, so the curated output is displayed cleanly.
package ui
