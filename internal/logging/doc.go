// Package logging provides structured logging for the rpmlog tool.
//
// This package wraps a zap logger with convenience functions for the events
// the decoder cares about. Decoded output and user-facing diagnostics never go
// through here; the logger is for tool internals only.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (raw lines, framed records, skipped dump lines)
//   - Info: Normal operations (profile selection, files loaded, run totals)
//   - Warn: Non-fatal issues (records that failed to decode, features disabled)
//   - Error: Fatal issues (setup failures)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Target profile selected",
//	    zap.String("target", "8960"),
//	    zap.Int("resources", 42),
//	)
//
// # Specialized Logging
//
//	logging.LogFileLoaded("ulog", path, size, lines)
//	logging.LogRawLine(lineNo, line)
//	logging.LogRecordFailure(lineNo, err)
//
// # Configuration
//
// Logging is silent unless RPMLOG_LOG_LEVEL (or --log-level) is set:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// Logs are written to stderr so they never interleave with decoded output on
// stdout.
package logging
