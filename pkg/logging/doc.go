// Package logging provides structured logging utilities for the nutritional
// score service.
//
// The package wraps log/slog with the conventions shared by the API server,
// the CLI and the benchmark harness: JSON records on stderr, a module and
// version attached to every record, and the level taken from LOG_LEVEL or
// an explicit flag.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: diagnostic detail, records include source location
//   - INFO: general operational messages (default)
//   - WARN/WARNING: potentially problematic situations
//   - ERROR: failures requiring attention
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("nutriscored", version)
//	    slog.Info("server starting", "port", 8080)
//	}
//
// Setting an explicit level (e.g. from a CLI flag):
//
//	logging.SetDefaultStructuredLoggerWithLevel("nutriscore", version, "debug")
//
// Bridging APIs that still take a *log.Logger, such as http.Server.ErrorLog:
//
//	srv.ErrorLog = logging.NewLogLogger(slog.LevelWarn, false)
//
// # Output Format
//
//	{"time":"2025-01-15T10:30:00.123Z","level":"INFO","msg":"server started",
//	 "module":"nutriscored","version":"v1.0.0","port":8080}
package logging
