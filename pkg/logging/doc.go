// Package logging provides structured logging utilities for craftgrid components.
//
// # Overview
//
// Logs are JSON records written to stderr through log/slog. Every record
// carries the emitting module and its version; debug level adds source
// locations.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger:
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("craftd", "v1.0.0")
//	    slog.Info("catalog loaded", "recipes", catalog.Len())
//	}
//
// Setting an explicit log level, e.g. from a CLI flag:
//
//	logging.SetDefaultStructuredLoggerWithLevel("craftctl", "v1.0.0", "warn")
//
// Bridging code that expects a *log.Logger, such as http.Server.ErrorLog:
//
//	srv.ErrorLog = logging.NewLogLogger(slog.LevelWarn, false)
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity when no
// explicit level is given:
//
//	LOG_LEVEL=debug craftctl match --catalog recipes.yaml --grid grid.yaml
//
// # Output Format
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "recipe matched",
//	    "module": "craftd",
//	    "version": "v1.0.0",
//	    "recipe": "torch"
//	}
package logging
