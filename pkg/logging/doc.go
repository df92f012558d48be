// Package logging provides structured logging utilities for fleetwatch components.
//
// # Overview
//
// This package wraps the standard library slog package with fleetwatch-specific
// defaults and conventions for consistent logging across all components. It
// supports environment-based log level configuration, module/version context
// injection, and automatic source location tracking for debug logs.
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
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("fleetwatch", "v1.0.0")
//
//	    // Use slog as normal
//	    slog.Info("collecting datasets", "tenant", "acme")
//	    slog.Error("collection failed", "error", err)
//	}
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("fleetwatch", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug fleetwatch report --tenant acme
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2026-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "report written",
//	    "module": "fleetwatch",
//	    "version": "v1.0.0",
//	    "path": "reports/acme.xlsx"
//	}
package logging
