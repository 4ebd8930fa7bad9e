// Package logging provides structured logging for viewloop.
//
// This package wraps zap logger with convenience functions for the logging
// patterns used throughout the project. Because a running application owns
// the terminal, log output always goes to a file; writing to stdout would
// corrupt the frame the run loop is drawing.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed loop activity (swap requests, dropped requests)
//   - Info: Lifecycle events (initialization, loop start/stop)
//   - Warn: Non-fatal issues
//   - Error: Fatal issues (surface acquisition, event source failures)
//
// # Configuration
//
// Logging is silent by default. Enable it with the VIEWLOOP_LOG_LEVEL
// environment variable or an explicit level, and pick the destination with
// VIEWLOOP_LOG_FILE (default "viewloop.log"):
//
//	if err := logging.Initialize("debug", ""); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
