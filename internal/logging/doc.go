// Package logging provides structured logging for debloater.
//
// This package wraps a zap logger with convenience functions and a few
// domain helpers for the events that matter when diagnosing a session: device
// queries, catalog loads, controller events, scheduled commands and stale
// results.
//
// # Silent by Default
//
// Logging is disabled unless a level is given explicitly or through the
// DEBLOATER_LOG_LEVEL environment variable:
//
//	DEBLOATER_LOG_LEVEL=debug debloater
//
// # Output
//
// The terminal UI owns stdout, so when it runs the logger writes to a file
// (by default debloater.log next to the configuration file):
//
//	if err := logging.InitializeWithOptions(logging.Options{
//	    Level: "debug",
//	    File:  "/tmp/debloater.log",
//	}); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// CLI subcommands log to stdout in coloured console format.
//
// # Structured Logging
//
//	logging.Info("Device identified",
//	    zap.String("serial", "R58M1234"),
//	    zap.String("label", "samsung SM-G991B"),
//	)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use; the asynchronous load
// commands log from their own goroutines.
package logging
