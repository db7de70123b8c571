// Package logging provides structured logging for netscen.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used throughout the wizard. Logging is silent unless a level is
// configured, either explicitly or via NETSCEN_LOG_LEVEL.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (validation details, persisted sizes)
//   - Info: Normal operations (step transitions, submit, reset)
//   - Warn: Non-fatal issues (failed persistence, repaired records)
//   - Error: Fatal issues (startup failures)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Scenario submitted",
//	    zap.String("key", "networkScenarioData"),
//	    zap.Int("step", 5),
//	)
//
// # Specialized Logging
//
// Step transitions:
//
//	logging.LogTransition("advance", 0, 1)
//
// Persistence:
//
//	logging.LogPersist(key, len(data), err)
//
// Blocked forward navigation:
//
//	logging.LogValidation("subscriber", problems)
//
// # Configuration
//
// The CLI initializes logging before running any command. The interactive
// wizard logs to a file so output does not corrupt the terminal UI:
//
//	if err := logging.InitializeWithOutput(cfg.Logging.Level, cfg.Logging.File); err != nil {
//	    return err
//	}
//	defer logging.Sync()
package logging
