// Package logger provides structured logging for the reconciliation service,
// based on Zap.
//
// The logger is configured for two environments: JSON encoding for
// production and colorized console encoding for development. Log level and
// encoding come from the application configuration.
//
// # Request Correlation
//
// HTTP handlers correlate log entries per request through a ray id set by
// the rayid middleware. WithRayID extracts it from the Fiber context and
// attaches it to the log entry.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Reconciliation complete")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Reconciliation failed", zap.Error(err))
package logger
