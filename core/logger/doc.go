// Package logger provides structured logging based on Zap.
//
// New builds a logger from Config: the debug level uses zap's development
// preset, other levels the production preset; the format selects console or
// json encoding; File adds a second output path.
//
// # Request Logging
//
// WithRayID attaches the ray id set by the rayid middleware to a logger, so
// every line logged while handling one request can be correlated. Request is
// the middleware that logs each request with it.
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Definition update failed", zap.Error(err))
package logger
