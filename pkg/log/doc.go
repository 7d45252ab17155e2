// Package log provides structured protocol logging for the gateway client.
//
// This package defines the Logger interface and Event types for capturing
// protocol-level events: control submissions, poll attempts, terminal
// outcomes, and decode errors. It is separate from operational logging
// (slog) - protocol capture provides a complete machine-readable trace of
// every gateway exchange for debugging a reverse-engineered vendor contract.
//
// # Basic Usage
//
// Callers configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	executor := control.NewExecutor(gw, log.NewSlogAdapter(slog.Default()))
//
//	// For production: write to binary file
//	fl, _ := log.NewFileLogger("/var/log/smartlink/protocol.slog")
//
//	// Both: use MultiLogger
//	logger := log.NewMultiLogger(log.NewSlogAdapter(slog.Default()), fl)
//
// # File Format
//
// Log files are a stream of CBOR-encoded events with integer keys. The
// Reader type streams them back, optionally filtered by execution, category,
// box, or time range.
package log
