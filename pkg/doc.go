// Package pkg provides shared utilities for the usbd-hid-device library.
//
// This package contains common functionality used across the driver and
// the stack-facing capability packages, including:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel error types for class-driver failure conditions
//   - Component identifiers for log filtering
//
// The package is designed to have zero external dependencies, relying
// only on the Go standard library.
//
// # Logging
//
// The logging subsystem wraps [log/slog] with driver-specific context:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogInfo(pkg.ComponentHID, "report sent", "len", 4)
//
// # Errors
//
// Failure conditions are defined as sentinel values:
//
//	if errors.Is(err, pkg.ErrWouldBlock) {
//	    // Previous packet still in flight; retry on the next loop pass.
//	}
package pkg
