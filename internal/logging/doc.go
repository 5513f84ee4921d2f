// Package logging provides structured logging helpers built on log/slog.
//
// It defines the attribute keys shared across the codebase so log lines
// stay queryable, and small constructors for the common attributes
// (operation, service, status, error). The Err helper is nil-safe and can
// be passed an error unconditionally.
package logging
