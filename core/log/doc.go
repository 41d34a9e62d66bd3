// Package log provides structured logging for utilkit.
//
// Package: log
// Title: Structured Logging
// Description: A small structured logger with levels, contextual fields,
//              JSON and text formats, and integration with the structured
//              error type. The process default logger is the warning channel
//              the helpers use for non-fatal diagnostics.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-14 v0.2.0: Reduced to the synchronous core
//
// Usage:
//
//	logger := mdwlog.NewWithConfig(mdwlog.Config{
//		Level:  mdwlog.LevelDebug,
//		Format: mdwlog.FormatText,
//		Output: os.Stderr,
//		Name:   "utilkit",
//	})
//	previous := mdwlog.SetDefault(logger)
//	defer mdwlog.SetDefault(previous)
//
//	mdwlog.Warn("element overwritten", mdwlog.String("key", "a"))
package log
