// Package error provides the structured error type used across utilkit.
//
// Package: error
// Title: utilkit Error Type
// Description: Every helper that can fail returns an *Error carrying a Code,
//              a Severity, structured details and a captured stack trace.
//              The type satisfies the standard error interface and works
//              with errors.Is and errors.As.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-14 v0.2.0: Codes for the collection and text helpers
//
// Usage:
//
//	err := mdwerror.New("no element with index 5").
//		WithCode(mdwerror.CodeIndexOutOfRange).
//		WithDetail("index", 5)
//
//	if mdwerror.HasCode(err, mdwerror.CodeIndexOutOfRange) {
//		// handle the bad index
//	}
//
// Most code should not build errors directly; the constructors in
// core/errors fill in module, operation and code consistently.
package error
