// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides text helpers: numeric parsing with a
//              sentinel result, occurrence counting, replacement and
//              whitespace stripping.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-14 v0.3.0: Text helpers with lazy parameters

// Package stringx provides text helpers for utilkit.
//
// Package: stringx
// Title: Text Helpers
// Description: Helpers that work on plain Go strings. Optional arguments are
//              lazy.Value parameters.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// # Numbers
//
// ToNumber has a three-way result: 0 for empty text, the parsed value for
// numeric text and NotNumeric (-1) otherwise. Callers that must tell -1
// apart from "not a number" have to check the text themselves.
//
//	stringx.ToNumber("")     // 0
//	stringx.ToNumber("3.14") // 3.14
//	stringx.ToNumber("abc")  // -1
//
// # Counting
//
// Count treats its pattern as a regular expression and divides the number
// of covered characters by the pattern length. Patterns with
// metacharacters therefore give surprising results; CountLiteral quotes the
// pattern first.
//
// # Replacing
//
//	stringx.ReplaceAll("aXbXc", lazy.Of("X"), lazy.Of("-"))          // "a-b-c"
//	stringx.ReplaceAllReporting("abc", lazy.Of("Z"), lazy.Of("-"))   // "abc", false
//	stringx.Remove("a-b", lazy.Of("-"))                              // "ab"
//
// # Trimming
//
// Trim without tabs removes every space, not only leading and trailing
// ones. With tabs it removes every tab and then trims the ends.
package stringx
