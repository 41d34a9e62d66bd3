// Package slicex implements in-place swaps and search helpers for slices.
//
// Package: slicex
// Title: Slice Helpers
// Description: Swaps two elements of a slice by position, by textual
//              position or by value. Indices and search values are
//              lazy.Value parameters so callers can pass a literal or a
//              producer. A failed swap returns an error from core/errors
//              and does not touch the slice.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice operations
// - 2026-10-14 v0.2.0: Swap operations with lazy parameters
//
// # Swap Functions
//
//   - SwapByIndex: exchange the elements at two positions
//   - SwapByTextIndex: positions given as decimal text
//   - SwapByValue: exchange the first occurrences of two values
//   - SwapByValueAny: SwapByValue with exact equality on dynamic values
//
// Swapping the same pair twice restores the original slice.
//
// # Search Functions
//
//   - Contains, IndexOf, IndexOfBy, IndexOfValue
//   - Clone: shallow copy
//
// # Errors
//
// Out of range or non-numeric indices produce a CodeIndexOutOfRange error,
// missing values a CodeNotFound error:
//
//	if err := slicex.SwapByIndex(s, lazy.Of(0), lazy.Of(5)); errors.IsIndexError(err) {
//		...
//	}
package slicex
