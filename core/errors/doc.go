// Package errors provides the standard error constructors for utilkit modules.
//
// Package: errors
// Title: Standard Error Constructors
// Description: Builds *error.Error values with module, operation, code and
//              details filled in consistently. Helpers never call fmt.Errorf
//              or errors.New for caller-facing failures; they use the
//              constructors here.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-14 v0.2.0: Helper error kinds
//
// Error kinds:
//   - TypeError: wrong shape where a specific shape is required
//   - IndexError: out-of-range or non-numeric index on a sequence
//   - NotFoundError: value-based lookup failed
//   - DuplicateKeyError: merge collision without overwrite permission
//
// Each kind has a predicate (IsTypeError, IsIndexError, IsNotFound,
// IsDuplicateKey) that walks the wrap chain.
//
//	if err := slicex.SwapByIndex(s, lazy.Of(0), lazy.Of(9)); errors.IsIndexError(err) {
//		// report the bad index
//	}
package errors
