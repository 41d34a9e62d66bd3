// File: doc.go
// Title: Package Documentation for mapx
// Description: Package mapx provides helpers for string keyed maps: merge
//              with a duplicate key policy, key extraction by value shape,
//              value lookup and extraction.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core map utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-14 v0.3.0: Extend, property and method extraction, deterministic order

// Package mapx provides helpers for string keyed maps.
//
// Package: mapx
// Title: Keyed Collection Helpers
// Description: Go maps have no order, so every helper that returns keys or
//              values returns them in ascending key order.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// # Merging
//
// Extend and ExtendAny copy one map into another. The copy is staged first:
// a duplicate key without overwrite permission fails the whole call and the
// destination stays as it was. Permitted overwrites are reported as warnings
// on the default logger of core/log with the fields "key" and "operation".
//
//	dst := map[string]int{"a": 1}
//	err := mapx.Extend(dst, lazy.Of(map[string]int{"a": 2}), lazy.Of(false))
//	// errors.IsDuplicateKey(err) == true, dst is still {"a": 1}
//
// # Properties and Methods
//
// Properties returns the keys of non-function values, Methods the keys of
// function values. PropertiesByValue and HasValue use exact equality:
// numbers compare by value across kinds, maps, slices and functions by
// identity.
//
// # Values
//
// Values is typed. OwnPropertyValues accepts any value and fails with a
// type error unless it is a map or a slice.
package mapx
