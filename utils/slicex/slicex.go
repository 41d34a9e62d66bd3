// File: slicex.go
// Title: Core Slice Utilities
// Description: Search and copy helpers shared by the swap operations.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2026-10-14 v0.2.0: Reduced to search and copy helpers, swaps added

package slicex

import "github.com/msto63/utilkit/internal/shape"

// Contains returns true if the slice contains the specified element
func Contains[T comparable](slice []T, element T) bool {
	return IndexOf(slice, element) >= 0
}

// IndexOf returns the first index of the element, or -1 if not found
func IndexOf[T comparable](slice []T, element T) int {
	for i, item := range slice {
		if item == element {
			return i
		}
	}
	return -1
}

// IndexOfBy returns the first index where predicate returns true, or -1
func IndexOfBy[T any](slice []T, predicate func(T) bool) int {
	if predicate == nil {
		return -1
	}

	for i, item := range slice {
		if predicate(item) {
			return i
		}
	}
	return -1
}

// IndexOfValue returns the first index holding a value exactly equal to v.
// Numbers match across kinds, so 1 and 1.0 are the same value.
func IndexOfValue(slice []any, v any) int {
	return IndexOfBy(slice, func(item any) bool {
		return shape.Equal(item, v)
	})
}

// Clone creates a shallow copy of the slice
func Clone[T any](slice []T) []T {
	if slice == nil {
		return nil
	}

	result := make([]T, len(slice))
	copy(result, slice)
	return result
}
