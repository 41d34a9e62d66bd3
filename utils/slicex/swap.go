// File: swap.go
// Title: In-Place Element Swaps
// Description: Swaps two elements of a slice by position or by value. A
//              failed swap leaves the slice untouched.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.2.0: Initial implementation

package slicex

import (
	"math"

	"github.com/msto63/utilkit/core/errors"
	"github.com/msto63/utilkit/internal/shape"
	"github.com/msto63/utilkit/utils/lazy"
	"github.com/msto63/utilkit/utils/stringx"
)

// SwapByIndex exchanges the elements at i1 and i2. Both indices must address
// an existing element, otherwise an index error is returned.
func SwapByIndex[T any](slice []T, i1, i2 lazy.Value[int]) error {
	a, b := i1.Resolve(), i2.Resolve()

	if !inRange(slice, a) {
		return errors.IndexError(errors.ModuleSlicex, "SwapByIndex", a, len(slice))
	}
	if !inRange(slice, b) {
		return errors.IndexError(errors.ModuleSlicex, "SwapByIndex", b, len(slice))
	}

	slice[a], slice[b] = slice[b], slice[a]
	return nil
}

// SwapByTextIndex is SwapByIndex for indices given as text. Empty,
// non-numeric and fractional text is an index error.
func SwapByTextIndex[T any](slice []T, i1, i2 lazy.Value[string]) error {
	a, b := i1.Resolve(), i2.Resolve()

	ia, ok := parseIndex(a)
	if !ok || !inRange(slice, ia) {
		return errors.IndexError(errors.ModuleSlicex, "SwapByTextIndex", a, len(slice))
	}
	ib, ok := parseIndex(b)
	if !ok || !inRange(slice, ib) {
		return errors.IndexError(errors.ModuleSlicex, "SwapByTextIndex", b, len(slice))
	}

	slice[ia], slice[ib] = slice[ib], slice[ia]
	return nil
}

// SwapByValue exchanges the first element equal to v1 with the first other
// element equal to v2. An element claimed by v1 is not considered for v2.
func SwapByValue[T comparable](slice []T, v1, v2 lazy.Value[T]) error {
	a, b := v1.Resolve(), v2.Resolve()
	return swapMatches(slice, a, b, "SwapByValue", func(item, target T) bool {
		return item == target
	})
}

// SwapByValueAny is SwapByValue for dynamic values, compared with exact
// equality: numbers by value, slices, maps and functions by identity.
func SwapByValueAny(slice []any, v1, v2 lazy.Value[any]) error {
	a, b := lazy.Resolve(v1.Resolve()), lazy.Resolve(v2.Resolve())
	return swapMatches(slice, a, b, "SwapByValueAny", shape.Equal)
}

func swapMatches[T any](slice []T, a, b T, operation string, equal func(item, target T) bool) error {
	first, second := -1, -1

	for i, item := range slice {
		switch {
		case first < 0 && equal(item, a):
			first = i
		case second < 0 && equal(item, b):
			second = i
		}
		if first >= 0 && second >= 0 {
			break
		}
	}

	if first < 0 {
		return errors.NotFoundError(errors.ModuleSlicex, operation, a)
	}
	if second < 0 {
		return errors.NotFoundError(errors.ModuleSlicex, operation, b)
	}

	slice[first], slice[second] = slice[second], slice[first]
	return nil
}

func inRange[T any](slice []T, i int) bool {
	return i >= 0 && i < len(slice)
}

func parseIndex(text string) (int, bool) {
	if text == "" {
		return 0, false
	}

	n := stringx.ToNumber(text)
	if n < 0 || math.IsInf(n, 0) || n != math.Trunc(n) || n >= float64(math.MaxInt) {
		return 0, false
	}
	return int(n), true
}
