// File: mapx.go
// Title: Map Utility Functions
// Description: Key and value extraction, emptiness and membership checks
//              for string keyed maps. Results follow ascending key order.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive map operations
// - 2026-10-14 v0.2.0: Deterministic key order, property and method extraction

package mapx

import (
	"cmp"
	"slices"

	"github.com/msto63/utilkit/core/errors"
	"github.com/msto63/utilkit/internal/shape"
	"github.com/msto63/utilkit/utils/lazy"
)

// Keys returns all keys from the map in ascending order
func Keys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Values returns all values from the map in key order
func Values[K cmp.Ordered, V any](m map[K]V) []V {
	values := make([]V, 0, len(m))
	for _, k := range Keys(m) {
		values = append(values, m[k])
	}
	return values
}

// IsEmpty returns true if the map has no keys. A nil map is empty.
func IsEmpty[K comparable, V any](m map[K]V) bool {
	return len(m) == 0
}

// HasKey reports whether key is present
func HasKey[K comparable, V any](m map[K]V, key K) bool {
	_, exists := m[key]
	return exists
}

// Clone creates a shallow copy of the map
func Clone[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}

	result := make(map[K]V, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}

// Properties returns the keys whose values are not functions
func Properties[V any](m map[string]V) []string {
	return keysWhere(m, func(v V) bool {
		return shape.Of(v) != shape.Callable
	})
}

// Methods returns the keys whose values are functions
func Methods[V any](m map[string]V) []string {
	return keysWhere(m, func(v V) bool {
		return shape.Of(v) == shape.Callable
	})
}

// PropertiesByValue returns the keys whose values are exactly equal to v.
// Numbers compare by value, maps, slices and functions by identity.
func PropertiesByValue[V any](m map[string]V, v lazy.Value[any]) []string {
	target := v.Resolve()
	return keysWhere(m, func(value V) bool {
		return shape.Equal(value, target)
	})
}

// HasValue reports whether any key holds a value exactly equal to v
func HasValue[V any](m map[string]V, v lazy.Value[any]) bool {
	target := v.Resolve()
	for _, value := range m {
		if shape.Equal(value, target) {
			return true
		}
	}
	return false
}

// OwnPropertyValues returns the values of a map in key order, or the
// elements of a slice. v is resolved first when it is a producer.
func OwnPropertyValues(v any) ([]any, error) {
	resolved := lazy.Resolve(v)

	switch shape.Of(resolved) {
	case shape.Collection:
		keys := shape.Keys(resolved)
		values := make([]any, 0, len(keys))
		for _, k := range keys {
			values = append(values, shape.Entry(resolved, k))
		}
		return values, nil
	case shape.Sequence:
		return shape.Elements(resolved), nil
	default:
		return nil, errors.TypeError(errors.ModuleMapx, "OwnPropertyValues", resolved, "an object")
	}
}

func keysWhere[V any](m map[string]V, match func(V) bool) []string {
	keys := make([]string, 0, len(m))
	for _, k := range Keys(m) {
		if match(m[k]) {
			keys = append(keys, k)
		}
	}
	return keys
}
