// File: lazy.go
// Title: Value-or-Producer Parameters
// Description: Implements Value, a parameter that holds either a literal or
//              a zero-argument producer, and Resolve, the dynamic form that
//              calls a zero-argument function found in an interface value.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.2.0: Initial implementation

package lazy

import "reflect"

// Value holds either a literal T or a producer of T.
// The zero Value resolves to the zero T.
type Value[T any] struct {
	literal  T
	producer func() T
	lazy     bool
}

// Of wraps a literal value
func Of[T any](v T) Value[T] {
	return Value[T]{literal: v}
}

// From wraps a producer. The producer runs on every Resolve.
func From[T any](fn func() T) Value[T] {
	return Value[T]{producer: fn, lazy: true}
}

// Resolve returns the literal, or calls the producer. A nil producer yields the zero T.
func (v Value[T]) Resolve() T {
	if !v.lazy {
		return v.literal
	}
	if v.producer == nil {
		var zero T
		return zero
	}
	return v.producer()
}

// IsLazy reports whether v was built with From
func (v Value[T]) IsLazy() bool {
	return v.lazy
}

// Resolve calls v when it is a function that takes no arguments and returns
// at least one result, and returns the first result. Any other value,
// including a nil function, is returned unchanged.
func Resolve(v any) any {
	if v == nil {
		return nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return v
	}

	rt := rv.Type()
	if rt.NumIn() != 0 || rt.NumOut() == 0 {
		return v
	}

	return rv.Call(nil)[0].Interface()
}
