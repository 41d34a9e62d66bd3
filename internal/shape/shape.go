// File: shape.go
// Title: Dynamic Value Classification
// Description: Classifies interface values into the shapes the coercion and
//              collection helpers reason about, and implements exact
//              equality between dynamic values.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.2.0: Initial implementation

// Package shape classifies dynamic values.
package shape

import (
	"reflect"
	"runtime"
	"slices"
	"strings"
)

// Kind is the shape of a dynamic value
type Kind int

const (
	Absent Kind = iota
	Boolean
	Number
	Text
	Sequence
	Collection
	Callable
	Other
)

// String returns the lower-case name of the kind
func (k Kind) String() string {
	switch k {
	case Absent:
		return "absent"
	case Boolean:
		return "boolean"
	case Number:
		return "number"
	case Text:
		return "text"
	case Sequence:
		return "sequence"
	case Collection:
		return "collection"
	case Callable:
		return "callable"
	default:
		return "other"
	}
}

// Of returns the shape of v. Pointers are followed; a nil pointer is absent.
func Of(v any) Kind {
	rv, ok := indirect(v)
	if !ok {
		return Absent
	}

	switch rv.Kind() {
	case reflect.Bool:
		return Boolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return Number
	case reflect.String:
		return Text
	case reflect.Slice, reflect.Array:
		return Sequence
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return Collection
		}
		return Other
	case reflect.Func:
		return Callable
	default:
		return Other
	}
}

// NumberOf returns v as float64 when v is a number
func NumberOf(v any) (float64, bool) {
	rv, ok := indirect(v)
	if !ok {
		return 0, false
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// String returns v as string when v is text
func String(v any) (string, bool) {
	rv, ok := indirect(v)
	if !ok || rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

// Bool returns v as bool when v is a boolean
func Bool(v any) (bool, bool) {
	rv, ok := indirect(v)
	if !ok || rv.Kind() != reflect.Bool {
		return false, false
	}
	return rv.Bool(), true
}

// Len returns the element or key count of a sequence or collection, 0 otherwise
func Len(v any) int {
	switch Of(v) {
	case Sequence, Collection:
		rv, _ := indirect(v)
		return rv.Len()
	default:
		return 0
	}
}

// Elements returns the elements of a sequence in order
func Elements(v any) []any {
	if Of(v) != Sequence {
		return nil
	}

	rv, _ := indirect(v)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// Keys returns the keys of a collection in ascending order
func Keys(v any) []string {
	if Of(v) != Collection {
		return nil
	}

	rv, _ := indirect(v)
	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.String())
	}
	slices.Sort(keys)
	return keys
}

// Entry returns the value stored under key in a collection
func Entry(v any, key string) any {
	if Of(v) != Collection {
		return nil
	}

	rv, _ := indirect(v)
	ev := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
	if !ev.IsValid() {
		return nil
	}
	return ev.Interface()
}

// Equal reports exact equality. Numbers compare by value across kinds,
// functions, maps and slices compare by identity, other values with ==.
// Values of different shapes are never equal.
func Equal(a, b any) bool {
	ka, kb := Of(a), Of(b)
	if ka != kb {
		return false
	}

	switch ka {
	case Absent:
		return true
	case Number:
		fa, _ := NumberOf(a)
		fb, _ := NumberOf(b)
		return fa == fb
	}

	ra, _ := indirect(a)
	rb, _ := indirect(b)

	switch ra.Kind() {
	case reflect.Func, reflect.Map:
		return ra.Type() == rb.Type() && ra.Pointer() == rb.Pointer()
	case reflect.Slice:
		return ra.Type() == rb.Type() && ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len()
	}

	if ra.Type() != rb.Type() || !ra.Comparable() || !rb.Comparable() {
		return false
	}
	return ra.Interface() == rb.Interface()
}

// FuncName returns the declared name of a function value. Closures,
// method values and nil functions yield "".
func FuncName(v any) string {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Func || rv.IsNil() {
		return ""
	}

	fn := runtime.FuncForPC(rv.Pointer())
	if fn == nil {
		return ""
	}

	name := fn.Name()
	if i, j := strings.Index(name, "["), strings.LastIndex(name, "]"); i >= 0 && j > i {
		name = name[:i] + name[j+1:]
	}
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	if name == "" || strings.ContainsAny(name, ".()-") {
		return ""
	}
	return name
}

// indirect follows pointers and interfaces. ok is false for absent values.
func indirect(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	return rv, rv.IsValid()
}
