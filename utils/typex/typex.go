// File: typex.go
// Title: Type Coercion
// Description: Total conversions from values of any shape to text, numbers
//              and booleans, plus shape inspection.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.2.0: Initial implementation

package typex

import (
	"math"

	"github.com/msto63/utilkit/internal/shape"
	"github.com/msto63/utilkit/utils/lazy"
	"github.com/msto63/utilkit/utils/stringx"
)

// Kind is the shape of a dynamic value
type Kind = shape.Kind

// Value shapes
const (
	KindAbsent     = shape.Absent
	KindBoolean    = shape.Boolean
	KindNumber     = shape.Number
	KindText       = shape.Text
	KindSequence   = shape.Sequence
	KindCollection = shape.Collection
	KindCallable   = shape.Callable
	KindOther      = shape.Other
)

// Shape returns the shape of v without resolving producers
func Shape(v any) Kind {
	return shape.Of(v)
}

// IsObject reports whether v is a string keyed map. Slices are not objects.
func IsObject(v any) bool {
	return shape.Of(v) == shape.Collection
}

// ToString converts v to text. It inspects v as given and never calls it.
//
//	absent, empty map or slice, 0, false   ""
//	true                                   " "
//	other number                           decimal text ("1.5", "1e+21", "NaN")
//	non-empty map                          JSON with sorted keys
//	non-empty slice                        elements joined with ","
//	function                               declared name, "" for closures
//	text                                   unchanged
func ToString(v any) string {
	switch shape.Of(v) {
	case shape.Text:
		s, _ := shape.String(v)
		return s
	case shape.Number:
		n, _ := shape.NumberOf(v)
		if n == 0 {
			return ""
		}
		return formatNumber(n)
	case shape.Boolean:
		if b, _ := shape.Bool(v); b {
			return " "
		}
		return ""
	case shape.Callable:
		return shape.FuncName(v)
	case shape.Collection:
		if shape.Len(v) == 0 {
			return ""
		}
		return marshalObject(v)
	case shape.Sequence:
		if shape.Len(v) == 0 {
			return ""
		}
		return joinElements(v)
	default:
		return ""
	}
}

// ToNumber converts v to a non-negative number after resolving producers.
//
//	absent, empty map or slice, false      0
//	non-empty slice                        its length
//	non-empty map                          1
//	negative number                        0
//	text                                   stringx.ToNumber
//	true                                   1
//
// NaN is returned unchanged.
func ToNumber(v any) float64 {
	v = lazy.Resolve(v)

	switch shape.Of(v) {
	case shape.Collection:
		if shape.Len(v) == 0 {
			return 0
		}
		return 1
	case shape.Sequence:
		return float64(shape.Len(v))
	case shape.Number:
		n, _ := shape.NumberOf(v)
		if n < 0 {
			return 0
		}
		return n
	case shape.Text:
		s, _ := shape.String(v)
		return stringx.ToNumber(s)
	case shape.Boolean:
		if b, _ := shape.Bool(v); b {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// ToBoolean converts v to a boolean after resolving producers. Empty
// containers, absent values, empty text and numbers not greater than zero
// are false. NaN is true.
func ToBoolean(v any) bool {
	v = lazy.Resolve(v)

	switch shape.Of(v) {
	case shape.Collection, shape.Sequence:
		return shape.Len(v) > 0
	case shape.Number:
		n, _ := shape.NumberOf(v)
		return !(n <= 0)
	case shape.Text:
		s, _ := shape.String(v)
		return s != ""
	case shape.Boolean:
		b, _ := shape.Bool(v)
		return b
	default:
		return false
	}
}

// IsNaN reports whether v is a number that is NaN
func IsNaN(v any) bool {
	n, ok := shape.NumberOf(v)
	return ok && math.IsNaN(n)
}
