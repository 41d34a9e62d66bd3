// File: format.go
// Title: Text Rendering
// Description: Renders numbers, slices and maps as text the way a
//              JavaScript runtime prints them.
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
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/msto63/utilkit/internal/shape"
)

// formatNumber renders n in shortest round-trip form, switching to
// exponent notation outside [1e-6, 1e21).
func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case n == 0:
		return "0"
	}

	abs := math.Abs(n)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(n, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + digits
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// elementText renders one element of a joined slice. Unlike ToString, zero
// and false keep their literal text.
func elementText(v any) string {
	switch shape.Of(v) {
	case shape.Absent:
		return ""
	case shape.Text:
		s, _ := shape.String(v)
		return s
	case shape.Number:
		n, _ := shape.NumberOf(v)
		return formatNumber(n)
	case shape.Boolean:
		b, _ := shape.Bool(v)
		return strconv.FormatBool(b)
	case shape.Sequence:
		return joinElements(v)
	case shape.Callable:
		return shape.FuncName(v)
	default:
		return "[object Object]"
	}
}

func joinElements(v any) string {
	elems := shape.Elements(v)
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = elementText(e)
	}
	return strings.Join(parts, ",")
}

// marshalObject encodes a map as JSON. Functions are dropped from maps and
// become null in slices, NaN and infinities become null.
func marshalObject(v any) string {
	b, err := json.MarshalWithOption(jsonable(v), json.DisableHTMLEscape())
	if err != nil {
		return ""
	}
	return string(b)
}

func jsonable(v any) any {
	switch shape.Of(v) {
	case shape.Absent, shape.Callable:
		return nil
	case shape.Number:
		n, _ := shape.NumberOf(v)
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return nil
		}
		return v
	case shape.Collection:
		out := make(map[string]any, shape.Len(v))
		for _, k := range shape.Keys(v) {
			e := shape.Entry(v, k)
			if shape.Of(e) == shape.Callable {
				continue
			}
			out[k] = jsonable(e)
		}
		return out
	case shape.Sequence:
		elems := shape.Elements(v)
		out := make([]any, len(elems))
		for i, e := range elems {
			out[i] = jsonable(e)
		}
		return out
	default:
		return v
	}
}
