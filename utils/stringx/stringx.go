// File: stringx.go
// Title: Core String Utility Functions
// Description: Emptiness checks, numeric parsing with a sentinel result and
//              whitespace stripping.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-14 v0.2.0: ToNumber and Trim, lazy parameters

package stringx

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/msto63/utilkit/utils/lazy"
)

// NotNumeric is the ToNumber result for text that is not a number
const NotNumeric = -1

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// ToNumber parses s as a decimal floating point number. Empty text is 0,
// text that is not a number is NotNumeric. Surrounding whitespace is ignored
// and the Infinity spellings are accepted.
//
// A valid negative number is indistinguishable from NotNumeric when it is -1.
func ToNumber(s string) float64 {
	if s == "" {
		return 0
	}

	text := strings.TrimSpace(s)
	switch text {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	case "":
		return NotNumeric
	}

	// ParseFloat also knows hex floats, underscores, inf and nan
	if strings.ContainsAny(text, "xX_pPiInN") {
		return NotNumeric
	}

	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return n
		}
		return NotNumeric
	}
	return n
}

// Trim strips whitespace. With includeTabs every tab is removed and the
// result is trimmed at both ends. Without it every space character is
// removed, wherever it appears, and other whitespace is kept.
func Trim(s string, includeTabs lazy.Value[bool]) string {
	if includeTabs.Resolve() {
		return strings.TrimFunc(strings.ReplaceAll(s, "\t", ""), isTrimmable)
	}
	return strings.ReplaceAll(s, " ", "")
}

// isTrimmable matches the ECMAScript WhiteSpace and LineTerminator sets.
// Unlike unicode.IsSpace it keeps U+0085 and strips U+FEFF.
func isTrimmable(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}
