// File: stringx_test.go
// Title: Unit Tests for Text Helpers
// Description: Tests for emptiness checks, ToNumber, Count, replacement and
//              Trim.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-14 v0.2.0: Text helper tests

package stringx

import (
	"math"
	"testing"

	"github.com/msto63/utilkit/core/errors"
	"github.com/msto63/utilkit/utils/lazy"
)

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"single space", " ", false},
		{"normal string", "hello", false},
		{"unicode string", "こんにちは", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsEmpty(tt.input); result != tt.expected {
				t.Errorf("IsEmpty(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"multiple spaces", "   ", true},
		{"mixed whitespace", " \t\n\r ", true},
		{"string with spaces around", " hello ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsBlank(tt.input); result != tt.expected {
				t.Errorf("IsBlank(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"empty", "", 0},
		{"integer", "42", 42},
		{"decimal", "3.14", 3.14},
		{"negative", "-2.5", -2.5},
		{"exponent", "1e3", 1000},
		{"surrounding whitespace", "  7\n", 7},
		{"whitespace only", "   ", NotNumeric},
		{"letters", "abc", NotNumeric},
		{"trailing garbage", "12px", NotNumeric},
		{"nan text", "NaN", NotNumeric},
		{"inf shorthand", "inf", NotNumeric},
		{"hex", "0x10", NotNumeric},
		{"underscore", "1_000", NotNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := ToNumber(tt.input); result != tt.expected {
				t.Errorf("ToNumber(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}

	if !math.IsInf(ToNumber("Infinity"), 1) || !math.IsInf(ToNumber("-Infinity"), -1) {
		t.Error("Infinity spellings should parse to infinities")
	}
	if !math.IsInf(ToNumber("1e400"), 1) {
		t.Error("overflowing text should parse to +Inf")
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		pattern  string
		expected float64
	}{
		{"single char", "banana", "a", 3},
		{"substring", "abcabcab", "abc", 2},
		{"no match", "hello", "z", 0},
		{"unicode", "äöäöä", "ä", 3},
		// the pattern is a regular expression: "a+" covers three runes
		// but is two runes long
		{"regex quirk", "aaa", "a+", 1.5},
		{"dot matches anything", "a.b", ".", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Count(tt.text, tt.pattern)
			if err != nil {
				t.Fatalf("Count(%q, %q) error: %v", tt.text, tt.pattern, err)
			}
			if result != tt.expected {
				t.Errorf("Count(%q, %q) = %v; want %v", tt.text, tt.pattern, result, tt.expected)
			}
		})
	}

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := Count("abc", "(")
		if !errors.IsModuleError(err, errors.ModuleStringx) {
			t.Errorf("Expected stringx error, got %v", err)
		}
	})

	t.Run("empty pattern", func(t *testing.T) {
		if _, err := Count("abc", ""); err == nil {
			t.Error("Expected error for empty pattern")
		}
	})
}

func TestCountLiteral(t *testing.T) {
	result, err := CountLiteral("a.b.c", ".")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result != 2 {
		t.Errorf("CountLiteral(\"a.b.c\", \".\") = %v; want 2", result)
	}

	if _, err := CountLiteral("abc", ""); err == nil {
		t.Error("Expected error for empty substring")
	}
}

func TestReplaceAll(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		find     string
		replace  string
		expected string
		changed  bool
	}{
		{"replaces all", "aXbXc", "X", "-", "a-b-c", true},
		{"no match", "abc", "Z", "-", "abc", false},
		{"multi char", "one two one", "one", "1", "1 two 1", true},
		{"empty find", "abc", "", "-", "a-b-c", true},
		{"empty find on empty text", "", "", "-", "", false},
		{"replace with same", "aaa", "a", "a", "aaa", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ReplaceAll(tt.text, lazy.Of(tt.find), lazy.Of(tt.replace))
			if result != tt.expected {
				t.Errorf("ReplaceAll() = %q; want %q", result, tt.expected)
			}

			reported, changed := ReplaceAllReporting(tt.text, lazy.Of(tt.find), lazy.Of(tt.replace))
			if reported != tt.expected || changed != tt.changed {
				t.Errorf("ReplaceAllReporting() = %q, %v; want %q, %v", reported, changed, tt.expected, tt.changed)
			}
		})
	}
}

func TestRemove(t *testing.T) {
	if result := Remove("a-b-c", lazy.Of("-")); result != "abc" {
		t.Errorf("Remove() = %q; want \"abc\"", result)
	}

	find := lazy.From(func() string { return "b" })
	if result := Remove("abba", find); result != "aa" {
		t.Errorf("Remove() with producer = %q; want \"aa\"", result)
	}
}

func TestTrim(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		includeTabs bool
		expected    string
	}{
		{"spaces removed everywhere", "a b\tc", false, "ab\tc"},
		{"tabs removed then trimmed", "a b\tc", true, "a bc"},
		{"leading and trailing", "  hi there  ", false, "hithere"},
		{"boundary whitespace with tabs", "\t  hi there \n", true, "hi there"},
		{"newlines kept without tabs", "a\nb", false, "a\nb"},
		{"byte order mark and nbsp", "\uFEFF\u00A0hi\u3000\u2028", true, "hi"},
		{"next line kept", "\u0085hi\u0085", true, "\u0085hi\u0085"},
		{"empty", "", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Trim(tt.input, lazy.Of(tt.includeTabs)); result != tt.expected {
				t.Errorf("Trim(%q, %v) = %q; want %q", tt.input, tt.includeTabs, result, tt.expected)
			}
		})
	}

	var zero lazy.Value[bool]
	if result := Trim(" a ", zero); result != "a" {
		t.Errorf("Trim with zero flag = %q; want \"a\"", result)
	}
}
