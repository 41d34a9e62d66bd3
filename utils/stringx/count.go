// File: count.go
// Title: Occurrence Counting
// Description: Counts pattern occurrences by measuring how much text the
//              pattern's matches cover.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.2.0: Initial implementation

package stringx

import (
	"regexp"
	"unicode/utf8"

	"github.com/msto63/utilkit/core/errors"
)

// Count returns (len(s) - len(s without matches)) / len(pattern), lengths in
// runes. The pattern is a regular expression, so for patterns whose matches
// differ in length from the pattern text the result is not an occurrence
// count: Count("aaa", "a+") is 1.5. Use CountLiteral for plain substrings.
func Count(s, pattern string) (float64, error) {
	if pattern == "" {
		return 0, errors.InvalidPattern(errors.ModuleStringx, "Count", pattern, nil)
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return 0, errors.InvalidPattern(errors.ModuleStringx, "Count", pattern, err)
	}

	return countWith(re, s, pattern), nil
}

// CountLiteral counts non-overlapping occurrences of substr in s
func CountLiteral(s, substr string) (float64, error) {
	if substr == "" {
		return 0, errors.InvalidPattern(errors.ModuleStringx, "CountLiteral", substr, nil)
	}

	return countWith(regexp.MustCompile(regexp.QuoteMeta(substr)), s, substr), nil
}

func countWith(re *regexp.Regexp, s, pattern string) float64 {
	removed := re.ReplaceAllLiteralString(s, "")
	covered := utf8.RuneCountInString(s) - utf8.RuneCountInString(removed)
	return float64(covered) / float64(utf8.RuneCountInString(pattern))
}
