// File: replace.go
// Title: Substring Replacement
// Description: Replaces every occurrence of a substring, with an optional
//              report of whether anything changed.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.2.0: Initial implementation

package stringx

import (
	"strings"

	"github.com/msto63/utilkit/utils/lazy"
)

// ReplaceAll replaces every occurrence of find in s with replace.
// An empty find places replace between adjacent characters.
func ReplaceAll(s string, find, replace lazy.Value[string]) string {
	return replaceAll(s, find.Resolve(), replace.Resolve())
}

// ReplaceAllReporting is ReplaceAll that also reports whether the result
// differs from s. changed is false when nothing was replaced.
func ReplaceAllReporting(s string, find, replace lazy.Value[string]) (result string, changed bool) {
	result = ReplaceAll(s, find, replace)
	return result, result != s
}

// Remove deletes every occurrence of find from s
func Remove(s string, find lazy.Value[string]) string {
	return replaceAll(s, find.Resolve(), "")
}

func replaceAll(s, find, replace string) string {
	if find == "" {
		return strings.Join(strings.Split(s, ""), replace)
	}
	return strings.ReplaceAll(s, find, replace)
}
