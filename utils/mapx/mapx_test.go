// File: mapx_test.go
// Title: Map Utilities Tests
// Description: Tests for Extend, ExtendAny, key extraction, value lookup
//              and value extraction.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-14 v0.2.0: Extend and property tests

package mapx

import (
	"bytes"
	"maps"
	"slices"
	"strings"
	"testing"

	"github.com/msto63/utilkit/core/errors"
	mdwlog "github.com/msto63/utilkit/core/log"
	"github.com/msto63/utilkit/utils/lazy"
)

// captureWarnings routes the default logger into a buffer for the test
func captureWarnings(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.LevelWarn,
		Format: mdwlog.FormatJSON,
		Output: &buf,
	})
	previous := mdwlog.SetDefault(logger)
	t.Cleanup(func() { mdwlog.SetDefault(previous) })
	return &buf
}

func TestIsEmpty(t *testing.T) {
	if !IsEmpty(map[string]int{}) {
		t.Error("IsEmpty({}) = false, want true")
	}
	if !IsEmpty[string, int](nil) {
		t.Error("IsEmpty(nil) = false, want true")
	}
	if IsEmpty(map[string]int{"a": 1}) {
		t.Error("IsEmpty({a:1}) = true, want false")
	}
}

func TestExtend(t *testing.T) {
	t.Run("disjoint keys", func(t *testing.T) {
		buf := captureWarnings(t)
		dst := map[string]int{"a": 1}

		if err := Extend(dst, lazy.Of(map[string]int{"b": 2}), lazy.Of(false)); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !maps.Equal(dst, map[string]int{"a": 1, "b": 2}) {
			t.Errorf("Extend() = %v", dst)
		}
		if buf.Len() != 0 {
			t.Errorf("Unexpected warning: %s", buf.String())
		}
	})

	t.Run("duplicate without overwrite", func(t *testing.T) {
		dst := map[string]int{"a": 1}

		err := Extend(dst, lazy.Of(map[string]int{"a": 2}), lazy.Of(false))
		if !errors.IsDuplicateKey(err) {
			t.Fatalf("Expected duplicate key error, got %v", err)
		}
		if !maps.Equal(dst, map[string]int{"a": 1}) {
			t.Errorf("dst modified on failure: %v", dst)
		}
	})

	t.Run("failure applies nothing", func(t *testing.T) {
		dst := map[string]int{"m": 1}

		err := Extend(dst, lazy.Of(map[string]int{"a": 2, "b": 3, "m": 4, "z": 5}), lazy.Of(false))
		if !errors.IsDuplicateKey(err) {
			t.Fatalf("Expected duplicate key error, got %v", err)
		}
		if !maps.Equal(dst, map[string]int{"m": 1}) {
			t.Errorf("dst partially extended: %v", dst)
		}
		if details := errors.ExtractDetails(err); details["key"] != "m" {
			t.Errorf("Expected duplicate key m, got %v", details["key"])
		}
	})

	t.Run("duplicate with overwrite", func(t *testing.T) {
		buf := captureWarnings(t)
		dst := map[string]int{"a": 1}

		if err := Extend(dst, lazy.Of(map[string]int{"a": 2}), lazy.Of(true)); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !maps.Equal(dst, map[string]int{"a": 2}) {
			t.Errorf("Extend() = %v", dst)
		}

		out := buf.String()
		if !strings.Contains(out, `"level":"WARN"`) && !strings.Contains(out, `"level":"warn"`) {
			t.Errorf("Expected warn entry, got %s", out)
		}
		if !strings.Contains(out, `"key":"a"`) || !strings.Contains(out, `"operation":"Extend"`) {
			t.Errorf("Expected key and operation fields, got %s", out)
		}
	})

	t.Run("lazy arguments", func(t *testing.T) {
		captureWarnings(t)
		dst := map[string]string{"x": "old"}
		other := lazy.From(func() map[string]string { return map[string]string{"x": "new"} })
		overwrite := lazy.From(func() bool { return true })

		if err := Extend(dst, other, overwrite); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if dst["x"] != "new" {
			t.Errorf("Extend() = %v", dst)
		}
	})

	t.Run("absent existing value is not a duplicate", func(t *testing.T) {
		dst := map[string]*int{"a": nil}
		v := 3

		if err := Extend(dst, lazy.Of(map[string]*int{"a": &v}), lazy.Of(false)); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if dst["a"] != &v {
			t.Error("Expected nil entry to be replaced")
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		var dst map[string]int
		if err := Extend(dst, lazy.Of(map[string]int{"a": 1}), lazy.Of(false)); err == nil {
			t.Error("Expected error for nil destination")
		}
		if err := Extend(dst, lazy.Of(map[string]int{}), lazy.Of(false)); err != nil {
			t.Errorf("Empty extend of nil map should succeed, got %v", err)
		}
	})
}

func TestExtendAny(t *testing.T) {
	t.Run("typed source map", func(t *testing.T) {
		dst := map[string]any{"a": 1}
		if err := ExtendAny(dst, map[string]int{"b": 2}, false); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if dst["b"] != 2 {
			t.Errorf("ExtendAny() = %v", dst)
		}
	})

	t.Run("producer source", func(t *testing.T) {
		dst := map[string]any{}
		other := func() map[string]any { return map[string]any{"k": "v"} }
		if err := ExtendAny(dst, other, nil); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if dst["k"] != "v" {
			t.Errorf("ExtendAny() = %v", dst)
		}
	})

	t.Run("not a collection", func(t *testing.T) {
		dst := map[string]any{"a": 1}
		for _, other := range []any{nil, 5, "text", []int{1}} {
			if err := ExtendAny(dst, other, true); !errors.IsTypeError(err) {
				t.Errorf("ExtendAny(%v) expected type error, got %v", other, err)
			}
		}
	})

	t.Run("truthy overwrite values", func(t *testing.T) {
		captureWarnings(t)
		dst := map[string]any{"a": 1}

		if err := ExtendAny(dst, map[string]any{"a": 2}, "yes"); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if dst["a"] != 2 {
			t.Errorf("ExtendAny() = %v", dst)
		}

		if err := ExtendAny(dst, map[string]any{"a": 3}, 0); !errors.IsDuplicateKey(err) {
			t.Errorf("Expected duplicate key error for falsy overwrite, got %v", err)
		}
	})
}

func TestPropertiesAndMethods(t *testing.T) {
	m := map[string]any{
		"name":  "utilkit",
		"run":   func() {},
		"count": 3,
		"stop":  func(int) error { return nil },
		"tags":  []string{"go"},
	}

	if got := Properties(m); !slices.Equal(got, []string{"count", "name", "tags"}) {
		t.Errorf("Properties() = %v", got)
	}
	if got := Methods(m); !slices.Equal(got, []string{"run", "stop"}) {
		t.Errorf("Methods() = %v", got)
	}
	if got := Properties(map[string]any{}); len(got) != 0 {
		t.Errorf("Properties({}) = %v", got)
	}
}

func TestPropertiesByValue(t *testing.T) {
	shared := []int{1}
	m := map[string]any{
		"a": 1,
		"b": 1.0,
		"c": "1",
		"d": shared,
		"e": []int{1},
	}

	if got := PropertiesByValue(m, lazy.Of[any](1)); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("PropertiesByValue(1) = %v", got)
	}
	if got := PropertiesByValue(m, lazy.Of[any](shared)); !slices.Equal(got, []string{"d"}) {
		t.Errorf("PropertiesByValue(shared) = %v", got)
	}
	if got := PropertiesByValue(m, lazy.From(func() any { return "1" })); !slices.Equal(got, []string{"c"}) {
		t.Errorf("PropertiesByValue(producer) = %v", got)
	}
	if got := PropertiesByValue(m, lazy.Of[any](true)); len(got) != 0 {
		t.Errorf("PropertiesByValue(true) = %v", got)
	}
}

func TestHasValue(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}

	if !HasValue(m, lazy.Of[any](2)) {
		t.Error("HasValue(2) = false, want true")
	}
	if HasValue(m, lazy.Of[any]("2")) {
		t.Error("HasValue(\"2\") = true, want false")
	}
	if HasValue(map[string]int{}, lazy.Of[any](0)) {
		t.Error("HasValue on empty map = true, want false")
	}
}

func TestKeysAndValues(t *testing.T) {
	m := map[string]int{"c": 3, "a": 1, "b": 1}

	if got := Keys(m); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("Keys() = %v", got)
	}
	if got := Values(m); !slices.Equal(got, []int{1, 1, 3}) {
		t.Errorf("Values() = %v", got)
	}
	if !HasKey(m, "a") || HasKey(m, "z") {
		t.Error("HasKey returned unexpected result")
	}

	c := Clone(m)
	c["a"] = 9
	if m["a"] != 1 {
		t.Error("Clone shares storage with original")
	}
}

func TestOwnPropertyValues(t *testing.T) {
	values, err := OwnPropertyValues(map[string]int{"b": 2, "a": 1, "c": 1})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(values) != 3 || values[0] != 1 || values[1] != 2 || values[2] != 1 {
		t.Errorf("OwnPropertyValues() = %v", values)
	}

	values, err = OwnPropertyValues(func() []string { return []string{"x", "y"} })
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(values) != 2 || values[1] != "y" {
		t.Errorf("OwnPropertyValues(producer) = %v", values)
	}

	for _, bad := range []any{nil, 1, "text", true} {
		if _, err := OwnPropertyValues(bad); !errors.IsTypeError(err) {
			t.Errorf("OwnPropertyValues(%v) expected type error, got %v", bad, err)
		}
	}
}
