// File: error_test.go
// Title: Error Type Tests
// Description: Tests for error creation, wrapping, codes, severity and
//              JSON rendering.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-14 v0.2.0: Chain-aware lookups and errors.Is support

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap structured error",
			err:      New("no such key").WithCode(CodeNotFound),
			message:  "lookup failed",
			wantMsg:  "lookup failed: no such key",
			wantCode: CodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}
			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}
			if wrapped.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", wrapped.Code(), tt.wantCode)
			}
			if !errors.Is(wrapped, tt.err) {
				t.Error("wrapped error should match its cause with errors.Is")
			}
		})
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	err := New("duplicate").WithCode(CodeDuplicateKey)
	if err.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityLow)
	}

	explicit := New("duplicate").WithSeverity(SeverityHigh).WithCode(CodeDuplicateKey)
	if explicit.Severity() != SeverityHigh {
		t.Errorf("explicit Severity() = %v, want %v", explicit.Severity(), SeverityHigh)
	}
}

func TestDetails(t *testing.T) {
	err := New("bad index").
		WithDetail("index", 5).
		WithDetails(map[string]interface{}{"length": 3})

	if v, ok := err.Detail("index"); !ok || v != 5 {
		t.Errorf("Detail(index) = %v, %v", v, ok)
	}

	details := err.Details()
	details["length"] = 99
	if v, _ := err.Detail("length"); v != 3 {
		t.Error("Details() should return a copy")
	}
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("context: %w", New("gone").WithCode(CodeNotFound))

	if !errors.Is(err, New("").WithCode(CodeNotFound)) {
		t.Error("errors.Is should match on code through a fmt wrapper")
	}
	if errors.Is(err, New("").WithCode(CodeDuplicateKey)) {
		t.Error("errors.Is should not match a different code")
	}
	if errors.Is(New("a"), New("a")) {
		t.Error("errors without a code should not match each other")
	}
}

func TestHasCodeAndGetters(t *testing.T) {
	inner := New("type").WithCode(CodeTypeMismatch)
	err := fmt.Errorf("outer: %w", inner)

	if !HasCode(err, CodeTypeMismatch) {
		t.Error("HasCode() should find the code through the chain")
	}
	if HasCode(err, CodeNotFound) {
		t.Error("HasCode() reported a code that is not present")
	}
	if GetCode(err) != CodeTypeMismatch {
		t.Errorf("GetCode() = %v", GetCode(err))
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() of a plain error should be CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() of a plain error should be SeverityMedium")
	}
}

func TestString(t *testing.T) {
	err := New("bad").WithCode(CodeIndexOutOfRange).WithOperation("swap_by_index").WithDetail("index", 7)
	s := err.String()

	for _, want := range []string{"Error: bad", "Code: INDEX_OUT_OF_RANGE", "Operation: swap_by_index", "index=7"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("root"), "top").WithCode(CodeDuplicateKey).WithDetail("key", "a").WithDetail("fn", func() {})

	data, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("Marshal() error = %v", marshalErr)
	}

	var decoded map[string]interface{}
	if e := json.Unmarshal(data, &decoded); e != nil {
		t.Fatalf("Unmarshal() error = %v", e)
	}

	if decoded["code"] != "DUPLICATE_KEY" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["cause"] != "root" {
		t.Errorf("cause = %v", decoded["cause"])
	}
	details, ok := decoded["details"].(map[string]interface{})
	if !ok || details["key"] != "a" {
		t.Errorf("details = %v", decoded["details"])
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeTypeMismatch, "input"},
		{CodeIndexOutOfRange, "lookup"},
		{CodeNotFound, "lookup"},
		{CodeDuplicateKey, "merge"},
		{CodeInvalidConfig, "configuration"},
		{CodeUnknown, "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.want {
				t.Errorf("Category() = %q, want %q", got, tt.want)
			}
			if !tt.code.IsValid() {
				t.Error("IsValid() = false")
			}
		})
	}

	if Code("BOGUS").IsValid() {
		t.Error("unknown code reported as valid")
	}
}

func TestSeverityString(t *testing.T) {
	if SeverityLow.String() != "low" || SeverityCritical.String() != "critical" {
		t.Error("unexpected severity names")
	}
	if Severity(42).String() != "unknown" {
		t.Error("out of range severity should be unknown")
	}
	if SeverityMedium.ShouldAlert() || !SeverityHigh.ShouldAlert() {
		t.Error("ShouldAlert() threshold is SeverityHigh")
	}
}
