// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes raised by the utilkit helpers. Codes
//              classify failures so callers can branch on the kind of error
//              instead of matching message text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-14 v0.2.0: Reduced to the helper error kinds

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Helper error kinds
	CodeTypeMismatch    Code = "TYPE_MISMATCH"
	CodeIndexOutOfRange Code = "INDEX_OUT_OF_RANGE"
	CodeNotFound        Code = "NOT_FOUND"
	CodeDuplicateKey    Code = "DUPLICATE_KEY"
	CodeInvalidPattern  Code = "INVALID_PATTERN"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeTypeMismatch, CodeIndexOutOfRange, CodeNotFound, CodeDuplicateKey, CodeInvalidPattern,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeTypeMismatch, CodeInvalidInput, CodeInvalidPattern:
		return "input"
	case CodeIndexOutOfRange, CodeNotFound:
		return "lookup"
	case CodeDuplicateKey:
		return "merge"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}
