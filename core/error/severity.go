// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger uses the
//              severity to pick the level an error is reported at.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-14 v0.2.0: Severity mapping for the helper error kinds

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a caller mistake such as a bad index or a missing value
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a serious error
	SeverityHigh

	// SeverityCritical indicates an error the process cannot recover from
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityHigh
	case CodeInvalidInput, CodeTypeMismatch, CodeIndexOutOfRange, CodeNotFound,
		CodeDuplicateKey, CodeInvalidPattern:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
