// File: utils.go
// Title: Shared Error Constructors
// Description: Provides the error builder and the constructors for the four
//              helper error kinds (type, index, not found, duplicate key)
//              plus invalid input and invalid pattern, so every module
//              reports failures with the same shape.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2026-10-14 v0.2.0: Helper error kinds and kind predicates

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/utilkit/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  mdwerror.Severity
	code      mdwerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: mdwerror.SeverityMedium,
		code:     mdwerror.CodeUnknown,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, eb.message)
	} else {
		err = mdwerror.New(eb.message)
	}

	return err.
		WithCode(eb.code).
		WithOperation(eb.operation).
		WithDetails(eb.details).
		WithSeverity(eb.severity)
}

// =============================================================================
// STANDARD ERROR CONSTRUCTORS
// =============================================================================

// TypeError reports a value whose shape does not match what an operation needs
func TypeError(module, operation string, value interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("element '%v' is not %s", value, expected).
		Code(mdwerror.CodeTypeMismatch).
		Detail("value", value).
		Detail("expected", expected).
		Severity(mdwerror.SeverityLow).
		Build()
}

// IndexError reports an index that does not address a populated slot
func IndexError(module, operation string, index interface{}, length int) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("no element with index '%v' was found in sequence", index).
		Code(mdwerror.CodeIndexOutOfRange).
		Detail("index", index).
		Detail("length", length).
		Severity(mdwerror.SeverityLow).
		Build()
}

// NotFoundError reports a value-based lookup that matched nothing
func NotFoundError(module, operation string, value interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("no element with value '%v' was found", value).
		Code(mdwerror.CodeNotFound).
		Detail("value", value).
		Severity(mdwerror.SeverityLow).
		Build()
}

// DuplicateKeyError reports a merge collision without overwrite permission
func DuplicateKeyError(module, operation, key string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("element '%s' already exists", key).
		Code(mdwerror.CodeDuplicateKey).
		Detail("key", key).
		Severity(mdwerror.SeverityLow).
		Build()
}

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s", module, operation).
		Code(mdwerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(mdwerror.SeverityMedium).
		Build()
}

// InvalidPattern wraps a pattern compilation failure
func InvalidPattern(module, operation, pattern string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid pattern %q", pattern).
		Cause(cause).
		Code(mdwerror.CodeInvalidPattern).
		Detail("pattern", pattern).
		Severity(mdwerror.SeverityLow).
		Build()
}

// =============================================================================
// KIND PREDICATES
// =============================================================================

// IsTypeError reports whether err is a TypeError
func IsTypeError(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeTypeMismatch)
}

// IsIndexError reports whether err is an IndexError
func IsIndexError(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeIndexOutOfRange)
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeNotFound)
}

// IsDuplicateKey reports whether err is a DuplicateKeyError
func IsDuplicateKey(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeDuplicateKey)
}
