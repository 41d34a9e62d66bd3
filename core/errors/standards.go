// File: standards.go
// Title: Error Standards for utilkit
// Description: Module identifiers and the analysis helpers that read module
//              and operation back out of a standardized error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-14 v0.2.0: Module set of the helper library

package errors

import (
	stderrors "errors"

	mdwerror "github.com/msto63/utilkit/core/error"
)

// Module identifiers for error categorization
const (
	ModuleLazy    = "lazy"
	ModuleSlicex  = "slicex"
	ModuleMapx    = "mapx"
	ModuleStringx = "stringx"
	ModuleTypex   = "typex"
	ModuleMathx   = "mathx"
	ModuleConfig  = "config"
)

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return GetErrorModule(err) == module
}

// GetErrorModule extracts the module name from a standardized error
func GetErrorModule(err error) string {
	return detailString(err, "module")
}

// GetErrorOperation extracts the operation name from a standardized error
func GetErrorOperation(err error) string {
	return detailString(err, "operation")
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return GetErrorModule(err) == module && GetErrorOperation(err) == operation
}

// ExtractDetails extracts all details from the first structured error in the chain
func ExtractDetails(err error) map[string]interface{} {
	var mdwErr *mdwerror.Error
	if stderrors.As(err, &mdwErr) {
		return mdwErr.Details()
	}
	return nil
}

func detailString(err error, key string) string {
	if details := ExtractDetails(err); details != nil {
		if s, ok := details[key].(string); ok {
			return s
		}
	}
	return ""
}
