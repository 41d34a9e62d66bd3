// File: extend.go
// Title: Map Extension
// Description: Copies the entries of one map into another with an explicit
//              duplicate key policy. Either every entry is copied or none.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.2.0: Initial implementation

package mapx

import (
	"github.com/msto63/utilkit/core/errors"
	mdwlog "github.com/msto63/utilkit/core/log"
	"github.com/msto63/utilkit/internal/shape"
	"github.com/msto63/utilkit/utils/lazy"
	"github.com/msto63/utilkit/utils/typex"
)

// Extend copies every entry of other into dst. A key that already holds a
// value in dst is a duplicate: without overwrite Extend fails and dst is
// left unchanged, with overwrite the value is replaced and a warning is
// written to the default logger.
func Extend[V any](dst map[string]V, other lazy.Value[map[string]V], overwrite lazy.Value[bool]) error {
	src := other.Resolve()

	staged, err := stage(dst, src, overwrite.Resolve(), "Extend")
	if err != nil {
		return err
	}

	for _, k := range staged {
		dst[k] = src[k]
	}
	return nil
}

// ExtendAny is Extend for values of unknown shape. other and overwrite are
// called first when they are producers; other must then be a string keyed
// map and overwrite is judged with typex.ToBoolean.
func ExtendAny(dst map[string]any, other any, overwrite any) error {
	resolved := lazy.Resolve(other)
	if shape.Of(resolved) != shape.Collection {
		return errors.TypeError(errors.ModuleMapx, "ExtendAny", resolved, "an object")
	}

	src := make(map[string]any, shape.Len(resolved))
	for _, k := range shape.Keys(resolved) {
		src[k] = shape.Entry(resolved, k)
	}

	staged, err := stage(dst, src, typex.ToBoolean(overwrite), "ExtendAny")
	if err != nil {
		return err
	}

	for _, k := range staged {
		dst[k] = src[k]
	}
	return nil
}

// stage returns the keys of src to copy into dst, in key order
func stage[V any](dst, src map[string]V, overwrite bool, operation string) ([]string, error) {
	if dst == nil && len(src) > 0 {
		return nil, errors.InvalidInput(errors.ModuleMapx, operation, "nil map", "a writable map")
	}

	staged := make([]string, 0, len(src))
	for _, k := range Keys(src) {
		if existing, exists := dst[k]; exists && shape.Of(existing) != shape.Absent {
			if !overwrite {
				return nil, errors.DuplicateKeyError(errors.ModuleMapx, operation, k)
			}
			mdwlog.Warn("element overwritten because it already existed", mdwlog.Fields{
				"key":       k,
				"operation": operation,
			})
		}
		staged = append(staged, k)
	}
	return staged, nil
}
