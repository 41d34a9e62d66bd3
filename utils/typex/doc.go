// Package typex converts values of any shape to text, numbers and booleans.
//
// Package: typex
// Title: Type Coercion
// Description: Total conversions for dynamic values. Every input has a
//              defined result, none of the functions fail. ToNumber and
//              ToBoolean call zero-argument producers first, ToString
//              inspects the value as given.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.2.0: Initial implementation
//
// Shapes:
//
//	absent      nil, nil pointers
//	boolean     bool
//	number      every integer and float kind
//	text        string
//	sequence    slices and arrays
//	collection  maps with string keys, nil maps are empty collections
//	callable    functions
//
// Maps are rendered with goccy/go-json in key order without HTML escaping.
package typex
