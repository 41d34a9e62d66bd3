// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides random numbers in inclusive ranges.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-14 v0.3.0: Reduced to random ranges with lazy bounds

// Package mathx provides random numbers in inclusive ranges.
//
// RandomInRange computes floor(r*(max-min+1)+min) with r uniform in [0,1).
// For integer bounds with min <= max the result is an integer in [min, max],
// both ends included. RandomUpTo(max) uses 0 as the lower bound.
//
//	mathx.RandomInRange(lazy.Of(2.0), lazy.Of(4.0)) // 2, 3 or 4
//	mathx.RandomUpTo(lazy.Of(5.0))                  // 0 to 5
//
// NewGenerator makes the sequence reproducible.
package mathx
