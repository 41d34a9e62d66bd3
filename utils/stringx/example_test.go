// File: example_test.go
// Title: Text Helpers Examples
// Description: Examples for the stringx text helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial examples
// - 2026-10-14 v0.2.0: Text helper examples

package stringx

import (
	"fmt"

	"github.com/msto63/utilkit/utils/lazy"
)

func ExampleToNumber() {
	fmt.Println(ToNumber(""))
	fmt.Println(ToNumber("3.14"))
	fmt.Println(ToNumber("abc"))
	// Output:
	// 0
	// 3.14
	// -1
}

func ExampleCount() {
	n, _ := Count("banana", "an")
	fmt.Println(n)
	// Output: 2
}

func ExampleReplaceAllReporting() {
	if _, changed := ReplaceAllReporting("abc", lazy.Of("Z"), lazy.Of("-")); !changed {
		fmt.Println("nothing replaced")
	}

	result, _ := ReplaceAllReporting("aXbXc", lazy.Of("X"), lazy.Of("-"))
	fmt.Println(result)
	// Output:
	// nothing replaced
	// a-b-c
}

func ExampleTrim() {
	fmt.Printf("%q\n", Trim("a b\tc", lazy.Of(false)))
	fmt.Printf("%q\n", Trim(" a b\tc ", lazy.Of(true)))
	// Output:
	// "ab\tc"
	// "a bc"
}
