// Package lazy provides parameters that accept a literal or a producer.
//
// Every helper in utilkit takes its optional arguments as lazy.Value so a
// caller can defer computing them:
//
//	slicex.SwapByIndex(s, lazy.Of(0), lazy.From(func() int { return len(s) - 1 }))
//
// Resolve is the dynamic counterpart for values of unknown shape.
package lazy
