// SPDX-License-Identifier: MIT
// Package: objrand/params
//
// options.go — functional options for generation parameters.
//
// Contract (strict):
//   • Options are functional (type Option func(*Parameters)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs; runtime
//     code downstream never needs to re-validate a resolved Parameters.
//   • Determinism is explicit: seeding flows through WithSeed only.
//   • No hidden globals; everything flows through Parameters.

package params

import "fmt"

// Option customizes a Parameters value before it is resolved by New.
// Applying N options costs O(N) time, O(1) space.
type Option func(*Parameters)

// WithObjectPoolSize sets the per-type instance pool capacity (>= 1).
// Panics if n < 1: a pool that can hold nothing cannot bound recursion.
func WithObjectPoolSize(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("params: WithObjectPoolSize(%d), want >= 1", n))
	}
	return func(p *Parameters) {
		p.objectPoolSize = n
	}
}

// WithRandomizationDepth sets the maximum recursion depth (>= 0).
// Depth 0 truncates immediately below the root object. Panics if d < 0.
func WithRandomizationDepth(d int) Option {
	if d < 0 {
		panic(fmt.Sprintf("params: WithRandomizationDepth(%d), want >= 0", d))
	}
	return func(p *Parameters) {
		p.randomizationDepth = d
	}
}

// WithAvoidInfiniteRecursion toggles used-set cycle avoidance on pooled picks.
func WithAvoidInfiniteRecursion(enabled bool) Option {
	return func(p *Parameters) {
		p.avoidInfiniteRecursion = enabled
	}
}

// WithAvoidNullsOnDeepestLevel toggles empty-value substitution at the
// deepest permitted recursion level.
func WithAvoidNullsOnDeepestLevel(enabled bool) Option {
	return func(p *Parameters) {
		p.avoidNullsOnDeepestLevel = enabled
	}
}

// WithCollectionSizeRange sets the closed-open size range [min, max) used by
// collection sizing. Panics if min < 0 or max <= min (an empty interval has
// no valid draw).
func WithCollectionSizeRange(min, max int) Option {
	if min < 0 || max <= min {
		panic(fmt.Sprintf("params: WithCollectionSizeRange(%d, %d), want 0 <= min < max", min, max))
	}
	return func(p *Parameters) {
		p.collectionSizeRange = Range{Min: min, Max: max}
	}
}

// WithSeed sets the seed forwarded to size-range draws. Any value is valid;
// equal seeds yield equal draw sequences.
func WithSeed(seed int64) Option {
	return func(p *Parameters) {
		p.seed = seed
	}
}
