// SPDX-License-Identifier: MIT
// Package: objrand/params
//
// params.go — immutable generation parameters and deterministic defaults.
//
// Design:
//   • Parameters is the single source of truth for all generation knobs.
//   • Defaults are deterministic and documented; no globals.
//   • New applies options in-order (later overrides earlier) and returns a
//     value that is never mutated afterwards; consumers share it by reference.
//
// Deterministic defaults (no surprises):
//   • seed                     = 123
//   • objectPoolSize           = 10
//   • randomizationDepth       = math.MaxInt32 (effectively unbounded)
//   • avoidInfiniteRecursion   = false
//   • avoidNullsOnDeepestLevel = false
//   • collectionSizeRange      = [1, 100)

package params

import "math"

// Default parameter values, exported for documentation and tests.
const (
	// DefaultSeed seeds collection-size draws (see objrand/sizing).
	DefaultSeed int64 = 123

	// DefaultObjectPoolSize bounds each type's instance pool.
	DefaultObjectPoolSize = 10

	// DefaultRandomizationDepth effectively disables depth truncation.
	DefaultRandomizationDepth = math.MaxInt32

	// DefaultMinCollectionSize and DefaultMaxCollectionSize bound the default
	// collection size range [Min, Max).
	DefaultMinCollectionSize = 1
	DefaultMaxCollectionSize = 100
)

// Range is a closed-open integer interval [Min, Max).
type Range struct {
	Min int
	Max int
}

// Parameters aggregates all knobs consumed by a generation session and its
// sibling randomizers. Fields are unexported: a Parameters value can only be
// produced by New and is immutable once resolved.
type Parameters struct {
	// Capacity of each type's instance pool.
	objectPoolSize int
	// Maximum recursion depth before truncation.
	randomizationDepth int
	// Enables used-set cycle avoidance on pooled picks.
	avoidInfiniteRecursion bool
	// Substitute an empty value instead of nil at the deepest level.
	avoidNullsOnDeepestLevel bool
	// Size range for collections/arrays, consumed by objrand/sizing only.
	collectionSizeRange Range
	// Seed for reproducible size draws; pool-index randomness is independent.
	seed int64
}

// New constructs a Parameters value with deterministic defaults and applies
// all options in order, last-wins. Option constructors validate their inputs
// and panic on meaningless values, so the resolved Parameters are always
// valid by construction.
// Complexity: O(len(opts)) time, O(1) space.
func New(opts ...Option) *Parameters {
	p := &Parameters{
		objectPoolSize:     DefaultObjectPoolSize,
		randomizationDepth: DefaultRandomizationDepth,
		collectionSizeRange: Range{
			Min: DefaultMinCollectionSize,
			Max: DefaultMaxCollectionSize,
		},
		seed: DefaultSeed,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// ObjectPoolSize reports the capacity of each type's instance pool.
func (p *Parameters) ObjectPoolSize() int { return p.objectPoolSize }

// RandomizationDepth reports the maximum recursion depth before truncation.
func (p *Parameters) RandomizationDepth() int { return p.randomizationDepth }

// AvoidInfiniteRecursion reports whether used-set cycle avoidance is enabled.
func (p *Parameters) AvoidInfiniteRecursion() bool { return p.avoidInfiniteRecursion }

// AvoidNullsOnDeepestLevel reports whether empty values are substituted at
// the deepest permitted recursion level.
func (p *Parameters) AvoidNullsOnDeepestLevel() bool { return p.avoidNullsOnDeepestLevel }

// CollectionSizeRange reports the closed-open size range for collections.
func (p *Parameters) CollectionSizeRange() Range { return p.collectionSizeRange }

// Seed reports the seed forwarded to size-range draws.
func (p *Parameters) Seed() int64 { return p.seed }
