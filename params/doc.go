// Package params defines the immutable configuration shared by one random
// object-graph generation call.
//
// A Parameters value is resolved once from functional options and then shared
// by reference between the session core (objrand/session) and the sibling
// randomizers (objrand/sizing); nothing mutates it afterwards,
// so no locking is ever needed.
//
// The package offers the following key components:
//
//   - Parameters:      resolved, immutable knob set (pool size, depth, flags,
//     collection size range, seed), built only via New.
//   - Range:           closed-open integer interval [Min, Max).
//   - Option:          functional option mutating Parameters before use.
//   - WithObjectPoolSize, WithRandomizationDepth, WithAvoidInfiniteRecursion,
//     WithAvoidNullsOnDeepestLevel, WithCollectionSizeRange, WithSeed.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option
//     constructors; a resolved Parameters is always internally consistent.
//   - Deterministic, documented defaults (see params.go); no globals.
//   - Equal options in equal order resolve to equal Parameters.
//
// See individual option documentation for validation rules and panic
// conditions.
package params
