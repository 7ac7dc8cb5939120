// SPDX-License-Identifier: MIT
// Package: objrand/session
//
// options.go — functional options for Session construction.
//
// Contract (strict):
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: pool-index randomness is time-seeded unless
//     WithSeed/WithRand is supplied. The generation seed in params governs
//     size draws only (objrand/sizing) and deliberately does not reach the
//     pool-index RNG.

package session

import "math/rand"

// Option customizes a Session at construction time.
type Option func(*Session)

// WithRand provides an explicit RNG for pool-index picks.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("session: WithRand(nil)")
	}
	return func(s *Session) {
		s.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock pool-pick outcomes.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}
