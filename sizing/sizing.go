// SPDX-License-Identifier: MIT
// Package: objrand/sizing
//
// sizing.go — seeded collection-size draws over a configured range.

// Package sizing converts the configured collection size range plus the
// generation seed into a stream of random sizes. Sibling randomizers use it
// to size collections, arrays, and maps.
//
// Determinism: a Sizer built from given Parameters always produces the same
// sequence of sizes for the same seed, so a fixed seed makes whole
// generation runs reproducible size-wise.
package sizing

import (
	"math/rand"

	"github.com/katalvlaran/objrand/params"
)

// Sizer draws uniform sizes from the closed-open range configured in the
// generation parameters, using an RNG seeded by the configured seed.
// Not safe for concurrent use; create one per generation call, like a
// session.
type Sizer struct {
	min int
	max int
	rng *rand.Rand
}

// New builds a Sizer from p's collection size range and seed. A nil p
// resolves to params.New() defaults. The range is valid by construction
// (params options reject empty intervals).
func New(p *params.Parameters) *Sizer {
	if p == nil {
		p = params.New()
	}
	r := p.CollectionSizeRange()
	return &Sizer{
		min: r.Min,
		max: r.Max,
		rng: rand.New(rand.NewSource(p.Seed())),
	}
}

// Next returns one uniformly random size in [Min, Max).
func (s *Sizer) Next() int {
	return s.min + s.rng.Intn(s.max-s.min)
}
