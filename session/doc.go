// Package session implements the per-generation state machine that bounds
// recursion while a random object graph is being populated.
//
// One Session is created per top-level "generate an object of type T" call
// and discarded when that call returns. It owns:
//
//   - the recursion stack (one frame per field currently being populated),
//   - a bounded per-type pool of already-built instances,
//   - the per-path used-instance registries consulted for cycle avoidance,
//   - the immutable generation parameters (objrand/params).
//
// The external field-population engine (see Populator) drives the Session:
// before descending into a field it calls PushFrame, after returning it calls
// PopFrame, and at each step it consults the decision predicates
// (FullyRandomized, ExceedsMaxDepth, UseEmptyAtCurrentDepth) to choose
// between building a fresh instance, reusing a pooled one via PickPooled, or
// truncating recursion.
//
// Termination on cyclic type graphs (Node.Parent pointing back at Node) is
// guaranteed by the bounded pool plus the used-set fallback in PickPooled: as
// long as an unused pooled instance exists along the current path it is
// preferred, and when none exists the original random pick is accepted
// rather than scanning forever.
//
// Concurrency: a Session is single-threaded by contract. It is never shared
// across concurrent generation calls and therefore holds no locks. The
// caller must keep PushFrame/PopFrame strictly nested and balanced; an
// unbalanced PopFrame panics, since it indicates a bug in the engine rather
// than recoverable input.
//
// Errors:
//
//	ErrEmptyPool - PickPooled was called for a type with no pooled instances.
package session
