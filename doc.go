// Package objrand is the recursion-control core of a random object-graph
// generator: it decides, at every recursive step of populating a fixture,
// whether to build a fresh instance, reuse a pooled one, or truncate
// recursion — and it guarantees termination on cyclic type graphs
// (Node.Parent pointing back at Node) while keeping the output varied.
//
// 🚀 What is objrand?
//
//	A small, single-threaded, pure-Go core that brings together:
//		• Session: per-call recursion stack + bounded per-type instance pool
//		• Cycle avoidance: per-path used-instance registries with a
//		  termination-guaranteeing fallback
//		• Depth control: ExceedsMaxDepth / empty-value substitution at the
//		  deepest permitted level
//		• Reproducible sizing: seeded collection-size draws
//
// ✨ Why this shape?
//
//   - Never-reuse cannot terminate on self-referential types; always-reuse
//     collapses variety. The bounded pool plus per-path used set gives
//     bounded memory, bounded recursion, and maximal diversity of reused
//     instances along any single path.
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic where it matters – seeded draws and injectable RNGs for
//     golden tests
//
// Everything is organized under three subpackages:
//
//	params/  — immutable generation parameters, functional options
//	session/ — Session, frames, pooled-instance picks (the core)
//	sizing/  — seeded [min,max) size draws for collections
//
// Quick sketch of the engine protocol:
//
//	s := session.New(reflect.TypeOf(&T{}), params.New())
//	s.PushFrame(parent, field)   // before descending into a field
//	defer s.PopFrame()           // after its population returns
//	if s.FullyRandomized(typ) {  // prefer reuse for revisited types
//	    obj, err := s.PickPooled(typ)
//	    ...
//	}
//
// Dive into the package docs of session/ for the full decision API and the
// runnable cyclic-type example.
//
//	go get github.com/katalvlaran/objrand
package objrand
