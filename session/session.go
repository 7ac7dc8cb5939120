// SPDX-License-Identifier: MIT
// Package: objrand/session
//
// session.go — per-call recursion and reuse state machine.
//
// Design:
//   • One Session per top-level generation call; no cross-call state.
//   • The pool is a type-indexed cache of built instances, capped at
//     Parameters.ObjectPoolSize per type; overflow registrations are silently
//     dropped (designed policy, not an error).
//   • Cycle avoidance consults the union of every stacked frame's used
//     registry plus the root registry — all ancestors of the current field,
//     not just the immediate parent. Preserving exactly this union keeps the
//     observed reuse diversity.
//   • Instance identity is Go interface equality (==). Generated instances
//     are pointers in practice, so this matches reference identity.

package session

import (
	"fmt"
	"math/rand"
	"reflect"
	"strings"
	"time"

	"github.com/katalvlaran/objrand/params"
)

// Session tracks recursion depth, pooled instances, and per-path usage for a
// single top-level generation call. Create one with New, drive it from the
// population engine, and discard it when the call returns.
type Session struct {
	// target is the type requested at the top of the call; immutable.
	target reflect.Type
	// params are the immutable generation parameters, shared by reference.
	params *params.Parameters
	// pool maps a type to its bounded sequence of previously built instances.
	pool map[reflect.Type][]any
	// stack is the live recursion path, oldest frame first.
	stack []*frame
	// root is the first instance assigned as the top-level result; rootSet
	// keeps the assignment one-shot even when the first instance is nil.
	root    any
	rootSet bool
	// rootUsed maps a type to the instance most recently reused while the
	// stack was empty (outside any active recursion frame).
	rootUsed map[reflect.Type]any
	// rng draws pool indices; independent of params.Seed unless overridden
	// via WithSeed/WithRand.
	rng *rand.Rand
}

// New creates the state for one top-level generation of target. A nil p
// resolves to params.New() defaults. Options may pin the pool-index RNG for
// deterministic tests; by default it is time-seeded.
func New(target reflect.Type, p *params.Parameters, opts ...Option) *Session {
	if p == nil {
		p = params.New()
	}

	s := &Session{
		target:   target,
		params:   p,
		pool:     make(map[reflect.Type][]any),
		rootUsed: make(map[reflect.Type]any),
	}

	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return s
}

// FullyRandomized reports whether the pool for t has reached capacity, i.e.
// no further fresh instances of t will be built. False for any lower count,
// including a missing pool.
func (s *Session) FullyRandomized(t reflect.Type) bool {
	return len(s.pool[t]) == s.params.ObjectPoolSize()
}

// RegisterBuilt appends obj to the pool for t if the pool is below capacity,
// and silently drops it otherwise. Dropping is the designed overflow policy:
// the pool simply stops growing.
func (s *Session) RegisterBuilt(t reflect.Type, obj any) {
	if len(s.pool[t]) < s.params.ObjectPoolSize() {
		s.pool[t] = append(s.pool[t], obj)
	}
}

// PickPooled returns a previously built instance of t.
//
// A uniformly random pooled instance is chosen first. When cycle avoidance is
// enabled and at least one pooled instance has not yet been used along the
// current recursion path, the scan walks forward from the random index
// (wrapping around) to the first unused instance. When every pooled instance
// is already used, avoiding reuse is impossible without growing the pool, so
// the original random pick is returned instead of scanning forever.
//
// Precondition: the pool for t is non-empty; violating it returns an error
// wrapping ErrEmptyPool. The engine must not treat that as recoverable — it
// indicates a pick issued before any instance of t was registered.
func (s *Session) PickPooled(t reflect.Type) (any, error) {
	pooled := s.pool[t]
	n := len(pooled)
	if n == 0 {
		return nil, fmt.Errorf("PickPooled(%v): %w", t, ErrEmptyPool)
	}

	idx := 0
	if n > 1 {
		idx = s.rng.Intn(n)
	}
	if !s.params.AvoidInfiniteRecursion() {
		return pooled[idx], nil
	}

	used := s.usedSet(t)
	if len(used) < n {
		// At least one pooled instance is unused along the current path;
		// the wrap-around scan is guaranteed to find it.
		for i := 0; i < n; i++ {
			if cand := pooled[(idx+i)%n]; !containsInstance(used, cand) {
				return cand, nil
			}
		}
	}

	// Every pooled instance already sits on the current path; accept a reuse.
	return pooled[idx], nil
}

// PushFrame records descent into field of parent. Must be paired with a
// PopFrame by the caller around each field's recursive population.
func (s *Session) PushFrame(parent any, field string) {
	s.stack = append(s.stack, newFrame(parent, field))
}

// PopFrame removes the topmost frame. Panics when the stack is empty: an
// unmatched pop is a bug in the population engine and is fatal to the
// current generation call.
func (s *Session) PopFrame() {
	if len(s.stack) == 0 {
		panic("session: PopFrame without matching PushFrame")
	}
	s.stack[len(s.stack)-1] = nil
	s.stack = s.stack[:len(s.stack)-1]
}

// FieldPath builds the lower-cased, dot-joined path of the stacked field
// names (oldest frame first) followed by field. Used for diagnostics and
// error messages, never for control flow.
func (s *Session) FieldPath(field string) string {
	parts := make([]string, 0, len(s.stack)+1)
	for _, f := range s.stack {
		parts = append(parts, strings.ToLower(f.field))
	}
	parts = append(parts, strings.ToLower(field))
	return strings.Join(parts, ".")
}

// ExceedsMaxDepth reports whether the current stack depth has gone past the
// configured randomization depth. The caller must check it before each
// recursive descent; the Session does not enforce it unilaterally.
func (s *Session) ExceedsMaxDepth() bool {
	return len(s.stack) > s.params.RandomizationDepth()
}

// UseEmptyAtCurrentDepth reports whether the engine should substitute an
// "empty" value instead of nil at the current level: true exactly when the
// stack sits at the configured maximum depth and the parameters request
// empty-value substitution there.
func (s *Session) UseEmptyAtCurrentDepth() bool {
	return s.params.AvoidNullsOnDeepestLevel() &&
		len(s.stack) == s.params.RandomizationDepth()
}

// RegisterUsage records obj as the instance of t most recently reused at the
// current position: on the topmost frame when the stack is non-empty
// (ancestor frames are untouched), or in the root registry when it is empty.
// No-op when cycle avoidance is disabled.
func (s *Session) RegisterUsage(t reflect.Type, obj any) {
	if !s.params.AvoidInfiniteRecursion() {
		return
	}
	if len(s.stack) == 0 {
		s.rootUsed[t] = obj
		return
	}
	s.stack[len(s.stack)-1].registerUsage(t, obj)
}

// SetRootOnce assigns the top-level result instance. Only the first call has
// an effect; later calls are no-ops regardless of the instance passed.
func (s *Session) SetRootOnce(obj any) {
	if !s.rootSet {
		s.root = obj
		s.rootSet = true
	}
}

// CurrentObject returns the object being populated right now: the topmost
// frame's parent, or the root instance when the stack is empty.
func (s *Session) CurrentObject() any {
	if len(s.stack) == 0 {
		return s.root
	}
	return s.stack[len(s.stack)-1].parent
}

// CurrentFieldPath returns the stacked field names joined with dots, oldest
// first, without case folding. Empty when the stack is empty.
func (s *Session) CurrentFieldPath() string {
	parts := make([]string, 0, len(s.stack))
	for _, f := range s.stack {
		parts = append(parts, f.field)
	}
	return strings.Join(parts, ".")
}

// Depth returns the current recursion depth (stack size).
func (s *Session) Depth() int { return len(s.stack) }

// Root returns the top-level result instance, or nil before SetRootOnce.
func (s *Session) Root() any { return s.root }

// TargetType returns the type requested at the top of the call.
func (s *Session) TargetType() reflect.Type { return s.target }

// Parameters returns the immutable generation parameters.
func (s *Session) Parameters() *params.Parameters { return s.params }

// usedSet collects the distinct instances of t already used along the current
// path: each stacked frame's registered usage plus the root registry entry.
// The slice stays tiny (bounded by stack depth + 1), so linear membership
// checks beat allocating a map here.
func (s *Session) usedSet(t reflect.Type) []any {
	var used []any
	for _, f := range s.stack {
		if obj, ok := f.usedInstance(t); ok && !containsInstance(used, obj) {
			used = append(used, obj)
		}
	}
	if obj, ok := s.rootUsed[t]; ok && !containsInstance(used, obj) {
		used = append(used, obj)
	}
	return used
}

// containsInstance reports membership by interface equality. Instances must
// be comparable; generated objects are pointers in practice.
func containsInstance(set []any, obj any) bool {
	for _, u := range set {
		if u == obj {
			return true
		}
	}
	return false
}
