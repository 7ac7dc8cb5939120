// SPDX-License-Identifier: MIT
// Package session_test verifies the recursion/reuse state machine: pool
// bounds, cycle-avoidance picks, depth predicates, and the frame protocol.

package session_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/objrand/params"
	"github.com/katalvlaran/objrand/session"
)

// item stands in for a generated object; pooled instances are pointers, so
// identity is pointer identity.
type item struct{ n int }

var itemType = reflect.TypeOf(&item{})

// newSession builds a deterministic session; opts are params options.
func newSession(t *testing.T, opts ...params.Option) *session.Session {
	t.Helper()
	return session.New(itemType, params.New(opts...), session.WithSeed(42))
}

func TestSession_FullyRandomized(t *testing.T) {
	s := newSession(t, params.WithObjectPoolSize(3))

	assert.False(t, s.FullyRandomized(itemType), "empty pool must not be fully randomized")

	s.RegisterBuilt(itemType, &item{1})
	s.RegisterBuilt(itemType, &item{2})
	assert.False(t, s.FullyRandomized(itemType), "pool below capacity must not be fully randomized")

	s.RegisterBuilt(itemType, &item{3})
	assert.True(t, s.FullyRandomized(itemType), "pool at capacity must be fully randomized")
}

// TestSession_PoolBounded registers more instances than the pool capacity and
// asserts that picks only ever return the instances registered before the
// pool filled up (overflow registrations are silently dropped).
func TestSession_PoolBounded(t *testing.T) {
	s := newSession(t, params.WithObjectPoolSize(2))

	a, b, c := &item{1}, &item{2}, &item{3}
	s.RegisterBuilt(itemType, a)
	s.RegisterBuilt(itemType, b)
	s.RegisterBuilt(itemType, c) // dropped: pool already at capacity

	assert.True(t, s.FullyRandomized(itemType))
	for i := 0; i < 100; i++ {
		got, err := s.PickPooled(itemType)
		require.NoError(t, err)
		assert.NotSame(t, c, got, "overflow registration must never be picked")
	}
}

func TestSession_SetRootOnce(t *testing.T) {
	s := newSession(t)

	first, second := &item{1}, &item{2}
	s.SetRootOnce(first)
	s.SetRootOnce(second)

	assert.Same(t, first, s.Root(), "root must keep its first assignment")
}

// TestSession_DepthPredicates pins the boundary semantics: with depth 2,
// stack sizes 0..2 are within bounds and 3 exceeds them; empty substitution
// fires exactly at the configured depth, and only when enabled.
func TestSession_DepthPredicates(t *testing.T) {
	cases := []struct {
		depth       int
		wantExceeds bool
		wantEmpty   bool
	}{
		{depth: 0, wantExceeds: false, wantEmpty: false},
		{depth: 1, wantExceeds: false, wantEmpty: false},
		{depth: 2, wantExceeds: false, wantEmpty: true},
		{depth: 3, wantExceeds: true, wantEmpty: false},
	}

	s := newSession(t,
		params.WithRandomizationDepth(2),
		params.WithAvoidNullsOnDeepestLevel(true),
	)
	plain := newSession(t, params.WithRandomizationDepth(2))

	for _, tc := range cases {
		for s.Depth() < tc.depth {
			s.PushFrame(&item{}, "f")
			plain.PushFrame(&item{}, "f")
		}
		assert.Equal(t, tc.wantExceeds, s.ExceedsMaxDepth(), "ExceedsMaxDepth at depth %d", tc.depth)
		assert.Equal(t, tc.wantEmpty, s.UseEmptyAtCurrentDepth(), "UseEmptyAtCurrentDepth at depth %d", tc.depth)
		assert.False(t, plain.UseEmptyAtCurrentDepth(), "substitution disabled must stay false at depth %d", tc.depth)
	}
}

func TestSession_FieldPath(t *testing.T) {
	s := newSession(t)

	assert.Equal(t, "price", s.FieldPath("Price"), "path with empty stack is the field alone")

	s.PushFrame(&item{}, "Order")
	s.PushFrame(&item{}, "Item")
	assert.Equal(t, "order.item.price", s.FieldPath("Price"))
	assert.Equal(t, "Order.Item", s.CurrentFieldPath(), "diagnostic path keeps original casing")
}

func TestSession_Accessors(t *testing.T) {
	p := params.New()
	s := session.New(itemType, p, session.WithSeed(1))

	assert.Equal(t, itemType, s.TargetType())
	assert.Same(t, p, s.Parameters())
	assert.Nil(t, s.CurrentObject(), "no root, empty stack: no current object")

	root := &item{0}
	s.SetRootOnce(root)
	assert.Same(t, root, s.CurrentObject(), "empty stack falls back to root")

	child := &item{1}
	s.PushFrame(child, "Child")
	assert.Same(t, child, s.CurrentObject(), "top frame's parent wins over root")
	assert.Equal(t, 1, s.Depth())

	s.PopFrame()
	assert.Equal(t, 0, s.Depth())
}

func TestSession_PopFrame_Unbalanced(t *testing.T) {
	s := newSession(t)
	assert.Panics(t, func() { s.PopFrame() }, "pop without push must fail loudly")
}

func TestSession_PickPooled_EmptyPool(t *testing.T) {
	s := newSession(t)

	got, err := s.PickPooled(itemType)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, session.ErrEmptyPool)
}

// TestSession_PickPooled_Uniform checks that with cycle avoidance disabled
// the pick distribution over a pool of 3 converges to uniform (tolerance
// well above the ~1.6% standard deviation at 3000 draws).
func TestSession_PickPooled_Uniform(t *testing.T) {
	s := newSession(t, params.WithObjectPoolSize(3))

	members := []*item{{1}, {2}, {3}}
	for _, m := range members {
		s.RegisterBuilt(itemType, m)
	}

	const draws = 3000
	counts := make(map[*item]int, len(members))
	for i := 0; i < draws; i++ {
		got, err := s.PickPooled(itemType)
		require.NoError(t, err)
		counts[got.(*item)]++
	}

	for _, m := range members {
		assert.InDelta(t, draws/3, counts[m], draws/10,
			"pick counts should be roughly uniform")
	}
}

// TestSession_PickPooled_AvoidsUsed reproduces the three-member scenario:
// A used at an ancestor frame, B used at root, C untouched. Every pick must
// return C while the avoidance constraint is satisfiable.
func TestSession_PickPooled_AvoidsUsed(t *testing.T) {
	s := newSession(t,
		params.WithObjectPoolSize(3),
		params.WithAvoidInfiniteRecursion(true),
	)

	a, b, c := &item{1}, &item{2}, &item{3}
	s.RegisterBuilt(itemType, a)
	s.RegisterBuilt(itemType, b)
	s.RegisterBuilt(itemType, c)

	s.RegisterUsage(itemType, b) // stack empty: root registry
	s.PushFrame(&item{}, "Parent")
	s.RegisterUsage(itemType, a) // ancestor frame
	s.PushFrame(&item{}, "Child")

	for i := 0; i < 100; i++ {
		got, err := s.PickPooled(itemType)
		require.NoError(t, err)
		assert.Same(t, c, got, "only unused pooled instance must be picked")
	}
}

// TestSession_PickPooled_FallbackWhenAllUsed pins the termination guarantee:
// a fully-used pool returns its single member instead of scanning forever.
func TestSession_PickPooled_FallbackWhenAllUsed(t *testing.T) {
	s := newSession(t,
		params.WithObjectPoolSize(1),
		params.WithAvoidInfiniteRecursion(true),
	)

	a := &item{1}
	s.RegisterBuilt(itemType, a)
	s.RegisterUsage(itemType, a)
	s.PushFrame(&item{}, "Parent")

	got, err := s.PickPooled(itemType)
	require.NoError(t, err)
	assert.Same(t, a, got, "fully used pool must fall back to the random pick")
}

// TestSession_PickPooled_NeverUsedWhileUnusedExists marks one of three
// pooled instances used and asserts it is never returned.
func TestSession_PickPooled_NeverUsedWhileUnusedExists(t *testing.T) {
	s := newSession(t,
		params.WithObjectPoolSize(3),
		params.WithAvoidInfiniteRecursion(true),
	)

	a, b, c := &item{1}, &item{2}, &item{3}
	s.RegisterBuilt(itemType, a)
	s.RegisterBuilt(itemType, b)
	s.RegisterBuilt(itemType, c)

	s.PushFrame(&item{}, "Parent")
	s.RegisterUsage(itemType, b)

	for i := 0; i < 200; i++ {
		got, err := s.PickPooled(itemType)
		require.NoError(t, err)
		assert.NotSame(t, b, got, "used instance must not be picked while unused ones exist")
	}
}

// TestSession_RegisterUsage_TopFrameOnly checks frame scoping: a usage lands
// on the topmost frame only, and popping that frame forgets it.
func TestSession_RegisterUsage_TopFrameOnly(t *testing.T) {
	s := newSession(t,
		params.WithObjectPoolSize(2),
		params.WithAvoidInfiniteRecursion(true),
	)

	a, b := &item{1}, &item{2}
	s.RegisterBuilt(itemType, a)
	s.RegisterBuilt(itemType, b)

	s.PushFrame(&item{}, "Outer")
	s.PushFrame(&item{}, "Inner")
	s.RegisterUsage(itemType, a) // lands on Inner, not Outer

	for i := 0; i < 50; i++ {
		got, err := s.PickPooled(itemType)
		require.NoError(t, err)
		assert.Same(t, b, got, "usage on inner frame must steer picks away from a")
	}

	s.PopFrame() // Inner gone, its usage with it
	sawA := false
	for i := 0; i < 200 && !sawA; i++ {
		got, err := s.PickPooled(itemType)
		require.NoError(t, err)
		sawA = got.(*item) == a
	}
	assert.True(t, sawA, "after popping the owning frame, a is pickable again")
}

// TestSession_RegisterUsage_Disabled asserts usage registration is a no-op
// when cycle avoidance is off: a "used" instance keeps being picked for a
// pool of one.
func TestSession_RegisterUsage_Disabled(t *testing.T) {
	s := newSession(t, params.WithObjectPoolSize(1))

	a := &item{1}
	s.RegisterBuilt(itemType, a)
	s.PushFrame(&item{}, "Parent")
	s.RegisterUsage(itemType, a)

	got, err := s.PickPooled(itemType)
	require.NoError(t, err)
	assert.Same(t, a, got)
}

// TestSession_PerTypePools ensures pools and used registries are keyed by
// type: filling one type's pool leaves another's untouched.
func TestSession_PerTypePools(t *testing.T) {
	type other struct{ s string }
	otherType := reflect.TypeOf(&other{})

	s := newSession(t, params.WithObjectPoolSize(1))
	s.RegisterBuilt(itemType, &item{1})

	assert.True(t, s.FullyRandomized(itemType))
	assert.False(t, s.FullyRandomized(otherType))

	_, err := s.PickPooled(otherType)
	assert.ErrorIs(t, err, session.ErrEmptyPool)
}
