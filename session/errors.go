// SPDX-License-Identifier: MIT
// Package: objrand/session
//
// errors.go — sentinel errors for the session package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site;
//     implementations attach context via %w at the API boundary.
//   • Contract violations that indicate a bug in the population engine
//     (unbalanced PopFrame) panic instead of returning an error.

package session

import "errors"

// ErrEmptyPool indicates PickPooled was called for a type whose pool holds no
// instances. This is a precondition violation: the engine must check
// FullyRandomized (or otherwise know the pool is non-empty) before picking.
// Usage: if errors.Is(err, ErrEmptyPool) { /* engine bug: picked too early */ }.
var ErrEmptyPool = errors.New("session: pool is empty for requested type")
