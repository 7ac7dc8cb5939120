// SPDX-License-Identifier: MIT
// Package: objrand/session
//
// populate.go — contract of the external field-population engine.

package session

import "reflect"

// Populator is the polymorphic field-population mechanism driving a Session.
// The Session has no dependency on how fields are discovered or how concrete
// values are produced; it only receives type/field identifiers and object
// references through its own API.
//
// Implementations must keep PushFrame/PopFrame strictly nested around each
// recursive descent:
//
//	s.PushFrame(parent.Interface(), field.Name)
//	err := p.Populate(s, parent, field)
//	s.PopFrame()
//
// and must consult ExceedsMaxDepth before recursing and FullyRandomized
// before building a fresh instance of a revisited type.
type Populator interface {
	// Populate produces and assigns a randomized value for field on parent.
	// parent is addressable; field identifies the struct field to fill.
	Populate(s *Session, parent reflect.Value, field reflect.StructField) error
}
