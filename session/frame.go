// SPDX-License-Identifier: MIT
// Package: objrand/session
//
// frame.go — one entry on the recursion stack.

package session

import "reflect"

// frame records one step of the live recursion path: the object currently
// being populated and the field whose population pushed this frame. Frames
// are owned by the Session's stack and never escape it.
type frame struct {
	// parent is the object instance currently being populated.
	parent any
	// field is the name of the field whose population pushed this frame;
	// used to build dotted field paths for diagnostics.
	field string
	// used maps a type to the most recent instance of that type reused for
	// cycle avoidance within this frame. Overwritten per type, not appended:
	// only the latest usage per type is remembered. Allocated lazily, since
	// most frames never register a usage.
	used map[reflect.Type]any
}

func newFrame(parent any, field string) *frame {
	return &frame{parent: parent, field: field}
}

// registerUsage remembers obj as the latest instance of type t reused within
// this frame, overwriting any previous usage of the same type.
func (f *frame) registerUsage(t reflect.Type, obj any) {
	if f.used == nil {
		f.used = make(map[reflect.Type]any, 1)
	}
	f.used[t] = obj
}

// usedInstance reports the instance of type t reused within this frame, if any.
func (f *frame) usedInstance(t reflect.Type) (any, bool) {
	obj, ok := f.used[t]
	return obj, ok
}
