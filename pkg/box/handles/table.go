package handles

import (
	"github.com/buildbarn/bb-hostbox/pkg/box"
)

// Handle is an integer that stands in for a box at boundaries across
// which only primitive values can be passed. The zero handle denotes
// an absent value.
type Handle uint64

// Table of boxes that have been handed out by handle.
//
// A table only keeps references to the boxes registered with it. It
// never takes ownership of the values held by these boxes.
type Table interface {
	// Register a box, returning a handle that may later be passed to
	// Resolve(). Absent boxes are never stored, and always yield the
	// zero handle.
	Register(b *box.Box[any]) Handle
	// Resolve returns the box that was registered under a handle.
	// The zero handle resolves to an absent box.
	Resolve(h Handle) (*box.Box[any], error)
	// Release a handle, so that its value may be reused by a
	// subsequent call to Register().
	Release(h Handle) error
	// Len returns the number of handles that have been registered,
	// but not released.
	Len() int
}
