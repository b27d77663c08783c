package hostobject

import (
	"fmt"
	"hash/maphash"

	"github.com/buildbarn/bb-hostbox/pkg/box"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// TypeName is the Starlark type name of host objects.
const TypeName = "host_object"

// HostObject is a Starlark value that carries a box holding an
// arbitrary Go value. Starlark code cannot inspect the value. It can
// only pass it around, compare it, and hand it back to builtins that
// know how to unwrap it.
type HostObject struct {
	box *box.Box[any]
}

var (
	_ starlark.Comparable = &HostObject{}
	_ starlark.Value      = &HostObject{}
)

var hashSeed = maphash.MakeSeed()

// New returns the Starlark representation of a box. Absent boxes are
// represented as None.
func New(b *box.Box[any]) starlark.Value {
	if b.IsAbsent() {
		return starlark.None
	}
	return &HostObject{
		box: b,
	}
}

// Box returns the box that is carried by a host object. None, and
// values of any other type, yield an absent box.
func Box(v starlark.Value) *box.Box[any] {
	if o, ok := v.(*HostObject); ok {
		return o.box
	}
	return box.New[any](nil)
}

// Unwrap returns the Go value held by the host object.
func (o *HostObject) Unwrap() any {
	return o.box.Unwrap()
}

func (o *HostObject) String() string {
	return fmt.Sprintf("<%s %s>", TypeName, o.box.TypeName())
}

func (o *HostObject) Type() string {
	return TypeName
}

// Freeze is a no-op, as the held value is opaque to Starlark.
func (o *HostObject) Freeze() {}

func (o *HostObject) Truth() starlark.Bool {
	return starlark.True
}

func (o *HostObject) Hash() (uint32, error) {
	return uint32(maphash.Comparable(hashSeed, o.box)), nil
}

// CompareSameType considers two host objects to be equal if they carry
// the same box.
func (o *HostObject) CompareSameType(op syntax.Token, other starlark.Value, depth int) (bool, error) {
	same := o.box == other.(*HostObject).box
	switch op {
	case syntax.EQL:
		return same, nil
	case syntax.NEQ:
		return !same, nil
	default:
		return false, fmt.Errorf("%s %s %s not implemented", TypeName, op, TypeName)
	}
}
