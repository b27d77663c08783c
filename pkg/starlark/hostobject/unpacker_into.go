package hostobject

import (
	"fmt"

	"github.com/buildbarn/bb-hostbox/pkg/box"
	"github.com/buildbarn/bb-hostbox/pkg/starlark/unpack"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

type unpackerInto[T any] struct {
	name string
}

// NewUnpackerInto creates an unpacker that restores the value held by
// a host object, returning an error if the held value cannot be
// represented as T. None is accepted and yields the zero value of T.
// The name is used in error messages when values of other Starlark
// types are provided.
func NewUnpackerInto[T any](name string) unpack.UnpackerInto[T] {
	return &unpackerInto[T]{
		name: name,
	}
}

func (ui *unpackerInto[T]) UnpackInto(thread *starlark.Thread, v starlark.Value, dst *T) error {
	b, err := ui.box(v)
	if err != nil {
		return err
	}
	typedV, err := box.As[T](b)
	if err != nil {
		return err
	}
	*dst = typedV
	return nil
}

func (ui *unpackerInto[T]) Canonicalize(thread *starlark.Thread, v starlark.Value) (starlark.Value, error) {
	var t T
	if err := ui.UnpackInto(thread, v, &t); err != nil {
		return nil, err
	}
	return v, nil
}

func (unpackerInto[T]) GetConcatenationOperator() syntax.Token {
	return 0
}

func (ui *unpackerInto[T]) box(v starlark.Value) (*box.Box[any], error) {
	switch typedV := v.(type) {
	case starlark.NoneType:
		return box.New[any](nil), nil
	case *HostObject:
		return typedV.box, nil
	default:
		return nil, fmt.Errorf("got %s, want %s", v.Type(), ui.name)
	}
}

type boxUnpackerInto struct{}

// BoxUnpackerInto accepts host objects and None, yielding the box
// carried by the host object without restoring the type of the held
// value.
var BoxUnpackerInto unpack.UnpackerInto[*box.Box[any]] = boxUnpackerInto{}

func (boxUnpackerInto) UnpackInto(thread *starlark.Thread, v starlark.Value, dst **box.Box[any]) error {
	switch v.(type) {
	case starlark.NoneType, *HostObject:
		*dst = Box(v)
		return nil
	default:
		return fmt.Errorf("got %s, want %s", v.Type(), TypeName)
	}
}

func (ui boxUnpackerInto) Canonicalize(thread *starlark.Thread, v starlark.Value) (starlark.Value, error) {
	var b *box.Box[any]
	if err := ui.UnpackInto(thread, v, &b); err != nil {
		return nil, err
	}
	return v, nil
}

func (boxUnpackerInto) GetConcatenationOperator() syntax.Token {
	return 0
}
