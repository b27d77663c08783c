package unpack

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

type orUnpackerInto[T any] struct {
	unpackers []UnpackerInto[T]
}

// Or attempts to unpack a value using each of the provided unpackers,
// returning the result of the first one that succeeds. If all of them
// fail, the error of the last unpacker is returned.
func Or[T any](unpackers []UnpackerInto[T]) UnpackerInto[T] {
	if len(unpackers) == 0 {
		panic("at least one unpacker must be provided")
	}
	return &orUnpackerInto[T]{
		unpackers: unpackers,
	}
}

func (ui *orUnpackerInto[T]) UnpackInto(thread *starlark.Thread, v starlark.Value, dst *T) error {
	var err error
	for _, unpacker := range ui.unpackers {
		if err = unpacker.UnpackInto(thread, v, dst); err == nil {
			return nil
		}
	}
	return err
}

func (ui *orUnpackerInto[T]) Canonicalize(thread *starlark.Thread, v starlark.Value) (starlark.Value, error) {
	var err error
	for _, unpacker := range ui.unpackers {
		var canonicalized starlark.Value
		if canonicalized, err = unpacker.Canonicalize(thread, v); err == nil {
			return canonicalized, nil
		}
	}
	return nil, err
}

func (ui *orUnpackerInto[T]) GetConcatenationOperator() syntax.Token {
	o := ui.unpackers[0].GetConcatenationOperator()
	for _, unpacker := range ui.unpackers[1:] {
		if unpacker.GetConcatenationOperator() != o {
			return 0
		}
	}
	return o
}
