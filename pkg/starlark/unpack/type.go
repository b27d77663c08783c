package unpack

import (
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

type typeUnpackerInto[T starlark.Value] struct {
	name string
}

// Type accepts Starlark values whose Go type is T, such as
// *starlark.Dict. The name is used in error messages.
func Type[T starlark.Value](name string) UnpackerInto[T] {
	return &typeUnpackerInto[T]{
		name: name,
	}
}

func (ui *typeUnpackerInto[T]) UnpackInto(thread *starlark.Thread, v starlark.Value, dst *T) error {
	typedV, ok := v.(T)
	if !ok {
		return fmt.Errorf("got %s, want %s", v.Type(), ui.name)
	}
	*dst = typedV
	return nil
}

func (ui *typeUnpackerInto[T]) Canonicalize(thread *starlark.Thread, v starlark.Value) (starlark.Value, error) {
	if _, ok := v.(T); !ok {
		return nil, fmt.Errorf("got %s, want %s", v.Type(), ui.name)
	}
	return v, nil
}

func (typeUnpackerInto[T]) GetConcatenationOperator() syntax.Token {
	return 0
}
