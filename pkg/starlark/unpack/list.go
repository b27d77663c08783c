package unpack

import (
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

type listUnpackerInto[T any] struct {
	base UnpackerInto[T]
}

// List accepts Starlark lists and tuples, unpacking each of the
// elements using the provided unpacker.
func List[T any](base UnpackerInto[T]) UnpackerInto[[]T] {
	return &listUnpackerInto[T]{
		base: base,
	}
}

func asIndexable(v starlark.Value) (starlark.Indexable, error) {
	switch list := v.(type) {
	case *starlark.List:
		return list, nil
	case starlark.Tuple:
		return list, nil
	default:
		return nil, fmt.Errorf("got %s, want list", v.Type())
	}
}

func (ui *listUnpackerInto[T]) UnpackInto(thread *starlark.Thread, v starlark.Value, dst *[]T) error {
	list, err := asIndexable(v)
	if err != nil {
		return err
	}

	count := list.Len()
	l := make([]T, count)
	for i := 0; i < count; i++ {
		if err := ui.base.UnpackInto(thread, list.Index(i), &l[i]); err != nil {
			return fmt.Errorf("at index %d: %w", i, err)
		}
	}
	*dst = l
	return nil
}

func (ui *listUnpackerInto[T]) Canonicalize(thread *starlark.Thread, v starlark.Value) (starlark.Value, error) {
	list, err := asIndexable(v)
	if err != nil {
		return nil, err
	}

	count := list.Len()
	l := make([]starlark.Value, 0, count)
	for i := 0; i < count; i++ {
		canonicalized, err := ui.base.Canonicalize(thread, list.Index(i))
		if err != nil {
			return nil, fmt.Errorf("at index %d: %w", i, err)
		}
		l = append(l, canonicalized)
	}
	return starlark.NewList(l), nil
}

func (listUnpackerInto[T]) GetConcatenationOperator() syntax.Token {
	return syntax.PLUS
}
