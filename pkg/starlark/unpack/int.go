package unpack

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

type intUnpackerInto[T constraints.Integer] struct{}

// Int accepts Starlark integers that can be represented exactly by an
// integer type T. Values that are out of range are rejected, as
// opposed to being truncated.
func Int[T constraints.Integer]() UnpackerInto[T] {
	return intUnpackerInto[T]{}
}

func (intUnpackerInto[T]) UnpackInto(thread *starlark.Thread, v starlark.Value, dst *T) error {
	i, ok := v.(starlark.Int)
	if !ok {
		return fmt.Errorf("got %s, want int", v.Type())
	}
	if i64, ok := i.Int64(); ok {
		if t := T(i64); int64(t) == i64 && (t < 0) == (i64 < 0) {
			*dst = t
			return nil
		}
	} else if u64, ok := i.Uint64(); ok {
		if t := T(u64); uint64(t) == u64 && t >= 0 {
			*dst = t
			return nil
		}
	}
	return fmt.Errorf("integer %s is out of range for type %s", i.String(), reflect.TypeOf(*dst))
}

func (ui intUnpackerInto[T]) Canonicalize(thread *starlark.Thread, v starlark.Value) (starlark.Value, error) {
	var t T
	if err := ui.UnpackInto(thread, v, &t); err != nil {
		return nil, err
	}
	return v, nil
}

func (intUnpackerInto[T]) GetConcatenationOperator() syntax.Token {
	return 0
}
