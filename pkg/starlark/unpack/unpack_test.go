package unpack_test

import (
	"math"
	"testing"

	"github.com/buildbarn/bb-hostbox/pkg/starlark/unpack"
	"github.com/stretchr/testify/require"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

func TestInt(t *testing.T) {
	thread := &starlark.Thread{}

	t.Run("Int8", func(t *testing.T) {
		var v int8
		require.NoError(t, unpack.Int[int8]().UnpackInto(thread, starlark.MakeInt(-128), &v))
		require.Equal(t, int8(-128), v)

		require.EqualError(t, unpack.Int[int8]().UnpackInto(thread, starlark.MakeInt(200), &v), "integer 200 is out of range for type int8")
		require.EqualError(t, unpack.Int[int8]().UnpackInto(thread, starlark.String("1"), &v), "got string, want int")
		require.Equal(t, int8(-128), v)
	})

	t.Run("Uint8", func(t *testing.T) {
		var v uint8
		require.NoError(t, unpack.Int[uint8]().UnpackInto(thread, starlark.MakeInt(255), &v))
		require.Equal(t, uint8(255), v)

		require.EqualError(t, unpack.Int[uint8]().UnpackInto(thread, starlark.MakeInt(-1), &v), "integer -1 is out of range for type uint8")
	})

	t.Run("Uint64", func(t *testing.T) {
		var v uint64
		require.NoError(t, unpack.Int[uint64]().UnpackInto(thread, starlark.MakeUint64(math.MaxUint64), &v))
		require.Equal(t, uint64(math.MaxUint64), v)

		var i int64
		require.EqualError(t, unpack.Int[int64]().UnpackInto(thread, starlark.MakeUint64(math.MaxUint64), &i), "integer 18446744073709551615 is out of range for type int64")
	})
}

func TestString(t *testing.T) {
	thread := &starlark.Thread{}

	var s string
	require.NoError(t, unpack.String.UnpackInto(thread, starlark.String("hello"), &s))
	require.Equal(t, "hello", s)
	require.EqualError(t, unpack.String.UnpackInto(thread, starlark.True, &s), "got bool, want string")
	require.Equal(t, syntax.PLUS, unpack.String.GetConcatenationOperator())
}

func TestBool(t *testing.T) {
	thread := &starlark.Thread{}

	var b bool
	require.NoError(t, unpack.Bool.UnpackInto(thread, starlark.True, &b))
	require.True(t, b)
	require.EqualError(t, unpack.Bool.UnpackInto(thread, starlark.MakeInt(1), &b), "got int, want bool")
}

func TestIfNotNone(t *testing.T) {
	thread := &starlark.Thread{}

	s := "default"
	require.NoError(t, unpack.IfNotNone(unpack.String).UnpackInto(thread, starlark.None, &s))
	require.Equal(t, "default", s)
	require.NoError(t, unpack.IfNotNone(unpack.String).UnpackInto(thread, starlark.String("set"), &s))
	require.Equal(t, "set", s)
}

func TestOr(t *testing.T) {
	thread := &starlark.Thread{}
	stringOrInt := unpack.Or([]unpack.UnpackerInto[any]{
		unpack.Decay(unpack.String),
		unpack.Decay(unpack.Int[int]()),
	})

	var v any
	require.NoError(t, stringOrInt.UnpackInto(thread, starlark.String("hello"), &v))
	require.Equal(t, "hello", v)
	require.NoError(t, stringOrInt.UnpackInto(thread, starlark.MakeInt(42), &v))
	require.Equal(t, 42, v)
	require.EqualError(t, stringOrInt.UnpackInto(thread, starlark.None, &v), "got NoneType, want int")
	require.Equal(t, syntax.Token(0), stringOrInt.GetConcatenationOperator())
}

func TestList(t *testing.T) {
	thread := &starlark.Thread{}

	var l []string
	require.NoError(t, unpack.List(unpack.String).UnpackInto(thread, starlark.Tuple{starlark.String("a"), starlark.String("b")}, &l))
	require.Equal(t, []string{"a", "b"}, l)

	require.EqualError(
		t,
		unpack.List(unpack.String).UnpackInto(thread, starlark.NewList([]starlark.Value{starlark.String("a"), starlark.MakeInt(1)}), &l),
		"at index 1: got int, want string")
	require.Equal(t, []string{"a", "b"}, l)

	// Strings and bytes are indexable, but are not lists.
	require.EqualError(t, unpack.List(unpack.String).UnpackInto(thread, starlark.String("abc"), &l), "got string, want list")
	_, err := unpack.List(unpack.Int[uint8]()).Canonicalize(thread, starlark.Bytes("abc"))
	require.EqualError(t, err, "got bytes, want list")
	require.Equal(t, []string{"a", "b"}, l)
}

func TestType(t *testing.T) {
	thread := &starlark.Thread{}

	d := starlark.NewDict(0)
	var v *starlark.Dict
	require.NoError(t, unpack.Type[*starlark.Dict]("dict").UnpackInto(thread, d, &v))
	require.Same(t, d, v)
	require.EqualError(t, unpack.Type[*starlark.Dict]("dict").UnpackInto(thread, starlark.None, &v), "got NoneType, want dict")
}

func TestBind(t *testing.T) {
	thread := &starlark.Thread{}

	var name string
	var count uint16
	require.NoError(t, starlark.UnpackArgs(
		"f",
		starlark.Tuple{starlark.String("x"), starlark.MakeInt(3)},
		nil,
		"name", unpack.Bind(thread, &name, unpack.String),
		"count", unpack.Bind(thread, &count, unpack.Int[uint16]()),
	))
	require.Equal(t, "x", name)
	require.Equal(t, uint16(3), count)

	require.EqualError(t, starlark.UnpackArgs(
		"f",
		starlark.Tuple{starlark.MakeInt(1)},
		nil,
		"name", unpack.Bind(thread, &name, unpack.String),
	), "f: for parameter name: got int, want string")
}

func TestCanonicalize(t *testing.T) {
	thread := &starlark.Thread{}

	var v starlark.Value
	require.NoError(t, unpack.Canonicalize(unpack.List(unpack.Int[int32]())).UnpackInto(thread, starlark.Tuple{starlark.MakeInt(1)}, &v))
	require.Equal(t, "[1]", v.String())

	require.EqualError(
		t,
		unpack.Canonicalize(unpack.List(unpack.Int[int32]())).UnpackInto(thread, starlark.Tuple{starlark.MakeInt64(1 << 40)}, &v),
		"at index 0: integer 1099511627776 is out of range for type int32")

	d := starlark.NewDict(0)
	require.NoError(t, unpack.Canonicalize(unpack.Any).UnpackInto(thread, d, &v))
	require.Same(t, d, v)
}
