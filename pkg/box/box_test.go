package box_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/buildbarn/bb-hostbox/pkg/box"
	"github.com/buildbarn/bb-storage/pkg/testutil"
	"github.com/buildbarn/bb-storage/pkg/util"
	"github.com/stretchr/testify/require"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestBox(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		b := box.New("hello")
		require.Equal(t, "hello", b.Unwrap())
		require.Equal(t, "hello", b.Unwrap())
	})

	t.Run("Nil", func(t *testing.T) {
		b := box.New[any](nil)
		require.Nil(t, b.Unwrap())
		require.True(t, b.IsAbsent())
		require.Equal(t, "nil", b.TypeName())
	})

	t.Run("NilBox", func(t *testing.T) {
		var b *box.Box[*bytes.Buffer]
		require.Nil(t, b.Unwrap())
		require.True(t, b.IsAbsent())
		require.True(t, b.Erase().IsAbsent())
	})

	t.Run("FromAny", func(t *testing.T) {
		b := box.FromAny(42)
		require.Equal(t, 42, b.Unwrap())
		require.Equal(t, box.New[any](42).Unwrap(), b.Unwrap())
		require.Nil(t, box.FromAny(nil).Unwrap())
	})

	t.Run("Identity", func(t *testing.T) {
		buf := &bytes.Buffer{}
		b1 := box.New[any](buf)
		b2 := box.FromAny(buf)

		// Both boxes are distinct, yet refer to the same object.
		require.NotSame(t, b1, b2)
		require.Same(t, buf, b1.Unwrap())
		require.Same(t, buf, b2.Unwrap())

		// Mutations through the unwrapped reference are visible
		// through the original, as no copy is made.
		box.New(buf).Unwrap().WriteString("x")
		require.Equal(t, "x", buf.String())
	})

	t.Run("TypedNil", func(t *testing.T) {
		var buf *bytes.Buffer
		b := box.New[any](buf)
		require.True(t, b.IsAbsent())
		require.Equal(t, "*bytes.Buffer", b.TypeName())
	})
}

func TestAs(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		buf := &bytes.Buffer{}
		b := box.New(buf).Erase()

		v, err := box.As[*bytes.Buffer](b)
		require.NoError(t, err)
		require.Same(t, buf, v)

		w, err := box.As[io.Writer](b)
		require.NoError(t, err)
		require.Same(t, buf, w.(*bytes.Buffer))
	})

	t.Run("Absent", func(t *testing.T) {
		v, err := box.As[*bytes.Buffer](box.FromAny(nil))
		require.NoError(t, err)
		require.Nil(t, v)

		n, err := box.As[int](nil)
		require.NoError(t, err)
		require.Equal(t, 0, n)

		// A typed nil of an unrelated type is still absent.
		var r *bytes.Reader
		v, err = box.As[*bytes.Buffer](box.FromAny(r))
		require.NoError(t, err)
		require.Nil(t, v)
	})

	t.Run("TypeMismatch", func(t *testing.T) {
		_, err := box.As[string](box.FromAny(42))
		require.EqualError(t, err, "got int, want string")
		require.True(t, box.IsTypeMismatch(err))

		expected, detailsErr := status.New(codes.InvalidArgument, "got int, want string").WithDetails(&errdetails.ErrorInfo{
			Reason: box.TypeMismatchReason,
			Domain: box.TypeMismatchDomain,
			Metadata: map[string]string{
				"want": "string",
				"got":  "int",
			},
		})
		require.NoError(t, detailsErr)
		testutil.RequireEqualStatus(t, expected.Err(), err)
	})

	t.Run("TypeMismatchWrapped", func(t *testing.T) {
		_, err := box.As[io.Reader](box.FromAny("hello"))
		wrapped := util.StatusWrap(err, "Failed to restore argument")
		require.Equal(t, codes.InvalidArgument, status.Code(wrapped))
		require.Equal(t, "Failed to restore argument: got string, want io.Reader", status.Convert(wrapped).Message())
		require.True(t, box.IsTypeMismatch(wrapped))
	})

	t.Run("OtherErrors", func(t *testing.T) {
		require.False(t, box.IsTypeMismatch(nil))
		require.False(t, box.IsTypeMismatch(status.Error(codes.InvalidArgument, "got int, want string")))
		require.False(t, box.IsTypeMismatch(io.EOF))
	})

	t.Run("MustAs", func(t *testing.T) {
		require.Equal(t, "hello", box.MustAs[string](box.FromAny("hello")))
		require.PanicsWithError(t, "got string, want int", func() {
			box.MustAs[int](box.FromAny("hello"))
		})
	})
}
