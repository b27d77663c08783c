package hostobject

import (
	"github.com/buildbarn/bb-hostbox/pkg/box"
	"github.com/buildbarn/bb-hostbox/pkg/box/handles"
	"github.com/buildbarn/bb-hostbox/pkg/starlark/unpack"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ModuleName is the name under which NewModule() is predeclared.
const ModuleName = "host"

// NewModule creates a Starlark module named "host" that exposes a
// handle table. This permits Starlark code to convert host objects to
// integers and back, which is needed when host objects are passed
// through interfaces that only accept primitive values.
func NewModule(table handles.Table) *starlarkstruct.Module {
	return &starlarkstruct.Module{
		Name: ModuleName,
		Members: starlark.StringDict{
			"box": starlark.NewBuiltin(
				"host.box",
				func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
					var value starlark.Value
					if err := starlark.UnpackArgs(
						b.Name(), args, kwargs,
						"value", unpack.Bind(thread, &value, unpack.Any),
					); err != nil {
						return nil, err
					}
					if obj, ok := value.(*HostObject); ok {
						return obj, nil
					}
					return New(box.FromAny(FromStarlark(value))), nil
				},
			),
			"handle": starlark.NewBuiltin(
				"host.handle",
				func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
					var obj *box.Box[any]
					if err := starlark.UnpackArgs(
						b.Name(), args, kwargs,
						"obj", unpack.Bind(thread, &obj, BoxUnpackerInto),
					); err != nil {
						return nil, err
					}
					return starlark.MakeUint64(uint64(table.Register(obj))), nil
				},
			),
			"handle_all": starlark.NewBuiltin(
				"host.handle_all",
				func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
					var objs []*box.Box[any]
					if err := starlark.UnpackArgs(
						b.Name(), args, kwargs,
						"objs", unpack.Bind(thread, &objs, unpack.List(BoxUnpackerInto)),
					); err != nil {
						return nil, err
					}
					hs := make([]starlark.Value, 0, len(objs))
					for _, obj := range objs {
						hs = append(hs, starlark.MakeUint64(uint64(table.Register(obj))))
					}
					return starlark.NewList(hs), nil
				},
			),
			"resolve": starlark.NewBuiltin(
				"host.resolve",
				func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
					var handle handles.Handle
					var defaultValue starlark.Value = starlark.None
					if err := starlark.UnpackArgs(
						b.Name(), args, kwargs,
						"handle", unpack.Bind(thread, &handle, unpack.Int[handles.Handle]()),
						"default?", unpack.Bind(thread, &defaultValue, unpack.Canonicalize(BoxUnpackerInto)),
					); err != nil {
						return nil, err
					}
					obj, err := table.Resolve(handle)
					if err != nil {
						return nil, err
					}
					if obj.IsAbsent() {
						return defaultValue, nil
					}
					return New(obj), nil
				},
			),
			"release": starlark.NewBuiltin(
				"host.release",
				func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
					var handle handles.Handle
					missingOK := false
					if err := starlark.UnpackArgs(
						b.Name(), args, kwargs,
						"handle", unpack.Bind(thread, &handle, unpack.Int[handles.Handle]()),
						"missing_ok?", unpack.Bind(thread, &missingOK, unpack.Bool),
					); err != nil {
						return nil, err
					}
					if err := table.Release(handle); err != nil && (!missingOK || status.Code(err) != codes.NotFound) {
						return nil, err
					}
					return starlark.None, nil
				},
			),
			"type_of": starlark.NewBuiltin(
				"host.type_of",
				func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
					var obj *box.Box[any]
					absent := ""
					if err := starlark.UnpackArgs(
						b.Name(), args, kwargs,
						"obj", unpack.Bind(thread, &obj, BoxUnpackerInto),
						"absent?", unpack.Bind(thread, &absent, unpack.IfNotNone(unpack.String)),
					); err != nil {
						return nil, err
					}
					if absent != "" && obj.IsAbsent() {
						return starlark.String(absent), nil
					}
					return starlark.String(obj.TypeName()), nil
				},
			),
		},
	}
}
