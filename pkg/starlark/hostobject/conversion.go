package hostobject

import (
	"github.com/buildbarn/bb-hostbox/pkg/box"

	"go.starlark.net/starlark"
)

// ToStarlark converts a Go value to a Starlark value. Primitive values
// (booleans, integers, floating point numbers, strings and byte
// slices) are converted to their Starlark equivalents, as they can
// cross the boundary directly. nil is converted to None. Boxes and
// values of all other types are passed to Starlark as host objects.
func ToStarlark(v any) starlark.Value {
	switch typedV := v.(type) {
	case nil:
		return starlark.None
	case starlark.Value:
		return typedV
	case *box.Box[any]:
		return New(typedV)
	case bool:
		return starlark.Bool(typedV)
	case int:
		return starlark.MakeInt(typedV)
	case int8:
		return starlark.MakeInt64(int64(typedV))
	case int16:
		return starlark.MakeInt64(int64(typedV))
	case int32:
		return starlark.MakeInt64(int64(typedV))
	case int64:
		return starlark.MakeInt64(typedV)
	case uint:
		return starlark.MakeUint(typedV)
	case uint8:
		return starlark.MakeUint64(uint64(typedV))
	case uint16:
		return starlark.MakeUint64(uint64(typedV))
	case uint32:
		return starlark.MakeUint64(uint64(typedV))
	case uint64:
		return starlark.MakeUint64(typedV)
	case uintptr:
		return starlark.MakeUint64(uint64(typedV))
	case float32:
		return starlark.Float(typedV)
	case float64:
		return starlark.Float(typedV)
	case string:
		return starlark.String(typedV)
	case []byte:
		return starlark.Bytes(typedV)
	default:
		return New(box.FromAny(v))
	}
}

// FromStarlark converts a Starlark value to a Go value. It is the
// inverse of ToStarlark(). Integers are returned as int64 if they fit,
// uint64 if they are positive and fit, and *big.Int otherwise. Host
// objects yield the value they hold. Values of other types, such as
// lists and dicts, are returned as is.
func FromStarlark(v starlark.Value) any {
	switch typedV := v.(type) {
	case starlark.NoneType:
		return nil
	case starlark.Bool:
		return bool(typedV)
	case starlark.Int:
		if i, ok := typedV.Int64(); ok {
			return i
		}
		if u, ok := typedV.Uint64(); ok {
			return u
		}
		return typedV.BigInt()
	case starlark.Float:
		return float64(typedV)
	case starlark.String:
		return string(typedV)
	case starlark.Bytes:
		return []byte(typedV)
	case *HostObject:
		return typedV.Unwrap()
	default:
		return v
	}
}
