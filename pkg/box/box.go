package box

import (
	"fmt"
	"reflect"
)

// Box holds a single reference of type T, so that it can be handed to
// code that only deals in opaque values (e.g., a scripting engine) and
// be retrieved later with its original type.
//
// The reference is stored as is. It is neither copied nor mutated, and
// the box does not take ownership of it. Boxes are not safe for
// concurrent mutation, but as none of its methods mutate the box, they
// may be shared as freely as the held reference itself.
type Box[T any] struct {
	value T
}

// New creates a Box that holds the provided value. The value may be
// absent (nil), in which case Unwrap() will return nil as well.
func New[T any](value T) *Box[T] {
	return &Box[T]{
		value: value,
	}
}

// FromAny creates a Box around a value whose static type has already
// been erased. It is equivalent to New[any]().
func FromAny(value any) *Box[any] {
	return New(value)
}

// Unwrap returns the value that was provided to New(). It may be
// called any number of times. Calling Unwrap() on a nil box yields the
// zero value of T.
func (b *Box[T]) Unwrap() T {
	if b == nil {
		var zero T
		return zero
	}
	return b.value
}

// Erase returns a new Box that holds the same reference, but with its
// static type discarded. The original type can be restored using As().
func (b *Box[T]) Erase() *Box[any] {
	if b == nil {
		return New[any](nil)
	}
	return New[any](b.value)
}

// IsAbsent returns true if the box holds no value. In addition to an
// untyped nil, this considers nil pointers, maps, slices, functions,
// channels and interfaces to be absent.
func (b *Box[T]) IsAbsent() bool {
	if b == nil {
		return true
	}
	return isNil(b.value)
}

// TypeName returns the name of the dynamic type of the held value, or
// "nil" if no value is held.
func (b *Box[T]) TypeName() string {
	if b == nil {
		return "nil"
	}
	var v any = b.value
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}

// As restores the type of a value that was previously erased. Absent
// values yield the zero value of T. If the held value cannot be
// represented as T, a *TypeMismatchError is returned.
func As[T any](b *Box[any]) (T, error) {
	var zero T
	v := b.Unwrap()
	if v == nil {
		return zero, nil
	}
	if typedV, ok := v.(T); ok {
		return typedV, nil
	}
	if isNil(v) {
		// Typed nil pointers, maps, etc. stored as a different type
		// still denote an absent value.
		return zero, nil
	}
	return zero, &TypeMismatchError{
		Want: typeNameOf[T](),
		Got:  fmt.Sprintf("%T", v),
	}
}

// MustAs is identical to As, except that it panics if the held value
// cannot be represented as T.
func MustAs[T any](b *Box[any]) T {
	v, err := As[T](b)
	if err != nil {
		panic(err)
	}
	return v
}

func typeNameOf[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
