package unpack

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Canonicalizer is implemented by types that can convert a Starlark
// value to its canonical form without converting it to a Go value.
type Canonicalizer interface {
	Canonicalize(thread *starlark.Thread, v starlark.Value) (starlark.Value, error)
	GetConcatenationOperator() syntax.Token
}

type canonicalizeUnpackerInto struct {
	Canonicalizer
}

// Canonicalize converts a Canonicalizer to an UnpackerInto that yields
// Starlark values. This can be used to validate arguments that are
// passed back to Starlark code unmodified.
func Canonicalize(base Canonicalizer) UnpackerInto[starlark.Value] {
	return &canonicalizeUnpackerInto{
		Canonicalizer: base,
	}
}

func (ui *canonicalizeUnpackerInto) UnpackInto(thread *starlark.Thread, v starlark.Value, dst *starlark.Value) error {
	canonicalized, err := ui.Canonicalizer.Canonicalize(thread, v)
	if err != nil {
		return err
	}
	*dst = canonicalized
	return nil
}
