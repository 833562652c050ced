package carton

import "fmt"

// Opt is an explicitly present-or-absent value. The distinction matters for
// side shorthands: an absent side contributes nothing to layout, while a
// present zero still claims its slot (a zero-width padding band is a band).
type Opt[T any] struct {
	val T
	ok  bool
}

// Some returns a present Opt.
func Some[T any](v T) Opt[T] {
	return Opt[T]{val: v, ok: true}
}

// None returns an absent Opt.
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) {
	return o.val, o.ok
}

// IsSet reports whether the value is present.
func (o Opt[T]) IsSet() bool {
	return o.ok
}

// Or returns the value if present, otherwise def.
func (o Opt[T]) Or(def T) T {
	if o.ok {
		return o.val
	}
	return def
}

// Sides holds a fully resolved per-side specification. Each side is
// independently optional. A Sides value is the "object form" of the
// shorthand grammar and passes through Expand-style resolution unchanged.
type Sides[T any] struct {
	Top    Opt[T]
	Right  Opt[T]
	Bottom Opt[T]
	Left   Opt[T]
}

// Uniform returns Sides with the same present value on all four sides.
func Uniform[T any](v T) Sides[T] {
	s := Some(v)
	return Sides[T]{Top: s, Right: s, Bottom: s, Left: s}
}

// Symmetric returns Sides with vertical applied to top+bottom and
// horizontal applied to left+right.
func Symmetric[T any](vertical, horizontal T) Sides[T] {
	v, h := Some(vertical), Some(horizontal)
	return Sides[T]{Top: v, Right: h, Bottom: v, Left: h}
}

// TRBL returns Sides with explicit values in CSS order: top, right, bottom, left.
func TRBL[T any](top, right, bottom, left T) Sides[T] {
	return Sides[T]{Top: Some(top), Right: Some(right), Bottom: Some(bottom), Left: Some(left)}
}

// Expand resolves a CSS-style side shorthand into explicit per-side values:
//
//	1 part:  [all]
//	2 parts: [vertical, horizontal]
//	3 parts: [top, horizontal, bottom]
//	4 parts: [top, right, bottom, left]
//
// An absent part leaves the corresponding side(s) absent in the result; it is
// not defaulted. Any other arity is a construction error.
func Expand[T any](parts ...Opt[T]) (Sides[T], error) {
	switch len(parts) {
	case 1:
		return Sides[T]{Top: parts[0], Right: parts[0], Bottom: parts[0], Left: parts[0]}, nil
	case 2:
		return Sides[T]{Top: parts[0], Right: parts[1], Bottom: parts[0], Left: parts[1]}, nil
	case 3:
		return Sides[T]{Top: parts[0], Right: parts[1], Bottom: parts[2], Left: parts[1]}, nil
	case 4:
		return Sides[T]{Top: parts[0], Right: parts[1], Bottom: parts[2], Left: parts[3]}, nil
	default:
		return Sides[T]{}, fmt.Errorf("side shorthand takes 1 to 4 values, got %d", len(parts))
	}
}

// MustExpand is Expand for construction sites where the arity is fixed by the
// caller. It panics on invalid arity so a malformed tree fails loudly at build
// time rather than rendering something silently wrong.
func MustExpand[T any](parts ...Opt[T]) Sides[T] {
	s, err := Expand(parts...)
	if err != nil {
		panic(err)
	}
	return s
}

// expandValues resolves an all-present shorthand, the common case for the
// chainable setters.
func expandValues[T any](parts []T) Sides[T] {
	opts := make([]Opt[T], len(parts))
	for i, p := range parts {
		opts[i] = Some(p)
	}
	return MustExpand(opts...)
}
