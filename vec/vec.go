// Package vec provides a fixed-size numeric vector with GLSL-like
// ergonomics. Length is fixed at construction; every elementwise operation
// is expressed through the Apply/Modify family below.
package vec

import "fmt"

// Vec owns a fixed number of contiguous elements of type T. The zero Vec has
// length 0. Length never changes after construction.
type Vec[T any] struct {
	elems []T
}

// Of builds a vector from its arguments.
func Of[T any](elems ...T) Vec[T] {
	out := make([]T, len(elems))
	copy(out, elems)
	return Vec[T]{elems: out}
}

// FromSlice copies s into a new vector of the same length.
func FromSlice[T any](s []T) Vec[T] {
	out := make([]T, len(s))
	copy(out, s)
	return Vec[T]{elems: out}
}

// Single returns a vector of length n with every slot set to value.
func Single[T any](value T, n int) Vec[T] {
	if n < 0 {
		panic(fmt.Sprintf("vec: negative length %d", n))
	}
	out := make([]T, n)
	for i := range out {
		out[i] = value
	}
	return Vec[T]{elems: out}
}

// Zero returns a vector of length n with every slot holding T's zero value.
func Zero[T any](n int) Vec[T] {
	if n < 0 {
		panic(fmt.Sprintf("vec: negative length %d", n))
	}
	return Vec[T]{elems: make([]T, n)}
}

// Len returns the number of elements.
func (v Vec[T]) Len() int { return len(v.elems) }

// At returns the element at index i. Out-of-range access panics; there is no
// unchecked variant.
func (v Vec[T]) At(i int) T {
	v.check(i)
	return v.elems[i]
}

// Set stores value at index i. Out-of-range access panics.
func (v Vec[T]) Set(i int, value T) {
	v.check(i)
	v.elems[i] = value
}

func (v Vec[T]) check(i int) {
	if i < 0 || i >= len(v.elems) {
		panic(fmt.Sprintf("vec: index %d out of range for length %d", i, len(v.elems)))
	}
}

// AsSlice returns the backing storage. Writes through it are visible to the
// vector; the length must not be changed.
func (v Vec[T]) AsSlice() []T { return v.elems }

// IntoSlice consumes the vector and returns its backing storage. The vector
// must not be used afterwards.
func (v Vec[T]) IntoSlice() []T { return v.elems }

// Clone returns a vector with its own copy of the elements.
func (v Vec[T]) Clone() Vec[T] { return FromSlice(v.elems) }

func (v Vec[T]) String() string { return fmt.Sprintf("vec%v", v.elems) }

func sameLen(a, b int) {
	if a != b {
		panic(fmt.Sprintf("vec: length mismatch: %d vs %d", a, b))
	}
}

// ApplyBinary applies op to corresponding elements of a and b and collects
// the results into a new vector. Lengths must match.
func ApplyBinary[T, U, R any](a Vec[T], b Vec[U], op func(T, U) R) Vec[R] {
	sameLen(a.Len(), b.Len())
	out := make([]R, len(a.elems))
	for i, x := range a.elems {
		out[i] = op(x, b.elems[i])
	}
	return Vec[R]{elems: out}
}

// ApplyBinarySingle applies op to every element of a paired with rhs.
func ApplyBinarySingle[T, U, R any](a Vec[T], rhs U, op func(T, U) R) Vec[R] {
	out := make([]R, len(a.elems))
	for i, x := range a.elems {
		out[i] = op(x, rhs)
	}
	return Vec[R]{elems: out}
}

// ApplyUnary applies op to every element and collects the results.
func ApplyUnary[T, R any](a Vec[T], op func(T) R) Vec[R] {
	out := make([]R, len(a.elems))
	for i, x := range a.elems {
		out[i] = op(x)
	}
	return Vec[R]{elems: out}
}

// ModifyBinary replaces every element of a with op(element, corresponding
// element of b). Lengths must match.
func ModifyBinary[T, U any](a Vec[T], b Vec[U], op func(T, U) T) {
	sameLen(a.Len(), b.Len())
	for i, x := range a.elems {
		a.elems[i] = op(x, b.elems[i])
	}
}

// ModifyBinarySingle replaces every element of a with op(element, rhs).
func ModifyBinarySingle[T, U any](a Vec[T], rhs U, op func(T, U) T) {
	for i, x := range a.elems {
		a.elems[i] = op(x, rhs)
	}
}

// ModifyUnary replaces every element with op(element).
func ModifyUnary[T any](a Vec[T], op func(T) T) {
	for i, x := range a.elems {
		a.elems[i] = op(x)
	}
}

// ApplyBinaryBool reports whether op holds for every corresponding element
// pair. It short-circuits on the first false. Lengths must match.
func ApplyBinaryBool[T, U any](a Vec[T], b Vec[U], op func(T, U) bool) bool {
	sameLen(a.Len(), b.Len())
	for i, x := range a.elems {
		if !op(x, b.elems[i]) {
			return false
		}
	}
	return true
}

// ApplyUnaryBool reports whether op holds for every element. It
// short-circuits on the first false.
func ApplyUnaryBool[T any](a Vec[T], op func(T) bool) bool {
	for _, x := range a.elems {
		if !op(x) {
			return false
		}
	}
	return true
}
