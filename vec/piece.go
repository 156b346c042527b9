package vec

import (
	"fmt"

	rokoko "github.com/OrbitalStation/rokoko"
	"github.com/OrbitalStation/rokoko/i18n"
)

// maxTupleArity bounds Tuple pieces, mirroring the classic 10-element cap of
// variadic tuple constructors.
const maxTupleArity = 10

// Piece is a value convertible into one or more contiguous slots of a
// vector under construction. A piece declares its slot count up front and
// must write exactly that many slots when embedded; New verifies the two
// agree.
//
// Piece variants: a scalar (One, Conv, Num) occupies one slot; a sequence
// (Items, Group) flattens recursively; a Tuple holds up to 10 heterogeneous
// pieces; a Vec is itself a piece occupying Len slots.
type Piece[T any] interface {
	// Slots is the number of slots the piece occupies.
	Slots() int
	// embed writes the piece into dst (len(dst) == Slots()) and returns the
	// number of slots written.
	embed(dst []T) int
}

type scalar[T any] struct{ v T }

func (s scalar[T]) Slots() int        { return 1 }
func (s scalar[T]) embed(dst []T) int { dst[0] = s.v; return 1 }

// One wraps a single value as a one-slot piece.
func One[T any](v T) Piece[T] { return scalar[T]{v: v} }

// Conv wraps a value of a different type as a one-slot piece, converting it
// to the element type with conv.
func Conv[U, T any](v U, conv func(U) T) Piece[T] {
	return scalar[T]{v: conv(v)}
}

// Num wraps a numeric value of any numeric type as a one-slot piece of the
// target element type.
func Num[T, U Number](v U) Piece[T] { return scalar[T]{v: T(v)} }

type seq[T any] struct{ vs []T }

func (s seq[T]) Slots() int        { return len(s.vs) }
func (s seq[T]) embed(dst []T) int { return copy(dst, s.vs) }

// Items wraps a list of scalars as a piece occupying len(vs) slots.
func Items[T any](vs ...T) Piece[T] {
	out := make([]T, len(vs))
	copy(out, vs)
	return seq[T]{vs: out}
}

type group[T any] struct {
	ps    []Piece[T]
	slots int
}

func (g group[T]) Slots() int { return g.slots }

func (g group[T]) embed(dst []T) int {
	off := 0
	for _, p := range g.ps {
		off += p.embed(dst[off : off+p.Slots()])
	}
	return off
}

// Group flattens a sequence of pieces into one piece; its slot count is the
// sum over the members.
func Group[T any](ps ...Piece[T]) Piece[T] {
	total := 0
	for _, p := range ps {
		total += p.Slots()
	}
	return group[T]{ps: ps, slots: total}
}

// Tuple is a heterogeneous piece of up to 10 members; each member embeds at
// the cumulative offset of the preceding members. Exceeding the arity cap is
// a definition-time error and panics immediately.
func Tuple[T any](ps ...Piece[T]) Piece[T] {
	if len(ps) > maxTupleArity {
		panic(fmt.Sprintf("vec: tuple piece holds %d elements, limit is %d", len(ps), maxTupleArity))
	}
	return Group(ps...)
}

// A vector can be used as a piece of a larger vector.
func (v Vec[T]) Slots() int        { return len(v.elems) }
func (v Vec[T]) embed(dst []T) int { return copy(dst, v.elems) }

// New constructs a vector of length n from an ordered sequence of pieces.
// Pieces embed left to right into consecutive slot ranges. Slots beyond the
// pieces' total keep T's zero value, written exactly once by allocation.
// A slot total above n fails with a too_many_args issue; a piece writing a
// different number of slots than it declared fails with piece_slots.
func New[T any](n int, pieces ...Piece[T]) (Vec[T], error) {
	total := 0
	for _, p := range pieces {
		total += p.Slots()
	}
	if total > n {
		return Vec[T]{}, rokoko.Issues{{
			Code:    rokoko.CodeTooManyArgs,
			Message: i18n.T(rokoko.CodeTooManyArgs, nil),
			Params:  map[string]any{"slots": total, "len": n},
		}}
	}
	elems := make([]T, n)
	off := 0
	for i, p := range pieces {
		declared := p.Slots()
		wrote := p.embed(elems[off : off+declared])
		if wrote != declared {
			return Vec[T]{}, rokoko.Issues{{
				Code:    rokoko.CodePieceSlots,
				Message: i18n.T(rokoko.CodePieceSlots, nil),
				Params:  map[string]any{"piece": i, "declared": declared, "wrote": wrote},
			}}
		}
		off += wrote
	}
	return Vec[T]{elems: elems}, nil
}

// MustNew is like New but panics on error.
func MustNew[T any](n int, pieces ...Piece[T]) Vec[T] {
	v, err := New(n, pieces...)
	if err != nil {
		panic(err)
	}
	return v
}
