package vec_test

import (
	"strings"
	"testing"

	rokoko "github.com/OrbitalStation/rokoko"
	"github.com/OrbitalStation/rokoko/vec"
)

func TestNew_ExactFill(t *testing.T) {
	v, err := vec.New(3, vec.One(1), vec.One(2), vec.One(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !vec.Eq(v, vec.Of(1, 2, 3)) {
		t.Fatalf("got %v, want [1 2 3]", v)
	}
}

func TestNew_TrailingDefaults(t *testing.T) {
	v, err := vec.New(3, vec.One(7), vec.One(8))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !vec.Eq(v, vec.Of(7, 8, 0)) {
		t.Fatalf("got %v, want [7 8 0]", v)
	}
}

func TestNew_TooManyArgs(t *testing.T) {
	_, err := vec.New(2, vec.One(1), vec.One(2), vec.One(3))
	if err == nil {
		t.Fatalf("expected too_many_args error")
	}
	iss, ok := rokoko.AsIssues(err)
	if !ok || iss[0].Code != rokoko.CodeTooManyArgs {
		t.Fatalf("expected %s issue, got %v", rokoko.CodeTooManyArgs, err)
	}
	if iss[0].Params["slots"] != 3 || iss[0].Params["len"] != 2 {
		t.Fatalf("issue should carry slot counts, got %v", iss[0].Params)
	}
}

func TestNew_VecAsPiece(t *testing.T) {
	v1 := vec.BVec2(true, false)
	v3, err := vec.New(3, v1, vec.One(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !vec.Eq(v3, vec.Of(true, false, false)) {
		t.Fatalf("got %v, want [true false false]", v3)
	}
}

func TestNew_NestedSequences(t *testing.T) {
	// 27.27, [0.0], [[-1.17]], [[[3.0]], []] flattens to 4 slots.
	v, err := vec.New(4,
		vec.One(27.27),
		vec.Items(0.0),
		vec.Group(vec.Items(-1.17)),
		vec.Group(vec.Group(vec.Items(3.0)), vec.Group[float64]()),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !vec.Eq(v, vec.Of(27.27, 0.0, -1.17, 3.0)) {
		t.Fatalf("got %v", v)
	}
}

func TestNew_TuplesAndConversions(t *testing.T) {
	// 0.1, (), ((), ()), (13.21, ((), ())), min flattens to 3 slots.
	v, err := vec.New(3,
		vec.Num[float32](0.1),
		vec.Tuple[float32](),
		vec.Tuple(vec.Tuple[float32](), vec.Tuple[float32]()),
		vec.Tuple(vec.One(float32(13.21)), vec.Tuple[float32]()),
		vec.Conv(int32(-7), func(v int32) float32 { return float32(v) }),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !vec.Eq(v, vec.Of[float32](0.1, 13.21, -7)) {
		t.Fatalf("got %v", v)
	}
}

func TestTuple_ArityCapPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic above the arity cap")
		}
		if !strings.Contains(r.(string), "limit is 10") {
			t.Fatalf("unexpected panic message: %v", r)
		}
	}()
	ps := make([]vec.Piece[int], 11)
	for i := range ps {
		ps[i] = vec.One(i)
	}
	vec.Tuple(ps...)
}

func TestMustNew_PanicsOnOverflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected MustNew to panic")
		}
	}()
	vec.MustNew(1, vec.One(1), vec.One(2))
}
