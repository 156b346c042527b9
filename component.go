package rokoko

import "reflect"

// Component is the capability-resolution interface over a chain of typed
// values. A chain is either Empty (the terminator) or a *With node holding
// one value plus the rest of the chain. Chains are persistent: Wrap never
// mutates its argument, it returns a new head.
//
// Lookup is keyed by type identity. The search runs from the head toward
// Empty and the first node whose stored type matches wins, so wrapping a
// value whose type already appears in the chain shadows the older node
// (last write wins).
type Component interface {
	// lookup returns a pointer to the stored value (as *D in an any) for
	// the given type tag. A single traversal serves both the read and the
	// mutate-in-place path.
	lookup(tag reflect.Type) (any, bool)
	depth() int
}

// Empty is the chain terminator. It contains no value; every lookup on it
// reports "not found".
type Empty struct{}

func (Empty) lookup(reflect.Type) (any, bool) { return nil, false }
func (Empty) depth() int                      { return 0 }

// With is a chain node owning one value of type D plus the rest of the
// chain. Construct nodes with Wrap.
type With[D any] struct {
	data D
	tag  reflect.Type
	next Component
}

// Wrap prepends a value to a chain and returns the new head. A nil next is
// treated as Empty.
func Wrap[D any](data D, next Component) *With[D] {
	if next == nil {
		next = Empty{}
	}
	return &With[D]{data: data, tag: reflect.TypeFor[D](), next: next}
}

func (w *With[D]) lookup(tag reflect.Type) (any, bool) {
	if tag == w.tag {
		return &w.data, true
	}
	return w.next.lookup(tag)
}

func (w *With[D]) depth() int { return 1 + w.next.depth() }

// Get resolves the value stored for type T. The returned pointer aliases the
// node's storage, so writes through it are observed by later lookups.
// Not-found is an ordinary (nil, false), never an error; callers decide the
// defaulting policy.
func Get[T any](c Component) (*T, bool) {
	if c == nil {
		return nil, false
	}
	p, ok := c.lookup(reflect.TypeFor[T]())
	if !ok {
		return nil, false
	}
	return p.(*T), true
}

// Has reports whether the chain contains a value of type T.
func Has[T any](c Component) bool {
	_, ok := Get[T](c)
	return ok
}

// Len returns the number of nodes in the chain, which equals the number of
// Wrap calls that produced it.
func Len(c Component) int {
	if c == nil {
		return 0
	}
	return c.depth()
}
