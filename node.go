package anim

import (
	"fmt"
	"reflect"
)

// --- ID counter ---

// nodeIDCounter is a plain counter (no atomic; evaluation is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- node ---

// node is the bookkeeping embedded in every Animation and DerivedValue:
// identity, ownership, tree depth, and the disposed flag.
type node struct {
	id       uint32
	kind     Kind
	depth    int
	owned    bool
	disposed bool
}

// ownable is implemented by everything a combinator, Runner, or Player can
// take ownership of.
type ownable interface {
	base() *node
}

func (n *node) base() *node {
	return n
}

// ID returns the node's process-unique identifier.
func (n *node) ID() uint32 {
	return n.id
}

// Kind returns the node's variant.
func (n *node) Kind() Kind {
	return n.kind
}

// IsDisposed returns true if the node has been disposed.
func (n *node) IsDisposed() bool {
	return n.disposed
}

// newNode creates the bookkeeping for a node of the given kind and takes
// ownership of children. Panics if any child is nil, disposed, already owned,
// or passed twice.
func newNode(kind Kind, op string, children ...ownable) node {
	checkAdoptable(op, children...)
	n := node{id: nextNodeID(), kind: kind, depth: 1}
	for _, c := range children {
		b := c.base()
		b.owned = true
		n.depth = max(n.depth, b.depth+1)
	}
	if globalDebug {
		debugCheckTreeDepth(&n)
	}
	return n
}

// checkAdoptable panics unless every child can be adopted by a new owner.
// Combinators that inspect their children before construction (durations)
// call it first so the checks fire before anything else touches a child.
func checkAdoptable(op string, children ...ownable) {
	for i, c := range children {
		if c == nil || isNilOwnable(c) {
			panic(fmt.Sprintf("anim: %s: nil argument %d", op, i+1))
		}
		b := c.base()
		if b.disposed {
			panic(fmt.Sprintf("anim: %s: %s %d is disposed", op, b.kind, b.id))
		}
		if b.owned {
			panic(fmt.Sprintf("anim: %s: %s %d is already owned", op, b.kind, b.id))
		}
		for _, prev := range children[:i] {
			if prev.base() == b {
				panic(fmt.Sprintf("anim: %s: %s %d passed twice", op, b.kind, b.id))
			}
		}
	}
}

// isNilOwnable catches typed nil pointers wrapped in a non-nil interface.
func isNilOwnable(c ownable) bool {
	v := reflect.ValueOf(c)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// adopt marks a single value as owned by a Runner or Player.
func adopt(op string, c ownable) {
	checkAdoptable(op, c)
	c.base().owned = true
}

// markDisposed flags the node as disposed and reports whether it was live.
// Every Dispose method calls it first, so repeated disposal is a no-op and
// each owned node is released exactly once.
func (n *node) markDisposed() bool {
	if n.disposed {
		return false
	}
	n.disposed = true
	return true
}

// live is called at the top of every Update and Recompute. A disposed node
// ignores the call, or panics in debug mode.
func (n *node) live(op string) bool {
	if !n.disposed {
		return true
	}
	if globalDebug {
		debugCheckDisposed(n, op)
	}
	return false
}
