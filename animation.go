package anim

import (
	"fmt"
	"slices"
	"unsafe"
)

// Animation changes bound values over a span of abstract time. Primitive
// animations span one time unit; combinators compose them into trees.
//
// Update(t) requires t in [0, Duration()] and writes the state at t into the
// animation's bound storage. Repeated calls with the same t produce the same
// output. Duration is recomputed from the subtree on every call; callers that
// need it in a loop should cache it, as Runner and Player do.
//
// Every combinator takes exclusive ownership of its children. Dispose releases
// the whole subtree and may be called more than once.
//
// Animation is implemented only by this package.
type Animation interface {
	Update(t float64)
	Duration() float64
	Dispose()

	ID() uint32
	Kind() Kind
	IsDisposed() bool

	base() *node
	children() []Animation
}

// --- Null ---

type nullAnimation struct {
	node
}

// Null returns an animation that does nothing for one time unit. Scaled, it
// is the building block for delays and padding.
func Null() Animation {
	return &nullAnimation{node: newNode(KindNull, "null")}
}

func (a *nullAnimation) Update(t float64) {
	if !a.live("Update") {
		return
	}
	checkProgress("null", t)
}

func (a *nullAnimation) Duration() float64 { return 1 }

func (a *nullAnimation) Dispose() { a.markDisposed() }

func (a *nullAnimation) children() []Animation { return nil }

// --- Linear ---

type linear[T Number] struct {
	node
	v     []T
	start []T
	end   []T
}

// Linear animates the n-dimensional point v from start to end, where n is
// len(v). start and end are copied. Panics if v is empty or start and end do
// not have len(v) elements.
func Linear[T Number](v, start, end []T) Animation {
	if len(v) == 0 {
		panic("anim: linear: empty output")
	}
	if len(start) != len(v) || len(end) != len(v) {
		panic(fmt.Sprintf("anim: linear: start/end have %d/%d elements, want %d",
			len(start), len(end), len(v)))
	}
	return &linear[T]{
		node:  newNode(KindLinear, "linear"),
		v:     v,
		start: slices.Clone(start),
		end:   slices.Clone(end),
	}
}

// Linear1 animates the single value *v from start to end.
func Linear1[T Number](v *T, start, end T) Animation {
	if v == nil {
		panic("anim: linear: nil output")
	}
	return Linear(unsafe.Slice(v, 1), []T{start}, []T{end})
}

// Hold holds the n-dimensional point v at the constant c for one time unit.
func Hold[T Number](v, c []T) Animation {
	return Linear(v, c, c)
}

// Hold1 holds the single value *v at the constant c for one time unit.
func Hold1[T Number](v *T, c T) Animation {
	return Linear1(v, c, c)
}

func (a *linear[T]) Update(t float64) {
	if !a.live("Update") {
		return
	}
	f := checkProgress("linear", t)
	for i := range a.v {
		a.v[i] = T(lerp(float64(a.start[i]), float64(a.end[i]), f))
	}
}

func (a *linear[T]) Duration() float64 { return 1 }

func (a *linear[T]) Dispose() {
	if !a.markDisposed() {
		return
	}
	a.v = nil
	a.start = nil
	a.end = nil
}

func (a *linear[T]) children() []Animation { return nil }

// --- Bezier ---

type bezier[T Float] struct {
	node
	v       []T
	points  [][]T
	scratch [][]T // one row per control point, reused by every Update
}

// Bezier animates the n-dimensional point v along the bezier curve defined by
// points, where n is len(v) and every control point has n elements. Control
// points are copied. Evaluation uses De Casteljau's algorithm, so two control
// points give exactly the same output as Linear.
func Bezier[T Float](v []T, points [][]T) Animation {
	if len(v) == 0 {
		panic("anim: bezier: empty output")
	}
	if len(points) == 0 {
		panic("anim: bezier: no control points")
	}
	cp := make([][]T, len(points))
	scratch := make([][]T, len(points))
	for i, p := range points {
		if len(p) != len(v) {
			panic(fmt.Sprintf("anim: bezier: control point %d has %d elements, want %d",
				i, len(p), len(v)))
		}
		cp[i] = slices.Clone(p)
		scratch[i] = make([]T, len(v))
	}
	return &bezier[T]{
		node:    newNode(KindBezier, "bezier"),
		v:       v,
		points:  cp,
		scratch: scratch,
	}
}

func (a *bezier[T]) Update(t float64) {
	if !a.live("Update") {
		return
	}
	f := checkProgress("bezier", t)
	for i, p := range a.points {
		copy(a.scratch[i], p)
	}
	for r := len(a.scratch) - 1; r >= 1; r-- {
		for j := 0; j < r; j++ {
			row, next := a.scratch[j], a.scratch[j+1]
			for k := range row {
				row[k] = T(lerp(float64(row[k]), float64(next[k]), f))
			}
		}
	}
	copy(a.v, a.scratch[0])
}

func (a *bezier[T]) Duration() float64 { return 1 }

func (a *bezier[T]) Dispose() {
	if !a.markDisposed() {
		return
	}
	a.v = nil
	a.points = nil
	a.scratch = nil
}

func (a *bezier[T]) children() []Animation { return nil }
