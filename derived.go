package anim

import (
	"fmt"
	"unsafe"
)

// DerivedValue computes output storage from input storage that an animation
// has already written. It is attached to an animation with Attach and
// recomputed after every Update of that animation.
//
// DerivedValue is implemented only by this package; use Derive for arbitrary
// computations.
type DerivedValue interface {
	Recompute()
	Dispose()

	ID() uint32
	Kind() Kind
	IsDisposed() bool

	base() *node
}

// derived is the single DerivedValue implementation. The typed constructors
// below reduce to it.
type derived[I, O any] struct {
	node
	fn  func(in []I, out []O)
	in  []I
	out []O
}

// Derive binds fn to the raw buffers in and out. Every Recompute calls
// fn(in, out). Panics if fn is nil.
func Derive[I, O any](fn func(in []I, out []O), in []I, out []O) DerivedValue {
	if fn == nil {
		panic("anim: derive: nil function")
	}
	return &derived[I, O]{
		node: newNode(KindDerived, "derive"),
		fn:   fn,
		in:   in,
		out:  out,
	}
}

// DeriveScalar binds fn to a single input and output: every Recompute sets
// *out = fn(*in).
func DeriveScalar[I, O Number](fn func(I) O, in *I, out *O) DerivedValue {
	if in == nil || out == nil {
		panic("anim: derive: nil input or output")
	}
	return DeriveMap(fn, unsafe.Slice(in, 1), unsafe.Slice(out, 1))
}

// DeriveMap applies fn element-wise: every Recompute sets out[i] = fn(in[i]).
// Panics if in is empty or in and out differ in length.
func DeriveMap[I, O Number](fn func(I) O, in []I, out []O) DerivedValue {
	if fn == nil {
		panic("anim: derive: nil function")
	}
	if len(in) == 0 {
		panic("anim: derive: empty input")
	}
	if len(in) != len(out) {
		panic(fmt.Sprintf("anim: derive: input has %d elements, output has %d", len(in), len(out)))
	}
	return Derive(func(in []I, out []O) {
		for i, x := range in {
			out[i] = fn(x)
		}
	}, in, out)
}

func (d *derived[I, O]) Recompute() {
	if !d.live("Recompute") {
		return
	}
	d.fn(d.in, d.out)
}

func (d *derived[I, O]) Dispose() {
	if !d.markDisposed() {
		return
	}
	d.fn = nil
	d.in = nil
	d.out = nil
}
