package anim

import (
	"fmt"
)

// --- Scale ---

type scaled struct {
	node
	child  Animation
	factor float64
}

// Scale stretches the duration of a by factor. Panics unless factor is
// positive and finite: a negative factor would drive a with negative time.
func Scale(a Animation, factor float64) Animation {
	checkFactor("scale", "factor", factor)
	return &scaled{
		node:   newNode(KindScale, "scale", a),
		child:  a,
		factor: factor,
	}
}

func (a *scaled) Update(t float64) {
	if !a.live("Update") {
		return
	}
	a.child.Update(t / a.factor)
}

func (a *scaled) Duration() float64 { return a.child.Duration() * a.factor }

func (a *scaled) Dispose() {
	if !a.markDisposed() {
		return
	}
	a.child.Dispose()
}

func (a *scaled) children() []Animation { return []Animation{a.child} }

// --- Transform ---

type transformed struct {
	node
	child Animation
	tt    TimeTransform
}

// Transform applies the time transform tt to a. The duration is unchanged.
func Transform(a Animation, tt TimeTransform) Animation {
	if tt == nil {
		panic("anim: transform: nil time transform")
	}
	return &transformed{
		node:  newNode(KindTransform, "transform", a),
		child: a,
		tt:    tt,
	}
}

func (a *transformed) Update(t float64) {
	if !a.live("Update") {
		return
	}
	d := a.child.Duration()
	t = checkTime("transform", t, d)
	a.child.Update(a.tt.Apply(t/d) * d)
}

func (a *transformed) Duration() float64 { return a.child.Duration() }

func (a *transformed) Dispose() {
	if !a.markDisposed() {
		return
	}
	a.child.Dispose()
	a.tt = nil
}

func (a *transformed) children() []Animation { return []Animation{a.child} }

// Identity applies the identity transform to a.
func Identity(a Animation) Animation {
	return Transform(a, IdentityTransform())
}

// Sinusoid applies the sinusoid transform to a.
func Sinusoid(a Animation) Animation {
	return Transform(a, SinusoidTransform())
}

// Reverse applies the reverse transform to a.
func Reverse(a Animation) Animation {
	return Transform(a, ReverseTransform())
}

// Exponent applies the exponent transform with exponent n to a.
func Exponent(a Animation, n float64) Animation {
	return Transform(a, ExponentTransform(n))
}

// --- Sequence ---

type sequence struct {
	node
	first  Animation
	second Animation
}

// Sequence performs a1 then a2. At the seam t == a1.Duration() the sample
// belongs to a1, so its terminal state is the one visible.
func Sequence(a1, a2 Animation) Animation {
	return &sequence{
		node:   newNode(KindSequence, "sequence", a1, a2),
		first:  a1,
		second: a2,
	}
}

// SequenceAll folds Sequence left to right over as, so the result of
// SequenceAll(a, b, c) is Sequence(Sequence(a, b), c). A single animation is
// returned as is. Panics if as is empty.
func SequenceAll(as ...Animation) Animation {
	return fold("sequence", as, Sequence)
}

func (a *sequence) Update(t float64) {
	if !a.live("Update") {
		return
	}
	d := a.first.Duration()
	if t <= d {
		a.first.Update(t)
		return
	}
	a.second.Update(t - d)
}

func (a *sequence) Duration() float64 { return a.first.Duration() + a.second.Duration() }

func (a *sequence) Dispose() {
	if !a.markDisposed() {
		return
	}
	a.first.Dispose()
	a.second.Dispose()
}

func (a *sequence) children() []Animation { return []Animation{a.first, a.second} }

// --- Parallel ---

type parallel struct {
	node
	first  Animation
	second Animation
}

// Parallel performs a1 and a2 side by side; both observe the same time, a1
// first. Panics if their durations differ beyond rounding; within it, the
// duration is the longer of the two and each child is clamped to its own end.
// Use ParallelPadded to combine animations of different lengths.
func Parallel(a1, a2 Animation) Animation {
	checkAdoptable("parallel", a1, a2)
	d1, d2 := a1.Duration(), a2.Duration()
	if !approxEqual(d1, d2) {
		panic(fmt.Sprintf("anim: parallel: durations differ (%v != %v)", d1, d2))
	}
	return &parallel{
		node:   newNode(KindParallel, "parallel", a1, a2),
		first:  a1,
		second: a2,
	}
}

// ParallelPadded performs a1 and a2 side by side, padding the shorter one at
// its end so both reach the longer duration.
func ParallelPadded(a1, a2 Animation) Animation {
	checkAdoptable("parallel", a1, a2)
	d1, d2 := a1.Duration(), a2.Duration()
	switch {
	case d1 < d2:
		a1 = PadTo(a1, d2)
	case d2 < d1:
		a2 = PadTo(a2, d1)
	}
	return Parallel(a1, a2)
}

// ParallelAll folds Parallel left to right over as. Every animation must
// have the same duration.
func ParallelAll(as ...Animation) Animation {
	return fold("parallel", as, Parallel)
}

// ParallelPaddedAll folds ParallelPadded left to right over as. The result
// lasts as long as the longest animation.
func ParallelPaddedAll(as ...Animation) Animation {
	return fold("parallel", as, ParallelPadded)
}

func (a *parallel) Update(t float64) {
	if !a.live("Update") {
		return
	}
	d1, d2 := a.first.Duration(), a.second.Duration()
	t = checkTime("parallel", t, max(d1, d2))
	a.first.Update(min(t, d1))
	a.second.Update(min(t, d2))
}

func (a *parallel) Duration() float64 { return max(a.first.Duration(), a.second.Duration()) }

func (a *parallel) Dispose() {
	if !a.markDisposed() {
		return
	}
	a.first.Dispose()
	a.second.Dispose()
}

func (a *parallel) children() []Animation { return []Animation{a.first, a.second} }

// --- Delay and padding ---

// Delay delays the start of a by d time units. A zero delay returns a.
func Delay(a Animation, d float64) Animation {
	checkAdoptable("delay", a)
	if d == 0 {
		return a
	}
	checkFactor("delay", "delay", d)
	return Sequence(Scale(Null(), d), a)
}

// PadBy extends the end of a by d time units, holding whatever state a left
// behind. A zero pad returns a.
func PadBy(a Animation, d float64) Animation {
	checkAdoptable("pad", a)
	if d == 0 {
		return a
	}
	checkFactor("pad", "padding", d)
	return Sequence(a, Scale(Null(), d))
}

// PadTo extends the end of a so that it lasts d time units in total. Panics if
// a is already longer than d.
func PadTo(a Animation, d float64) Animation {
	checkAdoptable("pad", a)
	cur := a.Duration()
	if approxEqual(cur, d) {
		return a
	}
	if d < cur {
		panic(fmt.Sprintf("anim: pad: target duration %v is shorter than %v", d, cur))
	}
	return PadBy(a, d-cur)
}

// --- Attach ---

type attached struct {
	node
	child Animation
	dv    DerivedValue
}

// Attach recomputes dv every time a is updated, after a has written its
// values.
func Attach(a Animation, dv DerivedValue) Animation {
	return &attached{
		node:  newNode(KindAttach, "attach", a, dv),
		child: a,
		dv:    dv,
	}
}

// AttachAll attaches each derived value in order, so later values see the
// outputs of earlier ones. With no derived values a is returned as is.
func AttachAll(a Animation, dvs ...DerivedValue) Animation {
	all := make([]ownable, 0, len(dvs)+1)
	all = append(all, a)
	for _, dv := range dvs {
		all = append(all, dv)
	}
	checkAdoptable("attach", all...)
	for _, dv := range dvs {
		a = Attach(a, dv)
	}
	return a
}

func (a *attached) Update(t float64) {
	if !a.live("Update") {
		return
	}
	a.child.Update(t)
	a.dv.Recompute()
}

func (a *attached) Duration() float64 { return a.child.Duration() }

func (a *attached) Dispose() {
	if !a.markDisposed() {
		return
	}
	a.child.Dispose()
	a.dv.Dispose()
}

func (a *attached) children() []Animation { return []Animation{a.child} }

// --- Helpers ---

// fold combines as left to right with the binary combinator fn.
func fold(op string, as []Animation, fn func(a1, a2 Animation) Animation) Animation {
	if len(as) == 0 {
		panic("anim: " + op + ": no animations")
	}
	checkAdoptable(op, ownables(as)...)
	acc := as[0]
	for _, a := range as[1:] {
		acc = fn(acc, a)
	}
	return acc
}

func ownables(as []Animation) []ownable {
	out := make([]ownable, len(as))
	for i, a := range as {
		out[i] = a
	}
	return out
}
