package anim

import (
	"fmt"
	"math"
)

// Number is the set of element types that animations and derived values can
// write into bound storage. Interpolation is computed in float64 and converted
// back, so integer outputs truncate toward zero.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float is the set of element types Bezier animations can write.
type Float interface {
	~float32 | ~float64
}

// Kind identifies the variant of an Animation or DerivedValue node.
type Kind uint8

const (
	KindNull      Kind = iota // does nothing for one time unit
	KindLinear                // interpolates between two points
	KindBezier                // interpolates along a bezier curve
	KindScale                 // stretches a child's duration
	KindTransform             // reshapes a child's rate of progress
	KindSequence              // runs two children one after the other
	KindParallel              // runs two children side by side
	KindAttach                // recomputes a derived value after a child
	KindDerived               // a derived value
)

var kindNames = [...]string{
	KindNull:      "null",
	KindLinear:    "linear",
	KindBezier:    "bezier",
	KindScale:     "scale",
	KindTransform: "transform",
	KindSequence:  "sequence",
	KindParallel:  "parallel",
	KindAttach:    "attach",
	KindDerived:   "derived",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// timeEpsilon is the relative tolerance used when comparing times and
// durations. Durations are sums and products of user-supplied factors, so
// exact comparisons would reject values that differ only by rounding.
const timeEpsilon = 1e-9

func tolerance(d float64) float64 {
	return timeEpsilon * math.Max(1, math.Abs(d))
}

// checkTime panics if t lies outside [0, d] by more than the rounding
// tolerance and returns t clamped to [0, d].
func checkTime(op string, t, d float64) float64 {
	if math.IsNaN(t) || t < -tolerance(d) || t > d+tolerance(d) {
		panic(fmt.Sprintf("anim: %s: time %v outside [0, %v]", op, t, d))
	}
	return min(max(t, 0), d)
}

// checkProgress is checkTime over the unit interval.
func checkProgress(op string, f float64) float64 {
	return checkTime(op, f, 1)
}

// approxEqual reports whether two durations are equal within tolerance.
func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance(math.Max(math.Abs(a), math.Abs(b)))
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, f float64) float64 {
	return a + (b-a)*f
}

// checkFactor panics unless v is positive and finite.
func checkFactor(op, name string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		panic(fmt.Sprintf("anim: %s: %s %v must be positive and finite", op, name, v))
	}
}
