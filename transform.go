package anim

import (
	"fmt"
	"math"

	"github.com/fogleman/ease"
)

// TimeTransform reshapes normalized progress within an animation. A
// transformed animation keeps its duration, but time may run slower in some
// parts and faster in others.
//
// Apply requires f in [0, 1]. The built-in transforms also return values in
// [0, 1]; results of a TransformFunc are not clamped, and an animation driven
// outside its range panics.
type TimeTransform interface {
	Apply(f float64) float64
}

// TransformFunc adapts an ordinary function to the TimeTransform interface.
type TransformFunc func(f float64) float64

// Apply calls fn(f).
func (fn TransformFunc) Apply(f float64) float64 {
	return fn(f)
}

type identityTransform struct{}

type sinusoidTransform struct{}

type reverseTransform struct{}

type exponentTransform struct {
	n float64
}

// IdentityTransform returns the transform that leaves the rate of time
// unchanged.
func IdentityTransform() TimeTransform {
	return identityTransform{}
}

// SinusoidTransform returns the transform f ↦ sin(f·π/2): progress starts at
// full speed and slows to a stop at the end.
func SinusoidTransform() TimeTransform {
	return sinusoidTransform{}
}

// ReverseTransform returns the transform that runs an animation backwards.
func ReverseTransform() TimeTransform {
	return reverseTransform{}
}

// ExponentTransform returns the transform f ↦ fⁿ, which accelerates for n > 1
// and decelerates for n < 1. Panics unless n is positive and finite: a
// negative exponent maps [0, 1) outside the unit range.
func ExponentTransform(n float64) TimeTransform {
	checkFactor("exponent transform", "exponent", n)
	return exponentTransform{n: n}
}

func (identityTransform) Apply(f float64) float64 {
	return checkProgress("identity transform", f)
}

func (sinusoidTransform) Apply(f float64) float64 {
	return ease.OutSine(checkProgress("sinusoid transform", f))
}

func (reverseTransform) Apply(f float64) float64 {
	return 1 - checkProgress("reverse transform", f)
}

func (t exponentTransform) Apply(f float64) float64 {
	return math.Pow(checkProgress("exponent transform", f), t.n)
}

func (identityTransform) String() string   { return "identity" }
func (sinusoidTransform) String() string   { return "sinusoid" }
func (reverseTransform) String() string    { return "reverse" }
func (t exponentTransform) String() string { return fmt.Sprintf("exponent(%g)", t.n) }
