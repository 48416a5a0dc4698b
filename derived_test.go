package anim

import (
	"math"
	"testing"
)

func TestDeriveScalarPairings(t *testing.T) {
	var fIn, fOut float64
	var iIn, iOut int

	ff := DeriveScalar(func(x float64) float64 { return x * x }, &fIn, &fOut)
	fi := DeriveScalar(func(x float64) int { return int(math.Round(x)) }, &fIn, &iOut)
	iF := DeriveScalar(func(x int) float64 { return float64(x) / 2 }, &iIn, &fOut)
	ii := DeriveScalar(func(x int) int { return -x }, &iIn, &iOut)

	fIn = 1.6
	ff.Recompute()
	assertNear(t, "float->float", fOut, 2.56)
	fi.Recompute()
	if iOut != 2 {
		t.Errorf("float->int = %d, want 2", iOut)
	}

	iIn = 5
	iF.Recompute()
	assertNear(t, "int->float", fOut, 2.5)
	ii.Recompute()
	if iOut != -5 {
		t.Errorf("int->int = %d, want -5", iOut)
	}
}

func TestDeriveMap(t *testing.T) {
	in := []float64{0.5, 1.5, 2.5}
	out := make([]int32, 3)
	dv := DeriveMap(func(x float64) int32 { return int32(x * 10) }, in, out)
	dv.Recompute()
	want := []int32{5, 15, 25}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %d, want %d", i, out[i], want[i])
		}
	}
	if dv.Kind() != KindDerived {
		t.Errorf("Kind = %v, want derived", dv.Kind())
	}
}

func TestDeriveMapValidation(t *testing.T) {
	assertPanics(t, "empty input", func() {
		DeriveMap(func(x float64) float64 { return x }, nil, nil)
	})
	assertPanics(t, "input has 2 elements, output has 1", func() {
		DeriveMap(func(x float64) float64 { return x }, make([]float64, 2), make([]float64, 1))
	})
	assertPanics(t, "nil function", func() {
		DeriveMap[float64, float64](nil, make([]float64, 1), make([]float64, 1))
	})
	assertPanics(t, "nil input or output", func() {
		DeriveScalar[float64, float64](func(x float64) float64 { return x }, nil, nil)
	})
}

func TestDeriveGeneric(t *testing.T) {
	// A 2D vector reduced to its length and angle.
	in := []float64{3, 4}
	out := make([]float64, 2)
	dv := Derive(func(in, out []float64) {
		out[0] = math.Hypot(in[0], in[1])
		out[1] = math.Atan2(in[1], in[0])
	}, in, out)
	dv.Recompute()
	assertNear(t, "length", out[0], 5)
	assertNear(t, "angle", out[1], math.Atan2(4, 3))
}

func TestDeriveMixedTypes(t *testing.T) {
	in := []float32{0.25, 0.75}
	out := []string{""}
	dv := Derive(func(in []float32, out []string) {
		if in[0] < in[1] {
			out[0] = "rising"
		} else {
			out[0] = "falling"
		}
	}, in, out)
	dv.Recompute()
	if out[0] != "rising" {
		t.Errorf("out = %q, want rising", out[0])
	}
}

func TestDerivedDisposeStopsRecompute(t *testing.T) {
	var in, out float64
	dv := DeriveScalar(func(x float64) float64 { return x + 1 }, &in, &out)
	dv.Dispose()
	dv.Dispose()
	dv.Recompute()
	if out != 0 {
		t.Errorf("out = %v, want untouched 0", out)
	}
}

func TestDerivedValueOwnedOnce(t *testing.T) {
	var in, out float64
	dv := DeriveScalar(func(x float64) float64 { return x }, &in, &out)
	_ = Attach(Null(), dv)
	assertPanics(t, "already owned", func() { Attach(Null(), dv) })
}
