// Package anim is a small algebra for animating numeric state.
//
// An [Animation] describes how bound storage (a float, an int, a vector)
// changes over a span of abstract time. Primitive animations last one time
// unit; combinators stretch, reshape, chain and overlay them into trees that
// are evaluated at arbitrary offsets with [Animation.Update].
//
// # Quick start
//
//	var x, y float64
//	a := anim.Parallel(
//		anim.Sequence(
//			anim.Scale(anim.Linear1(&x, 0, 3), 3),
//			anim.Linear1(&x, 3, 1),
//		),
//		anim.Scale(anim.Linear1(&y, 1, 5), 4),
//	)
//	a.Update(3.5) // x == 2, y == 4.5
//
// Drive a tree from wall-clock time with a [Runner]:
//
//	r := anim.NewRunner(a)
//	r.Start()
//	for r.Poll() {
//		// draw x and y
//	}
//	r.Dispose()
//
// or from frame deltas with a [Player], the usual fit inside an
// [ebiten.Game] Update:
//
//	p := anim.NewPlayer(a)
//	p.Update(1.0 / 60)
//
// # Primitives
//
// [Null] does nothing. [Linear] interpolates an n-dimensional point between
// two constants and [Hold] keeps it at one. [Bezier] follows a bezier curve
// through any number of control points. [Linear1] and [Hold1] are scalar
// shortcuts.
//
// # Combinators
//
// [Scale] stretches time, [Transform] reshapes the rate of progress with a
// [TimeTransform], [Sequence] chains, [Parallel] overlays animations of equal
// duration, and [Attach] recomputes a [DerivedValue] after every update.
// [Delay], [PadBy], [PadTo] and [ParallelPadded] insert idle time. Each binary
// combinator has an n-ary fold ([SequenceAll], [ParallelAll],
// [ParallelPaddedAll], [AttachAll]).
//
// # Ownership
//
// A combinator takes exclusive ownership of its children; so do [Runner] and
// [Player]. Passing a node to a second owner panics, as does passing a
// disposed node. Dispose the root and the whole tree is released once.
//
// Contract violations (mismatched lengths, non-positive scale factors,
// parallel children of different durations, update times outside
// [0, Duration()]) panic with an "anim:" prefixed message. [SetDebugMode]
// additionally turns use of a disposed node into a panic.
//
// The ECS adapter in anim/ecs plays animations as [Donburi] components.
//
// [ebiten.Game]: https://pkg.go.dev/github.com/hajimehoshi/ebiten/v2#Game
// [Donburi]: https://github.com/yohamta/donburi
package anim
