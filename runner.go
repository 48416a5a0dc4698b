package anim

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// RunnerState is the lifecycle state of a Runner.
type RunnerState uint8

const (
	RunnerCreated  RunnerState = iota // built, Start not yet called
	RunnerRunning                     // started, animation not yet complete
	RunnerFinished                    // a Poll reached the end of the animation
	RunnerDisposed                    // Dispose called
)

var runnerStateNames = [...]string{
	RunnerCreated:  "created",
	RunnerRunning:  "running",
	RunnerFinished: "finished",
	RunnerDisposed: "disposed",
}

func (s RunnerState) String() string {
	if int(s) < len(runnerStateNames) {
		return runnerStateNames[s]
	}
	return fmt.Sprintf("RunnerState(%d)", uint8(s))
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithClock sets the clock the Runner reads. Defaults to the real clock.
func WithClock(c clockwork.Clock) RunnerOption {
	return func(r *Runner) {
		r.clock = c
	}
}

// WithUnit sets the wall-clock length of one animation time unit. Defaults to
// one second. Panics if unit is not positive.
func WithUnit(unit time.Duration) RunnerOption {
	if unit <= 0 {
		panic(fmt.Sprintf("anim: runner: unit %v must be positive", unit))
	}
	return func(r *Runner) {
		r.unit = unit
	}
}

// Runner drives an Animation from a clock. Call Start once, then Poll every
// frame; each Poll updates the animation to the time elapsed since Start.
//
// The Runner owns its animation: Dispose releases it.
type Runner struct {
	anim     Animation
	duration float64
	clock    clockwork.Clock
	unit     time.Duration
	start    time.Time
	state    RunnerState
}

// NewRunner creates a Runner for a and takes ownership of it. The duration of
// a is computed once here.
func NewRunner(a Animation, opts ...RunnerOption) *Runner {
	checkAdoptable("runner", a)
	r := &Runner{
		clock: clockwork.NewRealClock(),
		unit:  time.Second,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.clock == nil {
		panic("anim: runner: nil clock")
	}
	adopt("runner", a)
	r.anim = a
	r.duration = a.Duration()
	return r
}

// Duration returns the duration of the animation, in time units.
func (r *Runner) Duration() float64 {
	return r.duration
}

// State returns the runner's lifecycle state.
func (r *Runner) State() RunnerState {
	return r.state
}

// Start records the current time as the start of the animation. Calling it
// again restarts the animation from the current time.
func (r *Runner) Start() {
	if r.state == RunnerDisposed {
		panic("anim: runner: Start after Dispose")
	}
	r.start = r.clock.Now()
	r.state = RunnerRunning
	logger.Debug("runner started",
		zap.Uint32("animation", r.anim.ID()),
		zap.Float64("duration", r.duration),
	)
}

// Poll updates the animation to the time elapsed since Start and reports
// whether the animation is still running. Once the elapsed time reaches the
// duration, the animation is updated at exactly its duration and Poll returns
// false, as it does on every later call. Panics if Start has not been called.
func (r *Runner) Poll() bool {
	switch r.state {
	case RunnerCreated:
		panic("anim: runner: Poll before Start")
	case RunnerDisposed:
		panic("anim: runner: Poll after Dispose")
	}
	elapsed := float64(r.clock.Since(r.start)) / float64(r.unit)
	if elapsed < r.duration {
		r.anim.Update(max(elapsed, 0))
		return true
	}
	r.anim.Update(r.duration)
	if r.state != RunnerFinished {
		r.state = RunnerFinished
		logger.Debug("runner finished",
			zap.Uint32("animation", r.anim.ID()),
			zap.Float64("duration", r.duration),
			zap.Float64("elapsed", elapsed),
		)
	}
	return false
}

// Dispose releases the animation. Repeated calls are no-ops.
func (r *Runner) Dispose() {
	if r.state == RunnerDisposed {
		return
	}
	r.state = RunnerDisposed
	r.anim.Dispose()
	r.anim = nil
}
