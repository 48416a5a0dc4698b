package anim

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// Player drives an Animation from per-frame time deltas, for game loops that
// already measure frame time. Call Update(dt) each frame; Done is set once the
// animation has reached its end.
//
// The Player owns its animation: Dispose releases it. If the animation is
// disposed elsewhere, the Player stops immediately.
type Player struct {
	anim     Animation
	duration float64
	playhead *gween.Tween
	Done     bool
}

// NewPlayer creates a Player for a, takes ownership of it, and positions the
// playhead at time zero. Nothing is written until the first Update or Seek.
func NewPlayer(a Animation) *Player {
	adopt("player", a)
	d := a.Duration()
	return &Player{
		anim:     a,
		duration: d,
		playhead: gween.New(0, float32(d), float32(d), ease.Linear),
	}
}

// Duration returns the duration of the animation, in time units.
func (p *Player) Duration() float64 {
	return p.duration
}

// Elapsed returns the playhead position, in time units.
func (p *Player) Elapsed() float64 {
	if p.Done {
		return p.duration
	}
	t, _ := p.playhead.Update(0)
	return p.clamp(t)
}

// Update advances the playhead by dt time units, updates the animation, and
// reports whether any of the animation remains. Negative dt moves the playhead
// back, stopping at zero.
func (p *Player) Update(dt float32) bool {
	if p.Done {
		return false
	}
	if p.anim == nil || p.anim.IsDisposed() {
		p.Done = true
		return false
	}
	t, finished := p.playhead.Update(dt)
	p.apply(t, finished)
	return !p.Done
}

// Seek moves the playhead to t, clamped to [0, Duration()], and updates the
// animation there. Seeking back from the end clears Done.
func (p *Player) Seek(t float64) {
	if p.anim == nil || p.anim.IsDisposed() {
		p.Done = true
		return
	}
	p.Done = false
	cur, finished := p.playhead.Set(float32(t))
	p.apply(cur, finished)
}

// Reset rewinds the playhead to zero and clears Done. The animation is not
// updated until the next Update or Seek.
func (p *Player) Reset() {
	p.playhead.Reset()
	p.Done = false
}

// Dispose releases the animation and marks the player done.
func (p *Player) Dispose() {
	p.Done = true
	if p.anim == nil {
		return
	}
	p.anim.Dispose()
	p.anim = nil
}

func (p *Player) apply(t float32, finished bool) {
	if finished {
		// The playhead is float32; finish on the exact duration.
		p.anim.Update(p.duration)
		p.Done = true
		logger.Debug("player finished",
			zap.Uint32("animation", p.anim.ID()),
			zap.Float64("duration", p.duration),
		)
		return
	}
	p.anim.Update(p.clamp(t))
}

func (p *Player) clamp(t float32) float64 {
	return min(max(float64(t), 0), p.duration)
}
