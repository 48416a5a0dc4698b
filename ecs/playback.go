package ecs

import (
	"github.com/phanxgames/anim"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// PlaybackData is the component state of one playing animation.
type PlaybackData struct {
	Player         *anim.Player
	RemoveOnFinish bool // remove the entity once the animation finishes

	notified bool
}

// Playback is the Donburi component type for playing animations.
var Playback = donburi.NewComponentType[PlaybackData]()

// FinishedEvent is published once each time a Playback reaches the end of its
// animation.
type FinishedEvent struct {
	Entity   donburi.Entity
	Duration float64
	Removed  bool // the entity was removed after publishing
}

// Finished is the Donburi event type for finished animations.
var Finished = events.NewEventType[FinishedEvent]()

var playbackQuery = donburi.NewQuery(filter.Contains(Playback))

// PlayOption configures a Playback created by Play or AddTo.
type PlayOption func(*PlaybackData)

// RemoveOnFinish removes the entity, disposing its player, once the animation
// finishes.
func RemoveOnFinish() PlayOption {
	return func(p *PlaybackData) {
		p.RemoveOnFinish = true
	}
}

// Play creates an entity with a Playback component for a. The new player
// takes ownership of a.
func Play(world donburi.World, a anim.Animation, opts ...PlayOption) donburi.Entity {
	e := world.Create(Playback)
	AddTo(world.Entry(e), a, opts...)
	return e
}

// AddTo gives an existing entry a Playback component for a. If the entry
// already plays an animation, that player is disposed and replaced.
func AddTo(entry *donburi.Entry, a anim.Animation, opts ...PlayOption) {
	if !entry.HasComponent(Playback) {
		entry.AddComponent(Playback)
	} else if old := Playback.Get(entry); old.Player != nil {
		old.Player.Dispose()
	}
	pb := PlaybackData{Player: anim.NewPlayer(a)}
	for _, opt := range opts {
		opt(&pb)
	}
	Playback.SetValue(entry, pb)
}

// Update advances every Playback in world by dt time units. Entities marked
// RemoveOnFinish are removed after the sweep, so removal never disturbs the
// query.
func Update(world donburi.World, dt float32) {
	var finished []*donburi.Entry
	playbackQuery.Each(world, func(entry *donburi.Entry) {
		pb := Playback.Get(entry)
		if pb.Player == nil {
			return
		}
		if !pb.Player.Done {
			pb.notified = false
		}
		pb.Player.Update(dt)
		if !pb.Player.Done || pb.notified {
			return
		}
		pb.notified = true
		Finished.Publish(world, FinishedEvent{
			Entity:   entry.Entity(),
			Duration: pb.Player.Duration(),
			Removed:  pb.RemoveOnFinish,
		})
		if pb.RemoveOnFinish {
			finished = append(finished, entry)
		}
	})

	for _, entry := range finished {
		Playback.Get(entry).Player.Dispose()
		world.Remove(entry.Entity())
	}
}

// Stop disposes the player on entry and removes its Playback component. An
// entity needs at least one component, so when Playback is the only one (as
// for entities created by Play) the entity itself is removed.
func Stop(entry *donburi.Entry) {
	if !entry.Valid() || !entry.HasComponent(Playback) {
		return
	}
	if pb := Playback.Get(entry); pb.Player != nil {
		pb.Player.Dispose()
	}
	if len(entry.Archetype().ComponentTypes()) == 1 {
		entry.World.Remove(entry.Entity())
		return
	}
	entry.RemoveComponent(Playback)
}
