// Package ecs plays anim animations inside a [Donburi] world.
//
// Each entity with a [Playback] component owns an [anim.Player]. Call
// [Update] once per tick from your systems to advance every player by the
// frame delta. When a player reaches the end of its animation a
// [FinishedEvent] is published to [Finished]; subscribe to it and call
// ProcessEvents as with any Donburi event type.
//
// Usage:
//
//	e := ecs.Play(world, anim.Scale(anim.Linear1(&x, 0, 100), 2), ecs.RemoveOnFinish())
//	...
//	ecs.Update(world, 1.0/60)
//	ecs.Finished.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
