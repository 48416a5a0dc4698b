package ecs

import (
	"math"
	"testing"

	"github.com/phanxgames/anim"

	"github.com/yohamta/donburi"
)

func collectFinished(world donburi.World) *[]FinishedEvent {
	var received []FinishedEvent
	Finished.Subscribe(world, func(w donburi.World, e FinishedEvent) {
		received = append(received, e)
	})
	return &received
}

func TestPlayCreatesEntity(t *testing.T) {
	world := donburi.NewWorld()
	var x float64
	e := Play(world, anim.Linear1(&x, 0, 1))

	if !world.Valid(e) {
		t.Fatal("Play returned an invalid entity")
	}
	entry := world.Entry(e)
	if !entry.HasComponent(Playback) {
		t.Fatal("entity has no Playback component")
	}
	if Playback.Get(entry).Player == nil {
		t.Fatal("Playback has no player")
	}
}

func TestUpdateAdvancesPlayers(t *testing.T) {
	world := donburi.NewWorld()
	var x, y float64
	Play(world, anim.Scale(anim.Linear1(&x, 0, 10), 2))
	Play(world, anim.Linear1(&y, 5, 0))

	Update(world, 0.5)

	if math.Abs(x-2.5) > 1e-6 {
		t.Errorf("x = %v, want 2.5", x)
	}
	if math.Abs(y-2.5) > 1e-6 {
		t.Errorf("y = %v, want 2.5", y)
	}
}

func TestFinishedPublishedOnce(t *testing.T) {
	world := donburi.NewWorld()
	received := collectFinished(world)

	var x float64
	e := Play(world, anim.Linear1(&x, 0, 1))

	Update(world, 0.5)
	Update(world, 0.5)
	Update(world, 0.5)
	Finished.ProcessEvents(world)

	if len(*received) != 1 {
		t.Fatalf("expected 1 event, got %d", len(*received))
	}
	ev := (*received)[0]
	if ev.Entity != e || ev.Duration != 1 || ev.Removed {
		t.Errorf("event = %+v", ev)
	}
	if !world.Valid(e) {
		t.Error("entity should survive without RemoveOnFinish")
	}
}

func TestFinishedAgainAfterSeekBack(t *testing.T) {
	world := donburi.NewWorld()
	received := collectFinished(world)

	var x float64
	e := Play(world, anim.Linear1(&x, 0, 1))
	Update(world, 1)
	Playback.Get(world.Entry(e)).Player.Seek(0)
	Update(world, 1)
	Finished.ProcessEvents(world)

	if len(*received) != 2 {
		t.Errorf("expected 2 events, got %d", len(*received))
	}
}

func TestRemoveOnFinish(t *testing.T) {
	world := donburi.NewWorld()
	received := collectFinished(world)

	a := anim.Null()
	e := Play(world, a, RemoveOnFinish())
	Update(world, 2)
	Finished.ProcessEvents(world)

	if world.Valid(e) {
		t.Error("entity should be removed after finishing")
	}
	if !a.IsDisposed() {
		t.Error("animation should be disposed with the entity")
	}
	if len(*received) != 1 || !(*received)[0].Removed {
		t.Errorf("events = %+v, want one with Removed", *received)
	}
}

func TestAddToReplacesPlayer(t *testing.T) {
	world := donburi.NewWorld()
	first := anim.Null()
	e := Play(world, first)
	entry := world.Entry(e)

	var x float64
	AddTo(entry, anim.Linear1(&x, 0, 4))
	if !first.IsDisposed() {
		t.Error("replaced animation should be disposed")
	}
	Update(world, 0.25)
	if math.Abs(x-1) > 1e-6 {
		t.Errorf("x = %v, want 1", x)
	}
}

func TestAddToExistingEntity(t *testing.T) {
	world := donburi.NewWorld()
	other := donburi.NewComponentType[struct{ Name string }]()
	e := world.Create(other)

	var x float64
	AddTo(world.Entry(e), anim.Linear1(&x, 0, 1))
	Update(world, 1)
	if x != 1 {
		t.Errorf("x = %v, want 1", x)
	}
}

func TestStopRemovesPlaybackOnlyEntity(t *testing.T) {
	world := donburi.NewWorld()
	a := anim.Null()
	e := Play(world, a)
	entry := world.Entry(e)

	Stop(entry)
	if world.Valid(e) {
		t.Error("entity with only a Playback component should be removed")
	}
	if !a.IsDisposed() {
		t.Error("animation should be disposed")
	}
	Stop(entry) // removed entity: no-op
}

func TestStopKeepsEntityWithOtherComponents(t *testing.T) {
	world := donburi.NewWorld()
	other := donburi.NewComponentType[struct{ Name string }]()
	e := world.Create(other)
	entry := world.Entry(e)

	a := anim.Null()
	AddTo(entry, a)
	Stop(entry)
	if !world.Valid(e) {
		t.Fatal("entity with other components should survive")
	}
	if entry.HasComponent(Playback) {
		t.Error("Playback should be removed")
	}
	if !entry.HasComponent(other) {
		t.Error("other component should be kept")
	}
	if !a.IsDisposed() {
		t.Error("animation should be disposed")
	}
	Stop(entry) // no component: no-op
}
