package collision

import (
	"testing"

	"github.com/vovakirdan/seal-arcade/internal/actor"
	"github.com/vovakirdan/seal-arcade/internal/event"
	"github.com/vovakirdan/seal-arcade/internal/geom"
)

func at(kind actor.Kind, id actor.ID, pos, size geom.Vector) *actor.Actor {
	a := actor.New(kind, geom.State{Position: pos}, size, 0)
	a.ID = id
	return a
}

func TestIdenticalBoxesCollide(t *testing.T) {
	bus := event.NewBus()
	m := New(bus, nil)

	player := at(actor.KindPlayer, 1, geom.V(100, 100), geom.V(50, 50))
	fish := at(actor.KindFish, 2, geom.V(100, 100), geom.V(50, 50))

	if hits := m.CheckPlayerCollision(player, []*actor.Actor{fish}); hits != 1 {
		t.Fatalf("CheckPlayerCollision() = %d, expected 1", hits)
	}

	events := bus.Consume(actor.KeyPlayerCollision)
	if len(events) != 1 {
		t.Fatalf("player_collision events = %d, expected 1", len(events))
	}
	c := events[0].Payload.(actor.Collision)
	if !c.AIsPlayer || c.A != 1 || c.B != 2 {
		t.Errorf("collision = %+v, expected A=1 B=2 AIsPlayer=true", c)
	}
}

func TestOnlyTouchingNPCsReported(t *testing.T) {
	bus := event.NewBus()
	m := New(bus, nil)

	player := at(actor.KindPlayer, 1, geom.V(100, 100), geom.V(50, 50))
	npcs := []*actor.Actor{
		at(actor.KindFish, 2, geom.V(140, 140), geom.V(10, 10)),  // corner inside
		at(actor.KindFish, 3, geom.V(400, 400), geom.V(10, 10)),  // far away
		at(actor.KindShark, 4, geom.V(60, 90), geom.V(40, 20)),   // overlaps left edge
		at(actor.KindShark, 5, geom.V(150, 150), geom.V(40, 20)), // touches far corner
	}

	if hits := m.CheckPlayerCollision(player, npcs); hits != 3 {
		t.Errorf("CheckPlayerCollision() = %d, expected 3", hits)
	}

	var ids []actor.ID
	for _, ev := range bus.Consume(actor.KeyPlayerCollision) {
		ids = append(ids, ev.Payload.(actor.Collision).B)
	}
	expected := []actor.ID{2, 4, 5}
	if len(ids) != len(expected) {
		t.Fatalf("collided ids = %v, expected %v", ids, expected)
	}
	for i := range ids {
		if ids[i] != expected[i] {
			t.Errorf("collided ids = %v, expected %v", ids, expected)
			break
		}
	}
}

func TestDeletedNPCsSkipped(t *testing.T) {
	bus := event.NewBus()
	m := New(bus, nil)

	player := at(actor.KindPlayer, 1, geom.V(100, 100), geom.V(50, 50))
	fish := at(actor.KindFish, 2, geom.V(100, 100), geom.V(10, 10))
	fish.MarkDeleted()

	if hits := m.CheckPlayerCollision(player, []*actor.Actor{fish}); hits != 0 {
		t.Errorf("CheckPlayerCollision() = %d, expected 0 for tombstoned NPC", hits)
	}
}

// An NPC larger than the player that swallows it whole shares no corner
// with the player's box and is not reported.
func TestEnclosingNPCNotReported(t *testing.T) {
	bus := event.NewBus()
	m := New(bus, nil)

	player := at(actor.KindPlayer, 1, geom.V(100, 100), geom.V(10, 10))
	shark := at(actor.KindShark, 2, geom.V(50, 50), geom.V(200, 200))

	if hits := m.CheckPlayerCollision(player, []*actor.Actor{shark}); hits != 0 {
		t.Errorf("CheckPlayerCollision() = %d, expected 0", hits)
	}
}

func TestRegisterCollisionRoutesNPCPairs(t *testing.T) {
	bus := event.NewBus()
	m := New(bus, nil)

	a := at(actor.KindFish, 2, geom.V(0, 0), geom.V(1, 1))
	b := at(actor.KindShark, 3, geom.V(0, 0), geom.V(1, 1))
	m.RegisterCollision(a, b, false)

	if bus.Len(actor.KeyNPCCollision) != 1 {
		t.Errorf("npc_collision Len() = %d, expected 1", bus.Len(actor.KeyNPCCollision))
	}
	if bus.Len(actor.KeyPlayerCollision) != 0 {
		t.Error("NPC pair must not land on the player queue")
	}
}

func TestNilPlayer(t *testing.T) {
	m := New(event.NewBus(), nil)
	if hits := m.CheckPlayerCollision(nil, nil); hits != 0 {
		t.Errorf("CheckPlayerCollision(nil) = %d, expected 0", hits)
	}
}
