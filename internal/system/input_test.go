package system

import (
	"testing"

	"github.com/progrog/roguelike/internal/core/event"
	"github.com/progrog/roguelike/internal/input"
	"github.com/progrog/roguelike/internal/world"
)

func TestInputSystem(t *testing.T) {
	tests := []struct {
		name     string
		key      input.Key
		wantPos  [2]int
		wantRun  bool
		wantHits int
	}{
		{"move onto floor", input.KeyRight, [2]int{3, 1}, true, 0},
		{"diagonal move", input.KeyDownRight, [2]int{3, 2}, true, 0},
		{"move into wall", input.KeyUp, [2]int{2, 1}, false, 0},
		{"bump occupied floor", input.KeyLeft, [2]int{2, 1}, true, 1},
		{"pass", input.KeyPass, [2]int{2, 1}, true, 0},
		{"no key", input.KeyNone, [2]int{2, 1}, false, 0},
		{"start is not a game action", input.KeyStart, [2]int{2, 1}, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := createTestResources(t, roomMap(8, 6))
			player := spawnPlayer(t, res, pos(2, 1))
			rat := spawnMob(t, res, pos(1, 1), "rat", 2)
			res.Key = tt.key

			NewInputSystem(res.Log).Update(res)

			if got := positionOf(t, res, player); got != pos(tt.wantPos[0], tt.wantPos[1]) {
				t.Errorf("player at %+v, want %v", got, tt.wantPos)
			}
			if res.RunSystems != tt.wantRun {
				t.Errorf("RunSystems = %v, want %v", res.RunSystems, tt.wantRun)
			}
			melee := event.Drain[event.Melee](res.Events)
			if len(melee) != tt.wantHits {
				t.Fatalf("melee events = %d, want %d", len(melee), tt.wantHits)
			}
			if tt.wantHits == 1 && (melee[0].Source != player || melee[0].Target != rat) {
				t.Errorf("melee = %+v, want player -> rat", melee[0])
			}
			if res.Key != input.KeyNone {
				t.Errorf("key not consumed: %v", res.Key)
			}
			if err := world.VerifyOccupancy(res); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestInputGatedByMessages(t *testing.T) {
	res := createTestResources(t, roomMap(8, 6))
	player := spawnPlayer(t, res, pos(3, 3))
	res.Messages.Add("first")
	res.Messages.Add("second")
	sys := NewInputSystem(res.Log)

	for _, key := range []input.Key{input.KeyRight, input.KeyDown, input.KeyStart} {
		res.Key = key
		sys.Update(res)
		if res.RunSystems {
			t.Fatalf("%v set RunSystems while messages are queued", key)
		}
		if got := positionOf(t, res, player); got != pos(3, 3) {
			t.Fatalf("%v moved the player to %+v", key, got)
		}
		if res.Messages.Len() != 2 {
			t.Fatalf("%v changed the message queue", key)
		}
	}

	res.Key = input.KeyPass
	sys.Update(res)
	if head, _ := res.Messages.Current(); head != "second" {
		t.Errorf("head = %q, want second", head)
	}
	if res.RunSystems {
		t.Error("acknowledging a message must not run the gated stages")
	}

	res.Key = input.KeyPass
	sys.Update(res)
	if !res.Messages.Empty() {
		t.Fatal("queue should be empty")
	}

	res.Key = input.KeyRight
	sys.Update(res)
	if got := positionOf(t, res, player); got != pos(4, 3) {
		t.Errorf("player at %+v after queue emptied, want (4,3)", got)
	}
	if !res.RunSystems {
		t.Error("move after queue emptied should set RunSystems")
	}
}
