package system

import (
	"testing"

	"github.com/progrog/roguelike/internal/component"
	"github.com/progrog/roguelike/internal/world"
)

func TestChaseStep(t *testing.T) {
	tests := []struct {
		name  string
		walls []component.Position
		from  component.Position
		to    component.Position
		want  component.Position
	}{
		{"diagonal", nil, pos(5, 5), pos(7, 7), pos(6, 6)},
		{"straight", nil, pos(5, 5), pos(5, 2), pos(5, 4)},
		{"slide x on tie", []component.Position{pos(6, 6)}, pos(5, 5), pos(7, 7), pos(6, 5)},
		{"slide y when y dominates", []component.Position{pos(6, 6)}, pos(5, 5), pos(6, 9), pos(5, 6)},
		{"second slide", []component.Position{pos(6, 6), pos(6, 5)}, pos(5, 5), pos(8, 7), pos(5, 6)},
		{"boxed in", []component.Position{pos(6, 6), pos(6, 5), pos(5, 6)}, pos(5, 5), pos(8, 8), pos(5, 5)},
		{"already there", nil, pos(5, 5), pos(5, 5), pos(5, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := roomMap(12, 12)
			for _, w := range tt.walls {
				m.SetTile(w, world.Wall)
			}
			if got := chaseStep(m, tt.from, tt.to); got != tt.want {
				t.Errorf("chaseStep(%+v -> %+v) = %+v, want %+v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestAISystemWandersWhenBlind(t *testing.T) {
	res := createTestResources(t, roomMap(20, 10))
	res.RNG = &seq{vals: []int{3, 0}}
	spawnPlayer(t, res, pos(2, 2))
	rat := spawnMob(t, res, pos(15, 5), "rat", 2)
	bat := spawnMob(t, res, pos(10, 7), "bat", 2)
	NewVisibilitySystem().Update(res)

	NewAISystem().Update(res)

	if got, ok := res.Intents.Get(rat); !ok || got.To != pos(16, 5) {
		t.Errorf("rat intent = %+v, %v; want east to (16,5)", got, ok)
	}
	if got, ok := res.Intents.Get(bat); !ok || got.To != pos(10, 6) {
		t.Errorf("bat intent = %+v, %v; want north to (10,6)", got, ok)
	}
}

func TestAISystemChasesVisiblePlayer(t *testing.T) {
	res := createTestResources(t, roomMap(20, 10))
	player := spawnPlayer(t, res, pos(5, 5))
	rat := spawnMob(t, res, pos(7, 5), "rat", 2)
	NewVisibilitySystem().Update(res)

	NewAISystem().Update(res)

	got, ok := res.Intents.Get(rat)
	if !ok || got.To != pos(6, 5) {
		t.Fatalf("rat intent = %+v, %v; want (6,5)", got, ok)
	}
	if got.From != pos(7, 5) {
		t.Errorf("intent from = %+v, want (7,5)", got.From)
	}
	if _, ok := res.Intents.Get(player); ok {
		t.Error("AI filed an intent for the player")
	}
}

func TestAISystemAdjacentMobBumpsPlayer(t *testing.T) {
	res := createTestResources(t, roomMap(12, 12))
	player := spawnPlayer(t, res, pos(5, 5))
	rat := spawnMob(t, res, pos(6, 6), "rat", 2)

	NewAISystem().Update(res)

	got, ok := res.Intents.Get(rat)
	if !ok || got.To != pos(5, 5) {
		t.Fatalf("rat intent = %+v, %v; want onto the player at (5,5)", got, ok)
	}
	rep := ResolveMoves(res, res.Intents.Drain())
	if rep.Bumped != 1 {
		t.Fatalf("report = %+v, want one bump", rep)
	}
	if got := positionOf(t, res, player); got != pos(5, 5) {
		t.Errorf("player displaced to %+v", got)
	}
}
