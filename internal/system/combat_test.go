package system

import (
	"testing"

	"github.com/progrog/roguelike/internal/config"
	"github.com/progrog/roguelike/internal/core/event"
	"github.com/progrog/roguelike/internal/input"
	"github.com/progrog/roguelike/internal/world"
)

func TestDeathThreshold(t *testing.T) {
	res := createTestResources(t, roomMap(8, 5))
	player := spawnPlayer(t, res, pos(2, 2))
	rat := spawnMob(t, res, pos(3, 2), "rat", 2)
	sys := NewDealDamageSystem(res.Log)

	hit := func() {
		event.Emit(res.Events, event.DealDamage{Source: player, Target: rat, Name: "you", Amount: 1})
		sys.Update(res)
	}

	hit()
	hit()
	if !res.ECS.Alive(rat) {
		t.Fatal("rat at 0 hp must still be alive")
	}
	if got := res.C.Stats.Has(rat); !got {
		t.Fatal("rat at 0 hp lost its stats")
	}

	hit()
	if res.ECS.Alive(rat) {
		t.Fatal("rat at -1 hp must be despawned")
	}
	if res.Map.IsOccupied(pos(3, 2)) {
		t.Error("despawned rat still occupies its tile")
	}
	if res.C.Position.Has(rat) || res.C.Name.Has(rat) {
		t.Error("despawned rat kept components")
	}

	msgs := res.Messages.All()
	want := []string{
		"You hit the rat for 1 point.",
		"You hit the rat for 1 point.",
		"You hit the rat for 1 point.",
		"You killed the rat!",
	}
	if len(msgs) != len(want) {
		t.Fatalf("messages = %q, want %q", msgs, want)
	}
	for i := range want {
		if msgs[i] != want[i] {
			t.Errorf("message %d = %q, want %q", i, msgs[i], want[i])
		}
	}
}

func TestPlayerVersusTwoHPMob(t *testing.T) {
	res := createTestResources(t, roomMap(8, 5))
	player := spawnPlayer(t, res, pos(2, 2))
	rat := spawnMob(t, res, pos(3, 2), "rat", 2)
	r := NewPipeline(FlatDamage{Amount: 1}, res.Log)

	press(t, r, res, input.KeyRight)
	if stats, _ := res.C.Stats.Get(rat); stats.HP.Cur != 1 {
		t.Fatalf("rat hp after first hit = %d, want 1", stats.HP.Cur)
	}
	acknowledge(t, r, res)

	press(t, r, res, input.KeyRight)
	if !res.ECS.Alive(rat) {
		t.Fatal("rat died at 0 hp")
	}
	acknowledge(t, r, res)

	press(t, r, res, input.KeyRight)
	if res.ECS.Alive(rat) {
		t.Fatal("rat survived a third hit")
	}
	msgs := acknowledge(t, r, res)
	want := []string{
		"You hit the rat for 1 point.",
		"The rat hits you for 1 point.",
		"You killed the rat!",
	}
	if len(msgs) != len(want) {
		t.Fatalf("messages = %q, want %q", msgs, want)
	}
	for i := range want {
		if msgs[i] != want[i] {
			t.Errorf("message %d = %q, want %q", i, msgs[i], want[i])
		}
	}

	stats, _ := res.C.Stats.Get(player)
	if stats.HP.Cur != 7 {
		t.Errorf("player hp = %d, want 7 after three exchanges", stats.HP.Cur)
	}
	if res.PlayerDied {
		t.Error("player should be alive")
	}

	// The rat's tile is free again.
	press(t, r, res, input.KeyRight)
	if got := positionOf(t, res, player); got != pos(3, 2) {
		t.Errorf("player at %+v, want (3,2)", got)
	}
}

func TestMobMovesOntoPlayer(t *testing.T) {
	res := createTestResources(t, roomMap(8, 5))
	player := spawnPlayer(t, res, pos(2, 2))
	rat := spawnMob(t, res, pos(4, 2), "rat", 2)
	r := NewPipeline(FlatDamage{Amount: 1}, res.Log)

	press(t, r, res, input.KeyPass)
	if got := positionOf(t, res, rat); got != pos(3, 2) {
		t.Fatalf("rat at %+v, want it to close in to (3,2)", got)
	}
	if !res.Messages.Empty() {
		t.Fatalf("unexpected messages %q", res.Messages.All())
	}

	press(t, r, res, input.KeyPass)
	if got := positionOf(t, res, rat); got != pos(3, 2) {
		t.Errorf("rat at %+v, bumping must not move it", got)
	}
	if got := positionOf(t, res, player); got != pos(2, 2) {
		t.Errorf("player at %+v, want (2,2)", got)
	}
	stats, _ := res.C.Stats.Get(player)
	if stats.HP.Cur != 9 {
		t.Errorf("player hp = %d, want 9", stats.HP.Cur)
	}
	if head, _ := res.Messages.Current(); head != "The rat hits you for 1 point." {
		t.Errorf("message = %q", head)
	}
}

func TestPlayerDeathKeepsPlayer(t *testing.T) {
	res := createTestResources(t, roomMap(8, 5))
	player := spawnPlayer(t, res, pos(2, 2))
	rat := spawnMob(t, res, pos(3, 2), "rat", 2)
	stats, _ := res.C.Stats.Get(player)
	stats.HP.Cur = 0

	event.Emit(res.Events, event.DealDamage{Source: rat, Target: player, Name: "rat", Amount: 2})
	NewDealDamageSystem(res.Log).Update(res)

	if !res.PlayerDied {
		t.Fatal("PlayerDied not raised")
	}
	if !res.ECS.Alive(player) || !res.Map.IsOccupied(pos(2, 2)) {
		t.Fatal("dead player must stay in the world")
	}
	msgs := res.Messages.All()
	if len(msgs) != 2 || msgs[0] != "The rat hits you for 2 points." || msgs[1] != "You die..." {
		t.Errorf("messages = %q", msgs)
	}
}

func TestResolveCombatDropsStale(t *testing.T) {
	res := createTestResources(t, roomMap(8, 5))
	player := spawnPlayer(t, res, pos(2, 2))
	rat := spawnMob(t, res, pos(3, 2), "rat", 2)
	bat := spawnMob(t, res, pos(4, 2), "bat", 3)
	res.Despawn(rat)
	res.ECS.FlushDestroyQueue()

	event.Emit(res.Events, event.Melee{Source: player, Target: rat})
	event.Emit(res.Events, event.Melee{Source: rat, Target: player})
	event.Emit(res.Events, event.Melee{Source: player, Target: bat})
	NewResolveCombatSystem(FlatDamage{Amount: 1}, res.Log).Update(res)

	hits := event.Drain[event.DealDamage](res.Events)
	if len(hits) != 1 {
		t.Fatalf("hits = %+v, want only player -> bat", hits)
	}
	want := event.DealDamage{Source: player, Target: bat, Name: "you", Amount: 1}
	if hits[0] != want {
		t.Errorf("hit = %+v, want %+v", hits[0], want)
	}
}

func TestFractionDamage(t *testing.T) {
	tests := []struct {
		hp   int
		want int
	}{
		{10, 1},
		{9, 0},
		{25, 2},
		{0, 0},
		{-3, 0},
	}
	for _, tt := range tests {
		res := createTestResources(t, roomMap(5, 5))
		player := spawnPlayer(t, res, pos(2, 2))
		stats, _ := res.C.Stats.Get(player)
		stats.HP.Cur = tt.hp

		if got := (FractionDamage{Divisor: 10}).Damage(res, player); got != tt.want {
			t.Errorf("hp %d: damage = %d, want %d", tt.hp, got, tt.want)
		}
	}
}

func TestPolicyFromConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.CombatConfig
		want    DamagePolicy
		wantErr bool
	}{
		{"flat", config.CombatConfig{DamagePolicy: "flat", FlatDamage: 2}, FlatDamage{Amount: 2}, false},
		{"fraction", config.CombatConfig{DamagePolicy: "fraction", HPDivisor: 10}, FractionDamage{Divisor: 10}, false},
		{"zero divisor", config.CombatConfig{DamagePolicy: "fraction"}, nil, true},
		{"unknown", config.CombatConfig{DamagePolicy: "crit"}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PolicyFromConfig(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("policy = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestDamageAppliedInArrivalOrder(t *testing.T) {
	res := createTestResources(t, roomMap(8, 5))
	player := spawnPlayer(t, res, pos(2, 2))
	rat := spawnMob(t, res, pos(3, 2), "rat", 1)
	bat := spawnMob(t, res, pos(2, 3), "bat", 5)

	event.Emit(res.Events, event.DealDamage{Source: player, Target: rat, Name: "you", Amount: 2})
	event.Emit(res.Events, event.DealDamage{Source: bat, Target: player, Name: "bat", Amount: 3})
	event.Emit(res.Events, event.DealDamage{Source: rat, Target: player, Name: "rat", Amount: 1})
	NewDealDamageSystem(res.Log).Update(res)

	// The rat is at -1 after the first hit but still lands its own blow: death
	// is checked only after every hit is applied.
	stats, _ := res.C.Stats.Get(player)
	if stats.HP.Cur != 6 {
		t.Errorf("player hp = %d, want 6", stats.HP.Cur)
	}
	want := []string{
		"You hit the rat for 2 points.",
		"The bat hits you for 3 points.",
		"The rat hits you for 1 point.",
		"You killed the rat!",
	}
	got := res.Messages.All()
	if len(got) != len(want) {
		t.Fatalf("messages = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("message %d = %q, want %q", i, got[i], want[i])
		}
	}
	if res.ECS.Alive(rat) {
		t.Error("rat should be dead")
	}
	if err := world.VerifyOccupancy(res); err != nil {
		t.Fatal(err)
	}
}
