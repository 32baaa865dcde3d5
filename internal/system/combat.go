package system

import (
	"fmt"
	"unicode/utf8"

	"github.com/progrog/roguelike/internal/config"
	"github.com/progrog/roguelike/internal/core/ecs"
	"github.com/progrog/roguelike/internal/core/event"
	coresys "github.com/progrog/roguelike/internal/core/system"
	"github.com/progrog/roguelike/internal/world"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DamagePolicy decides how much one melee hit deals.
type DamagePolicy interface {
	Damage(res *world.Resources, source ecs.EntityID) int
}

// FlatDamage deals the same amount on every hit.
type FlatDamage struct {
	Amount int
}

func (p FlatDamage) Damage(*world.Resources, ecs.EntityID) int { return p.Amount }

// FractionDamage deals the attacker's current HP divided by Divisor, never
// less than zero.
type FractionDamage struct {
	Divisor int
}

func (p FractionDamage) Damage(res *world.Resources, source ecs.EntityID) int {
	stats, ok := res.C.Stats.Get(source)
	if !ok || stats.HP.Cur <= 0 {
		return 0
	}
	return stats.HP.Cur / p.Divisor
}

// PolicyFromConfig builds the damage policy named in the combat config.
func PolicyFromConfig(cfg config.CombatConfig) (DamagePolicy, error) {
	switch cfg.DamagePolicy {
	case "flat":
		return FlatDamage{Amount: cfg.FlatDamage}, nil
	case "fraction":
		if cfg.HPDivisor <= 0 {
			return nil, fmt.Errorf("fraction damage: hp_divisor must be positive, got %d", cfg.HPDivisor)
		}
		return FractionDamage{Divisor: cfg.HPDivisor}, nil
	}
	return nil, fmt.Errorf("unknown damage policy %q", cfg.DamagePolicy)
}

// ResolveCombatSystem turns each melee event into one DealDamage event.
// Events whose source or target no longer exists are dropped.
type ResolveCombatSystem struct {
	policy DamagePolicy
	log    *zap.Logger
}

func NewResolveCombatSystem(policy DamagePolicy, log *zap.Logger) *ResolveCombatSystem {
	return &ResolveCombatSystem{policy: policy, log: log}
}

func (s *ResolveCombatSystem) Stage() coresys.Stage { return coresys.StageCombat }

func (s *ResolveCombatSystem) Update(res *world.Resources) {
	for _, m := range event.Drain[event.Melee](res.Events) {
		if !res.ECS.Alive(m.Source) || !res.ECS.Alive(m.Target) || !res.C.Stats.Has(m.Target) {
			s.log.Debug("combat: stale melee dropped",
				zap.Stringer("source", m.Source), zap.Stringer("target", m.Target))
			continue
		}
		event.Emit(res.Events, event.DealDamage{
			Source: m.Source,
			Target: m.Target,
			Name:   res.DisplayName(m.Source),
			Amount: s.policy.Damage(res, m.Source),
		})
	}
}

// DealDamageSystem applies every hit in arrival order, logs one line per
// hit, then checks each touched entity once for death. A dead mob is
// despawned; a dead player only raises Resources.PlayerDied so the session
// always keeps its player.
type DealDamageSystem struct {
	upper cases.Caser
	log   *zap.Logger
}

func NewDealDamageSystem(log *zap.Logger) *DealDamageSystem {
	return &DealDamageSystem{upper: cases.Upper(language.English), log: log}
}

func (s *DealDamageSystem) Stage() coresys.Stage { return coresys.StageCombat }

func (s *DealDamageSystem) Update(res *world.Resources) {
	hits := event.Drain[event.DealDamage](res.Events)
	if len(hits) == 0 {
		return
	}

	var touched []ecs.EntityID
	lastHit := make(map[ecs.EntityID]ecs.EntityID, len(hits))
	for _, h := range hits {
		stats, ok := res.C.Stats.Get(h.Target)
		if !ok || !res.ECS.Alive(h.Target) {
			continue
		}
		stats.HP.Cur -= h.Amount
		res.Messages.Add(s.hitLine(res, h))
		s.log.Debug("damage dealt",
			zap.Stringer("source", h.Source),
			zap.Stringer("target", h.Target),
			zap.Int("amount", h.Amount),
			zap.Int("hp", stats.HP.Cur))

		if _, dup := lastHit[h.Target]; !dup {
			touched = append(touched, h.Target)
		}
		lastHit[h.Target] = h.Source
	}

	for _, id := range touched {
		stats := ecs.MustGet(res.C.Stats, id)
		if stats.HP.Cur >= 0 {
			continue
		}
		if res.IsPlayer(id) {
			if !res.PlayerDied {
				res.PlayerDied = true
				res.Messages.Add("You die...")
				s.log.Info("player died", zap.Stringer("entity", id))
			}
			continue
		}
		res.Messages.Add(s.deathLine(res, id, lastHit[id]))
		s.log.Debug("entity killed", zap.Stringer("entity", id), zap.String("name", res.DisplayName(id)))
		res.Despawn(id)
	}
	res.ECS.FlushDestroyQueue()
}

func (s *DealDamageSystem) hitLine(res *world.Resources, h event.DealDamage) string {
	unit := "points"
	if h.Amount == 1 {
		unit = "point"
	}
	if res.IsPlayer(h.Source) {
		return s.sentence(fmt.Sprintf("you hit %s for %d %s.", s.object(res, h.Target), h.Amount, unit))
	}
	return s.sentence(fmt.Sprintf("the %s hits %s for %d %s.", h.Name, s.object(res, h.Target), h.Amount, unit))
}

func (s *DealDamageSystem) deathLine(res *world.Resources, id, killer ecs.EntityID) string {
	if res.IsPlayer(killer) {
		return fmt.Sprintf("You killed the %s!", res.DisplayName(id))
	}
	return s.sentence(fmt.Sprintf("the %s is killed.", res.DisplayName(id)))
}

func (s *DealDamageSystem) object(res *world.Resources, id ecs.EntityID) string {
	if res.IsPlayer(id) {
		return "you"
	}
	return "the " + res.DisplayName(id)
}

// sentence upper-cases the first letter of msg.
func (s *DealDamageSystem) sentence(msg string) string {
	_, n := utf8.DecodeRuneInString(msg)
	return s.upper.String(msg[:n]) + msg[n:]
}
