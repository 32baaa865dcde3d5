package system

// Stage defines execution ordering within a single tick.
type Stage int

const (
	StageClear      Stage = iota // 0: drop last tick's intents and events
	StageInput                   // 1: one key → move or melee
	StageVisibility              // 2: viewsheds + explored memory (gated)
	StageAI                      // 3: mob intents (gated)
	StageMovement                // 4: commit move intents (gated)
	StageCombat                  // 5: melee → damage → death
	StageDraw                    // 6: draw list assembly (gated)
	StageCleanup                 // 7: reset the run flag
)

var stageNames = [...]string{
	StageClear:      "clear",
	StageInput:      "input",
	StageVisibility: "visibility",
	StageAI:         "ai",
	StageMovement:   "movement",
	StageCombat:     "combat",
	StageDraw:       "draw",
	StageCleanup:    "cleanup",
}

func (s Stage) String() string {
	if s >= 0 && int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "unknown"
}

// Gated reports whether the stage only runs on ticks where the player acted.
func (s Stage) Gated() bool {
	switch s {
	case StageVisibility, StageAI, StageMovement, StageDraw:
		return true
	}
	return false
}

// System is the interface every game system implements. R is the shared
// resource set handed to each Update; a system may only write the resources
// its stage owns.
type System[R any] interface {
	Stage() Stage
	Update(res R)
}
