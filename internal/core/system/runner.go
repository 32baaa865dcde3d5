package system

import "sort"

// Runner executes systems in stage order each tick. Systems sharing a stage
// run in registration order.
type Runner[R any] struct {
	systems []System[R]
	sorted  bool
	gate    func(R) bool
}

// NewRunner returns a runner whose gated stages run only while gate reports
// true. The gate is evaluated at the start of each gated stage, so a flag set
// by the input stage already opens the later stages of the same tick.
func NewRunner[R any](gate func(R) bool) *Runner[R] {
	return &Runner[R]{
		systems: make([]System[R], 0, 16),
		gate:    gate,
	}
}

func (r *Runner[R]) Register(s System[R]) {
	r.systems = append(r.systems, s)
	r.sorted = false
}

// Tick runs one full pass of the pipeline and returns the stages that ran.
func (r *Runner[R]) Tick(res R) []Stage {
	r.ensureSorted()
	ran := make([]Stage, 0, 8)
	for i := 0; i < len(r.systems); {
		stage := r.systems[i].Stage()
		j := i
		for j < len(r.systems) && r.systems[j].Stage() == stage {
			j++
		}
		if !stage.Gated() || r.gate == nil || r.gate(res) {
			for _, s := range r.systems[i:j] {
				s.Update(res)
			}
			ran = append(ran, stage)
		}
		i = j
	}
	return ran
}

// TickStage runs only the systems of the given stage, ignoring the gate.
func (r *Runner[R]) TickStage(stage Stage, res R) {
	r.ensureSorted()
	for _, s := range r.systems {
		if s.Stage() == stage {
			s.Update(res)
		}
	}
}

func (r *Runner[R]) ensureSorted() {
	if !r.sorted {
		sort.SliceStable(r.systems, func(i, j int) bool {
			return r.systems[i].Stage() < r.systems[j].Stage()
		})
		r.sorted = true
	}
}
