package system

import "testing"

type state struct {
	run bool
	log []string
}

type recorder struct {
	stage Stage
	name  string
}

func (r recorder) Stage() Stage { return r.stage }

func (r recorder) Update(s *state) {
	s.log = append(s.log, r.name)
	if r.name == "input" {
		s.run = true
	}
}

func TestRunnerOrderAndGate(t *testing.T) {
	r := NewRunner(func(s *state) bool { return s.run })
	r.Register(recorder{StageCleanup, "cleanup"})
	r.Register(recorder{StageVisibility, "fov"})
	r.Register(recorder{StageVisibility, "memory"})
	r.Register(recorder{StageClear, "clear"})
	r.Register(recorder{StageCombat, "combat"})
	r.Register(recorder{StageDraw, "draw"})

	s := &state{}
	ran := r.Tick(s)
	wantLog := []string{"clear", "combat", "cleanup"}
	if len(s.log) != len(wantLog) {
		t.Fatalf("log = %v, want %v", s.log, wantLog)
	}
	for i := range wantLog {
		if s.log[i] != wantLog[i] {
			t.Errorf("log[%d] = %q, want %q", i, s.log[i], wantLog[i])
		}
	}
	if len(ran) != 3 || ran[1] != StageCombat {
		t.Errorf("ran = %v", ran)
	}

	// An input system opens the gate for the rest of the same tick.
	r.Register(recorder{StageInput, "input"})
	s = &state{}
	r.Tick(s)
	wantLog = []string{"clear", "input", "fov", "memory", "combat", "draw", "cleanup"}
	if len(s.log) != len(wantLog) {
		t.Fatalf("log = %v, want %v", s.log, wantLog)
	}
	for i := range wantLog {
		if s.log[i] != wantLog[i] {
			t.Errorf("log[%d] = %q, want %q", i, s.log[i], wantLog[i])
		}
	}
}

func TestRunnerTickStage(t *testing.T) {
	r := NewRunner(func(s *state) bool { return false })
	r.Register(recorder{StageDraw, "draw"})
	r.Register(recorder{StageVisibility, "fov"})

	s := &state{}
	r.TickStage(StageDraw, s)
	if len(s.log) != 1 || s.log[0] != "draw" {
		t.Errorf("log = %v, want only draw despite the closed gate", s.log)
	}
}

func TestStageNames(t *testing.T) {
	if StageMovement.String() != "movement" || Stage(99).String() != "unknown" {
		t.Error("stage names wrong")
	}
	for _, s := range []Stage{StageVisibility, StageAI, StageMovement, StageDraw} {
		if !s.Gated() {
			t.Errorf("%v should be gated", s)
		}
	}
	for _, s := range []Stage{StageClear, StageInput, StageCombat, StageCleanup} {
		if s.Gated() {
			t.Errorf("%v should not be gated", s)
		}
	}
}
