package sim

import (
	"testing"

	"pacman/internal/board"
	"pacman/internal/entities"
)

func newTestState() *State {
	return New(board.New(20, 30), DefaultTuning())
}

func TestNewStartsAtRest(t *testing.T) {
	s := newTestState()
	if s.Player.Pos != (entities.Vec2{X: 30, Y: 300}) {
		t.Fatalf("start position = %v", s.Player.Pos)
	}
	if len(s.Dots) != s.TotalDots() || s.Score != 0 || s.Won {
		t.Fatalf("unexpected start state: dots=%d score=%d won=%v", len(s.Dots), s.Score, s.Won)
	}
	if s.Player.Size != 24 {
		t.Fatalf("player size = %v, want 24", s.Player.Size)
	}
}

func TestStepCollectsDotWithinThreshold(t *testing.T) {
	// A 24px cell gives a 12px collection radius.
	s := New(board.New(20, 24), DefaultTuning())
	s.Player.Pos = entities.Vec2{X: 30, Y: 30}
	s.Dots = []entities.Vec2{{X: 30, Y: 30}, {X: 42, Y: 30}, {X: 200, Y: 200}}

	res := s.Step()

	if res.Collected != 1 || s.Score != 10 {
		t.Fatalf("collected=%d score=%d, want 1 and 10", res.Collected, s.Score)
	}
	if len(s.Dots) != 2 {
		t.Fatalf("dots left = %d, want 2", len(s.Dots))
	}
	for _, d := range s.Dots {
		if d == (entities.Vec2{X: 30, Y: 30}) {
			t.Fatal("dot under the player was not removed")
		}
	}
}

func TestStepMovesAlongQueuedDirection(t *testing.T) {
	s := newTestState()
	s.QueueDirection(entities.DirRight)
	for i := 0; i < 6; i++ {
		s.Step()
	}
	if s.Player.Pos != (entities.Vec2{X: 60, Y: 300}) {
		t.Fatalf("after 6 ticks pos = %v, want (60,300)", s.Player.Pos)
	}
	if s.Player.MouthAngle == 0 {
		t.Fatal("mouth should animate while moving")
	}
}

func TestStepClampsToBounds(t *testing.T) {
	s := newTestState()
	s.QueueDirection(entities.DirLeft)
	for i := 0; i < 10; i++ {
		s.Step()
	}
	if s.Player.Pos.X != s.Board.Min() {
		t.Fatalf("x = %v, want clamped to %v", s.Player.Pos.X, s.Board.Min())
	}
	s.QueueDirection(entities.DirDown)
	for i := 0; i < 500; i++ {
		s.Step()
	}
	if s.Player.Pos.Y != s.Board.Max() {
		t.Fatalf("y = %v, want clamped to %v", s.Player.Pos.Y, s.Board.Max())
	}
}

func TestTurnWaitsForAlignment(t *testing.T) {
	s := newTestState()
	s.QueueDirection(entities.DirRight)
	s.Step() // x=35
	s.QueueDirection(entities.DirDown)
	s.Step() // x=40, not aligned: still heading right
	if s.Controller.Current != entities.DirRight {
		t.Fatalf("current = %v, want right until aligned", s.Controller.Current)
	}
	for i := 0; i < 4; i++ {
		s.Step()
	}
	// x=60 reached on the last tick; the turn is taken on the next one.
	s.Step()
	if s.Controller.Current != entities.DirDown {
		t.Fatalf("current = %v, want down after alignment", s.Controller.Current)
	}
	if s.Player.Pos != (entities.Vec2{X: 60, Y: 305}) {
		t.Fatalf("pos = %v, want (60,305)", s.Player.Pos)
	}
}

func TestWinIsTerminalUntilReset(t *testing.T) {
	s := newTestState()
	s.Dots = []entities.Vec2{s.Player.Pos}
	res := s.Step()
	if !res.JustWon || !s.Won {
		t.Fatalf("expected win, got res=%+v won=%v", res, s.Won)
	}

	s.QueueDirection(entities.DirUp)
	player, score, ticks, ctrl := s.Player, s.Score, s.Ticks, s.Controller
	for i := 0; i < 20; i++ {
		if res := s.Step(); res != (StepResult{}) {
			t.Fatalf("step after win reported %+v", res)
		}
	}
	if s.Player != player || s.Score != score || s.Ticks != ticks || s.Controller != ctrl || len(s.Dots) != 0 {
		t.Fatal("state changed after the game was won")
	}

	s.Reset()
	if s.Won || s.Score != 0 || s.Ticks != 0 || len(s.Dots) != s.TotalDots() {
		t.Fatalf("reset state: won=%v score=%d ticks=%d dots=%d", s.Won, s.Score, s.Ticks, len(s.Dots))
	}
	if s.Player.Pos != s.Board.StartPosition() || s.Player.Moving() {
		t.Fatalf("reset player = %+v", s.Player)
	}
	if s.Controller.Current != entities.DirNone || s.Controller.Queued != entities.DirNone {
		t.Fatal("reset should clear the direction queue")
	}
}

// TestStepInvariants drives a long scripted game and checks the per-tick
// properties on every step.
func TestStepInvariants(t *testing.T) {
	s := newTestState()
	script := []entities.Direction{
		entities.DirRight, entities.DirUp, entities.DirRight, entities.DirDown,
		entities.DirLeft, entities.DirDown, entities.DirRight, entities.DirUp,
	}
	for tick := 0; tick < 4000; tick++ {
		if tick%37 == 0 {
			s.QueueDirection(script[(tick/37)%len(script)])
		}

		before := s.Player.Pos
		beforeDir := s.Controller.Current
		beforeScore := s.Score
		beforeDots := append([]entities.Vec2(nil), s.Dots...)

		res := s.Step()

		if s.Score < beforeScore {
			t.Fatalf("tick %d: score dropped %d -> %d", tick, beforeScore, s.Score)
		}
		if s.Controller.Current != beforeDir && !entities.IsAligned(before, s.Board.CellSize) {
			t.Fatalf("tick %d: direction changed at unaligned %v", tick, before)
		}

		want := 0
		for _, d := range beforeDots {
			if d.Sub(s.Player.Pos).Len() < s.CollectRadius() {
				want++
			}
		}
		if res.Collected != want || len(s.Dots) != len(beforeDots)-want {
			t.Fatalf("tick %d: collected %d, want %d", tick, res.Collected, want)
		}
		if s.Score-beforeScore != want*s.Tuning.DotPoints {
			t.Fatalf("tick %d: score delta %d for %d dots", tick, s.Score-beforeScore, want)
		}
	}
}
