package sim

import "pacman/internal/entities"

// StepResult tells the host what happened during a tick.
type StepResult struct {
	Collected int
	JustWon   bool
}

// Step advances the game by one tick. A won game is left untouched.
func (s *State) Step() StepResult {
	var res StepResult
	if s.Won {
		return res
	}
	s.Ticks++

	if dir := s.Controller.Update(s.Player.Pos, s.Board.CellSize); dir != entities.DirNone {
		s.Player.Heading = dir.Vector()
	}

	s.Player.Pos = s.Board.Clamp(s.Player.Pos.Add(s.Player.Heading.Scale(s.Tuning.Speed)))

	res.Collected = s.collectDots()
	s.Score += res.Collected * s.Tuning.DotPoints

	if len(s.Dots) == 0 {
		s.Won = true
		res.JustWon = true
	}

	s.Player.AnimateMouth(s.Tuning.MouthSpeed, s.Tuning.MaxMouthAngle)
	return res
}

// collectDots removes every dot within reach of the player in place and
// returns how many were removed.
func (s *State) collectDots() int {
	r := s.CollectRadius()
	kept := s.Dots[:0]
	for _, d := range s.Dots {
		if d.Sub(s.Player.Pos).Len() < r {
			continue
		}
		kept = append(kept, d)
	}
	n := len(s.Dots) - len(kept)
	s.Dots = kept
	return n
}
