package sim

import (
	"pacman/internal/board"
	"pacman/internal/entities"
)

// State is everything that changes between ticks.
type State struct {
	Board      *board.Board
	Tuning     Tuning
	Player     entities.Player
	Dots       []entities.Vec2
	Score      int
	Controller entities.DirectionController
	Won        bool
	// Ticks counts steps taken since the last reset, excluding won ticks.
	Ticks int
}

func New(b *board.Board, t Tuning) *State {
	s := &State{Board: b, Tuning: t}
	s.Reset()
	return s
}

// Reset restores the start-of-game state.
func (s *State) Reset() {
	s.Dots = s.Board.InitialDots()
	s.Player = entities.Player{
		Pos:          s.Board.StartPosition(),
		Size:         s.Board.CellSize * playerSizeFraction,
		MouthOpening: true,
	}
	s.Score = 0
	s.Controller.Reset()
	s.Won = false
	s.Ticks = 0
}

func (s *State) QueueDirection(d entities.Direction) {
	s.Controller.Queue(d)
}

// CollectRadius is the distance below which a dot is eaten.
func (s *State) CollectRadius() float64 {
	return s.Tuning.CollectFraction * s.Board.CellSize
}

// TotalDots is the size of a freshly reset dot set.
func (s *State) TotalDots() int {
	n := s.Board.GridSize - 2
	if n < 0 {
		return 0
	}
	return n * n
}
