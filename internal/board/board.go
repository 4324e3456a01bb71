package board

import "pacman/internal/entities"

// Board is the square playfield. Dots sit on grid-line intersections and the
// player is kept one cell away from every edge.
type Board struct {
	GridSize int
	CellSize float64
}

func New(gridSize int, cellSize float64) *Board {
	return &Board{GridSize: gridSize, CellSize: cellSize}
}

// PixelSize is the side of the native canvas.
func (b *Board) PixelSize() int {
	return int(float64(b.GridSize) * b.CellSize)
}

func (b *Board) Min() float64 { return b.CellSize }

func (b *Board) Max() float64 { return b.CellSize * float64(b.GridSize-1) }

// Clamp keeps pos inside the playable bounds on both axes.
func (b *Board) Clamp(pos entities.Vec2) entities.Vec2 {
	return entities.Vec2{X: clamp(pos.X, b.Min(), b.Max()), Y: clamp(pos.Y, b.Min(), b.Max())}
}

func (b *Board) StartPosition() entities.Vec2 {
	return entities.Vec2{X: b.CellSize, Y: float64(b.GridSize) * b.CellSize / 2}
}

// InitialDots returns a fresh dot for every interior intersection.
func (b *Board) InitialDots() []entities.Vec2 {
	n := b.GridSize - 2
	if n < 0 {
		n = 0
	}
	dots := make([]entities.Vec2, 0, n*n)
	for x := 1; x < b.GridSize-1; x++ {
		for y := 1; y < b.GridSize-1; y++ {
			dots = append(dots, entities.Vec2{X: float64(x) * b.CellSize, Y: float64(y) * b.CellSize})
		}
	}
	return dots
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
