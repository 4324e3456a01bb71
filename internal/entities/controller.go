package entities

import "math"

// AlignTolerance is how close to a whole cell a coordinate must be, in cells,
// to count as grid-aligned.
const AlignTolerance = 0.1

// DirectionController holds the two-slot direction queue. A queued direction
// only becomes current while the player sits on a grid intersection.
type DirectionController struct {
	Queued  Direction
	Current Direction
}

// Queue records the latest requested direction, replacing any earlier one.
func (c *DirectionController) Queue(d Direction) {
	c.Queued = d
}

// Update promotes the queued direction when pos is aligned and returns the
// direction in effect.
func (c *DirectionController) Update(pos Vec2, cellSize float64) Direction {
	if IsAligned(pos, cellSize) && c.Queued != DirNone {
		c.Current = c.Queued
		c.Queued = DirNone
	}
	return c.Current
}

func (c *DirectionController) Reset() {
	c.Queued = DirNone
	c.Current = DirNone
}

// IsAligned reports whether pos is within AlignTolerance of a grid
// intersection on both axes.
func IsAligned(pos Vec2, cellSize float64) bool {
	return nearWhole(pos.X/cellSize) && nearWhole(pos.Y/cellSize)
}

func nearWhole(v float64) bool {
	_, frac := math.Modf(v)
	frac = math.Abs(frac)
	return frac < AlignTolerance || frac > 1-AlignTolerance
}
