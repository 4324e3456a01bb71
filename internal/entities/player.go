package entities

import "math"

type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Vector returns the unit vector for d, or the zero vector for DirNone.
func (d Direction) Vector() Vec2 {
	switch d {
	case DirUp:
		return Vec2{0, -1}
	case DirDown:
		return Vec2{0, 1}
	case DirLeft:
		return Vec2{-1, 0}
	case DirRight:
		return Vec2{1, 0}
	default:
		return Vec2{}
	}
}

type Player struct {
	Pos          Vec2
	Heading      Vec2
	Size         float64
	MouthAngle   float64
	MouthOpening bool
}

func (p *Player) Moving() bool {
	return p.Heading.Len() > 0
}

// Rotation is the heading angle in radians. A stationary player faces right.
func (p *Player) Rotation() float64 {
	if !p.Moving() {
		return 0
	}
	return math.Atan2(p.Heading.Y, p.Heading.X)
}

// AnimateMouth advances the chomp oscillator by one tick.
func (p *Player) AnimateMouth(speed, max float64) {
	if !p.Moving() {
		p.MouthAngle = 0
		p.MouthOpening = true
		return
	}
	if p.MouthOpening {
		p.MouthAngle += speed
		if p.MouthAngle >= max {
			p.MouthOpening = false
		}
	} else {
		p.MouthAngle -= speed
		if p.MouthAngle <= 0 {
			p.MouthOpening = true
		}
	}
}
