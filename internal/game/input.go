package game

import (
	"pacman/internal/entities"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	buttonWidth  = 200.0
	buttonHeight = 50.0
)

var keyDirections = map[ebiten.Key]entities.Direction{
	ebiten.KeyArrowUp:    entities.DirUp,
	ebiten.KeyW:          entities.DirUp,
	ebiten.KeyArrowDown:  entities.DirDown,
	ebiten.KeyS:          entities.DirDown,
	ebiten.KeyArrowLeft:  entities.DirLeft,
	ebiten.KeyA:          entities.DirLeft,
	ebiten.KeyArrowRight: entities.DirRight,
	ebiten.KeyD:          entities.DirRight,
}

type rect struct {
	X, Y, W, H float64
}

// Contains is inclusive on every edge.
func (r rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// playAgainButton is centred horizontally at 60% of the canvas height.
func (g *Game) playAgainButton() rect {
	size := float64(g.state.Board.PixelSize())
	return rect{X: size*0.5 - buttonWidth*0.5, Y: size * 0.6, W: buttonWidth, H: buttonHeight}
}

func (g *Game) handleInput() {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.handleKey(k)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.handleClick(float64(x), float64(y))
	}
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := ebiten.TouchPosition(id)
		g.handleClick(float64(x), float64(y))
	}
}

func (g *Game) handleKey(k ebiten.Key) {
	if d, ok := keyDirections[k]; ok {
		g.state.QueueDirection(d)
		return
	}
	switch k {
	case ebiten.KeySpace:
		g.paused = !g.paused
	case ebiten.KeyF:
		g.fullscreen = !g.fullscreen
		ebiten.SetFullscreen(g.fullscreen)
	case ebiten.KeyQ, ebiten.KeyEscape:
		g.quit = true
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		if g.state.Won {
			g.reset()
		}
	}
}

// handleClick resets a won game when the click lands on the Play Again button.
func (g *Game) handleClick(x, y float64) {
	if !g.state.Won {
		return
	}
	if g.playAgainButton().Contains(x, y) {
		g.reset()
	}
}
