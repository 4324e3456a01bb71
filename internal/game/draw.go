package game

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"pacman/internal/board"
	"pacman/internal/config"
	"pacman/internal/entities"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var (
	playerColor  = colornames.Yellow
	overlayColor = color.RGBA{A: 178}
	buttonColor  = color.RGBA{R: 77, G: 77, B: 204, A: 255}
	hintColor    = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	gridColor    = color.RGBA{R: 77, G: 77, B: 77, A: 255}
)

// shapeBuffers are reused between frames for path tessellation.
type shapeBuffers struct {
	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func (s *shapeBuffers) whitePixel() *ebiten.Image {
	if s.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		s.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return s.white
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	b := g.state.Board
	drawGrid(screen, b)
	drawDots(screen, b, g.state.Dots)
	g.drawPlayer(screen)

	drawText(screen, fmt.Sprintf("Score: %d", g.state.Score), 10, 10, color.White)
	if g.paused {
		msg := "PAUSED"
		drawText(screen, msg, b.PixelSize()-textWidth(msg)-10, 10, hintColor)
	}

	if g.state.Won {
		g.drawWonOverlay(screen)
	}
}

// gridLines returns the offset of every grid line, both edges included.
func gridLines(b *board.Board) []float32 {
	lines := make([]float32, 0, b.GridSize+1)
	for i := 0; i <= b.GridSize; i++ {
		lines = append(lines, float32(float64(i)*b.CellSize))
	}
	return lines
}

func drawGrid(dst *ebiten.Image, b *board.Board) {
	size := float32(float64(b.GridSize) * b.CellSize)
	for _, p := range gridLines(b) {
		vector.StrokeLine(dst, p, 0, p, size, 1, gridColor, false)
		vector.StrokeLine(dst, 0, p, size, p, 1, gridColor, false)
	}
}

func drawDots(dst *ebiten.Image, b *board.Board, dots []entities.Vec2) {
	r := float32(b.CellSize * 0.2)
	for _, d := range dots {
		vector.DrawFilledCircle(dst, float32(d.X), float32(d.Y), r, colornames.White, true)
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	p := &g.state.Player
	x, y := float32(p.Pos.X), float32(p.Pos.Y)
	r := float32(p.Size * 0.5)
	if g.cfg.PlayerStyle == config.StyleCircle {
		vector.DrawFilledCircle(screen, x, y, r, playerColor, true)
		return
	}
	g.drawWedge(screen, p, x, y, r)
}

// drawWedge draws the body as a pie with the mouth cut out, facing the heading.
func (g *Game) drawWedge(screen *ebiten.Image, p *entities.Player, x, y, r float32) {
	rot := p.Rotation()
	mouth := p.MouthAngle

	var path vector.Path
	path.MoveTo(x, y)
	path.Arc(x, y, r, float32(rot+mouth), float32(rot+2*math.Pi-mouth), vector.Clockwise)
	path.Close()

	s := &g.shapes
	s.vertices, s.indices = path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	cr, cg, cb, ca := playerColor.RGBA()
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = float32(cr) / 0xffff
		s.vertices[i].ColorG = float32(cg) / 0xffff
		s.vertices[i].ColorB = float32(cb) / 0xffff
		s.vertices[i].ColorA = float32(ca) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(s.vertices, s.indices, s.whitePixel(), op)
}

func (g *Game) drawWonOverlay(screen *ebiten.Image) {
	size := g.state.Board.PixelSize()
	fs := float32(size)
	vector.DrawFilledRect(screen, 0, 0, fs, fs, overlayColor, false)

	drawCentered(screen, "You Won!", size/2, int(float64(size)*0.4), color.White)
	drawCentered(screen, fmt.Sprintf("Final Score: %d", g.state.Score), size/2, size/2, color.White)
	if g.best.BestTicks > 0 {
		best := fmt.Sprintf("Time: %.1fs  Best: %.1fs  Wins: %d",
			g.seconds(g.state.Ticks), g.seconds(g.best.BestTicks), g.best.Wins)
		drawCentered(screen, best, size/2, int(float64(size)*0.5)+20, hintColor)
	}

	btn := g.playAgainButton()
	vector.DrawFilledRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), buttonColor, false)
	label := "Play Again"
	lh := basicfont.Face7x13.Metrics().Height.Ceil()
	drawText(screen, label, int(btn.X+btn.W*0.5)-textWidth(label)/2, int(btn.Y+btn.H*0.5)-lh/2, color.White)
}

func (g *Game) seconds(ticks int) float64 {
	return float64(ticks) / float64(g.cfg.TPS)
}

func textWidth(s string) int {
	return text.BoundString(basicfont.Face7x13, s).Dx()
}

// drawText places s with its top-left corner at (x, top).
func drawText(dst *ebiten.Image, s string, x, top int, clr color.Color) {
	ascent := basicfont.Face7x13.Metrics().Ascent.Ceil()
	text.Draw(dst, s, basicfont.Face7x13, x, top+ascent, clr)
}

func drawCentered(dst *ebiten.Image, s string, cx, top int, clr color.Color) {
	drawText(dst, s, cx-textWidth(s)/2, top, clr)
}
