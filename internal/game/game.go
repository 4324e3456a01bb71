package game

import (
	"log"
	"math"

	"pacman/internal/board"
	"pacman/internal/config"
	"pacman/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	cfg     config.Config
	state   *sim.State
	audio   *AudioManager
	records *RecordStore
	best    Record

	fullscreen bool
	paused     bool
	quit       bool
	scale      float64

	keys    []ebiten.Key
	touches []ebiten.TouchID
	shapes  shapeBuffers
}

func New(cfg config.Config) *Game {
	b := board.New(cfg.GridSize, cfg.CellSize)
	g := &Game{
		cfg:   cfg,
		state: sim.New(b, cfg.Tuning()),
		audio: NewAudioManager(cfg.SoundsDir, cfg.EnableAudio),
		scale: 1,
	}

	// Records are optional: the game runs without a writable config dir.
	if dir, err := cfg.RecordsDir(); err != nil {
		log.Printf("records disabled: %v", err)
	} else {
		g.records = NewRecordStore(dir)
		rec, err := g.records.Load()
		if err != nil {
			log.Printf("load records: %v", err)
		}
		g.best = rec
	}
	return g
}

// FitToDisplay scales the window to about 75% of a display of the given size.
func (g *Game) FitToDisplay(displayW, displayH int) {
	native := float64(g.state.Board.PixelSize())
	fit := 0.75
	s := math.Min(float64(displayW)*fit/native, float64(displayH)*fit/native)
	if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		s = 1.0
	}
	g.scale = s
}

func (g *Game) ScreenWidth() int {
	return int(float64(g.state.Board.PixelSize()) * g.scale)
}

func (g *Game) ScreenHeight() int {
	return int(float64(g.state.Board.PixelSize()) * g.scale)
}

func (g *Game) Update() error {
	g.handleInput()
	if g.quit {
		return ebiten.Termination
	}
	g.step()
	return nil
}

func (g *Game) step() {
	if g.paused {
		return
	}
	res := g.state.Step()
	if res.Collected > 0 {
		g.audio.PlayChomp()
	}
	if res.JustWon {
		g.onWin()
	}
}

func (g *Game) onWin() {
	g.audio.PlayWin()
	log.Printf("game won: score=%d ticks=%d", g.state.Score, g.state.Ticks)
	g.best = g.best.WithWin(g.state.Ticks, g.state.Score)
	if g.records == nil {
		return
	}
	if err := g.records.Save(g.best); err != nil {
		log.Printf("save records: %v", err)
	}
}

func (g *Game) reset() {
	log.Printf("reset after score=%d", g.state.Score)
	g.state.Reset()
	g.paused = false
}

// Layout keeps the native canvas size; Ebitengine scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	n := g.state.Board.PixelSize()
	return n, n
}
