package main

import (
	"log"
	"os"

	"pacman/internal/config"
	"pacman/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Load(".env", os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("grid=%d cell=%v speed=%v style=%s audio=%v", cfg.GridSize, cfg.CellSize, cfg.Speed, cfg.PlayerStyle, cfg.EnableAudio)

	g := game.New(cfg)
	g.FitToDisplay(ebiten.ScreenSizeInFullscreen())
	ebiten.SetWindowTitle("Pacman (Go + Ebiten)")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowSize(g.ScreenWidth(), g.ScreenHeight())
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
