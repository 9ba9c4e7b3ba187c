//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"yagol/internal/app"
	"yagol/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	settings, err := cfg.Resolve(flag.CommandLine)
	if err != nil {
		log.Fatal(err)
	}

	surface := app.NewWindowSurface(settings.WindowWidth, settings.WindowHeight)
	engine := life.New(app.EngineConfig(settings), surface)
	if err := engine.Initialize(); err != nil {
		log.Fatalf("initializing grid: %v", err)
	}
	game := app.New(app.NewSession(engine, settings.Paused), surface)

	ebiten.SetWindowTitle("yagol")
	ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
