package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"yagol/internal/app"
	"yagol/internal/term"
	"yagol/pkg/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	settings, err := cfg.Resolve(flag.CommandLine)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err = screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	screen.EnableMouse()

	engine := life.New(app.EngineConfig(settings), term.NewSurface(screen))
	if err := engine.Initialize(); err != nil && !errors.Is(err, life.ErrNoSurface) {
		screen.Fini()
		log.Fatalf("initializing grid: %v", err)
	}
	host := term.NewHost(screen, app.NewSession(engine, settings.Paused))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = host.Run(ctx)
	stop()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
