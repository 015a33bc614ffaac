//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"formind/internal/app"
	"formind/internal/core"
	_ "formind/internal/sims/growth"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim, ok := factory(cfg.Params()).(app.Sim)
	if !ok {
		log.Fatalf("sim %q does not report LAI", cfg.Sim)
	}

	game := app.New(sim, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("formind — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
