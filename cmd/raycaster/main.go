//go:build ebiten

package main

import (
	"errors"
	"flag"

	"raycast-dda/internal/app"
	"raycast-dda/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		logging.Fatal("bad flags", "err", err)
	}
	lvl, _ := logging.ParseLevel(cfg.LogLevel)
	logging.SetLevel(lvl)

	scene, err := app.LoadScene(cfg)
	if err != nil {
		logging.Fatal("could not load level", "level", cfg.Level, "err", err)
	}
	game := app.New(cfg, scene)

	ebiten.SetWindowTitle("raycast-dda - " + scene.Level().Name)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logging.Fatal("game stopped", "err", err)
	}
}
