package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/grid-painter/internal/config"
	"github.com/Garsondee/grid-painter/internal/editor"
	"github.com/Garsondee/grid-painter/internal/logger"
)

func main() {
	logger.Init()

	cfg, err := config.FromFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		logger.Log.WithError(err).Fatal("invalid configuration")
	}
	g, err := editor.New(cfg, logger.Log)
	if err != nil {
		logger.Log.WithError(err).Fatal("editor setup failed")
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(g.Size())
	if err := ebiten.RunGame(g); err != nil {
		logger.Log.WithError(err).Fatal("editor exited")
	}
}
