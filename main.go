package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/logging"
	"go.uber.org/zap"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "", "level name in levels/ (basename, .json optional)")
	logFile := flag.String("log", "", "write logs to a rotated file instead of stderr")
	flag.Parse()

	logger := logging.New(logging.Options{Debug: *debug, File: *logFile})
	defer func() { _ = logger.Sync() }()

	levelIndex := 0
	if *levelName != "" {
		idx, err := levels.Index(*levelName)
		if err != nil {
			logger.Fatal("unknown level", zap.String("level", *levelName), zap.Error(err))
		}
		levelIndex = idx
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("platformer")
	ebiten.SetTPS(ebiten.SyncWithFPS)

	game, err := NewGame(levelIndex, *debug, logger)
	if err != nil {
		logger.Fatal("init game", zap.Error(err))
	}
	defer game.Close()

	logger.Info("starting", zap.Int("level", levelIndex), zap.Bool("debug", *debug))
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("run game", zap.Error(err))
	}
}
