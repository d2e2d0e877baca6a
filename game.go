package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/scene"
	"github.com/milk9111/platformer/timestep"
	"github.com/milk9111/platformer/ui"
	"go.uber.org/zap"
)

type Game struct {
	frames int
	debug  bool
	log    *zap.Logger

	clock   *timestep.Clock
	scenes  *scene.Manager
	hud     *ui.HUD
	watcher *prefabs.Watcher
}

func NewGame(levelIndex int, debug bool, log *zap.Logger) (*Game, error) {
	hud := ui.NewHUD()
	scenes, err := scene.NewManager(scene.Options{
		Input: input.NewKeyboard(),
		HUD:   hud,
		Log:   log,
	})
	if err != nil {
		return nil, err
	}
	if err := scenes.LoadNow(levelIndex); err != nil {
		return nil, err
	}

	g := &Game{
		debug:  debug,
		log:    log,
		clock:  timestep.NewClock(nil),
		scenes: scenes,
		hud:    hud,
	}

	if debug {
		w, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Warn("prefab hot reload disabled", zap.Error(err))
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	for _, name := range g.watcher.Drain() {
		if name != "player.yaml" {
			continue
		}
		if err := g.scenes.ReloadPlayerSpec(); err != nil {
			g.log.Warn("hot reload", zap.String("file", name), zap.Error(err))
		}
	}

	if err := g.scenes.Update(g.clock.Tick()); err != nil {
		return err
	}
	g.hud.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scenes.Draw(screen, g.debug)
	g.hud.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()), 10, common.BaseHeight-20)
	}
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
