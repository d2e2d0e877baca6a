package scene

import (
	"fmt"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/controller"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/physics"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/timestep"
	"go.uber.org/zap"
)

// HUD is the scene's UI: the score label and the win panel.
type HUD interface {
	controller.WinPanel
	SetScore(text string)
}

type Options struct {
	Input input.Source
	HUD   HUD
	Log   *zap.Logger
	// Levels holds the scene files; nil uses the embedded levels.
	Levels fs.FS
	// Gravity overrides physics.DefaultGravity when non-zero.
	Gravity float64
}

// Manager owns the active scene: its ECS world, physics space and the
// schedulers that step them. It implements controller.Scenes; Load requests
// take effect at the end of the current Update.
type Manager struct {
	opts Options
	log  *zap.Logger

	playerSpec   *prefabs.PlayerSpec
	cameraSpec   *prefabs.CameraSpec
	triggerSpecs prefabs.TriggersSpec

	active  int
	world   *ecs.World
	physics *physics.World
	acc     *timestep.Accumulator

	sceneEntity ecs.Entity
	player      ecs.Entity

	frameInput *ecs.Scheduler
	fixed      *ecs.Scheduler
	frame      *ecs.Scheduler
	render     *system.RenderSystem
}

func NewManager(opts Options) (*Manager, error) {
	if opts.HUD == nil {
		return nil, fmt.Errorf("scene: nil hud")
	}
	if opts.Levels == nil {
		opts.Levels = levels.LevelsFS
	}
	if opts.Gravity == 0 {
		opts.Gravity = physics.DefaultGravity
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	m := &Manager{opts: opts, log: log, render: system.NewRenderSystem()}
	if err := m.loadSpecs(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manager) loadSpecs() error {
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	triggerSpecs, err := prefabs.LoadTriggersSpec()
	if err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	m.playerSpec = playerSpec
	m.cameraSpec = cameraSpec
	m.triggerSpecs = triggerSpecs
	return nil
}

// Active returns the build index of the loaded scene.
func (m *Manager) Active() int {
	return m.active
}

// Load queues a (re)load of the scene with the given build index.
func (m *Manager) Load(index int) {
	if m.world == nil || !m.world.IsAlive(m.sceneEntity) {
		if err := m.LoadNow(index); err != nil {
			m.log.Error("load scene", zap.Int("index", index), zap.Error(err))
		}
		return
	}
	if err := ecs.Add(m.world, m.sceneEntity, component.ReloadRequestComponent.Kind(), &component.ReloadRequest{Index: index}); err != nil {
		m.log.Error("queue scene reload", zap.Int("index", index), zap.Error(err))
	}
}

// SceneCount returns the number of scenes available.
func (m *Manager) SceneCount() int {
	names, err := levels.NamesIn(m.opts.Levels)
	if err != nil {
		return 0
	}
	return len(names)
}

// LoadNow discards the current scene and builds the one at index.
func (m *Manager) LoadNow(index int) error {
	lvl, err := levels.LoadFrom(m.opts.Levels, index)
	if err != nil {
		return fmt.Errorf("scene: load %d: %w", index, err)
	}
	layout, err := lvl.Parse()
	if err != nil {
		return fmt.Errorf("scene: load %d: %w", index, err)
	}

	w := ecs.NewWorld()
	pw := physics.NewWorld(m.opts.Gravity)

	if err := entity.LoadLevelToWorld(w, pw, layout, m.triggerSpecs); err != nil {
		return fmt.Errorf("scene: load %d: %w", index, err)
	}
	_, counter, err := entity.NewScore(w)
	if err != nil {
		return fmt.Errorf("scene: load %d: %w", index, err)
	}

	player, err := entity.NewPlayerAt(w, pw, m.playerSpec, layout.Spawn.X, layout.Spawn.Y, entity.PlayerDeps{
		Score:    counter,
		WinPanel: m.opts.HUD,
		Scenes:   m,
		Log:      m.log,
	})
	if err != nil {
		return fmt.Errorf("scene: load %d: %w", index, err)
	}
	if _, err := entity.NewCameraAt(w, m.cameraSpec, layout.Spawn.X, layout.Spawn.Y); err != nil {
		return fmt.Errorf("scene: load %d: %w", index, err)
	}

	m.world = w
	m.active = index
	m.physics = pw
	m.player = player
	m.sceneEntity = ecs.CreateEntity(w)
	m.acc = timestep.NewAccumulator(timestep.FixedDelta)

	m.frameInput = ecs.NewScheduler(system.NewInputSystem(m.opts.Input))
	m.fixed = ecs.NewScheduler(
		system.NewPlayerPhysicsSystem(),
		system.NewPhysicsSystem(pw),
		system.NewTriggerSystem(pw, m.log),
	)
	m.frame = ecs.NewScheduler(
		system.NewPlayerControllerSystem(),
		system.NewAnimationSystem(),
		system.NewCameraSystem(),
		system.NewScoreSystem(m.opts.HUD),
	)

	m.log.Info("scene loaded",
		zap.Int("index", index),
		zap.String("name", lvl.Name),
		zap.Int("solids", len(layout.Solids)),
		zap.Int("triggers", len(layout.Triggers)),
	)
	return nil
}

// Update advances the scene by one rendered frame of dt seconds: input, the
// fixed physics steps due, then the per-frame systems. A queued reload runs
// last.
func (m *Manager) Update(dt float64) error {
	if m.world == nil {
		return fmt.Errorf("scene: no scene loaded")
	}
	w := m.world

	m.frameInput.Update(w, dt)

	steps := m.acc.Advance(dt)
	for i := 0; i < steps && !m.reloadPending(); i++ {
		m.fixed.Update(w, m.acc.Step)
	}

	m.frame.Update(w, dt)

	if m.opts.HUD.Visible() && m.confirmPressed() {
		if n := m.SceneCount(); n > 0 {
			m.Load((m.active + 1) % n)
		}
	}

	if req, ok := ecs.Get(w, m.sceneEntity, component.ReloadRequestComponent.Kind()); ok {
		if err := m.LoadNow(req.Index); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) reloadPending() bool {
	return ecs.Has(m.world, m.sceneEntity, component.ReloadRequestComponent.Kind())
}

func (m *Manager) confirmPressed() bool {
	in, ok := ecs.Get(m.world, m.player, component.InputComponent.Kind())
	return ok && in.Confirm
}

// ReloadPlayerSpec re-reads player.yaml and applies its movement values to
// the live controller.
func (m *Manager) ReloadPlayerSpec() error {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return fmt.Errorf("scene: reload player: %w", err)
	}
	cfg, err := spec.Movement.ControllerConfig()
	if err != nil {
		return fmt.Errorf("scene: reload player: %w", err)
	}
	m.playerSpec = spec
	if c := m.Controller(); c != nil {
		c.SetConfig(cfg)
	}
	m.log.Info("player spec reloaded")
	return nil
}

func (m *Manager) Draw(screen *ebiten.Image, debug bool) {
	if m.world == nil {
		return
	}
	m.render.Draw(m.world, screen)
	if debug {
		system.DrawPhysicsDebug(m.physics.Space(), m.world, screen)
		system.DrawPlayerStateDebug(m.world, screen)
	}
}

func (m *Manager) World() *ecs.World { return m.world }

func (m *Manager) Physics() *physics.World { return m.physics }

func (m *Manager) Player() ecs.Entity { return m.player }

// Controller returns the player's controller, or nil when no scene is loaded.
func (m *Manager) Controller() *controller.Controller {
	p, ok := ecs.Get(m.world, m.player, component.PlayerComponent.Kind())
	if !ok {
		return nil
	}
	return p.Controller
}
