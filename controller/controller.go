package controller

import (
	"math"

	"github.com/milk9111/platformer/anim"
	"github.com/milk9111/platformer/common"
	"go.uber.org/zap"
)

// Deps are the collaborators a Controller drives. All but Log are required.
type Deps struct {
	Body      Body
	Collider  Collider
	RayCaster RayCaster
	Animator  anim.Params
	Facing    Facing
	Score     Score
	WinPanel  WinPanel
	Scenes    Scenes
	Log       *zap.Logger
}

// Controller is a platformer character controller. FrameStep runs once per
// rendered frame, FixedStep once per physics step, and the On* callbacks
// whenever input or overlap events arrive between steps.
type Controller struct {
	cfg  Config
	deps Deps
	log  *zap.Logger

	direction  Vec2
	grounded   bool
	jumpBuffer float64
}

// New builds a controller and runs its initialization: the win panel is
// hidden and movement state is reset. Missing collaborators panic.
func New(cfg Config, deps Deps) *Controller {
	switch {
	case deps.Body == nil:
		panic("controller: nil body")
	case deps.Collider == nil:
		panic("controller: nil collider")
	case deps.RayCaster == nil:
		panic("controller: nil ray caster")
	case deps.Animator.Animator == nil:
		panic("controller: nil animator")
	case deps.Facing == nil:
		panic("controller: nil facing")
	case deps.Score == nil:
		panic("controller: nil score")
	case deps.WinPanel == nil:
		panic("controller: nil win panel")
	case deps.Scenes == nil:
		panic("controller: nil scenes")
	}

	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}

	c := &Controller{cfg: cfg, deps: deps, log: log}
	deps.WinPanel.Hide()
	c.reset()
	return c
}

func (c *Controller) reset() {
	c.direction = Vec2{}
	c.grounded = true
	c.jumpBuffer = 0
}

func (c *Controller) Config() Config { return c.cfg }

// SetConfig swaps tuning values without touching movement state.
func (c *Controller) SetConfig(cfg Config) { c.cfg = cfg }

func (c *Controller) Direction() Vec2 { return c.direction }

func (c *Controller) Grounded() bool { return c.grounded }

func (c *Controller) JumpBuffer() float64 { return c.jumpBuffer }

func (c *Controller) LevelComplete() bool { return c.deps.WinPanel.Visible() }

// FrameStep resolves horizontal movement and decays the jump buffer.
// dt is the elapsed frame time in seconds.
func (c *Controller) FrameStep(dt float64) {
	c.handleMovement(dt)
	c.updateJumpBuffer(dt)
}

func (c *Controller) handleMovement(dt float64) {
	v := c.deps.Body.Velocity()

	if !c.grounded && c.direction.X == 0 {
		// Not true exponential decay: the rate depends on frame time.
		v.X = common.Lerp(v.X, 0, dt)
	} else if c.grounded || v.Y < 0 {
		v.X = c.direction.X * c.cfg.Speed
	}

	c.deps.Body.SetVelocity(v)
}

func (c *Controller) updateJumpBuffer(dt float64) {
	if c.jumpBuffer > 0 {
		c.jumpBuffer -= dt
	}
}

// FixedStep refreshes the grounded flag, executes a buffered jump, picks the
// gravity scale and publishes vertical velocity to the animator.
func (c *Controller) FixedStep() {
	c.grounded = c.probeGround()

	if c.grounded && c.jumpBuffer > 0 {
		c.jump()
	}

	c.adjustGravityScale()

	c.deps.Animator.SetFloat(anim.VerticalVelocity, c.deps.Body.Velocity().Y)
}

func (c *Controller) probeGround() bool {
	origin := c.deps.Collider.BottomCenter()
	return c.deps.RayCaster.Raycast(origin, Down, c.cfg.RayLength, c.cfg.GroundLayer)
}

func (c *Controller) jump() {
	c.deps.Body.ApplyImpulse(Up.Scale(c.cfg.JumpForce))
	c.jumpBuffer = 0
}

func (c *Controller) adjustGravityScale() {
	if c.grounded {
		c.deps.Body.SetGravityScale(1)
		return
	}
	if c.deps.Body.Velocity().Y > c.cfg.RiseThreshold {
		c.deps.Body.SetGravityScale(c.cfg.LowJumpMultiplier)
	} else {
		c.deps.Body.SetGravityScale(c.cfg.FallMultiplier)
	}
}

// OnMove handles a move action change.
func (c *Controller) OnMove(ev MoveEvent) {
	if c.LevelComplete() {
		c.direction = Vec2{}
		c.deps.Animator.SetBool(anim.Running, false)
		return
	}

	switch ev.Phase {
	case PhasePerformed:
		c.direction = ev.Value
		c.deps.Facing.SetFacing(sign(c.direction.X))
	case PhaseCanceled:
		c.direction = Vec2{}
	}

	c.deps.Animator.SetBool(anim.Running, math.Abs(c.direction.X) > c.cfg.RunDeadzone)
}

// OnJump arms the jump buffer. Presses inside the window refresh it.
func (c *Controller) OnJump(ev JumpEvent) {
	if c.LevelComplete() {
		return
	}
	if ev.Phase == PhasePerformed {
		c.jumpBuffer = c.cfg.JumpBufferTime
	}
}

// OnTriggerEnter reacts to the start of a trigger-volume overlap.
func (c *Controller) OnTriggerEnter(t Trigger) {
	switch t.Tag {
	case TagCollectable:
		if t.Destroy != nil {
			t.Destroy()
		}
		c.deps.Score.Add(1)
		c.log.Debug("collected")
	case TagDoor:
		c.log.Info("level complete")
		c.deps.WinPanel.Show()
	case TagWater:
		index := c.deps.Scenes.Active()
		c.log.Info("reloading scene", zap.Int("index", index))
		c.deps.Scenes.Load(index)
	}
}

// sign returns -1 for negative values and +1 otherwise, zero included.
func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
