package controller

import (
	"math"
	"testing"

	"github.com/milk9111/platformer/anim"
)

type fakeBody struct {
	vel      Vec2
	gravity  float64
	impulses []Vec2
}

func (b *fakeBody) Velocity() Vec2               { return b.vel }
func (b *fakeBody) SetVelocity(v Vec2)           { b.vel = v }
func (b *fakeBody) GravityScale() float64        { return b.gravity }
func (b *fakeBody) SetGravityScale(scale float64) { b.gravity = scale }
func (b *fakeBody) ApplyImpulse(impulse Vec2) {
	b.impulses = append(b.impulses, impulse)
	b.vel.X += impulse.X
	b.vel.Y += impulse.Y
}

type fakeCollider struct{ bottom Vec2 }

func (c fakeCollider) BottomCenter() Vec2 { return c.bottom }

type fakeRay struct {
	hit        bool
	lastOrigin Vec2
	lastDir    Vec2
	lastDist   float64
	lastMask   LayerMask
}

func (r *fakeRay) Raycast(origin, dir Vec2, distance float64, mask LayerMask) bool {
	r.lastOrigin, r.lastDir, r.lastDist, r.lastMask = origin, dir, distance, mask
	return r.hit
}

type fakeFacing struct{ sign float64 }

func (f *fakeFacing) SetFacing(sign float64) { f.sign = sign }

type fakePanel struct {
	visible bool
	hides   int
}

func (p *fakePanel) Show()         { p.visible = true }
func (p *fakePanel) Hide()         { p.visible = false; p.hides++ }
func (p *fakePanel) Visible() bool { return p.visible }

type fakeScenes struct {
	active int
	loads  []int
}

func (s *fakeScenes) Active() int    { return s.active }
func (s *fakeScenes) Load(index int) { s.loads = append(s.loads, index) }

type rig struct {
	c      *Controller
	body   *fakeBody
	ray    *fakeRay
	facing *fakeFacing
	panel  *fakePanel
	scenes *fakeScenes
	score  *Counter
	params *anim.Store
}

func newRig(t *testing.T) *rig {
	t.Helper()
	r := &rig{
		body:   &fakeBody{gravity: 1},
		ray:    &fakeRay{},
		facing: &fakeFacing{sign: 1},
		panel:  &fakePanel{visible: true},
		scenes: &fakeScenes{active: 3},
		score:  &Counter{},
		params: anim.NewStore(),
	}
	r.c = New(DefaultConfig(), Deps{
		Body:      r.body,
		Collider:  fakeCollider{bottom: Vec2{X: 1, Y: -0.5}},
		RayCaster: r.ray,
		Animator:  anim.Params{Animator: r.params},
		Facing:    r.facing,
		Score:     r.score,
		WinPanel:  r.panel,
		Scenes:    r.scenes,
	})
	return r
}

func (r *rig) airborne() {
	r.ray.hit = false
	r.c.FixedStep()
}

func TestNewInitializes(t *testing.T) {
	r := newRig(t)
	if r.panel.visible || r.panel.hides != 1 {
		t.Fatalf("expected win panel hidden once, visible=%v hides=%d", r.panel.visible, r.panel.hides)
	}
	if !r.c.Grounded() || !r.c.Direction().IsZero() || r.c.JumpBuffer() != 0 {
		t.Fatalf("unexpected initial state grounded=%v dir=%v buffer=%v", r.c.Grounded(), r.c.Direction(), r.c.JumpBuffer())
	}
}

func TestNewPanicsOnMissingDeps(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for missing body")
		}
	}()
	New(DefaultConfig(), Deps{})
}

func TestGroundProbeUsesColliderBottom(t *testing.T) {
	r := newRig(t)
	r.ray.hit = true
	r.c.FixedStep()

	cfg := r.c.Config()
	if r.ray.lastOrigin != (Vec2{X: 1, Y: -0.5}) || r.ray.lastDir != Down {
		t.Fatalf("unexpected ray origin=%v dir=%v", r.ray.lastOrigin, r.ray.lastDir)
	}
	if r.ray.lastDist != cfg.RayLength || r.ray.lastMask != cfg.GroundLayer {
		t.Fatalf("unexpected ray length=%v mask=%v", r.ray.lastDist, r.ray.lastMask)
	}
	if !r.c.Grounded() {
		t.Fatalf("expected grounded after hit")
	}
}

func TestJumpBufferDecays(t *testing.T) {
	r := newRig(t)
	r.airborne()
	r.c.OnJump(JumpEvent{Phase: PhasePerformed})

	prev := r.c.JumpBuffer()
	for _, dt := range []float64{0, 0.01, 0.03, 0.016, 0.05, 0.2} {
		r.c.FrameStep(dt)
		if got := r.c.JumpBuffer(); got > prev {
			t.Fatalf("buffer increased from %v to %v with dt=%v", prev, got, dt)
		}
		prev = r.c.JumpBuffer()
	}
	if prev > 0 {
		t.Fatalf("expected expired buffer, got %v", prev)
	}

	// Once expired it stops decaying.
	r.c.FrameStep(1)
	if r.c.JumpBuffer() != prev {
		t.Fatalf("expired buffer should stay put, got %v", r.c.JumpBuffer())
	}
}

func TestJumpBufferRefreshIsNotAdditive(t *testing.T) {
	r := newRig(t)
	r.airborne()
	window := r.c.Config().JumpBufferTime

	r.c.OnJump(JumpEvent{Phase: PhasePerformed})
	r.c.FrameStep(0.05)
	r.c.OnJump(JumpEvent{Phase: PhasePerformed})
	if got := r.c.JumpBuffer(); got != window {
		t.Fatalf("expected refresh to %v, got %v", window, got)
	}
	r.c.OnJump(JumpEvent{Phase: PhasePerformed})
	if got := r.c.JumpBuffer(); got != window {
		t.Fatalf("expected repeated press to stay at %v, got %v", window, got)
	}

	r.c.OnJump(JumpEvent{Phase: PhaseStarted})
	r.c.OnJump(JumpEvent{Phase: PhaseCanceled})
	if got := r.c.JumpBuffer(); got != window {
		t.Fatalf("non-performed phases must not touch the buffer, got %v", got)
	}
}

func TestBufferedJumpWindow(t *testing.T) {
	cases := []struct {
		name   string
		frames int
		want   bool
	}{
		{"lands_after_150ms", 3, true},
		{"lands_after_250ms", 5, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newRig(t)
			r.airborne()
			r.c.OnJump(JumpEvent{Phase: PhasePerformed})
			for i := 0; i < c.frames; i++ {
				r.c.FrameStep(0.05)
			}

			r.ray.hit = true
			r.c.FixedStep()

			jumped := len(r.body.impulses) == 1
			if jumped != c.want {
				t.Fatalf("jumped=%v want %v (buffer=%v)", jumped, c.want, r.c.JumpBuffer())
			}
			if jumped {
				if r.body.impulses[0] != (Vec2{Y: r.c.Config().JumpForce}) {
					t.Fatalf("unexpected impulse %v", r.body.impulses[0])
				}
				if r.c.JumpBuffer() != 0 {
					t.Fatalf("buffer should reset to exactly 0, got %v", r.c.JumpBuffer())
				}
			}
		})
	}
}

func TestAirborneDampingIsMonotonic(t *testing.T) {
	r := newRig(t)
	r.airborne()
	r.body.vel = Vec2{X: 4, Y: 2}

	prev := math.Abs(r.body.vel.X)
	for i := 0; i < 30; i++ {
		r.c.FrameStep(1.0 / 60.0)
		cur := math.Abs(r.body.vel.X)
		if !(cur < prev) {
			t.Fatalf("frame %d: |vx| did not decrease (%v -> %v)", i, prev, cur)
		}
		prev = cur
	}
	if r.body.vel.Y != 2 {
		t.Fatalf("damping must not touch vertical velocity, got %v", r.body.vel.Y)
	}
}

func TestDampingMatchesLerp(t *testing.T) {
	r := newRig(t)
	r.airborne()
	r.body.vel = Vec2{X: -3, Y: 1}
	r.c.FrameStep(0.1)
	if got, want := r.body.vel.X, -3+(0-(-3))*0.1; math.Abs(got-want) > 1e-12 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestHorizontalVelocity(t *testing.T) {
	cases := []struct {
		name     string
		grounded bool
		vel      Vec2
		dirX     float64
		wantX    float64
	}{
		{"grounded_moving", true, Vec2{X: 0, Y: 0}, 1, 5},
		{"grounded_idle_stops", true, Vec2{X: 3, Y: 0}, 0, 0},
		{"falling_steers", false, Vec2{X: 0, Y: -1}, -1, -5},
		{"rising_keeps_momentum", false, Vec2{X: 2, Y: 3}, -1, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newRig(t)
			r.ray.hit = c.grounded
			r.c.FixedStep()
			r.c.OnMove(MoveEvent{Phase: PhasePerformed, Value: Vec2{X: c.dirX}})
			if c.dirX == 0 {
				r.c.OnMove(MoveEvent{Phase: PhaseCanceled})
			}
			r.body.vel = c.vel
			r.c.FrameStep(1.0 / 60.0)
			if r.body.vel.X != c.wantX {
				t.Fatalf("vx=%v want %v", r.body.vel.X, c.wantX)
			}
		})
	}
}

func TestGravityScale(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		name     string
		grounded bool
		vy       float64
		want     float64
	}{
		{"grounded_rising", true, 10, 1},
		{"grounded_falling", true, -10, 1},
		{"rising", false, 3, cfg.LowJumpMultiplier},
		{"at_threshold", false, cfg.RiseThreshold, cfg.FallMultiplier},
		{"apex", false, 0, cfg.FallMultiplier},
		{"falling", false, -4, cfg.FallMultiplier},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newRig(t)
			r.body.gravity = 42
			r.body.vel = Vec2{Y: c.vy}
			r.ray.hit = c.grounded
			r.c.FixedStep()
			if r.body.gravity != c.want {
				t.Fatalf("gravity scale %v want %v", r.body.gravity, c.want)
			}
		})
	}
}

func TestFixedStepPublishesVerticalVelocity(t *testing.T) {
	r := newRig(t)
	r.body.vel = Vec2{Y: -7.5}
	r.airborne()
	if got := r.params.GetFloat("VerticalVelocity"); got != -7.5 {
		t.Fatalf("VerticalVelocity=%v want -7.5", got)
	}
	if r.params.ConsumeTrigger("Jump") {
		t.Fatalf("Jump trigger is never fired by the controller")
	}
}

func TestOnMove(t *testing.T) {
	cases := []struct {
		name        string
		events      []MoveEvent
		wantDir     Vec2
		wantFacing  float64
		wantRunning bool
	}{
		{"right", []MoveEvent{{PhasePerformed, Vec2{X: 1}}}, Vec2{X: 1}, 1, true},
		{"left", []MoveEvent{{PhasePerformed, Vec2{X: -1}}}, Vec2{X: -1}, -1, true},
		{"inside_deadzone", []MoveEvent{{PhasePerformed, Vec2{X: -0.05}}}, Vec2{X: -0.05}, -1, false},
		{"vertical_only_faces_right", []MoveEvent{{PhasePerformed, Vec2{X: -1}}, {PhasePerformed, Vec2{Y: 1}}}, Vec2{Y: 1}, 1, false},
		{"canceled", []MoveEvent{{PhasePerformed, Vec2{X: -1}}, {PhaseCanceled, Vec2{X: -1}}}, Vec2{}, -1, false},
		{"started_ignored", []MoveEvent{{PhasePerformed, Vec2{X: 1}}, {PhaseStarted, Vec2{X: -1}}}, Vec2{X: 1}, 1, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newRig(t)
			for _, ev := range c.events {
				r.c.OnMove(ev)
			}
			if r.c.Direction() != c.wantDir {
				t.Fatalf("direction=%v want %v", r.c.Direction(), c.wantDir)
			}
			if r.facing.sign != c.wantFacing {
				t.Fatalf("facing=%v want %v", r.facing.sign, c.wantFacing)
			}
			if got := r.params.GetBool("Running"); got != c.wantRunning {
				t.Fatalf("Running=%v want %v", got, c.wantRunning)
			}
		})
	}
}

func TestLevelCompleteGatesInput(t *testing.T) {
	r := newRig(t)
	r.c.OnMove(MoveEvent{Phase: PhasePerformed, Value: Vec2{X: 1}})
	r.c.OnTriggerEnter(Trigger{Tag: TagDoor})
	if !r.c.LevelComplete() || !r.panel.visible {
		t.Fatalf("expected level complete after door")
	}

	r.c.OnMove(MoveEvent{Phase: PhasePerformed, Value: Vec2{X: -1}})
	if !r.c.Direction().IsZero() {
		t.Fatalf("direction should be forced to zero, got %v", r.c.Direction())
	}
	if r.params.GetBool("Running") {
		t.Fatalf("Running should be forced false")
	}
	if r.facing.sign != 1 {
		t.Fatalf("facing must ignore payload after completion, got %v", r.facing.sign)
	}

	r.c.OnJump(JumpEvent{Phase: PhasePerformed})
	if r.c.JumpBuffer() != 0 {
		t.Fatalf("jump should be ignored, buffer=%v", r.c.JumpBuffer())
	}

	r.body.vel = Vec2{}
	r.c.FrameStep(1.0 / 60.0)
	if r.body.vel.X != 0 {
		t.Fatalf("no velocity change expected, got %v", r.body.vel)
	}
}

func TestCollectablesIncrementScore(t *testing.T) {
	r := newRig(t)
	if r.score.Text() != "0" {
		t.Fatalf("expected initial label 0, got %q", r.score.Text())
	}

	destroyed := 0
	destroy := func() { destroyed++ }

	r.c.OnTriggerEnter(Trigger{Tag: TagCollectable, Destroy: destroy})
	if r.score.Text() != "1" {
		t.Fatalf("expected 1, got %q", r.score.Text())
	}
	r.c.OnTriggerEnter(Trigger{Tag: TagCollectable, Destroy: destroy})
	if r.score.Text() != "2" || r.score.Value() != 2 {
		t.Fatalf("expected 2, got %q", r.score.Text())
	}
	if destroyed != 2 {
		t.Fatalf("expected both collectables destroyed, got %d", destroyed)
	}

	r.c.OnTriggerEnter(Trigger{Tag: TagCollectable})
	if r.score.Value() != 3 {
		t.Fatalf("nil destroy should still score, got %d", r.score.Value())
	}
}

func TestWaterReloadsActiveScene(t *testing.T) {
	r := newRig(t)
	r.c.OnTriggerEnter(Trigger{Tag: TagWater})
	if len(r.scenes.loads) != 1 || r.scenes.loads[0] != 3 {
		t.Fatalf("expected reload of scene 3, got %v", r.scenes.loads)
	}
}

func TestUnknownTagIgnored(t *testing.T) {
	r := newRig(t)
	r.c.OnTriggerEnter(Trigger{Tag: "Ground"})
	if r.score.Value() != 0 || r.panel.visible || len(r.scenes.loads) != 0 {
		t.Fatalf("unknown tag should have no effect")
	}
}
