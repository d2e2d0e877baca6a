package input

import (
	"testing"

	"github.com/milk9111/platformer/controller"
)

type recorder struct {
	moves []controller.MoveEvent
	jumps []controller.JumpEvent
}

func (r *recorder) OnMove(ev controller.MoveEvent) { r.moves = append(r.moves, ev) }
func (r *recorder) OnJump(ev controller.JumpEvent) { r.jumps = append(r.jumps, ev) }

func (r *recorder) reset() {
	r.moves = nil
	r.jumps = nil
}

func move(x float64) State {
	return State{Move: controller.Vec2{X: x}}
}

func TestTrackerMoveEvents(t *testing.T) {
	tests := []struct {
		name   string
		states []State
		want   []controller.MoveEvent
	}{
		{
			name:   "idle",
			states: []State{move(0), move(0)},
		},
		{
			name:   "press_and_hold",
			states: []State{move(1), move(1), move(1)},
			want: []controller.MoveEvent{
				{Phase: controller.PhaseStarted, Value: controller.Vec2{X: 1}},
				{Phase: controller.PhasePerformed, Value: controller.Vec2{X: 1}},
			},
		},
		{
			name:   "change_direction",
			states: []State{move(1), move(-0.5)},
			want: []controller.MoveEvent{
				{Phase: controller.PhaseStarted, Value: controller.Vec2{X: 1}},
				{Phase: controller.PhasePerformed, Value: controller.Vec2{X: 1}},
				{Phase: controller.PhasePerformed, Value: controller.Vec2{X: -0.5}},
			},
		},
		{
			name:   "release",
			states: []State{move(-1), move(0), move(0)},
			want: []controller.MoveEvent{
				{Phase: controller.PhaseStarted, Value: controller.Vec2{X: -1}},
				{Phase: controller.PhasePerformed, Value: controller.Vec2{X: -1}},
				{Phase: controller.PhaseCanceled},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var tr Tracker
			rec := &recorder{}
			for _, s := range tc.states {
				tr.Dispatch(s, rec)
			}
			if len(rec.moves) != len(tc.want) {
				t.Fatalf("expected %d events, got %+v", len(tc.want), rec.moves)
			}
			for i, ev := range tc.want {
				if rec.moves[i] != ev {
					t.Fatalf("event %d: expected %+v, got %+v", i, ev, rec.moves[i])
				}
			}
		})
	}
}

func TestTrackerJumpEvents(t *testing.T) {
	var tr Tracker
	rec := &recorder{}

	tr.Dispatch(State{Jump: true, JumpPressed: true}, rec)
	if len(rec.jumps) != 2 || rec.jumps[1].Phase != controller.PhasePerformed {
		t.Fatalf("expected started+performed, got %+v", rec.jumps)
	}

	rec.reset()
	tr.Dispatch(State{Jump: true}, rec)
	if len(rec.jumps) != 0 {
		t.Fatalf("holding jump should not emit, got %+v", rec.jumps)
	}

	tr.Dispatch(State{}, rec)
	if len(rec.jumps) != 1 || rec.jumps[0].Phase != controller.PhaseCanceled {
		t.Fatalf("expected canceled on release, got %+v", rec.jumps)
	}

	rec.reset()
	tr.Dispatch(State{}, rec)
	if len(rec.jumps) != 0 {
		t.Fatalf("expected no events while idle, got %+v", rec.jumps)
	}
}

func TestTrackerReset(t *testing.T) {
	var tr Tracker
	rec := &recorder{}
	tr.Dispatch(move(1), rec)
	tr.Reset()
	rec.reset()
	tr.Dispatch(move(1), rec)
	if len(rec.moves) != 2 {
		t.Fatalf("expected move to fire again after reset, got %+v", rec.moves)
	}
	tr.Dispatch(move(1), nil)
}
