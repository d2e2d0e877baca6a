package anim

import "testing"

type recordingAnimator struct {
	calls []string
	bools map[string]bool
	vals  map[string]float64
}

func newRecordingAnimator() *recordingAnimator {
	return &recordingAnimator{bools: map[string]bool{}, vals: map[string]float64{}}
}

func (r *recordingAnimator) GetBool(name string) bool {
	r.calls = append(r.calls, "GetBool:"+name)
	return r.bools[name]
}

func (r *recordingAnimator) SetBool(name string, value bool) {
	r.calls = append(r.calls, "SetBool:"+name)
	r.bools[name] = value
}

func (r *recordingAnimator) GetFloat(name string) float64 {
	r.calls = append(r.calls, "GetFloat:"+name)
	return r.vals[name]
}

func (r *recordingAnimator) SetFloat(name string, value float64) {
	r.calls = append(r.calls, "SetFloat:"+name)
	r.vals[name] = value
}

func (r *recordingAnimator) SetTrigger(name string) {
	r.calls = append(r.calls, "SetTrigger:"+name)
}

func TestParameterNames(t *testing.T) {
	cases := []struct {
		param Parameter
		want  string
	}{
		{Running, "Running"},
		{VerticalVelocity, "VerticalVelocity"},
		{Jump, "Jump"},
		{parameterCount, ""},
		{Parameter(-1), ""},
	}
	for _, c := range cases {
		if got := c.param.String(); got != c.want {
			t.Fatalf("Parameter(%d).String() = %q, want %q", int(c.param), got, c.want)
		}
	}
	if got := len(Parameters()); got != 3 {
		t.Fatalf("expected 3 parameters, got %d", got)
	}
}

func TestParamsForwardsMappedKey(t *testing.T) {
	cases := []struct {
		name string
		call func(p Params)
		want string
	}{
		{"set_bool", func(p Params) { p.SetBool(Running, true) }, "SetBool:Running"},
		{"get_bool", func(p Params) { p.Bool(Running) }, "GetBool:Running"},
		{"set_float", func(p Params) { p.SetFloat(VerticalVelocity, 2) }, "SetFloat:VerticalVelocity"},
		{"get_float", func(p Params) { p.Float(VerticalVelocity) }, "GetFloat:VerticalVelocity"},
		{"trigger", func(p Params) { p.Trigger(Jump) }, "SetTrigger:Jump"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := newRecordingAnimator()
			c.call(Params{Animator: rec})
			if len(rec.calls) != 1 || rec.calls[0] != c.want {
				t.Fatalf("expected single call %q, got %v", c.want, rec.calls)
			}
		})
	}
}

func TestStoreRoundTrip(t *testing.T) {
	s := NewStore()
	p := Params{Animator: s}

	p.SetBool(Running, true)
	if !p.Bool(Running) {
		t.Fatalf("expected Running to be true")
	}
	p.SetFloat(VerticalVelocity, -3.5)
	if got := p.Float(VerticalVelocity); got != -3.5 {
		t.Fatalf("expected -3.5, got %v", got)
	}
	if s.GetFloat("Unknown") != 0 || s.GetBool("Unknown") {
		t.Fatalf("unknown keys should read as zero values")
	}

	p.Trigger(Jump)
	if !s.ConsumeTrigger("Jump") {
		t.Fatalf("expected latched trigger")
	}
	if s.ConsumeTrigger("Jump") {
		t.Fatalf("trigger should clear after consume")
	}
}
