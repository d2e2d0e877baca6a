package anim

// Parameter identifies an animator parameter. The set is closed; the key
// sent to the animator is always the identifier's text.
type Parameter int

const (
	Running Parameter = iota
	VerticalVelocity
	Jump

	parameterCount
)

var parameterNames = [parameterCount]string{
	Running:          "Running",
	VerticalVelocity: "VerticalVelocity",
	Jump:             "Jump",
}

func (p Parameter) String() string {
	if p < 0 || p >= parameterCount {
		return ""
	}
	return parameterNames[p]
}

// Parameters returns every declared parameter in declaration order.
func Parameters() []Parameter {
	out := make([]Parameter, 0, parameterCount)
	for p := Parameter(0); p < parameterCount; p++ {
		out = append(out, p)
	}
	return out
}

// Animator is the string-keyed parameter surface of an animation state machine.
type Animator interface {
	GetBool(name string) bool
	SetBool(name string, value bool)
	GetFloat(name string) float64
	SetFloat(name string, value float64)
	SetTrigger(name string)
}

// Params forwards typed parameter access to an Animator.
type Params struct {
	Animator Animator
}

func (p Params) Bool(param Parameter) bool {
	return p.Animator.GetBool(param.String())
}

func (p Params) SetBool(param Parameter, value bool) {
	p.Animator.SetBool(param.String(), value)
}

func (p Params) Float(param Parameter) float64 {
	return p.Animator.GetFloat(param.String())
}

func (p Params) SetFloat(param Parameter, value float64) {
	p.Animator.SetFloat(param.String(), value)
}

func (p Params) Trigger(param Parameter) {
	p.Animator.SetTrigger(param.String())
}
