package anim

// Store is a map-backed Animator. Triggers stay latched until consumed by
// whoever drives the state machine.
type Store struct {
	bools    map[string]bool
	floats   map[string]float64
	triggers map[string]bool
}

func NewStore() *Store {
	return &Store{
		bools:    make(map[string]bool),
		floats:   make(map[string]float64),
		triggers: make(map[string]bool),
	}
}

func (s *Store) GetBool(name string) bool {
	if s == nil {
		return false
	}
	return s.bools[name]
}

func (s *Store) SetBool(name string, value bool) {
	if s == nil {
		return
	}
	s.bools[name] = value
}

func (s *Store) GetFloat(name string) float64 {
	if s == nil {
		return 0
	}
	return s.floats[name]
}

func (s *Store) SetFloat(name string, value float64) {
	if s == nil {
		return
	}
	s.floats[name] = value
}

func (s *Store) SetTrigger(name string) {
	if s == nil {
		return
	}
	s.triggers[name] = true
}

// ConsumeTrigger reports whether the trigger was set and clears it.
func (s *Store) ConsumeTrigger(name string) bool {
	if s == nil || !s.triggers[name] {
		return false
	}
	delete(s.triggers, name)
	return true
}
