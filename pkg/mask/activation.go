package mask

// ActivationState is the active/inactive state machine of a mask.
//
//	              enter / focus
//	Inactive ───────────────────► Active
//	    ▲                            │
//	    └────────────────────────────┘
//	              leave / blur
//
// Enter and leave apply in hover and pointer modes, focus and blur in focus
// mode. In always mode the mask starts and stays active. A controlled value,
// when present, decides the reported state outright; events still notify.
type ActivationState struct {
	mode         Activation
	uncontrolled bool
	controlled   *bool
	notify       func(active bool)
}

// NewActivationState returns a state machine in its initial state for mode.
func NewActivationState(mode Activation, controlled *bool, notify func(bool)) *ActivationState {
	return &ActivationState{
		mode:         mode,
		uncontrolled: mode == ActivationAlways,
		controlled:   controlled,
		notify:       notify,
	}
}

// Active returns the effective state.
func (s *ActivationState) Active() bool {
	if s.controlled != nil {
		return *s.controlled
	}
	if s.mode == ActivationAlways {
		return true
	}
	return s.uncontrolled
}

// Mode returns the activation mode.
func (s *ActivationState) Mode() Activation {
	return s.mode
}

// Controlled reports whether a controlled value overrides the mode.
func (s *ActivationState) Controlled() bool {
	return s.controlled != nil
}

// SetMode switches modes and resets the uncontrolled state to the new
// mode's initial state. Setting the current mode is a no-op.
func (s *ActivationState) SetMode(mode Activation) {
	if mode == s.mode {
		return
	}
	s.mode = mode
	s.uncontrolled = mode == ActivationAlways
}

// SetControlled replaces the controlled value. nil returns control to the mode.
func (s *ActivationState) SetControlled(active *bool) {
	if active == nil {
		s.controlled = nil
		return
	}
	v := *active
	s.controlled = &v
}

// SetNotify replaces the transition callback.
func (s *ActivationState) SetNotify(fn func(bool)) {
	s.notify = fn
}

// PointerEnter handles the pointer entering the container.
func (s *ActivationState) PointerEnter() bool {
	if s.tracksPointer() {
		s.set(true)
	}
	return s.Active()
}

// PointerLeave handles the pointer leaving the container.
func (s *ActivationState) PointerLeave() bool {
	if s.tracksPointer() {
		s.set(false)
	}
	return s.Active()
}

// Focus handles the container gaining focus.
func (s *ActivationState) Focus() bool {
	if s.mode == ActivationFocus {
		s.set(true)
	}
	return s.Active()
}

// Blur handles the container losing focus.
func (s *ActivationState) Blur() bool {
	if s.mode == ActivationFocus {
		s.set(false)
	}
	return s.Active()
}

// Focusable reports whether the container should accept focus by default.
func (s *ActivationState) Focusable() bool {
	return s.mode == ActivationFocus
}

func (s *ActivationState) tracksPointer() bool {
	return s.mode == ActivationHover || s.mode == ActivationPointer
}

func (s *ActivationState) set(next bool) {
	if s.controlled == nil {
		s.uncontrolled = next
	}
	if s.notify != nil {
		s.notify(next)
	}
}
