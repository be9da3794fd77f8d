package framepress

import "time"

// Binding maps one host input to the control it activates. Tracker
// constructors take an ordered list of bindings; when the same input appears
// more than once, the earliest binding wins.
type Binding[I, C comparable] struct {
	Input   I
	Control C
}

// controls is the state shared by all tracker variants: the input-to-control
// configuration, the press-time table, and the query surface. Tracker types
// embed it and supply their own ingestion protocol.
type controls[I, C comparable] struct {
	// config maps inputs to the controls they activate.
	config map[I]C

	// times records how many consecutive frames each control has been
	// active, including the current one. Zero means up.
	times map[C]uint32

	hooks   *HookManager[C]
	metrics *Metrics
}

func newControls[I, C comparable](bindings []Binding[I, C]) controls[I, C] {
	config := make(map[I]C, len(bindings))
	for _, b := range bindings {
		// First occurrence wins on duplicate inputs. This must stay an
		// explicit insert-if-absent pass; plain assignment would silently
		// turn it into last-wins.
		if _, bound := config[b.Input]; !bound {
			config[b.Input] = b.Control
		}
	}
	return controls[I, C]{
		config: config,
		times:  make(map[C]uint32, len(config)),
	}
}

// advance applies the per-frame transition rule: every configured control
// that is active this frame has its press time incremented by one, every
// other configured control resets to zero. A control reachable from several
// inputs advances once, not once per input.
func (s *controls[I, C]) advance(active func(C) bool) {
	var start time.Time
	if s.metrics != nil {
		start = time.Now()
	}

	seen := make(map[C]struct{}, len(s.times))
	for _, ctrl := range s.config {
		if _, dup := seen[ctrl]; dup {
			continue
		}
		seen[ctrl] = struct{}{}

		prev := s.times[ctrl]
		if active(ctrl) {
			s.times[ctrl] = prev + 1
			if prev == 0 {
				s.firePressed(ctrl)
			}
		} else {
			s.times[ctrl] = 0
			if prev > 0 {
				s.fireReleased(ctrl, prev)
			}
		}
	}

	if s.metrics != nil {
		s.metrics.RecordFrame(time.Since(start))
	}
}

func (s *controls[I, C]) firePressed(ctrl C) {
	if s.hooks == nil {
		return
	}
	s.hooks.RunPressed(ctrl)
	if s.metrics != nil {
		s.metrics.RecordHookFire()
	}
}

func (s *controls[I, C]) fireReleased(ctrl C, held uint32) {
	if s.hooks == nil {
		return
	}
	s.hooks.RunReleased(ctrl, held)
	if s.metrics != nil {
		s.metrics.RecordHookFire()
	}
}

// PressTime returns how many consecutive frames the control has been active,
// including the current one. Controls that are unmapped, or that were not
// active during the most recent Update, report zero.
func (s *controls[I, C]) PressTime(ctrl C) uint32 {
	return s.times[ctrl]
}

// IsDown reports whether the control was active during the most recent Update.
func (s *controls[I, C]) IsDown(ctrl C) bool {
	return s.times[ctrl] >= 1
}

// IsUp reports whether the control was not active during the most recent
// Update.
func (s *controls[I, C]) IsUp(ctrl C) bool {
	return s.times[ctrl] == 0
}

// JustPressed reports whether the control went down on exactly this frame.
// It is false on every later frame of a continuous hold.
func (s *controls[I, C]) JustPressed(ctrl C) bool {
	return s.times[ctrl] == 1
}

// Config returns the live input-to-control map for runtime rebinding.
// Mutations take effect on the next Update. Press times already accrued for
// controls removed from the configuration are not fixed up; pair live
// rebinding with ClearInputs.
func (s *controls[I, C]) Config() map[I]C {
	return s.config
}

// Bind maps input to ctrl, replacing any existing mapping for input.
func (s *controls[I, C]) Bind(input I, ctrl C) {
	s.config[input] = ctrl
}

// Unbind removes the mapping for input, reporting whether one existed.
func (s *controls[I, C]) Unbind(input I) bool {
	if _, bound := s.config[input]; !bound {
		return false
	}
	delete(s.config, input)
	return true
}

// Controls returns the distinct controls present in the configuration, in no
// particular order.
func (s *controls[I, C]) Controls() []C {
	seen := make(map[C]struct{}, len(s.config))
	out := make([]C, 0, len(s.config))
	for _, ctrl := range s.config {
		if _, dup := seen[ctrl]; dup {
			continue
		}
		seen[ctrl] = struct{}{}
		out = append(out, ctrl)
	}
	return out
}

// SetHooks installs a hook manager fired on control transitions during
// Update. A nil manager disables hook dispatch.
func (s *controls[I, C]) SetHooks(hooks *HookManager[C]) {
	s.hooks = hooks
}

// Hooks returns the installed hook manager, or nil.
func (s *controls[I, C]) Hooks() *HookManager[C] {
	return s.hooks
}

// SetMetrics installs a metrics recorder. A nil recorder disables collection.
func (s *controls[I, C]) SetMetrics(m *Metrics) {
	s.metrics = m
}

// Metrics returns the installed metrics recorder, or nil.
func (s *controls[I, C]) Metrics() *Metrics {
	return s.metrics
}

func (s *controls[I, C]) recordUnmapped() {
	if s.metrics != nil {
		s.metrics.RecordUnmapped()
	}
}

func (s *controls[I, C]) recordClear() {
	if s.metrics != nil {
		s.metrics.RecordClear()
	}
}
