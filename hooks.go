package framepress

import (
	"sort"
	"sync"
)

// HookPriority defines the execution order for hooks.
// Lower values execute first.
type HookPriority int

const (
	// HookPriorityHighest runs before all other hooks.
	HookPriorityHighest HookPriority = -1000
	// HookPriorityHigh runs early in the hook chain.
	HookPriorityHigh HookPriority = -100
	// HookPriorityNormal is the default priority.
	HookPriorityNormal HookPriority = 0
	// HookPriorityLow runs late in the hook chain.
	HookPriorityLow HookPriority = 100
	// HookPriorityLowest runs after all other hooks.
	HookPriorityLowest HookPriority = 1000
)

// HookID uniquely identifies a registered hook.
type HookID uint64

// Hook observes control transitions resolved during Update.
type Hook[C comparable] interface {
	// ControlPressed fires on the frame a control's press time becomes 1.
	ControlPressed(ctrl C)

	// ControlReleased fires on the frame a control resets to 0, with the
	// number of frames it had been held.
	ControlReleased(ctrl C, held uint32)
}

// HookRegistration holds metadata about a registered hook.
type HookRegistration[C comparable] struct {
	ID       HookID
	Name     string
	Priority HookPriority
	Hook     Hook[C]
}

// HookManager manages transition hooks with support for priorities and named
// registration. Registration is mutex-guarded and may happen from any
// goroutine; firing happens on the thread driving the tracker's Update.
type HookManager[C comparable] struct {
	mu      sync.Mutex
	hooks   []HookRegistration[C]
	nextID  HookID
	sorted  bool
	byName  map[string]HookID
	enabled bool
}

// NewHookManager creates a new hook manager.
func NewHookManager[C comparable]() *HookManager[C] {
	return &HookManager[C]{
		hooks:   make([]HookRegistration[C], 0),
		byName:  make(map[string]HookID),
		enabled: true,
	}
}

// Register adds a hook with default priority and no name.
func (m *HookManager[C]) Register(hook Hook[C]) HookID {
	return m.RegisterWithOptions(hook, "", HookPriorityNormal)
}

// RegisterNamed adds a hook with a name for later reference.
func (m *HookManager[C]) RegisterNamed(hook Hook[C], name string) HookID {
	return m.RegisterWithOptions(hook, name, HookPriorityNormal)
}

// RegisterWithOptions adds a hook with all options specified.
func (m *HookManager[C]) RegisterWithOptions(hook Hook[C], name string, priority HookPriority) HookID {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	id := m.nextID

	m.hooks = append(m.hooks, HookRegistration[C]{
		ID:       id,
		Name:     name,
		Priority: priority,
		Hook:     hook,
	})
	if name != "" {
		m.byName[name] = id
	}

	m.sorted = false
	return id
}

// Unregister removes a hook by ID, reporting whether it was registered.
func (m *HookManager[C]) Unregister(id HookID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.hooks {
		if m.hooks[i].ID != id {
			continue
		}
		if name := m.hooks[i].Name; name != "" {
			delete(m.byName, name)
		}
		m.hooks = append(m.hooks[:i], m.hooks[i+1:]...)
		return true
	}
	return false
}

// UnregisterByName removes a hook by name, reporting whether it was
// registered.
func (m *HookManager[C]) UnregisterByName(name string) bool {
	m.mu.Lock()
	id, ok := m.byName[name]
	m.mu.Unlock()
	if !ok {
		return false
	}
	return m.Unregister(id)
}

// Get returns the registration for id, or nil.
func (m *HookManager[C]) Get(id HookID) *HookRegistration[C] {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.hooks {
		if m.hooks[i].ID == id {
			reg := m.hooks[i]
			return &reg
		}
	}
	return nil
}

// GetByName returns the registration for name, or nil.
func (m *HookManager[C]) GetByName(name string) *HookRegistration[C] {
	m.mu.Lock()
	id, ok := m.byName[name]
	m.mu.Unlock()
	if !ok {
		return nil
	}
	return m.Get(id)
}

// SetEnabled enables or disables all hooks.
func (m *HookManager[C]) SetEnabled(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enabled = enabled
}

// IsEnabled returns whether hooks are enabled.
func (m *HookManager[C]) IsEnabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enabled
}

// Count returns the number of registered hooks.
func (m *HookManager[C]) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.hooks)
}

// List returns a copy of all hook registrations.
func (m *HookManager[C]) List() []HookRegistration[C] {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]HookRegistration[C], len(m.hooks))
	copy(out, m.hooks)
	return out
}

// Clear removes all hooks.
func (m *HookManager[C]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hooks = m.hooks[:0]
	m.byName = make(map[string]HookID)
	m.sorted = true
}

// ensureSorted sorts hooks by priority if needed. Callers must hold mu.
func (m *HookManager[C]) ensureSorted() {
	if m.sorted {
		return
	}
	sort.SliceStable(m.hooks, func(i, j int) bool {
		return m.hooks[i].Priority < m.hooks[j].Priority
	})
	m.sorted = true
}

// snapshot copies the hooks for iteration outside the lock.
func (m *HookManager[C]) snapshot() []Hook[C] {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.enabled || len(m.hooks) == 0 {
		return nil
	}
	m.ensureSorted()

	hooks := make([]Hook[C], len(m.hooks))
	for i := range m.hooks {
		hooks[i] = m.hooks[i].Hook
	}
	return hooks
}

// RunPressed runs all ControlPressed hooks in priority order.
func (m *HookManager[C]) RunPressed(ctrl C) {
	for _, hook := range m.snapshot() {
		hook.ControlPressed(ctrl)
	}
}

// RunReleased runs all ControlReleased hooks in priority order.
func (m *HookManager[C]) RunReleased(ctrl C, held uint32) {
	for _, hook := range m.snapshot() {
		hook.ControlReleased(ctrl, held)
	}
}

// BaseHook provides a default no-op implementation of the Hook interface.
// Embed this in custom hooks to only implement the methods you need.
type BaseHook[C comparable] struct{}

// ControlPressed is a no-op.
func (BaseHook[C]) ControlPressed(C) {}

// ControlReleased is a no-op.
func (BaseHook[C]) ControlReleased(C, uint32) {}

// FuncHook wraps functions into a Hook implementation.
type FuncHook[C comparable] struct {
	PressedFunc  func(ctrl C)
	ReleasedFunc func(ctrl C, held uint32)
}

// ControlPressed calls PressedFunc if set.
func (h FuncHook[C]) ControlPressed(ctrl C) {
	if h.PressedFunc != nil {
		h.PressedFunc(ctrl)
	}
}

// ControlReleased calls ReleasedFunc if set.
func (h FuncHook[C]) ControlReleased(ctrl C, held uint32) {
	if h.ReleasedFunc != nil {
		h.ReleasedFunc(ctrl, held)
	}
}

// LoggingHook logs control transitions through an injected printf-style
// function. Useful for debugging and development.
type LoggingHook[C comparable] struct {
	Logger func(format string, args ...interface{})
}

// ControlPressed logs the press.
func (h LoggingHook[C]) ControlPressed(ctrl C) {
	if h.Logger != nil {
		h.Logger("[framepress] pressed: %v", ctrl)
	}
}

// ControlReleased logs the release and how long the control was held.
func (h LoggingHook[C]) ControlReleased(ctrl C, held uint32) {
	if h.Logger != nil {
		h.Logger("[framepress] released: %v (held %d frames)", ctrl, held)
	}
}
