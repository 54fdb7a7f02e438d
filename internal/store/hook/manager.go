package hook

import (
	"sort"
	"sync"

	"github.com/kuzn-ilya/redux-act-typings-tests/internal/action"
)

// Manager holds the hooks of one store.
type Manager struct {
	mu    sync.RWMutex
	hooks []Hook // highest priority first, replaced on every change
}

// NewManager creates an empty hook manager.
func NewManager() *Manager {
	return &Manager{}
}

// Register adds h, replacing a hook with the same name.
func (m *Manager) Register(h Hook) {
	m.mu.Lock()
	defer m.mu.Unlock()

	hooks := make([]Hook, 0, len(m.hooks)+1)
	for _, existing := range m.hooks {
		if existing.Name() != h.Name() {
			hooks = append(hooks, existing)
		}
	}
	hooks = append(hooks, h)
	sort.SliceStable(hooks, func(i, j int) bool {
		return hooks[i].Priority() > hooks[j].Priority()
	})
	m.hooks = hooks
}

// Unregister removes the hook with the given name.
func (m *Manager) Unregister(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, h := range m.hooks {
		if h.Name() == name {
			m.hooks = append(m.hooks[:i:i], m.hooks[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of registered hooks.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.hooks)
}

// snapshot returns the registered hooks, highest priority first.
// The slice is never modified in place, so running hooks may register or
// unregister hooks.
func (m *Manager) snapshot() []Hook {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hooks
}

// RunPreDispatch runs pre-dispatch hooks from the highest priority down.
// Returns false as soon as a hook cancels the action.
func (m *Manager) RunPreDispatch(a *action.Action) bool {
	for _, h := range m.snapshot() {
		if pre, ok := h.(PreDispatchHook); ok && !pre.PreDispatch(a) {
			return false
		}
	}
	return true
}

// RunPostDispatch runs post-dispatch hooks from the lowest priority up.
func (m *Manager) RunPostDispatch(a action.Action) {
	hooks := m.snapshot()

	post := make([]PostDispatchHook, 0, len(hooks))
	for _, h := range hooks {
		if p, ok := h.(PostDispatchHook); ok {
			post = append(post, p)
		}
	}
	sort.SliceStable(post, func(i, j int) bool {
		return post[i].Priority() < post[j].Priority()
	})

	for _, h := range post {
		h.PostDispatch(a)
	}
}
