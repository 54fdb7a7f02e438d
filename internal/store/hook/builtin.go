package hook

import (
	"sync"

	"github.com/kuzn-ilya/redux-act-typings-tests/internal/action"
)

// Standard hook priorities.
const (
	PriorityRecorder   = 1000 // Runs last (post), sees every completed dispatch
	PriorityValidation = 800  // Validate before reducing
	PriorityLogging    = 100
)

// Recorder remembers dispatched actions in order.
type Recorder struct {
	mu      sync.Mutex
	name    string
	max     int
	actions []action.Action
}

// NewRecorder creates a recorder keeping at most max actions.
// A max of zero or less keeps everything.
func NewRecorder(name string, max int) *Recorder {
	return &Recorder{name: name, max: max}
}

// Name implements Hook.
func (h *Recorder) Name() string { return h.name }

// Priority implements Hook.
func (h *Recorder) Priority() int { return PriorityRecorder }

// PostDispatch records the action.
func (h *Recorder) PostDispatch(a action.Action) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.actions = append(h.actions, a)
	if h.max > 0 && len(h.actions) > h.max {
		h.actions = h.actions[len(h.actions)-h.max:]
	}
}

// Actions returns the recorded actions, oldest first.
func (h *Recorder) Actions() []action.Action {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := make([]action.Action, len(h.actions))
	copy(result, h.actions)
	return result
}

// Types returns the types of the recorded actions, oldest first.
func (h *Recorder) Types() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	types := make([]string, len(h.actions))
	for i, a := range h.actions {
		types[i] = a.Type
	}
	return types
}

// Clear forgets all recorded actions.
func (h *Recorder) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.actions = nil
}

// ValidationHook cancels actions rejected by a validation function.
type ValidationHook struct {
	name     string
	priority int
	validate func(a action.Action) error
	onReject func(a action.Action, err error)
}

// NewValidationHook creates a validation hook.
// onReject, if not nil, is told about every cancelled action.
func NewValidationHook(name string, priority int, validate func(action.Action) error, onReject func(action.Action, error)) *ValidationHook {
	return &ValidationHook{
		name:     name,
		priority: priority,
		validate: validate,
		onReject: onReject,
	}
}

// Name implements Hook.
func (h *ValidationHook) Name() string { return h.name }

// Priority implements Hook.
func (h *ValidationHook) Priority() int { return h.priority }

// PreDispatch validates the action and cancels if invalid.
func (h *ValidationHook) PreDispatch(a *action.Action) bool {
	if h.validate == nil {
		return true
	}
	if err := h.validate(*a); err != nil {
		if h.onReject != nil {
			h.onReject(*a, err)
		}
		return false
	}
	return true
}
