package reducer

import (
	"sort"
	"strings"
	"sync"

	"github.com/kuzn-ilya/redux-act-typings-tests/internal/action"
)

// ReservedPrefix marks host-internal action types. Reduce ignores them.
const ReservedPrefix = "@@redux/"

// Handler computes the next state.
// With the payload convention (the default) it receives the action payload
// and meta; otherwise it receives the whole action.Action as payload and nil meta.
type Handler[S any] func(state S, payload, meta any) S

// Handlers is an initial handler table.
type Handlers[S any] map[action.Key]Handler[S]

// OnFunc registers a handler. It is passed to Setup functions.
type OnFunc[S any] func(key action.Key, h Handler[S])

// OffFunc removes a handler. It is passed to Setup functions.
type OffFunc func(key action.Key)

// Setup fills a new reducer's table. It runs exactly once, during construction.
type Setup[S any] func(on OnFunc[S], off OffFunc)

// Reducer is a mutable table of handlers keyed by action type.
type Reducer[S any] struct {
	mu           sync.RWMutex
	handlers     map[string]Handler[S]
	fallback     Handler[S]
	settings     settings
	defaultState S
}

func newReducer[S any](defaultState S) *Reducer[S] {
	r := &Reducer[S]{
		handlers:     make(map[string]Handler[S]),
		settings:     defaultSettings(),
		defaultState: defaultState,
	}
	r.handlers[action.Batch.Type()] = r.batch
	return r
}

// New creates a reducer from a handler table.
func New[S any](handlers Handlers[S], defaultState S) *Reducer[S] {
	r := newReducer(defaultState)
	for key, h := range handlers {
		r.On(key, h)
	}
	return r
}

// NewWithSetup creates a reducer whose table is filled by setup.
func NewWithSetup[S any](setup Setup[S], defaultState S) *Reducer[S] {
	r := newReducer(defaultState)
	if setup != nil {
		setup(
			func(key action.Key, h Handler[S]) { r.On(key, h) },
			func(key action.Key) { r.Off(key) },
		)
	}
	return r
}

// Default returns the default state.
func (r *Reducer[S]) Default() S {
	return r.defaultState
}

// Reduce applies a to state and returns the next state.
// Actions without a handler leave the state unchanged.
func (r *Reducer[S]) Reduce(state S, a action.Action) S {
	if a.Type == "" || strings.HasPrefix(a.Type, ReservedPrefix) {
		return state
	}

	r.mu.RLock()
	h, ok := r.handlers[a.Type]
	if !ok {
		h = r.fallback
	}
	payload := r.settings.payload
	r.mu.RUnlock()

	if h == nil {
		return state
	}
	if payload {
		return h(state, a.Payload, a.Meta)
	}
	return h(state, a, nil)
}

// On registers h for key, replacing any previous handler.
// A nil handler removes the entry.
func (r *Reducer[S]) On(key action.Key, h Handler[S]) *Reducer[S] {
	if key == nil {
		return r
	}
	if h == nil {
		return r.Off(key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[key.Type()] = h
	return r
}

// OnEach registers h for every key.
func (r *Reducer[S]) OnEach(keys []action.Key, h Handler[S]) *Reducer[S] {
	for _, key := range keys {
		r.On(key, h)
	}
	return r
}

// Off removes the handlers for keys. Unknown keys are ignored.
func (r *Reducer[S]) Off(keys ...action.Key) *Reducer[S] {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, key := range keys {
		if key == nil {
			continue
		}
		delete(r.handlers, key.Type())
	}
	return r
}

// Has returns true if a handler is registered for key.
func (r *Reducer[S]) Has(key action.Key) bool {
	if key == nil {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.handlers[key.Type()]
	return ok
}

// Fallback sets a handler for action types without an entry.
// Pass nil to remove it.
func (r *Reducer[S]) Fallback(h Handler[S]) *Reducer[S] {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = h
	return r
}

// Options applies options to the reducer.
func (r *Reducer[S]) Options(opts ...Option) *Reducer[S] {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, opt := range opts {
		opt(&r.settings)
	}
	return r
}

// UsesPayload reports the current calling convention.
func (r *Reducer[S]) UsesPayload() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings.payload
}

// Types returns the registered action types, sorted.
func (r *Reducer[S]) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.handlers))
	for t := range r.handlers {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Func returns Reduce as a plain function value.
func (r *Reducer[S]) Func() func(S, action.Action) S {
	return r.Reduce
}

// batch folds Reduce over the actions carried by a batch action.
func (r *Reducer[S]) batch(state S, payload, _ any) S {
	var actions []action.Action
	switch p := payload.(type) {
	case []action.Action:
		actions = p
	case action.Action:
		actions, _ = action.BatchActions(p)
	}

	for _, a := range actions {
		state = r.Reduce(state, a)
	}
	return state
}
