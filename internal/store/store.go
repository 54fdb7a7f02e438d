package store

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/kuzn-ilya/redux-act-typings-tests/internal/action"
	"github.com/kuzn-ilya/redux-act-typings-tests/internal/store/hook"
)

// Reducer computes the next state of a store.
// *reducer.Reducer satisfies it.
type Reducer[S any] interface {
	Reduce(state S, a action.Action) S
}

// ReducerFunc adapts a plain function to a Reducer.
type ReducerFunc[S any] func(state S, a action.Action) S

// Reduce implements Reducer.
func (f ReducerFunc[S]) Reduce(state S, a action.Action) S {
	return f(state, a)
}

// Store owns a state value and applies dispatched actions to it.
type Store[S any] struct {
	mu         sync.RWMutex
	dispatchMu sync.Mutex // serializes read-reduce-write
	seq        atomic.Uint64

	id        string
	reducer   Reducer[S]
	state     S
	listeners []*Subscription[S]

	config  Config
	hooks   *hook.Manager
	metrics *Metrics
}

// New creates a store with the given reducer, initial state and configuration.
func New[S any](r Reducer[S], initial S, config Config) *Store[S] {
	s := &Store[S]{
		id:      uuid.NewString(),
		reducer: r,
		state:   initial,
		config:  config,
		hooks:   hook.NewManager(),
	}

	if config.EnableMetrics {
		s.metrics = NewMetrics()
	}

	return s
}

// NewWithDefaults creates a store with default configuration.
func NewWithDefaults[S any](r Reducer[S], initial S) *Store[S] {
	return New(r, initial, DefaultConfig())
}

// ID returns the unique store identifier.
func (s *Store[S]) ID() string {
	return s.id
}

// State returns the current state.
func (s *Store[S]) State() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies a to the state. It implements action.Dispatcher.
//
// Dispatches are serialized around the reducer, so concurrent calls never
// lose updates. Listeners always see the latest state: once a newer dispatch
// has notified them, an older one stops notifying.
func (s *Store[S]) Dispatch(a action.Action) {
	startTime := time.Now()

	if !s.hooks.RunPreDispatch(&a) {
		s.config.Logger.Debug().Str("store", s.id).Str("type", a.Type).Msg("dispatch cancelled by hook")
		if s.metrics != nil {
			s.metrics.RecordDispatch(a.Type, time.Since(startTime), true)
		}
		return
	}

	if next, seq, listeners, ok := s.apply(a); ok {
		for _, l := range listeners {
			if s.seq.Load() != seq {
				break
			}
			l.notify(next)
		}
	}

	s.hooks.RunPostDispatch(a)

	if s.metrics != nil {
		s.metrics.RecordDispatch(a.Type, time.Since(startTime), false)
	}
}

// apply reduces a against the current state and stores the result.
// It returns the new state, its sequence number and the listeners to notify.
// The reducer must not dispatch to its own store.
func (s *Store[S]) apply(a action.Action) (next S, seq uint64, listeners []*Subscription[S], ok bool) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.RLock()
	r := s.reducer
	prev := s.state
	s.mu.RUnlock()

	next, ok = prev, true
	if r != nil {
		if s.config.RecoverFromPanic {
			next, ok = s.reduceWithRecovery(r, prev, a)
		} else {
			next = r.Reduce(prev, a)
		}
	}
	if !ok {
		return next, 0, nil, false
	}

	s.mu.Lock()
	s.state = next
	seq = s.seq.Add(1)
	listeners = make([]*Subscription[S], len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	return next, seq, listeners, true
}

// reduceWithRecovery runs the reducer and converts a panic into ok == false.
func (s *Store[S]) reduceWithRecovery(r Reducer[S], state S, a action.Action) (next S, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)

			s.config.Logger.Error().
				Str("store", s.id).
				Str("type", a.Type).
				Str("panic", fmt.Sprint(rec)).
				Str("stack", string(stack[:n])).
				Msg("reducer panic recovered")

			if s.metrics != nil {
				s.metrics.RecordPanic(a.Type)
			}
			next, ok = state, false
		}
	}()

	return r.Reduce(state, a), true
}

// Subscribe registers fn to be called with the new state after every dispatch.
func (s *Store[S]) Subscribe(fn func(state S)) *Subscription[S] {
	sub := &Subscription[S]{
		id:    uuid.NewString(),
		fn:    fn,
		store: s,
	}

	s.mu.Lock()
	s.listeners = append(s.listeners, sub)
	s.mu.Unlock()

	return sub
}

// unsubscribe removes sub from the listener list.
func (s *Store[S]) unsubscribe(sub *Subscription[S]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, l := range s.listeners {
		if l == sub {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// ListenerCount returns the number of active subscriptions.
func (s *Store[S]) ListenerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listeners)
}

// Replace swaps the reducer. The state is kept.
func (s *Store[S]) Replace(r Reducer[S]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reducer = r
}

// Hooks returns the hook manager.
func (s *Store[S]) Hooks() *hook.Manager {
	return s.hooks
}

// Metrics returns the metrics collector (nil if disabled).
func (s *Store[S]) Metrics() *Metrics {
	return s.metrics
}

// Config returns the store configuration.
func (s *Store[S]) Config() Config {
	return s.config
}
