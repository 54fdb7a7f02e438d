// Package store is a minimal host for reducers: it owns a state value and
// applies dispatched actions to it.
//
// A Store implements action.Dispatcher, so creators can be assigned or bound
// to it:
//
//	counter := reducer.New(handlers, 0)
//	s := store.NewWithDefaults[int](counter, counter.Default())
//	increment.AssignTo(s)
//	increment.Call()
//	s.State() // 1
//
// # Dispatch
//
// Dispatch runs synchronously:
//
//  1. Pre-dispatch hooks run (they may rewrite or cancel the action)
//  2. The reducer computes the next state (with optional panic recovery)
//  3. Listeners are notified in subscription order
//  4. Post-dispatch hooks run
//  5. Metrics are recorded (if enabled)
//
// Concurrent dispatches are serialized around step 2 only. Listeners and
// hooks run without locks, so a listener may dispatch again; the nested
// dispatch notifies every listener with its newer state and the outer one
// then stops notifying. A reducer must not dispatch to its own store.
package store
