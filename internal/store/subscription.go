package store

import "sync/atomic"

// Subscription is a registered state listener.
type Subscription[S any] struct {
	id        string
	fn        func(state S)
	store     *Store[S]
	cancelled atomic.Bool
}

// ID returns the unique subscription identifier.
func (sub *Subscription[S]) ID() string {
	return sub.id
}

// IsActive returns true until the subscription is cancelled.
func (sub *Subscription[S]) IsActive() bool {
	return !sub.cancelled.Load()
}

// Cancel stops delivery. Cancelling twice is a no-op.
func (sub *Subscription[S]) Cancel() {
	if sub.cancelled.Swap(true) {
		return
	}
	sub.store.unsubscribe(sub)
}

func (sub *Subscription[S]) notify(state S) {
	// A listener cancelled during this dispatch is skipped.
	if sub.cancelled.Load() || sub.fn == nil {
		return
	}
	sub.fn(state)
}
