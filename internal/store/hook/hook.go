// Package hook provides pre/post dispatch hooks for stores.
//
// A hook implements PreDispatchHook, PostDispatchHook or both, and is
// registered once with a Manager. Pre-dispatch hooks run from the highest
// priority down and may rewrite or cancel the action; post-dispatch hooks
// run from the lowest priority up and see the action that was reduced.
package hook

import (
	"github.com/kuzn-ilya/redux-act-typings-tests/internal/action"
)

// Hook is the base interface for all dispatch hooks.
type Hook interface {
	// Name identifies the hook within a Manager.
	Name() string

	// Priority orders hooks. Ties keep registration order.
	Priority() int
}

// PreDispatchHook is called before an action is reduced.
type PreDispatchHook interface {
	Hook

	// PreDispatch may rewrite the action.
	// Returns false to cancel the dispatch.
	PreDispatch(a *action.Action) bool
}

// PostDispatchHook is called after an action was reduced and listeners ran.
type PostDispatchHook interface {
	Hook

	// PostDispatch inspects the dispatched action.
	PostDispatch(a action.Action)
}

// Funcs adapts plain functions to a hook.
// A nil Before lets every action through; a nil After does nothing.
type Funcs struct {
	ID    string
	Order int

	Before func(a *action.Action) bool
	After  func(a action.Action)
}

// Name implements Hook.
func (f Funcs) Name() string { return f.ID }

// Priority implements Hook.
func (f Funcs) Priority() int { return f.Order }

// PreDispatch implements PreDispatchHook.
func (f Funcs) PreDispatch(a *action.Action) bool {
	if f.Before == nil {
		return true
	}
	return f.Before(a)
}

// PostDispatch implements PostDispatchHook.
func (f Funcs) PostDispatch(a action.Action) {
	if f.After != nil {
		f.After(a)
	}
}
