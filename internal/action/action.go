package action

import "reflect"

// Action is a tagged message produced by a Creator.
// Actions are values; once built they are never modified.
type Action struct {
	// Type is the tag of the Creator that built the action.
	Type string

	// Payload is the result of the Creator's payload transform.
	Payload any

	// Meta is the result of the Creator's meta transform, or nil.
	Meta any

	// Error marks the payload as an error value.
	Error bool
}

// IsBatch reports whether the action was built by Batch.
func (a Action) IsBatch() bool {
	return a.Type == Batch.Type()
}

// Key identifies a handler slot in a reducer.
// It is implemented by *Creator and Tag.
type Key interface {
	Type() string
}

// Tag is a raw action type usable wherever a Key is expected.
type Tag string

// Type implements Key.
func (t Tag) Type() string { return string(t) }

// Dispatcher is anything that accepts an action and applies it to state it owns.
type Dispatcher interface {
	Dispatch(a Action)
}

// DispatchFunc adapts a plain function to a Dispatcher.
type DispatchFunc func(a Action)

// Dispatch implements Dispatcher.
func (f DispatchFunc) Dispatch(a Action) {
	if f != nil {
		f(a)
	}
}

// isNil reports whether d is nil or holds a nil pointer, map, func, chan
// or slice.
func isNil(d Dispatcher) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}
