// Package action builds tagged actions and tracks where they are dispatched.
//
// An Action is a plain value: a type tag, a payload, optional meta data and an
// error flag. Actions are produced by a Creator, which owns the tag and the
// transforms that turn call arguments into payload and meta.
//
// # Tags
//
// A Creator whose description matches ^[0-9A-Z_]+$ uses the description as its
// tag verbatim. Such tags are stable across restarts and can be serialized, so
// they must be unique: creating a second Creator with the same tag fails with a
// *DuplicateTagError. Any other description produces a synthesized tag of the
// form "[N] description", where N is a process-wide sequence number.
//
// Every tag is recorded in the process-wide registry returned by Types. The
// registry exposes Add, Remove, Has, All and Clear for test setup and teardown.
//
// # Dispatch association
//
// A Creator starts unassigned: Call returns the action and does nothing else.
//
//	increment := action.MustNew(action.Config{Description: "INCREMENT"})
//	a := increment.Call()          // returned, not dispatched
//	store.Dispatch(a)
//
// AssignTo attaches the Creator itself to one or more targets. From then on
// every Call dispatches to each target in order and still returns the action:
//
//	increment.AssignTo(storeA, storeB)
//	increment.Call()               // storeA, then storeB
//
// BindTo leaves the receiver untouched and returns a bound copy sharing the tag:
//
//	bound := increment.BindTo(storeC)
//	bound.Call()                   // storeC only
//
// Raw always builds the action without dispatching, whatever the association.
// It is how actions are collected for a batch:
//
//	action.Disbatch(store, increment.Raw(), increment.Raw())
//
// # Keys
//
// Reducers key their handlers by Key. Both *Creator and Tag implement Key, so a
// handler can be registered either with the creator or with a raw tag string.
package action
