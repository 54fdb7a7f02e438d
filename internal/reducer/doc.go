// Package reducer maps action types to state transition handlers.
//
// A Reducer holds at most one handler per action type. Handlers are keyed by
// action.Key, so either a creator or a raw action.Tag can be used:
//
//	counter := reducer.New(reducer.Handlers[int]{
//	    increment: func(state int, _, _ any) int { return state + 1 },
//	    add:       func(state int, payload, _ any) int { return state + payload.(int) },
//	}, 0)
//
//	state := counter.Reduce(counter.Default(), increment.Raw())
//
// The table can also be filled by a setup function that receives the
// reducer's own On and Off:
//
//	counter := reducer.NewWithSetup(func(on reducer.OnFunc[int], off reducer.OffFunc) {
//	    on(increment, func(state int, _, _ any) int { return state + 1 })
//	}, 0)
//
// # Reduction
//
// Reduce looks the action type up and calls the handler with the current
// state. Unknown types return the state unchanged. The lookup happens before
// the handler runs, so a handler may call On or Off on its own reducer; the
// change applies to the next Reduce.
//
// # Calling convention
//
// By default a handler receives the payload and the meta of the action. After
// Options(WithPayload(false)) it receives the whole action.Action in the
// payload argument and nil meta. Note the polarity: WithPayload(true) means
// "pass payload and meta separately".
//
// # Batch
//
// Every reducer registers a handler for action.Batch that folds its own Reduce
// over the actions carried by the batch, in order. A handlers map entry for
// action.Batch replaces it, and Off(action.Batch) removes it.
package reducer
