package action

// Batch builds a single action carrying an ordered list of actions.
// Reducers fold the contained actions in order.
//
// Batch accepts actions as separate arguments or as one slice; both forms
// produce the same payload. Arguments of any other kind are skipped.
var Batch = MustNew(Config{
	Description: "Batch",
	Payload:     collectActions,
})

func collectActions(args ...any) any {
	actions := make([]Action, 0, len(args))
	for _, arg := range args {
		switch v := arg.(type) {
		case Action:
			actions = append(actions, v)
		case []Action:
			actions = append(actions, v...)
		}
	}
	return actions
}

// BatchActions returns the actions carried by a batch action.
// The second result is false if a was not built by Batch.
func BatchActions(a Action) ([]Action, bool) {
	if !a.IsBatch() {
		return nil, false
	}
	actions, _ := a.Payload.([]Action)
	return actions, true
}

// NewBatch builds a batch action without dispatching it.
func NewBatch(actions ...Action) Action {
	return Batch.Raw(actions)
}

// Disbatch wraps actions in one batch action and dispatches it to target.
// The batch action is returned. A nil target, typed or not, is ErrNilTarget.
func Disbatch(target Dispatcher, actions ...Action) (Action, error) {
	if isNil(target) {
		return Action{}, ErrNilTarget
	}
	a := NewBatch(actions...)
	target.Dispatch(a)
	return a, nil
}

// Disbatcher augments a dispatch target with a Disbatch method bound to it.
type Disbatcher[T Dispatcher] struct {
	// Target is the augmented target, still usable directly.
	Target T
}

// WithDisbatch returns target augmented with Disbatch.
func WithDisbatch[T Dispatcher](target T) (*Disbatcher[T], error) {
	if isNil(target) {
		return nil, ErrNilTarget
	}
	return &Disbatcher[T]{Target: target}, nil
}

// Dispatch implements Dispatcher by forwarding to the target.
func (d *Disbatcher[T]) Dispatch(a Action) {
	d.Target.Dispatch(a)
}

// Disbatch dispatches actions to the target as one batch action.
func (d *Disbatcher[T]) Disbatch(actions ...Action) Action {
	a := NewBatch(actions...)
	d.Target.Dispatch(a)
	return a
}
