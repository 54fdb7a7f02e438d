package logging

import (
	"github.com/rs/zerolog"

	"github.com/kuzn-ilya/redux-act-typings-tests/internal/action"
	"github.com/kuzn-ilya/redux-act-typings-tests/internal/store/hook"
)

// DispatchHook logs every dispatched action at debug level.
type DispatchHook struct {
	logger zerolog.Logger
}

// NewDispatchHook creates a hook writing to logger.
func NewDispatchHook(logger zerolog.Logger) *DispatchHook {
	return &DispatchHook{logger: logger}
}

// Name implements hook.Hook.
func (h *DispatchHook) Name() string { return "logging" }

// Priority implements hook.Hook.
func (h *DispatchHook) Priority() int { return hook.PriorityLogging }

// PostDispatch logs the action. Batches are logged with the types they carry.
func (h *DispatchHook) PostDispatch(a action.Action) {
	e := h.logger.Debug().Str("type", a.Type)
	if actions, ok := action.BatchActions(a); ok {
		e = e.Strs("batch", flatten(actions, nil))
	} else {
		e = e.Interface("payload", a.Payload)
		if a.Meta != nil {
			e = e.Interface("meta", a.Meta)
		}
	}
	if a.Error {
		e = e.Bool("error", true)
	}
	e.Msg("dispatch")
}

// flatten appends the types of actions to types, expanding nested batches.
func flatten(actions []action.Action, types []string) []string {
	for _, a := range actions {
		if nested, ok := action.BatchActions(a); ok {
			types = flatten(nested, types)
			continue
		}
		types = append(types, a.Type)
	}
	return types
}

var _ hook.PostDispatchHook = (*DispatchHook)(nil)
