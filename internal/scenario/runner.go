package scenario

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kuzn-ilya/redux-act-typings-tests/internal/action"
	"github.com/kuzn-ilya/redux-act-typings-tests/internal/logging"
	"github.com/kuzn-ilya/redux-act-typings-tests/internal/reducer"
	"github.com/kuzn-ilya/redux-act-typings-tests/internal/store"
	"github.com/kuzn-ilya/redux-act-typings-tests/internal/store/hook"
)

// Options configures a Runner.
type Options struct {
	// Logger receives progress and dispatch logs. The zero value discards them.
	Logger zerolog.Logger

	// Metrics enables store metrics; they are returned in the Result.
	Metrics bool

	// Trace records every action reaching the first store.
	Trace bool
}

// Result is the outcome of one scenario.
type Result struct {
	Name string

	// States holds the final state of every store, in store order.
	States []int64

	Expect *int64
	Passed bool

	// Trace lists the action types seen by the first store when tracing.
	Trace []string

	// Metrics holds per-store metrics when enabled.
	Metrics []*store.Metrics
}

// Runner builds and runs scenarios.
type Runner struct {
	opts Options
}

// NewRunner creates a runner.
func NewRunner(opts Options) *Runner {
	return &Runner{opts: opts}
}

// run holds the objects built for one scenario.
type run struct {
	sc       *Scenario
	creators map[string]*action.Creator
	reducer  *reducer.Reducer[int64]
	stores   []*store.Store[int64]
	targets  []action.Dispatcher
}

// Run executes sc. A failed expectation returns the result together with an
// error wrapping ErrExpectationFailed.
//
// Tags registered for the scenario's creators are removed from the tag
// registry before Run returns, so the same scenario can run again.
func (r *Runner) Run(sc *Scenario) (*Result, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	logger := r.opts.Logger.With().Str("scenario", sc.Name).Logger()
	logger.Info().Int("stores", sc.StoreCount()).Int("steps", len(sc.Steps)).Msg("running scenario")

	ru := &run{sc: sc, creators: make(map[string]*action.Creator, len(sc.Creators))}
	defer ru.releaseTags()

	if err := ru.buildCreators(); err != nil {
		return nil, err
	}
	ru.buildReducer()

	var recorder *hook.Recorder
	cfg := store.DefaultConfig().WithLogger(logger)
	if r.opts.Metrics {
		cfg = cfg.WithMetrics()
	}
	for i := 0; i < sc.StoreCount(); i++ {
		s := store.New[int64](ru.reducer, sc.Initial, cfg)
		s.Hooks().Register(logging.NewDispatchHook(logger.With().Int("store", i).Logger()))
		if i == 0 && r.opts.Trace {
			recorder = hook.NewRecorder("trace", 0)
			s.Hooks().Register(recorder)
		}
		ru.stores = append(ru.stores, s)
		ru.targets = append(ru.targets, s)
	}

	ru.associate()

	for _, step := range sc.Steps {
		if err := ru.runStep(step); err != nil {
			return nil, err
		}
	}

	res := &Result{
		Name:   sc.Name,
		Expect: sc.Expect,
		Passed: true,
	}
	for _, s := range ru.stores {
		state := s.State()
		res.States = append(res.States, state)
		if sc.Expect != nil && state != *sc.Expect {
			res.Passed = false
		}
		if m := s.Metrics(); m != nil {
			res.Metrics = append(res.Metrics, m)
		}
	}
	if recorder != nil {
		res.Trace = recorder.Types()
	}

	if !res.Passed {
		logger.Warn().Int64("expect", *sc.Expect).Ints64("states", res.States).Msg("scenario failed")
		return res, fmt.Errorf("%w: %s: expected %d, got %v", ErrExpectationFailed, sc.Name, *sc.Expect, res.States)
	}
	logger.Info().Ints64("states", res.States).Msg("scenario passed")
	return res, nil
}

func (ru *run) buildCreators() error {
	for _, spec := range ru.sc.Creators {
		desc := spec.Description
		if desc == "" {
			desc = spec.Name
		}
		c, err := action.New(action.Config{Description: desc})
		if err != nil {
			return fmt.Errorf("creating %q: %w", spec.Name, err)
		}
		ru.creators[spec.Name] = c
	}
	return nil
}

// releaseTags removes the scenario's tags from the process-wide registry.
func (ru *run) releaseTags() {
	for _, c := range ru.creators {
		action.Types().Remove(c.Type())
	}
}

func (ru *run) buildReducer() {
	ru.reducer = reducer.New[int64](nil, ru.sc.Initial)
	for _, h := range ru.sc.Handlers {
		var key action.Key = action.Tag(h.On)
		if c, ok := ru.creators[h.On]; ok {
			key = c
		}
		ru.reducer.On(key, opHandler(h.Op, h.Value, ru.sc.Initial))
	}
	if ru.sc.Payload != nil {
		ru.reducer.Options(reducer.WithPayload(*ru.sc.Payload))
	}
}

// associate assigns or binds creators to every store according to their mode.
func (ru *run) associate() {
	var assign []*action.Creator
	bind := make(map[string]*action.Creator)
	for _, spec := range ru.sc.Creators {
		switch spec.Mode {
		case ModeAssign:
			assign = append(assign, ru.creators[spec.Name])
		case ModeBind:
			bind[spec.Name] = ru.creators[spec.Name]
		}
	}

	action.AssignAll(assign, ru.targets...)
	for name, b := range action.BindAllMap(bind, ru.targets...) {
		ru.creators[name] = b
	}
}

func (ru *run) runStep(step Step) error {
	if len(step.Batch) > 0 {
		actions, err := ru.rawActions(step.Batch)
		if err != nil {
			return err
		}
		for _, t := range ru.targets {
			if _, err := action.Disbatch(t, actions...); err != nil {
				return err
			}
		}
		return nil
	}

	c, ok := ru.creators[step.Action]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCreator, step.Action)
	}
	a := c.Call(args(step.Args)...)
	if !c.Dispatched() {
		for _, t := range ru.targets {
			t.Dispatch(a)
		}
	}
	return nil
}

// rawActions builds the actions of a batch without dispatching them.
func (ru *run) rawActions(steps []Step) ([]action.Action, error) {
	actions := make([]action.Action, 0, len(steps))
	for _, step := range steps {
		if len(step.Batch) > 0 {
			nested, err := ru.rawActions(step.Batch)
			if err != nil {
				return nil, err
			}
			actions = append(actions, action.NewBatch(nested...))
			continue
		}
		c, ok := ru.creators[step.Action]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCreator, step.Action)
		}
		actions = append(actions, c.Raw(args(step.Args)...))
	}
	return actions, nil
}

func args(values []int64) []any {
	result := make([]any, len(values))
	for i, v := range values {
		result[i] = v
	}
	return result
}
