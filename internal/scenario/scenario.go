// Package scenario loads and runs data-driven fixtures for action creators
// and reducers.
//
// A scenario declares creators, the reducer handlers reacting to them, a
// number of stores and a list of steps. Running it builds everything through
// the action, reducer and store packages and compares the final state of
// every store with the expected value.
//
//	name = "counter"
//	initial = 0
//	expect = 6
//
//	[[creators]]
//	name = "increment"
//
//	[[creators]]
//	name = "add"
//	description = "ADD"
//	mode = "assign"
//
//	[[handlers]]
//	on = "increment"
//	op = "inc"
//
//	[[handlers]]
//	on = "add"
//	op = "add"
//
//	[[steps]]
//	action = "increment"
//
//	[[steps]]
//	batch = [{ action = "add", args = [5] }]
//
// Files may be TOML or YAML; the format is chosen by extension.
package scenario

import (
	"fmt"
)

// Creator modes.
const (
	ModeNone   = ""
	ModeAssign = "assign"
	ModeBind   = "bind"
)

// Handler operations.
const (
	OpInc   = "inc"
	OpDec   = "dec"
	OpAdd   = "add"
	OpSub   = "sub"
	OpMul   = "mul"
	OpSet   = "set"
	OpReset = "reset"
)

var knownOps = map[string]bool{
	OpInc: true, OpDec: true, OpAdd: true, OpSub: true,
	OpMul: true, OpSet: true, OpReset: true,
}

// Scenario is a fixture file.
type Scenario struct {
	// Name identifies the scenario in results.
	Name string `toml:"name" yaml:"name"`

	// Initial is the initial state of every store.
	Initial int64 `toml:"initial" yaml:"initial"`

	// Payload selects the reducer calling convention when set.
	// See reducer.WithPayload for the polarity.
	Payload *bool `toml:"payload,omitempty" yaml:"payload,omitempty"`

	// Stores is the number of stores to fan out to. Zero means one.
	Stores int `toml:"stores" yaml:"stores"`

	Creators []CreatorSpec `toml:"creators" yaml:"creators"`
	Handlers []HandlerSpec `toml:"handlers" yaml:"handlers"`
	Steps    []Step        `toml:"steps" yaml:"steps"`

	// Expect, when set, is compared with the final state of every store.
	Expect *int64 `toml:"expect,omitempty" yaml:"expect,omitempty"`
}

// CreatorSpec declares an action creator.
type CreatorSpec struct {
	// Name is how handlers and steps refer to the creator.
	Name string `toml:"name" yaml:"name"`

	// Description is passed to action.New. Empty means Name.
	Description string `toml:"description,omitempty" yaml:"description,omitempty"`

	// Mode is ModeNone, ModeAssign or ModeBind.
	Mode string `toml:"mode,omitempty" yaml:"mode,omitempty"`
}

// HandlerSpec declares a reducer handler.
type HandlerSpec struct {
	// On names a creator. Names that are not creators are used as raw tags.
	On string `toml:"on" yaml:"on"`

	// Op is one of the Op constants.
	Op string `toml:"op" yaml:"op"`

	// Value replaces the payload as operand when set.
	Value *int64 `toml:"value,omitempty" yaml:"value,omitempty"`
}

// Step is either a single action or a batch of steps.
type Step struct {
	Action string  `toml:"action,omitempty" yaml:"action,omitempty"`
	Args   []int64 `toml:"args,omitempty" yaml:"args,omitempty"`
	Batch  []Step  `toml:"batch,omitempty" yaml:"batch,omitempty"`
}

// StoreCount returns the effective number of stores.
func (s *Scenario) StoreCount() int {
	if s.Stores < 1 {
		return 1
	}
	return s.Stores
}

// Validate checks references between creators, handlers and steps.
func (s *Scenario) Validate() error {
	names := make(map[string]bool, len(s.Creators))
	for _, c := range s.Creators {
		if c.Name == "" {
			return fmt.Errorf("%w: creator without name", ErrInvalidScenario)
		}
		if names[c.Name] {
			return fmt.Errorf("%w: creator %q declared twice", ErrInvalidScenario, c.Name)
		}
		switch c.Mode {
		case ModeNone, ModeAssign, ModeBind:
		default:
			return fmt.Errorf("%w: creator %q has mode %q", ErrInvalidScenario, c.Name, c.Mode)
		}
		names[c.Name] = true
	}

	for _, h := range s.Handlers {
		if h.On == "" {
			return fmt.Errorf("%w: handler without action", ErrInvalidScenario)
		}
		if !knownOps[h.Op] {
			return fmt.Errorf("%w: %q", ErrUnknownOp, h.Op)
		}
	}

	return validateSteps(s.Steps, names)
}

func validateSteps(steps []Step, names map[string]bool) error {
	for _, step := range steps {
		if len(step.Batch) > 0 {
			if step.Action != "" {
				return fmt.Errorf("%w: step has both action %q and batch", ErrInvalidScenario, step.Action)
			}
			if err := validateSteps(step.Batch, names); err != nil {
				return err
			}
			continue
		}
		if !names[step.Action] {
			return fmt.Errorf("%w: %q", ErrUnknownCreator, step.Action)
		}
	}
	return nil
}
