package action

import (
	"strconv"
	"sync"
	"sync/atomic"
)

// PayloadFunc turns call arguments into an action payload.
type PayloadFunc func(args ...any) any

// MetaFunc turns call arguments into action meta data.
type MetaFunc func(args ...any) any

// Config holds the construction options of a Creator.
type Config struct {
	// Description names the action. A description matching ^[0-9A-Z_]+$ is
	// used as the tag verbatim; anything else becomes part of a synthesized tag.
	Description string

	// Payload builds the payload from call arguments.
	// Nil means the first argument (or nil when called without arguments).
	Payload PayloadFunc

	// Meta builds the meta data from call arguments.
	// Nil means actions carry no meta.
	Meta MetaFunc
}

// WithPayload returns a copy of the config with the payload transform set.
func (c Config) WithPayload(fn PayloadFunc) Config {
	c.Payload = fn
	return c
}

// WithMeta returns a copy of the config with the meta transform set.
func (c Config) WithMeta(fn MetaFunc) Config {
	c.Meta = fn
	return c
}

// Identity is the default payload transform: it returns the first argument.
func Identity(args ...any) any {
	if len(args) == 0 {
		return nil
	}
	return args[0]
}

// association is the dispatch state of a Creator.
type association int

const (
	unassigned association = iota
	assigned
	bound
)

// sequence numbers synthesized tags.
var sequence atomic.Uint64

// Creator builds actions of a single type.
//
// The dispatch association is process-lifetime state. It changes only through
// AssignTo on the creator itself; BindTo produces a separate Creator.
type Creator struct {
	typ     string
	payload PayloadFunc
	meta    MetaFunc

	mu      sync.RWMutex
	mode    association
	targets []Dispatcher
}

// New creates a Creator and registers its tag.
// It returns a *DuplicateTagError when a serializable description is already
// registered.
func New(cfg Config) (*Creator, error) {
	var tag string
	if IsSerializable(cfg.Description) {
		tag = cfg.Description
		if err := types.checkAndAdd(tag, true); err != nil {
			return nil, err
		}
	} else {
		tag = "[" + strconv.FormatUint(sequence.Add(1), 10) + "]"
		if cfg.Description != "" {
			tag += " " + cfg.Description
		}
		// Sequence numbers never repeat, so the registry only records it.
		_ = types.checkAndAdd(tag, false)
	}

	payload := cfg.Payload
	if payload == nil {
		payload = Identity
	}

	return &Creator{
		typ:     tag,
		payload: payload,
		meta:    cfg.Meta,
	}, nil
}

// MustNew is like New but panics on error.
// Intended for package-level creator variables.
func MustNew(cfg Config) *Creator {
	c, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return c
}

// Type returns the action type. It implements Key.
func (c *Creator) Type() string {
	return c.typ
}

// String returns the action type.
func (c *Creator) String() string {
	return c.typ
}

// Raw builds the action without dispatching it, whatever the association.
func (c *Creator) Raw(args ...any) Action {
	a := Action{
		Type:    c.typ,
		Payload: c.payload(args...),
	}
	if c.meta != nil {
		a.Meta = c.meta(args...)
	}
	if _, ok := a.Payload.(error); ok {
		a.Error = true
	}
	return a
}

// Call builds the action, dispatches it to every associated target in order
// and returns it. An unassigned Creator only returns the action.
func (c *Creator) Call(args ...any) Action {
	a := c.Raw(args...)
	c.dispatch(a)
	return a
}

// AsError is like Call but marks the action as an error.
func (c *Creator) AsError(args ...any) Action {
	a := c.Raw(args...)
	a.Error = true
	c.dispatch(a)
	return a
}

// dispatch sends a to the associated targets.
// Targets are copied first so a target may reassign the creator.
func (c *Creator) dispatch(a Action) {
	c.mu.RLock()
	targets := make([]Dispatcher, len(c.targets))
	copy(targets, c.targets)
	c.mu.RUnlock()

	for _, t := range targets {
		t.Dispatch(a)
	}
}

// AssignTo associates the creator itself with targets and returns it.
// Calling AssignTo without targets removes the association.
// A bound Creator keeps its binding and is returned unchanged.
func (c *Creator) AssignTo(targets ...Dispatcher) *Creator {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode == bound {
		return c
	}

	c.targets = normalize(targets)
	if len(c.targets) == 0 {
		c.mode = unassigned
	} else {
		c.mode = assigned
	}
	return c
}

// BindTo returns a new Creator sharing the tag and transforms of c, bound to
// targets. The receiver is not modified.
func (c *Creator) BindTo(targets ...Dispatcher) *Creator {
	return &Creator{
		typ:     c.typ,
		payload: c.payload,
		meta:    c.meta,
		mode:    bound,
		targets: normalize(targets),
	}
}

// Assigned returns true if AssignTo attached targets to this creator.
func (c *Creator) Assigned() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode == assigned
}

// Bound returns true if this creator was produced by BindTo.
func (c *Creator) Bound() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode == bound
}

// Dispatched returns true if calling the creator dispatches.
func (c *Creator) Dispatched() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode != unassigned
}

// normalize drops nil targets, including typed nils.
func normalize(targets []Dispatcher) []Dispatcher {
	result := make([]Dispatcher, 0, len(targets))
	for _, t := range targets {
		if !isNil(t) {
			result = append(result, t)
		}
	}
	return result
}
