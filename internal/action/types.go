package action

import (
	"regexp"
	"sync"
)

// serializable matches descriptions used verbatim as tags.
var serializable = regexp.MustCompile(`^[0-9A-Z_]+$`)

// IsSerializable reports whether description would be used as a tag verbatim.
func IsSerializable(description string) bool {
	return serializable.MatchString(description)
}

// Registry tracks every action type in use.
type Registry struct {
	mu       sync.RWMutex
	tags     map[string]struct{}
	order    []string // insertion order of live tags
	checking bool
}

// NewRegistry creates an empty registry with duplicate checking enabled.
func NewRegistry() *Registry {
	return &Registry{
		tags:     make(map[string]struct{}),
		checking: true,
	}
}

// types is the process-wide registry used by New.
var types = NewRegistry()

// Types returns the process-wide tag registry.
func Types() *Registry {
	return types
}

// Add registers a tag. Adding an existing tag is a no-op.
func (r *Registry) Add(tag string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addLocked(tag)
}

func (r *Registry) addLocked(tag string) {
	if _, ok := r.tags[tag]; ok {
		return
	}
	r.tags[tag] = struct{}{}
	r.order = append(r.order, tag)
}

// Remove unregisters a tag. Removing an unknown tag is a no-op.
func (r *Registry) Remove(tag string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tags[tag]; !ok {
		return
	}
	delete(r.tags, tag)
	for i, t := range r.order {
		if t == tag {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Has returns true if the tag is registered.
func (r *Registry) Has(tag string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.tags[tag]
	return ok
}

// All returns the registered tags in registration order.
func (r *Registry) All() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, len(r.order))
	copy(result, r.order)
	return result
}

// Clear removes every registered tag.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tags = make(map[string]struct{})
	r.order = nil
}

// Check returns a *DuplicateTagError if tag is registered and checking is enabled.
func (r *Registry) Check(tag string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.checkLocked(tag)
}

func (r *Registry) checkLocked(tag string) error {
	if !r.checking {
		return nil
	}
	if _, ok := r.tags[tag]; ok {
		return &DuplicateTagError{Tag: tag}
	}
	return nil
}

// DisableChecking turns off duplicate detection.
// Useful with hot reloading, where modules defining creators are evaluated again.
func (r *Registry) DisableChecking() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checking = false
}

// EnableChecking turns duplicate detection back on.
func (r *Registry) EnableChecking() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checking = true
}

// checkAndAdd registers tag, failing if it is a checked duplicate.
// The check and the insert happen under one lock.
func (r *Registry) checkAndAdd(tag string, check bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if check {
		if err := r.checkLocked(tag); err != nil {
			return err
		}
	}
	r.addLocked(tag)
	return nil
}
