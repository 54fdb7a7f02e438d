package action

import (
	"errors"
	"fmt"
)

// Action errors.
var (
	// ErrDuplicateTag indicates a serializable tag is already registered.
	ErrDuplicateTag = errors.New("action: duplicate action type")

	// ErrNilTarget indicates a dispatch target was required but nil.
	ErrNilTarget = errors.New("action: nil dispatch target")
)

// DuplicateTagError is returned when a Creator is constructed with a
// serializable tag that is already present in the tag registry.
type DuplicateTagError struct {
	Tag string
}

func (e *DuplicateTagError) Error() string {
	return fmt.Sprintf("action: duplicate action type %q", e.Tag)
}

// Is reports whether target is ErrDuplicateTag.
func (e *DuplicateTagError) Is(target error) bool {
	return target == ErrDuplicateTag
}
