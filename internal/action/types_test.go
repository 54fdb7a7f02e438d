package action_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuzn-ilya/redux-act-typings-tests/internal/action"
)

func TestRegistryAddHasRemove(t *testing.T) {
	r := action.NewRegistry()

	assert.False(t, r.Has("A"))
	r.Add("A")
	assert.True(t, r.Has("A"))

	r.Remove("A")
	assert.False(t, r.Has("A"))

	// Removing twice is harmless.
	r.Remove("A")
	assert.Empty(t, r.All())
}

func TestRegistryAllOrder(t *testing.T) {
	r := action.NewRegistry()
	r.Add("B")
	r.Add("A")
	r.Add("C")
	r.Add("A")

	assert.Equal(t, []string{"B", "A", "C"}, r.All())

	r.Remove("A")
	assert.Equal(t, []string{"B", "C"}, r.All())
}

func TestRegistryClear(t *testing.T) {
	r := action.NewRegistry()
	r.Add("A")
	r.Add("B")

	r.Clear()
	assert.Empty(t, r.All())
	assert.False(t, r.Has("A"))
}

func TestRegistryCheck(t *testing.T) {
	r := action.NewRegistry()
	require.NoError(t, r.Check("A"))

	r.Add("A")
	err := r.Check("A")
	require.Error(t, err)
	assert.True(t, errors.Is(err, action.ErrDuplicateTag))

	r.DisableChecking()
	assert.NoError(t, r.Check("A"))

	r.EnableChecking()
	assert.Error(t, r.Check("A"))
}

func TestTypesClearAllowsRecreate(t *testing.T) {
	action.MustNew(action.Config{Description: "TYPES_CLEARED"})
	require.True(t, action.Types().Has("TYPES_CLEARED"))

	action.Types().Clear()
	assert.False(t, action.Types().Has("TYPES_CLEARED"))

	_, err := action.New(action.Config{Description: "TYPES_CLEARED"})
	assert.NoError(t, err)
}

func TestTypesAddBlocksCreator(t *testing.T) {
	action.Types().Add("TYPES_EXTERNAL")
	t.Cleanup(func() { action.Types().Remove("TYPES_EXTERNAL") })

	_, err := action.New(action.Config{Description: "TYPES_EXTERNAL"})
	assert.ErrorIs(t, err, action.ErrDuplicateTag)
}

func TestIsSerializable(t *testing.T) {
	tests := []struct {
		description string
		want        bool
	}{
		{"INCREMENT", true},
		{"ADD_TODO_2", true},
		{"123", true},
		{"", false},
		{"increment", false},
		{"Add Todo", false},
		{"ADD-TODO", false},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			assert.Equal(t, tt.want, action.IsSerializable(tt.description))
		})
	}
}
