package action_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuzn-ilya/redux-act-typings-tests/internal/action"
)

func TestBatchPayloadForms(t *testing.T) {
	inc := action.MustNew(action.Config{Description: "batch inc"})
	dec := action.MustNew(action.Config{Description: "batch dec"})

	variadic := action.Batch.Raw(inc.Raw(), inc.Raw(), dec.Raw())
	slice := action.Batch.Raw([]action.Action{inc.Raw(), inc.Raw(), dec.Raw()})

	assert.Equal(t, variadic, slice)

	actions, ok := action.BatchActions(variadic)
	require.True(t, ok)
	require.Len(t, actions, 3)
	assert.Equal(t, inc.Type(), actions[0].Type)
	assert.Equal(t, dec.Type(), actions[2].Type)
}

func TestBatchSkipsNonActions(t *testing.T) {
	inc := action.MustNew(action.Config{})
	a := action.Batch.Raw(inc.Raw(), 5, "x", nil)

	actions, ok := action.BatchActions(a)
	require.True(t, ok)
	assert.Len(t, actions, 1)
}

func TestBatchActionsNotBatch(t *testing.T) {
	a := action.MustNew(action.Config{}).Raw()
	actions, ok := action.BatchActions(a)
	assert.False(t, ok)
	assert.Nil(t, actions)
	assert.False(t, a.IsBatch())
	assert.True(t, action.NewBatch().IsBatch())
}

func TestDisbatch(t *testing.T) {
	target := &recorder{}
	inc := action.MustNew(action.Config{}).AssignTo(target)

	// Raw keeps the assigned creator from dispatching on its own.
	a, err := action.Disbatch(target, inc.Raw(1), inc.Raw(2))
	require.NoError(t, err)

	require.Len(t, target.actions, 1)
	assert.Equal(t, a, target.actions[0])
	assert.True(t, target.actions[0].IsBatch())

	actions, _ := action.BatchActions(target.actions[0])
	require.Len(t, actions, 2)
	assert.Equal(t, 1, actions[0].Payload)
	assert.Equal(t, 2, actions[1].Payload)
}

func TestDisbatchNilTarget(t *testing.T) {
	_, err := action.Disbatch(nil, action.NewBatch())
	assert.ErrorIs(t, err, action.ErrNilTarget)

	var typed *recorder
	assert.NotPanics(t, func() {
		_, err = action.Disbatch(typed, action.NewBatch())
	})
	assert.ErrorIs(t, err, action.ErrNilTarget)

	_, err = action.Disbatch(action.DispatchFunc(nil))
	assert.ErrorIs(t, err, action.ErrNilTarget)
}

func TestWithDisbatch(t *testing.T) {
	target := &recorder{}
	inc := action.MustNew(action.Config{})

	d, err := action.WithDisbatch(target)
	require.NoError(t, err)
	require.Same(t, target, d.Target)

	d.Disbatch(inc.Raw(), inc.Raw())
	d.Dispatch(inc.Raw())

	require.Len(t, target.actions, 2)
	assert.True(t, target.actions[0].IsBatch())
	assert.Equal(t, inc.Type(), target.actions[1].Type)
}

func TestWithDisbatchNilTarget(t *testing.T) {
	_, err := action.WithDisbatch[action.Dispatcher](nil)
	assert.ErrorIs(t, err, action.ErrNilTarget)

	var typed *recorder
	_, err = action.WithDisbatch(typed)
	assert.ErrorIs(t, err, action.ErrNilTarget)
}
