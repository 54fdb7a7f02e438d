package action_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuzn-ilya/redux-act-typings-tests/internal/action"
)

// recorder is a dispatch target that remembers what it received.
type recorder struct {
	name    string
	actions []action.Action
	log     *[]string
}

func (r *recorder) Dispatch(a action.Action) {
	r.actions = append(r.actions, a)
	if r.log != nil {
		*r.log = append(*r.log, r.name)
	}
}

func TestNewSerializableTag(t *testing.T) {
	c, err := action.New(action.Config{Description: "CREATOR_SERIALIZABLE"})
	require.NoError(t, err)

	assert.Equal(t, "CREATOR_SERIALIZABLE", c.Type())
	assert.Equal(t, "CREATOR_SERIALIZABLE", c.String())
	assert.True(t, action.Types().Has("CREATOR_SERIALIZABLE"))
}

func TestNewDuplicateTag(t *testing.T) {
	_, err := action.New(action.Config{Description: "CREATOR_DUPLICATE"})
	require.NoError(t, err)

	_, err = action.New(action.Config{Description: "CREATOR_DUPLICATE"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, action.ErrDuplicateTag))

	var dup *action.DuplicateTagError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "CREATOR_DUPLICATE", dup.Tag)
	assert.Contains(t, err.Error(), "CREATOR_DUPLICATE")
}

func TestMustNewPanicsOnDuplicate(t *testing.T) {
	action.MustNew(action.Config{Description: "CREATOR_MUST"})
	assert.Panics(t, func() {
		action.MustNew(action.Config{Description: "CREATOR_MUST"})
	})
}

func TestNewDuplicateAfterRemove(t *testing.T) {
	_, err := action.New(action.Config{Description: "CREATOR_REMOVED"})
	require.NoError(t, err)

	action.Types().Remove("CREATOR_REMOVED")

	_, err = action.New(action.Config{Description: "CREATOR_REMOVED"})
	assert.NoError(t, err)
}

func TestNewDuplicateCheckingDisabled(t *testing.T) {
	action.Types().DisableChecking()
	t.Cleanup(action.Types().EnableChecking)

	_, err := action.New(action.Config{Description: "CREATOR_RELOADED"})
	require.NoError(t, err)
	_, err = action.New(action.Config{Description: "CREATOR_RELOADED"})
	assert.NoError(t, err)
}

func TestNewSynthesizedTagsNeverCollide(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		desc := "same description"
		if i%2 == 0 {
			desc = ""
		}
		c, err := action.New(action.Config{Description: desc})
		require.NoError(t, err)
		require.False(t, seen[c.Type()], "tag %q repeated", c.Type())
		seen[c.Type()] = true
	}
}

func TestNewSynthesizedTagFormat(t *testing.T) {
	tests := []struct {
		description string
		suffix      string
	}{
		{"", "]"},
		{"increment", "] increment"},
		{"Mixed_Case", "] Mixed_Case"},
		{"lower_case_1", "] lower_case_1"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.description), func(t *testing.T) {
			c := action.MustNew(action.Config{Description: tt.description})
			assert.True(t, strings.HasPrefix(c.Type(), "["), c.Type())
			assert.True(t, strings.HasSuffix(c.Type(), tt.suffix), c.Type())
			assert.True(t, action.Types().Has(c.Type()))
		})
	}
}

func TestCallUnassigned(t *testing.T) {
	target := &recorder{}
	c := action.MustNew(action.Config{Description: "unassigned"})

	a := c.Call(42)

	assert.Equal(t, c.Type(), a.Type)
	assert.Equal(t, 42, a.Payload)
	assert.Nil(t, a.Meta)
	assert.False(t, a.Error)
	assert.Empty(t, target.actions)
	assert.False(t, c.Assigned())
	assert.False(t, c.Bound())
	assert.False(t, c.Dispatched())
}

func TestCallWithoutArgs(t *testing.T) {
	c := action.MustNew(action.Config{})
	a := c.Call()
	assert.Nil(t, a.Payload)
}

func TestCallTransforms(t *testing.T) {
	c := action.MustNew(action.Config{Description: "transforms"}.
		WithPayload(func(args ...any) any {
			return args[0].(int) + args[1].(int)
		}).
		WithMeta(func(args ...any) any {
			return fmt.Sprintf("%d args", len(args))
		}))

	a := c.Call(2, 3)
	assert.Equal(t, 5, a.Payload)
	assert.Equal(t, "2 args", a.Meta)
}

func TestAssignToFanOutOrder(t *testing.T) {
	var order []string
	t1 := &recorder{name: "t1", log: &order}
	t2 := &recorder{name: "t2", log: &order}

	c := action.MustNew(action.Config{Description: "fan out"})
	same := c.AssignTo(t1, t2)
	require.Same(t, c, same)

	a := c.Call(5)

	assert.Equal(t, []string{"t1", "t2"}, order)
	require.Len(t, t1.actions, 1)
	require.Len(t, t2.actions, 1)
	assert.Equal(t, a, t1.actions[0])
	assert.Equal(t, a, t2.actions[0])
	assert.True(t, c.Assigned())
	assert.False(t, c.Bound())
	assert.True(t, c.Dispatched())
}

func TestAssignToFunc(t *testing.T) {
	var got []action.Action
	c := action.MustNew(action.Config{}).AssignTo(action.DispatchFunc(func(a action.Action) {
		got = append(got, a)
	}))

	c.Call("x")
	require.Len(t, got, 1)
	assert.Equal(t, "x", got[0].Payload)
}

func TestAssignToNothingUnassigns(t *testing.T) {
	target := &recorder{}
	c := action.MustNew(action.Config{}).AssignTo(target)
	require.True(t, c.Assigned())

	c.AssignTo()
	assert.False(t, c.Assigned())
	assert.False(t, c.Dispatched())

	c.Call(1)
	assert.Empty(t, target.actions)
}

func TestAssignToNilTargets(t *testing.T) {
	var typed *recorder
	c := action.MustNew(action.Config{}).AssignTo(nil, action.DispatchFunc(nil), typed)
	assert.False(t, c.Assigned())
	assert.NotPanics(t, func() { c.Call(1) })

	target := &recorder{}
	c.AssignTo(typed, target)
	require.True(t, c.Assigned())
	c.Call(2)
	require.Len(t, target.actions, 1)

	b := c.BindTo(typed)
	assert.True(t, b.Bound())
	assert.NotPanics(t, func() { b.Call(3) })
}

func TestBindToDoesNotMutate(t *testing.T) {
	target := &recorder{}
	c := action.MustNew(action.Config{Description: "bind"})

	b := c.BindTo(target)

	require.NotSame(t, c, b)
	assert.Equal(t, c.Type(), b.Type())
	assert.False(t, c.Dispatched())
	assert.True(t, b.Bound())
	assert.False(t, b.Assigned())
	assert.True(t, b.Dispatched())

	c.Call(1)
	assert.Empty(t, target.actions)

	b.Call(2)
	require.Len(t, target.actions, 1)
	assert.Equal(t, 2, target.actions[0].Payload)
}

func TestBoundIgnoresAssignTo(t *testing.T) {
	t1 := &recorder{}
	t2 := &recorder{}
	b := action.MustNew(action.Config{}).BindTo(t1)

	same := b.AssignTo(t2)
	require.Same(t, b, same)
	assert.True(t, b.Bound())

	b.Call()
	assert.Len(t, t1.actions, 1)
	assert.Empty(t, t2.actions)
}

func TestBindToFromAssigned(t *testing.T) {
	assignedTarget := &recorder{}
	boundTarget := &recorder{}
	c := action.MustNew(action.Config{}).AssignTo(assignedTarget)
	b := c.BindTo(boundTarget)

	b.Call()
	assert.Empty(t, assignedTarget.actions)
	assert.Len(t, boundTarget.actions, 1)

	c.Call()
	assert.Len(t, assignedTarget.actions, 1)
	assert.Len(t, boundTarget.actions, 1)
}

func TestRawNeverDispatches(t *testing.T) {
	target := &recorder{}
	base := action.MustNew(action.Config{Description: "raw"})

	creators := map[string]*action.Creator{
		"unassigned": action.MustNew(action.Config{}),
		"assigned":   action.MustNew(action.Config{}).AssignTo(target),
		"bound":      base.BindTo(target),
	}

	for name, c := range creators {
		t.Run(name, func(t *testing.T) {
			raw := c.Raw(7)
			assert.Equal(t, c.Type(), raw.Type)
			assert.Equal(t, 7, raw.Payload)
		})
	}
	assert.Empty(t, target.actions)

	raw := creators["assigned"].Raw(9)
	called := creators["assigned"].Call(9)
	assert.Equal(t, raw, called)
	assert.Len(t, target.actions, 1)
}

func TestAsError(t *testing.T) {
	target := &recorder{}
	c := action.MustNew(action.Config{}).AssignTo(target)

	a := c.AsError("boom")
	assert.True(t, a.Error)
	assert.Equal(t, "boom", a.Payload)
	require.Len(t, target.actions, 1)
	assert.True(t, target.actions[0].Error)
}

func TestErrorPayloadMarksAction(t *testing.T) {
	c := action.MustNew(action.Config{})
	a := c.Call(errors.New("failed"))
	assert.True(t, a.Error)

	a = c.Call("fine")
	assert.False(t, a.Error)
}

func TestTagKey(t *testing.T) {
	var k action.Key = action.Tag("RAW_TAG")
	assert.Equal(t, "RAW_TAG", k.Type())

	k = action.MustNew(action.Config{})
	assert.NotEmpty(t, k.Type())
}
