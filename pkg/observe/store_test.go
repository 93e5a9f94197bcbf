package observe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_PrimitivesPassThrough(t *testing.T) {
	assert.Equal(t, 42, Wrap(42, nil))
	assert.Equal(t, "hi", Wrap("hi", nil))
	assert.Nil(t, Wrap(nil, nil))
}

func TestWrap_Idempotent(t *testing.T) {
	root := Wrap(map[string]any{"a": 1}, nil)
	require.IsType(t, &Object{}, root)

	again := Wrap(root, nil)
	assert.Same(t, root, again, "wrapping a wrapped value must be a no-op")
}

func TestObject_SetNotifiesWithPath(t *testing.T) {
	var changes []Change
	root := Wrap(map[string]any{"a": map[string]any{"b": 1}}, func(c Change) {
		changes = append(changes, c)
	}).(*Object)

	a := root.Get("a").(*Object)
	a.Set("b", 2)

	require.Len(t, changes, 1)
	c := changes[0]
	assert.Equal(t, "b", c.Key)
	assert.Equal(t, 2, c.Value)
	assert.True(t, c.HasValue)
	assert.Equal(t, "a.b", c.Path)
	assert.Same(t, a, c.Target)
}

func TestObject_GetMemoizesNestedWrapper(t *testing.T) {
	root := Wrap(map[string]any{"nested": map[string]any{"x": 1}}, nil).(*Object)

	first := root.Get("nested")
	second := root.Get("nested")

	require.IsType(t, &Object{}, first)
	assert.Same(t, first, second, "repeated reads must return the same wrapper")
	assert.Equal(t, "nested", first.(*Object).Path())
}

func TestObject_GetMissingKey(t *testing.T) {
	root := Wrap(map[string]any{}, nil).(*Object)
	assert.Nil(t, root.Get("absent"))
	assert.False(t, root.Has("absent"))
}

func TestObject_DeleteNotifiesWithoutValue(t *testing.T) {
	var changes []Change
	root := Wrap(map[string]any{"k": "v"}, func(c Change) {
		changes = append(changes, c)
	}).(*Object)

	root.Delete("k")

	require.Len(t, changes, 1)
	assert.Equal(t, "k", changes[0].Key)
	assert.False(t, changes[0].HasValue)
	assert.Equal(t, "k", changes[0].Path)
	assert.False(t, root.Has("k"))
}

func TestObject_Keys(t *testing.T) {
	root := Wrap(map[string]any{"b": 1, "a": 2, "c": 3}, nil).(*Object)
	assert.Equal(t, []string{"a", "b", "c"}, root.Keys())
	assert.Equal(t, 3, root.Len())
}

func TestObject_SetWithoutListener(t *testing.T) {
	root := Wrap(map[string]any{"k": 0}, nil).(*Object)
	root.Set("k", 1) // must not panic
	assert.Equal(t, 1, root.Get("k"))
}

func TestList_PushEmitsIndexWritesThenLength(t *testing.T) {
	var changes []Change
	root := Wrap(map[string]any{"list": []any{"one", "two"}}, func(c Change) {
		changes = append(changes, c)
	}).(*Object)

	list := root.Get("list").(*List)
	n := list.Push("three")

	assert.Equal(t, 3, n)
	require.Len(t, changes, 2, "one index write plus one length write")

	assert.Equal(t, "2", changes[0].Key)
	assert.Equal(t, "three", changes[0].Value)
	assert.Equal(t, "list.2", changes[0].Path)

	assert.Equal(t, LengthKey, changes[1].Key)
	assert.Equal(t, 3, changes[1].Value)
	assert.Equal(t, "list.length", changes[1].Path)
}

func TestList_SetIndex(t *testing.T) {
	var changes []Change
	list := Wrap([]any{"a", "b"}, func(c Change) {
		changes = append(changes, c)
	}).(*List)

	list.SetIndex(1, "B")

	require.Len(t, changes, 1)
	assert.Equal(t, "1", changes[0].Key)
	assert.Equal(t, "B", changes[0].Value)
	assert.Equal(t, "1", changes[0].Path)
	assert.Equal(t, "B", list.Index(1))
}

func TestList_IndexWrapsNestedObjects(t *testing.T) {
	var changes []Change
	list := Wrap([]any{map[string]any{"x": 1}}, func(c Change) {
		changes = append(changes, c)
	}).(*List)

	item := list.Index(0).(*Object)
	assert.Same(t, item, list.Index(0))

	item.Set("x", 2)
	require.Len(t, changes, 1)
	assert.Equal(t, "0.x", changes[0].Path)
}

func TestList_Pop(t *testing.T) {
	var changes []Change
	list := Wrap([]any{"a", "b"}, func(c Change) {
		changes = append(changes, c)
	}).(*List)

	v := list.Pop()

	assert.Equal(t, "b", v)
	assert.Equal(t, 1, list.Len())
	require.Len(t, changes, 2)
	assert.False(t, changes[0].HasValue)
	assert.Equal(t, "1", changes[0].Key)
	assert.Equal(t, LengthKey, changes[1].Key)

	list.Pop()
	assert.Nil(t, list.Pop(), "pop on empty list returns nil")
}

func TestDeepNestedPath(t *testing.T) {
	var changes []Change
	root := Wrap(map[string]any{
		"a": map[string]any{
			"b": map[string]any{"c": 1},
		},
	}, func(c Change) {
		changes = append(changes, c)
	}).(*Object)

	root.Get("a").(*Object).Get("b").(*Object).Set("c", 9)

	require.Len(t, changes, 1)
	assert.Equal(t, "a.b.c", changes[0].Path)
}
