package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-yuzu/yuzu/pkg/errors"
	"github.com/go-yuzu/yuzu/pkg/observe"
)

func TestContainer_ForwardsChanges(t *testing.T) {
	c := New(map[string]any{"n": 1})

	var got []observe.Change
	c.AddListener(func(ch observe.Change) { got = append(got, ch) })

	c.Object().Set("n", 2)

	require.Len(t, got, 1)
	assert.Equal(t, "n", got[0].Key)
	assert.Equal(t, 2, got[0].Value)
}

func TestContainer_FiltersLengthWrites(t *testing.T) {
	c := New(map[string]any{"list": []any{"one", "two"}})

	var got []observe.Change
	c.AddListener(func(ch observe.Change) { got = append(got, ch) })

	list := c.Object().Get("list").(*observe.List)
	list.Push("three")

	assert.Equal(t, 3, list.Len())
	require.Len(t, got, 1, "element write propagates, trailing length write is filtered")
	assert.Equal(t, "list.2", got[0].Path)
}

func TestContainer_FiltersRootLengthWrite(t *testing.T) {
	c := New([]any{"a"})

	var got []observe.Change
	c.AddListener(func(ch observe.Change) { got = append(got, ch) })

	c.Value().(*observe.List).Push("b")

	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].Path)
}

func TestContainer_ListenersFireInRegistrationOrder(t *testing.T) {
	c := New(map[string]any{"n": 0})

	var order []string
	c.AddListener(func(observe.Change) { order = append(order, "first") })
	c.AddListener(func(observe.Change) { order = append(order, "second") })

	c.Object().Set("n", 1)

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestContainer_RemoveListener(t *testing.T) {
	c := New(map[string]any{"n": 0})

	calls := 0
	listener := observe.Listener(func(observe.Change) { calls++ })
	c.AddListener(listener)

	c.Object().Set("n", 1)
	c.RemoveListener(listener)
	c.Object().Set("n", 2)

	assert.Equal(t, 1, calls)

	// Removing again, or removing something never added, is a no-op.
	c.RemoveListener(listener)
	c.RemoveListener(func(observe.Change) {})
	c.RemoveListener(nil)
}

func TestContainer_AddListenerReturnsRemover(t *testing.T) {
	c := New(map[string]any{"n": 0})

	calls := 0
	remove := c.AddListener(func(observe.Change) { calls++ })

	c.Object().Set("n", 1)
	remove()
	c.Object().Set("n", 2)
	remove() // idempotent

	assert.Equal(t, 1, calls)
}

func TestContainer_NilListenerIgnored(t *testing.T) {
	c := New(map[string]any{"n": 0})
	c.AddListener(nil)
	c.Object().Set("n", 1) // must not panic
}

func TestContainer_NonContainerPassesThrough(t *testing.T) {
	c := New(42)
	assert.Equal(t, 42, c.Value())
	assert.Nil(t, c.Object())
}

func TestContainer_AffinityViolationReported(t *testing.T) {
	reported := make(chan *errors.EngineError, 1)
	errors.SetHandler(&affinityHandler{ch: reported})
	defer errors.SetHandler(nil)

	c := New(map[string]any{"n": 0})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.Object().Set("n", 1)
	}()
	wg.Wait()

	select {
	case err := <-reported:
		assert.Equal(t, errors.KindState, err.Kind)
	default:
		t.Fatal("expected cross-goroutine mutation to be reported")
	}
}

type affinityHandler struct {
	ch chan *errors.EngineError
}

func (h *affinityHandler) HandleError(err *errors.EngineError) {
	select {
	case h.ch <- err:
	default:
	}
}

func (h *affinityHandler) HandlePanic(*errors.PanicError) {}
