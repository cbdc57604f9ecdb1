package future

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuePollReady(t *testing.T) {
	f := NewValue(42)
	cx := NewContext(NoopWaker())

	p := f.Poll(cx)
	require.True(t, p.IsReady())

	v, ok := p.Value()
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestValueCarriesConstructionValue(t *testing.T) {
	f := NewValue("pinned")
	v, ok := f.Poll(NewContext(NoopWaker())).Value()
	require.True(t, ok)
	assert.Equal(t, "pinned", v)
}

func TestValueNeverWakes(t *testing.T) {
	woke := false
	cx := NewContext(NewWaker(func() { woke = true }))

	Block[int](NewValue(7))
	NewValue(7).Poll(cx)
	assert.False(t, woke)
}

func TestPendingPoll(t *testing.T) {
	p := Pending[int]()
	assert.False(t, p.IsReady())

	_, ok := p.Value()
	assert.False(t, ok)
}

func TestDeferredLifecycle(t *testing.T) {
	d := NewDeferred[string]()
	woke := make(chan struct{}, 1)
	cx := NewContext(NewWaker(func() { woke <- struct{}{} }))

	assert.False(t, d.Poll(cx).IsReady())

	d.Complete("done")

	select {
	case <-woke:
	case <-time.After(time.Second):
		t.Fatal("waker was not invoked on completion")
	}

	v, ok := d.Poll(cx).Value()
	require.True(t, ok)
	assert.Equal(t, "done", v)
}

func TestDeferredCompleteTwice(t *testing.T) {
	d := NewDeferred[int]()
	d.Complete(1)
	d.Complete(2)

	v, ok := d.Poll(NewContext(NoopWaker())).Value()
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestBlockOnValue(t *testing.T) {
	assert.Equal(t, 42, Block[int](NewValue(42)))
}

func TestBlockOnDeferred(t *testing.T) {
	d := NewDeferred[int]()
	go func() {
		time.Sleep(10 * time.Millisecond)
		d.Complete(99)
	}()
	assert.Equal(t, 99, Block[int](d))
}

func TestNoopWakerIsSafe(t *testing.T) {
	assert.NotPanics(t, func() { NoopWaker().Wake() })
}
