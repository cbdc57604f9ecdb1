package future

import "sync"

// Poll is the outcome of asking a Future for its result: either ready,
// carrying the value, or pending.
type Poll[T any] struct {
	value T
	ready bool
}

// Ready builds a poll outcome carrying a resolved value.
func Ready[T any](v T) Poll[T] {
	return Poll[T]{value: v, ready: true}
}

// Pending builds a poll outcome indicating the value is not available yet.
func Pending[T any]() Poll[T] {
	return Poll[T]{}
}

// IsReady reports whether the poll resolved.
func (p Poll[T]) IsReady() bool { return p.ready }

// Value returns the resolved value and whether it is valid.
func (p Poll[T]) Value() (T, bool) {
	return p.value, p.ready
}

// Waker is the notification handle a pending future invokes when progress
// becomes possible. It is constructible independent of any executor.
type Waker struct {
	wake func()
}

// NewWaker wraps a wake callback.
func NewWaker(fn func()) Waker {
	return Waker{wake: fn}
}

// NoopWaker returns a waker whose wake action does nothing. Sufficient for
// driving futures that are ready at construction time.
func NoopWaker() Waker {
	return Waker{}
}

// Wake signals that the future may be polled again.
func (w Waker) Wake() {
	if w.wake != nil {
		w.wake()
	}
}

// Context carries the waker through a poll call.
type Context struct {
	waker Waker
}

// NewContext builds a polling context from a waker.
func NewContext(w Waker) *Context {
	return &Context{waker: w}
}

// Waker returns the context's waker.
func (c *Context) Waker() Waker { return c.waker }

// Future is a deferred computation checked via Poll. Once a poll returns a
// ready outcome the caller must not poll again.
type Future[T any] interface {
	Poll(cx *Context) Poll[T]
}

// Value wraps a single precomputed value and reports it as immediately
// ready. The waker is never invoked: readiness precedes the first poll.
type Value[T any] struct {
	value T
}

// NewValue creates a future resolved with v.
func NewValue[T any](v T) *Value[T] {
	return &Value[T]{value: v}
}

// Poll always resolves with the construction value.
func (f *Value[T]) Poll(_ *Context) Poll[T] {
	return Ready(f.value)
}

// Deferred starts pending and resolves when Complete is called. The waker
// supplied by the most recent poll is invoked on completion, so a blocked
// driver knows to poll again.
type Deferred[T any] struct {
	mu       sync.Mutex
	value    T
	done     bool
	waker    Waker
	hasWaker bool
}

// NewDeferred creates an unresolved future.
func NewDeferred[T any]() *Deferred[T] {
	return &Deferred[T]{}
}

// Poll returns the value if Complete has run, otherwise records the
// context's waker and reports pending.
func (d *Deferred[T]) Poll(cx *Context) Poll[T] {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.done {
		return Ready(d.value)
	}
	d.waker = cx.Waker()
	d.hasWaker = true
	return Pending[T]()
}

// Complete resolves the future with v. Completing twice is a no-op beyond
// the first call.
func (d *Deferred[T]) Complete(v T) {
	d.mu.Lock()
	if d.done {
		d.mu.Unlock()
		return
	}
	d.value = v
	d.done = true
	waker, hasWaker := d.waker, d.hasWaker
	d.mu.Unlock()

	if hasWaker {
		waker.Wake()
	}
}

// Block drives a future to completion on the calling goroutine: it polls
// with a waker that signals a channel and parks between pending polls.
// A future that is ready up front resolves on the first poll without the
// waker ever firing.
func Block[T any](f Future[T]) T {
	wakeCh := make(chan struct{}, 1)
	cx := NewContext(NewWaker(func() {
		select {
		case wakeCh <- struct{}{}:
		default:
		}
	}))

	for {
		if v, ok := f.Poll(cx).Value(); ok {
			return v
		}
		<-wakeCh
	}
}
