// Package future implements a minimal poll-based deferred computation
// contract: a Future reports Ready with its value or Pending, and a
// pending future invokes the Waker carried by the polling Context once
// progress is possible.
//
// Value is the degenerate case (ready at construction, waker never used);
// Deferred exercises the pending state and the wake path. Block is a
// single-goroutine driver; there is no scheduler or reactor behind it.
package future
