// Package id provides centralized ID generation for the tour.
//
// Run IDs are prefixed ULIDs: lexicographically sortable, so transcripts
// and log lines from consecutive runs order by time. Per-execution tags
// are plain UUIDs.
package id

import (
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// RunID identifies one full tour run.
type RunID string

// ExecID identifies a single tool execution within a run.
type ExecID string

const runPrefix = "run"

var entropyPool = sync.Pool{
	New: func() interface{} {
		return ulid.Monotonic(rand.Reader, 0)
	},
}

func newULID() string {
	entropy := entropyPool.Get().(*ulid.MonotonicEntropy)
	defer entropyPool.Put(entropy)

	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		// crypto/rand failure; fall back to a time-only ULID
		return ulid.Make().String()
	}
	return id.String()
}

// NewRunID generates a new run ID.
func NewRunID() RunID {
	return RunID(fmt.Sprintf("%s_%s", runPrefix, newULID()))
}

// NewExecID generates a new execution tag.
func NewExecID() ExecID {
	return ExecID(uuid.New().String())
}

// String implements fmt.Stringer.
func (r RunID) String() string { return string(r) }

// String implements fmt.Stringer.
func (e ExecID) String() string { return string(e) }
