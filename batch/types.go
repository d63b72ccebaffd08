// Package batch implements the batch operation engine: it accumulates concurrent
// single-item submissions into store-native batch calls, with adaptive sizing driven by observed
// latency and success ratio. One Accumulator exists per (adapter, op-kind) pair.
package batch

import (
	"context"
	"time"

	"github.com/polyglotdb/coordinator/adapters"
)

// OpKind distinguishes the three submission shapes an accumulator can coalesce.
type OpKind string

const (
	OpWrite  OpKind = "write"
	OpRead   OpKind = "read"
	OpExists OpKind = "exists"
)

// Outcome is the result delivered on a submission's future: the write, read and exists
// contracts in one shape.
type Outcome struct {
	ID     string
	Record adapters.Record
	Found  bool
	Exists bool
	Err    error
}

// Submission is one producer's pending item, joined into its accumulator's queue.
type Submission struct {
	ID       string
	Record   adapters.Record
	Result   chan Outcome
	EnqueuedAt time.Time
}

// DispatchFunc executes one coalesced batch against the underlying adapter. The returned slice
// has exactly len(batch) entries in the same order; err is a transport-level failure that leaves
// every item in the batch un-dispatched, distinguished from per-item failures which are carried in the returned
// Outcomes' Err field and are never retried here.
type DispatchFunc func(ctx context.Context, batch []*Submission) ([]Outcome, error)
