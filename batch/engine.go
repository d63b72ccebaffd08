package batch

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/sasha-s/go-deadlock"

	"github.com/polyglotdb/coordinator/adapters"
	"github.com/polyglotdb/coordinator/configuration"
	"github.com/polyglotdb/coordinator/errorkinds"
	"github.com/polyglotdb/coordinator/retry"
)

// Engine is the public entry point of the batch layer
// (SubmitWrite/SubmitRead/SubmitExists/Flush/Stop), fanning submissions out to one
// Accumulator per (adapter, op-kind).
type Engine struct {
	cfg    configuration.BatchConfiguration
	retry  *retry.RetryPolicyConfiguration
	logger logr.Logger

	mu           deadlock.Mutex
	accumulators map[string]*Accumulator
	stopped      bool
}

// NewEngine constructs an empty engine; accumulators are created lazily per adapter on first use
// via RegisterAdapter.
func NewEngine(cfg configuration.BatchConfiguration, retryPolicy *retry.RetryPolicyConfiguration, logger logr.Logger) *Engine {
	return &Engine{
		cfg:          cfg,
		retry:        retryPolicy,
		logger:       logger,
		accumulators: make(map[string]*Accumulator),
	}
}

func key(adapterName string, op OpKind) string {
	return adapterName + "/" + string(op)
}

// RegisterAdapter creates the three accumulators (write/read/exists) for a given adapter, so
// submissions naming adapterName have somewhere to land. It is idempotent.
func (e *Engine) RegisterAdapter(adapterName string, a adapters.Adapter) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return
	}
	e.ensureAccumulator(adapterName, OpWrite, e.cfg.Write, writeDispatcher(a))
	e.ensureAccumulator(adapterName, OpRead, e.cfg.Read, readDispatcher(a))
	e.ensureAccumulator(adapterName, OpExists, e.cfg.Exists, existsDispatcher(a))
}

func (e *Engine) ensureAccumulator(adapterName string, op OpKind, cfg configuration.OpKindBatchConfiguration, dispatch DispatchFunc) {
	k := key(adapterName, op)
	if _, ok := e.accumulators[k]; ok {
		return
	}
	e.accumulators[k] = NewAccumulator(k, cfg, e.retry, e.logger, dispatch)
}

func (e *Engine) accumulatorFor(adapterName string, op OpKind) (*Accumulator, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return nil, errorkinds.Cancelled("batch engine stopped")
	}
	a, ok := e.accumulators[key(adapterName, op)]
	if !ok {
		return nil, fmt.Errorf("no accumulator registered for adapter %q op %q", adapterName, op)
	}
	return a, nil
}

// SubmitWrite joins record into the write accumulator for adapterName, returning a future of its
// outcome.
func (e *Engine) SubmitWrite(adapterName string, record adapters.Record) (chan Outcome, error) {
	acc, err := e.accumulatorFor(adapterName, OpWrite)
	if err != nil {
		return nil, err
	}
	return acc.Submit(&Submission{ID: record.ID, Record: record}), nil
}

// SubmitRead joins id into the read accumulator for adapterName, returning a future of
// record-or-absent.
func (e *Engine) SubmitRead(adapterName string, id string) (chan Outcome, error) {
	acc, err := e.accumulatorFor(adapterName, OpRead)
	if err != nil {
		return nil, err
	}
	return acc.Submit(&Submission{ID: id}), nil
}

// SubmitExists joins id into the exists accumulator for adapterName, returning a future of bool.
func (e *Engine) SubmitExists(adapterName string, id string) (chan Outcome, error) {
	acc, err := e.accumulatorFor(adapterName, OpExists)
	if err != nil {
		return nil, err
	}
	return acc.Submit(&Submission{ID: id}), nil
}

// Flush forces dispatch of every non-empty accumulator.
func (e *Engine) Flush() {
	for _, acc := range e.snapshotAccumulators() {
		acc.Flush()
	}
}

// Stop prevents further submissions and stops every accumulator; submissions still pending are
// not flushed and complete with cancelled.
func (e *Engine) Stop() {
	e.mu.Lock()
	e.stopped = true
	e.mu.Unlock()
	for _, acc := range e.snapshotAccumulators() {
		acc.Stop()
	}
}

func (e *Engine) snapshotAccumulators() []*Accumulator {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*Accumulator, 0, len(e.accumulators))
	for _, acc := range e.accumulators {
		out = append(out, acc)
	}
	return out
}

// writeDispatcher adapts adapters.Adapter.WriteBatch into a DispatchFunc.
func writeDispatcher(a adapters.Adapter) DispatchFunc {
	return func(ctx context.Context, batch []*Submission) ([]Outcome, error) {
		records := make([]adapters.Record, len(batch))
		for i, s := range batch {
			records[i] = s.Record
		}
		results, err := a.WriteBatch(ctx, records)
		if err != nil {
			return nil, err
		}
		outcomes := make([]Outcome, len(batch))
		for i, r := range results {
			outcomes[i] = Outcome{ID: batch[i].ID, Err: r.Err}
		}
		return outcomes, nil
	}
}

// readDispatcher adapts adapters.Adapter.ReadBatch into a DispatchFunc.
func readDispatcher(a adapters.Adapter) DispatchFunc {
	return func(ctx context.Context, batch []*Submission) ([]Outcome, error) {
		ids := make([]string, len(batch))
		for i, s := range batch {
			ids[i] = s.ID
		}
		found, err := a.ReadBatch(ctx, ids)
		if err != nil {
			return nil, err
		}
		outcomes := make([]Outcome, len(batch))
		for i, id := range ids {
			rec, ok := found[id]
			outcomes[i] = Outcome{ID: id, Record: rec, Found: ok}
		}
		return outcomes, nil
	}
}

// existsDispatcher adapts adapters.Adapter.ExistsBatch into a DispatchFunc.
func existsDispatcher(a adapters.Adapter) DispatchFunc {
	return func(ctx context.Context, batch []*Submission) ([]Outcome, error) {
		ids := make([]string, len(batch))
		for i, s := range batch {
			ids[i] = s.ID
		}
		exists, err := a.ExistsBatch(ctx, ids)
		if err != nil {
			return nil, err
		}
		outcomes := make([]Outcome, len(batch))
		for i, id := range ids {
			outcomes[i] = Outcome{ID: id, Exists: exists[id]}
		}
		return outcomes, nil
	}
}
