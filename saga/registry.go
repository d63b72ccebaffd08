package saga

import (
	"context"
	"time"

	"github.com/go-logr/logr"
	"github.com/sasha-s/go-deadlock"

	"github.com/polyglotdb/coordinator/configuration"
	"github.com/polyglotdb/coordinator/model"
	"github.com/polyglotdb/coordinator/parallelisation"
)

// TransactionRegistry is a single mutex-guarded map of known transactions; lookup is O(1) and
// lock hold time is bounded to the map operation itself.
// Completed transactions are evicted after a configurable retention period; failed
// and compensated-with-failure transactions are retained indefinitely.
type TransactionRegistry struct {
	cfg    configuration.RetentionConfiguration
	logger logr.Logger

	mu           deadlock.Mutex
	transactions map[string]*Transaction
}

// NewTransactionRegistry constructs a registry and starts its background eviction timer.
func NewTransactionRegistry(cfg configuration.RetentionConfiguration, logger logr.Logger) *TransactionRegistry {
	r := &TransactionRegistry{
		cfg:          cfg,
		logger:       logger,
		transactions: make(map[string]*Transaction),
	}
	period := cfg.CompletedTransactionRetention
	if period <= 0 {
		period = time.Hour
	}
	parallelisation.SafeSchedule(context.Background(), period/4, 0, func(ctx context.Context, _ time.Time) {
		r.evict()
	})
	return r
}

// Put inserts or updates a transaction's entry.
func (r *TransactionRegistry) Put(tx *Transaction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions[tx.ID] = tx
}

// Get returns an observable snapshot of a known transaction.
func (r *TransactionRegistry) Get(id string) (model.TransactionSnapshot, bool) {
	r.mu.Lock()
	tx, ok := r.transactions[id]
	r.mu.Unlock()
	if !ok {
		return model.TransactionSnapshot{}, false
	}
	return tx.Snapshot(), true
}

func (r *TransactionRegistry) evict() {
	retention := r.cfg.CompletedTransactionRetention
	if retention <= 0 {
		retention = time.Hour
	}
	cutoff := time.Now().Add(-retention)

	r.mu.Lock()
	defer r.mu.Unlock()
	for id, tx := range r.transactions {
		tx.mu.RLock()
		state, ended := tx.state, tx.endedAt
		tx.mu.RUnlock()
		if state != model.TransactionCompleted {
			continue
		}
		if ended.Before(cutoff) {
			delete(r.transactions, id)
		}
	}
}
