// Package saga implements a DAG-aware SAGA orchestrator: ordered steps with per-step
// dependencies, timeouts and bounded retries, and reverse-completion-order compensation.
// Compensations are registered as steps execute, and commonerrors.Join aggregates whatever
// the run could not recover.
package saga

import (
	"time"

	"github.com/sasha-s/go-deadlock"

	"github.com/polyglotdb/coordinator/model"
)

// TransactionStep is one node of a SagaTransaction's dependency graph. Compensations
// are not part of the step definition: they are appended to the step's compensations as it executes,
// because they reference ids the store returned.
type TransactionStep struct {
	ID         string
	StoreKind  model.StoreKind
	Payload    map[string]any
	DependsOn  []string
	Timeout    time.Duration
	MaxRetries int

	mu            deadlock.Mutex
	state         model.StepState
	attempts      int
	resultData    map[string]any
	compensations []model.CompensationAction
	err           error
	startedAt     time.Time
	completedAt   time.Time
	done          chan struct{}
}

func newStep(def TransactionStep) *TransactionStep {
	s := def
	s.state = model.StepPending
	s.done = make(chan struct{})
	return &s
}

func (s *TransactionStep) snapshot() model.StepSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.StepSnapshot{
		ID:          s.ID,
		StoreKind:   s.StoreKind,
		State:       s.state,
		DependsOn:   append([]string(nil), s.DependsOn...),
		Attempts:    s.attempts,
		ResultData:  cloneResultData(s.resultData),
		Err:         s.err,
		StartedAt:   s.startedAt,
		CompletedAt: s.completedAt,
	}
}

func (s *TransactionStep) resultDataSnapshot() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneResultData(s.resultData)
}

func cloneResultData(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Transaction is an ordered directed acyclic set of steps. Steps are constructed by
// the distributor and handed to the Orchestrator for execution.
type Transaction struct {
	ID      string
	Steps   []*TransactionStep
	Timeout time.Duration

	mu             deadlock.RWMutex
	state          model.TransactionState
	startedAt      time.Time
	endedAt        time.Time
	err            error
	completedOrder []*TransactionStep
}

// NewTransaction constructs a transaction wrapping the given step definitions. Steps must be
// supplied with unique IDs; dependency ids reference other steps in the same transaction.
func NewTransaction(id string, timeout time.Duration, steps...TransactionStep) *Transaction {
	wrapped := make([]*TransactionStep, len(steps))
	for i := range steps {
		wrapped[i] = newStep(steps[i])
	}
	return &Transaction{ID: id, Steps: wrapped, Timeout: timeout, state: model.TransactionInitiated}
}

func (t *Transaction) stepByID(id string) *TransactionStep {
	for _, s := range t.Steps {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func (t *Transaction) setState(state model.TransactionState) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = state
}

func (t *Transaction) recordCompletion(s *TransactionStep) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.completedOrder = append(t.completedOrder, s)
}

func (t *Transaction) completionOrderReversed() []*TransactionStep {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*TransactionStep, len(t.completedOrder))
	for i, s := range t.completedOrder {
		out[len(out)-1-i] = s
	}
	return out
}

// Snapshot returns an immutable, observable view of the transaction's current progress.
func (t *Transaction) Snapshot() model.TransactionSnapshot {
	t.mu.RLock()
	state, started, ended, err := t.state, t.startedAt, t.endedAt, t.err
	t.mu.RUnlock()
	steps := make([]model.StepSnapshot, len(t.Steps))
	for i, s := range t.Steps {
		steps[i] = s.snapshot()
	}
	return model.TransactionSnapshot{
		ID:        t.ID,
		State:     state,
		Steps:     steps,
		StartedAt: started,
		EndedAt:   ended,
		Err:       err,
	}
}
