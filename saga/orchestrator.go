package saga

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/go-logr/logr"

	"github.com/polyglotdb/coordinator/commonerrors"
	"github.com/polyglotdb/coordinator/configuration"
	"github.com/polyglotdb/coordinator/errorkinds"
	"github.com/polyglotdb/coordinator/model"
	"github.com/polyglotdb/coordinator/retry"
)

// Orchestrator runs SagaTransactions to completion, honoring each step's declared dependencies,
// retrying non-bad_request failures with exponential backoff, and compensating in reverse
// completion order when a step ultimately fails or the transaction times out.
type Orchestrator struct {
	cfg         configuration.SagaConfiguration
	retryPolicy *retry.RetryPolicyConfiguration
	logger      logr.Logger
	executors   map[model.StoreKind]StepExecutor
	registry    *TransactionRegistry
}

// NewOrchestrator constructs an orchestrator, one StepExecutor per store kind the transactions
// it will run may target.
func NewOrchestrator(cfg configuration.SagaConfiguration, retentionCfg configuration.RetentionConfiguration, retryPolicy *retry.RetryPolicyConfiguration, logger logr.Logger, executors map[model.StoreKind]StepExecutor) *Orchestrator {
	if retryPolicy == nil {
		retryPolicy = retry.DefaultExponentialBackoffRetryPolicyConfiguration()
	}
	return &Orchestrator{
		cfg:         cfg,
		retryPolicy: retryPolicy,
		logger:      logger,
		executors:   executors,
		registry:    NewTransactionRegistry(retentionCfg, logger),
	}
}

// Get returns the current snapshot of a known transaction.
func (o *Orchestrator) Get(transactionID string) (model.TransactionSnapshot, bool) {
	return o.registry.Get(transactionID)
}

// Execute runs a transaction's steps honoring dependencies, compensating on failure.
func (o *Orchestrator) Execute(ctx context.Context, tx *Transaction) (model.TransactionSnapshot, error) {
	if err := detectCycle(tx); err != nil {
		tx.setState(model.TransactionFailed)
		tx.err = err
		o.registry.Put(tx)
		return tx.Snapshot(), err
	}

	tx.mu.Lock()
	tx.startedAt = time.Now()
	tx.mu.Unlock()
	tx.setState(model.TransactionExecuting)
	o.registry.Put(tx)

	timeout := tx.Timeout
	if timeout <= 0 {
		timeout = o.cfg.DefaultTransactionTimeout
	}
	runCtx := ctx
	var cancel context.CancelFunc
	if timeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var wg sync.WaitGroup
	wg.Add(len(tx.Steps))
	for _, step := range tx.Steps {
		go o.runStep(runCtx, tx, step, &wg)
	}
	wg.Wait()

	timedOut := runCtx.Err() != nil

	var stepErrs []error
	failed := false
	for _, step := range tx.Steps {
		step.mu.Lock()
		state, err := step.state, step.err
		step.mu.Unlock()
		if state == model.StepFailed {
			failed = true
			stepErrs = append(stepErrs, err)
		}
	}

	if !failed && !timedOut {
		tx.setState(model.TransactionCompleted)
		tx.mu.Lock()
		tx.endedAt = time.Now()
		tx.mu.Unlock()
		o.registry.Put(tx)
		return tx.Snapshot(), nil
	}

	if timedOut {
		stepErrs = append(stepErrs, errorkinds.Timeout("transaction "+tx.ID+" exceeded its timeout"))
	}

	compErr := o.compensate(context.Background(), tx)
	tx.mu.Lock()
	tx.endedAt = time.Now()
	tx.mu.Unlock()

	finalErr := commonerrors.Join(stepErrs...)
	if compErr != nil {
		tx.setState(model.TransactionFailed)
		tx.err = errorkinds.CompensationFailed(append(stepErrs, compErr)...)
	} else if timedOut {
		tx.setState(model.TransactionTimeout)
		tx.err = finalErr
	} else {
		tx.setState(model.TransactionCompensated)
		tx.err = finalErr
	}
	o.registry.Put(tx)
	return tx.Snapshot(), tx.err
}

// runStep waits for dependencies, checks adapter health, then executes with bounded retries.
func (o *Orchestrator) runStep(ctx context.Context, tx *Transaction, step *TransactionStep, wg *sync.WaitGroup) {
	defer wg.Done()
	defer close(step.done)

	step.mu.Lock()
	step.state = model.StepExecuting
	step.startedAt = time.Now()
	step.mu.Unlock()

	if err := o.waitForDeps(ctx, tx, step.DependsOn); err != nil {
		o.failStep(step, err)
		return
	}
	if err := ctx.Err(); err != nil {
		o.failStep(step, errorkinds.Cancelled("step "+step.ID+" cancelled before execution"))
		return
	}

	executor, ok := o.executors[step.StoreKind]
	if !ok {
		o.failStep(step, errorkinds.BadRequest("no executor registered for store kind "+string(step.StoreKind), nil))
		return
	}
	if err := executor.HealthCheck(ctx); err != nil {
		o.failStep(step, errorkinds.StoreUnavailable(string(step.StoreKind)))
		return
	}

	stepTimeout := step.Timeout
	if stepTimeout <= 0 {
		stepTimeout = o.cfg.DefaultStepTimeout
	}
	stepCtx := ctx
	if stepTimeout > 0 {
		var cancel context.CancelFunc
		stepCtx, cancel = context.WithTimeout(ctx, stepTimeout)
		defer cancel()
	}

	depResults := o.gatherDepResults(tx, step.DependsOn)

	maxRetries := step.MaxRetries
	if maxRetries <= 0 {
		maxRetries = o.cfg.MaxStepRetries
	}
	if maxRetries <= 0 {
		maxRetries = 1
	}
	policy := *o.retryPolicy
	policy.RetryMax = maxRetries

	var resultData map[string]any
	var compensations []model.CompensationAction
	err := retry.RetryIf(stepCtx, o.logger, &policy, func() error {
		step.mu.Lock()
		step.attempts++
		step.mu.Unlock()
		var execErr error
		resultData, compensations, execErr = executor.Execute(stepCtx, step, depResults)
		return execErr
	}, "executing step "+step.ID, func(err error) bool { return !errorkinds.IsBadRequest(err) })

	if err != nil {
		o.failStep(step, err)
		return
	}

	step.mu.Lock()
	step.state = model.StepCompleted
	step.resultData = resultData
	step.compensations = compensations
	step.completedAt = time.Now()
	step.mu.Unlock()
	tx.recordCompletion(step)
}

func (o *Orchestrator) failStep(step *TransactionStep, err error) {
	step.mu.Lock()
	step.state = model.StepFailed
	step.err = err
	step.completedAt = time.Now()
	step.mu.Unlock()
}

// waitForDeps blocks until every declared dependency has reached a terminal forward state,
// returning an error if any dependency failed.
func (o *Orchestrator) waitForDeps(ctx context.Context, tx *Transaction, depIDs []string) error {
	for _, id := range depIDs {
		dep := tx.stepByID(id)
		if dep == nil {
			return errorkinds.InvalidTransaction("unknown dependency " + id)
		}
		select {
		case <-dep.done:
		case <-ctx.Done():
			return errorkinds.Cancelled("context done while waiting on dependency " + id)
		}
		dep.mu.Lock()
		state := dep.state
		dep.mu.Unlock()
		if state != model.StepCompleted {
			return errorkinds.BadRequest("dependency "+id+" did not complete", nil)
		}
	}
	return nil
}

func (o *Orchestrator) gatherDepResults(tx *Transaction, depIDs []string) map[string]map[string]any {
	out := make(map[string]map[string]any, len(depIDs))
	for _, id := range depIDs {
		if dep := tx.stepByID(id); dep != nil {
			out[id] = dep.resultDataSnapshot()
		}
	}
	return out
}

// compensate iterates completed steps in reverse completion order, running
// each step's registered compensations in descending priority with bounded retries.
func (o *Orchestrator) compensate(ctx context.Context, tx *Transaction) error {
	tx.setState(model.TransactionCompensating)
	var compErrs []error
	for _, step := range tx.completionOrderReversed() {
		step.mu.Lock()
		step.state = model.StepCompensating
		actions := append([]model.CompensationAction(nil), step.compensations...)
		step.mu.Unlock()

		sort.SliceStable(actions, func(i, j int) bool { return actions[i].Priority > actions[j].Priority })

		for _, action := range actions {
			if action.Run == nil {
				continue
			}
			retryPolicy := *o.retryPolicy
			retryPolicy.RetryMax = o.cfg.CompensationRetries
			if retryPolicy.RetryMax <= 0 {
				retryPolicy.RetryMax = 1
			}
			err := retry.RetryIf(ctx, o.logger, &retryPolicy, action.Run, "compensating "+step.ID+"/"+action.Name, func(error) bool { return true })
			if err != nil {
				o.logger.Error(err, "compensation action failed", "step", step.ID, "action", action.Name)
				compErrs = append(compErrs, err)
			}
		}
		step.mu.Lock()
		step.state = model.StepCompensated
		step.mu.Unlock()
	}
	return commonerrors.Join(compErrs...)
}

// detectCycle topologically sorts the step graph, failing immediately with invalid_transaction
// if a cycle is detected.
func detectCycle(tx *Transaction) error {
	ids := make(map[string]bool, len(tx.Steps))
	for _, s := range tx.Steps {
		ids[s.ID] = true
	}
	for _, s := range tx.Steps {
		for _, dep := range s.DependsOn {
			if !ids[dep] {
				return errorkinds.InvalidTransaction("step " + s.ID + " depends on unknown step " + dep)
			}
		}
	}

	state := make(map[string]int, len(tx.Steps)) // 0=unvisited,1=visiting,2=done
	var visit func(id string) error
	visit = func(id string) error {
		switch state[id] {
		case 1:
			return errorkinds.InvalidTransaction("dependency cycle detected at step " + id)
		case 2:
			return nil
		}
		state[id] = 1
		step := tx.stepByID(id)
		for _, dep := range step.DependsOn {
			if err := visit(dep); err != nil {
				return err
			}
		}
		state[id] = 2
		return nil
	}
	for _, s := range tx.Steps {
		if err := visit(s.ID); err != nil {
			return err
		}
	}
	return nil
}
