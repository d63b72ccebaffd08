package batch

import (
	"context"
	"time"

	"github.com/go-logr/logr"
	"github.com/sasha-s/go-deadlock"

	"github.com/polyglotdb/coordinator/collection/queue"
	"github.com/polyglotdb/coordinator/configuration"
	"github.com/polyglotdb/coordinator/errorkinds"
	"github.com/polyglotdb/coordinator/retry"
)

// dispatchRecord is one entry of the rolling window the adaptive sizing rule evaluates.
type dispatchRecord struct {
	size         int
	duration     time.Duration
	successRatio float64
}

// Accumulator is the per (adapter, op-kind) queue, adaptive batch size, rolling
// outcome window, and background consumer. The queue is unbounded: Submit never blocks and
// applies no backpressure.
type Accumulator struct {
	name   string
	cfg    configuration.OpKindBatchConfiguration
	logger logr.Logger
	retry  *retry.RetryPolicyConfiguration

	dispatch DispatchFunc

	mu          deadlock.Mutex
	q           queue.IQueue[*Submission]
	currentSize int
	window      []dispatchRecord
	dispatches  int
	oldest      time.Time

	wake    chan struct{}
	flushes chan chan struct{}
	stop    chan struct{}
	done    chan struct{}
}

// NewAccumulator constructs an accumulator and starts its single background consumer goroutine.
func NewAccumulator(name string, cfg configuration.OpKindBatchConfiguration, retryPolicy *retry.RetryPolicyConfiguration, logger logr.Logger, dispatch DispatchFunc) *Accumulator {
	if retryPolicy == nil {
		retryPolicy = retry.DefaultExponentialBackoffRetryPolicyConfiguration()
	}
	a := &Accumulator{
		name:        name,
		cfg:         cfg,
		logger:      logger,
		retry:       retryPolicy,
		dispatch:    dispatch,
		q:           queue.NewThreadSafeQueue[*Submission](),
		currentSize: cfg.InitialSize,
		wake:        make(chan struct{}, 1),
		flushes:     make(chan chan struct{}),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
	go a.run()
	return a
}

func (a *Accumulator) signal() {
	select {
	case a.wake <- struct{}{}:
	default:
	}
}

// Submit joins one submission to the queue, returning the same submission's Result channel as
// the caller's future.
func (a *Accumulator) Submit(s *Submission) chan Outcome {
	s.EnqueuedAt = time.Now()
	s.Result = make(chan Outcome, 1)
	a.mu.Lock()
	if a.q.IsEmpty() {
		a.oldest = s.EnqueuedAt
	}
	a.q.Enqueue(s)
	size := a.q.Len()
	a.mu.Unlock()
	if size >= a.currentBatchSize() {
		a.signal()
	}
	return s.Result
}

func (a *Accumulator) currentBatchSize() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.currentSize
}

// Stats is a point-in-time gauge of the accumulator: how many submissions are waiting, the
// batch size adaptive sizing has currently settled on, and how many batches have been
// dispatched since construction.
type Stats struct {
	QueueDepth  int
	CurrentSize int
	Dispatches  int
}

// Stats samples the accumulator's gauges without disturbing it.
func (a *Accumulator) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Stats{QueueDepth: a.q.Len(), CurrentSize: a.currentSize, Dispatches: a.dispatches}
}

// Flush forces dispatch of every submission pending in this accumulator.
func (a *Accumulator) Flush() {
	done := make(chan struct{})
	select {
	case a.flushes <- done:
		<-done
	case <-a.done:
	}
}

// Stop ends the background consumer without flushing: every submission still queued
// completes with cancelled instead of being dispatched.
func (a *Accumulator) Stop() {
	select {
	case <-a.stop:
	default:
		close(a.stop)
	}
	<-a.done
}

func (a *Accumulator) run() {
	defer close(a.done)
	ticker := time.NewTicker(a.coalesceDelay())
	defer ticker.Stop()
	for {
		select {
		case <-a.stop:
			a.drainOnStop()
			return
		case done := <-a.flushes:
			a.dispatchAll(context.Background())
			close(done)
		case <-a.wake:
			a.dispatchReady(context.Background())
		case <-ticker.C:
			a.dispatchIfStale(context.Background())
		}
	}
}

func (a *Accumulator) coalesceDelay() time.Duration {
	if a.cfg.CoalesceDelay <= 0 {
		return 5 * time.Millisecond
	}
	return a.cfg.CoalesceDelay
}

// dispatchReady dispatches while the queue holds at least one full-sized batch.
func (a *Accumulator) dispatchReady(ctx context.Context) {
	for {
		batch := a.takeBatch()
		if batch == nil {
			return
		}
		a.runDispatch(ctx, batch)
		if a.pendingLen() < a.currentBatchSize() {
			return
		}
	}
}

// dispatchIfStale dispatches the whole queue once the oldest pending submission has waited past
// the coalesce delay, regardless of whether a full batch has accumulated.
func (a *Accumulator) dispatchIfStale(ctx context.Context) {
	a.mu.Lock()
	stale := !a.q.IsEmpty() && time.Since(a.oldest) >= a.coalesceDelay()
	a.mu.Unlock()
	if stale {
		a.dispatchAll(ctx)
	}
}

func (a *Accumulator) dispatchAll(ctx context.Context) {
	for {
		batch := a.takeAll()
		if batch == nil {
			return
		}
		a.runDispatch(ctx, batch)
	}
}

func (a *Accumulator) drainOnStop() {
	a.mu.Lock()
	var pending []*Submission
	for !a.q.IsEmpty() {
		s, ok := a.q.Dequeue()
		if !ok {
			break
		}
		pending = append(pending, s)
	}
	a.mu.Unlock()
	for _, s := range pending {
		s.Result <- Outcome{ID: s.ID, Err: errorkinds.Cancelled("batch engine stopped")}
		close(s.Result)
	}
}

func (a *Accumulator) pendingLen() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.q.Len()
}

func (a *Accumulator) takeBatch() []*Submission {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.q.IsEmpty() {
		return nil
	}
	limit := a.currentSize
	batch := make([]*Submission, 0, limit)
	for len(batch) < limit && !a.q.IsEmpty() {
		s, ok := a.q.Dequeue()
		if !ok {
			break
		}
		batch = append(batch, s)
	}
	if !a.q.IsEmpty() {
		if peeked, ok := a.q.Peek(); ok {
			a.oldest = peeked.EnqueuedAt
		}
	}
	if len(batch) == 0 {
		return nil
	}
	return batch
}

func (a *Accumulator) takeAll() []*Submission {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.q.IsEmpty() {
		return nil
	}
	var batch []*Submission
	for !a.q.IsEmpty() {
		s, ok := a.q.Dequeue()
		if !ok {
			break
		}
		batch = append(batch, s)
	}
	return batch
}

// runDispatch executes one batch, retrying the whole batch on transient transport failure
//,
// then records the outcome into the rolling window and re-evaluates adaptive sizing.
func (a *Accumulator) runDispatch(ctx context.Context, batch []*Submission) {
	start := time.Now()
	var outcomes []Outcome
	err := retry.RetryIf(ctx, a.logger, a.retry, func() error {
		o, dispatchErr := a.dispatch(ctx, batch)
		outcomes = o
		return dispatchErr
	}, "dispatching "+a.name+" batch", errorkinds.IsTransient)
	duration := time.Since(start)

	if err != nil {
		outcomes = make([]Outcome, len(batch))
		for i, s := range batch {
			outcomes[i] = Outcome{ID: s.ID, Err: err}
		}
	}

	successes := 0
	for i, s := range batch {
		o := outcomes[i]
		if o.Err == nil {
			successes++
		}
		s.Result <- o
		close(s.Result)
	}

	ratio := 1.0
	if len(batch) > 0 {
		ratio = float64(successes) / float64(len(batch))
	}
	a.recordAndAdapt(len(batch), duration, ratio)
}

// recordAndAdapt applies the rolling-window adaptive sizing rule after each dispatch.
func (a *Accumulator) recordAndAdapt(size int, duration time.Duration, successRatio float64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.window = append(a.window, dispatchRecord{size: size, duration: duration, successRatio: successRatio})
	if len(a.window) > a.cfg.ReevaluateEvery {
		a.window = a.window[len(a.window)-a.cfg.ReevaluateEvery:]
	}
	a.dispatches++
	if a.dispatches%a.cfg.ReevaluateEvery != 0 {
		return
	}

	var totalDuration time.Duration
	var totalRatio float64
	for _, r := range a.window {
		totalDuration += r.duration
		totalRatio += r.successRatio
	}
	n := float64(len(a.window))
	meanDuration := totalDuration / time.Duration(len(a.window))
	meanRatio := totalRatio / n

	target := a.cfg.TargetDuration
	if target <= 0 {
		target = 20 * time.Millisecond
	}

	next := a.currentSize
	switch {
	case meanRatio < 0.80:
		next = a.currentSize / 2
	case float64(meanDuration) < 0.5*float64(target) && meanRatio > 0.95:
		next = a.currentSize + a.currentSize/5
	case float64(meanDuration) > 1.5*float64(target) && meanRatio > 0.90:
		next = a.currentSize - a.currentSize/5
	}

	if next < a.cfg.MinSize {
		next = a.cfg.MinSize
	}
	if next > a.cfg.MaxSize {
		next = a.cfg.MaxSize
	}

	// Only apply when the relative delta exceeds 10%, to prevent oscillation.
	if a.currentSize == 0 {
		a.currentSize = next
		return
	}
	relativeDelta := float64(next-a.currentSize) / float64(a.currentSize)
	if relativeDelta < 0 {
		relativeDelta = -relativeDelta
	}
	if relativeDelta > 0.10 {
		a.currentSize = next
	}
}
