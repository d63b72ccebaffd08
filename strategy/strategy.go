// Package strategy implements the adaptive strategy component: it polls adapter
// health concurrently, applies K/M flap suppression before flipping an adapter's reachability,
// publishes an immutable availability snapshot atomically, selects a distribution strategy from
// a bitmap->strategy lookup table, and routes reads to the cheapest reachable store for a given
// query kind.
package strategy

import (
	"context"
	"time"

	"github.com/go-logr/logr"
	"github.com/sasha-s/go-deadlock"
	"go.uber.org/atomic"

	"github.com/polyglotdb/coordinator/configuration"
	"github.com/polyglotdb/coordinator/model"
	"github.com/polyglotdb/coordinator/parallelisation"
)

// HealthChecker is the capability the strategy component polls; adapters.Adapter already
// satisfies it structurally (Kind/HealthCheck), so no adapters import is required here.
type HealthChecker interface {
	Kind() model.StoreKind
	HealthCheck(ctx context.Context) (model.HealthStatus, error)
}

// QueryPreference is the ordered list of store kinds a query kind prefers.
var QueryPreference = map[model.QueryKind][]model.StoreKind{
	model.QuerySemanticSimilarity:    {model.StoreKindVector, model.StoreKindRelational},
	model.QueryRelationshipTraversal: {model.StoreKindGraph, model.StoreKindRelational},
	model.QueryExactLookup:           {model.StoreKindRelational, model.StoreKindDocument},
	model.QueryTextSearch:            {model.StoreKindVector, model.StoreKindDocument},
}

// strategyLookup maps an availability bitmap (by sorted store kind membership) to a strategy
// kind.
func selectStrategy(reachable map[model.StoreKind]bool) model.StrategyKind {
	switch {
	case reachable[model.StoreKindRelational] && reachable[model.StoreKindDocument] && reachable[model.StoreKindVector] && reachable[model.StoreKindGraph]:
		return model.StrategyFullPolyglot
	case reachable[model.StoreKindRelational] && reachable[model.StoreKindDocument] && reachable[model.StoreKindVector]:
		return model.StrategyTriDatabase
	case reachable[model.StoreKindRelational] && reachable[model.StoreKindDocument]:
		return model.StrategyDualDatabase
	case reachable[model.StoreKindRelational]:
		return model.StrategyRelationalEnhanced
	default:
		return model.StrategyMonolithicFallback
	}
}

type flapState struct {
	healthy      bool
	consecutiveF int
	consecutiveS int
}

type latencySample struct {
	mu  deadlock.Mutex
	avg time.Duration
	n   int64
}

func (l *latencySample) observe(d time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.n++
	l.avg += (d - l.avg) / time.Duration(l.n)
}

func (l *latencySample) mean() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.avg
}

// Strategy polls adapter health, selects the distribution strategy for the current
// availability, and routes reads to the cheapest store able to answer them.
type Strategy struct {
	cfg      configuration.StrategyConfiguration
	logger   logr.Logger
	checkers []HealthChecker

	mu    deadlock.Mutex
	flaps map[model.StoreKind]*flapState

	snapshot atomic.Pointer[model.AvailabilitySnapshot]

	latencyMu deadlock.Mutex
	latencies map[model.StoreKind]map[model.QueryKind]*latencySample
}

// New constructs a Strategy with every store kind initially considered unreachable until the
// first successful poll.
func New(cfg configuration.StrategyConfiguration, logger logr.Logger, checkers...HealthChecker) *Strategy {
	s := &Strategy{
		cfg:       cfg,
		logger:    logger,
		checkers:  checkers,
		flaps:     make(map[model.StoreKind]*flapState),
		latencies: make(map[model.StoreKind]map[model.QueryKind]*latencySample),
	}
	for _, c := range checkers {
		s.flaps[c.Kind()] = &flapState{}
	}
	initial := &model.AvailabilitySnapshot{Reachable: map[model.StoreKind]bool{}, Strategy: model.StrategyMonolithicFallback, AsOf: time.Now()}
	s.snapshot.Store(initial)
	return s
}

// Start launches the background polling loop.
func (s *Strategy) Start(ctx context.Context) {
	interval := s.cfg.PollInterval
	if interval <= 0 {
		interval = 5 * time.Second
	}
	s.pollOnce(ctx)
	parallelisation.SafeSchedule(ctx, interval, 0, func(pollCtx context.Context, _ time.Time) {
		s.pollOnce(pollCtx)
	})
}

func (s *Strategy) pollOnce(ctx context.Context) {
	timeout := s.cfg.HealthCheckTimeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	type result struct {
		kind    model.StoreKind
		healthy bool
	}
	results := make(chan result, len(s.checkers))
	group := parallelisation.NewExecutionGroup[HealthChecker](func(checkCtx context.Context, checker HealthChecker) error {
		checkCtx, cancel := context.WithTimeout(checkCtx, timeout)
		defer cancel()
		status, err := checker.HealthCheck(checkCtx)
		results <- result{kind: checker.Kind(), healthy: err == nil && status.Healthy}
		return nil
	}, parallelisation.Parallel, parallelisation.JoinErrors)
	group.RegisterFunction(s.checkers...)
	_ = group.Execute(ctx)
	close(results)

	s.mu.Lock()
	for r := range results {
		s.applyFlapState(r.kind, r.healthy)
	}
	reachable := make(map[model.StoreKind]bool, len(s.flaps))
	for kind, f := range s.flaps {
		reachable[kind] = f.healthy
	}
	s.mu.Unlock()

	next := &model.AvailabilitySnapshot{
		Reachable: reachable,
		Strategy:  selectStrategy(reachable),
		AsOf:      time.Now(),
	}
	s.snapshot.Store(next)
}

// applyFlapState implements K/M flap suppression: K consecutive failures before flipping
// unhealthy, M consecutive successes before flipping back.
func (s *Strategy) applyFlapState(kind model.StoreKind, healthy bool) {
	f, ok := s.flaps[kind]
	if !ok {
		f = &flapState{}
		s.flaps[kind] = f
	}
	k := s.cfg.UnhealthyAfterFailures
	if k <= 0 {
		k = 2
	}
	m := s.cfg.HealthyAfterSuccesses
	if m <= 0 {
		m = 3
	}
	if healthy {
		f.consecutiveS++
		f.consecutiveF = 0
		if !f.healthy && f.consecutiveS >= m {
			f.healthy = true
		}
	} else {
		f.consecutiveF++
		f.consecutiveS = 0
		if f.healthy && f.consecutiveF >= k {
			f.healthy = false
		}
	}
}

// CurrentAvailability returns the latest published availability snapshot; readers never hold a
// lock.
func (s *Strategy) CurrentAvailability() *model.AvailabilitySnapshot {
	return s.snapshot.Load()
}

// ChooseStrategy returns the strategy kind implied by the current availability snapshot.
func (s *Strategy) ChooseStrategy() model.StrategyKind {
	return s.CurrentAvailability().Strategy
}

// ObserveLatency records an observed latency for a (store kind, query kind) pair, feeding the
// RouteRead override.
func (s *Strategy) ObserveLatency(kind model.StoreKind, query model.QueryKind, d time.Duration) {
	s.latencyMu.Lock()
	perQuery, ok := s.latencies[kind]
	if !ok {
		perQuery = make(map[model.QueryKind]*latencySample)
		s.latencies[kind] = perQuery
	}
	sample, ok := perQuery[query]
	if !ok {
		sample = &latencySample{}
		perQuery[query] = sample
	}
	s.latencyMu.Unlock()
	sample.observe(d)
}

func (s *Strategy) latencyFor(kind model.StoreKind, query model.QueryKind) (time.Duration, bool) {
	s.latencyMu.Lock()
	defer s.latencyMu.Unlock()
	perQuery, ok := s.latencies[kind]
	if !ok {
		return 0, false
	}
	sample, ok := perQuery[query]
	if !ok || sample.n == 0 {
		return 0, false
	}
	return sample.mean(), true
}

// RouteRead picks the first reachable store from the query kind's preference list, overriding
// the static preference when a leading candidate is observed to be more than 2x slower than the
// next alternative.
func (s *Strategy) RouteRead(query model.QueryKind) (model.StoreKind, bool) {
	preference, ok := QueryPreference[query]
	if !ok || len(preference) == 0 {
		return "", false
	}
	snapshot := s.CurrentAvailability()
	var reachable []model.StoreKind
	for _, kind := range preference {
		if snapshot.IsReachable(kind) {
			reachable = append(reachable, kind)
		}
	}
	if len(reachable) == 0 {
		return "", false
	}
	if len(reachable) == 1 {
		return reachable[0], true
	}
	leadLatency, leadOK := s.latencyFor(reachable[0], query)
	nextLatency, nextOK := s.latencyFor(reachable[1], query)
	if leadOK && nextOK && nextLatency > 0 && leadLatency > 2*nextLatency {
		return reachable[1], true
	}
	return reachable[0], true
}
