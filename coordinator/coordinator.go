// Package coordinator implements the submission API: the facade an application
// calls, wiring the distributor, the adaptive strategy, the store adapters and the single-record
// cache together. It constructs none of its collaborators: every collaborator is constructed at
// process init and passed in, nothing is a singleton.
package coordinator

import (
	"context"
	"time"

	"github.com/go-logr/logr"

	"github.com/polyglotdb/coordinator/adapters"
	"github.com/polyglotdb/coordinator/cache"
	"github.com/polyglotdb/coordinator/logs"
	"github.com/polyglotdb/coordinator/model"
	"github.com/polyglotdb/coordinator/relations"
)

// Distributor is the subset of *distributor.Distributor the facade calls. Declaring it locally
// (rather than importing the distributor package's concrete type) keeps this package free to be
// imported back by distributor's own tests without a cycle.
type Distributor interface {
	Distribute(ctx context.Context, result *model.ProcessorResult) (*model.DistributionResult, error)
	DistributeMany(ctx context.Context, results []*model.ProcessorResult) ([]*model.DistributionResult, error)
}

// Router is the subset of *strategy.Strategy the facade consults for read routing.
type Router interface {
	RouteRead(query model.QueryKind) (model.StoreKind, bool)
	ObserveLatency(kind model.StoreKind, query model.QueryKind, d time.Duration)
}

// Coordinator is the top-level facade exposing the submission API.
type Coordinator struct {
	distributor Distributor
	router      Router
	adaptersBy  map[model.StoreKind]adapters.Adapter
	vector      adapters.VectorCapable
	relationsSvc *relations.Service
	recordCache *cache.Cache[adapters.Record]
	logger      logr.Logger
}

// Invalidate implements distributor.Invalidator: the distributor calls this after every
// successful Distribute touching documentID, so cached reads never outlive a rewrite.
func (c *Coordinator) Invalidate(documentID string) {
	if c.recordCache != nil {
		c.recordCache.Invalidate(documentID)
	}
}

// New wires the facade together. adapterSet must contain one entry per store kind the strategy
// can route reads to; vector may be nil if no vector adapter is configured (the
// full_polyglot/tri_database strategies require it, relational_enhanced/monolithic_fallback do
// not). recordCache may be nil to disable the read-through cache entirely.
func New(
	logger logr.Logger,
	dist Distributor,
	router Router,
	adapterSet map[model.StoreKind]adapters.Adapter,
	vector adapters.VectorCapable,
	relationsSvc *relations.Service,
	recordCache *cache.Cache[adapters.Record],
) *Coordinator {
	return &Coordinator{
		distributor:  dist,
		router:       router,
		adaptersBy:   adapterSet,
		vector:       vector,
		relationsSvc: relationsSvc,
		recordCache:  recordCache,
		logger:       logger,
	}
}

// NewWithLoggers is New for callers that hold a logs.Loggers rather than a logr.Logger; the
// loggers are bridged once here so every component below still receives plain logr.
func NewWithLoggers(
	loggers logs.Loggers,
	dist Distributor,
	router Router,
	adapterSet map[model.StoreKind]adapters.Adapter,
	vector adapters.VectorCapable,
	relationsSvc *relations.Service,
	recordCache *cache.Cache[adapters.Record],
) *Coordinator {
	return New(logs.NewLogrLoggerFromLoggers(loggers), dist, router, adapterSet, vector, relationsSvc, recordCache)
}
