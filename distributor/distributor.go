// Package distributor implements the multi-DB distributor: it plans which store
// kind should receive each content category of a processor result, hands the plan to the SAGA
// orchestrator as a transaction, and folds the orchestrator's outcome back into a distribution
// result with a routing trace for observability.
package distributor

import (
	"context"
	"strconv"
	"time"

	"github.com/go-logr/logr"

	"github.com/polyglotdb/coordinator/adapters"
	"github.com/polyglotdb/coordinator/configuration"
	"github.com/polyglotdb/coordinator/errorkinds"
	"github.com/polyglotdb/coordinator/idgen"
	"github.com/polyglotdb/coordinator/model"
	"github.com/polyglotdb/coordinator/parallelisation"
	"github.com/polyglotdb/coordinator/saga"
	"github.com/polyglotdb/coordinator/strategy"
)

// Invalidator is implemented by the coordinator's cache so the distributor can drive event-driven
// invalidation after a successful write.
type Invalidator interface {
	Invalidate(id string)
}

// Strategist is the subset of *strategy.Strategy the distributor consults.
type Strategist interface {
	CurrentAvailability() *model.AvailabilitySnapshot
}

var _ Strategist = (*strategy.Strategy)(nil)

// Distributor routes each write to the subset of stores that should hold it.
type Distributor struct {
	cfg          configuration.DistributorConfiguration
	logger       logr.Logger
	strategy     Strategist
	orchestrator *saga.Orchestrator
	invalidator  Invalidator
}

// New constructs a Distributor. The orchestrator must hold one saga.StepExecutor per store kind
// the routing table can target; BuildExecutors below derives them from a concrete adapter set.
func New(cfg configuration.DistributorConfiguration, logger logr.Logger, strat Strategist, orchestrator *saga.Orchestrator, invalidator Invalidator) *Distributor {
	return &Distributor{cfg: cfg, logger: logger, strategy: strat, orchestrator: orchestrator, invalidator: invalidator}
}

// BuildExecutors adapts a concrete adapter set into the saga.StepExecutor map the orchestrator
// needs, one adapterExecutor per store kind.
func BuildExecutors(adapterSet map[model.StoreKind]adapters.Adapter) map[model.StoreKind]saga.StepExecutor {
	executors := make(map[model.StoreKind]saga.StepExecutor, len(adapterSet))
	for kind, adapter := range adapterSet {
		executors[kind] = newAdapterExecutor(adapter)
	}
	return executors
}

// Distribute plans the target set for one processor result, executes it as a SAGA, and
// records cross-references on success.
func (d *Distributor) Distribute(ctx context.Context, result *model.ProcessorResult) (*model.DistributionResult, error) {
	start := time.Now()
	if err := result.Validate(); err != nil {
		return nil, errorkinds.BadRequest("invalid processor result", err)
	}

	snapshot := d.strategy.CurrentAvailability()
	categories := identifyCategories(result)
	plan, trace, err := buildPlan(snapshot, result.DocumentID, categories)
	if err != nil {
		return &model.DistributionResult{
			DocumentID:   result.DocumentID,
			Success:      false,
			Errors:       []error{err},
			Strategy:     snapshot.Strategy,
			RoutingTrace: trace,
			Duration:     time.Since(start),
		}, err
	}

	tx, err := d.buildTransaction(result, plan)
	if err != nil {
		return nil, err
	}

	txSnapshot, execErr := d.orchestrator.Execute(ctx, tx)

	distributedTo := map[model.StoreKind][]string{}
	for _, step := range txSnapshot.Steps {
		if step.State != model.StepCompleted {
			continue
		}
		if id, ok := step.ResultData["id"].(string); ok {
			distributedTo[step.StoreKind] = append(distributedTo[step.StoreKind], id)
		}
	}

	success := txSnapshot.State == model.TransactionCompleted
	res := &model.DistributionResult{
		DocumentID:    result.DocumentID,
		Success:       success,
		DistributedTo: distributedTo,
		Duration:      time.Since(start),
		Strategy:      snapshot.Strategy,
		RoutingTrace:  trace,
	}
	if execErr != nil {
		res.Errors = []error{execErr}
	}
	if success && d.invalidator != nil {
		d.invalidator.Invalidate(result.DocumentID)
	}
	return res, execErr
}

// DistributeMany distributes a batch of processor results with bounded concurrent fan-out,
// each call independent of the others. Each goroutine writes to its own
// slice index, so the results stay ordered without needing a dedicated ordered-output type.
func (d *Distributor) DistributeMany(ctx context.Context, results []*model.ProcessorResult) ([]*model.DistributionResult, error) {
	if len(results) == 0 {
		return nil, nil
	}
	workers := d.cfg.MaxConcurrent
	if workers <= 0 || workers > len(results) {
		workers = len(results)
	}

	out := make([]*model.DistributionResult, len(results))
	indices := make([]int, len(results))
	for i := range results {
		indices[i] = i
	}

	group := parallelisation.NewExecutionGroup[int](func(gCtx context.Context, index int) error {
		res, err := d.Distribute(gCtx, results[index])
		out[index] = res
		return err
	}, parallelisation.Workers(workers), parallelisation.JoinErrors)
	group.RegisterFunction(indices...)
	err := group.Execute(ctx)
	return out, err
}

// buildTransaction translates a DistributionPlan into a saga.Transaction: one step per
// (category, target) pair (for relationships, one per relation candidate and target), plus a
// master_registry step depending on every other step so it can
// merge their ids into the cross-reference map.
func (d *Distributor) buildTransaction(result *model.ProcessorResult, plan *model.DistributionPlan) (*saga.Transaction, error) {
	var steps []saga.TransactionStep
	var nonMasterIDs []string

	for _, cat := range plan.Order {
		if cat == model.CategoryMasterRegistry {
			continue
		}
		for ti, target := range plan.Targets[cat] {
			if cat == model.CategoryRelationships {
				candidates, _ := result.Payload.Relations()
				for ri, candidate := range candidates {
					stepID := string(cat) + "/" + strconv.Itoa(ti) + "/" + strconv.Itoa(ri)
					steps = append(steps, saga.TransactionStep{
						ID:        stepID,
						StoreKind: target.StoreKind,
						Payload: map[string]any{
							"record_id": recordID(result.DocumentID, cat, ti) + "#" + strconv.Itoa(ri),
							"fields":    relationshipFields(result, candidate),
							"category":  cat,
						},
					})
					nonMasterIDs = append(nonMasterIDs, stepID)
				}
				continue
			}
			stepID := string(cat) + "/" + strconv.Itoa(ti)
			steps = append(steps, saga.TransactionStep{
				ID:        stepID,
				StoreKind: target.StoreKind,
				Payload: map[string]any{
					"record_id": recordID(result.DocumentID, cat, ti),
					"fields":    d.fieldsForCategory(cat, result, ti),
					"category":  cat,
				},
			})
			nonMasterIDs = append(nonMasterIDs, stepID)
		}
	}

	for ti, target := range plan.Targets[model.CategoryMasterRegistry] {
		stepID := string(model.CategoryMasterRegistry) + "/" + strconv.Itoa(ti)
		steps = append(steps, saga.TransactionStep{
			ID:        stepID,
			StoreKind: target.StoreKind,
			DependsOn: append([]string(nil), nonMasterIDs...),
			Payload: map[string]any{
				"record_id":  recordID(result.DocumentID, model.CategoryMasterRegistry, ti),
				"fields":     masterRegistryFields(result),
				"category":   model.CategoryMasterRegistry,
				"merge_from": append([]string(nil), nonMasterIDs...),
			},
		})
	}

	txID, err := idgen.GenerateUUID4()
	if err != nil {
		return nil, err
	}
	return saga.NewTransaction(txID, 0, steps...), nil
}

func (d *Distributor) fieldsForCategory(cat model.ContentCategory, result *model.ProcessorResult, index int) map[string]any {
	switch cat {
	case model.CategoryProcessorResults:
		return processorResultFields(result)
	case model.CategoryDocumentContent:
		return documentContentFields(result)
	case model.CategoryVectorEmbeddings:
		return vectorEmbeddingFields(result, recordID(result.DocumentID, cat, index))
	case model.CategoryGeospatialData:
		return geospatialFields(result)
	case model.CategoryEventStore:
		return eventFields(result, recordID(result.DocumentID, cat, index))
	default:
		return map[string]any{}
	}
}
