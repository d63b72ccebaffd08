package relations

import (
	"context"

	"github.com/polyglotdb/coordinator/adapters"
	"github.com/polyglotdb/coordinator/errorkinds"
	"github.com/polyglotdb/coordinator/model"
	txsaga "github.com/polyglotdb/coordinator/transaction/saga"
)

// Service wires InstanceCreator to the store adapters that must persist an instance's category,
// emitting one adapter operation per target store kind. Relation instances are not owned by this
// component past the write call: the adapters own persistence.
type Service struct {
	creator  *InstanceCreator
	registry *DefinitionRegistry
	graph    adapters.GraphCapable
	adapters map[model.StoreKind]adapters.Adapter
}

// NewService constructs a Service. graph is used for the GraphCapable edge path when
// MustPersistIn names model.StoreKindGraph; every other store kind in MustPersistIn falls back
// to a plain Adapter.WriteOne of a RelationshipRecord.
func NewService(registry *DefinitionRegistry, creator *InstanceCreator, graph adapters.GraphCapable, adapterSet map[model.StoreKind]adapters.Adapter) *Service {
	return &Service{creator: creator, registry: registry, graph: graph, adapters: adapterSet}
}

// CreateRelation runs validation and instance construction, then persists the instance into
// every store kind the definition requires. The per-store writes run as a minimal saga keyed on
// the instance id: if any store kind fails, the writes that already landed are compensated in
// reverse order, so a successful return means the instance is visible in every declared store
// and a failed one leaves none of them holding it.
func (s *Service) CreateRelation(ctx context.Context, relationName, sourceID, targetID string, properties map[string]any) (*model.RelationInstance, []model.PropertyIssue, error) {
	instance, issues, err := s.creator.Create(ctx, relationName, sourceID, targetID, properties)
	if err != nil {
		return nil, issues, err
	}

	def, _ := s.registry.Lookup(relationName)
	saga := txsaga.NewMinimalSaga(txsaga.NewStepArgumentsWithIdempotentKey(instance.ID, nil))
	for _, kind := range def.MustPersistIn {
		saga.RegisterFunction(s.persistStep(kind, relationName, instance))
	}
	if err := saga.Execute(ctx); err != nil {
		return instance, nil, err
	}
	return instance, nil, nil
}

// persistStep builds the forward write and its compensation for one store kind. The stored id is
// captured as the step executes (the graph store hands back its own edge id), so compensating a
// step that never wrote anything is a no-op.
func (s *Service) persistStep(kind model.StoreKind, relationName string, instance *model.RelationInstance) txsaga.ITransactionStep {
	var storedID string
	if kind == model.StoreKindGraph && s.graph != nil {
		return &persistStep{
			id: txsaga.NewStepIdentifier(relationName, string(kind)),
			execute: func(ctx context.Context) error {
				id, err := s.graph.CreateEdge(ctx, instance.SourceID, instance.TargetID, relationName, instance.Properties)
				if err == nil {
					storedID = id
				}
				return err
			},
			compensate: func(ctx context.Context) error {
				if storedID == "" {
					return nil
				}
				_, err := s.graph.Delete(ctx, storedID)
				return err
			},
		}
	}
	a, ok := s.adapters[kind]
	return &persistStep{
		id: txsaga.NewStepIdentifier(relationName, string(kind)),
		execute: func(ctx context.Context) error {
			if !ok {
				return errorkinds.BadRequest("no adapter registered for store kind "+string(kind), nil)
			}
			id, err := a.WriteOne(ctx, adapters.Record{
				ID: instance.ID,
				Fields: map[string]any{
					"source_id":     instance.SourceID,
					"target_id":     instance.TargetID,
					"relation_type": relationName,
					"properties":    instance.Properties,
				},
			})
			if err == nil {
				storedID = id
			}
			return err
		},
		compensate: func(ctx context.Context) error {
			if !ok || storedID == "" {
				return nil
			}
			_, err := a.Delete(ctx, storedID)
			return err
		},
	}
}

type persistStep struct {
	id         txsaga.IActionIdentifier
	execute    func(ctx context.Context) error
	compensate func(ctx context.Context) error
}

func (p *persistStep) GetID() txsaga.IActionIdentifier { return p.id }

func (p *persistStep) Execute(ctx context.Context, _ txsaga.IActionArguments) error {
	return p.execute(ctx)
}

func (p *persistStep) Compensate(ctx context.Context, _ txsaga.IActionArguments) error {
	return p.compensate(ctx)
}
