package coordinator

import (
	"context"
	"strings"
	"time"

	"github.com/polyglotdb/coordinator/adapters"
	"github.com/polyglotdb/coordinator/errorkinds"
	"github.com/polyglotdb/coordinator/model"
)

// Distribute plans, executes and records a single processor result across the target stores.
func (c *Coordinator) Distribute(ctx context.Context, result *model.ProcessorResult) (*model.DistributionResult, error) {
	return c.distributor.Distribute(ctx, result)
}

// DistributeMany distributes a list of processor results with bounded concurrent fan-out.
func (c *Coordinator) DistributeMany(ctx context.Context, results []*model.ProcessorResult) ([]*model.DistributionResult, error) {
	return c.distributor.DistributeMany(ctx, results)
}

// GetByID fetches a single record by document id; absence is a value, not an error. A
// non-empty storeKindHint pins the lookup to that store kind (bypassing the router); a hint
// naming a store kind with no configured adapter is a bad request. With an empty hint the
// cheapest reachable store for an exact-lookup query is used.
func (c *Coordinator) GetByID(ctx context.Context, storeKindHint model.StoreKind, documentID string) (adapters.Record, bool, error) {
	if c.recordCache != nil {
		if rec, ok := c.recordCache.Get(documentID); ok {
			return rec, true, nil
		}
	}

	kind := storeKindHint
	if kind == "" {
		routed, ok := c.router.RouteRead(model.QueryExactLookup)
		if !ok {
			return adapters.Record{}, false, errorkinds.UnrecoverableUnavailability("master_registry")
		}
		kind = routed
	}

	adapter, ok := c.adaptersBy[kind]
	if !ok {
		return adapters.Record{}, false, errorkinds.BadRequest("no adapter configured for store kind "+string(kind), nil)
	}

	start := time.Now()
	record, found, err := adapter.ReadOne(ctx, documentID, nil)
	c.router.ObserveLatency(kind, model.QueryExactLookup, time.Since(start))
	if err != nil {
		return adapters.Record{}, false, err
	}
	if found && c.recordCache != nil {
		_ = c.recordCache.Put(documentID, record)
	}
	return record, found, nil
}

// SemanticSearch returns the topK nearest matches for queryText as (id, metadata, score)
// tuples. It prefers the vector store; when the vector store is unreachable it falls back to a best-effort
// substring match over the relational store's document_content rows, since the relational
// fallback has no embedding index to rank by.
func (c *Coordinator) SemanticSearch(ctx context.Context, queryText string, topK int, filter map[string]any) ([]adapters.NeighborResult, error) {
	routed, ok := c.router.RouteRead(model.QuerySemanticSimilarity)
	if !ok {
		return nil, errorkinds.UnrecoverableUnavailability("vector_embeddings")
	}

	start := time.Now()
	defer func() { c.router.ObserveLatency(routed, model.QuerySemanticSimilarity, time.Since(start)) }()

	if routed == model.StoreKindVector && c.vector != nil {
		vec, err := c.vector.Embed(ctx, queryText)
		if err != nil {
			return nil, err
		}
		return c.vector.NearestNeighbors(ctx, "document_content", vec, topK, filter)
	}
	return c.fallbackTextSearch(ctx, queryText, topK)
}

func (c *Coordinator) fallbackTextSearch(ctx context.Context, queryText string, topK int) ([]adapters.NeighborResult, error) {
	relational, ok := c.adaptersBy[model.StoreKindRelational]
	if !ok {
		return nil, errorkinds.UnrecoverableUnavailability("document_content")
	}
	iter, err := relational.QueryNative(ctx, "")
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(queryText)
	var hits []adapters.NeighborResult
	iter(func(rec adapters.Record) bool {
		text, _ := rec.Fields["text"].(string)
		if text == "" || !strings.Contains(strings.ToLower(text), needle) {
			return true
		}
		hits = append(hits, adapters.NeighborResult{ID: rec.ID, Metadata: rec.Fields, Distance: 0})
		return len(hits) < topK || topK <= 0
	})
	if topK > 0 && len(hits) > topK {
		hits = hits[:topK]
	}
	return hits, nil
}

// QueryRelations lists the relation instances attached to sourceID, optionally filtered by
// relation type. Traversal prefers the graph store and falls back to the relational join table.
func (c *Coordinator) QueryRelations(ctx context.Context, sourceID string, relationType string) ([]model.RelationInstance, error) {
	routed, ok := c.router.RouteRead(model.QueryRelationshipTraversal)
	if !ok {
		return nil, errorkinds.UnrecoverableUnavailability("relationships")
	}

	start := time.Now()
	defer func() { c.router.ObserveLatency(routed, model.QueryRelationshipTraversal, time.Since(start)) }()

	if routed == model.StoreKindGraph {
		if graphAdapter, ok := c.adaptersBy[model.StoreKindGraph].(adapters.GraphCapable); ok {
			edges, err := graphAdapter.Traverse(ctx, sourceID, relationType, 1)
			if err != nil {
				return nil, err
			}
			return graphEdgesToInstances(edges), nil
		}
	}

	relational, ok := c.adaptersBy[model.StoreKindRelational].(adapters.RelationalCapable)
	if !ok {
		return nil, errorkinds.UnrecoverableUnavailability("relationships")
	}
	records, err := relational.Query(ctx, "source_id="+sourceID)
	if err != nil {
		return nil, err
	}
	return relationalRecordsToInstances(records, relationType), nil
}

func graphEdgesToInstances(edges []adapters.Record) []model.RelationInstance {
	out := make([]model.RelationInstance, 0, len(edges))
	for _, rec := range edges {
		from, _ := rec.Fields["_from"].(string)
		to, _ := rec.Fields["_to"].(string)
		edgeType, _ := rec.Fields["_edge_type"].(string)
		out = append(out, model.RelationInstance{
			ID:           rec.ID,
			RelationName: edgeType,
			SourceID:     from,
			TargetID:     to,
			Properties:   rec.Fields,
		})
	}
	return out
}

func relationalRecordsToInstances(records []adapters.Record, relationType string) []model.RelationInstance {
	out := make([]model.RelationInstance, 0, len(records))
	for _, rec := range records {
		name, _ := rec.Fields["relation_type"].(string)
		if relationType != "" && name != relationType {
			continue
		}
		source, _ := rec.Fields["source_id"].(string)
		target, _ := rec.Fields["target_id"].(string)
		props, _ := rec.Fields["properties"].(map[string]any)
		out = append(out, model.RelationInstance{
			ID:           rec.ID,
			RelationName: name,
			SourceID:     source,
			TargetID:     target,
			Properties:   props,
		})
	}
	return out
}

// CreateRelation validates, constructs and persists a relation instance through the facade,
// for callers that create relation instances outside a processor-result submission.
func (c *Coordinator) CreateRelation(ctx context.Context, relationName, sourceID, targetID string, properties map[string]any) (*model.RelationInstance, []model.PropertyIssue, error) {
	if c.relationsSvc == nil {
		return nil, nil, errorkinds.BadRequest("no relations service configured", nil)
	}
	return c.relationsSvc.CreateRelation(ctx, relationName, sourceID, targetID, properties)
}
