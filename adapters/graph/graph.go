// Package graph implements the graph store adapter: node/edge creation, edge weight updates
// that preserve history, soft delete/restore (the edge still exists but is flagged inactive),
// and traversal. Soft-delete and revival live entirely at this level; the relations registry
// stays agnostic of revival semantics.
package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/polyglotdb/coordinator/adapters"
	"github.com/polyglotdb/coordinator/errorkinds"
	"github.com/polyglotdb/coordinator/idgen"
	"github.com/polyglotdb/coordinator/model"
)

// Adapter is the in-memory graph store adapter. Nodes and edges share the same underlying
// record store; edges are distinguished by carrying "_from"/"_to"/"_edge_type" fields.
type Adapter struct {
	*adapters.MemoryBase
}

// New constructs a graph adapter.
func New() *Adapter {
	return &Adapter{MemoryBase: adapters.NewMemoryBase(model.StoreKindGraph)}
}

var _ adapters.GraphCapable = (*Adapter)(nil)

// CreateNode stores a labelled node with its property map.
func (a *Adapter) CreateNode(ctx context.Context, label string, props map[string]any) (string, error) {
	id, err := idgen.GenerateUUID4()
	if err != nil {
		return "", errorkinds.BadRequest("generating node id", err)
	}
	fields := cloneWith(props, map[string]any{"_label": label})
	return a.WriteOne(ctx, adapters.Record{ID: id, Fields: fields})
}

// CreateEdge stores a typed, weighted edge between two existing nodes.
func (a *Adapter) CreateEdge(ctx context.Context, fromID, toID, edgeType string, props map[string]any) (string, error) {
	id, err := idgen.GenerateUUID4()
	if err != nil {
		return "", errorkinds.BadRequest("generating edge id", err)
	}
	fields := cloneWith(props, map[string]any{
		"_from":        fromID,
		"_to":          toID,
		"_edge_type":   edgeType,
		"_active":      true,
		"_weight_history": []float64{},
	})
	return a.WriteOne(ctx, adapters.Record{ID: id, Fields: fields})
}

// UpdateEdgeWeight sets a new weight, appending the previous weight to the edge's history rather
// than discarding it.
func (a *Adapter) UpdateEdgeWeight(ctx context.Context, edgeID string, weight float64) error {
	rec, found, err := a.ReadOne(ctx, edgeID, nil)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	history, _ := rec.Fields["_weight_history"].([]float64)
	if prev, ok := rec.Fields["_weight"].(float64); ok {
		history = append(history, prev)
	}
	rec.Fields["_weight"] = weight
	rec.Fields["_weight_history"] = history
	return a.overwrite(ctx, rec)
}

// SoftDeleteEdge flags the edge inactive without removing it: the edge still exists and is
// returned by reads, but Traverse skips it.
func (a *Adapter) SoftDeleteEdge(ctx context.Context, edgeID string) error {
	return a.setActive(ctx, edgeID, false, true)
}

// RestoreEdge reverses SoftDeleteEdge.
func (a *Adapter) RestoreEdge(ctx context.Context, edgeID string) error {
	return a.setActive(ctx, edgeID, true, false)
}

func (a *Adapter) setActive(ctx context.Context, edgeID string, active bool, deleted bool) error {
	rec, found, err := a.ReadOne(ctx, edgeID, nil)
	if err != nil {
		return err
	}
	if !found {
		return errorkinds.BadRequest(fmt.Sprintf("edge %s not found", edgeID), nil)
	}
	rec.Fields["_active"] = active
	rec.Fields["_deleted_at"] = time.Time{}
	if deleted {
		rec.Fields["_deleted_at"] = time.Now()
	}
	return a.overwrite(ctx, rec)
}

// overwrite replaces a record in place. The in-memory base only overwrites an existing id when
// ConflictIsSuccess is set, so overwrite switches that policy on for this adapter; it stays on
// for every later write.
func (a *Adapter) overwrite(ctx context.Context, rec adapters.Record) error {
	a.MemoryBase.ConflictIsSuccess = true
	_, err := a.WriteOne(ctx, rec)
	return err
}

// Traverse walks outbound active edges of the given type up to depth hops from startID.
func (a *Adapter) Traverse(ctx context.Context, startID string, edgeType string, depth int) ([]adapters.Record, error) {
	if depth <= 0 {
		depth = 1
	}
	frontier := []string{startID}
	seen := map[string]bool{startID: true}
	var results []adapters.Record
	for d := 0; d < depth; d++ {
		iter, err := a.QueryNative(ctx, "")
		if err != nil {
			return nil, err
		}
		var next []string
		iter(func(rec adapters.Record) bool {
			from, _ := rec.Fields["_from"].(string)
			to, _ := rec.Fields["_to"].(string)
			et, _ := rec.Fields["_edge_type"].(string)
			active, _ := rec.Fields["_active"].(bool)
			if !active || to == "" {
				return true
			}
			if edgeType != "" && et != edgeType {
				return true
			}
			for _, f := range frontier {
				if from == f && !seen[to] {
					seen[to] = true
					next = append(next, to)
					results = append(results, rec)
				}
			}
			return true
		})
		if len(next) == 0 {
			break
		}
		frontier = next
	}
	return results, nil
}

func cloneWith(base map[string]any, extra map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
