// Package adapters defines the uniform contract every store backend must expose to the
// coordinator: connect/disconnect/health-check, single and batch read/write,
// existence checks, delete, and a store-native query escape hatch. The base interface is
// deliberately small; store-specific behaviour is added through capability interfaces
// (VectorCapable, GraphCapable, DocumentCapable, RelationalCapable, HasBatch) so the
// distributor and SAGA orchestrator only depend on the capabilities they actually use.
package adapters

import (
	"context"
	"time"

	"github.com/polyglotdb/coordinator/model"
)

//go:generate go tool mockgen -destination=../mocks/mock_$GOPACKAGE.go -package=mocks github.com/polyglotdb/coordinator/$GOPACKAGE Adapter,HasBatch,VectorCapable,GraphCapable,DocumentCapable,RelationalCapable

// Record is the generic unit of storage the coordinator writes to and reads from an adapter: an
// opaque identifier plus a heterogeneous field map. Adapters translate Record to/from their own
// native representation.
type Record struct {
	ID     string
	Fields map[string]any
}

// WriteOutcome is the per-item result of a write, used both for single writes and as the element
// type of a WriteBatch result.
type WriteOutcome struct {
	ID  string
	Err error
}

// Adapter is the contract common to all four store kinds.
type Adapter interface {
	Kind() model.StoreKind
	Connect(ctx context.Context) (bool, model.HealthStatus, error)
	Disconnect(ctx context.Context) error
	HealthCheck(ctx context.Context) (model.HealthStatus, error)
	WriteOne(ctx context.Context, record Record) (string, error)
	WriteBatch(ctx context.Context, records []Record) ([]WriteOutcome, error)
	ReadOne(ctx context.Context, id string, projection []string) (Record, bool, error)
	ReadBatch(ctx context.Context, ids []string) (map[string]Record, error)
	ExistsBatch(ctx context.Context, ids []string) (map[string]bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	QueryNative(ctx context.Context, query string, args...any) (iter func(yield func(Record) bool), err error)
	Stats() *model.AdapterStats
}

// HasBatch is implemented by adapters whose underlying store exposes a genuinely native batch
// call (as opposed to falling back to sequential per-item calls inside WriteBatch).
type HasBatch interface {
	NativeBatchWrite(ctx context.Context, records []Record) ([]WriteOutcome, error)
}

// VectorCapable is implemented by the vector store adapter.
type VectorCapable interface {
	Adapter
	EnsureCollection(ctx context.Context, name string, dimension int) error
	Embed(ctx context.Context, text string) ([]float32, error)
	NearestNeighbors(ctx context.Context, collection string, vector []float32, topK int, filter map[string]any) ([]NeighborResult, error)
}

// NeighborResult is one hit of a nearest-neighbour search, sorted ascending by distance.
type NeighborResult struct {
	ID       string
	Metadata map[string]any
	Distance float64
}

// GraphCapable is implemented by the graph store adapter.
type GraphCapable interface {
	Adapter
	CreateNode(ctx context.Context, label string, props map[string]any) (string, error)
	CreateEdge(ctx context.Context, fromID, toID, edgeType string, props map[string]any) (string, error)
	UpdateEdgeWeight(ctx context.Context, edgeID string, weight float64) error
	SoftDeleteEdge(ctx context.Context, edgeID string) error
	RestoreEdge(ctx context.Context, edgeID string) error
	Traverse(ctx context.Context, startID string, edgeType string, depth int) ([]Record, error)
}

// DocumentCapable is implemented by the document store adapter.
type DocumentCapable interface {
	Adapter
	WriteWithRevision(ctx context.Context, record Record, parentRevision string) (revision string, conflict bool, err error)
}

// RelationalCapable is implemented by the relational store adapter.
type RelationalCapable interface {
	Adapter
	ReadIn(ctx context.Context, ids []string) (map[string]Record, error)
	Query(ctx context.Context, query string, args...any) ([]Record, error)
}

// Clock abstracts wall-clock time so adapters timestamp writes with their own clock rather than
// trusting client-supplied timestamps.
type Clock func() time.Time
