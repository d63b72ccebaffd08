// Package vector implements the vector store adapter: the common Adapter contract plus
// collection creation (idempotent get-or-create), optional embedding generation, and
// nearest-neighbour search. Duplicate-on-insert is treated as
// success: re-inserting an embedding that already exists is a no-op, not an error.
package vector

import (
	"context"
	"math"
	"sort"

	"github.com/polyglotdb/coordinator/adapters"
	"github.com/polyglotdb/coordinator/commonerrors"
	"github.com/polyglotdb/coordinator/model"
)

// Embedder generates a dense vector from raw text, used when the caller passes text instead of
// an already-computed embedding. Concrete embedding-model wiring is out of scope
//; this is the seam the coordinator calls through.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Adapter is the in-memory vector store adapter.
type Adapter struct {
	*adapters.MemoryBase
	embedder    Embedder
	collections map[string]int
}

// New constructs a vector adapter. embedder may be nil, in which case Embed returns
// commonerrors.ErrNotImplemented (no model is wired by default).
func New(embedder Embedder) *Adapter {
	base := adapters.NewMemoryBase(model.StoreKindVector)
	base.ConflictIsSuccess = true
	return &Adapter{MemoryBase: base, embedder: embedder, collections: make(map[string]int)}
}

var _ adapters.VectorCapable = (*Adapter)(nil)

// EnsureCollection is idempotent get-or-create: it accepts a dimension mismatch against an
// already-created collection as a bad_request rather than silently redefining it.
func (a *Adapter) EnsureCollection(_ context.Context, name string, dimension int) error {
	if existing, ok := a.collections[name]; ok {
		if existing != dimension {
			return commonerrors.Newf(commonerrors.ErrInvalid, "collection %s already has dimension %d, not %d", name, existing, dimension)
		}
		return nil
	}
	a.collections[name] = dimension
	return nil
}

// Embed generates an embedding for raw text via the wired Embedder.
func (a *Adapter) Embed(ctx context.Context, text string) ([]float32, error) {
	if a.embedder == nil {
		return nil, commonerrors.ErrNotImplemented
	}
	return a.embedder.Embed(ctx, text)
}

// NearestNeighbors performs a brute-force scan over the in-memory store's vectors, returning
// hits sorted ascending by Euclidean distance.
func (a *Adapter) NearestNeighbors(ctx context.Context, collection string, query []float32, topK int, filter map[string]any) ([]adapters.NeighborResult, error) {
	iter, err := a.QueryNative(ctx, "")
	if err != nil {
		return nil, err
	}
	var results []adapters.NeighborResult
	iter(func(rec adapters.Record) bool {
		if collection != "" {
			if c, _ := rec.Fields["collection"].(string); c != collection {
				return true
			}
		}
		if !matchesFilter(rec.Fields, filter) {
			return true
		}
		vec, ok := rec.Fields["vector"].([]float32)
		if !ok {
			return true
		}
		results = append(results, adapters.NeighborResult{
			ID:       rec.ID,
			Metadata: rec.Fields,
			Distance: euclidean(query, vec),
		})
		return true
	})
	sort.Slice(results, func(i, j int) bool { return results[i].Distance < results[j].Distance })
	if topK > 0 && len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

func matchesFilter(fields map[string]any, filter map[string]any) bool {
	for k, want := range filter {
		if got, ok := fields[k]; !ok || got != want {
			return false
		}
	}
	return true
}

func euclidean(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for i := 0; i < n; i++ {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}
