package vector_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyglotdb/coordinator/adapters"
	"github.com/polyglotdb/coordinator/adapters/vector"
	"github.com/polyglotdb/coordinator/commonerrors"
	"github.com/polyglotdb/coordinator/model"
)

type stubEmbedder struct {
	vec []float32
	err error
}

func (s stubEmbedder) Embed(context.Context, string) ([]float32, error) {
	return s.vec, s.err
}

func connected(t *testing.T, embedder vector.Embedder) *vector.Adapter {
	t.Helper()
	a := vector.New(embedder)
	_, _, err := a.Connect(context.Background())
	require.NoError(t, err)
	return a
}

func TestAdapter_KindIsVector(t *testing.T) {
	assert.Equal(t, model.StoreKindVector, vector.New(nil).Kind())
}

func TestAdapter_DuplicateWriteIsSuccess(t *testing.T) {
	a := connected(t, nil)
	_, err := a.WriteOne(context.Background(), adapters.Record{ID: "v1", Fields: map[string]any{"vector": []float32{1, 2}}})
	require.NoError(t, err)

	_, err = a.WriteOne(context.Background(), adapters.Record{ID: "v1", Fields: map[string]any{"vector": []float32{3, 4}}})
	assert.NoError(t, err, "vector adapter must treat duplicate-on-insert as success")
}

func TestAdapter_EnsureCollection_IdempotentGetOrCreate(t *testing.T) {
	a := connected(t, nil)
	require.NoError(t, a.EnsureCollection(context.Background(), "docs", 3))
	require.NoError(t, a.EnsureCollection(context.Background(), "docs", 3), "second call with the same dimension must succeed")

	err := a.EnsureCollection(context.Background(), "docs", 4)
	assert.Error(t, err, "a dimension mismatch against an already-created collection must be rejected")
}

func TestAdapter_Embed_NoEmbedderConfigured(t *testing.T) {
	a := connected(t, nil)
	_, err := a.Embed(context.Background(), "some text")
	assert.ErrorIs(t, err, commonerrors.ErrNotImplemented)
}

func TestAdapter_Embed_DelegatesToWiredEmbedder(t *testing.T) {
	want := []float32{0.1, 0.2}
	a := connected(t, stubEmbedder{vec: want})
	got, err := a.Embed(context.Background(), "some text")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAdapter_NearestNeighbors_SortsAscendingByDistanceAndRespectsTopK(t *testing.T) {
	a := connected(t, nil)
	require.NoError(t, a.EnsureCollection(context.Background(), "docs", 2))

	type seed struct {
		id  string
		vec []float32
	}
	seeds := []seed{
		{"far", []float32{10, 10}},
		{"near", []float32{0, 1}},
		{"mid", []float32{2, 2}},
	}
	for _, s := range seeds {
		_, err := a.WriteOne(context.Background(), adapters.Record{ID: s.id, Fields: map[string]any{
			"vector":     s.vec,
			"collection": "docs",
		}})
		require.NoError(t, err)
	}

	results, err := a.NearestNeighbors(context.Background(), "docs", []float32{0, 0}, 2, nil)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "near", results[0].ID)
	assert.Equal(t, "mid", results[1].ID)
	assert.Less(t, results[0].Distance, results[1].Distance)
}

func TestAdapter_NearestNeighbors_FiltersByCollectionAndMetadata(t *testing.T) {
	a := connected(t, nil)
	_, err := a.WriteOne(context.Background(), adapters.Record{ID: "a", Fields: map[string]any{
		"vector": []float32{0, 0}, "collection": "docs", "lang": "en",
	}})
	require.NoError(t, err)
	_, err = a.WriteOne(context.Background(), adapters.Record{ID: "b", Fields: map[string]any{
		"vector": []float32{0, 0}, "collection": "docs", "lang": "fr",
	}})
	require.NoError(t, err)
	_, err = a.WriteOne(context.Background(), adapters.Record{ID: "c", Fields: map[string]any{
		"vector": []float32{0, 0}, "collection": "other",
	}})
	require.NoError(t, err)

	results, err := a.NearestNeighbors(context.Background(), "docs", []float32{0, 0}, 10, map[string]any{"lang": "en"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "a", results[0].ID)
}
