package document_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyglotdb/coordinator/adapters"
	"github.com/polyglotdb/coordinator/adapters/document"
	"github.com/polyglotdb/coordinator/model"
)

func connected(t *testing.T) *document.Adapter {
	t.Helper()
	a := document.New()
	_, _, err := a.Connect(context.Background())
	require.NoError(t, err)
	return a
}

func TestAdapter_KindIsDocument(t *testing.T) {
	assert.Equal(t, model.StoreKindDocument, document.New().Kind())
}

func TestAdapter_WriteWithRevision_FirstWriteStartsAtRevisionOne(t *testing.T) {
	a := connected(t)
	rev, conflict, err := a.WriteWithRevision(context.Background(), adapters.Record{ID: "d1", Fields: map[string]any{"text": "v1"}}, "")
	require.NoError(t, err)
	assert.False(t, conflict)
	assert.Equal(t, "1", rev)
}

func TestAdapter_WriteWithRevision_LastWriterWinsWithoutParentRevision(t *testing.T) {
	a := connected(t)
	_, _, err := a.WriteWithRevision(context.Background(), adapters.Record{ID: "d1", Fields: map[string]any{"text": "v1"}}, "")
	require.NoError(t, err)

	rev, conflict, err := a.WriteWithRevision(context.Background(), adapters.Record{ID: "d1", Fields: map[string]any{"text": "v2"}}, "")
	require.NoError(t, err)
	assert.False(t, conflict)
	assert.Equal(t, "2", rev)

	rec, found, err := a.ReadOne(context.Background(), "d1", nil)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "v2", rec.Fields["text"])
}

func TestAdapter_WriteWithRevision_StaleParentRevisionIsConflict(t *testing.T) {
	a := connected(t)
	rev1, _, err := a.WriteWithRevision(context.Background(), adapters.Record{ID: "d1", Fields: map[string]any{"text": "v1"}}, "")
	require.NoError(t, err)

	_, _, err = a.WriteWithRevision(context.Background(), adapters.Record{ID: "d1", Fields: map[string]any{"text": "v2"}}, "")
	require.NoError(t, err)

	// Caller still believes rev1 is current: detect the conflict instead of silently overwriting.
	current, conflict, err := a.WriteWithRevision(context.Background(), adapters.Record{ID: "d1", Fields: map[string]any{"text": "v3-stale"}}, rev1)
	require.Error(t, err)
	assert.True(t, conflict)
	assert.Equal(t, "2", current)
}

func TestAdapter_WriteWithRevision_MatchingParentRevisionSucceeds(t *testing.T) {
	a := connected(t)
	rev1, _, err := a.WriteWithRevision(context.Background(), adapters.Record{ID: "d1", Fields: map[string]any{"text": "v1"}}, "")
	require.NoError(t, err)

	rev2, conflict, err := a.WriteWithRevision(context.Background(), adapters.Record{ID: "d1", Fields: map[string]any{"text": "v2"}}, rev1)
	require.NoError(t, err)
	assert.False(t, conflict)
	assert.Equal(t, "2", rev2)
}
