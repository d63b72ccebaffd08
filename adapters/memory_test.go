package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyglotdb/coordinator/errorkinds"
	"github.com/polyglotdb/coordinator/model"
)

func connectedBase(t *testing.T) *MemoryBase {
	t.Helper()
	b := NewMemoryBase(model.StoreKindRelational)
	_, _, err := b.Connect(context.Background())
	require.NoError(t, err)
	return b
}

func TestMemoryBase_WriteOneThenReadOneRoundTrips(t *testing.T) {
	b := connectedBase(t)
	id, err := b.WriteOne(context.Background(), Record{ID: "r1", Fields: map[string]any{"name": "alice"}})
	require.NoError(t, err)
	assert.Equal(t, "r1", id)

	rec, found, err := b.ReadOne(context.Background(), "r1", nil)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "alice", rec.Fields["name"])
	assert.NotZero(t, rec.Fields["_written_at"], "adapter must timestamp the write with its own clock")
}

func TestMemoryBase_ReadOne_AbsentIsNotAnError(t *testing.T) {
	b := connectedBase(t)
	rec, found, err := b.ReadOne(context.Background(), "missing", nil)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, rec)
}

func TestMemoryBase_ReadOne_Projection(t *testing.T) {
	b := connectedBase(t)
	_, err := b.WriteOne(context.Background(), Record{ID: "r1", Fields: map[string]any{"a": 1, "b": 2}})
	require.NoError(t, err)

	rec, found, err := b.ReadOne(context.Background(), "r1", []string{"a"})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, map[string]any{"a": 1}, rec.Fields)
}

func TestMemoryBase_WriteOne_DuplicateIsConflictByDefault(t *testing.T) {
	b := connectedBase(t)
	_, err := b.WriteOne(context.Background(), Record{ID: "r1", Fields: map[string]any{}})
	require.NoError(t, err)

	_, err = b.WriteOne(context.Background(), Record{ID: "r1", Fields: map[string]any{}})
	require.Error(t, err)
	assert.True(t, errorkinds.IsConflict(err))
}

func TestMemoryBase_WriteOne_DuplicateIsSuccessWhenPolicySaysSo(t *testing.T) {
	b := connectedBase(t)
	b.ConflictIsSuccess = true
	_, err := b.WriteOne(context.Background(), Record{ID: "r1", Fields: map[string]any{"v": 1}})
	require.NoError(t, err)
	_, err = b.WriteOne(context.Background(), Record{ID: "r1", Fields: map[string]any{"v": 2}})
	require.NoError(t, err)

	rec, _, err := b.ReadOne(context.Background(), "r1", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Fields["v"])
}

func TestMemoryBase_WriteOne_MissingIDIsBadRequest(t *testing.T) {
	b := connectedBase(t)
	_, err := b.WriteOne(context.Background(), Record{Fields: map[string]any{}})
	require.Error(t, err)
	assert.True(t, errorkinds.IsBadRequest(err))
}

func TestMemoryBase_NotConnected_ReturnsStoreUnavailable(t *testing.T) {
	b := NewMemoryBase(model.StoreKindGraph)
	_, err := b.WriteOne(context.Background(), Record{ID: "r1"})
	require.Error(t, err)
	assert.True(t, errorkinds.IsTransient(err))

	_, _, err = b.ReadOne(context.Background(), "r1", nil)
	assert.Error(t, err)

	_, err = b.ReadBatch(context.Background(), []string{"r1"})
	assert.Error(t, err)

	_, err = b.ExistsBatch(context.Background(), []string{"r1"})
	assert.Error(t, err)

	_, err = b.Delete(context.Background(), "r1")
	assert.Error(t, err)
}

func TestMemoryBase_WriteBatch_PartialFailureDoesNotAbortOtherItems(t *testing.T) {
	b := connectedBase(t)
	_, err := b.WriteOne(context.Background(), Record{ID: "dup", Fields: map[string]any{}})
	require.NoError(t, err)

	outcomes, err := b.WriteBatch(context.Background(), []Record{
		{ID: "ok1", Fields: map[string]any{}},
		{ID: "dup", Fields: map[string]any{}},
		{ID: "ok2", Fields: map[string]any{}},
	})
	require.NoError(t, err, "the whole batch call must not fail because one item conflicted")
	require.Len(t, outcomes, 3)
	assert.NoError(t, outcomes[0].Err)
	assert.Error(t, outcomes[1].Err)
	assert.True(t, errorkinds.IsConflict(outcomes[1].Err))
	assert.NoError(t, outcomes[2].Err)
}

func TestMemoryBase_ReadBatch_OmitsAbsentKeys(t *testing.T) {
	b := connectedBase(t)
	_, err := b.WriteOne(context.Background(), Record{ID: "present", Fields: map[string]any{}})
	require.NoError(t, err)

	out, err := b.ReadBatch(context.Background(), []string{"present", "absent"})
	require.NoError(t, err)
	assert.Contains(t, out, "present")
	assert.NotContains(t, out, "absent")
}

func TestMemoryBase_ExistsBatch(t *testing.T) {
	b := connectedBase(t)
	_, err := b.WriteOne(context.Background(), Record{ID: "present", Fields: map[string]any{}})
	require.NoError(t, err)

	out, err := b.ExistsBatch(context.Background(), []string{"present", "absent"})
	require.NoError(t, err)
	assert.True(t, out["present"])
	assert.False(t, out["absent"])
}

func TestMemoryBase_Delete(t *testing.T) {
	b := connectedBase(t)
	_, err := b.WriteOne(context.Background(), Record{ID: "r1", Fields: map[string]any{}})
	require.NoError(t, err)

	existed, err := b.Delete(context.Background(), "r1")
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = b.Delete(context.Background(), "r1")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestMemoryBase_QueryNative_FieldEquality(t *testing.T) {
	b := connectedBase(t)
	_, err := b.WriteOne(context.Background(), Record{ID: "r1", Fields: map[string]any{"status": "active"}})
	require.NoError(t, err)
	_, err = b.WriteOne(context.Background(), Record{ID: "r2", Fields: map[string]any{"status": "inactive"}})
	require.NoError(t, err)

	iter, err := b.QueryNative(context.Background(), "status=active")
	require.NoError(t, err)

	var matched []string
	iter(func(rec Record) bool {
		matched = append(matched, rec.ID)
		return true
	})
	assert.Equal(t, []string{"r1"}, matched)
}

func TestMemoryBase_QueryNative_EarlyStopHonoured(t *testing.T) {
	b := connectedBase(t)
	for _, id := range []string{"r1", "r2", "r3"} {
		_, err := b.WriteOne(context.Background(), Record{ID: id, Fields: map[string]any{}})
		require.NoError(t, err)
	}

	iter, err := b.QueryNative(context.Background(), "")
	require.NoError(t, err)

	count := 0
	iter(func(Record) bool {
		count++
		return count < 1
	})
	assert.Equal(t, 1, count)
}

func TestMemoryBase_HealthCheck_ReflectsConnectionState(t *testing.T) {
	b := NewMemoryBase(model.StoreKindDocument)
	status, err := b.HealthCheck(context.Background())
	assert.Error(t, err)
	assert.False(t, status.Healthy)

	_, _, err = b.Connect(context.Background())
	require.NoError(t, err)
	status, err = b.HealthCheck(context.Background())
	assert.NoError(t, err)
	assert.True(t, status.Healthy)
}

func TestMemoryBase_Stats_CountOpsAndErrors(t *testing.T) {
	b := connectedBase(t)
	_, _ = b.WriteOne(context.Background(), Record{ID: "r1", Fields: map[string]any{}})
	_, _ = b.WriteOne(context.Background(), Record{ID: "r1", Fields: map[string]any{}})

	stats := b.Stats()
	assert.EqualValues(t, 2, stats.Ops)
	assert.EqualValues(t, 1, stats.Errors)
}
