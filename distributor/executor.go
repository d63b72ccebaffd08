package distributor

import (
	"context"

	"github.com/polyglotdb/coordinator/adapters"
	"github.com/polyglotdb/coordinator/maps"
	"github.com/polyglotdb/coordinator/model"
	"github.com/polyglotdb/coordinator/saga"
)

// adapterExecutor implements saga.StepExecutor over a single concrete store adapter. Every category except
// master_registry is a plain write with a delete compensation; master_registry additionally
// merges its cross-reference map so repeated distribute() calls for the same document id stay
// idempotent instead of producing duplicate rows.
type adapterExecutor struct {
	adapter adapters.Adapter
}

func newAdapterExecutor(adapter adapters.Adapter) *adapterExecutor {
	return &adapterExecutor{adapter: adapter}
}

func (e *adapterExecutor) HealthCheck(ctx context.Context) error {
	_, err := e.adapter.HealthCheck(ctx)
	return err
}

func (e *adapterExecutor) Execute(ctx context.Context, step *saga.TransactionStep, depResults map[string]map[string]any) (map[string]any, []model.CompensationAction, error) {
	recordID, _ := step.Payload["record_id"].(string)
	fields, _ := step.Payload["fields"].(map[string]any)
	category, _ := step.Payload["category"].(model.ContentCategory)

	if category == model.CategoryMasterRegistry {
		return e.executeMasterRegistry(ctx, step, depResults, recordID, fields)
	}

	id, err := e.adapter.WriteOne(ctx, adapters.Record{ID: recordID, Fields: fields})
	if err != nil {
		return nil, nil, err
	}
	adapter := e.adapter
	compensations := []model.CompensationAction{{
		Name:     "delete_" + recordID,
		Priority: 0,
		Run: func() error {
			_, delErr := adapter.Delete(context.Background(), id)
			return delErr
		},
	}}
	return map[string]any{"id": id, "store_kind": string(e.adapter.Kind())}, compensations, nil
}

// executeMasterRegistry reads any existing master_registry row for this document id, unions its
// cross_refs with the ids produced by this transaction's other steps (passed via depResults, keyed
// by dependency step id; the ids to merge are listed in the step's merge_from payload), then overwrites the row with delete+write since the
// underlying adapters do not treat re-writing an existing id as success.
func (e *adapterExecutor) executeMasterRegistry(ctx context.Context, step *saga.TransactionStep, depResults map[string]map[string]any, recordID string, fields map[string]any) (map[string]any, []model.CompensationAction, error) {
	existing, found, err := e.adapter.ReadOne(ctx, recordID, nil)
	if err != nil {
		return nil, nil, err
	}

	crossRefs := map[model.StoreKind][]string{}
	if found {
		if raw, ok := existing.Fields["cross_refs"].(map[model.StoreKind][]string); ok {
			for k, v := range raw {
				crossRefs[k] = append([]string(nil), v...)
			}
		}
	}

	mergeFrom, _ := step.Payload["merge_from"].([]string)
	for _, depID := range mergeFrom {
		dep, ok := depResults[depID]
		if !ok {
			continue
		}
		depStoreKind, _ := dep["store_kind"].(string)
		depRecordID, _ := dep["id"].(string)
		if depStoreKind == "" || depRecordID == "" {
			continue
		}
		kind := model.StoreKind(depStoreKind)
		if !containsString(crossRefs[kind], depRecordID) {
			crossRefs[kind] = append(crossRefs[kind], depRecordID)
		}
	}

	merged := maps.Merge(fields, map[string]any{"cross_refs": crossRefs})

	if found {
		if _, err := e.adapter.Delete(ctx, recordID); err != nil {
			return nil, nil, err
		}
	}
	id, err := e.adapter.WriteOne(ctx, adapters.Record{ID: recordID, Fields: merged})
	if err != nil {
		return nil, nil, err
	}

	adapter := e.adapter
	var compensations []model.CompensationAction
	if found {
		previous := maps.Merge(map[string]any{}, existing.Fields)
		compensations = append(compensations, model.CompensationAction{
			Name:     "restore_master_registry_" + recordID,
			Priority: 0,
			Run: func() error {
				if _, delErr := adapter.Delete(context.Background(), recordID); delErr != nil {
					return delErr
				}
				_, wErr := adapter.WriteOne(context.Background(), adapters.Record{ID: recordID, Fields: previous})
				return wErr
			},
		})
	} else {
		compensations = append(compensations, model.CompensationAction{
			Name:     "delete_master_registry_" + recordID,
			Priority: 0,
			Run: func() error {
				_, delErr := adapter.Delete(context.Background(), recordID)
				return delErr
			},
		})
	}
	return map[string]any{"id": id, "store_kind": string(e.adapter.Kind()), "cross_refs": crossRefs}, compensations, nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

