package saga

import (
	"context"

	"github.com/polyglotdb/coordinator/model"
)

// StepExecutor runs one store kind's steps against its adapter. depResults carries the
// result data of this step's already-completed dependencies, keyed by dependency step id, so a
// step that needs ids its dependencies produced (e.g. a master_registry cross-reference update)
// can read them without the orchestrator exposing its internal bookkeeping.
type StepExecutor interface {
	// HealthCheck reports whether the backing adapter is currently reachable.
	HealthCheck(ctx context.Context) error
	// Execute runs the step's forward action, returning any ids the store assigned
	// (step.result_data) and the compensation actions the adapter contributed as it ran.
	Execute(ctx context.Context, step *TransactionStep, depResults map[string]map[string]any) (resultData map[string]any, compensations []model.CompensationAction, err error)
}
