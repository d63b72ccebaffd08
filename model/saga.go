package model

import "time"

// StepState is the lifecycle state of a single SAGA step.
type StepState string

const (
	StepPending     StepState = "pending"
	StepExecuting   StepState = "executing"
	StepCompleted   StepState = "completed"
	StepFailed      StepState = "failed"
	StepCompensating StepState = "compensating"
	StepCompensated StepState = "compensated"
)

// TransactionState is the lifecycle state of a whole SAGA transaction.
type TransactionState string

const (
	TransactionInitiated   TransactionState = "initiated"
	TransactionExecuting   TransactionState = "executing"
	TransactionCompensating TransactionState = "compensating"
	TransactionCompleted   TransactionState = "completed"
	TransactionCompensated TransactionState = "compensated"
	TransactionFailed      TransactionState = "failed"
	TransactionTimeout     TransactionState = "timeout"
)

// CompensationAction reverses a completed step's effect. Compensations are registered as the
// step executes (they reference ids the store returned), not declared upfront, and must be
// idempotent.
type CompensationAction struct {
	Name     string
	Priority int
	Run      func() error
}

// StepSnapshot is an observable, immutable view of a TransactionStep's progress.
type StepSnapshot struct {
	ID             string
	StoreKind      StoreKind
	State          StepState
	DependsOn      []string
	Attempts       int
	ResultData     map[string]any
	Err            error
	StartedAt      time.Time
	CompletedAt    time.Time
}

// TransactionSnapshot is an observable, immutable view of a SagaTransaction's progress, returned
// by ISagaOrchestrator.Get.
type TransactionSnapshot struct {
	ID        string
	State     TransactionState
	Steps     []StepSnapshot
	StartedAt time.Time
	EndedAt   time.Time
	Err       error
}
