// Package errorkinds implements the coordinator's flat cross-adapter error taxonomy on top of
// the commonerrors sentinels, so that existing
// commonerrors.Any/commonerrors.Join consumers keep working transparently.
package errorkinds

import (
	"errors"
	"fmt"

	"github.com/polyglotdb/coordinator/commonerrors"
)

// ErrCompensationFailed signals that at least one compensation action failed during a SAGA
// rollback. It has no commonerrors analogue upstream and is surfaced for operator remediation.
var ErrCompensationFailed = errors.New("compensation failed")

// ErrUnrecoverableUnavailability signals that, even after following every fallback chain, no
// store able to satisfy a critical distribution category was reachable.
var ErrUnrecoverableUnavailability = errors.New("unrecoverable unavailability")

// ErrInvalidTransaction signals a dependency cycle or otherwise invalid SAGA transaction
// definition, detected before any step executes.
var ErrInvalidTransaction = errors.New("invalid transaction")

// ErrUnknownRelation signals a relation instance was requested for an undefined relation type.
var ErrUnknownRelation = errors.New("unknown relation")

// ErrInvalidProperties signals relation instance properties failed validation against their
// definition (missing required keys, wrong type, out-of-range values).
var ErrInvalidProperties = errors.New("invalid properties")

// Transient wraps err as a transient_transport failure: retryable by the layer that raised it.
func Transient(msg string, err error) error {
	return commonerrors.WrapError(commonerrors.ErrUnavailable, err, msg)
}

// BadRequest wraps err as a bad_request failure: never retried, surfaced to the caller immediately.
func BadRequest(msg string, err error) error {
	return commonerrors.WrapError(commonerrors.ErrInvalid, err, msg)
}

// Conflict wraps err as a conflict (duplicate id, revision mismatch); policy on whether this is
// treated as success is decided per adapter, not here.
func Conflict(msg string, err error) error {
	return commonerrors.WrapError(commonerrors.ErrConflict, err, msg)
}

// StoreUnavailable reports that an adapter's health check failed before the attempt was made.
func StoreUnavailable(storeKind string) error {
	return commonerrors.Newf(commonerrors.ErrUnavailable, "store unavailable: %s", storeKind)
}

// InvalidTransaction reports a dependency cycle or invalid step definition.
func InvalidTransaction(msg string) error {
	return fmt.Errorf("%w: %w: %s", commonerrors.ErrInvalid, ErrInvalidTransaction, msg)
}

// Timeout reports a step or transaction budget being exceeded.
func Timeout(msg string) error {
	return commonerrors.New(commonerrors.ErrTimeout, msg)
}

// Cancelled reports a submission or step cancelled before completion.
func Cancelled(msg string) error {
	return commonerrors.New(commonerrors.ErrCancelled, msg)
}

// CompensationFailed wraps the per-step compensation errors collected during a rollback.
func CompensationFailed(stepErrs ...error) error {
	joined := commonerrors.Join(stepErrs...)
	if joined == nil {
		return nil
	}
	return commonerrors.WrapError(ErrCompensationFailed, joined, "compensation failed")
}

// UnrecoverableUnavailability reports that no fallback could cover a critical category.
func UnrecoverableUnavailability(category string) error {
	return fmt.Errorf("%w: %w: category %s", commonerrors.ErrUnavailable, ErrUnrecoverableUnavailability, category)
}

// IsNotFound reports whether err denotes the not_found *value* rather than a transport error.
func IsNotFound(err error) bool {
	return commonerrors.Any(err, commonerrors.ErrNotFound)
}

// IsTransient reports whether err should be retried by the caller's layer.
func IsTransient(err error) bool {
	return commonerrors.Any(err, commonerrors.ErrUnavailable) && !errors.Is(err, ErrUnrecoverableUnavailability)
}

// IsBadRequest reports whether err is non-retryable and should surface immediately.
func IsBadRequest(err error) bool {
	return commonerrors.Any(err, commonerrors.ErrInvalid) && !errors.Is(err, ErrInvalidTransaction)
}

// IsConflict reports whether err denotes a conflict (duplicate id, revision mismatch).
func IsConflict(err error) bool {
	return commonerrors.Any(err, commonerrors.ErrConflict)
}
