// Package document implements the document store adapter: the common Adapter contract plus
// revision tokens and conflict resolution (last-writer-wins by default, or parent-revision
// conflict detection when the caller supplies one).
package document

import (
	"context"
	"strconv"

	"github.com/polyglotdb/coordinator/adapters"
	"github.com/polyglotdb/coordinator/commonerrors"
	"github.com/polyglotdb/coordinator/errorkinds"
	"github.com/polyglotdb/coordinator/model"
)

// Adapter is the in-memory document store adapter.
type Adapter struct {
	*adapters.MemoryBase
}

// New constructs a document adapter. Documents are always rewritten through WriteWithRevision's
// bump, so duplicate ids are the expected steady state, not a conflict.
func New() *Adapter {
	base := adapters.NewMemoryBase(model.StoreKindDocument)
	base.ConflictIsSuccess = true
	return &Adapter{MemoryBase: base}
}

var _ adapters.DocumentCapable = (*Adapter)(nil)

const revisionField = "_revision"

// WriteWithRevision writes record, detecting a conflict when parentRevision is supplied and
// does not match the currently stored revision; with no parentRevision it behaves as
// last-writer-wins.
func (a *Adapter) WriteWithRevision(ctx context.Context, record adapters.Record, parentRevision string) (string, bool, error) {
	existing, found, err := a.ReadOne(ctx, record.ID, nil)
	if err != nil {
		return "", false, err
	}
	nextRevision := "1"
	if found {
		currentRevision, _ := existing.Fields[revisionField].(string)
		if parentRevision != "" && parentRevision != currentRevision {
			return currentRevision, true, errorkinds.Conflict("revision mismatch for "+record.ID, commonerrors.ErrConflict)
		}
		n, convErr := strconv.Atoi(currentRevision)
		if convErr == nil {
			nextRevision = strconv.Itoa(n + 1)
		}
	}
	fields := make(map[string]any, len(record.Fields)+1)
	for k, v := range record.Fields {
		fields[k] = v
	}
	fields[revisionField] = nextRevision
	if _, werr := a.WriteOne(ctx, adapters.Record{ID: record.ID, Fields: fields}); werr != nil {
		return "", false, werr
	}
	return nextRevision, false, nil
}
