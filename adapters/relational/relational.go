// Package relational implements the relational store adapter: the common Adapter contract plus
// an IN(...) batch read by primary key and arbitrary parameterized queries. The same
// in-memory engine also serves as the "embedded local store" backing monolithic_fallback
// when every other store is unreachable.
package relational

import (
	"context"
	"fmt"

	"github.com/polyglotdb/coordinator/adapters"
	"github.com/polyglotdb/coordinator/model"
)

// Adapter is the in-memory relational store adapter. Duplicate-on-insert is reported as a
// conflict, not converted to success.
type Adapter struct {
	*adapters.MemoryBase
}

// New constructs a relational adapter.
func New() *Adapter {
	return &Adapter{MemoryBase: adapters.NewMemoryBase(model.StoreKindRelational)}
}

var _ adapters.RelationalCapable = (*Adapter)(nil)

// ReadIn is the IN(...) batch read by primary key. The
// in-memory engine has no separate primary-key index, so this is ReadBatch under another name;
// a concrete SQL adapter would instead issue "WHERE id IN (...)".
func (a *Adapter) ReadIn(ctx context.Context, ids []string) (map[string]adapters.Record, error) {
	return a.ReadBatch(ctx, ids)
}

// Query runs an arbitrary parameterized query against the in-memory engine's equality index.
// query is a format string that, once args are substituted into it with fmt.Sprintf, takes the
// form "field=value".
func (a *Adapter) Query(ctx context.Context, query string, args...any) ([]adapters.Record, error) {
	iter, err := a.QueryNative(ctx, fmt.Sprintf(query, args...))
	if err != nil {
		return nil, err
	}
	var out []adapters.Record
	iter(func(rec adapters.Record) bool {
		out = append(out, rec)
		return true
	})
	return out, nil
}
