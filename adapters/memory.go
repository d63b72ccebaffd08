package adapters

import (
	"context"
	"time"

	"github.com/sasha-s/go-deadlock"

	"github.com/polyglotdb/coordinator/commonerrors"
	"github.com/polyglotdb/coordinator/errorkinds"
	"github.com/polyglotdb/coordinator/model"
	"github.com/polyglotdb/coordinator/resource"
)

// MemoryBase is a deterministic, goroutine-safe in-memory implementation of the common Adapter
// contract, embedded by each concrete store adapter (relational/document/vector/graph). It backs
// both the test doubles and, for the relational adapter, the "embedded local store" that serves
// as the monolithic_fallback engine.
//
// The per-adapter mutex guarding MemoryBase.store is a go-deadlock RWMutex, the same lock type
// used by the batch accumulators, transaction registry and availability snapshot, so one
// deadlock detector covers the whole concurrency surface; see DESIGN.md.
type MemoryBase struct {
	kind      model.StoreKind
	mu        deadlock.RWMutex
	store     map[string]Record
	connected bool
	session   resource.ICloseableResource
	stats     *model.AdapterStats
	clock     Clock
	// ConflictIsSuccess implements the per-adapter duplicate-on-insert policy:
	// the vector and document adapters set this true, relational and graph leave it false.
	ConflictIsSuccess bool
}

// NewMemoryBase constructs an empty in-memory adapter core for the given store kind.
func NewMemoryBase(kind model.StoreKind) *MemoryBase {
	return &MemoryBase{
		kind:  kind,
		store: make(map[string]Record),
		stats: model.NewAdapterStats(),
		clock: time.Now,
	}
}

func (m *MemoryBase) Kind() model.StoreKind { return m.kind }

func (m *MemoryBase) Stats() *model.AdapterStats { return m.stats }

func (m *MemoryBase) Connect(_ context.Context) (bool, model.HealthStatus, error) {
	m.mu.Lock()
	m.connected = true
	m.session = resource.NewCloseableResource(nil, string(m.kind)+" in-memory session")
	m.mu.Unlock()
	return true, model.HealthStatus{Healthy: true}, nil
}

func (m *MemoryBase) Disconnect(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = false
	if m.session == nil || m.session.IsClosed() {
		return nil
	}
	return m.session.Close()
}

// Session exposes the adapter's connection handle; nil until Connect succeeds.
func (m *MemoryBase) Session() resource.ICloseableResource {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

func (m *MemoryBase) HealthCheck(_ context.Context) (model.HealthStatus, error) {
	start := time.Now()
	m.mu.RLock()
	connected := m.connected
	m.mu.RUnlock()
	latency := time.Since(start)
	m.stats.Latency.Observe(latency)
	if !connected {
		return model.HealthStatus{Healthy: false, Latency: latency}, errorkinds.StoreUnavailable(string(m.kind))
	}
	return model.HealthStatus{Healthy: true, Latency: latency}, nil
}

func (m *MemoryBase) isConnected() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.connected
}

func (m *MemoryBase) recordOp(isErr bool) {
	m.stats.Ops++
	if isErr {
		m.stats.Errors++
	}
}

// WriteOne stores a single record, timestamping it with the adapter's own clock.
func (m *MemoryBase) WriteOne(_ context.Context, record Record) (string, error) {
	if !m.isConnected() {
		m.recordOp(true)
		return "", errorkinds.StoreUnavailable(string(m.kind))
	}
	if record.ID == "" {
		m.recordOp(true)
		return "", errorkinds.BadRequest("missing record id", commonerrors.ErrInvalid)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	fields := cloneFields(record.Fields)
	fields["_written_at"] = m.clock()
	if _, exists := m.store[record.ID]; exists {
		if m.ConflictIsSuccess {
			m.store[record.ID] = Record{ID: record.ID, Fields: fields}
			m.recordOp(false)
			return record.ID, nil
		}
		m.recordOp(true)
		return "", errorkinds.Conflict("duplicate id "+record.ID, commonerrors.ErrConflict)
	}
	m.store[record.ID] = Record{ID: record.ID, Fields: fields}
	m.recordOp(false)
	return record.ID, nil
}

// WriteBatch falls back to per-item calls, reporting one outcome per input.
func (m *MemoryBase) WriteBatch(ctx context.Context, records []Record) ([]WriteOutcome, error) {
	outcomes := make([]WriteOutcome, len(records))
	for i := range records {
		id, err := m.WriteOne(ctx, records[i])
		outcomes[i] = WriteOutcome{ID: id, Err: err}
	}
	return outcomes, nil
}

func (m *MemoryBase) ReadOne(_ context.Context, id string, projection []string) (Record, bool, error) {
	if !m.isConnected() {
		m.recordOp(true)
		return Record{}, false, errorkinds.StoreUnavailable(string(m.kind))
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.store[id]
	m.recordOp(false)
	if !ok {
		return Record{}, false, nil
	}
	if len(projection) == 0 {
		return Record{ID: rec.ID, Fields: cloneFields(rec.Fields)}, true, nil
	}
	projected := make(map[string]any, len(projection))
	for _, key := range projection {
		if v, exists := rec.Fields[key]; exists {
			projected[key] = v
		}
	}
	return Record{ID: rec.ID, Fields: projected}, true, nil
}

func (m *MemoryBase) ReadBatch(_ context.Context, ids []string) (map[string]Record, error) {
	if !m.isConnected() {
		m.recordOp(true)
		return nil, errorkinds.StoreUnavailable(string(m.kind))
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]Record, len(ids))
	for _, id := range ids {
		if rec, ok := m.store[id]; ok {
			out[id] = Record{ID: rec.ID, Fields: cloneFields(rec.Fields)}
		}
	}
	m.recordOp(false)
	return out, nil
}

func (m *MemoryBase) ExistsBatch(_ context.Context, ids []string) (map[string]bool, error) {
	if !m.isConnected() {
		m.recordOp(true)
		return nil, errorkinds.StoreUnavailable(string(m.kind))
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		_, ok := m.store[id]
		out[id] = ok
	}
	m.recordOp(false)
	return out, nil
}

func (m *MemoryBase) Delete(_ context.Context, id string) (bool, error) {
	if !m.isConnected() {
		m.recordOp(true)
		return false, errorkinds.StoreUnavailable(string(m.kind))
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, existed := m.store[id]
	delete(m.store, id)
	m.recordOp(false)
	return existed, nil
}

// QueryNative implements a minimal native query: a field-equality predicate expressed as
// "field=value", sufficient for the in-memory engine and for tests; concrete wire adapters
// replace this with their own query language.
func (m *MemoryBase) QueryNative(_ context.Context, query string, _...any) (func(yield func(Record) bool), error) {
	if !m.isConnected() {
		return nil, errorkinds.StoreUnavailable(string(m.kind))
	}
	field, value, ok := splitEquality(query)
	m.mu.RLock()
	snapshot := make([]Record, 0, len(m.store))
	for _, rec := range m.store {
		if !ok || matchesField(rec, field, value) {
			snapshot = append(snapshot, Record{ID: rec.ID, Fields: cloneFields(rec.Fields)})
		}
	}
	m.mu.RUnlock()
	return func(yield func(Record) bool) {
		for _, rec := range snapshot {
			if !yield(rec) {
				return
			}
		}
	}, nil
}

func matchesField(rec Record, field string, value string) bool {
	v, exists := rec.Fields[field]
	if !exists {
		return false
	}
	s, ok := v.(string)
	return ok && s == value
}

func splitEquality(query string) (field, value string, ok bool) {
	for i := range query {
		if query[i] == '=' {
			return query[:i], query[i+1:], true
		}
	}
	return "", "", false
}

func cloneFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}
