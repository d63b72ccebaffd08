// Package relations implements the typed-relations model: an immutable definition
// registry loaded at init, and the validation rules instance creation must pass before an
// adapter operation is emitted per target store kind. The registry owns definitions and
// validation only; store adapters own persistence of the resulting instances.
package relations

import (
	"github.com/polyglotdb/coordinator/model"
)

// DefinitionRegistry is the immutable, process-lifetime registry of relation definitions.
// No lock is needed once constructed.
type DefinitionRegistry struct {
	byName map[string]model.RelationDefinition
}

// NewDefinitionRegistry constructs a registry from a fixed set of definitions, keyed by name.
// Later entries with a duplicate name overwrite earlier ones, matching a simple static-table load.
func NewDefinitionRegistry(definitions...model.RelationDefinition) *DefinitionRegistry {
	byName := make(map[string]model.RelationDefinition, len(definitions))
	for _, d := range definitions {
		byName[d.Name] = d
	}
	return &DefinitionRegistry{byName: byName}
}

// Lookup returns the named definition, or false if no such relation type is registered.
func (r *DefinitionRegistry) Lookup(name string) (model.RelationDefinition, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Names returns every registered relation name, in no particular order.
func (r *DefinitionRegistry) Names() []string {
	out := make([]string, 0, len(r.byName))
	for name := range r.byName {
		out = append(out, name)
	}
	return out
}

// DefaultRegistry returns the built-in relation catalogue: REFERS_TO is the
// structural cross-document relation the distributor's own routing tests exercise, DERIVED_FROM
// tracks processor provenance, and DUPLICATE_OF is the data-quality relation the distributor
// records in the relational fallback join table when the graph adapter is unreachable.
func DefaultRegistry() *DefinitionRegistry {
	return NewDefinitionRegistry(
		model.RelationDefinition{
			Name:             "REFERS_TO",
			Category:         model.RelationCategoryStructural,
			SourceEntityKind: "document",
			TargetEntityKind: "document",
			Properties: []model.PropertySchema{
				{Key: "confidence", Type: model.PropertyTypeNumber, Required: true, HasRange: true, Min: 0, Max: 1},
			},
			InverseName:       "REFERENCED_BY",
			MustPersistIn:     []model.StoreKind{model.StoreKindGraph, model.StoreKindRelational},
			DefaultPriority:   model.PriorityHigh,
			PerformanceWeight: 1.0,
		},
		model.RelationDefinition{
			Name:             "DERIVED_FROM",
			Category:         model.RelationCategorySemantic,
			SourceEntityKind: "document",
			TargetEntityKind: "document",
			Properties: []model.PropertySchema{
				{Key: "processor_kind", Type: model.PropertyTypeString, Required: true},
			},
			InverseName:       "SOURCE_OF",
			Transitive:        true,
			MustPersistIn:     []model.StoreKind{model.StoreKindGraph, model.StoreKindRelational},
			DefaultPriority:   model.PriorityMedium,
			PerformanceWeight: 0.7,
		},
		model.RelationDefinition{
			Name:             "DUPLICATE_OF",
			Category:         model.RelationCategoryQuality,
			SourceEntityKind: "document",
			TargetEntityKind: "document",
			Properties: []model.PropertySchema{
				{Key: "similarity", Type: model.PropertyTypeNumber, Required: true, HasRange: true, Min: 0, Max: 1},
			},
			InverseName:       "DUPLICATE_OF",
			Symmetric:         true,
			MustPersistIn:     []model.StoreKind{model.StoreKindRelational},
			DefaultPriority:   model.PriorityLow,
			PerformanceWeight: 0.3,
		},
	)
}
