package model

import "time"

// RelationCategory is the semantic category a relation definition belongs to.
type RelationCategory string

const (
	RelationCategoryLegal         RelationCategory = "legal"
	RelationCategoryStructural    RelationCategory = "structural"
	RelationCategorySemantic      RelationCategory = "semantic"
	RelationCategoryQuality       RelationCategory = "quality"
	RelationCategoryAdministrative RelationCategory = "administrative"
)

// PropertyType constrains the value type accepted for a relation property key.
type PropertyType string

const (
	PropertyTypeString  PropertyType = "string"
	PropertyTypeNumber  PropertyType = "number"
	PropertyTypeBool    PropertyType = "bool"
	PropertyTypeTime    PropertyType = "time"
)

// PropertySchema describes one permitted property key on a relation definition.
type PropertySchema struct {
	Key      string
	Type     PropertyType
	Required bool
	// Min/Max bound numeric values when HasRange is set; without HasRange no range is checked.
	Min, Max float64
	HasRange bool
}

// RelationDefinition is the type-level description of a relation, loaded at init from a static
// registry and immutable for the process lifetime.
type RelationDefinition struct {
	Name              string
	Category          RelationCategory
	SourceEntityKind  string
	TargetEntityKind  string
	Properties        []PropertySchema
	InverseName       string
	Transitive        bool
	Symmetric         bool
	Reflexive         bool
	MustPersistIn     []StoreKind
	DefaultPriority   Priority
	PerformanceWeight float64
}

// PropertyIssue names one validation failure against a RelationDefinition's PropertySchema.
type PropertyIssue struct {
	Key    string
	Reason string
}

// RelationInstance is a triple (source-id, target-id, properties) with a content-hash id.
// DataQualityScore and the category's performance weight are derived at creation and ride along
// with the instance into every store that persists it.
type RelationInstance struct {
	ID                string
	RelationName      string
	SourceID          string
	TargetID          string
	Properties        map[string]any
	CreatedAt         time.Time
	Version           int
	PerformanceWeight float64
	DataQualityScore  float64
}
