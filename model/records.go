package model

import "time"

// MasterRegistryRecord is the category-level persisted shape for "master_registry".
// mapstructure tags fix the field->key mapping used when distributor.structToFields flattens
// these into an adapters.Record.Fields map, so adapter code that reads specific keys (e.g.
// vector.NearestNeighbors' "vector"/"collection", executor.go's "cross_refs") agrees with what
// gets written.
type MasterRegistryRecord struct {
	DocumentID    string                  `mapstructure:"document_id"`
	ProcessorKind ProcessorKind           `mapstructure:"processor_kind"`
	FilePath      string                  `mapstructure:"file_path"`
	Size          int64                   `mapstructure:"size"`
	MimeType      string                  `mapstructure:"mime_type"`
	CrossRefs     map[StoreKind][]string  `mapstructure:"cross_refs"`
	CreatedAt     time.Time               `mapstructure:"created_at"`
}

// ProcessorResultRecord is the category-level persisted shape for "processor_results".
type ProcessorResultRecord struct {
	DocumentID    string        `mapstructure:"document_id"`
	ProcessorKind ProcessorKind `mapstructure:"processor_kind"`
	Payload       map[string]any `mapstructure:"payload"`
	Confidence    float64       `mapstructure:"confidence"`
	Duration      time.Duration `mapstructure:"duration"`
	Error         string        `mapstructure:"error"`
}

// DocumentContentRecord is the category-level persisted shape for "document_content".
type DocumentContentRecord struct {
	DocumentID        string         `mapstructure:"document_id"`
	Text              string         `mapstructure:"text"`
	StructuredExtract map[string]any `mapstructure:"structured_extract"`
	Revision          string         `mapstructure:"revision"`
}

// VectorEmbeddingRecord is the category-level persisted shape for "vector_embeddings".
type VectorEmbeddingRecord struct {
	VectorID   string    `mapstructure:"vector_id"`
	DocumentID string    `mapstructure:"document_id"`
	Vector     []float32 `mapstructure:"vector"`
	Dimension  int       `mapstructure:"dimension"`
	Model      string    `mapstructure:"model"`
	Collection string    `mapstructure:"collection"`
}

// RelationshipRecord is the category-level persisted shape for "relationships".
type RelationshipRecord struct {
	SourceID     string         `mapstructure:"source_id"`
	TargetID     string         `mapstructure:"target_id"`
	RelationType string         `mapstructure:"relation_type"`
	Properties   map[string]any `mapstructure:"properties"`
}

// GeospatialDataRecord is the category-level persisted shape for "geospatial_data".
type GeospatialDataRecord struct {
	DocumentID       string         `mapstructure:"document_id"`
	Latitude         float64        `mapstructure:"latitude"`
	Longitude        float64        `mapstructure:"longitude"`
	CoordinateSystem string         `mapstructure:"coordinate_system"`
	Extra            map[string]any `mapstructure:"extra"`
}

// EventRecord is the category-level persisted shape for "event_store" (append-only).
type EventRecord struct {
	EventID    string         `mapstructure:"event_id"`
	DocumentID string         `mapstructure:"document_id"`
	EventKind  string         `mapstructure:"event_kind"`
	Payload    map[string]any `mapstructure:"payload"`
	Timestamp  time.Time      `mapstructure:"timestamp"`
}
