package model

import "time"

// StoreKind identifies one of the four backend store kinds the coordinator mediates between.
type StoreKind string

const (
	StoreKindRelational StoreKind = "relational"
	StoreKindDocument   StoreKind = "document"
	StoreKindVector     StoreKind = "vector"
	StoreKindGraph      StoreKind = "graph"
)

// AllStoreKinds lists every store kind known to the coordinator, in a stable order used for
// bitmap-style availability lookups.
var AllStoreKinds = []StoreKind{StoreKindRelational, StoreKindDocument, StoreKindVector, StoreKindGraph}

// Priority ranks a DistributionTarget's importance within a plan.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// ContentCategory names a slice of the distribution plan, e.g. "vector_embeddings".
type ContentCategory string

const (
	CategoryMasterRegistry      ContentCategory = "master_registry"
	CategoryProcessorResults    ContentCategory = "processor_results"
	CategoryDocumentContent     ContentCategory = "document_content"
	CategoryVectorEmbeddings    ContentCategory = "vector_embeddings"
	CategoryRelationships       ContentCategory = "relationships"
	CategoryGeospatialData      ContentCategory = "geospatial_data"
	CategoryMetadataEnrichment  ContentCategory = "metadata_enrichment"
	CategoryEventStore          ContentCategory = "event_store"
)

// DistributionTarget is a (store-kind, storage-location, priority, content-kind) tuple with
// optional fallback store kinds and a processor-affinity score.
type DistributionTarget struct {
	StoreKind         StoreKind
	Location          string
	Priority          Priority
	Category          ContentCategory
	Fallbacks         []StoreKind
	ProcessorAffinity float64
}

// DistributionPlan maps a content category to its ordered list of targets.
type DistributionPlan struct {
	DocumentID string
	Targets    map[ContentCategory][]DistributionTarget
	// Order preserves category evaluation order for deterministic execution/compensation.
	Order []ContentCategory
}

// NewDistributionPlan returns an empty plan for a document id.
func NewDistributionPlan(documentID string) *DistributionPlan {
	return &DistributionPlan{
		DocumentID: documentID,
		Targets:    make(map[ContentCategory][]DistributionTarget),
	}
}

// Add appends targets for a category, recording first-seen category order.
func (p *DistributionPlan) Add(category ContentCategory, targets...DistributionTarget) {
	if _, exists := p.Targets[category]; !exists {
		p.Order = append(p.Order, category)
	}
	p.Targets[category] = append(p.Targets[category], targets...)
}

// RoutingDecision records why a category landed on a given store kind.
type RoutingDecision struct {
	Category  ContentCategory
	StoreKind StoreKind
	Reason    string
	Fallback  bool
}

// DistributionResult is the outcome handed back to the application by Distribute/DistributeMany.
type DistributionResult struct {
	DocumentID   string
	Success      bool
	DistributedTo map[StoreKind][]string
	Duration     time.Duration
	Errors       []error
	Strategy     StrategyKind
	RoutingTrace []RoutingDecision
}
