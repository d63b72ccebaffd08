package distributor

import "github.com/polyglotdb/coordinator/model"

// RoutingTable is the static category -> ordered target mapping consulted when building a
// distribution plan. Routing is driven entirely by this table; there are no per-kind special
// cases in code. Every critical category carries a non-empty fallback chain.
var RoutingTable = map[model.ContentCategory][]model.DistributionTarget{
	model.CategoryMasterRegistry: {{
		StoreKind: model.StoreKindRelational,
		Location:  "master_registry",
		Priority:  model.PriorityCritical,
		Category:  model.CategoryMasterRegistry,
		Fallbacks: []model.StoreKind{model.StoreKindDocument},
	}},
	model.CategoryProcessorResults: {{
		StoreKind: model.StoreKindRelational,
		Location:  "processor_results",
		Priority:  model.PriorityCritical,
		Category:  model.CategoryProcessorResults,
		Fallbacks: []model.StoreKind{model.StoreKindDocument},
	}},
	model.CategoryDocumentContent: {{
		StoreKind: model.StoreKindDocument,
		Location:  "document_content",
		Priority:  model.PriorityHigh,
		Category:  model.CategoryDocumentContent,
		Fallbacks: []model.StoreKind{model.StoreKindRelational},
	}},
	model.CategoryVectorEmbeddings: {{
		StoreKind: model.StoreKindVector,
		Location:  "vector_embeddings",
		Priority:  model.PriorityHigh,
		Category:  model.CategoryVectorEmbeddings,
		Fallbacks: []model.StoreKind{model.StoreKindRelational},
	}},
	model.CategoryRelationships: {{
		StoreKind: model.StoreKindGraph,
		Location:  "relationships",
		Priority:  model.PriorityMedium,
		Category:  model.CategoryRelationships,
		Fallbacks: []model.StoreKind{model.StoreKindRelational},
	}},
	model.CategoryGeospatialData: {{
		StoreKind: model.StoreKindRelational,
		Location:  "geospatial_data",
		Priority:  model.PriorityMedium,
		Category:  model.CategoryGeospatialData,
		Fallbacks: []model.StoreKind{model.StoreKindDocument},
	}},
	model.CategoryEventStore: {{
		StoreKind: model.StoreKindDocument,
		Location:  "event_store",
		Priority:  model.PriorityLow,
		Category:  model.CategoryEventStore,
		Fallbacks: []model.StoreKind{model.StoreKindRelational},
	}},
}
