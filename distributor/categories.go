package distributor

import (
	"github.com/polyglotdb/coordinator/model"
	"github.com/polyglotdb/coordinator/value"
)

// identifyCategories derives the content categories present in a result: every result contributes
// master_registry, processor_results and event_store; the remaining categories are conditional on
// which accessor methods the payload answers affirmatively. A payload key that is present but
// empty (blank text, zero-length vector, no relations) contributes nothing.
func identifyCategories(result *model.ProcessorResult) []model.ContentCategory {
	categories := []model.ContentCategory{
		model.CategoryMasterRegistry,
		model.CategoryProcessorResults,
		model.CategoryEventStore,
	}
	payload := result.Payload
	if text, ok := payload.Text(); ok && !value.IsEmpty(text) {
		categories = append(categories, model.CategoryDocumentContent)
	}
	if vec, ok := payload.Embedding(); ok && !value.IsEmpty(vec) {
		categories = append(categories, model.CategoryVectorEmbeddings)
	}
	if rels, ok := payload.Relations(); ok && !value.IsEmpty(rels) {
		categories = append(categories, model.CategoryRelationships)
	}
	if _, _, ok := payload.Coordinates(); ok {
		categories = append(categories, model.CategoryGeospatialData)
	}
	return categories
}
