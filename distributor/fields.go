package distributor

import (
	"strconv"
	"time"

	"github.com/go-viper/mapstructure/v2"

	"github.com/polyglotdb/coordinator/model"
)

// recordID derives the record id a category's target writes under. Master registry and
// processor_results share the document id itself (one row per document); the remaining
// categories are addressed by document id plus category plus target index, since a document may
// contribute several targets to the same category.
func recordID(documentID string, category model.ContentCategory, index int) string {
	if category == model.CategoryMasterRegistry || category == model.CategoryProcessorResults {
		return documentID
	}
	return documentID + "/" + string(category) + "/" + strconv.Itoa(index)
}

// structToFields flattens a category record struct into the heterogeneous field map an Adapter
// writes, via mapstructure (decoding into map[string]any preserves typed
// values such as []float32 vectors, unlike serialization/maps.ToMap's flatten-to-string form which
// is built for flat config surfaces, not payload records).
func structToFields(v any) map[string]any {
	out := map[string]any{}
	_ = mapstructure.Decode(v, &out)
	return out
}

func masterRegistryFields(result *model.ProcessorResult) map[string]any {
	return structToFields(model.MasterRegistryRecord{
		DocumentID:    result.DocumentID,
		ProcessorKind: result.Kind,
		CreatedAt:     result.CreatedAt,
	})
}

func processorResultFields(result *model.ProcessorResult) map[string]any {
	errMsg := ""
	if result.ProcessingErr != nil {
		errMsg = result.ProcessingErr.Error()
	}
	return structToFields(model.ProcessorResultRecord{
		DocumentID:    result.DocumentID,
		ProcessorKind: result.Kind,
		Payload:       result.Payload.StructuredExtract(),
		Confidence:    result.Confidence,
		Duration:      result.Duration,
		Error:         errMsg,
	})
}

func documentContentFields(result *model.ProcessorResult) map[string]any {
	text, _ := result.Payload.Text()
	return structToFields(model.DocumentContentRecord{
		DocumentID:        result.DocumentID,
		Text:              text,
		StructuredExtract: result.Payload.StructuredExtract(),
	})
}

func vectorEmbeddingFields(result *model.ProcessorResult, vectorID string) map[string]any {
	vector, _ := result.Payload.Embedding()
	return structToFields(model.VectorEmbeddingRecord{
		VectorID:   vectorID,
		DocumentID: result.DocumentID,
		Vector:     vector,
		Dimension:  len(vector),
		Collection: "document_content",
	})
}

func relationshipFields(result *model.ProcessorResult, candidate model.RelationCandidate) map[string]any {
	return structToFields(model.RelationshipRecord{
		SourceID:     result.DocumentID,
		TargetID:     candidate.TargetID,
		RelationType: candidate.RelationName,
		Properties:   candidate.Properties,
	})
}

func geospatialFields(result *model.ProcessorResult) map[string]any {
	lat, lon, _ := result.Payload.Coordinates()
	return structToFields(model.GeospatialDataRecord{
		DocumentID: result.DocumentID,
		Latitude:   lat,
		Longitude:  lon,
	})
}

func eventFields(result *model.ProcessorResult, eventID string) map[string]any {
	return structToFields(model.EventRecord{
		EventID:    eventID,
		DocumentID: result.DocumentID,
		EventKind:  "distributed",
		Timestamp:  time.Now(),
	})
}
