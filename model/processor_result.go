// Package model implements the data model shared by every subsystem of the coordination layer:
// processor results, distribution plans, SAGA transactions, adapter/availability state and the
// relation definition/instance pair.
package model

import (
	"time"

	"github.com/polyglotdb/coordinator/commonerrors"
)

// ProcessorKind tags the kind of upstream content processor that produced a ProcessorResult.
// Payloads are heterogeneous across kinds but the kind determines which payload keys the
// distributor inspects, never which keys exist.
type ProcessorKind string

const (
	ProcessorKindText         ProcessorKind = "text"
	ProcessorKindImage        ProcessorKind = "image"
	ProcessorKindGeospatial   ProcessorKind = "geospatial"
	ProcessorKindAudioVideo   ProcessorKind = "audio_video"
	ProcessorKindOfficeDoc    ProcessorKind = "office_doc"
	ProcessorKindEmail       ProcessorKind = "email"
	ProcessorKindPDF          ProcessorKind = "pdf"
	ProcessorKindArchive      ProcessorKind = "archive"
	ProcessorKindWeb          ProcessorKind = "web"
	ProcessorKindGeneric      ProcessorKind = "generic"
)

// RelationCandidate is a relation implied by a processor result, not yet validated against its
// RelationDefinition. The relations component performs that validation at instance creation time.
type RelationCandidate struct {
	RelationName string
	TargetID     string
	Properties   map[string]any
}

// ProcessorPayload is the tagged variant carried by a ProcessorResult. Each ProcessorKind
// implements it with its own typed struct; the distributor keys category identification off
// Kind() and the typed accessor methods below rather than probing an untyped map.
type ProcessorPayload interface {
	Kind() ProcessorKind
	// Text returns extracted text content, if any applies to this payload kind.
	Text() (string, bool)
	// Embedding returns a dense vector, if any applies to this payload kind.
	Embedding() ([]float32, bool)
	// Coordinates returns spatial coordinates, if any applies to this payload kind.
	Coordinates() (lat, lon float64, ok bool)
	// Relations returns relations declared by the processor, if any.
	Relations() ([]RelationCandidate, bool)
	// StructuredExtract returns a structured metadata map suitable for document storage.
	StructuredExtract() map[string]any
}

// TextPayload is produced by text, office-doc, email, PDF, web and generic processors.
type TextPayload struct {
	kind              ProcessorKind
	Content           string
	Extract           map[string]any
	DeclaredRelations []RelationCandidate
}

// NewTextPayload constructs a TextPayload for the given kind, defaulting to ProcessorKindText.
func NewTextPayload(kind ProcessorKind, content string, extract map[string]any, relations []RelationCandidate) *TextPayload {
	if kind == "" {
		kind = ProcessorKindText
	}
	return &TextPayload{kind: kind, Content: content, Extract: extract, DeclaredRelations: relations}
}

func (p *TextPayload) Kind() ProcessorKind { return p.kind }
func (p *TextPayload) Text() (string, bool) { return p.Content, p.Content != "" }
func (p *TextPayload) Embedding() ([]float32, bool) { return nil, false }
func (p *TextPayload) Coordinates() (float64, float64, bool) { return 0, 0, false }
func (p *TextPayload) Relations() ([]RelationCandidate, bool) {
	return p.DeclaredRelations, len(p.DeclaredRelations) > 0
}
func (p *TextPayload) StructuredExtract() map[string]any { return p.Extract }

// EmbeddingPayload carries a dense vector, optionally alongside extracted text (e.g. image
// captioning or audio transcription feeding a vector embedding).
type EmbeddingPayload struct {
	kind      ProcessorKind
	Content   string
	Vector    []float32
	Model     string
	Extract   map[string]any
	Relations_ []RelationCandidate
}

// NewEmbeddingPayload constructs an EmbeddingPayload for the given kind.
func NewEmbeddingPayload(kind ProcessorKind, content string, vector []float32, model string, extract map[string]any, relations []RelationCandidate) *EmbeddingPayload {
	return &EmbeddingPayload{kind: kind, Content: content, Vector: vector, Model: model, Extract: extract, Relations_: relations}
}

func (p *EmbeddingPayload) Kind() ProcessorKind { return p.kind }
func (p *EmbeddingPayload) Text() (string, bool) { return p.Content, p.Content != "" }
func (p *EmbeddingPayload) Embedding() ([]float32, bool) { return p.Vector, len(p.Vector) > 0 }
func (p *EmbeddingPayload) Coordinates() (float64, float64, bool) { return 0, 0, false }
func (p *EmbeddingPayload) Relations() ([]RelationCandidate, bool) {
	return p.Relations_, len(p.Relations_) > 0
}
func (p *EmbeddingPayload) StructuredExtract() map[string]any { return p.Extract }

// GeospatialPayload carries spatial coordinates produced by a geospatial processor.
type GeospatialPayload struct {
	Latitude, Longitude float64
	CoordinateSystem    string
	Extract             map[string]any
}

// NewGeospatialPayload constructs a GeospatialPayload.
func NewGeospatialPayload(lat, lon float64, coordinateSystem string, extract map[string]any) *GeospatialPayload {
	return &GeospatialPayload{Latitude: lat, Longitude: lon, CoordinateSystem: coordinateSystem, Extract: extract}
}

func (p *GeospatialPayload) Kind() ProcessorKind { return ProcessorKindGeospatial }
func (p *GeospatialPayload) Text() (string, bool) { return "", false }
func (p *GeospatialPayload) Embedding() ([]float32, bool) { return nil, false }
func (p *GeospatialPayload) Coordinates() (float64, float64, bool) {
	return p.Latitude, p.Longitude, true
}
func (p *GeospatialPayload) Relations() ([]RelationCandidate, bool) { return nil, false }
func (p *GeospatialPayload) StructuredExtract() map[string]any { return p.Extract }

// ArchivePayload represents a processor result that merely enumerates members of an archive; it
// carries no directly indexable content of its own, only structured metadata.
type ArchivePayload struct {
	Extract map[string]any
}

func (p *ArchivePayload) Kind() ProcessorKind { return ProcessorKindArchive }
func (p *ArchivePayload) Text() (string, bool) { return "", false }
func (p *ArchivePayload) Embedding() ([]float32, bool) { return nil, false }
func (p *ArchivePayload) Coordinates() (float64, float64, bool) { return 0, 0, false }
func (p *ArchivePayload) Relations() ([]RelationCandidate, bool) { return nil, false }
func (p *ArchivePayload) StructuredExtract() map[string]any { return p.Extract }

// ProcessorResult is a unit of content produced by an upstream processor and submitted to the
// distributor. It is immutable once submitted.
type ProcessorResult struct {
	ProcessorID   string
	Kind          ProcessorKind
	DocumentID    string
	Payload       ProcessorPayload
	Confidence    float64
	Duration      time.Duration
	ProcessingErr error
	CreatedAt     time.Time
}

// Validate checks the submission invariants: a stable document id, a payload, and a
// confidence score within [0,1].
func (r *ProcessorResult) Validate() error {
	if r == nil {
		return commonerrors.UndefinedVariable("processor result")
	}
	if r.DocumentID == "" {
		return commonerrors.UndefinedVariable("document id")
	}
	if r.Payload == nil {
		return commonerrors.UndefinedVariable("payload")
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		return commonerrors.Newf(commonerrors.ErrInvalid, "confidence %v outside [0,1]", r.Confidence)
	}
	return nil
}
