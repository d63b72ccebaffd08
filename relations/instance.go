package relations

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/polyglotdb/coordinator/errorkinds"
	"github.com/polyglotdb/coordinator/hashing"
	"github.com/polyglotdb/coordinator/model"
)

// InstanceCreator validates and constructs relation instances against the registry's definitions.
// It does not persist anything: callers
// (the distributor, in this module) turn the returned instance into one adapter operation per
// MustPersistIn store kind.
type InstanceCreator struct {
	registry *DefinitionRegistry
	clock    func() time.Time
}

// NewInstanceCreator constructs a creator bound to registry, using time.Now for creation
// timestamps unless overridden for tests.
func NewInstanceCreator(registry *DefinitionRegistry, clock func() time.Time) *InstanceCreator {
	if clock == nil {
		clock = time.Now
	}
	return &InstanceCreator{registry: registry, clock: clock}
}

// Create runs the instance-creation sequence: lookup, validate, enrich, construct,
// content-hash id. It issues no adapter calls itself (step 5 is the caller's responsibility).
func (c *InstanceCreator) Create(ctx context.Context, relationName, sourceID, targetID string, properties map[string]any) (*model.RelationInstance, []model.PropertyIssue, error) {
	def, ok := c.registry.Lookup(relationName)
	if !ok {
		return nil, nil, errorkinds.BadRequest("unknown relation "+relationName, errorkinds.ErrUnknownRelation)
	}

	issues := validateProperties(def, properties)
	if len(issues) > 0 {
		return nil, issues, errorkinds.BadRequest("invalid properties for "+relationName, errorkinds.ErrInvalidProperties)
	}

	createdAt := c.clock()
	enriched := make(map[string]any, len(properties)+3)
	for k, v := range properties {
		enriched[k] = v
	}
	enriched["created_at"] = createdAt
	enriched["version"] = 1
	enriched["category_priority"] = def.DefaultPriority
	enriched["performance_weight"] = def.PerformanceWeight

	id := hashing.CalculateHashOfListOfStrings(ctx, hashing.HashSha256,
		relationName, sourceID, targetID, createdAt.Format(time.RFC3339Nano))

	return &model.RelationInstance{
		ID:                id,
		RelationName:      relationName,
		SourceID:          sourceID,
		TargetID:          targetID,
		Properties:        enriched,
		CreatedAt:         createdAt,
		Version:           1,
		PerformanceWeight: def.PerformanceWeight,
		DataQualityScore:  dataQualityScore(def, properties),
	}, nil, nil
}

// validateProperties checks required keys, value types, and numeric ranges against def's property
// schema, returning every issue found rather than stopping at the first. Each
// property runs through validation.Validate with a rule chain built from its schema, the same
// validation.By/validation.Min/validation.Max building blocks validation/rules.go uses for config
// fields, applied here to the dynamic property map instead of a fixed struct.
func validateProperties(def model.RelationDefinition, properties map[string]any) []model.PropertyIssue {
	var issues []model.PropertyIssue
	schemaByKey := make(map[string]model.PropertySchema, len(def.Properties))
	for _, s := range def.Properties {
		schemaByKey[s.Key] = s
	}

	for _, schema := range def.Properties {
		value, present := properties[schema.Key]
		if !present {
			if schema.Required {
				issues = append(issues, model.PropertyIssue{Key: schema.Key, Reason: "required property missing"})
			}
			continue
		}
		if err := validation.Validate(value, propertyRules(schema)...); err != nil {
			issues = append(issues, model.PropertyIssue{Key: schema.Key, Reason: err.Error()})
		}
	}

	for key := range properties {
		if _, known := schemaByKey[key]; !known {
			issues = append(issues, model.PropertyIssue{Key: key, Reason: "property not permitted by definition"})
		}
	}
	return issues
}

func propertyRules(schema model.PropertySchema) []validation.Rule {
	rules := []validation.Rule{validation.By(typeRule(schema.Type))}
	if schema.HasRange {
		rules = append(rules, validation.By(rangeRule(schema.Min, schema.Max)))
	}
	return rules
}

func typeRule(propertyType model.PropertyType) func(any) error {
	return func(value any) error {
		switch propertyType {
		case model.PropertyTypeString:
			if _, ok := value.(string); !ok {
				return errExpected("string")
			}
		case model.PropertyTypeBool:
			if _, ok := value.(bool); !ok {
				return errExpected("bool")
			}
		case model.PropertyTypeTime:
			if _, ok := value.(time.Time); !ok {
				return errExpected("time.Time")
			}
		case model.PropertyTypeNumber:
			if _, ok := asFloat(value); !ok {
				return errExpected("a numeric value")
			}
		}
		return nil
	}
}

func rangeRule(min, max float64) func(any) error {
	return func(value any) error {
		f, ok := asFloat(value)
		if !ok {
			return errExpected("a numeric value")
		}
		return validation.Validate(f, validation.Min(min), validation.Max(max))
	}
}

func errExpected(want string) error {
	return validation.NewError("relation_property_type", "expected "+want)
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// dataQualityScore is a weighted completeness score: the fraction of permitted (not just
// required) properties that were actually supplied, scaled by the category's performance
// weight.
func dataQualityScore(def model.RelationDefinition, properties map[string]any) float64 {
	if len(def.Properties) == 0 {
		return def.PerformanceWeight
	}
	supplied := 0
	for _, schema := range def.Properties {
		if _, ok := properties[schema.Key]; ok {
			supplied++
		}
	}
	completeness := float64(supplied) / float64(len(def.Properties))
	return completeness * def.PerformanceWeight
}
