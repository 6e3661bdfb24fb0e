package projection

import (
	"encoding/json"
	"net/url"

	"github.com/lucasa/framework/core/query"
	"github.com/lucasa/framework/core/schema"
	"github.com/lucasa/framework/lib/set"
)

// Builder parses the "fields" parameter into the projection the response
// shaper applies to each element of the outgoing list.
type Builder struct {
	Schema schema.Oracle
}

func (b Builder) Build(params url.Values, cap query.Capability) (query.FieldContext, error) {
	fields := query.Params(params, query.ParamFields)
	if len(fields) == 0 {
		return query.FieldContext{}, nil
	}

	allowed := set.NewStringSet(cap.SearchFields...)
	for _, field := range fields {
		if !cap.AllowsAll() && !allowed[field] {
			return query.FieldContext{}, query.FieldNotAllowedError{Field: field}
		}
		if !b.Schema.FieldExists(cap.Entity, field) {
			return query.FieldContext{}, query.UnknownFieldError{Entity: cap.Entity, Field: field}
		}
	}
	return query.FieldContext{Fields: fields}, nil
}

// Project reduces every element of content to the requested fields. Map
// elements are projected directly; anything else goes through its JSON
// representation, which is what the client would have received anyway.
func Project(fields []string, content []interface{}) []interface{} {
	if len(fields) == 0 {
		return content
	}
	projected := make([]interface{}, 0, len(content))
	for _, element := range content {
		asMap, ok := element.(map[string]interface{})
		if !ok {
			asMap = toMap(element)
		}
		if asMap == nil {
			projected = append(projected, element)
			continue
		}
		selected := map[string]interface{}{}
		for _, field := range fields {
			if value, exists := asMap[field]; exists {
				selected[field] = value
			}
		}
		projected = append(projected, selected)
	}
	return projected
}

func toMap(element interface{}) map[string]interface{} {
	raw, err := json.Marshal(element)
	if err != nil {
		return nil
	}
	var asMap map[string]interface{}
	if err := json.Unmarshal(raw, &asMap); err != nil {
		return nil
	}
	return asMap
}
