package sorting

import (
	"net/url"

	"github.com/lucasa/framework/core/query"
	"github.com/lucasa/framework/core/schema"
	"github.com/lucasa/framework/lib/set"
)

// Builder parses the "sort" and "desc" query parameters into a
// query.SortContext.
//
// Given a request
//
//	GET /v1/assets?sort=name,service&desc=service
//
// the builder produces [{name ASC} {service DESC}], in that order. The order
// of the sort parameter is the tie-break order handed to storage; the desc
// parameter never reorders it.
//
// The builder is a pure function of its inputs and caches nothing.
type Builder struct {
	Schema schema.Oracle
	// Enabled is the global sort feature flag. It gates only the Enabled
	// bit of the produced context, never the parsing itself.
	Enabled bool
}

// Build implements the sort parameter rules:
//
//   - desc without sort is a contradiction and rejects the request
//   - a bare desc (no values) puts every sort field in descending order
//   - desc values must be a subset of sort values; listed fields descend,
//     the rest ascend
//   - every sort field must pass the endpoint search-field allow-list and
//     must exist on the entity
func (b Builder) Build(params url.Values, cap query.Capability) (query.SortContext, error) {
	descValues := query.Params(params, query.ParamDesc)
	sortValues := query.Params(params, query.ParamSort)

	if descValues != nil && sortValues == nil {
		return query.SortContext{}, query.InvalidQueryError{
			Reason: "the desc parameter cannot be used without the sort parameter",
		}
	}

	sc := query.SortContext{
		Enabled: b.enabled(params, cap),
		Sorts:   []query.SortEntry{},
	}

	descAll := descValues != nil && len(descValues) == 0
	descSet := set.NewStringSet()
	for _, value := range descValues {
		if !contains(sortValues, value) {
			return query.SortContext{}, query.FieldNotAllowedError{Field: value}
		}
		descSet.Add(value)
	}

	for _, field := range sortValues {
		direction := query.ASC
		if descAll || descSet[field] {
			direction = query.DESC
		}
		sc.Sorts = append(sc.Sorts, query.SortEntry{Field: field, Direction: direction})
	}

	if !cap.AllowsAll() {
		allowed := set.NewStringSet(cap.SearchFields...)
		for _, entry := range sc.Sorts {
			if !allowed[entry.Field] {
				return query.SortContext{}, query.FieldNotAllowedError{Field: entry.Field}
			}
		}
	}

	for _, entry := range sc.Sorts {
		if !b.Schema.FieldExists(cap.Entity, entry.Field) {
			return query.SortContext{}, query.UnknownFieldError{Entity: cap.Entity, Field: entry.Field}
		}
	}

	return sc, nil
}

// enabled is computed independently of parsing: a disabled context still
// carries the fully parsed sort list.
func (b Builder) enabled(params url.Values, cap query.Capability) bool {
	return b.Enabled &&
		query.HasParam(params, query.ParamSort) &&
		(cap.ListResource || cap.EnableSort)
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
