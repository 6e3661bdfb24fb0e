package filtering

import (
	"net/url"
	"sort"
	"strings"

	"github.com/lucasa/framework/core/query"
	"github.com/lucasa/framework/core/schema"
	"github.com/lucasa/framework/lib/set"
)

// Builder turns every non-reserved query parameter into a field filter.
//
//	GET /v1/assets?service=kafka,rabbitmq&owner=data-eng
//
// becomes two filter entries, each holding the flattened value list. Field
// names go through the same allow-list and schema validation as sort fields.
type Builder struct {
	Schema schema.Oracle
	// Enabled is the global filter feature flag; parsing is unconditional.
	Enabled bool
}

func (b Builder) Build(params url.Values, cap query.Capability) (query.FilterContext, error) {
	fc := query.FilterContext{Filters: []query.FilterEntry{}}

	keys := make([]string, 0, len(params))
	for key := range params {
		if query.IsReservedParam(key) {
			continue
		}
		keys = append(keys, key)
	}
	// url.Values is a map; keep the output deterministic
	sort.Strings(keys)

	allowed := set.NewStringSet(cap.SearchFields...)
	for _, key := range keys {
		field := strings.TrimSpace(key)
		if field == "" {
			continue
		}
		if !cap.AllowsAll() && !allowed[field] {
			return query.FilterContext{}, query.FieldNotAllowedError{Field: field}
		}
		if !b.Schema.FieldExists(cap.Entity, field) {
			return query.FilterContext{}, query.UnknownFieldError{Entity: cap.Entity, Field: field}
		}
		values := query.Params(params, key)
		if len(values) == 0 {
			continue
		}
		fc.Filters = append(fc.Filters, query.FilterEntry{Field: field, Values: values})
	}

	fc.Enabled = b.Enabled && len(fc.Filters) > 0 && (cap.ListResource || cap.EnableFilter)
	return fc, nil
}
