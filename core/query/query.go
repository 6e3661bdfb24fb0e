package query

// Direction is the ordering applied to a single sort field.
type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

// SortEntry is one field of the requested ordering. The first entry is the
// primary sort key; storage layers must keep this order as the tie-break
// order.
type SortEntry struct {
	Field     string
	Direction Direction
}

// SortContext holds the parsed ordering of a request. Sorts is always fully
// parsed; Enabled only gates whether storage applies it.
type SortContext struct {
	Enabled bool
	Sorts   []SortEntry
}

// FilterEntry is one field filter; multiple values mean "any of".
type FilterEntry struct {
	Field  string
	Values []string
}

type FilterContext struct {
	Enabled bool
	Filters []FilterEntry
}

// PaginationContext is the requested window into the collection.
type PaginationContext struct {
	Enabled bool
	Offset  int
	Limit   int
}

// FieldContext lists the fields the client asked to project. Empty means the
// full representation.
type FieldContext struct {
	Fields []string
}

// Result is the envelope handlers return for list requests. It is consumed
// by the response shaper and never serialized verbatim.
type Result struct {
	Content    []interface{}
	EntityType string
	TotalCount int64
	Offset     int
	Limit      int
}

// Transform post-processes a handler result before shaping.
type Transform func(*Result) *Result

// Identity is the default transform.
func Identity(r *Result) *Result { return r }

// Context carries everything the query layer parsed out of one request.
// It is created before the handler runs, read by the handler and the
// response shaper, and discarded with the request.
type Context struct {
	IsListEndpoint bool
	EntityType     string
	Transform      Transform
	Sort           SortContext
	Filter         FilterContext
	Pagination     PaginationContext
	Fields         FieldContext
}

func NewContext() *Context {
	return &Context{Transform: Identity}
}

// Capability is the per-endpoint declaration consumed by the context
// builders: whether the route is a list resource, which fields may be
// referenced by sort and filter parameters, and which features the route
// opts into. Resolved once per route.
type Capability struct {
	ListResource     bool
	Entity           string
	SearchFields     []string
	EnableSort       bool
	EnableFilter     bool
	EnablePagination bool
	Transformer      string
}

// Wildcard marks a capability as accepting every entity field.
const Wildcard = "*"

// AllowsAll reports whether the capability carries no field restriction.
func (c Capability) AllowsAll() bool {
	if len(c.SearchFields) == 0 {
		return true
	}
	return c.SearchFields[0] == Wildcard
}
