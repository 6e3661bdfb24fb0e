package api

import (
	"net/http"

	"github.com/goto/salt/log"

	"github.com/lucasa/framework/core/query"
	"github.com/lucasa/framework/core/query/filtering"
	"github.com/lucasa/framework/core/query/pagination"
	"github.com/lucasa/framework/core/query/projection"
	"github.com/lucasa/framework/core/query/sorting"
)

// ListHandler fetches the data of a list request, driven by the query
// context the builders populated.
type ListHandler func(r *http.Request, qc *query.Context) (*query.Result, error)

// Handler adapts ListHandler functions to HTTP. It owns the request-time
// side of the query layer: building and validating the per-request context
// before the handler runs, and shaping status, headers and body afterwards.
type Handler struct {
	Logger       log.Logger
	Resolver     *Resolver
	Sort         sorting.Builder
	Filter       filtering.Builder
	Pagination   pagination.Builder
	Projection   projection.Builder
	Transformers map[string]query.Transform
}

// List wraps fn with the query-processing layer. Context builders run in a
// fixed order (filter, sort, paginate, project); the first failure rejects
// the request before fn executes. Successful results are shaped into a bare
// content list with range headers, 206 when partial.
func (h *Handler) List(fn ListHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cap, ok := h.Resolver.Resolve(r)
		if !ok {
			h.Logger.Error("list route has no registered capability", "path", r.URL.Path)
			status := http.StatusInternalServerError
			writeJSONError(w, status, http.StatusText(status))
			return
		}

		qc, err := h.buildContext(r, cap)
		if err != nil {
			h.reject(w, cap, err)
			return
		}

		result, err := fn(r, qc)
		if err != nil {
			status := query.StatusFor(err)
			if status == http.StatusBadRequest {
				h.reject(w, cap, err)
				return
			}
			h.Logger.Error("list handler failed", "entity", cap.Entity, "error", err)
			writeJSONError(w, status, http.StatusText(status))
			return
		}

		h.shape(w, r, cap, qc, result)
	}
}

func (h *Handler) buildContext(r *http.Request, cap query.Capability) (*query.Context, error) {
	qc := query.NewContext()
	qc.IsListEndpoint = cap.ListResource
	qc.EntityType = cap.Entity

	if cap.Transformer != "" {
		transform, ok := h.Transformers[cap.Transformer]
		if !ok {
			return nil, query.UnsupportedTransformerError{Name: cap.Transformer}
		}
		qc.Transform = transform
	}

	params := r.URL.Query()
	var err error
	if qc.Filter, err = h.Filter.Build(params, cap); err != nil {
		return nil, err
	}
	if qc.Sort, err = h.Sort.Build(params, cap); err != nil {
		return nil, err
	}
	if qc.Pagination, err = h.Pagination.Build(params, cap); err != nil {
		return nil, err
	}
	if qc.Fields, err = h.Projection.Build(params, cap); err != nil {
		return nil, err
	}
	return qc, nil
}

// shape emits the outgoing list response: the expose header plus whatever
// pagination contributes (pagination wins on conflicts), the unwrapped
// content as body, and 206 when the result is a sub-range.
func (h *Handler) shape(w http.ResponseWriter, r *http.Request, cap query.Capability, qc *query.Context, result *query.Result) {
	result = qc.Transform(result)

	content := result.Content
	if len(qc.Fields.Fields) > 0 {
		content = projection.Project(qc.Fields.Fields, content)
	}

	exposed := query.HeaderAcceptRange + ", " + query.HeaderContentRange + ", " + query.HeaderLink
	w.Header().Set(query.HeaderExposeHeaders, exposed)
	for key, value := range h.Pagination.BuildHeaders(cap, r.URL, result) {
		w.Header().Set(key, value)
	}

	status := http.StatusOK
	if h.Pagination.IsPartialContent(result) {
		status = http.StatusPartialContent
	}
	writeJSON(w, status, content)
}

// reject reports a client error raised before or by the handler. When the
// target is a recognized listable type the valid range is still advertised
// so clients learn it even from a rejected request.
func (h *Handler) reject(w http.ResponseWriter, cap query.Capability, err error) {
	if cap.Entity != "" {
		key, value := h.Pagination.AcceptRange(cap)
		w.Header().Set(key, value)
	}
	writeJSONError(w, query.StatusFor(err), err.Error())
}
