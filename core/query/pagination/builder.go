package pagination

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/lucasa/framework/core/query"
)

const (
	DefaultPageSize = 20
	DefaultMaxSize  = 100
)

// Builder parses the "range" parameter ("range=0-9" means offset 0, ten
// items) and produces the pagination headers for list responses.
type Builder struct {
	// Enabled is the global pagination feature flag.
	Enabled bool
	// DefaultSize is the window applied when the request carries no range.
	DefaultSize int
	// MaxSize caps the requested window and is advertised via Accept-Range.
	MaxSize int
}

func (b Builder) Build(params url.Values, cap query.Capability) (query.PaginationContext, error) {
	enabled := b.Enabled && (cap.ListResource || cap.EnablePagination)
	pc := query.PaginationContext{Enabled: enabled, Offset: 0, Limit: b.defaultSize()}

	rangeValues := query.Params(params, query.ParamRange)
	if rangeValues == nil {
		return pc, nil
	}
	if len(rangeValues) != 1 {
		return query.PaginationContext{}, query.InvalidQueryError{
			Reason: "the range parameter must be a single start-end pair",
		}
	}

	start, end, err := parseRange(rangeValues[0])
	if err != nil {
		return query.PaginationContext{}, err
	}
	size := end - start + 1
	if size > b.maxSize() {
		return query.PaginationContext{}, query.InvalidQueryError{
			Reason: fmt.Sprintf("the requested page size %d exceeds the maximum of %d", size, b.maxSize()),
		}
	}

	pc.Offset = start
	pc.Limit = size
	return pc, nil
}

// IsPartialContent reports whether the result covers only a sub-range of
// the collection, which the shaper signals with 206.
func (b Builder) IsPartialContent(result *query.Result) bool {
	if result.TotalCount <= 0 {
		return false
	}
	return result.Offset > 0 || int64(len(result.Content)) < result.TotalCount
}

// BuildHeaders produces the range headers of a list response. u is the
// request URL, used to derive the Link relations with every other query
// parameter preserved.
func (b Builder) BuildHeaders(cap query.Capability, u *url.URL, result *query.Result) map[string]string {
	headers := map[string]string{}

	first := result.Offset
	last := result.Offset + len(result.Content) - 1
	if last < first {
		last = first
	}
	headers[query.HeaderContentRange] = fmt.Sprintf("%d-%d/%d", first, last, result.TotalCount)

	key, value := b.AcceptRange(cap)
	headers[key] = value

	if links := b.buildLinks(u, result); links != "" {
		headers[query.HeaderLink] = links
	}
	return headers
}

// AcceptRange is the error-advertising hook: it is also attached to
// rejected requests whose target is a recognized listable type so clients
// learn the valid range even from a 400.
func (b Builder) AcceptRange(cap query.Capability) (string, string) {
	return query.HeaderAcceptRange, fmt.Sprintf("%s %d", strings.ToLower(cap.Entity), b.maxSize())
}

func (b Builder) buildLinks(u *url.URL, result *query.Result) string {
	limit := result.Limit
	if limit <= 0 {
		return ""
	}
	total := int(result.TotalCount)

	var links []string
	appendLink := func(offset int, rel string) {
		links = append(links, fmt.Sprintf("<%s>; rel=\"%s\"", withRange(u, offset, limit), rel))
	}

	appendLink(0, "first")
	if result.Offset > 0 {
		prev := result.Offset - limit
		if prev < 0 {
			prev = 0
		}
		appendLink(prev, "prev")
	}
	if result.Offset+limit < total {
		appendLink(result.Offset+limit, "next")
	}
	lastPage := 0
	if total > 0 {
		lastPage = ((total - 1) / limit) * limit
	}
	appendLink(lastPage, "last")

	return strings.Join(links, ", ")
}

func withRange(u *url.URL, offset, limit int) string {
	linked := *u
	params := linked.Query()
	for key := range params {
		if strings.EqualFold(key, query.ParamRange) {
			params.Del(key)
		}
	}
	params.Set(query.ParamRange, fmt.Sprintf("%d-%d", offset, offset+limit-1))
	linked.RawQuery = params.Encode()
	return linked.String()
}

func parseRange(raw string) (start, end int, err error) {
	invalid := query.InvalidQueryError{
		Reason: fmt.Sprintf("invalid range parameter %q, expected start-end", raw),
	}

	startRaw, endRaw, found := strings.Cut(raw, "-")
	if !found {
		return 0, 0, invalid
	}
	if start, err = strconv.Atoi(startRaw); err != nil || start < 0 {
		return 0, 0, invalid
	}
	if end, err = strconv.Atoi(endRaw); err != nil {
		return 0, 0, invalid
	}
	if end < start {
		return 0, 0, query.InvalidQueryError{
			Reason: fmt.Sprintf("invalid range parameter %q, start is past the end", raw),
		}
	}
	return start, end, nil
}

func (b Builder) defaultSize() int {
	if b.DefaultSize > 0 {
		return b.DefaultSize
	}
	return DefaultPageSize
}

func (b Builder) maxSize() int {
	if b.MaxSize > 0 {
		return b.MaxSize
	}
	return DefaultMaxSize
}
