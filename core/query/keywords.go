package query

import "strings"

// Reserved query string keys. Any other key is treated as a field filter.
const (
	ParamSort   = "sort"
	ParamDesc   = "desc"
	ParamRange  = "range"
	ParamFields = "fields"
)

// Headers produced or advertised by the response shaper.
const (
	HeaderContentRange  = "Content-Range"
	HeaderAcceptRange   = "Accept-Range"
	HeaderExposeHeaders = "Access-Control-Expose-Headers"
	HeaderLink          = "Link"
)

var reservedParams = []string{ParamSort, ParamDesc, ParamRange, ParamFields}

// IsReservedParam reports whether key is one of the query keywords, matched
// case-insensitively like every other key in this layer.
func IsReservedParam(key string) bool {
	for _, reserved := range reservedParams {
		if strings.EqualFold(key, reserved) {
			return true
		}
	}
	return false
}
