package query

import (
	"net/url"
	"strings"
)

// Params returns every value associated with key, matching the key
// case-insensitively and splitting comma-separated lists inside single
// values. A nil return means the parameter is absent; a non-nil empty slice
// means it was present without values (e.g. "?desc"). Callers rely on that
// distinction.
func Params(values url.Values, key string) []string {
	if vs, ok := values[key]; ok {
		return flatten(vs)
	}
	for k, vs := range values {
		if strings.EqualFold(k, key) {
			return flatten(vs)
		}
	}
	return nil
}

// HasParam reports whether key appears in the query string at all,
// regardless of whether it carries values.
func HasParam(values url.Values, key string) bool {
	return Params(values, key) != nil
}

func flatten(values []string) []string {
	result := []string{}
	for _, value := range values {
		for _, token := range strings.Split(value, ",") {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			result = append(result, token)
		}
	}
	return result
}
