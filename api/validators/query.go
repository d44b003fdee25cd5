package validators

import (
	"net/http"
	"strings"
)

// FirstQueryValue returns the first non-blank value among the given
// query parameter names, trimmed.
func FirstQueryValue(r *http.Request, keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(r.URL.Query().Get(key)); value != "" {
			return value
		}
	}
	return ""
}
