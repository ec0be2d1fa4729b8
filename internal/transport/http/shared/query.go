package shared

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// ListQuery carries the free-text and position filters shared by the
// listing and chart endpoints.
type ListQuery struct {
	Search   string
	Position string
}

func ParseListQuery(r *http.Request) ListQuery {
	q := r.URL.Query()
	return ListQuery{
		Search:   strings.TrimSpace(q.Get("search")),
		Position: strings.TrimSpace(q.Get("position")),
	}
}

// ParseLimit reads ?limit=. Absent means fallback; anything other than a
// positive integer is a validation issue. Values above maxLimit are clamped.
func ParseLimit(r *http.Request, v *Validator, fallback, maxLimit int) int {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		v.Add("limit", "must be a positive integer")
		return fallback
	}
	if maxLimit > 0 && limit > maxLimit {
		return maxLimit
	}
	return limit
}

// PathParam returns a decoded chi URL parameter.
func PathParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return strings.TrimSpace(raw)
	}
	return strings.TrimSpace(decoded)
}
