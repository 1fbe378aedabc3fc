package static

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// rangeApplies evaluates the If-Range freshness guard. Absent the
// header, ranges apply. A date value must be no earlier than the
// modification time; any other value must equal the current ETag.
// Otherwise the resource changed since the client cached it and the
// range is ignored in favor of a full response.
func rangeApplies(r *http.Request, res *Resource) bool {
	v := r.Header.Get("If-Range")
	if v == "" {
		return true
	}

	if t, err := http.ParseTime(v); err == nil {
		return !t.Before(res.ModTime.Truncate(time.Second))
	}

	return v == res.ETag()
}

// multipartBoundary produces a boundary token unique per response.
// Random, never derived from request input.
func multipartBoundary() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
