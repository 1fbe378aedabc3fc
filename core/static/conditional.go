package static

import (
	"net/http"
	"strconv"
	"time"
)

// contentHeaders describe a response body. They are stripped from
// responses that carry none (304).
var contentHeaders = []string{
	"Content-Type",
	"Content-Length",
	"Content-Encoding",
	"Content-Range",
}

// setValidators stamps the cache validation headers. They apply to both
// the 304 and the full-response branches, so they are set before the
// branch decision.
func setValidators(h http.Header, res *Resource, ttl int) {
	h.Set("Etag", res.ETag())
	h.Set("Last-Modified", res.ModTime.UTC().Format(http.TimeFormat))
	h.Set("Cache-Control", "public, max-age="+strconv.Itoa(ttl))
}

// notModified reports whether the client's cached copy is current:
// If-None-Match equals the computed ETag, or If-Modified-Since parses
// and is no earlier than the modification time. Plain comparisons, no
// weak-validator semantics.
func notModified(r *http.Request, res *Resource) bool {
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == res.ETag() {
		return true
	}

	if ims := r.Header.Get("If-Modified-Since"); ims != "" {
		if t, err := http.ParseTime(ims); err == nil {
			// Header dates have second precision; truncate before
			// comparing so an unchanged file is not reported as newer.
			return !res.ModTime.Truncate(time.Second).After(t)
		}
	}

	return false
}
