package static

import (
	"net/http"
	"strings"
)

// acceptsGzip reports whether the request's Accept-Encoding list
// contains the gzip token. Quality parameters are ignored.
func acceptsGzip(r *http.Request) bool {
	for _, token := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
		token, _, _ = strings.Cut(token, ";")
		if strings.EqualFold(strings.TrimSpace(token), "gzip") {
			return true
		}
	}
	return false
}

// compressible reports whether gzip is worth applying to the MIME type.
// Audio, image and video formats are assumed already compressed;
// recompressing them wastes CPU for no size win.
func compressible(contentType string) bool {
	family, _, _ := strings.Cut(contentType, "/")
	switch strings.ToLower(strings.TrimSpace(family)) {
	case "audio", "image", "video":
		return false
	}
	return true
}
