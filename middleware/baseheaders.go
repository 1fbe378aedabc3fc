package middleware

import (
	"maps"
	"net/http"
)

// BaseHeadersConfig controls the fixed header set stamped on every
// response before the handler runs.
type BaseHeadersConfig struct {
	// AcceptRanges advertises range support.
	AcceptRanges string

	// AllowOrigin controls Access-Control-Allow-Origin.
	AllowOrigin string

	// AllowMethods controls Access-Control-Allow-Methods.
	AllowMethods string

	// ContentTypeOptions controls X-Content-Type-Options.
	ContentTypeOptions string

	// Vary lists the request headers responses vary on.
	Vary string

	// CustomHeaders allows stamping additional fixed headers.
	CustomHeaders map[string]string
}

// DefaultBaseHeaders is the header set for a public, range-capable,
// encoding-negotiating file server.
var DefaultBaseHeaders = BaseHeadersConfig{
	AcceptRanges:       "bytes",
	AllowOrigin:        "*",
	AllowMethods:       "GET, HEAD",
	ContentTypeOptions: "nosniff",
	Vary:               "Accept-Encoding",
}

// BaseHeaders stamps the default fixed header set.
func BaseHeaders() func(http.Handler) http.Handler {
	return BaseHeadersWithConfig(DefaultBaseHeaders)
}

// BaseHeadersWithConfig stamps the configured fixed header set. Headers
// with empty values are skipped.
func BaseHeadersWithConfig(cfg BaseHeadersConfig) func(http.Handler) http.Handler {
	headers := map[string]string{
		"Accept-Ranges":                cfg.AcceptRanges,
		"Access-Control-Allow-Origin":  cfg.AllowOrigin,
		"Access-Control-Allow-Methods": cfg.AllowMethods,
		"X-Content-Type-Options":       cfg.ContentTypeOptions,
		"Vary":                         cfg.Vary,
	}
	maps.Copy(headers, cfg.CustomHeaders)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			for key, value := range headers {
				if value != "" {
					h.Set(key, value)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
