package static

import (
	"net/http"
	"regexp"

	"github.com/webfoundry/staticd/core/response"
)

// pathPattern is the request path grammar: one or more /-anchored
// segments of letters, digits or _~-, each optionally followed by
// .-prefixed extension tokens of the same class. A bare "/" is allowed.
// It admits no ".", ".." or empty segments, which makes it the first
// line of defense against traversal before any filesystem access.
var pathPattern = regexp.MustCompile(`^/$|^(?:/[A-Za-z0-9_~-]+(?:\.[A-Za-z0-9_~-]+)*)+$`)

// validateRequest rejects requests the pipeline must never act on:
// wrong protocol version, unsupported method, or a path outside the
// grammar. It has no side effects and never touches the filesystem.
func validateRequest(r *http.Request) error {
	if r.ProtoMajor != 1 || r.ProtoMinor != 1 {
		return response.ErrHTTPVersionNotSupported.
			WithMessage("unsupported protocol version: " + r.Proto)
	}

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return response.ErrMethodNotAllowed.
			WithMessage("method not allowed: " + r.Method).
			WithHeader("Allow", "GET, HEAD")
	}

	if !pathPattern.MatchString(r.URL.Path) {
		return response.ErrBadRequest.
			WithMessage("invalid path: " + r.URL.Path)
	}

	return nil
}
