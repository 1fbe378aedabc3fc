package handler

import "net/http"

// Response is a function that renders an HTTP response.
// It sets headers, status code, and writes the response body.
// Rendering errors are returned to the caller, which decides whether
// the response can still be replaced or must be aborted.
type Response func(w http.ResponseWriter, r *http.Request) error

// ErrorHandler translates an error raised during request processing
// into a client-visible response. Implementations must consult
// Writer.Written and leave a committed response alone.
type ErrorHandler func(w *Writer, r *http.Request, err error)
