package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/webfoundry/staticd/core/handler"
)

// ErrorPayload is the sole error response body shape. StatusMessage is
// the canonical reason phrase for the status; Message describes the
// specific failure.
type ErrorPayload struct {
	Status        int    `json:"status"`
	StatusMessage string `json:"statusMessage"`
	Message       string `json:"message"`
}

// negotiatedHeaders are stripped before an error or 304 body is
// written, so a partially negotiated success response cannot leak into
// a response that carries no such body.
var negotiatedHeaders = []string{
	"Etag",
	"Last-Modified",
	"Vary",
	"Content-Type",
	"Content-Length",
	"Content-Encoding",
	"Content-Range",
}

// statusCode is implemented by errors that carry their own HTTP status.
type statusCode interface {
	StatusCode() int
}

// toHTTPError normalizes any error into an HTTPError, defaulting to 500.
func toHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	if sc, ok := err.(statusCode); ok {
		return HTTPError{Status: sc.StatusCode(), Message: err.Error()}
	}
	return ErrInternalServerError.WithMessage(err.Error())
}

// ReportError emits the JSON error body for err. It is a no-op when the
// response has already been committed: headers are on the wire and no
// error body can be substituted. This is the single guard against
// double-responding.
func ReportError(w *handler.Writer, r *http.Request, err error) {
	if w.Written() {
		return
	}

	httpErr := toHTTPError(err)

	body, merr := json.Marshal(ErrorPayload{
		Status:        httpErr.Status,
		StatusMessage: http.StatusText(httpErr.Status),
		Message:       httpErr.Message,
	})
	if merr != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h := w.Header()
	for _, key := range negotiatedHeaders {
		h.Del(key)
	}
	for key, value := range httpErr.Header {
		h.Set(key, value)
	}
	h.Set("Cache-Control", "no-cache")
	h.Set("Content-Type", "application/json")
	h.Set("Content-Length", strconv.Itoa(len(body)))

	w.WriteHeader(httpErr.Status)
	if r.Method != http.MethodHead {
		_, _ = w.Write(body)
	}
}
