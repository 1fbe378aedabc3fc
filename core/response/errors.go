package response

import (
	"maps"
	"net/http"
)

// HTTPError is a typed pipeline failure that maps onto the JSON error
// body. Every stage of request processing returns one of these (or
// wraps into one); the top of the handler translates it exactly once.
type HTTPError struct {
	Status  int
	Message string
	Header  map[string]string
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status code for the error.
func (e HTTPError) StatusCode() int {
	return e.Status
}

// WithMessage returns a copy of the error with a custom message.
func (e HTTPError) WithMessage(message string) HTTPError {
	e.Message = message
	return e
}

// WithHeader returns a copy of the error carrying an extra response
// header, e.g. Allow on a 405.
func (e HTTPError) WithHeader(key, value string) HTTPError {
	h := make(map[string]string, len(e.Header)+1)
	maps.Copy(h, e.Header)
	h[key] = value
	e.Header = h
	return e
}

var (
	ErrBadRequest = HTTPError{
		Status:  http.StatusBadRequest,
		Message: http.StatusText(http.StatusBadRequest),
	}

	ErrForbidden = HTTPError{
		Status:  http.StatusForbidden,
		Message: http.StatusText(http.StatusForbidden),
	}

	ErrNotFound = HTTPError{
		Status:  http.StatusNotFound,
		Message: http.StatusText(http.StatusNotFound),
	}

	ErrMethodNotAllowed = HTTPError{
		Status:  http.StatusMethodNotAllowed,
		Message: http.StatusText(http.StatusMethodNotAllowed),
	}

	ErrRangeNotSatisfiable = HTTPError{
		Status:  http.StatusRequestedRangeNotSatisfiable,
		Message: http.StatusText(http.StatusRequestedRangeNotSatisfiable),
	}

	ErrInternalServerError = HTTPError{
		Status:  http.StatusInternalServerError,
		Message: http.StatusText(http.StatusInternalServerError),
	}

	ErrHTTPVersionNotSupported = HTTPError{
		Status:  http.StatusHTTPVersionNotSupported,
		Message: http.StatusText(http.StatusHTTPVersionNotSupported),
	}
)
