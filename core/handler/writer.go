package handler

import "net/http"

// Writer wraps http.ResponseWriter and tracks whether the response has
// been committed to the wire. Once headers are written, the status code
// and header set are final; callers use Written to decide whether an
// error can still be reported as a body or the connection must be
// aborted instead.
type Writer struct {
	http.ResponseWriter
	status  int
	written bool
}

// NewWriter wraps w in a commit-tracking Writer.
func NewWriter(w http.ResponseWriter) *Writer {
	return &Writer{ResponseWriter: w}
}

func (w *Writer) WriteHeader(status int) {
	if !w.written {
		w.status = status
		w.written = true
		w.ResponseWriter.WriteHeader(status)
	}
}

func (w *Writer) Write(b []byte) (int, error) {
	if !w.written {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// Written reports whether headers have been sent.
func (w *Writer) Written() bool {
	return w.written
}

// Status returns the committed status code, or zero if nothing has been
// written yet.
func (w *Writer) Status() int {
	return w.status
}

// Flush implements http.Flusher if the underlying writer supports it.
func (w *Writer) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
