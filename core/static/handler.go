package static

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/webfoundry/staticd/core/byteranges"
	"github.com/webfoundry/staticd/core/handler"
	"github.com/webfoundry/staticd/core/logger"
	"github.com/webfoundry/staticd/core/response"
)

// Config holds the file serving settings, fixed at startup.
type Config struct {
	// Root is the directory files are served from.
	Root string `env:"STATICD_ROOT" envDefault:"./public"`

	// Index is the file served when a directory is requested.
	Index string `env:"STATICD_INDEX" envDefault:"index.html"`

	// CacheTTL is the Cache-Control max-age in seconds.
	CacheTTL int `env:"STATICD_CACHE_TTL" envDefault:"86400"`
}

// Handler serves static files with conditional requests, byte ranges
// (single and multipart) and gzip negotiation. Configuration is
// read-only after construction; all per-request state is local, so a
// single Handler serves concurrent requests without locking.
type Handler struct {
	resolver *Resolver
	ttl      int
	log      *slog.Logger
	report   handler.ErrorHandler
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger used for stream abort reporting.
func WithLogger(log *slog.Logger) Option {
	return func(h *Handler) {
		h.log = log
	}
}

// WithErrorHandler replaces the JSON error reporter used for failures
// raised before the response is committed.
func WithErrorHandler(report handler.ErrorHandler) Option {
	return func(h *Handler) {
		h.report = report
	}
}

// New creates a Handler for cfg. Fails if the root directory does not
// resolve to a readable directory.
func New(cfg Config, opts ...Option) (*Handler, error) {
	resolver, err := NewResolver(cfg.Root, cfg.Index)
	if err != nil {
		return nil, err
	}

	h := &Handler{
		resolver: resolver,
		ttl:      cfg.CacheTTL,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		report:   response.ReportError,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// ServeHTTP runs the response-decision pipeline. Every stage returns a
// typed failure that is translated exactly once here: into the JSON
// error body while the response is still replaceable, or into a
// connection abort once headers are on the wire.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ww := handler.NewWriter(w)
	start := time.Now()

	if err := h.serve(ww, r); err != nil {
		if ww.Written() {
			h.log.Error("response aborted mid-stream",
				logger.Component("static"),
				logger.Error(err),
				slog.String("path", r.URL.Path),
				logger.Duration(time.Since(start)),
			)
			panic(http.ErrAbortHandler)
		}
		h.report(ww, r, err)
	}
}

func (h *Handler) serve(w *handler.Writer, r *http.Request) error {
	if err := validateRequest(r); err != nil {
		return err
	}

	res, err := h.resolver.Resolve(r.URL.Path)
	if err != nil {
		return err
	}
	defer res.Close()

	hdr := w.Header()
	setValidators(hdr, res, h.ttl)

	if notModified(r, res) {
		for _, key := range contentHeaders {
			hdr.Del(key)
		}
		w.WriteHeader(http.StatusNotModified)
		return nil
	}

	if rangeHeader := r.Header.Get("Range"); rangeHeader != "" && rangeApplies(r, res) {
		return h.serveRanges(w, r, res, rangeHeader)
	}
	return h.serveFull(w, r, res)
}

// serveRanges emits a 206: a single byte window, or a
// multipart/byteranges body for several.
func (h *Handler) serveRanges(w *handler.Writer, r *http.Request, res *Resource, rangeHeader string) error {
	ranges, err := byteranges.Parse(res.Size, rangeHeader)
	if err != nil {
		return response.ErrRangeNotSatisfiable.
			WithMessage("cannot satisfy range: " + rangeHeader)
	}

	hdr := w.Header()
	if len(ranges) == 1 {
		rg := ranges[0]
		hdr.Set("Content-Type", contentType(res))
		hdr.Set("Content-Range", rg.ContentRange(res.Size))
		hdr.Set("Content-Length", strconv.FormatInt(rg.Length(), 10))
		w.WriteHeader(http.StatusPartialContent)
		if r.Method == http.MethodHead {
			return nil
		}
		return streamRange(w, res, rg)
	}

	ctype := contentType(res)
	boundary := multipartBoundary()
	hdr.Set("Content-Type", "multipart/byteranges; boundary="+boundary)
	// Total length is not known ahead of the parts.
	hdr.Del("Content-Length")
	w.WriteHeader(http.StatusPartialContent)
	if r.Method == http.MethodHead {
		return nil
	}
	return streamMultipart(w, res, ranges, boundary, ctype)
}

// serveFull emits a 200, gzip-compressed when the client accepts it and
// the type is worth compressing.
func (h *Handler) serveFull(w *handler.Writer, r *http.Request, res *Resource) error {
	hdr := w.Header()
	ctype := contentType(res)
	hdr.Set("Content-Type", ctype)

	if acceptsGzip(r) && compressible(ctype) {
		// Compressed length is unknown in advance.
		hdr.Set("Content-Encoding", "gzip")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return nil
		}
		return streamGzip(w, res)
	}

	hdr.Set("Content-Length", strconv.FormatInt(res.Size, 10))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return nil
	}
	return streamFull(w, res)
}
