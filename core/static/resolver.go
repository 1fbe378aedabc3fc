package static

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/webfoundry/staticd/core/response"
)

// Resolver maps validated request paths to filesystem resources under a
// fixed root directory. The root is made absolute and symlink-resolved
// once at construction; every resolution is verified to stay inside it,
// so neither crafted paths nor symlinks inside the tree can escape.
type Resolver struct {
	root  string
	index string
}

// NewResolver canonicalizes root and verifies it is a readable
// directory. index is the filename served when a directory is
// requested.
func NewResolver(root, index string) (*Resolver, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(canonical)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, errors.New("static: root is not a directory: " + canonical)
	}

	return &Resolver{root: canonical, index: index}, nil
}

// Resolve opens the resource for a validated request path. Directories
// fall through to the configured index file. Failures map to the
// client-visible conditions: 404 for missing entries, 403 for
// permission denials, 500 for other I/O errors.
func (rv *Resolver) Resolve(reqPath string) (*Resource, error) {
	joined := filepath.Join(rv.root, filepath.FromSlash(reqPath))
	if !rv.contains(joined) {
		return nil, response.ErrNotFound.WithMessage("not found: " + reqPath)
	}

	canonical, err := filepath.EvalSymlinks(joined)
	if err != nil {
		return nil, mapIOError(err, reqPath)
	}
	if !rv.contains(canonical) {
		// A symlink inside the tree points outside of it.
		return nil, response.ErrNotFound.WithMessage("not found: " + reqPath)
	}

	info, err := os.Stat(canonical)
	if err != nil {
		return nil, mapIOError(err, reqPath)
	}
	if info.IsDir() {
		canonical = filepath.Join(canonical, rv.index)
		info, err = os.Stat(canonical)
		if err != nil {
			return nil, mapIOError(err, reqPath)
		}
		if info.IsDir() {
			return nil, response.ErrNotFound.WithMessage("not found: " + reqPath)
		}
	}

	f, err := os.Open(canonical)
	if err != nil {
		return nil, mapIOError(err, reqPath)
	}

	// Stat the handle rather than trusting the earlier path stat, so
	// size and mtime describe exactly what will be streamed.
	info, err = f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, mapIOError(err, reqPath)
	}

	return &Resource{
		Path:    canonical,
		Size:    info.Size(),
		ModTime: info.ModTime(),
		file:    f,
	}, nil
}

func (rv *Resolver) contains(path string) bool {
	return path == rv.root || strings.HasPrefix(path, rv.root+string(filepath.Separator))
}

// mapIOError translates filesystem failures into the pipeline's error
// taxonomy. Permission denials are reported as their own condition, not
// folded into 404.
func mapIOError(err error, reqPath string) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return response.ErrNotFound.WithMessage("not found: " + reqPath)
	case errors.Is(err, fs.ErrPermission):
		return response.ErrForbidden.WithMessage("access denied: " + reqPath)
	default:
		return response.ErrInternalServerError.WithMessage(err.Error())
	}
}
