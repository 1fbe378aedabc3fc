package static

import (
	"os"
	"strconv"
	"time"
)

// Resource is an open, resolved filesystem entry. It is created once
// per request, immutable afterwards, and closed when the request
// completes.
type Resource struct {
	// Path is the absolute, canonical filesystem path.
	Path string

	// Size is the resource length in bytes.
	Size int64

	// ModTime is the last modification time.
	ModTime time.Time

	file *os.File
}

// ETag derives the entity tag from size and modification time. Two
// requests for the same unmodified file produce the same tag; any
// change to either input changes it.
func (res *Resource) ETag() string {
	return `"` + strconv.FormatInt(res.Size, 16) + "-" +
		strconv.FormatInt(res.ModTime.UnixNano(), 16) + `"`
}

// Close releases the read handle.
func (res *Resource) Close() error {
	return res.file.Close()
}
