package static

import (
	"mime"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// sniffLimit bounds how much of the file is read for content-based
// detection, matching mimetype's own read limit.
const sniffLimit = 3072

// contentType resolves the MIME type for a resource. The extension
// table is authoritative; unknown extensions fall back to sniffing the
// first bytes of the handle, which itself falls back to
// application/octet-stream.
func contentType(res *Resource) string {
	if ct := mime.TypeByExtension(filepath.Ext(res.Path)); ct != "" {
		return ct
	}

	buf := make([]byte, sniffLimit)
	n, _ := res.file.ReadAt(buf, 0)
	return mimetype.Detect(buf[:n]).String()
}
