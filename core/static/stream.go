package static

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/webfoundry/staticd/core/byteranges"
)

// The streamer copies file bytes straight into the connection.
// io.Copy blocks when the client's outbound buffer fills, so file reads
// pause with it; nothing is buffered beyond the copy chunk. A write
// error means the connection is gone and the caller aborts.

// streamFull copies the entire resource to the client.
func streamFull(w io.Writer, res *Resource) error {
	_, err := io.Copy(w, io.NewSectionReader(res.file, 0, res.Size))
	return err
}

// streamGzip copies the resource through a compressing transform.
func streamGzip(w io.Writer, res *Resource) error {
	gz := gzip.NewWriter(w)
	if _, err := io.Copy(gz, io.NewSectionReader(res.file, 0, res.Size)); err != nil {
		_ = gz.Close()
		return err
	}
	return gz.Close()
}

// streamRange copies a single byte window.
func streamRange(w io.Writer, res *Resource, rg byteranges.Range) error {
	_, err := io.Copy(w, io.NewSectionReader(res.file, rg.Start, rg.Length()))
	return err
}

// streamMultipart writes a multipart/byteranges body: for each range a
// part preamble, then that byte window, strictly in order. The next
// preamble is not written until the previous window has been copied,
// then the closing boundary terminates the body.
func streamMultipart(w io.Writer, res *Resource, ranges []byteranges.Range, boundary, ctype string) error {
	for _, rg := range ranges {
		if _, err := fmt.Fprintf(w, "--%s\r\nContent-Type: %s\r\nContent-Range: %s\r\n\r\n",
			boundary, ctype, rg.ContentRange(res.Size)); err != nil {
			return err
		}
		if err := streamRange(w, res, rg); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\r\n"); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "--%s--\r\n", boundary)
	return err
}
