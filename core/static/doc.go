// Package static implements the static file serving pipeline: request
// validation, resource resolution under a fixed root, cache validation
// (ETag, Last-Modified, 304), byte-range negotiation including
// multipart/byteranges bodies, gzip content negotiation, and the
// streaming strategies that execute the chosen response shape.
//
// The pipeline runs per request: validator, resolver, cache negotiator,
// then either range negotiation or encoding selection, then streaming.
// Each stage may short-circuit to an error response or to a terminal
// 304 without invoking later stages. Failures after headers are
// committed abort the connection instead of substituting a body.
package static
