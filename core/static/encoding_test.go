package static

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAcceptsGzip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   bool
	}{
		{"absent", "", false},
		{"gzip_only", "gzip", true},
		{"among_others", "deflate, gzip, br", true},
		{"with_quality", "gzip;q=0.8", true},
		{"case_insensitive", "GZIP", true},
		{"identity_only", "identity", false},
		{"substring_not_token", "xgzipx", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				r.Header.Set("Accept-Encoding", tt.header)
			}
			assert.Equal(t, tt.want, acceptsGzip(r))
		})
	}
}

func TestCompressible(t *testing.T) {
	t.Parallel()

	assert.True(t, compressible("text/html; charset=utf-8"))
	assert.True(t, compressible("application/json"))
	assert.True(t, compressible("application/octet-stream"))
	assert.False(t, compressible("image/png"))
	assert.False(t, compressible("video/mp4"))
	assert.False(t, compressible("audio/mpeg"))
}
