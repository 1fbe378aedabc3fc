package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webfoundry/staticd/core/handler"
)

func TestWriter(t *testing.T) {
	t.Parallel()

	t.Run("tracks_commit", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		w := handler.NewWriter(rec)

		assert.False(t, w.Written())
		assert.Zero(t, w.Status())

		w.WriteHeader(http.StatusNotModified)
		assert.True(t, w.Written())
		assert.Equal(t, http.StatusNotModified, w.Status())
		assert.Equal(t, http.StatusNotModified, rec.Code)
	})

	t.Run("second_write_header_ignored", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		w := handler.NewWriter(rec)

		w.WriteHeader(http.StatusPartialContent)
		w.WriteHeader(http.StatusInternalServerError)

		assert.Equal(t, http.StatusPartialContent, w.Status())
		assert.Equal(t, http.StatusPartialContent, rec.Code)
	})

	t.Run("write_commits_200", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		w := handler.NewWriter(rec)

		_, err := w.Write([]byte("body"))
		require.NoError(t, err)

		assert.True(t, w.Written())
		assert.Equal(t, http.StatusOK, w.Status())
		assert.Equal(t, "body", rec.Body.String())
	})
}
