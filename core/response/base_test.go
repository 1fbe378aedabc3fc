package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webfoundry/staticd/core/response"
)

func render(resp func(http.ResponseWriter, *http.Request) error) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	response.Render(w, httptest.NewRequest("GET", "/", nil), resp)
	return w
}

func TestString(t *testing.T) {
	t.Parallel()

	w := render(response.String("ALIVE"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "ALIVE", w.Body.String())
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("encodes_value", func(t *testing.T) {
		t.Parallel()

		w := render(response.JSON(map[string]string{"status": "ok"}))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "ok", body["status"])
	})

	t.Run("custom_status", func(t *testing.T) {
		t.Parallel()

		w := render(response.JSONWithStatus(map[string]string{"state": "queued"}, http.StatusAccepted))
		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("bodyless_statuses_get_no_body", func(t *testing.T) {
		t.Parallel()

		for _, status := range []int{http.StatusNoContent, http.StatusNotModified} {
			w := render(response.JSONWithStatus(map[string]string{"x": "y"}, status))
			assert.Equal(t, status, w.Code)
			assert.Empty(t, w.Body.String())
		}
	})
}

func TestRenderFallback(t *testing.T) {
	t.Parallel()

	w := render(func(http.ResponseWriter, *http.Request) error {
		return errors.New("render failed")
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
