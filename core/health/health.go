// Package health provides HTTP handlers for service health monitoring.
package health

import (
	"net/http"

	"github.com/webfoundry/staticd/core/response"
)

// Liveness indicates the process is running. Always 200, no dependency
// checks.
func Liveness(w http.ResponseWriter, r *http.Request) {
	response.Render(w, r, response.JSON(map[string]string{"status": "ok"}))
}
