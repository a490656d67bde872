// Package handlers implements the REST API under /api: one handler
// group per entity plus the settings singleton and the login endpoint.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"furnitrack/internal/httpx"
)

// now returns the server wall-clock time in ISO-8601, the format every
// createdAt/updatedAt stamp uses.
func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// decode parses the JSON request body into dst. On failure it writes a
// 400 and returns false.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}
