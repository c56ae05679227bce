// Package httpx provides JSON response helpers for the public API contract.
package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vendio/vendio/internal/shared"
)

// MessagePayload is the informational body shape used across the API.
type MessagePayload struct {
	Message string `json:"message"`
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Message sends a `{"message": ...}` payload with the given status code.
func Message(w http.ResponseWriter, status int, format string, args ...any) {
	JSON(w, status, MessagePayload{Message: fmt.Sprintf(format, args...)})
}

// DecodeJSON decodes the JSON request body into the target struct.
func DecodeJSON(r *http.Request, target any) error {
	return json.NewDecoder(r.Body).Decode(target)
}

// RespondError maps classified errors to HTTP statuses. The body always
// carries the `{"message": ...}` shape callers expect.
func RespondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch shared.KindOf(err) {
	case shared.KindValidation:
		status = http.StatusUnprocessableEntity
	case shared.KindNotFound:
		status = http.StatusNotFound
	case shared.KindConflict:
		status = http.StatusConflict
	}
	JSON(w, status, MessagePayload{Message: shared.PublicMessage(err)})
}
