package helpers

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the `{"response": ...}` body used for acknowledgements
// and for error messages alike.
// swagger:model MessageResponse
type MessageResponse struct {
	Response string `json:"response"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes v.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteResponse writes a `{"response": msg}` body with the given status.
func WriteResponse(w http.ResponseWriter, statusCode int, msg string) {
	WriteJSON(w, statusCode, MessageResponse{Response: msg})
}
