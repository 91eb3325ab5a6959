package shared

import (
	"encoding/json"
	"net/http"
)

// AuthErrorBody is the envelope returned on 401/403 responses.
type AuthErrorBody struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// InsertResult acknowledges a single-document insert.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult acknowledges a targeted single-document update.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// RespondJSON writes v as the JSON response body.
func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondAuthError writes the auth failure envelope.
func RespondAuthError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, AuthErrorBody{Error: true, Message: message})
}

// DecodeJSON decodes the request body into v.
func DecodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
