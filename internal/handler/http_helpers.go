package handler

import (
	"encoding/json"
	"net/http"

	apperrors "document-analyzer/pkg/errors"
)

// writeJSON writes v as a JSON response (helper function)
func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeAppError maps an application error to its HTTP status and a
// user-facing message.
func writeAppError(w http.ResponseWriter, err error) {
	writeJSON(w, apperrors.HTTPStatus(err), map[string]string{
		"error": apperrors.UserMessage(err),
		"type":  string(apperrors.TypeOf(err)),
	})
}
