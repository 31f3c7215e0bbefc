package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError answers with the same {"error": "..."} body the handlers use.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
