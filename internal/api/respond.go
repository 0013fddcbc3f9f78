package api

import (
	"encoding/json"
	"net/http"
)

// Every response carries the {success, message, ...} envelope the frontend
// has always consumed. Internal error detail never leaves the process.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}
