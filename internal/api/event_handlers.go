package api

import (
	"log"
	"net/http"
	"strconv"
)

// GetEventsHandler is the polling fallback for clients without a websocket
// connection. It returns journal entries newer than since_id.
func (s *Server) GetEventsHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	var sinceID int64
	if raw := r.URL.Query().Get("since_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid since_id")
			return
		}
		sinceID = parsed
	}

	events, err := s.store.GetEventsSince(r.Context(), claims.UserID, sinceID)
	if err != nil {
		log.Printf("ERROR: Failed to fetch events for user %d: %v", claims.UserID, err)
		respondError(w, http.StatusInternalServerError, "Error fetching events")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"events":  events,
	})
}
