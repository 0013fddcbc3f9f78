package api

import (
	"log"
	"net/http"

	"menedzer-dysku/internal/auth"
	"menedzer-dysku/internal/websocket"
)

// ServeWsHandler upgrades to a websocket change feed. Browsers cannot set
// an Authorization header on the upgrade request, so the token travels as
// a query parameter here.
func (s *Server) ServeWsHandler(w http.ResponseWriter, r *http.Request) {
	tokenString := r.URL.Query().Get("token")
	if tokenString == "" {
		respondError(w, http.StatusUnauthorized, "No token provided")
		return
	}

	claims, err := auth.VerifyJWT(tokenString, s.config.JWT.Secret)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	conn, err := websocket.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}

	client := websocket.NewClient(s.wsHub, conn, claims.UserID)
	s.wsHub.Register(client)

	go client.ReadPump()
	go client.WritePump()
}
