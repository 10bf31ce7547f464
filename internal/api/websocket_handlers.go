package api

import (
	"net/http"

	"social-backend/internal/auth"
	"social-backend/internal/websocket"

	"github.com/rs/zerolog/log"
)

// ServeWsHandler upgrades the connection and subscribes it to the caller's
// notifications. Browsers cannot set headers on a websocket handshake, so the
// access token travels in the query string.
func (s *Server) ServeWsHandler(w http.ResponseWriter, r *http.Request) {
	tokenString := r.URL.Query().Get("token")
	if tokenString == "" {
		log.Debug().Msg("websocket connection attempt without token")
		respondWithError(w, http.StatusUnauthorized, "token required")
		return
	}

	claims, err := auth.VerifyJWT(tokenString, s.config.JWT.Secret)
	if err != nil {
		log.Debug().Err(err).Msg("websocket connection attempt with invalid token")
		respondWithError(w, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	conn, err := websocket.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := websocket.NewClient(s.wsHub, conn, claims.UserID)
	if !s.wsHub.Attach(client) {
		log.Debug().Int64("user_id", claims.UserID).Msg("websocket hub stopped, closing connection")
		conn.Close()
		return
	}

	go client.ReadPump()
	go client.WritePump()
}
