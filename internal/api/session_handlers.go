package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// @Summary      List active sessions
// @Description  Lists the caller's unexpired sessions, newest first.
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Session
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /sessions [get]
func (s *Server) ListSessionsHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	sessions, err := s.auth.ListSessions(r.Context(), claims.UserID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, sessions)
}

// @Summary      End one session
// @Description  Ends one of the caller's sessions. Sessions of other users are reported as not found.
// @Tags         sessions
// @Security     BearerAuth
// @Param        sessionId  path  string  true  "Session ID" format(uuid)
// @Success      204
// @Failure      400  {object}  ErrorResponse "Invalid session ID format"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /sessions/{sessionId} [delete]
func (s *Server) DeleteSessionHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	sessionID, err := uuid.Parse(chi.URLParam(r, "sessionId"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid session ID format")
		return
	}

	if err := s.auth.RevokeSession(r.Context(), claims.UserID, sessionID); err != nil {
		respondWithServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary      End every session
// @Description  Ends all of the caller's sessions. Access tokens already issued stay valid until they expire.
// @Tags         sessions
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /sessions/terminate_all [post]
func (s *Server) TerminateAllSessionsHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	if err := s.auth.RevokeAllSessions(r.Context(), claims.UserID); err != nil {
		respondWithServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
