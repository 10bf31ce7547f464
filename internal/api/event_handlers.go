package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type EventResponse struct {
	ID        int64           `json:"id" example:"123"`
	EventType string          `json:"event_type" example:"first_name_visible"`
	EventTime time.Time       `json:"event_time"`
	Payload   json.RawMessage `json:"payload" swaggertype:"object"`
}

// @Summary      Get new events
// @Description  Retrieves the events that have occurred since a given event ID. Clients use it to catch up on notifications missed while their websocket was closed.
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        since  query     int  false  "The ID of the last event received. Omit or use 0 to get all events."
// @Param        limit  query     int  false  "Page size, at most 100 (default 100)."
// @Success      200    {array}   EventResponse
// @Failure      400    {object}  ErrorResponse
// @Failure      401    {object}  ErrorResponse
// @Failure      500    {object}  ErrorResponse
// @Router       /events [get]
func (s *Server) GetEventsHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	sinceID, err := queryInt(r, "since")
	if err != nil || sinceID < 0 {
		respondWithError(w, http.StatusBadRequest, "since must be a non-negative integer")
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil || limit < 0 {
		respondWithError(w, http.StatusBadRequest, "limit must be a non-negative integer")
		return
	}

	events, err := s.store.GetEventsSince(r.Context(), claims.UserID, sinceID, int(limit))
	if err != nil {
		log.Error().Err(err).Int64("user_id", claims.UserID).Msg("event replay failed")
		respondWithError(w, http.StatusInternalServerError, "failed to retrieve events")
		return
	}

	respondWithJSON(w, http.StatusOK, events)
}

// queryInt parses an optional integer query parameter; absent means 0.
func queryInt(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}
