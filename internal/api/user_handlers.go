package api

import (
	"net/http"

	_ "social-backend/internal/models"
)

// @Summary      View a user profile
// @Description  Returns another user's public profile. The first name is only included when its owner has granted it to the caller.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      int  true  "User ID"
// @Success      200     {object}  models.PublicProfile
// @Failure      400     {object}  ErrorResponse
// @Failure      401     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /users/{userId} [get]
func (s *Server) GetUserProfileHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())
	ownerID, ok := userIDParam(w, r, "userId")
	if !ok {
		return
	}

	profile, err := s.visibility.ViewProfile(r.Context(), ownerID, claims.UserID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, profile)
}
