package api

import "net/http"

type VisibilityResponse struct {
	OwnerID  int64 `json:"owner_id" example:"7"`
	ViewerID int64 `json:"viewer_id" example:"9"`
	Visible  bool  `json:"visible" example:"true"`
}

// @Summary      Reveal first name
// @Description  Lets the given user see the caller's first name. Granting twice has no further effect.
// @Tags         first-name
// @Security     BearerAuth
// @Param        userId  path  int  true  "Viewer user ID"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Viewer not found"
// @Router       /first-name/viewers/{userId} [post]
func (s *Server) GrantFirstNameHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())
	viewerID, ok := userIDParam(w, r, "userId")
	if !ok {
		return
	}

	if err := s.visibility.Grant(r.Context(), claims.UserID, viewerID); err != nil {
		respondWithServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Hide first name
// @Description  Withdraws a previous grant. Revoking a grant that does not exist succeeds.
// @Tags         first-name
// @Security     BearerAuth
// @Param        userId  path  int  true  "Viewer user ID"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /first-name/viewers/{userId} [delete]
func (s *Server) RevokeFirstNameHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())
	viewerID, ok := userIDParam(w, r, "userId")
	if !ok {
		return
	}

	if err := s.visibility.Revoke(r.Context(), claims.UserID, viewerID); err != nil {
		respondWithServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary      List first-name viewers
// @Description  Lists the users the caller has revealed their first name to, newest grant first.
// @Tags         first-name
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Viewer
// @Failure      401  {object}  ErrorResponse
// @Router       /first-name/viewers [get]
func (s *Server) ListViewersHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	viewers, err := s.visibility.ListViewers(r.Context(), claims.UserID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, viewers)
}

// @Summary      Check first-name visibility
// @Description  Reports whether the given user's first name is visible to the caller.
// @Tags         first-name
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      int  true  "Owner user ID"
// @Success      200     {object}  VisibilityResponse
// @Failure      400     {object}  ErrorResponse
// @Failure      401     {object}  ErrorResponse
// @Router       /first-name/visible/{userId} [get]
func (s *Server) IsFirstNameVisibleHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())
	ownerID, ok := userIDParam(w, r, "userId")
	if !ok {
		return
	}

	visible, err := s.visibility.IsVisible(r.Context(), ownerID, claims.UserID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, VisibilityResponse{OwnerID: ownerID, ViewerID: claims.UserID, Visible: visible})
}
