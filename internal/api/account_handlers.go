package api

import (
	"net/http"

	"social-backend/internal/service"
)

type CreateAccountResponse struct {
	ID int64 `json:"id" example:"7"`
}

type UsernameSuggestionsResponse struct {
	Usernames []string `json:"usernames" example:"jane,jane42,jane_311"`
}

// @Summary      Create an account
// @Description  Creates a user with an optional username, first name and about text.
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        profile  body      service.NewProfile  true  "New profile"
// @Success      201      {object}  CreateAccountResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      409      {object}  ErrorResponse "Email or username already taken"
// @Failure      500      {object}  ErrorResponse
// @Router       /account [post]
func (s *Server) CreateAccountHandler(w http.ResponseWriter, r *http.Request) {
	var req service.NewProfile
	if !decodeJSON(w, r, &req) {
		return
	}

	id, err := s.profiles.Create(r.Context(), req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, CreateAccountResponse{ID: id})
}

// @Summary      Get own account
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.User
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /account [get]
func (s *Server) GetAccountHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	user, err := s.profiles.Get(r.Context(), claims.UserID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, user)
}

// @Summary      Edit own account
// @Description  Updates the given fields. Omitted fields are left unchanged. A new email is confirmed through a link mailed to that address.
// @Tags         account
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        changes  body      service.ProfileChanges  true  "Fields to change"
// @Success      200      {object}  models.User
// @Failure      400      {object}  ErrorResponse
// @Failure      401      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Failure      409      {object}  ErrorResponse
// @Router       /account [put]
func (s *Server) EditAccountHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	var req service.ProfileChanges
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := s.profiles.Edit(r.Context(), claims.UserID, req); err != nil {
		respondWithServiceError(w, err)
		return
	}

	user, err := s.profiles.Get(r.Context(), claims.UserID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, user)
}

// @Summary      Delete own account
// @Description  Removes the account together with every first-name grant it is part of.
// @Tags         account
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  ErrorResponse
// @Router       /account [delete]
func (s *Server) DeleteAccountHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	if err := s.profiles.Delete(r.Context(), claims.UserID); err != nil {
		respondWithServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Deactivate own account
// @Tags         account
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /account/deactivate [put]
func (s *Server) DeactivateAccountHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	if err := s.profiles.Deactivate(r.Context(), claims.UserID); err != nil {
		respondWithServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Suggest usernames
// @Description  Returns username candidates derived from the first name, or the email local part when no first name is set.
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  UsernameSuggestionsResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /account/usernames [get]
func (s *Server) SuggestUsernamesHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	names, err := s.profiles.SuggestUsernames(r.Context(), claims.UserID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, UsernameSuggestionsResponse{Usernames: names})
}
