package api

import (
	"net/http"

	"social-backend/internal/service"
)

// @Summary      Sign up
// @Description  Registers an account from an email and a repeated password.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        signUp  body      service.SignUpInput  true  "Registration form"
// @Success      201     {object}  CreateAccountResponse
// @Failure      400     {object}  ErrorResponse "Malformed email or passwords do not match"
// @Failure      409     {object}  ErrorResponse "Email already registered"
// @Failure      500     {object}  ErrorResponse
// @Router       /register [post]
func (s *Server) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req service.SignUpInput
	if !decodeJSON(w, r, &req) {
		return
	}

	id, err := s.registration.SignUp(r.Context(), req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, CreateAccountResponse{ID: id})
}
