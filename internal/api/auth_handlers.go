package api

import (
	"net"
	"net/http"

	"social-backend/internal/service"
)

type LoginRequest struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"password123"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" example:"V1StGXR8_Z5jdHi6B-myT78q_Z5jdHi6B-myT78q"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" example:"V1StGXR8_Z5jdHi6B-myT78q_Z5jdHi6B-myT78q"`
}

type ConfirmEmailRequest struct {
	Token string `json:"token" example:"Uakgb_J5m9g-0JDMbcJqLJ"`
}

// @Summary      Logs a user in
// @Description  Authenticates a user and returns a short-lived access token and a long-lived refresh token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        loginRequest  body      LoginRequest  true  "Login Credentials"
// @Success      200           {object}  service.TokenPair
// @Failure      400           {object}  ErrorResponse
// @Failure      401           {object}  ErrorResponse "Invalid email or password"
// @Failure      500           {object}  ErrorResponse
// @Router       /auth/login [post]
func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	tokens, err := s.auth.Login(r.Context(), service.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		UserAgent: r.UserAgent(),
		ClientIP:  clientIP(r),
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, tokens)
}

// @Summary      Rotate tokens
// @Description  Exchanges an unexpired refresh token for a new token pair. The presented refresh token is consumed.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        refreshTokenRequest  body      RefreshTokenRequest  true  "Refresh Token"
// @Success      200                  {object}  service.TokenPair
// @Failure      400                  {object}  ErrorResponse
// @Failure      401                  {object}  ErrorResponse "Invalid or expired refresh token"
// @Failure      500                  {object}  ErrorResponse
// @Router       /auth/refresh [post]
func (s *Server) RefreshTokenHandler(w http.ResponseWriter, r *http.Request) {
	var req RefreshTokenRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	tokens, err := s.auth.Refresh(r.Context(), req.RefreshToken, r.UserAgent(), clientIP(r))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, tokens)
}

// @Summary      Logs a user out
// @Description  Ends the session identified by the refresh token.
// @Tags         auth
// @Accept       json
// @Security     BearerAuth
// @Param        logoutRequest  body  LogoutRequest  true  "Session to end"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/logout [post]
func (s *Server) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	var req LogoutRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.RefreshToken == "" {
		respondWithError(w, http.StatusBadRequest, "refresh_token is required")
		return
	}

	if err := s.auth.Logout(r.Context(), claims.UserID, req.RefreshToken); err != nil {
		respondWithServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Confirm an email change
// @Description  Stores the address the token was mailed to as the account email. The token is spent once the change succeeds.
// @Tags         auth
// @Accept       json
// @Param        token  query  string               false  "Confirmation token"
// @Param        body   body   ConfirmEmailRequest  false  "Confirmation token"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Unknown or expired token"
// @Failure      409  {object}  ErrorResponse "Email taken in the meantime"
// @Router       /auth/email/confirm [put]
func (s *Server) ConfirmEmailHandler(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" && r.ContentLength != 0 {
		var req ConfirmEmailRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		token = req.Token
	}

	if err := s.auth.ConfirmEmailUpdate(r.Context(), token); err != nil {
		respondWithServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
