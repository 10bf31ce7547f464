package api

import (
	"net/http"
	"testing"

	"social-backend/internal/models"
	"social-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRefreshToken_Rotation(t *testing.T) {
	u := signUpAndLogin(t, "Rota")

	rr := doRequest(t, http.MethodPost, "/api/v1/auth/login", LoginRequest{Email: u.Email, Password: u.Password}, "")
	require.Equal(t, http.StatusOK, rr.Code)
	first := decode[service.TokenPair](t, rr)

	rr = doRequest(t, http.MethodPost, "/api/v1/auth/refresh", RefreshTokenRequest{RefreshToken: first.RefreshToken}, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	second := decode[service.TokenPair](t, rr)
	require.NotEmpty(t, second.AccessToken)
	require.NotEqual(t, first.RefreshToken, second.RefreshToken)

	rr = doRequest(t, http.MethodPost, "/api/v1/auth/refresh", RefreshTokenRequest{RefreshToken: first.RefreshToken}, "")
	require.Equal(t, http.StatusUnauthorized, rr.Code, "a rotated token must not be reusable")
}

func TestSessionHandlers(t *testing.T) {
	u := signUpAndLogin(t, "Sessy")

	rr := doRequest(t, http.MethodPost, "/api/v1/auth/login", LoginRequest{Email: u.Email, Password: u.Password}, "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, http.MethodGet, "/api/v1/sessions", nil, u.Token)
	require.Equal(t, http.StatusOK, rr.Code)
	sessions := decode[[]models.Session](t, rr)
	require.Len(t, sessions, 2)

	rr = doRequest(t, http.MethodDelete, "/api/v1/sessions/"+sessions[1].ID.String(), nil, u.Token)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = doRequest(t, http.MethodDelete, "/api/v1/sessions/"+uuid.NewString(), nil, u.Token)
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = doRequest(t, http.MethodDelete, "/api/v1/sessions/not-a-uuid", nil, u.Token)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(t, http.MethodGet, "/api/v1/sessions", nil, u.Token)
	require.Len(t, decode[[]models.Session](t, rr), 1)

	rr = doRequest(t, http.MethodPost, "/api/v1/sessions/terminate_all", nil, u.Token)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = doRequest(t, http.MethodGet, "/api/v1/sessions", nil, u.Token)
	require.Empty(t, decode[[]models.Session](t, rr))
}
