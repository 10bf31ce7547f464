package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"social-backend/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

type testUser struct {
	ID       int64
	Email    string
	Password string
	Token    string
}

func doRequest(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	testServer.Routes().ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

// signUpAndLogin registers a fresh account with the given first name and
// returns it with a valid access token.
func signUpAndLogin(t *testing.T, firstName string) testUser {
	t.Helper()

	u := testUser{Email: gofakeit.UUID() + "@example.com", Password: "password123"}

	rr := doRequest(t, http.MethodPost, "/api/v1/account", service.NewProfile{
		Email:     u.Email,
		Password:  u.Password,
		FirstName: &firstName,
	}, "")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	u.ID = decode[CreateAccountResponse](t, rr).ID

	rr = doRequest(t, http.MethodPost, "/api/v1/auth/login", LoginRequest{Email: u.Email, Password: u.Password}, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	u.Token = decode[service.TokenPair](t, rr).AccessToken
	return u
}

func userPath(format string, id int64) string {
	return fmt.Sprintf(format, id)
}
