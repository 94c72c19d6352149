package controllers_test

import (
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSuccess(t *testing.T) {
	router, _, cfg, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "pkgupta93100@gmail.com",
		"password": "prashant123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]string
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp["token"])

	token, err := jwt.Parse(resp["token"], func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "pkgupta93100@gmail.com", claims["email"])
}

func TestLoginInvalidCredentials(t *testing.T) {
	router, _, _, _ := newTestServer(t)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "pkgupta93100@gmail.com", "wrong"},
		{"wrong email", "someone@example.com", "prashant123"},
		{"both wrong", "someone@example.com", "wrong"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]interface{}{
				"email":    tc.email,
				"password": tc.password,
			}, nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestLoginMissingFields(t *testing.T) {
	router, _, _, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email": "pkgupta93100@gmail.com",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
