package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Lieutenant23/Construapp/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAuth(t *testing.T) {
	var gotUserID int64
	handler := RequireAuth(testJWTSecret, func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = auth.UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	token, err := auth.SignToken(testJWTSecret, 42)
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/projects", nil)
			if tt.authHeader != "" {
				r.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			handler(w, r)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
	assert.Equal(t, int64(42), gotUserID)
}

func TestRequireAuthRejectsTokenSignedWithOtherSecret(t *testing.T) {
	handler := RequireAuth(testJWTSecret, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	token, err := auth.SignToken("another-secret", 42)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/projects", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token inválido")
}
