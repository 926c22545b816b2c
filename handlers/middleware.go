package handlers

import (
	"net/http"
	"strings"

	"github.com/Lieutenant23/Construapp/auth"
)

// RequireAuth verifies the Bearer token and threads the user id through
// the request context for the wrapped handler.
func RequireAuth(secret string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "Não autenticado")
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		userID, err := auth.ParseToken(secret, token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Token inválido")
			return
		}
		next(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
	}
}

// callerID reads the authenticated user id placed by RequireAuth.
func callerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Não autenticado")
		return 0, false
	}
	return userID, true
}
