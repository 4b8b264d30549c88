package middleware

import (
	"encoding/json"
	"net/http"

	"codmart-be/internal/auth"
)

// AdminOnly guards a handler behind a valid admin token.
func AdminOnly(mgr *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := auth.ExtractAccessToken(r)
			if tokenStr == "" {
				writeAuthError(w, "missing access token", http.StatusUnauthorized)
				return
			}

			claims, err := mgr.ParseToken(tokenStr)
			if err != nil {
				writeAuthError(w, "invalid access token", http.StatusUnauthorized)
				return
			}

			if claims.Role != auth.RoleAdmin {
				writeAuthError(w, "admin access required", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeAuthError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
