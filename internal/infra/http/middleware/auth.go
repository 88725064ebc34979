package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
)

// SessionVerifier valida o token de sessão do painel.
type SessionVerifier interface {
	Verify(token string) error
}

// RequireAdmin exige "Authorization: Bearer <token>" com uma sessão válida.
func RequireAdmin(v SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok || v.Verify(token) != nil {
				RecordAuthFailure()
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("WWW-Authenticate", `Bearer realm="admin"`)
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{
					"code":  "AUTH_FAILED",
					"error": "admin session required",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(h, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
