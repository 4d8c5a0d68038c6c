package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// OpsAuthMiddleware protege os endpoints operacionais com um token
// estático de bearer. Rotas públicas (healthcheck) são liberadas.
// Autenticação interativa de usuários fica a cargo do colaborador
// externo, fora deste serviço.
func OpsAuthMiddleware(apiToken string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/healthcheck" {
				next.ServeHTTP(w, r)
				return
			}

			if apiToken == "" {
				// Sem token configurado, endpoints operacionais ficam abertos
				// (apenas para desenvolvimento local)
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			if subtle.ConstantTimeCompare([]byte(tokenString), []byte(apiToken)) != 1 {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
