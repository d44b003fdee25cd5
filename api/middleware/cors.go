package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows the static frontend to be served from any origin during
// development. The API is read-mostly and unauthenticated, so a
// permissive policy is acceptable here.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id", "Idempotency-Key"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}
