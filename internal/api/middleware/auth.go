package middleware

import (
	"context"
	"net/http"
	"strings"

	"jobport/internal/domain"
)

type contextKey int

const principalKey contextKey = iota

// TokenResolver maps a bearer token to the authenticated principal.
type TokenResolver interface {
	ResolveToken(token string) (domain.Principal, error)
}

// Auth yields a per-route wrapper that requires a valid bearer token and
// places the resolved principal on the request context.
func Auth(resolver TokenResolver) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, domain.ErrUnauthenticated.Error(), http.StatusUnauthorized)
				return
			}

			principal, err := resolver.ResolveToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, principal)
			next(w, r.WithContext(ctx))
		}
	}
}

// Principal returns the authenticated principal placed by Auth.
func Principal(r *http.Request) (domain.Principal, bool) {
	principal, ok := r.Context().Value(principalKey).(domain.Principal)
	return principal, ok
}
