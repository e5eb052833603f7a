package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/storefront-orders/internal/auth"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/utils"
)

type Authenticator interface {
	Authenticate(token string) (auth.Principal, error)
}

type roleSinkKey struct{}

func withRoleSink(ctx context.Context, role *auth.Role) context.Context {
	return context.WithValue(ctx, roleSinkKey{}, role)
}

// Auth resolves the bearer token into a principal. Requests without a token
// continue as anonymous; an unknown token is rejected with 401.
func Auth(a Authenticator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				utils.WriteError(w, "invalid authorization header", http.StatusUnauthorized)
				return
			}

			p, err := a.Authenticate(token)
			if err != nil {
				utils.WriteError(w, "invalid token", http.StatusUnauthorized)
				return
			}

			if sink, ok := r.Context().Value(roleSinkKey{}).(*auth.Role); ok {
				*sink = p.Role
			}
			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), p)))
		})
	}
}

func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", true
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	return strings.TrimSpace(token), true
}
