package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/entities"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/infrastructure/observability"
)

// UserResolver resolves an API token to the user it was issued to.
type UserResolver interface {
	GetByAPIToken(ctx context.Context, token string) (*entities.User, error)
}

type contextKey string

const userContextKey contextKey = "authenticatedUser"

// ContextWithUser stores the authenticated user on the context.
func ContextWithUser(ctx context.Context, user *entities.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext returns the user stored by AuthMiddleware, if any.
func UserFromContext(ctx context.Context) (*entities.User, bool) {
	user, ok := ctx.Value(userContextKey).(*entities.User)
	return user, ok
}

// AuthMiddleware guards the /api/ route group with bearer-token
// authentication. Paths outside the group (health checks) pass through.
func AuthMiddleware(users UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, "/api/") {
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r)
			if token == "" {
				unauthorized(w, "missing bearer token")
				return
			}

			user, err := users.GetByAPIToken(r.Context(), token)
			if err != nil {
				observability.LoggerFromContext(r.Context()).Warn().
					Str("path", r.URL.Path).
					Msg("Rejected request with unknown API token")
				unauthorized(w, "invalid API token")
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
		})
	}
}

func bearerToken(r *http.Request) string {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
