package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/Jeevaranjani21/vdart-backend/internal/models"
	pkghttp "github.com/Jeevaranjani21/vdart-backend/pkg/http"
)

type contextKey string

const userContextKey contextKey = "user"

// SessionStore resolves a presented token hash to a stored session.
type SessionStore interface {
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.Session, error)
}

// UserStore loads the user a session belongs to.
type UserStore interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// SessionMiddleware authenticates requests carrying a Bearer session
// token. Tokens are opaque; validity comes entirely from the stored
// session row (user binding plus expiry).
func SessionMiddleware(sessions SessionStore, users UserStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				pkghttp.WriteUnauthorized(w, "Authentication required.")
				return
			}

			session, err := sessions.GetByTokenHash(r.Context(), HashSessionToken(token))
			if err != nil || session.IsExpired() {
				pkghttp.WriteUnauthorized(w, "Invalid or expired session.")
				return
			}

			user, err := users.GetByID(r.Context(), session.UserID)
			if err != nil {
				pkghttp.WriteUnauthorized(w, "Invalid or expired session.")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext returns the authenticated user set by
// SessionMiddleware, or nil.
func GetUserFromContext(r *http.Request) *models.User {
	user, _ := r.Context().Value(userContextKey).(*models.User)
	return user
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
