// AngelaMos | 2026
// session.go

package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/carterperez-dev/trackflow/internal/core"
	"github.com/carterperez-dev/trackflow/internal/session"
)

type contextKey string

const userKey contextKey = "session_user"

// SessionResolver is implemented by session.Service.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*session.User, error)
}

// SessionAuth resolves the session cookie to a user on every request.
// There is no in-process cache; the sessions table is authoritative.
func SessionAuth(
	resolver SessionResolver,
	cookieName string,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractSessionToken(r, cookieName)
			if token == "" {
				core.JSONError(w, core.UnauthorizedError("missing session"))
				return
			}

			user, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				if errors.Is(err, core.ErrNotFound) {
					core.JSONError(
						w,
						core.UnauthorizedError("invalid or expired session"),
					)
					return
				}
				core.InternalServerError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// RequireAdmin passes users with role admin or master_dev.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := GetUser(r.Context())
		if user == nil {
			core.JSONError(w, core.UnauthorizedError("authentication required"))
			return
		}

		if !user.IsAdmin() {
			core.JSONError(w, core.ForbiddenError("admin access required"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireMasterDev passes only role master_dev.
func RequireMasterDev(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := GetUser(r.Context())
		if user == nil {
			core.JSONError(w, core.UnauthorizedError("authentication required"))
			return
		}

		if !user.IsMasterDev() {
			core.JSONError(w, core.ForbiddenError("master_dev access required"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func ExtractSessionToken(r *http.Request, cookieName string) string {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// WithUser returns a context carrying the resolved session user.
func WithUser(ctx context.Context, user *session.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func GetUser(ctx context.Context) *session.User {
	if user, ok := ctx.Value(userKey).(*session.User); ok {
		return user
	}
	return nil
}

func GetUserID(ctx context.Context) string {
	if user := GetUser(ctx); user != nil {
		return user.ID
	}
	return ""
}

func GetUserRole(ctx context.Context) string {
	if user := GetUser(ctx); user != nil {
		return user.Role
	}
	return ""
}

func GetUserTier(ctx context.Context) string {
	if user := GetUser(ctx); user != nil {
		return user.Tier
	}
	return ""
}

func IsAuthenticated(ctx context.Context) bool {
	return GetUser(ctx) != nil
}
