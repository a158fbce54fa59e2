// AngelaMos | 2026
// session_test.go

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/trackflow/internal/core"
	"github.com/carterperez-dev/trackflow/internal/session"
)

type stubResolver struct {
	users map[string]*session.User
}

func (s *stubResolver) Resolve(
	_ context.Context,
	token string,
) (*session.User, error) {
	user, ok := s.users[token]
	if !ok {
		return nil, core.ErrNotFound
	}
	return user, nil
}

const testCookie = "session_token"

func okHandler(seen **session.User) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			*seen = GetUser(r.Context())
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestSessionAuthMissingCookie(t *testing.T) {
	mw := SessionAuth(&stubResolver{}, testCookie)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	mw(okHandler(nil)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAuthUnknownToken(t *testing.T) {
	mw := SessionAuth(&stubResolver{}, testCookie)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "never-issued"})
	rec := httptest.NewRecorder()
	mw(okHandler(nil)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAuthValidToken(t *testing.T) {
	resolver := &stubResolver{users: map[string]*session.User{
		"good-token": {ID: "user-1", Email: "ada@example.com", Role: "user"},
	}}
	mw := SessionAuth(resolver, testCookie)

	var seen *session.User
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "good-token"})
	rec := httptest.NewRecorder()
	mw(okHandler(&seen)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	require.Equal(t, "user-1", seen.ID)
	require.Equal(t, "user-1", GetUserID(WithUser(context.Background(), seen)))
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name string
		user *session.User
		want int
	}{
		{name: "unauthenticated", user: nil, want: http.StatusUnauthorized},
		{
			name: "plain user",
			user: &session.User{ID: "u", Role: "user"},
			want: http.StatusForbidden,
		},
		{
			name: "admin",
			user: &session.User{ID: "a", Role: "admin"},
			want: http.StatusOK,
		},
		{
			name: "master dev",
			user: &session.User{ID: "m", Role: "master_dev"},
			want: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.user != nil {
				req = req.WithContext(WithUser(req.Context(), tt.user))
			}
			rec := httptest.NewRecorder()
			RequireAdmin(okHandler(nil)).ServeHTTP(rec, req)

			require.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRequireMasterDev(t *testing.T) {
	tests := []struct {
		name string
		user *session.User
		want int
	}{
		{name: "unauthenticated", user: nil, want: http.StatusUnauthorized},
		{
			name: "admin is not enough",
			user: &session.User{ID: "a", Role: "admin"},
			want: http.StatusForbidden,
		},
		{
			name: "master dev",
			user: &session.User{ID: "m", Role: "master_dev"},
			want: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.user != nil {
				req = req.WithContext(WithUser(req.Context(), tt.user))
			}
			rec := httptest.NewRecorder()
			RequireMasterDev(okHandler(nil)).ServeHTTP(rec, req)

			require.Equal(t, tt.want, rec.Code)
		})
	}
}
