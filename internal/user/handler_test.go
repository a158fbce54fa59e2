// AngelaMos | 2026
// handler_test.go

package user

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/trackflow/internal/middleware"
	"github.com/carterperez-dev/trackflow/internal/session"
)

func authAs(user *session.User) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := middleware.WithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func adminRouter(repo *mockRepository, caller *session.User) *chi.Mux {
	handler := NewHandler(NewService(repo))
	router := chi.NewRouter()
	handler.RegisterAdminRoutes(router, authAs(caller), middleware.RequireAdmin)
	return router
}

func TestDeleteUserEndpoint(t *testing.T) {
	repo := newMockRepository()
	seedUser(repo)

	router := adminRouter(repo, &session.User{
		ID:   "admin-1",
		Role: "admin",
		Tier: TierPro,
	})

	req := httptest.NewRequest(http.MethodDelete, "/admin/users/user-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, []string{"user-1"}, repo.deleted)
}

// The delete is unconditional: an admin deleting their own id succeeds
// like any other.
func TestDeleteUserSelf(t *testing.T) {
	repo := newMockRepository()
	seedUser(repo)
	repo.users["user-1"].Role = RoleAdmin

	router := adminRouter(repo, &session.User{
		ID:   "user-1",
		Role: "admin",
		Tier: TierCreator,
	})

	req := httptest.NewRequest(http.MethodDelete, "/admin/users/user-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, []string{"user-1"}, repo.deleted)
	require.Empty(t, repo.users)
}

func TestDeleteUserUnknownID(t *testing.T) {
	repo := newMockRepository()

	router := adminRouter(repo, &session.User{ID: "admin-1", Role: "admin"})

	req := httptest.NewRequest(http.MethodDelete, "/admin/users/ghost", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Empty(t, repo.deleted)
}
