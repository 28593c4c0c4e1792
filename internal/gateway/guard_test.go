package gateway_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumistore/backoffice/internal/gateway"
	"github.com/lumistore/backoffice/internal/pkg/auth"
	"github.com/lumistore/backoffice/internal/session"
	pkghttp "github.com/lumistore/backoffice/pkg/http"
)

func staffCredential(t *testing.T, userID string, role auth.Role, expiresAt time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"role":   string(role),
		"exp":    expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte("test-signing-key"))
	require.NoError(t, err)

	return signed
}

func guardedRouter(t *testing.T, handler http.HandlerFunc) *mux.Router {
	t.Helper()

	guard := gateway.NewGuard(
		gateway.DefaultRouteRoles(),
		pkghttp.NewClient(),
		gateway.NewSessionCookies(false),
	)

	router := mux.NewRouter()
	guard.Protect()(router)
	router.PathPrefix("/").HandlerFunc(handler)

	return router
}

func sessionCookie(value string) *http.Cookie {
	return &http.Cookie{Name: "token", Value: value}
}

func findCookie(t *testing.T, resp *http.Response, name string) *http.Cookie {
	t.Helper()

	for _, cookie := range resp.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestGuard_RedirectsAnonymousToLogin(t *testing.T) {
	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{
			name: "no_cookie",
		},
		{
			name:   "malformed_credential",
			cookie: sessionCookie("garbage"),
		},
		{
			name: "expired_credential",
			cookie: sessionCookie(
				staffCredential(t, "staff-42", auth.RoleAdmin, time.Now().Add(-time.Minute)),
			),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router := guardedRouter(t, func(http.ResponseWriter, *http.Request) {
				t.Error("protected handler must not run")
			})

			req := httptest.NewRequest(http.MethodGet, "/products", nil)
			if tc.cookie != nil {
				req.AddCookie(tc.cookie)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			resp := rec.Result()
			assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
			assert.Equal(t, "/login", resp.Header.Get("Location"))
		})
	}
}

func TestGuard_RedirectsWrongRoleToForbiddenPage(t *testing.T) {
	tests := []struct {
		name string
		role auth.Role
		path string
	}{
		{
			name: "manager_on_admin_subtree",
			role: auth.RoleManager,
			path: "/accounts/staff",
		},
		{
			name: "sale_on_managerial_subtree",
			role: auth.RoleSale,
			path: "/products/42",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router := guardedRouter(t, func(http.ResponseWriter, *http.Request) {
				t.Error("protected handler must not run")
			})

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			req.AddCookie(sessionCookie(
				staffCredential(t, "staff-42", tc.role, time.Now().Add(time.Hour)),
			))

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			resp := rec.Result()
			assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
			assert.Equal(t, "/403", resp.Header.Get("Location"))
		})
	}
}

func TestGuard_AdmitsAllowedRole(t *testing.T) {
	tests := []struct {
		name string
		role auth.Role
		path string
	}{
		{
			name: "admin_on_admin_subtree",
			role: auth.RoleAdmin,
			path: "/accounts/staff",
		},
		{
			name: "manager_on_managerial_subtree",
			role: auth.RoleManager,
			path: "/products/42",
		},
		{
			name: "any_role_on_ungated_subtree",
			role: auth.RoleSale,
			path: "/profile",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var handled bool
			router := guardedRouter(t, func(w http.ResponseWriter, r *http.Request) {
				handled = true

				current, status := session.FromContext(r.Context())
				assert.Equal(t, session.StatusAuthenticated, status)
				assert.Equal(t, "staff-42", current.UserID)
				assert.Equal(t, tc.role, current.Role)

				state, ok := session.StateFromContext(r.Context())
				require.True(t, ok)
				assert.NotNil(t, state.Refresher)

				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			req.AddCookie(sessionCookie(
				staffCredential(t, "staff-42", tc.role, time.Now().Add(time.Hour)),
			))

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			resp := rec.Result()
			assert.True(t, handled)
			assert.Equal(t, http.StatusOK, resp.StatusCode)

			renewed := findCookie(t, resp, "token")
			require.NotNil(t, renewed, "session cookie must be rolled over")
			assert.NotEmpty(t, renewed.Value)
			assert.True(t, renewed.HttpOnly)
		})
	}
}

func TestGuard_ExpiresCookieOnDeadCredential(t *testing.T) {
	t.Parallel()

	router := guardedRouter(t, func(http.ResponseWriter, *http.Request) {
		t.Error("protected handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.AddCookie(sessionCookie(
		staffCredential(t, "staff-42", auth.RoleManager, time.Now().Add(-time.Minute)),
	))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	expired := findCookie(t, rec.Result(), "token")
	require.NotNil(t, expired)
	assert.Empty(t, expired.Value)
	assert.Negative(t, expired.MaxAge)
}
