package gateway

import (
	"context"
	"net/http"

	"github.com/lumistore/backoffice/internal/pkg/auth"
	"github.com/lumistore/backoffice/internal/session"
	pkghttp "github.com/lumistore/backoffice/pkg/http"
)

const (
	loginEntryPath = "/login"
	forbiddenPath  = "/403"

	refreshPath = "/auth/refresh"
)

type GuardStatus int

const (
	GuardStatusChecking GuardStatus = iota
	GuardStatusAuthorized
	GuardStatusUnauthorized
)

// Guard blocks protected subtrees until the session is resolved and the
// role matches the route table. An unauthorized request is redirected
// before any protected handler runs.
type Guard struct {
	routes     []RouteRoles
	authClient pkghttp.Client
	cookies    SessionCookies
	resolverFn func(w http.ResponseWriter, r *http.Request) session.Resolver
}

func NewGuard(routes []RouteRoles, authClient pkghttp.Client, cookies SessionCookies) *Guard {
	g := &Guard{
		routes:     routes,
		authClient: authClient,
		cookies:    cookies,
	}
	g.resolverFn = func(w http.ResponseWriter, r *http.Request) session.Resolver {
		setCookie := func(cookie *http.Cookie) { http.SetCookie(w, cookie) }
		return session.NewClaimsResolver(newCookieSource(setCookie, r, cookies))
	}

	return g
}

// Protect returns the server option wiring the guard as middleware.
func (g *Guard) Protect() pkghttp.ServerOption {
	return pkghttp.WithMW(g.middleware)
}

func (g *Guard) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status, redirectTo, ctx := g.check(w, r)
		if status != GuardStatusAuthorized {
			http.Redirect(w, r, redirectTo, http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// check resolves the session and evaluates the role table. It also
// prepares the per-request session state shared by every upstream call
// made while serving this request: one store, one coalesced refresher.
func (g *Guard) check(w http.ResponseWriter, r *http.Request) (GuardStatus, string, context.Context) {
	store := session.NewStore()
	store.Subscribe(func(current session.Session, status session.Status) {
		// propagate renewals and invalidations back to the browser
		switch status {
		case session.StatusAuthenticated:
			http.SetCookie(w, g.cookies.New(current.Credential, current.ExpiresAt))
		case session.StatusAnonymous:
			http.SetCookie(w, g.cookies.Expired())
		}
	})

	current := g.resolverFn(w, r).Resolve(r.Context(), store)

	refreshClient := g.authClient
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		refreshClient = refreshClient.With(pkghttp.WithClientCookie(cookie))
	}

	ctx := session.WithState(r.Context(), &session.State{
		Store:     store,
		Refresher: session.NewRefresher(refreshClient, refreshPath, store),
	})

	if !current.IsComplete() {
		return GuardStatusUnauthorized, loginEntryPath, ctx
	}

	allowedRoles, gated := AllowedRolesForPath(g.routes, r.URL.Path)
	if gated && len(allowedRoles) > 0 && !auth.RoleIn(current.Role, allowedRoles) {
		return GuardStatusUnauthorized, forbiddenPath, ctx
	}

	return GuardStatusAuthorized, "", ctx
}
