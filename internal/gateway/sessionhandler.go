package gateway

import (
	"net/http"

	"github.com/lumistore/backoffice/internal/session"
	pkghttp "github.com/lumistore/backoffice/pkg/http"
)

// SessionHandler is the identity-check endpoint: it reports who the
// current cookie belongs to without contacting the upstream.
type SessionHandler struct {
	cookies SessionCookies
}

func NewSessionHandler(cookies SessionCookies) SessionHandler {
	return SessionHandler{cookies: cookies}
}

func (h SessionHandler) Method() string {
	return http.MethodGet
}

func (h SessionHandler) Path() string {
	return "/auth/session"
}

func (h SessionHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	store := session.NewStore()
	setCookie := func(cookie *http.Cookie) { w.SetCookie(cookie) }
	resolver := session.NewClaimsResolver(newCookieSource(setCookie, r, h.cookies))

	current := resolver.Resolve(r.Context(), store)
	if !current.IsComplete() {
		w.SetStatusCode(http.StatusUnauthorized)
		return nil
	}

	w.SetJSONBody(sessionOut{
		UserID: current.UserID,
		Role:   string(current.Role),
	})
	return nil
}
