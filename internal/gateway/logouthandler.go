package gateway

import (
	"net/http"

	pkghttp "github.com/lumistore/backoffice/pkg/http"
	"github.com/lumistore/backoffice/pkg/log"
)

const upstreamLogoutPath = "/auth/logout"

// LogoutHandler invalidates the upstream session and expires the cookie.
// The cookie is cleared even when the upstream call fails, staying
// logged in locally would be worse than a dangling server session.
type LogoutHandler struct {
	authClient pkghttp.Client
	cookies    SessionCookies
	logger     log.Logger
}

func NewLogoutHandler(authClient pkghttp.Client, cookies SessionCookies, logger log.Logger) LogoutHandler {
	return LogoutHandler{
		authClient: authClient,
		cookies:    cookies,
		logger:     logger,
	}
}

func (h LogoutHandler) Method() string {
	return http.MethodPost
}

func (h LogoutHandler) Path() string {
	return "/auth/logout"
}

func (h LogoutHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	client := h.authClient
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		client = client.With(pkghttp.WithClientCookie(cookie))
	}

	resp, err := client.NewRequest(r.Context()).Post(upstreamLogoutPath)
	switch {
	case err != nil:
		h.logger.WithError(err).Warn(r.Context(), "upstream logout call failed, session left to expire upstream")
	case !resp.IsSuccess():
		h.logger.
			WithField("responseCode", resp.StatusCode()).
			Warn(r.Context(), "upstream logout call failed, session left to expire upstream")
	}

	w.SetCookie(h.cookies.Expired())
	w.SetStatusCode(http.StatusNoContent)
	return nil
}
