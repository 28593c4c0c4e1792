package gateway

import (
	"net/http"

	"github.com/lumistore/backoffice/internal/session"
)

type cookieSource struct {
	r         *http.Request
	setCookie func(*http.Cookie)
	cookies   SessionCookies
}

func newCookieSource(setCookie func(*http.Cookie), r *http.Request, cookies SessionCookies) session.CredentialSource {
	return cookieSource{
		r:         r,
		setCookie: setCookie,
		cookies:   cookies,
	}
}

func (s cookieSource) Credential() (session.Credential, bool) {
	cookie, err := s.r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return session.Credential(cookie.Value), true
}

// Drop expires the cookie so a dead credential is not presented again.
func (s cookieSource) Drop() {
	s.setCookie(s.cookies.Expired())
}
