package gateway

import (
	"net/http"
	"time"

	"github.com/lumistore/backoffice/internal/session"
)

const sessionCookieName = "token"

// SessionCookies builds the httpOnly cookie that is the only place the
// credential is stored. The browser never reads it, so there is no
// client-readable copy to fall out of sync with.
type SessionCookies struct {
	secure bool
}

func NewSessionCookies(secure bool) SessionCookies {
	return SessionCookies{secure: secure}
}

func (c SessionCookies) New(credential session.Credential, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    string(credential),
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteStrictMode,
	}
}

func (c SessionCookies) Expired() *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteStrictMode,
	}
}
