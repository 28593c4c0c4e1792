package gateway

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/lumistore/backoffice/internal/session"
	pkghttp "github.com/lumistore/backoffice/pkg/http"
)

const upstreamLoginPath = "/auth/login-staff"

// LoginHandler exchanges staff credentials for an upstream-issued token
// and moves it into the httpOnly session cookie. The identity pair is
// echoed back so the UI can render without another round trip.
type LoginHandler struct {
	authClient pkghttp.Client
	cookies    SessionCookies
}

func NewLoginHandler(authClient pkghttp.Client, cookies SessionCookies) LoginHandler {
	return LoginHandler{
		authClient: authClient,
		cookies:    cookies,
	}
}

func (h LoginHandler) Method() string {
	return http.MethodPost
}

func (h LoginHandler) Path() string {
	return "/auth/login"
}

func (h LoginHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[loginIn](), nil)
	if err != nil {
		w.SetStatusCode(http.StatusUnauthorized)
		return err
	}

	in.Code = strings.TrimSpace(in.Code)
	in.Password = strings.TrimSpace(in.Password)
	if in.Code == "" || in.Password == "" {
		w.SetStatusCode(http.StatusUnauthorized)
		return fmt.Errorf("login code and password must not be empty")
	}

	var result loginOut
	resp, err := h.authClient.NewRequest(r.Context()).
		SetBody(upstreamLoginIn{Code: in.Code, Pass: in.Password}).
		SetResult(&result).
		Post(upstreamLoginPath)
	if err != nil {
		return fmt.Errorf("upstream login call: %w", err)
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		w.SetStatusCode(http.StatusUnauthorized)
		return fmt.Errorf("invalid login credentials")
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("upstream login responded %d", resp.StatusCode())
	}

	claims, err := session.DecodeCredential(session.Credential(result.Token))
	if err != nil {
		return fmt.Errorf("upstream issued unreadable token: %w", err)
	}

	w.SetCookie(h.cookies.New(session.Credential(result.Token), claims.ExpiresAt))
	w.SetJSONBody(sessionOut{
		UserID: claims.UserID,
		Role:   string(claims.Role),
	})
	return nil
}

type (
	loginIn struct {
		Code     string `json:"code"`
		Password string `json:"password"`
	}

	upstreamLoginIn struct {
		Code string `json:"code"`
		Pass string `json:"pass"`
	}

	loginOut struct {
		Token string `json:"token"`
	}

	sessionOut struct {
		UserID string `json:"userId"`
		Role   string `json:"role"`
	}
)
