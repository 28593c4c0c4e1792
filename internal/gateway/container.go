package gateway

import (
	pkghttp "github.com/lumistore/backoffice/pkg/http"
	"github.com/lumistore/backoffice/pkg/lazy"
	"github.com/lumistore/backoffice/pkg/log"
)

type DependencyContainer struct {
	Guard lazy.Loader[*Guard]

	loginHandler   lazy.Loader[LoginHandler]
	logoutHandler  lazy.Loader[LogoutHandler]
	sessionHandler lazy.Loader[SessionHandler]
}

func NewDependencyContainer(authClient pkghttp.Client, cookies SessionCookies, logger log.Logger) DependencyContainer {
	return DependencyContainer{
		Guard: lazy.New(func() (*Guard, error) {
			return NewGuard(DefaultRouteRoles(), authClient, cookies), nil
		}),
		loginHandler: lazy.New(func() (LoginHandler, error) {
			return NewLoginHandler(authClient, cookies), nil
		}),
		logoutHandler: lazy.New(func() (LogoutHandler, error) {
			return NewLogoutHandler(authClient, cookies, logger), nil
		}),
		sessionHandler: lazy.New(func() (SessionHandler, error) {
			return NewSessionHandler(cookies), nil
		}),
	}
}

// MustRegisterHTTPHandlers registers the auth surface, which is by
// definition reachable without a session.
func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	registry.Register(c.loginHandler.MustLoad())
	registry.Register(c.logoutHandler.MustLoad())
	registry.Register(c.sessionHandler.MustLoad())
}
