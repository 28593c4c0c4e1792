package main

import (
	"context"
	"fmt"
	"time"

	"github.com/lumistore/backoffice/internal/account"
	"github.com/lumistore/backoffice/internal/catalog"
	"github.com/lumistore/backoffice/internal/gateway"
	"github.com/lumistore/backoffice/internal/pkg/cmd"
	commonhttp "github.com/lumistore/backoffice/internal/pkg/http"
	"github.com/lumistore/backoffice/internal/shipping"
	"github.com/lumistore/backoffice/internal/upstream"
	pkgcmd "github.com/lumistore/backoffice/pkg/cmd"
	"github.com/lumistore/backoffice/pkg/env"
	pkghttp "github.com/lumistore/backoffice/pkg/http"
)

const upstreamRequestTimeout = 10 * time.Second

func main() {
	ctx := context.Background()
	infra := cmd.NewInfrastructureContainer(ctx)
	defer infra.Close(ctx)
	logger := infra.Logger.MustLoad()

	authClient := infra.HTTPClientFactory.MustLoad().MustInitClient(
		commonhttp.DestinationUpstream,
		pkghttp.WithClientTimeout(upstreamRequestTimeout),
	)
	upstreamClient := upstream.NewClient(authClient)

	secureCookies := true
	if v := env.Must(env.ParseOptional[bool]("SESSION_COOKIE_SECURE")); v != nil {
		secureCookies = *v
	}
	cookies := gateway.NewSessionCookies(secureCookies)

	gatewayContainer := gateway.NewDependencyContainer(authClient, cookies, logger)
	accountContainer := account.NewDependencyContainer(upstreamClient)
	catalogContainer := catalog.NewDependencyContainer(upstreamClient)
	shippingContainer := shipping.NewDependencyContainer(upstreamClient)

	guarded := gatewayContainer.Guard.MustLoad().Protect()

	httpServer := infra.HTTPServer.MustLoad()
	gatewayContainer.MustRegisterHTTPHandlers(httpServer)
	accountContainer.MustRegisterHTTPHandlers(httpServer, guarded)
	catalogContainer.MustRegisterHTTPHandlers(httpServer, guarded)
	shippingContainer.MustRegisterHTTPHandlers(httpServer, guarded)

	if err := upstream.AwaitReadiness(ctx, authClient, logger); err != nil {
		panic(fmt.Errorf("await upstream readiness: %w", err))
	}

	pkgcmd.MustRun(ctx, logger,
		pkgcmd.TermSignalAwaiter,
		httpServer.Listener,
	)
}
