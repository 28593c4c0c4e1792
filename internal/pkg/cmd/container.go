package cmd

import (
	"context"
	"net/http"
	"os"

	commonhttp "github.com/lumistore/backoffice/internal/pkg/http"
	"github.com/lumistore/backoffice/internal/upstream"
	"github.com/lumistore/backoffice/pkg/cmd"
	"github.com/lumistore/backoffice/pkg/env"
	pkghttp "github.com/lumistore/backoffice/pkg/http"
	"github.com/lumistore/backoffice/pkg/lazy"
	"github.com/lumistore/backoffice/pkg/log"
	"github.com/lumistore/backoffice/pkg/metric"
)

var logLevelMap = map[string]log.Level{
	"disabled": log.LevelDisabled,
	"debug":    log.LevelDebug,
	"info":     log.LevelInfo,
	"warn":     log.LevelWarn,
	"error":    log.LevelError,
}

type InfrastructureContainer struct {
	HTTPServer        lazy.Loader[pkghttp.Server]
	HTTPClientFactory lazy.Loader[commonhttp.ClientFactory]
	Metrics           lazy.Loader[metric.Metrics]
	Logger            lazy.Loader[log.Logger]
}

func NewInfrastructureContainer(_ context.Context) *InfrastructureContainer {
	metrics := metricsProvider()
	logger := loggerProvider()

	return &InfrastructureContainer{
		HTTPServer:        httpServerProvider(metrics, logger),
		HTTPClientFactory: httpClientFactoryProvider(metrics, logger),
		Metrics:           metrics,
		Logger:            logger,
	}
}

func (i *InfrastructureContainer) Close(ctx context.Context) {
	if cmd.HandleAppPanic(ctx, i.Logger.MustLoad()) {
		defer os.Exit(1)
	}
}

func metricsProvider() lazy.Loader[metric.Metrics] {
	return lazy.New(func() (metric.Metrics, error) {
		return metric.NewStub(), nil
	})
}

func loggerProvider() lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		logLevelStr, err := env.Parse[string]("LOG_LEVEL")
		if err != nil {
			return log.New(log.LevelInfo), nil
		}

		logLevel, ok := logLevelMap[logLevelStr]
		if !ok {
			logLevel = log.LevelInfo
		}

		return log.New(logLevel), nil
	})
}

func httpServerProvider(
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[pkghttp.Server] {
	return lazy.New(func() (pkghttp.Server, error) {
		address := pkghttp.DefaultServerAddress
		if custom := env.Must(env.ParseOptional[string]("SERVICE_ADDRESS")); custom != nil {
			address = *custom
		}

		return pkghttp.NewServer(
			address,
			pkghttp.WithHealthCheck(nil),
			pkghttp.WithCORSHandler(),
			pkghttp.WithRequestID(commonhttp.RequestIDHeader),
			pkghttp.WithErrorMapping(map[int][]error{
				http.StatusUnauthorized: {upstream.ErrUnauthenticated},
				http.StatusForbidden:    {upstream.ErrForbidden},
				http.StatusNotFound:     {upstream.ErrNotFound},
				http.StatusBadGateway:   {upstream.ErrUnavailable, upstream.ErrServer},
			}),
			pkghttp.WithMetrics(metrics.MustLoad()),
			pkghttp.WithLogging(logger.MustLoad(), log.LevelInfo, log.LevelError),
		), nil
	})
}

func httpClientFactoryProvider(
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[commonhttp.ClientFactory] {
	return lazy.New(func() (commonhttp.ClientFactory, error) {
		return commonhttp.NewClientFactory(
			pkghttp.WithRequestIDForwarding(commonhttp.RequestIDHeader),
			pkghttp.WithRequestMetrics(metrics.MustLoad()),
			pkghttp.WithRequestLogging(logger.MustLoad(), log.LevelInfo, log.LevelWarn),
		), nil
	})
}
