package http

import (
	"fmt"

	"github.com/lumistore/backoffice/pkg/env"
	pkghttp "github.com/lumistore/backoffice/pkg/http"
	pkgstrings "github.com/lumistore/backoffice/pkg/strings"
)

const RequestIDHeader = "X-Request-ID"

const (
	DestinationUpstream pkghttp.Destination = "upstream"
)

type ClientFactory struct {
	impl pkghttp.ClientFactory
}

func NewClientFactory(opts ...pkghttp.ClientOption) ClientFactory {
	return ClientFactory{
		impl: pkghttp.NewClientFactory(opts...),
	}
}

func (f ClientFactory) InitRawClient(extraOpts ...pkghttp.ClientOption) pkghttp.Client {
	return f.impl.InitRawClient(extraOpts...)
}

// MustInitClient resolves the destination base URL from the
// <DESTINATION>_SERVICE_URL environment variable.
func (f ClientFactory) MustInitClient(dest pkghttp.Destination, extraOpts ...pkghttp.ClientOption) pkghttp.Client {
	hostEnv := fmt.Sprintf("%s_SERVICE_URL", pkgstrings.ToScreamingSnakeCase(string(dest)))
	host := env.Must(env.Parse[string](hostEnv))

	return f.impl.InitClient(dest, host, extraOpts...)
}
