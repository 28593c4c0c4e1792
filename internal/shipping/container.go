package shipping

import (
	"github.com/lumistore/backoffice/internal/shipping/app/service"
	shippinghttp "github.com/lumistore/backoffice/internal/shipping/infra/http"
	"github.com/lumistore/backoffice/internal/upstream"
	pkghttp "github.com/lumistore/backoffice/pkg/http"
	"github.com/lumistore/backoffice/pkg/lazy"
)

type DependencyContainer struct {
	ShippingService lazy.Loader[*service.Shipping]

	listFeesHandler  lazy.Loader[shippinghttp.ListFeesHandler]
	getFeeHandler    lazy.Loader[shippinghttp.GetFeeHandler]
	createFeeHandler lazy.Loader[shippinghttp.CreateFeeHandler]
	updateFeeHandler lazy.Loader[shippinghttp.UpdateFeeHandler]
	deleteFeeHandler lazy.Loader[shippinghttp.DeleteFeeHandler]
}

func NewDependencyContainer(upstreamClient *upstream.Client) DependencyContainer {
	shippingService := lazy.New(func() (*service.Shipping, error) {
		return service.NewShipping(upstreamClient), nil
	})

	return DependencyContainer{
		ShippingService: shippingService,
		listFeesHandler: lazy.New(func() (shippinghttp.ListFeesHandler, error) {
			return shippinghttp.NewListFeesHandler(shippingService.MustLoad()), nil
		}),
		getFeeHandler: lazy.New(func() (shippinghttp.GetFeeHandler, error) {
			return shippinghttp.NewGetFeeHandler(shippingService.MustLoad()), nil
		}),
		createFeeHandler: lazy.New(func() (shippinghttp.CreateFeeHandler, error) {
			return shippinghttp.NewCreateFeeHandler(shippingService.MustLoad()), nil
		}),
		updateFeeHandler: lazy.New(func() (shippinghttp.UpdateFeeHandler, error) {
			return shippinghttp.NewUpdateFeeHandler(shippingService.MustLoad()), nil
		}),
		deleteFeeHandler: lazy.New(func() (shippinghttp.DeleteFeeHandler, error) {
			return shippinghttp.NewDeleteFeeHandler(shippingService.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry, opts ...pkghttp.ServerOption) {
	registry.Register(c.listFeesHandler.MustLoad(), opts...)
	registry.Register(c.getFeeHandler.MustLoad(), opts...)
	registry.Register(c.createFeeHandler.MustLoad(), opts...)
	registry.Register(c.updateFeeHandler.MustLoad(), opts...)
	registry.Register(c.deleteFeeHandler.MustLoad(), opts...)
}
