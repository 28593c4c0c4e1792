package account

import (
	"github.com/lumistore/backoffice/internal/account/app/service"
	accounthttp "github.com/lumistore/backoffice/internal/account/infra/http"
	"github.com/lumistore/backoffice/internal/upstream"
	pkghttp "github.com/lumistore/backoffice/pkg/http"
	"github.com/lumistore/backoffice/pkg/lazy"
)

type DependencyContainer struct {
	AccountService lazy.Loader[*service.Account]

	listStaffHandler     lazy.Loader[accounthttp.ListStaffHandler]
	getStaffHandler      lazy.Loader[accounthttp.GetStaffHandler]
	createStaffHandler   lazy.Loader[accounthttp.CreateStaffHandler]
	updateStaffHandler   lazy.Loader[accounthttp.UpdateStaffHandler]
	deleteStaffHandler   lazy.Loader[accounthttp.DeleteStaffHandler]
	listCustomersHandler lazy.Loader[accounthttp.ListCustomersHandler]
}

func NewDependencyContainer(upstreamClient *upstream.Client) DependencyContainer {
	accountService := lazy.New(func() (*service.Account, error) {
		return service.NewAccount(upstreamClient), nil
	})

	return DependencyContainer{
		AccountService: accountService,
		listStaffHandler: lazy.New(func() (accounthttp.ListStaffHandler, error) {
			return accounthttp.NewListStaffHandler(accountService.MustLoad()), nil
		}),
		getStaffHandler: lazy.New(func() (accounthttp.GetStaffHandler, error) {
			return accounthttp.NewGetStaffHandler(accountService.MustLoad()), nil
		}),
		createStaffHandler: lazy.New(func() (accounthttp.CreateStaffHandler, error) {
			return accounthttp.NewCreateStaffHandler(accountService.MustLoad()), nil
		}),
		updateStaffHandler: lazy.New(func() (accounthttp.UpdateStaffHandler, error) {
			return accounthttp.NewUpdateStaffHandler(accountService.MustLoad()), nil
		}),
		deleteStaffHandler: lazy.New(func() (accounthttp.DeleteStaffHandler, error) {
			return accounthttp.NewDeleteStaffHandler(accountService.MustLoad()), nil
		}),
		listCustomersHandler: lazy.New(func() (accounthttp.ListCustomersHandler, error) {
			return accounthttp.NewListCustomersHandler(accountService.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry, opts ...pkghttp.ServerOption) {
	registry.Register(c.listStaffHandler.MustLoad(), opts...)
	registry.Register(c.getStaffHandler.MustLoad(), opts...)
	registry.Register(c.createStaffHandler.MustLoad(), opts...)
	registry.Register(c.updateStaffHandler.MustLoad(), opts...)
	registry.Register(c.deleteStaffHandler.MustLoad(), opts...)
	registry.Register(c.listCustomersHandler.MustLoad(), opts...)
}
