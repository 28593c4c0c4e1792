package catalog

import (
	"github.com/lumistore/backoffice/internal/catalog/app/service"
	cataloghttp "github.com/lumistore/backoffice/internal/catalog/infra/http"
	"github.com/lumistore/backoffice/internal/upstream"
	pkghttp "github.com/lumistore/backoffice/pkg/http"
	"github.com/lumistore/backoffice/pkg/lazy"
)

type DependencyContainer struct {
	CatalogService lazy.Loader[*service.Catalog]

	listProductsHandler   lazy.Loader[cataloghttp.ListProductsHandler]
	getProductHandler     lazy.Loader[cataloghttp.GetProductHandler]
	createProductHandler  lazy.Loader[cataloghttp.CreateProductHandler]
	updateProductHandler  lazy.Loader[cataloghttp.UpdateProductHandler]
	deleteProductHandler  lazy.Loader[cataloghttp.DeleteProductHandler]
	listCategoriesHandler lazy.Loader[cataloghttp.ListCategoriesHandler]
	createCategoryHandler lazy.Loader[cataloghttp.CreateCategoryHandler]
	updateCategoryHandler lazy.Loader[cataloghttp.UpdateCategoryHandler]
	deleteCategoryHandler lazy.Loader[cataloghttp.DeleteCategoryHandler]
}

func NewDependencyContainer(upstreamClient *upstream.Client) DependencyContainer {
	catalogService := lazy.New(func() (*service.Catalog, error) {
		return service.NewCatalog(upstreamClient), nil
	})

	return DependencyContainer{
		CatalogService: catalogService,
		listProductsHandler: lazy.New(func() (cataloghttp.ListProductsHandler, error) {
			return cataloghttp.NewListProductsHandler(catalogService.MustLoad()), nil
		}),
		getProductHandler: lazy.New(func() (cataloghttp.GetProductHandler, error) {
			return cataloghttp.NewGetProductHandler(catalogService.MustLoad()), nil
		}),
		createProductHandler: lazy.New(func() (cataloghttp.CreateProductHandler, error) {
			return cataloghttp.NewCreateProductHandler(catalogService.MustLoad()), nil
		}),
		updateProductHandler: lazy.New(func() (cataloghttp.UpdateProductHandler, error) {
			return cataloghttp.NewUpdateProductHandler(catalogService.MustLoad()), nil
		}),
		deleteProductHandler: lazy.New(func() (cataloghttp.DeleteProductHandler, error) {
			return cataloghttp.NewDeleteProductHandler(catalogService.MustLoad()), nil
		}),
		listCategoriesHandler: lazy.New(func() (cataloghttp.ListCategoriesHandler, error) {
			return cataloghttp.NewListCategoriesHandler(catalogService.MustLoad()), nil
		}),
		createCategoryHandler: lazy.New(func() (cataloghttp.CreateCategoryHandler, error) {
			return cataloghttp.NewCreateCategoryHandler(catalogService.MustLoad()), nil
		}),
		updateCategoryHandler: lazy.New(func() (cataloghttp.UpdateCategoryHandler, error) {
			return cataloghttp.NewUpdateCategoryHandler(catalogService.MustLoad()), nil
		}),
		deleteCategoryHandler: lazy.New(func() (cataloghttp.DeleteCategoryHandler, error) {
			return cataloghttp.NewDeleteCategoryHandler(catalogService.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry, opts ...pkghttp.ServerOption) {
	registry.Register(c.listProductsHandler.MustLoad(), opts...)
	registry.Register(c.getProductHandler.MustLoad(), opts...)
	registry.Register(c.createProductHandler.MustLoad(), opts...)
	registry.Register(c.updateProductHandler.MustLoad(), opts...)
	registry.Register(c.deleteProductHandler.MustLoad(), opts...)
	registry.Register(c.listCategoriesHandler.MustLoad(), opts...)
	registry.Register(c.createCategoryHandler.MustLoad(), opts...)
	registry.Register(c.updateCategoryHandler.MustLoad(), opts...)
	registry.Register(c.deleteCategoryHandler.MustLoad(), opts...)
}
