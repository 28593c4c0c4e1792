package http

import (
	"net/http"

	"github.com/lumistore/backoffice/internal/catalog/app/service"
	pkghttp "github.com/lumistore/backoffice/pkg/http"
)

const (
	defaultPage    = 1
	defaultPerPage = 20
)

type ListProductsHandler struct {
	catalogService *service.Catalog
}

func NewListProductsHandler(catalogService *service.Catalog) ListProductsHandler {
	return ListProductsHandler{catalogService: catalogService}
}

func (h ListProductsHandler) Method() string {
	return http.MethodGet
}

func (h ListProductsHandler) Path() string {
	return "/products"
}

func (h ListProductsHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	page, perPage := defaultPage, defaultPerPage
	if v := pkghttp.ParseRequestOptional[int](r, pkghttp.QueryParameter[int]("page"), nil); v != nil {
		page = *v
	}
	if v := pkghttp.ParseRequestOptional[int](r, pkghttp.QueryParameter[int]("perPage"), nil); v != nil {
		perPage = *v
	}

	result, err := h.catalogService.Products(r.Context(), page, perPage)
	if err != nil {
		return err
	}

	w.SetJSONBody(result)
	return nil
}
