package http

import (
	"net/http"

	"github.com/lumistore/backoffice/internal/catalog/app/service"
	pkghttp "github.com/lumistore/backoffice/pkg/http"
)

type CreateProductHandler struct {
	catalogService *service.Catalog
}

func NewCreateProductHandler(catalogService *service.Catalog) CreateProductHandler {
	return CreateProductHandler{catalogService: catalogService}
}

func (h CreateProductHandler) Method() string {
	return http.MethodPost
}

func (h CreateProductHandler) Path() string {
	return "/products"
}

func (h CreateProductHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[service.ProductInput](), nil)
	if err != nil {
		return err
	}

	result, err := h.catalogService.CreateProduct(r.Context(), in)
	if err != nil {
		return err
	}

	w.SetStatusCode(http.StatusCreated)
	w.SetJSONBody(result)
	return nil
}
