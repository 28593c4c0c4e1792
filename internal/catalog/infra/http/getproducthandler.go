package http

import (
	"net/http"

	"github.com/lumistore/backoffice/internal/catalog/app/service"
	pkghttp "github.com/lumistore/backoffice/pkg/http"
)

type GetProductHandler struct {
	catalogService *service.Catalog
}

func NewGetProductHandler(catalogService *service.Catalog) GetProductHandler {
	return GetProductHandler{catalogService: catalogService}
}

func (h GetProductHandler) Method() string {
	return http.MethodGet
}

func (h GetProductHandler) Path() string {
	return "/products/{productID}"
}

func (h GetProductHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	productID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[string]("productID"), nil)
	if err != nil {
		return err
	}

	result, err := h.catalogService.Product(r.Context(), productID)
	if err != nil {
		return err
	}

	w.SetJSONBody(result)
	return nil
}
