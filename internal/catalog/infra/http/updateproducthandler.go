package http

import (
	"net/http"

	"github.com/lumistore/backoffice/internal/catalog/app/service"
	pkghttp "github.com/lumistore/backoffice/pkg/http"
)

type UpdateProductHandler struct {
	catalogService *service.Catalog
}

func NewUpdateProductHandler(catalogService *service.Catalog) UpdateProductHandler {
	return UpdateProductHandler{catalogService: catalogService}
}

func (h UpdateProductHandler) Method() string {
	return http.MethodPut
}

func (h UpdateProductHandler) Path() string {
	return "/products/{productID}"
}

func (h UpdateProductHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	productID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[string]("productID"), nil)
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[service.ProductInput](), err)
	if err != nil {
		return err
	}

	result, err := h.catalogService.UpdateProduct(r.Context(), productID, in)
	if err != nil {
		return err
	}

	w.SetJSONBody(result)
	return nil
}
