package http

import (
	"net/http"

	"github.com/lumistore/backoffice/internal/catalog/app/service"
	pkghttp "github.com/lumistore/backoffice/pkg/http"
)

type DeleteProductHandler struct {
	catalogService *service.Catalog
}

func NewDeleteProductHandler(catalogService *service.Catalog) DeleteProductHandler {
	return DeleteProductHandler{catalogService: catalogService}
}

func (h DeleteProductHandler) Method() string {
	return http.MethodDelete
}

func (h DeleteProductHandler) Path() string {
	return "/products/{productID}"
}

func (h DeleteProductHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	productID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[string]("productID"), nil)
	if err != nil {
		return err
	}

	if err := h.catalogService.DeleteProduct(r.Context(), productID); err != nil {
		return err
	}

	w.SetStatusCode(http.StatusNoContent)
	return nil
}
