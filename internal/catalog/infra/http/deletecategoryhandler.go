package http

import (
	"net/http"

	"github.com/lumistore/backoffice/internal/catalog/app/service"
	pkghttp "github.com/lumistore/backoffice/pkg/http"
)

type DeleteCategoryHandler struct {
	catalogService *service.Catalog
}

func NewDeleteCategoryHandler(catalogService *service.Catalog) DeleteCategoryHandler {
	return DeleteCategoryHandler{catalogService: catalogService}
}

func (h DeleteCategoryHandler) Method() string {
	return http.MethodDelete
}

func (h DeleteCategoryHandler) Path() string {
	return "/categories/{categoryID}"
}

func (h DeleteCategoryHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	categoryID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[string]("categoryID"), nil)
	if err != nil {
		return err
	}

	if err := h.catalogService.DeleteCategory(r.Context(), categoryID); err != nil {
		return err
	}

	w.SetStatusCode(http.StatusNoContent)
	return nil
}
