package http

import (
	"net/http"

	"github.com/lumistore/backoffice/internal/catalog/app/service"
	pkghttp "github.com/lumistore/backoffice/pkg/http"
)

type UpdateCategoryHandler struct {
	catalogService *service.Catalog
}

func NewUpdateCategoryHandler(catalogService *service.Catalog) UpdateCategoryHandler {
	return UpdateCategoryHandler{catalogService: catalogService}
}

func (h UpdateCategoryHandler) Method() string {
	return http.MethodPut
}

func (h UpdateCategoryHandler) Path() string {
	return "/categories/{categoryID}"
}

func (h UpdateCategoryHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	categoryID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[string]("categoryID"), nil)
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[service.CategoryInput](), err)
	if err != nil {
		return err
	}

	result, err := h.catalogService.UpdateCategory(r.Context(), categoryID, in)
	if err != nil {
		return err
	}

	w.SetJSONBody(result)
	return nil
}
