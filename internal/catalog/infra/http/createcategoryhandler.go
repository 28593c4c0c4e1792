package http

import (
	"net/http"

	"github.com/lumistore/backoffice/internal/catalog/app/service"
	pkghttp "github.com/lumistore/backoffice/pkg/http"
)

type CreateCategoryHandler struct {
	catalogService *service.Catalog
}

func NewCreateCategoryHandler(catalogService *service.Catalog) CreateCategoryHandler {
	return CreateCategoryHandler{catalogService: catalogService}
}

func (h CreateCategoryHandler) Method() string {
	return http.MethodPost
}

func (h CreateCategoryHandler) Path() string {
	return "/categories"
}

func (h CreateCategoryHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[service.CategoryInput](), nil)
	if err != nil {
		return err
	}

	result, err := h.catalogService.CreateCategory(r.Context(), in)
	if err != nil {
		return err
	}

	w.SetStatusCode(http.StatusCreated)
	w.SetJSONBody(result)
	return nil
}
