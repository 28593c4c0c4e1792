package http

import (
	"net/http"

	"github.com/lumistore/backoffice/internal/catalog/app/service"
	pkghttp "github.com/lumistore/backoffice/pkg/http"
)

// ListCategoriesHandler returns the flat list by default, or the
// assembled hierarchy when ?tree=true is passed.
type ListCategoriesHandler struct {
	catalogService *service.Catalog
}

func NewListCategoriesHandler(catalogService *service.Catalog) ListCategoriesHandler {
	return ListCategoriesHandler{catalogService: catalogService}
}

func (h ListCategoriesHandler) Method() string {
	return http.MethodGet
}

func (h ListCategoriesHandler) Path() string {
	return "/categories"
}

func (h ListCategoriesHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	asTree := pkghttp.ParseRequestOptional[bool](r, pkghttp.QueryParameter[bool]("tree"), nil)
	if asTree != nil && *asTree {
		tree, err := h.catalogService.CategoryTree(r.Context())
		if err != nil {
			return err
		}

		w.SetJSONBody(tree)
		return nil
	}

	categories, err := h.catalogService.Categories(r.Context())
	if err != nil {
		return err
	}

	w.SetJSONBody(categories)
	return nil
}
