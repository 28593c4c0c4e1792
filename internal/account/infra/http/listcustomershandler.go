package http

import (
	"net/http"

	"github.com/lumistore/backoffice/internal/account/app/service"
	pkghttp "github.com/lumistore/backoffice/pkg/http"
)

type ListCustomersHandler struct {
	accountService *service.Account
}

func NewListCustomersHandler(accountService *service.Account) ListCustomersHandler {
	return ListCustomersHandler{accountService: accountService}
}

func (h ListCustomersHandler) Method() string {
	return http.MethodGet
}

func (h ListCustomersHandler) Path() string {
	return "/accounts/customers"
}

func (h ListCustomersHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	page, perPage := pagination(r)

	result, err := h.accountService.ListCustomers(r.Context(), page, perPage)
	if err != nil {
		return err
	}

	w.SetJSONBody(result)
	return nil
}
