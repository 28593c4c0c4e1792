package http

import (
	"net/http"

	"github.com/lumistore/backoffice/internal/account/app/service"
	pkghttp "github.com/lumistore/backoffice/pkg/http"
)

const (
	defaultPage    = 1
	defaultPerPage = 20
)

type ListStaffHandler struct {
	accountService *service.Account
}

func NewListStaffHandler(accountService *service.Account) ListStaffHandler {
	return ListStaffHandler{accountService: accountService}
}

func (h ListStaffHandler) Method() string {
	return http.MethodGet
}

func (h ListStaffHandler) Path() string {
	return "/accounts/staff"
}

func (h ListStaffHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	page, perPage := pagination(r)

	result, err := h.accountService.ListStaff(r.Context(), page, perPage)
	if err != nil {
		return err
	}

	w.SetJSONBody(result)
	return nil
}

func pagination(r *http.Request) (page, perPage int) {
	page, perPage = defaultPage, defaultPerPage
	if v := pkghttp.ParseRequestOptional[int](r, pkghttp.QueryParameter[int]("page"), nil); v != nil {
		page = *v
	}
	if v := pkghttp.ParseRequestOptional[int](r, pkghttp.QueryParameter[int]("perPage"), nil); v != nil {
		perPage = *v
	}
	return page, perPage
}
