package http

import (
	"net/http"

	"github.com/lumistore/backoffice/internal/account/app/service"
	pkghttp "github.com/lumistore/backoffice/pkg/http"
)

type GetStaffHandler struct {
	accountService *service.Account
}

func NewGetStaffHandler(accountService *service.Account) GetStaffHandler {
	return GetStaffHandler{accountService: accountService}
}

func (h GetStaffHandler) Method() string {
	return http.MethodGet
}

func (h GetStaffHandler) Path() string {
	return "/accounts/staff/{staffID}"
}

func (h GetStaffHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	staffID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[string]("staffID"), nil)
	if err != nil {
		return err
	}

	result, err := h.accountService.Staff(r.Context(), staffID)
	if err != nil {
		return err
	}

	w.SetJSONBody(result)
	return nil
}
