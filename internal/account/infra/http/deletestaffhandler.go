package http

import (
	"net/http"

	"github.com/lumistore/backoffice/internal/account/app/service"
	pkghttp "github.com/lumistore/backoffice/pkg/http"
)

type DeleteStaffHandler struct {
	accountService *service.Account
}

func NewDeleteStaffHandler(accountService *service.Account) DeleteStaffHandler {
	return DeleteStaffHandler{accountService: accountService}
}

func (h DeleteStaffHandler) Method() string {
	return http.MethodDelete
}

func (h DeleteStaffHandler) Path() string {
	return "/accounts/staff/{staffID}"
}

func (h DeleteStaffHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	staffID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[string]("staffID"), nil)
	if err != nil {
		return err
	}

	if err := h.accountService.DeleteStaff(r.Context(), staffID); err != nil {
		return err
	}

	w.SetStatusCode(http.StatusNoContent)
	return nil
}
