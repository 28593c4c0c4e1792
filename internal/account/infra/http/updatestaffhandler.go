package http

import (
	"net/http"

	"github.com/lumistore/backoffice/internal/account/app/service"
	pkghttp "github.com/lumistore/backoffice/pkg/http"
)

type UpdateStaffHandler struct {
	accountService *service.Account
}

func NewUpdateStaffHandler(accountService *service.Account) UpdateStaffHandler {
	return UpdateStaffHandler{accountService: accountService}
}

func (h UpdateStaffHandler) Method() string {
	return http.MethodPut
}

func (h UpdateStaffHandler) Path() string {
	return "/accounts/staff/{staffID}"
}

func (h UpdateStaffHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	staffID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[string]("staffID"), nil)
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[service.StaffInput](), err)
	if err != nil {
		return err
	}

	result, err := h.accountService.UpdateStaff(r.Context(), staffID, in)
	if err != nil {
		return err
	}

	w.SetJSONBody(result)
	return nil
}
