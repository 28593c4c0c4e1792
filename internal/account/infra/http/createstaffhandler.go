package http

import (
	"net/http"

	"github.com/lumistore/backoffice/internal/account/app/service"
	pkghttp "github.com/lumistore/backoffice/pkg/http"
)

type CreateStaffHandler struct {
	accountService *service.Account
}

func NewCreateStaffHandler(accountService *service.Account) CreateStaffHandler {
	return CreateStaffHandler{accountService: accountService}
}

func (h CreateStaffHandler) Method() string {
	return http.MethodPost
}

func (h CreateStaffHandler) Path() string {
	return "/accounts/staff"
}

func (h CreateStaffHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[service.StaffInput](), nil)
	if err != nil {
		return err
	}

	result, err := h.accountService.CreateStaff(r.Context(), in)
	if err != nil {
		return err
	}

	w.SetStatusCode(http.StatusCreated)
	w.SetJSONBody(result)
	return nil
}
