package http

import (
	"net/http"

	"github.com/lumistore/backoffice/internal/shipping/app/service"
	pkghttp "github.com/lumistore/backoffice/pkg/http"
)

type DeleteFeeHandler struct {
	shippingService *service.Shipping
}

func NewDeleteFeeHandler(shippingService *service.Shipping) DeleteFeeHandler {
	return DeleteFeeHandler{shippingService: shippingService}
}

func (h DeleteFeeHandler) Method() string {
	return http.MethodDelete
}

func (h DeleteFeeHandler) Path() string {
	return "/shipping-fees/{feeID}"
}

func (h DeleteFeeHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	feeID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[string]("feeID"), nil)
	if err != nil {
		return err
	}

	if err := h.shippingService.DeleteFee(r.Context(), feeID); err != nil {
		return err
	}

	w.SetStatusCode(http.StatusNoContent)
	return nil
}
