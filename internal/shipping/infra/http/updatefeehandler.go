package http

import (
	"errors"
	"net/http"

	"github.com/lumistore/backoffice/internal/shipping/app/service"
	pkghttp "github.com/lumistore/backoffice/pkg/http"
)

type UpdateFeeHandler struct {
	shippingService *service.Shipping
}

func NewUpdateFeeHandler(shippingService *service.Shipping) UpdateFeeHandler {
	return UpdateFeeHandler{shippingService: shippingService}
}

func (h UpdateFeeHandler) Method() string {
	return http.MethodPut
}

func (h UpdateFeeHandler) Path() string {
	return "/shipping-fees/{feeID}"
}

func (h UpdateFeeHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	feeID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[string]("feeID"), nil)
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[service.FeeInput](), err)
	if err != nil {
		return err
	}

	result, err := h.shippingService.UpdateFee(r.Context(), feeID, in)
	if errors.Is(err, service.ErrInvalidWeightRange) {
		w.SetStatusCode(http.StatusBadRequest)
		return nil
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(result)
	return nil
}
