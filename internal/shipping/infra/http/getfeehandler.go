package http

import (
	"net/http"

	"github.com/lumistore/backoffice/internal/shipping/app/service"
	pkghttp "github.com/lumistore/backoffice/pkg/http"
)

type GetFeeHandler struct {
	shippingService *service.Shipping
}

func NewGetFeeHandler(shippingService *service.Shipping) GetFeeHandler {
	return GetFeeHandler{shippingService: shippingService}
}

func (h GetFeeHandler) Method() string {
	return http.MethodGet
}

func (h GetFeeHandler) Path() string {
	return "/shipping-fees/{feeID}"
}

func (h GetFeeHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	feeID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[string]("feeID"), nil)
	if err != nil {
		return err
	}

	result, err := h.shippingService.Fee(r.Context(), feeID)
	if err != nil {
		return err
	}

	w.SetJSONBody(result)
	return nil
}
