package http

import (
	"errors"
	"net/http"

	"github.com/lumistore/backoffice/internal/shipping/app/service"
	pkghttp "github.com/lumistore/backoffice/pkg/http"
)

type CreateFeeHandler struct {
	shippingService *service.Shipping
}

func NewCreateFeeHandler(shippingService *service.Shipping) CreateFeeHandler {
	return CreateFeeHandler{shippingService: shippingService}
}

func (h CreateFeeHandler) Method() string {
	return http.MethodPost
}

func (h CreateFeeHandler) Path() string {
	return "/shipping-fees"
}

func (h CreateFeeHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[service.FeeInput](), nil)
	if err != nil {
		return err
	}

	result, err := h.shippingService.CreateFee(r.Context(), in)
	if errors.Is(err, service.ErrInvalidWeightRange) {
		w.SetStatusCode(http.StatusBadRequest)
		return nil
	}
	if err != nil {
		return err
	}

	w.SetStatusCode(http.StatusCreated)
	w.SetJSONBody(result)
	return nil
}
