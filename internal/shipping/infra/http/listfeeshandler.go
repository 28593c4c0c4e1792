package http

import (
	"net/http"

	"github.com/lumistore/backoffice/internal/shipping/app/service"
	pkghttp "github.com/lumistore/backoffice/pkg/http"
)

type ListFeesHandler struct {
	shippingService *service.Shipping
}

func NewListFeesHandler(shippingService *service.Shipping) ListFeesHandler {
	return ListFeesHandler{shippingService: shippingService}
}

func (h ListFeesHandler) Method() string {
	return http.MethodGet
}

func (h ListFeesHandler) Path() string {
	return "/shipping-fees"
}

func (h ListFeesHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	result, err := h.shippingService.Fees(r.Context())
	if err != nil {
		return err
	}

	w.SetJSONBody(result)
	return nil
}
