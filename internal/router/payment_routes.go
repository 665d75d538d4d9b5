package router

import (
	"github.com/labstack/echo/v4"

	"github.com/creativecamper/creativecamper-server/internal/handler"
)

// RegisterPayment registers the checkout endpoint. The front end calls it
// during checkout to obtain a client secret for the payment provider's
// confirmation flow.
func RegisterPayment(e *echo.Echo, h *handler.PaymentHandler) {
	e.POST("/create-payment-intent", h.CreateIntent)
}
