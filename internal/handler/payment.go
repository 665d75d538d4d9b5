package handler

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/creativecamper/creativecamper-server/internal/payment"
)

// PaymentHandler creates payment intents through the configured gateway.
type PaymentHandler struct {
	Intents payment.IntentCreator
}

func NewPaymentHandler(ic payment.IntentCreator) *PaymentHandler {
	return &PaymentHandler{Intents: ic}
}

type paymentIntentReq struct {
	Price float64 `json:"price"`
}

// CreateIntent handles POST /create-payment-intent. The client sends the
// price in major currency units; the gateway wants minor units, so the
// amount is converted to cents before the call. The response carries only
// the client secret the front end needs to confirm the payment.
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req paymentIntentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Price <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price must be positive"})
	}
	amount := int64(math.Round(req.Price * 100))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	secret, err := h.Intents.CreateIntent(ctx, amount, "usd")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create payment intent failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"clientSecret": secret})
}
