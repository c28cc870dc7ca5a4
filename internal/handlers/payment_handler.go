package handlers

import (
	"math"

	"github.com/emirhanakgul/toolshop-backend/internal/dto"
	"github.com/emirhanakgul/toolshop-backend/internal/payments"
	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	intents  payments.IntentCreator
	currency string
}

func NewPaymentHandler(intents payments.IntentCreator, currency string) *PaymentHandler {
	return &PaymentHandler{intents: intents, currency: currency}
}

// CreateIntent handles POST /create-payment-intent. The decimal price is
// converted to integer minor units before it reaches the processor, and only
// the opaque client secret comes back out.
func (h *PaymentHandler) CreateIntent(c *fiber.Ctx) error {
	var req dto.PaymentIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Malformed payment body")
	}
	if err := validate.Struct(&req); err != nil {
		return badRequest(c, "Price must be a positive amount")
	}

	amountMinor := int64(math.Round(req.Price * 100))

	clientSecret, err := h.intents.CreateIntent(c.UserContext(), amountMinor, h.currency)
	if err != nil {
		return upstreamFailure(c, "create payment intent", err)
	}
	return c.JSON(dto.PaymentIntentResponse{ClientSecret: clientSecret})
}
