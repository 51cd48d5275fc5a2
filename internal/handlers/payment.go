package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"paygate/internal/models"
	"paygate/internal/repositories"
	"paygate/internal/services/payment"
	"paygate/internal/utils/response"
)

type PaymentHandler struct {
	service payment.Service
}

func NewPaymentHandler(svc payment.Service) *PaymentHandler {
	return &PaymentHandler{service: svc}
}

// ProcessPayment handles POST /payment. Every processed request gets
// a 200 with a terminal status; bad input and bank trouble surface as
// a Rejected outcome, not as an HTTP error, so the result is always
// retrievable later by id.
func (h *PaymentHandler) ProcessPayment(c *fiber.Ctx) error {
	var req models.PaymentRequest
	reqPtr := &req
	if err := c.BodyParser(&req); err != nil {
		// An unparseable body takes the same path as an absent
		// request and is rejected by the first validation rule.
		log.Printf("failed to parse payment request body: %v", err)
		reqPtr = nil
	}

	result, err := h.service.Process(c.Context(), reqPtr)
	if err != nil {
		log.Printf("failed to persist payment outcome: %v", err)
		return response.ServerError(c, "Failed to process payment")
	}

	return c.JSON(result)
}

// GetPayment handles GET /payment/:id. Identifiers are opaque to
// callers, so a malformed id is answered the same way as an unknown
// one.
func (h *PaymentHandler) GetPayment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.NotFound(c)
	}

	result, err := h.service.Get(c.Context(), id)
	if errors.Is(err, repositories.ErrPaymentNotFound) {
		return response.NotFound(c)
	}
	if err != nil {
		log.Printf("failed to look up payment %s: %v", id, err)
		return response.ServerError(c, "Failed to retrieve payment")
	}

	return c.JSON(result)
}
