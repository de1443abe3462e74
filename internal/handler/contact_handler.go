package handler

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/toussaint-systems/portfolio-api/internal/models"
	"github.com/toussaint-systems/portfolio-api/internal/service"
	"github.com/toussaint-systems/portfolio-api/pkg/logger"
)

type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// SubmitInquiry relays a contact form submission to the owner's mailbox.
// Mounted for every method so non-POST requests get a 405 envelope before
// the body is touched.
func (h *ContactHandler) SubmitInquiry(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		c.Set(fiber.HeaderAllow, fiber.MethodPost)
		return c.Status(fiber.StatusMethodNotAllowed).JSON(models.ErrorResponse("Method not allowed"))
	}

	inq := parseInquiry(c.Body())

	receipt, err := h.contactService.RelayInquiry(inq)
	if err != nil {
		var deliveryErr *service.DeliveryError
		if errors.As(err, &deliveryErr) {
			logger.Error("contact relay rejected by provider", zap.Error(deliveryErr.Err))
			return c.Status(fiber.StatusInternalServerError).
				JSON(models.ErrorResponseWithDetails("Resend error", deliveryErr.Err.Error()))
		}

		logger.Error("contact relay failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.ErrorResponseWithDetails("Server error", err.Error()))
	}

	return c.JSON(models.SuccessResponse(receipt))
}

// parseInquiry accepts a JSON object, or a JSON string wrapping one (some
// form libraries double-encode the body). Anything unparseable degrades to
// an empty payload: for this endpoint a send with placeholders beats a
// hard error.
func parseInquiry(raw []byte) models.InquiryRequest {
	var inq models.InquiryRequest
	if len(raw) == 0 {
		return inq
	}

	if err := json.Unmarshal(raw, &inq); err == nil {
		return inq
	}

	var wrapped string
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		var inner models.InquiryRequest
		if err := json.Unmarshal([]byte(wrapped), &inner); err == nil {
			return inner
		}
	}

	return models.InquiryRequest{}
}
