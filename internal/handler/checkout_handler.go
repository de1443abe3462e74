package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"

	"github.com/toussaint-systems/portfolio-api/internal/models"
	"github.com/toussaint-systems/portfolio-api/internal/service"
	"github.com/toussaint-systems/portfolio-api/pkg/logger"
	"github.com/toussaint-systems/portfolio-api/pkg/utils"
)

type CheckoutHandler struct {
	checkoutService *service.CheckoutService
	validator       *utils.Validator
}

func NewCheckoutHandler(checkoutService *service.CheckoutService, validator *utils.Validator) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		validator:       validator,
	}
}

// CreateCheckoutSession opens a provider-hosted checkout for the requested
// price and returns the redirect URL. Mounted for every method.
func (h *CheckoutHandler) CreateCheckoutSession(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		c.Set(fiber.HeaderAllow, fiber.MethodPost)
		return c.Status(fiber.StatusMethodNotAllowed).JSON(models.ErrorResponse("Method not allowed"))
	}

	var req models.CreateCheckoutSessionRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Warn("unparseable checkout request body", zap.Error(err))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Missing priceId"))
	}

	session, err := h.checkoutService.CreateCheckoutSession(req)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			logger.Error("stripe rejected checkout request",
				zap.String("price_id", req.PriceID),
				zap.Error(err),
			)
			return c.Status(fiber.StatusInternalServerError).JSON(models.StripeErrorResponse{
				Ok:         false,
				Error:      "Stripe error",
				Message:    stripeErr.Msg,
				StatusCode: stripeErr.HTTPStatusCode,
				Type:       string(stripeErr.Type),
				Code:       string(stripeErr.Code),
				Param:      stripeErr.Param,
			})
		}

		logger.Error("checkout session creation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.ErrorResponseWithDetails("Server error", err.Error()))
	}

	return c.JSON(models.SuccessResponse(session))
}
