package service

import (
	"fmt"

	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"

	"github.com/toussaint-systems/portfolio-api/internal/models"
	"github.com/toussaint-systems/portfolio-api/pkg/logger"
)

type CheckoutService struct {
	payments PaymentClient
	siteURL  string
}

func NewCheckoutService(payments PaymentClient, siteURL string) *CheckoutService {
	return &CheckoutService{
		payments: payments,
		siteURL:  siteURL,
	}
}

// CreateCheckoutSession creates a provider-hosted checkout session for one
// unit of the given price. The price record is retrieved first because the
// session mode depends on it: a recurring price must open a subscription
// session, anything else a one-time payment session.
func (s *CheckoutService) CreateCheckoutSession(req models.CreateCheckoutSessionRequest) (*models.CheckoutSession, error) {
	price, err := s.payments.GetPrice(req.PriceID)
	if err != nil {
		return nil, fmt.Errorf("retrieve price %s: %w", req.PriceID, err)
	}

	mode := stripe.CheckoutSessionModePayment
	if price.Recurring != nil {
		mode = stripe.CheckoutSessionModeSubscription
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(mode)),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(price.ID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.siteURL + "/?checkout=success"),
		CancelURL:  stripe.String(s.siteURL + "/?checkout=cancel"),
	}

	if req.IdempotencyKey != "" {
		params.IdempotencyKey = stripe.String(req.IdempotencyKey)
	}

	session, err := s.payments.CreateCheckoutSession(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	logger.Info("checkout session created",
		zap.String("session_id", session.ID),
		zap.String("price_id", req.PriceID),
		zap.String("mode", string(mode)),
	)

	return &models.CheckoutSession{
		SessionID: session.ID,
		URL:       session.URL,
	}, nil
}
