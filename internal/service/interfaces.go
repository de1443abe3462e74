package service

import (
	"github.com/stripe/stripe-go/v74"

	"github.com/toussaint-systems/portfolio-api/pkg/email"
)

// EmailClient is the outbound mail port. Satisfied by email.EmailService.
type EmailClient interface {
	Send(msg email.Message) (string, error)
}

// PaymentClient is the payments provider port. Satisfied by payment.StripeService.
type PaymentClient interface {
	GetPrice(priceID string) (*stripe.Price, error)
	CreateCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}
