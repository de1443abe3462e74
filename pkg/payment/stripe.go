package payment

import (
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"
)

// StripeService wraps a dedicated API client instance instead of the
// package-global stripe.Key, so callers can hold fakes behind the same
// method set.
type StripeService struct {
	api *client.API
}

func NewStripeService(secretKey string) *StripeService {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &StripeService{
		api: api,
	}
}

func (s *StripeService) GetPrice(priceID string) (*stripe.Price, error) {
	return s.api.Prices.Get(priceID, nil)
}

func (s *StripeService) CreateCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return s.api.CheckoutSessions.New(params)
}
