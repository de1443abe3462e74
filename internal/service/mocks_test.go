package service_test

import (
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v74"

	"github.com/toussaint-systems/portfolio-api/pkg/email"
)

type MockEmailClient struct {
	mock.Mock
}

func (m *MockEmailClient) Send(msg email.Message) (string, error) {
	args := m.Called(msg)
	return args.String(0), args.Error(1)
}

type MockPaymentClient struct {
	mock.Mock
}

func (m *MockPaymentClient) GetPrice(priceID string) (*stripe.Price, error) {
	args := m.Called(priceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.Price), args.Error(1)
}

func (m *MockPaymentClient) CreateCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.CheckoutSession), args.Error(1)
}
