package models

type CreateCheckoutSessionRequest struct {
	PriceID string `json:"priceId" validate:"required"`

	// IdempotencyKey is optional; when present it is forwarded to the
	// payments provider so duplicate submissions reuse one session.
	IdempotencyKey string `json:"idempotencyKey"`
}

type CheckoutSession struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// StripeErrorResponse surfaces an allow-listed subset of the provider's
// error diagnostics. Anything outside these fields stays server-side.
type StripeErrorResponse struct {
	Ok         bool   `json:"ok"`
	Error      string `json:"error"`
	Message    string `json:"message,omitempty"`
	StatusCode int    `json:"statusCode,omitempty"`
	Type       string `json:"type,omitempty"`
	Code       string `json:"code,omitempty"`
	Param      string `json:"param,omitempty"`
}
