package models

// InquiryRequest is a contact form submission. Every field is optional at
// the transport layer; absent values are rendered as a placeholder in the
// relayed email rather than rejected.
type InquiryRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Budget   string `json:"budget" validate:"omitempty,inquiry_budget"`
	Timeline string `json:"timeline" validate:"omitempty,inquiry_timeline"`
	Message  string `json:"message"`
}

// InquiryReceipt is the delivery acknowledgment returned to the caller.
type InquiryReceipt struct {
	ID string `json:"id"`
}
