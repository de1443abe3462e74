package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/toussaint-systems/portfolio-api/internal/config"
	"github.com/toussaint-systems/portfolio-api/internal/models"
	"github.com/toussaint-systems/portfolio-api/pkg/email"
	"github.com/toussaint-systems/portfolio-api/pkg/logger"
	"github.com/toussaint-systems/portfolio-api/pkg/utils"
)

// placeholder rendered for fields the visitor left blank
const fieldPlaceholder = "-"

// DeliveryError marks a failure reported by the email provider, as opposed
// to a local fault.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("email delivery failed: %v", e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

type ContactService struct {
	email     EmailClient
	validator *utils.Validator
	cfg       config.ResendConfig
}

func NewContactService(emailClient EmailClient, validator *utils.Validator, cfg config.ResendConfig) *ContactService {
	return &ContactService{
		email:     emailClient,
		validator: validator,
		cfg:       cfg,
	}
}

// RelayInquiry forwards one contact form submission to the site owner's
// mailbox. Validation is lenient: blank fields become placeholders and the
// send is always attempted. The submitter's address is set as reply-to so
// answers go straight back to them; a malformed address drops the reply-to
// rather than failing the whole send.
func (s *ContactService) RelayInquiry(inq models.InquiryRequest) (*models.InquiryReceipt, error) {
	if err := s.validator.Struct(inq); err != nil {
		logger.Warn("inquiry has out-of-catalog field values", zap.Error(err))
	}

	replyTo := inq.Email
	if replyTo != "" && !s.validator.IsEmail(replyTo) {
		logger.Warn("dropping malformed reply-to address", zap.String("email", replyTo))
		replyTo = ""
	}

	id, err := s.email.Send(email.Message{
		From:    s.cfg.FromAddress,
		To:      s.cfg.ToAddress,
		ReplyTo: replyTo,
		Subject: inquirySubject(inq.Name),
		Text:    inquiryBody(inq),
	})
	if err != nil {
		return nil, &DeliveryError{Err: err}
	}

	return &models.InquiryReceipt{ID: id}, nil
}

func inquirySubject(name string) string {
	if name == "" {
		name = "Website visitor"
	}
	return "New project inquiry from " + name
}

func inquiryBody(inq models.InquiryRequest) string {
	return fmt.Sprintf(`New contact form submission from Toussaint IT System Development

Name: %s
Email: %s
Budget: %s
Timeline: %s

Message:
%s`,
		orPlaceholder(inq.Name),
		orPlaceholder(inq.Email),
		orPlaceholder(inq.Budget),
		orPlaceholder(inq.Timeline),
		orPlaceholder(inq.Message),
	)
}

func orPlaceholder(s string) string {
	if s == "" {
		return fieldPlaceholder
	}
	return s
}
