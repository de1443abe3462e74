package email

import (
	"github.com/resendlabs/resend-go"
)

// Message is one outbound transactional email. ReplyTo may be empty, in
// which case replies go back to the From address.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Text    string
}

type EmailService struct {
	client *resend.Client
}

func NewEmailService(apiKey string) *EmailService {
	return &EmailService{
		client: resend.NewClient(apiKey),
	}
}

// Send delivers msg through Resend and returns the provider's message id.
func (s *EmailService) Send(msg Message) (string, error) {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Text:    msg.Text,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		return "", err
	}

	return resp.Id, nil
}
