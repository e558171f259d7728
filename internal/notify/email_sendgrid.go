package notify

import (
	"context"
	"encoding/json"
	"fmt"
	nmail "net/mail"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/sehatplus/notification-service/pkg/logging"
)

// SendGridSender sends emails via the SendGrid API. It is the alternate
// delivery backend selected with EMAIL_PROVIDER=sendgrid.
type SendGridSender struct {
	client *sendgrid.Client
	logger *logging.Logger
}

// NewSendGridSender creates a new SendGrid email sender.
func NewSendGridSender(apiKey string, logger *logging.Logger) *SendGridSender {
	if apiKey == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &SendGridSender{
		client: sendgrid.NewSendClient(apiKey),
		logger: logger,
	}
}

// Send sends an email via SendGrid. Rejections are normalized to *SendError
// so the domain-fallback policy applies regardless of backend.
func (s *SendGridSender) Send(ctx context.Context, msg EmailMessage) error {
	if s.client == nil {
		return fmt.Errorf("notify: sendgrid client not configured")
	}

	m := mail.NewV3Mail()
	m.SetFrom(parseAddress(msg.From))
	m.Subject = msg.Subject

	p := mail.NewPersonalization()
	for _, to := range msg.To {
		p.AddTos(mail.NewEmail("", to))
	}
	m.AddPersonalizations(p)
	m.AddContent(mail.NewContent("text/html", msg.HTML))

	for _, a := range msg.Attachments {
		att := mail.NewAttachment()
		att.SetFilename(a.Filename)
		att.SetContent(a.Content)
		att.SetType("application/pdf")
		att.SetDisposition("attachment")
		m.AddAttachment(att)
	}

	response, err := s.client.SendWithContext(ctx, m)
	if err != nil {
		return fmt.Errorf("notify: sendgrid send failed: %w", err)
	}

	if response.StatusCode >= 400 {
		sendErr := &SendError{
			StatusCode: response.StatusCode,
			Message:    sendgridErrorMessage(response.Body),
		}
		s.logger.Error("sendgrid returned error status", "status", response.StatusCode, "body", response.Body, "to", msg.To)
		return sendErr
	}

	s.logger.Info("email sent via sendgrid", "to", msg.To, "subject", msg.Subject, "status", response.StatusCode)
	return nil
}

// parseAddress splits a "Name <addr>" sender string into a mail.Email.
func parseAddress(from string) *mail.Email {
	if addr, err := nmail.ParseAddress(from); err == nil {
		return mail.NewEmail(addr.Name, addr.Address)
	}
	return mail.NewEmail("", strings.TrimSpace(from))
}

func sendgridErrorMessage(body string) string {
	var parsed struct {
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal([]byte(body), &parsed); err == nil && len(parsed.Errors) > 0 {
		msgs := make([]string, 0, len(parsed.Errors))
		for _, e := range parsed.Errors {
			msgs = append(msgs, e.Message)
		}
		return strings.Join(msgs, "; ")
	}
	return body
}

var _ EmailSender = (*SendGridSender)(nil)
