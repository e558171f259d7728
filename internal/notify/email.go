package notify

import (
	"context"
	"fmt"

	"github.com/sehatplus/notification-service/pkg/logging"
)

// EmailSender defines the interface for sending emails.
// Implementations can be swapped (Resend, SendGrid, stub) without changing callers.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// EmailMessage represents an email to be sent. To may carry multiple
// recipients (the emergency broadcast path addresses every eligible nurse on
// one message).
type EmailMessage struct {
	From        string
	To          []string
	Subject     string
	HTML        string
	Attachments []EmailAttachment
}

// EmailAttachment is a file attached to an email, content base64-encoded.
type EmailAttachment struct {
	Filename string
	Content  string
}

// SendError is a structured rejection from the email delivery API. The
// domain-fallback policy inspects its fields.
type SendError struct {
	StatusCode int
	Name       string
	Message    string
}

func (e *SendError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("notify: email rejected: %s: %s (status=%d)", e.Name, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("notify: email rejected: %s (status=%d)", e.Message, e.StatusCode)
}

// StubEmailSender is a no-op sender for testing or when email is disabled.
type StubEmailSender struct {
	logger *logging.Logger
}

// NewStubEmailSender creates a stub email sender that logs but doesn't send.
func NewStubEmailSender(logger *logging.Logger) *StubEmailSender {
	if logger == nil {
		logger = logging.Default()
	}
	return &StubEmailSender{logger: logger}
}

// Send logs the email but doesn't actually send it.
func (s *StubEmailSender) Send(ctx context.Context, msg EmailMessage) error {
	s.logger.Info("stub email sender: would send email",
		"from", msg.From,
		"to", msg.To,
		"subject", msg.Subject,
		"attachments", len(msg.Attachments),
	)
	return nil
}

var _ EmailSender = (*StubEmailSender)(nil)
