package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/sehatplus/notification-service/internal/notify/resendclient"
	"github.com/sehatplus/notification-service/pkg/logging"
)

// ResendSender sends emails via the Resend API.
type ResendSender struct {
	client *resendclient.Client
	logger *logging.Logger
}

// NewResendSender creates a new Resend email sender.
func NewResendSender(client *resendclient.Client, logger *logging.Logger) *ResendSender {
	if client == nil {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ResendSender{client: client, logger: logger}
}

// Send sends an email via Resend. API rejections are surfaced as *SendError
// so the fallback policy can inspect them.
func (s *ResendSender) Send(ctx context.Context, msg EmailMessage) error {
	if s.client == nil {
		return fmt.Errorf("notify: resend client not configured")
	}

	req := resendclient.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		HTML:    msg.HTML,
	}
	for _, a := range msg.Attachments {
		req.Attachments = append(req.Attachments, resendclient.Attachment{
			Filename: a.Filename,
			Content:  a.Content,
		})
	}

	resp, err := s.client.SendEmail(ctx, req)
	if err != nil {
		var apiErr *resendclient.APIError
		if errors.As(err, &apiErr) {
			return &SendError{
				StatusCode: apiErr.StatusCode,
				Name:       apiErr.Name,
				Message:    apiErr.Message,
			}
		}
		return fmt.Errorf("notify: resend send failed: %w", err)
	}

	s.logger.Info("email sent via resend", "to", msg.To, "subject", msg.Subject, "email_id", resp.ID)
	return nil
}

var _ EmailSender = (*ResendSender)(nil)
