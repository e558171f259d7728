package resendclient

import (
	"errors"
	"strings"
)

// SendEmailRequest describes an outbound email payload.
type SendEmailRequest struct {
	From        string       `json:"from"`
	To          []string     `json:"to"`
	Subject     string       `json:"subject"`
	HTML        string       `json:"html"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment is a base64-encoded file attached to the email.
type Attachment struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

func (r SendEmailRequest) validate() error {
	if strings.TrimSpace(r.From) == "" {
		return errors.New("resendclient: from address required")
	}
	if len(r.To) == 0 {
		return errors.New("resendclient: at least one recipient required")
	}
	if strings.TrimSpace(r.Subject) == "" {
		return errors.New("resendclient: subject required")
	}
	return nil
}

// SendEmailResponse represents the created email resource.
type SendEmailResponse struct {
	ID string `json:"id"`
}
