package notify

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sehatplus/notification-service/pkg/logging"
)

// FallbackDelivery sends each email from the primary (domain-verified) sender
// address and, if the provider rejects the send because the sending domain is
// not verified, retries exactly once from the fallback address. Any other
// error is recorded as-is with no retry.
type FallbackDelivery struct {
	sender       EmailSender
	primaryFrom  string
	fallbackFrom string
	logger       *logging.Logger
}

// NewFallbackDelivery builds the delivery policy around a concrete sender.
func NewFallbackDelivery(sender EmailSender, primaryFrom, fallbackFrom string, logger *logging.Logger) *FallbackDelivery {
	if logger == nil {
		logger = logging.Default()
	}
	return &FallbackDelivery{
		sender:       sender,
		primaryFrom:  primaryFrom,
		fallbackFrom: fallbackFrom,
		logger:       logger,
	}
}

// Deliver attempts the send and reports both attempts. msg.From is overridden
// by the configured sender addresses.
func (f *FallbackDelivery) Deliver(ctx context.Context, msg EmailMessage) *Delivery {
	if f == nil || f.sender == nil {
		return &Delivery{Primary: &Attempt{Sent: false, Error: "email sender not configured"}}
	}

	msg.From = f.primaryFrom
	primary := &Attempt{From: f.primaryFrom}
	err := f.sender.Send(ctx, msg)
	if err == nil {
		primary.Sent = true
		return &Delivery{Primary: primary}
	}
	primary.Error = err.Error()

	if !isDomainNotVerified(err) || f.fallbackFrom == "" {
		return &Delivery{Primary: primary}
	}

	f.logger.Warn("primary sender domain not verified; attempting fallback sender",
		"from", f.primaryFrom,
		"fallback", f.fallbackFrom,
		"to", msg.To,
	)
	msg.From = f.fallbackFrom
	fallback := &Attempt{From: f.fallbackFrom}
	if fbErr := f.sender.Send(ctx, msg); fbErr != nil {
		fallback.Error = fbErr.Error()
		f.logger.Error("fallback email send failed", "error", fbErr, "to", msg.To)
	} else {
		fallback.Sent = true
	}
	return &Delivery{Primary: primary, Fallback: fallback}
}

// isDomainNotVerified recognizes the delivery provider's unverified-sending-
// domain rejection: error name "validation_error", HTTP 403, message
// mentioning the domain not being verified.
func isDomainNotVerified(err error) bool {
	var sendErr *SendError
	if !errors.As(err, &sendErr) {
		return false
	}
	if sendErr.StatusCode != http.StatusForbidden {
		return false
	}
	if sendErr.Name != "" && sendErr.Name != "validation_error" {
		return false
	}
	msg := strings.ToLower(sendErr.Message)
	return strings.Contains(msg, "domain") && strings.Contains(msg, "not verified")
}
