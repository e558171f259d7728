package notify

import (
	"context"
	"errors"
	"testing"
)

func domainNotVerifiedErr() error {
	return &SendError{
		StatusCode: 403,
		Name:       "validation_error",
		Message:    "The sehatplus.pk domain is not verified",
	}
}

func TestFallbackUsedForDomainNotVerified(t *testing.T) {
	sender := &scriptedSender{fail: func(msg EmailMessage) error {
		if msg.From == "SehatPlus <notifications@sehatplus.pk>" {
			return domainNotVerifiedErr()
		}
		return nil
	}}
	delivery := NewFallbackDelivery(sender, "SehatPlus <notifications@sehatplus.pk>", "SehatPlus <onboarding@resend.dev>", nil)

	d := delivery.Deliver(context.Background(), EmailMessage{To: []string{"x@example.com"}, Subject: "s", HTML: "<p>b</p>"})

	if len(sender.calls) != 2 {
		t.Fatalf("expected exactly one fallback attempt, got %d sends", len(sender.calls))
	}
	if sender.calls[1].From != "SehatPlus <onboarding@resend.dev>" {
		t.Fatalf("fallback sent from %q", sender.calls[1].From)
	}
	if d.Primary.Sent {
		t.Fatalf("primary attempt should record failure")
	}
	if d.Fallback == nil || !d.Fallback.Sent {
		t.Fatalf("fallback attempt should record success, got %+v", d.Fallback)
	}
	if !d.Succeeded() {
		t.Fatalf("delivery should count as succeeded via fallback")
	}
}

func TestNoFallbackForOtherErrors(t *testing.T) {
	sender := &scriptedSender{fail: func(EmailMessage) error {
		return &SendError{StatusCode: 429, Name: "rate_limit_exceeded", Message: "too many requests"}
	}}
	delivery := NewFallbackDelivery(sender, "primary@sehatplus.pk", "fallback@resend.dev", nil)

	d := delivery.Deliver(context.Background(), EmailMessage{To: []string{"x@example.com"}, Subject: "s"})

	if len(sender.calls) != 1 {
		t.Fatalf("expected no fallback attempt, got %d sends", len(sender.calls))
	}
	if d.Fallback != nil {
		t.Fatalf("fallback should be null, got %+v", d.Fallback)
	}
	if d.Succeeded() {
		t.Fatalf("delivery should be recorded as failed")
	}
}

func TestNoFallbackForPlainErrors(t *testing.T) {
	sender := &scriptedSender{fail: func(EmailMessage) error {
		return errors.New("connection reset")
	}}
	delivery := NewFallbackDelivery(sender, "primary@sehatplus.pk", "fallback@resend.dev", nil)

	d := delivery.Deliver(context.Background(), EmailMessage{To: []string{"x@example.com"}, Subject: "s"})
	if len(sender.calls) != 1 || d.Fallback != nil {
		t.Fatalf("plain errors must not trigger the fallback sender")
	}
}

func TestIsDomainNotVerified(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"full signature", domainNotVerifiedErr(), true},
		{"wrapped", &SendError{StatusCode: 403, Name: "validation_error", Message: "Domain example.com is NOT VERIFIED yet"}, true},
		{"no name", &SendError{StatusCode: 403, Message: "sending domain not verified"}, true},
		{"wrong status", &SendError{StatusCode: 422, Name: "validation_error", Message: "domain not verified"}, false},
		{"wrong name", &SendError{StatusCode: 403, Name: "missing_api_key", Message: "domain not verified"}, false},
		{"unrelated message", &SendError{StatusCode: 403, Name: "validation_error", Message: "recipient rejected"}, false},
		{"plain error", errors.New("domain not verified"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isDomainNotVerified(tc.err); got != tc.want {
				t.Fatalf("isDomainNotVerified = %v, want %v", got, tc.want)
			}
		})
	}
}
