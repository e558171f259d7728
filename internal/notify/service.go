package notify

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/sehatplus/notification-service/internal/observability/metrics"
	"github.com/sehatplus/notification-service/internal/pdf"
	"github.com/sehatplus/notification-service/internal/providers"
	"github.com/sehatplus/notification-service/pkg/logging"
)

var dispatchTracer = otel.Tracer("sehatplus.internal.notify")

// UnknownEventTypeError is returned when the request carries a type the
// dispatcher does not recognize.
type UnknownEventTypeError struct {
	Type EventType
}

func (e *UnknownEventTypeError) Error() string {
	return fmt.Sprintf("notify: unknown event type %q", e.Type)
}

// ServiceConfig carries the fixed dispatch settings.
type ServiceConfig struct {
	AdminEmail   string
	Platform     Platform
	ValidityDays int
	// Now is the clock used for voucher timestamps; defaults to time.Now.
	Now func() time.Time
}

// Service turns one booking-event description into zero or one PDF attachment
// and up to three targeted emails (admin, provider, customer), then reports
// the outcomes. It holds no state across calls.
type Service struct {
	delivery     *FallbackDelivery
	providers    providers.Repository
	documents    *pdf.Generator
	metrics      *metrics.NotificationMetrics
	logger       *logging.Logger
	adminEmail   string
	platform     Platform
	validityDays int
	now          func() time.Time
}

// NewService creates a notification dispatch service. repo may be nil when no
// data store is configured; provider audiences then resolve to no recipients.
func NewService(delivery *FallbackDelivery, repo providers.Repository, documents *pdf.Generator, m *metrics.NotificationMetrics, cfg ServiceConfig, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.ValidityDays <= 0 {
		cfg.ValidityDays = 7
	}
	return &Service{
		delivery:     delivery,
		providers:    repo,
		documents:    documents,
		metrics:      m,
		logger:       logger,
		adminEmail:   cfg.AdminEmail,
		platform:     cfg.Platform,
		validityDays: cfg.ValidityDays,
		now:          cfg.Now,
	}
}

// Dispatch processes one notification request end to end. It returns an error
// only for an unrecognized event type; delivery failures are reported inside
// the summary.
func (s *Service) Dispatch(ctx context.Context, req *Request) (*Summary, error) {
	if !knownEventTypes[req.Type] {
		return nil, &UnknownEventTypeError{Type: req.Type}
	}

	ctx, span := dispatchTracer.Start(ctx, "notify.dispatch")
	defer span.End()
	span.SetAttributes(
		attribute.String("sehatplus.event_type", string(req.Type)),
		attribute.String("sehatplus.status", string(req.Status)),
	)

	start := s.now()
	confirmed := req.Confirmed()
	summary := &Summary{Status: req.Status}

	pdfBytes, pdfName := s.buildPDF(req)
	summary.PDFGenerated = pdfBytes != nil

	var attachments []EmailAttachment
	if pdfBytes != nil {
		attachments = []EmailAttachment{{
			Filename: pdfName,
			Content:  base64.StdEncoding.EncodeToString(pdfBytes),
		}}
	}

	// Admin inbox is copied on every booking event.
	adminRender := lookupTemplate(adminTemplates, req.Type, confirmed)
	subject, html := adminRender(req, s.platform)
	summary.AdminEmail = s.deliver(ctx, "admin", EmailMessage{
		To:          []string{s.adminEmail},
		Subject:     subject,
		HTML:        html,
		Attachments: attachments,
	})

	// Providers are alerted only of new work, never on confirmation, and
	// never receive attachments.
	if !confirmed {
		recipients := s.providerRecipients(ctx, req)
		summary.ProviderEmailsCount = len(recipients)
		if render, ok := providerTemplates[req.Type]; ok && len(recipients) > 0 {
			subject, html := render(req, s.platform)
			summary.ProviderEmail = s.deliver(ctx, "provider", EmailMessage{
				To:      recipients,
				Subject: subject,
				HTML:    html,
			})
		}
	}

	// Customer is emailed whenever an address is present, regardless of status.
	customerAttempted := false
	if req.PatientEmail != "" {
		render := lookupTemplate(customerTemplates, req.Type, confirmed)
		subject, html := render(req, s.platform)
		msg := EmailMessage{
			To:      []string{req.PatientEmail},
			Subject: subject,
			HTML:    html,
		}
		// Lab order vouchers travel with the single order template; other
		// types attach only on confirmation.
		if pdfBytes != nil && (confirmed || req.Type == EventOrder) {
			msg.Attachments = attachments
		}
		summary.CustomerEmail = s.deliver(ctx, "customer", msg)
		customerAttempted = true
	}

	summary.Success = summary.AdminEmail.Succeeded() &&
		(!customerAttempted || summary.CustomerEmail.Succeeded())

	outcome := "partial"
	if summary.Success {
		outcome = "success"
	}
	s.metrics.ObserveDispatch(string(req.Type), string(req.Status), outcome)
	s.metrics.ObserveDispatchLatency(string(req.Type), s.now().Sub(start).Seconds())
	s.logger.Info("notification dispatched",
		"type", req.Type,
		"status", req.Status,
		"success", summary.Success,
		"pdf", summary.PDFGenerated,
		"provider_recipients", summary.ProviderEmailsCount,
	)
	return summary, nil
}

func (s *Service) deliver(ctx context.Context, audience string, msg EmailMessage) *Delivery {
	ctx, span := dispatchTracer.Start(ctx, "notify.email.send")
	defer span.End()
	span.SetAttributes(
		attribute.String("sehatplus.audience", audience),
		attribute.Int("sehatplus.recipients", len(msg.To)),
	)

	d := s.delivery.Deliver(ctx, msg)
	result := "ok"
	if !d.Succeeded() {
		result = "error"
		errText := ""
		if d.Primary != nil {
			errText = d.Primary.Error
		}
		span.RecordError(errors.New(errText))
		s.logger.Error("email delivery failed", "audience", audience, "to", msg.To, "error", errText)
	}
	s.metrics.ObserveEmail(audience, result, d.Fallback != nil)
	return d
}

// buildPDF synthesizes the document for the (type, status) combinations that
// carry one. A rendering failure is logged and degrades to "no attachment".
func (s *Service) buildPDF(req *Request) ([]byte, string) {
	if s.documents == nil {
		return nil, ""
	}
	now := s.now()

	var (
		data []byte
		name string
		kind string
		err  error
	)
	switch {
	case (req.Type == EventOrder || (req.Type == EventPrescription && req.Confirmed())) && len(req.Tests) > 0:
		lines := make([]pdf.TestLine, 0, len(req.Tests))
		for _, t := range req.Tests {
			lines = append(lines, pdf.TestLine{
				Name:            t.Name,
				OriginalPrice:   t.OriginalPrice,
				DiscountedPrice: t.DiscountedPrice,
			})
		}
		data, err = s.documents.LabVoucher(pdf.LabVoucher{
			OrderID:      req.OrderID,
			PatientName:  req.PatientName,
			PatientPhone: req.PatientPhone,
			LabName:      req.LabName,
			Tests:        lines,
			GeneratedAt:  now,
			ValidityDays: s.validityDays,
		})
		name, kind = "lab-booking-voucher.pdf", "lab_voucher"

	case req.Type == EventDoctorAppointment && req.Confirmed():
		data, err = s.documents.AppointmentConfirmation(pdf.AppointmentConfirmation{
			PatientName:     req.PatientName,
			PatientPhone:    req.PatientPhone,
			DoctorName:      req.DoctorName,
			Specialization:  req.Specialization,
			AppointmentDate: req.AppointmentDate,
			AppointmentTime: req.AppointmentTime,
			AppointmentType: req.AppointmentType,
			ConsultationFee: req.ConsultationFee,
			GeneratedAt:     now,
		})
		name, kind = "appointment-confirmation.pdf", "appointment"

	case req.Type == EventNurseBooking && req.Confirmed():
		data, err = s.documents.NurseBookingConfirmation(pdf.NurseBookingConfirmation{
			PatientName:  req.PatientName,
			PatientPhone: req.PatientPhone,
			NurseName:    req.NurseName,
			ServiceType:  req.ServiceType,
			BookingDate:  req.BookingDate,
			BookingTime:  req.BookingTime,
			ServiceFee:   req.ServiceFee,
			Notes:        req.Notes,
			GeneratedAt:  now,
		})
		name, kind = "nurse-booking-confirmation.pdf", "nurse_booking"

	default:
		return nil, ""
	}

	if err != nil {
		s.logger.Error("pdf generation failed", "type", req.Type, "error", err)
		return nil, ""
	}
	s.metrics.ObservePDF(kind)
	return data, name
}

// providerRecipients resolves the provider audience for a newly created
// event. Lookup failures are treated as "no recipient".
func (s *Service) providerRecipients(ctx context.Context, req *Request) []string {
	if s.providers == nil {
		return nil
	}

	single := func(kind, id string, fn func(context.Context, string) (string, error)) []string {
		if id == "" {
			return nil
		}
		email, err := fn(ctx, id)
		if err != nil {
			s.logger.Warn("provider email lookup failed", "provider", kind, "id", id, "error", err)
			return nil
		}
		return []string{email}
	}

	switch req.Type {
	case EventDoctorAppointment:
		return single("doctor", req.DoctorID, s.providers.DoctorEmail)
	case EventNurseBooking:
		return single("nurse", req.NurseID, s.providers.NurseEmail)
	case EventPrescription, EventMedicineOrder:
		return single("store", req.StoreID, s.providers.StoreEmail)
	case EventEmergencyRequest:
		emails, err := s.providers.EmergencyNurseEmails(ctx)
		if err != nil {
			s.logger.Warn("emergency nurse lookup failed", "error", err)
			return nil
		}
		return emails
	default:
		// Lab orders are dispatched by the back office; no provider audience.
		return nil
	}
}
