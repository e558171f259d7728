package notify

import (
	"strings"
	"testing"
)

var testPlatform = Platform{Name: "SehatPlus", SupportPhone: "+92 300 1234567"}

func TestEveryEventTypeHasCreationTemplates(t *testing.T) {
	for eventType := range knownEventTypes {
		if lookupTemplate(adminTemplates, eventType, false) == nil {
			t.Errorf("missing admin template for %s", eventType)
		}
		if lookupTemplate(customerTemplates, eventType, false) == nil {
			t.Errorf("missing customer template for %s", eventType)
		}
	}
}

func TestConfirmedFallsBackToCreationTemplate(t *testing.T) {
	// order, emergency_request and medicine_order have no confirmed variant;
	// the confirmed lookup must reuse the single template.
	for _, eventType := range []EventType{EventOrder, EventEmergencyRequest, EventMedicineOrder} {
		base := lookupTemplate(customerTemplates, eventType, false)
		confirmed := lookupTemplate(customerTemplates, eventType, true)
		if confirmed == nil {
			t.Fatalf("confirmed lookup for %s returned nil", eventType)
		}
		r := &Request{Type: eventType}
		baseSubj, _ := base(r, testPlatform)
		confSubj, _ := confirmed(r, testPlatform)
		if baseSubj != confSubj {
			t.Errorf("%s: confirmed subject %q differs from base %q", eventType, confSubj, baseSubj)
		}
	}
}

func TestConfirmedVariantsDiffer(t *testing.T) {
	for _, eventType := range []EventType{EventPrescription, EventDoctorAppointment, EventNurseBooking} {
		r := &Request{Type: eventType}
		baseSubj, _ := lookupTemplate(customerTemplates, eventType, false)(r, testPlatform)
		confSubj, _ := lookupTemplate(customerTemplates, eventType, true)(r, testPlatform)
		if baseSubj == confSubj {
			t.Errorf("%s: expected distinct confirmed subject, both %q", eventType, baseSubj)
		}
	}
}

func TestMissingFieldsRenderAsNA(t *testing.T) {
	r := &Request{Type: EventDoctorAppointment}
	_, html := lookupTemplate(customerTemplates, EventDoctorAppointment, false)(r, testPlatform)
	if !strings.Contains(html, "N/A") {
		t.Fatalf("absent fields must render as N/A, got: %s", html)
	}
	if strings.Contains(html, "<nil>") || strings.Contains(html, "%!") {
		t.Fatalf("template leaked formatting artifacts: %s", html)
	}
}

func TestTestsTableTotals(t *testing.T) {
	html := testsTable([]TestItem{
		{Name: "CBC", OriginalPrice: 800, DiscountedPrice: 500},
		{Name: "LFT", OriginalPrice: 1200, DiscountedPrice: 900},
	})
	if !strings.Contains(html, "Rs. 2000") {
		t.Errorf("expected original total Rs. 2000 in table: %s", html)
	}
	if !strings.Contains(html, "Rs. 1400") {
		t.Errorf("expected payable total Rs. 1400 in table: %s", html)
	}
}

func TestEmergencyAdminSubject(t *testing.T) {
	subj, html := lookupTemplate(adminTemplates, EventEmergencyRequest, false)(&Request{
		Type:    EventEmergencyRequest,
		Address: "House 12, F-8, Islamabad",
	}, testPlatform)
	if !strings.Contains(subj, "EMERGENCY") {
		t.Errorf("emergency subject should be flagged: %q", subj)
	}
	if !strings.Contains(html, "House 12, F-8, Islamabad") {
		t.Errorf("address missing from body")
	}
}
