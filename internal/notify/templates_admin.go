package notify

import "fmt"

// adminTemplates selects the back-office notification by (type, confirmed).
// The admin inbox is copied on every booking event, so every event type has
// at least a creation entry.
var adminTemplates = map[templateKey]renderFunc{
	{Type: EventOrder}: func(r *Request, p Platform) (string, string) {
		inner := detailsTable(
			htmlRow("Order ID", orNA(r.OrderID)),
			htmlRow("Patient", orNA(r.PatientName)),
			htmlRow("Phone", orNA(r.PatientPhone)),
			htmlRow("Laboratory", orNA(r.LabName)),
			htmlRow("Total Amount", rupees(r.TotalAmount)),
		) + testsTable(r.Tests)
		return fmt.Sprintf("New Lab Order - %s", orNA(r.OrderID)),
			emailLayout("New Lab Order", accentBlue, inner, p)
	},

	{Type: EventPrescription}: func(r *Request, p Platform) (string, string) {
		inner := "<p>A patient uploaded a prescription for review.</p>" + detailsTable(
			htmlRow("Patient", orNA(r.PatientName)),
			htmlRow("Phone", orNA(r.PatientPhone)),
			htmlRow("Laboratory", orNA(r.LabName)),
		)
		return "New Prescription Received",
			emailLayout("New Prescription", accentBlue, inner, p)
	},
	{Type: EventPrescription, Confirmed: true}: func(r *Request, p Platform) (string, string) {
		inner := "<p>The prescription was reviewed and the lab booking is confirmed. The voucher is attached.</p>" + detailsTable(
			htmlRow("Patient", orNA(r.PatientName)),
			htmlRow("Laboratory", orNA(r.LabName)),
			htmlRow("Total Amount", rupees(r.TotalAmount)),
		) + testsTable(r.Tests)
		return "Prescription Confirmed - Lab Booking",
			emailLayout("Prescription Confirmed", accentGreen, inner, p)
	},

	{Type: EventDoctorAppointment}: func(r *Request, p Platform) (string, string) {
		inner := detailsTable(
			htmlRow("Patient", orNA(r.PatientName)),
			htmlRow("Phone", orNA(r.PatientPhone)),
			htmlRow("Doctor", orNA(r.DoctorName)),
			htmlRow("Date", orNA(r.AppointmentDate)),
			htmlRow("Time", orNA(r.AppointmentTime)),
			htmlRow("Type", orNA(r.AppointmentType)),
			htmlRow("Fee", rupees(r.ConsultationFee)),
		)
		return "New Doctor Appointment Request",
			emailLayout("New Appointment Request", accentBlue, inner, p)
	},
	{Type: EventDoctorAppointment, Confirmed: true}: func(r *Request, p Platform) (string, string) {
		inner := "<p>The appointment below was confirmed. The confirmation document is attached.</p>" + detailsTable(
			htmlRow("Patient", orNA(r.PatientName)),
			htmlRow("Doctor", orNA(r.DoctorName)),
			htmlRow("Date", orNA(r.AppointmentDate)),
			htmlRow("Time", orNA(r.AppointmentTime)),
		)
		return "Doctor Appointment Confirmed",
			emailLayout("Appointment Confirmed", accentGreen, inner, p)
	},

	{Type: EventNurseBooking}: func(r *Request, p Platform) (string, string) {
		inner := detailsTable(
			htmlRow("Patient", orNA(r.PatientName)),
			htmlRow("Phone", orNA(r.PatientPhone)),
			htmlRow("Nurse", orNA(r.NurseName)),
			htmlRow("Service", orNA(r.ServiceType)),
			htmlRow("Date", orNA(r.BookingDate)),
			htmlRow("Time", orNA(r.BookingTime)),
			htmlRow("Fee", rupees(r.ServiceFee)),
		)
		return "New Nurse Booking Request",
			emailLayout("New Nurse Booking", accentBlue, inner, p)
	},
	{Type: EventNurseBooking, Confirmed: true}: func(r *Request, p Platform) (string, string) {
		inner := "<p>The nurse booking below was confirmed. The confirmation document is attached.</p>" + detailsTable(
			htmlRow("Patient", orNA(r.PatientName)),
			htmlRow("Nurse", orNA(r.NurseName)),
			htmlRow("Service", orNA(r.ServiceType)),
			htmlRow("Date", orNA(r.BookingDate)),
			htmlRow("Time", orNA(r.BookingTime)),
		)
		return "Nurse Booking Confirmed",
			emailLayout("Nurse Booking Confirmed", accentGreen, inner, p)
	},

	{Type: EventEmergencyRequest}: func(r *Request, p Platform) (string, string) {
		inner := "<p>An emergency nurse request came in. All emergency-available nurses have been alerted.</p>" + detailsTable(
			htmlRow("Patient", orNA(r.PatientName)),
			htmlRow("Phone", orNA(r.PatientPhone)),
			htmlRow("Address", orNA(r.Address)),
			htmlRow("Notes", orNA(r.Notes)),
		)
		return "EMERGENCY - Nurse Assistance Requested",
			emailLayout("Emergency Request", accentRed, inner, p)
	},

	{Type: EventMedicineOrder}: func(r *Request, p Platform) (string, string) {
		inner := detailsTable(
			htmlRow("Order ID", orNA(r.OrderID)),
			htmlRow("Patient", orNA(r.PatientName)),
			htmlRow("Phone", orNA(r.PatientPhone)),
			htmlRow("Store", orNA(r.StoreName)),
			htmlRow("Items", fmt.Sprintf("%d", r.ItemsCount)),
			htmlRow("Total", rupees(r.OrderTotal)),
			htmlRow("Delivery Address", orNA(r.Address)),
		)
		return "New Medicine Order",
			emailLayout("New Medicine Order", accentBlue, inner, p)
	},
}
