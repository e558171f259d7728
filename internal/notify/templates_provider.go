package notify

// providerTemplates alerts the fulfilling provider of new work. Providers are
// only emailed on creation, so there is no confirmed variant, and no
// attachments accompany these emails. Lab orders have no provider audience;
// the back office dispatches them.
var providerTemplates = map[EventType]renderFunc{
	EventDoctorAppointment: func(r *Request, p Platform) (string, string) {
		inner := "<p>A patient requested an appointment with you. Please confirm or decline from your dashboard.</p>" + detailsTable(
			htmlRow("Patient", orNA(r.PatientName)),
			htmlRow("Phone", orNA(r.PatientPhone)),
			htmlRow("Date", orNA(r.AppointmentDate)),
			htmlRow("Time", orNA(r.AppointmentTime)),
			htmlRow("Type", orNA(r.AppointmentType)),
		)
		return "New Appointment Request - " + p.Name,
			emailLayout("New Appointment Request", accentBlue, inner, p)
	},

	EventNurseBooking: func(r *Request, p Platform) (string, string) {
		inner := "<p>A patient requested a home nursing service. Please confirm or decline from your dashboard.</p>" + detailsTable(
			htmlRow("Patient", orNA(r.PatientName)),
			htmlRow("Phone", orNA(r.PatientPhone)),
			htmlRow("Service", orNA(r.ServiceType)),
			htmlRow("Date", orNA(r.BookingDate)),
			htmlRow("Time", orNA(r.BookingTime)),
		)
		return "New Nurse Booking Request - " + p.Name,
			emailLayout("New Booking Request", accentBlue, inner, p)
	},

	EventPrescription: func(r *Request, p Platform) (string, string) {
		inner := "<p>A new prescription was submitted for fulfillment. Please review it from your dashboard.</p>" + detailsTable(
			htmlRow("Patient", orNA(r.PatientName)),
			htmlRow("Phone", orNA(r.PatientPhone)),
		)
		return "New Prescription - " + p.Name,
			emailLayout("New Prescription", accentBlue, inner, p)
	},

	EventMedicineOrder: func(r *Request, p Platform) (string, string) {
		inner := "<p>A new medicine order is waiting for your confirmation.</p>" + detailsTable(
			htmlRow("Order ID", orNA(r.OrderID)),
			htmlRow("Patient", orNA(r.PatientName)),
			htmlRow("Phone", orNA(r.PatientPhone)),
			htmlRow("Delivery Address", orNA(r.Address)),
		)
		return "New Medicine Order - " + p.Name,
			emailLayout("New Medicine Order", accentBlue, inner, p)
	},

	EventEmergencyRequest: func(r *Request, p Platform) (string, string) {
		inner := "<p>A patient nearby needs urgent nursing assistance. Open the app to accept the request.</p>" + detailsTable(
			htmlRow("Patient", orNA(r.PatientName)),
			htmlRow("Phone", orNA(r.PatientPhone)),
			htmlRow("Address", orNA(r.Address)),
			htmlRow("Notes", orNA(r.Notes)),
		)
		return "EMERGENCY - Patient Needs Assistance",
			emailLayout("Emergency Request", accentRed, inner, p)
	},
}
