package notify

// customerTemplates selects the patient-facing email. Types with a confirmed
// lifecycle variant register both entries; order, emergency_request and
// medicine_order use a single template for every status.
var customerTemplates = map[templateKey]renderFunc{
	{Type: EventOrder}: func(r *Request, p Platform) (string, string) {
		inner := "<p>We received your lab order. Your booking voucher is attached; present it at the laboratory.</p>" + detailsTable(
			htmlRow("Order ID", orNA(r.OrderID)),
			htmlRow("Laboratory", orNA(r.LabName)),
			htmlRow("Total Amount", rupees(r.TotalAmount)),
		) + testsTable(r.Tests)
		return "Your Lab Order - " + p.Name,
			emailLayout("Lab Order Received", accentBlue, inner, p)
	},

	{Type: EventPrescription}: func(r *Request, p Platform) (string, string) {
		inner := "<p>We received your prescription. Our team is reviewing it and will confirm your lab booking shortly.</p>" + detailsTable(
			htmlRow("Patient", orNA(r.PatientName)),
			htmlRow("Laboratory", orNA(r.LabName)),
		)
		return "Prescription Received - " + p.Name,
			emailLayout("Prescription Received", accentBlue, inner, p)
	},
	{Type: EventPrescription, Confirmed: true}: func(r *Request, p Platform) (string, string) {
		inner := "<p>Your lab booking is confirmed. Your voucher is attached; present it at the laboratory.</p>" + detailsTable(
			htmlRow("Patient", orNA(r.PatientName)),
			htmlRow("Laboratory", orNA(r.LabName)),
		) + testsTable(r.Tests)
		return "Lab Booking Confirmed - " + p.Name,
			emailLayout("Booking Confirmed", accentGreen, inner, p)
	},

	{Type: EventDoctorAppointment}: func(r *Request, p Platform) (string, string) {
		inner := "<p>Your appointment request was received and is awaiting the doctor's confirmation.</p>" + detailsTable(
			htmlRow("Doctor", orNA(r.DoctorName)),
			htmlRow("Date", orNA(r.AppointmentDate)),
			htmlRow("Time", orNA(r.AppointmentTime)),
		)
		return "Appointment Request Received - " + p.Name,
			emailLayout("Appointment Request Received", accentBlue, inner, p)
	},
	{Type: EventDoctorAppointment, Confirmed: true}: func(r *Request, p Platform) (string, string) {
		inner := "<p>Your appointment is confirmed. The confirmation document is attached.</p>" + detailsTable(
			htmlRow("Doctor", orNA(r.DoctorName)),
			htmlRow("Date", orNA(r.AppointmentDate)),
			htmlRow("Time", orNA(r.AppointmentTime)),
			htmlRow("Type", orNA(r.AppointmentType)),
			htmlRow("Fee", rupees(r.ConsultationFee)),
		) + "<p>Please arrive 15 minutes early.</p>"
		return "Appointment Confirmed - " + p.Name,
			emailLayout("Appointment Confirmed", accentGreen, inner, p)
	},

	{Type: EventNurseBooking}: func(r *Request, p Platform) (string, string) {
		inner := "<p>Your nurse booking request was received and is awaiting confirmation.</p>" + detailsTable(
			htmlRow("Service", orNA(r.ServiceType)),
			htmlRow("Date", orNA(r.BookingDate)),
			htmlRow("Time", orNA(r.BookingTime)),
		)
		return "Nurse Booking Received - " + p.Name,
			emailLayout("Booking Request Received", accentBlue, inner, p)
	},
	{Type: EventNurseBooking, Confirmed: true}: func(r *Request, p Platform) (string, string) {
		inner := "<p>Your nurse booking is confirmed. The confirmation document is attached.</p>" + detailsTable(
			htmlRow("Nurse", orNA(r.NurseName)),
			htmlRow("Service", orNA(r.ServiceType)),
			htmlRow("Date", orNA(r.BookingDate)),
			htmlRow("Time", orNA(r.BookingTime)),
			htmlRow("Fee", rupees(r.ServiceFee)),
		)
		return "Nurse Booking Confirmed - " + p.Name,
			emailLayout("Booking Confirmed", accentGreen, inner, p)
	},

	{Type: EventEmergencyRequest}: func(r *Request, p Platform) (string, string) {
		inner := "<p>Your emergency request was received. Available nurses have been alerted and one will reach out shortly.</p>" + detailsTable(
			htmlRow("Address", orNA(r.Address)),
			htmlRow("Contact", orNA(r.PatientPhone)),
		) + "<p>If the situation is life-threatening, call emergency services immediately.</p>"
		return "Emergency Request Received - " + p.Name,
			emailLayout("Emergency Request Received", accentRed, inner, p)
	},

	{Type: EventMedicineOrder}: func(r *Request, p Platform) (string, string) {
		inner := "<p>We received your medicine order. The pharmacy will confirm availability and delivery time.</p>" + detailsTable(
			htmlRow("Order ID", orNA(r.OrderID)),
			htmlRow("Store", orNA(r.StoreName)),
			htmlRow("Total", rupees(r.OrderTotal)),
			htmlRow("Delivery Address", orNA(r.Address)),
		)
		return "Medicine Order Received - " + p.Name,
			emailLayout("Order Received", accentBlue, inner, p)
	},
}
