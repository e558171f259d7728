package notify

// EventType identifies the kind of booking event a notification describes.
type EventType string

const (
	EventPrescription      EventType = "prescription"
	EventOrder             EventType = "order"
	EventDoctorAppointment EventType = "doctor_appointment"
	EventNurseBooking      EventType = "nurse_booking"
	EventEmergencyRequest  EventType = "emergency_request"
	EventMedicineOrder     EventType = "medicine_order"
)

// Status is the lifecycle status of the booking event.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// knownEventTypes gates dispatch; an unrecognized type is a hard error.
var knownEventTypes = map[EventType]bool{
	EventPrescription:      true,
	EventOrder:             true,
	EventDoctorAppointment: true,
	EventNurseBooking:      true,
	EventEmergencyRequest:  true,
	EventMedicineOrder:     true,
}

// TestItem is one priced lab test line on an order or prescription.
type TestItem struct {
	Name            string  `json:"name"`
	OriginalPrice   float64 `json:"originalPrice"`
	DiscountedPrice float64 `json:"discountedPrice"`
}

// Request describes one booking event. Every field except Type is optional;
// renderers substitute documented defaults ("N/A", 0, empty list) for absent
// values rather than rejecting the request.
type Request struct {
	Type   EventType `json:"type"`
	Status Status    `json:"status,omitempty"`

	// Patient identity and contact.
	PatientName  string `json:"patientName,omitempty"`
	PatientEmail string `json:"patientEmail,omitempty"`
	PatientPhone string `json:"patientPhone,omitempty"`

	// Lab orders and prescriptions.
	OrderID            string     `json:"orderId,omitempty"`
	LabID              string     `json:"labId,omitempty"`
	LabName            string     `json:"labName,omitempty"`
	Tests              []TestItem `json:"tests,omitempty"`
	TotalAmount        float64    `json:"totalAmount,omitempty"`
	DiscountPercentage float64    `json:"discountPercentage,omitempty"`

	// Doctor appointments.
	DoctorID        string  `json:"doctorId,omitempty"`
	DoctorName      string  `json:"doctorName,omitempty"`
	Specialization  string  `json:"specialization,omitempty"`
	AppointmentDate string  `json:"appointmentDate,omitempty"`
	AppointmentTime string  `json:"appointmentTime,omitempty"`
	AppointmentType string  `json:"appointmentType,omitempty"`
	ConsultationFee float64 `json:"consultationFee,omitempty"`

	// Nurse bookings and emergency requests.
	NurseID     string  `json:"nurseId,omitempty"`
	NurseName   string  `json:"nurseName,omitempty"`
	ServiceType string  `json:"serviceType,omitempty"`
	BookingDate string  `json:"bookingDate,omitempty"`
	BookingTime string  `json:"bookingTime,omitempty"`
	ServiceFee  float64 `json:"serviceFee,omitempty"`
	Notes       string  `json:"notes,omitempty"`
	Address     string  `json:"address,omitempty"`

	// Medicine orders.
	StoreID    string  `json:"storeId,omitempty"`
	StoreName  string  `json:"storeName,omitempty"`
	ItemsCount int     `json:"itemsCount,omitempty"`
	OrderTotal float64 `json:"orderTotal,omitempty"`
}

// Confirmed reports whether the event is at the confirmed lifecycle point.
func (r *Request) Confirmed() bool {
	return r.Status == StatusConfirmed
}

// Attempt records a single send from one sender address.
type Attempt struct {
	Sent  bool   `json:"sent"`
	From  string `json:"from,omitempty"`
	Error string `json:"error,omitempty"`
}

// Delivery is the per-audience outcome: the primary attempt plus the
// domain-fallback attempt when one was made.
type Delivery struct {
	Primary  *Attempt `json:"primary"`
	Fallback *Attempt `json:"fallback"`
}

// Succeeded reports whether any attempt got the email out.
func (d *Delivery) Succeeded() bool {
	if d == nil {
		return false
	}
	if d.Primary != nil && d.Primary.Sent {
		return true
	}
	return d.Fallback != nil && d.Fallback.Sent
}

// Summary is the response body for a dispatch call. Audiences that were never
// attempted stay null.
type Summary struct {
	Success             bool      `json:"success"`
	AdminEmail          *Delivery `json:"adminEmail"`
	CustomerEmail       *Delivery `json:"customerEmail"`
	ProviderEmail       *Delivery `json:"providerEmail"`
	PDFGenerated        bool      `json:"pdfGenerated"`
	ProviderEmailsCount int       `json:"providerEmailsCount"`
	Status              Status    `json:"status"`
}
