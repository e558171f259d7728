package pdf

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/go-pdf/fpdf"
)

// Branding is the fixed header/footer identity stamped on every document.
type Branding struct {
	PlatformName string
	SupportPhone string
}

// Generator lays out booking documents and serializes them to PDF bytes.
// Output is deterministic for a given input: the document creation date is
// pinned to the supplied generation timestamp.
type Generator struct {
	branding Branding
}

// NewGenerator creates a document generator with the given branding.
func NewGenerator(branding Branding) *Generator {
	if branding.PlatformName == "" {
		branding.PlatformName = "SehatPlus"
	}
	return &Generator{branding: branding}
}

// TestLine is one priced lab test row on a voucher.
type TestLine struct {
	Name            string
	OriginalPrice   float64
	DiscountedPrice float64
}

// LabVoucher holds everything printed on a lab booking voucher.
type LabVoucher struct {
	OrderID      string
	PatientName  string
	PatientPhone string
	LabName      string
	Tests        []TestLine
	GeneratedAt  time.Time
	ValidityDays int
}

// AppointmentConfirmation holds the fields for a doctor appointment document.
type AppointmentConfirmation struct {
	PatientName     string
	PatientPhone    string
	DoctorName      string
	Specialization  string
	AppointmentDate string
	AppointmentTime string
	AppointmentType string
	ConsultationFee float64
	GeneratedAt     time.Time
}

// NurseBookingConfirmation holds the fields for a nurse booking document.
type NurseBookingConfirmation struct {
	PatientName  string
	PatientPhone string
	NurseName    string
	ServiceType  string
	BookingDate  string
	BookingTime  string
	ServiceFee   float64
	Notes        string
	GeneratedAt  time.Time
}

const (
	pageWidth  = 210.0
	marginX    = 15.0
	contentW   = pageWidth - 2*marginX
	rowHeight  = 7.0
	labelWidth = 50.0
)

func (g *Generator) newDoc(title string, generatedAt time.Time) *fpdf.Fpdf {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCreationDate(generatedAt.UTC())
	doc.SetTitle(title, false)
	doc.SetAutoPageBreak(true, 20)
	doc.SetMargins(marginX, 15, marginX)
	doc.AddPage()

	// Branding band.
	doc.SetFillColor(13, 110, 253)
	doc.Rect(0, 0, pageWidth, 24, "F")
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 18)
	doc.SetXY(marginX, 6)
	doc.CellFormat(contentW, 8, g.branding.PlatformName, "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.SetX(marginX)
	doc.CellFormat(contentW, 6, title, "", 1, "L", false, 0, "")

	doc.SetTextColor(33, 37, 41)
	doc.SetY(30)
	doc.SetFont("Helvetica", "", 9)
	doc.CellFormat(contentW, 5, "Generated: "+generatedAt.UTC().Format("02 Jan 2006 15:04 MST"), "", 1, "R", false, 0, "")
	doc.Ln(2)
	return doc
}

func (g *Generator) fieldRow(doc *fpdf.Fpdf, label, value string) {
	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(labelWidth, rowHeight, label, "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.MultiCell(contentW-labelWidth, rowHeight, orNA(value), "", "L", false)
}

func (g *Generator) sectionTitle(doc *fpdf.Fpdf, title string) {
	doc.Ln(2)
	doc.SetFont("Helvetica", "B", 12)
	doc.SetTextColor(13, 110, 253)
	doc.CellFormat(contentW, rowHeight, title, "", 1, "L", false, 0, "")
	doc.SetTextColor(33, 37, 41)
	doc.SetDrawColor(222, 226, 230)
	doc.Line(marginX, doc.GetY(), marginX+contentW, doc.GetY())
	doc.Ln(1)
}

func (g *Generator) instructions(doc *fpdf.Fpdf, lines []string) {
	g.sectionTitle(doc, "Instructions")
	doc.SetFont("Helvetica", "", 9)
	for _, line := range lines {
		doc.MultiCell(contentW, 5, "- "+line, "", "L", false)
	}
	doc.Ln(4)
	doc.SetFont("Helvetica", "I", 8)
	doc.SetTextColor(108, 117, 125)
	doc.MultiCell(contentW, 4, fmt.Sprintf("This document was issued by %s. For assistance call %s.",
		g.branding.PlatformName, orNA(g.branding.SupportPhone)), "", "C", false)
}

// LabVoucher renders the lab booking voucher with the priced test table.
func (g *Generator) LabVoucher(v LabVoucher) ([]byte, error) {
	doc := g.newDoc("Lab Booking Voucher", v.GeneratedAt)

	g.sectionTitle(doc, "Booking Details")
	g.fieldRow(doc, "Order ID", v.OrderID)
	g.fieldRow(doc, "Patient Name", v.PatientName)
	g.fieldRow(doc, "Patient Phone", v.PatientPhone)
	g.fieldRow(doc, "Laboratory", v.LabName)

	g.sectionTitle(doc, "Tests")
	doc.SetFont("Helvetica", "B", 9)
	doc.SetFillColor(233, 236, 239)
	doc.CellFormat(80, rowHeight, "Test", "1", 0, "L", true, 0, "")
	doc.CellFormat(35, rowHeight, "Original Price", "1", 0, "R", true, 0, "")
	doc.CellFormat(25, rowHeight, "Discount", "1", 0, "R", true, 0, "")
	doc.CellFormat(40, rowHeight, "Payable", "1", 1, "R", true, 0, "")

	doc.SetFont("Helvetica", "", 9)
	var totalOriginal, totalPayable float64
	for _, t := range v.Tests {
		totalOriginal += t.OriginalPrice
		totalPayable += t.DiscountedPrice
		doc.CellFormat(80, rowHeight, orNA(t.Name), "1", 0, "L", false, 0, "")
		doc.CellFormat(35, rowHeight, rupees(t.OriginalPrice), "1", 0, "R", false, 0, "")
		doc.CellFormat(25, rowHeight, discountPct(t.OriginalPrice, t.DiscountedPrice), "1", 0, "R", false, 0, "")
		doc.CellFormat(40, rowHeight, rupees(t.DiscountedPrice), "1", 1, "R", false, 0, "")
	}
	doc.SetFont("Helvetica", "B", 9)
	doc.CellFormat(80, rowHeight, "Total", "1", 0, "L", true, 0, "")
	doc.CellFormat(35, rowHeight, rupees(totalOriginal), "1", 0, "R", true, 0, "")
	doc.CellFormat(25, rowHeight, "", "1", 0, "R", true, 0, "")
	doc.CellFormat(40, rowHeight, rupees(totalPayable), "1", 1, "R", true, 0, "")
	doc.Ln(2)

	validUntil := v.GeneratedAt.UTC().AddDate(0, 0, v.ValidityDays)
	g.fieldRow(doc, "Valid Until", validUntil.Format("02 Jan 2006"))

	g.instructions(doc, []string{
		"Present this voucher at the laboratory reception before sample collection.",
		"Carry the original patient ID used at booking time.",
		"Fasting requirements, if any, will be shared by the laboratory.",
		fmt.Sprintf("The voucher expires %d days after issue.", v.ValidityDays),
	})
	return output(doc)
}

// AppointmentConfirmation renders the doctor appointment confirmation.
func (g *Generator) AppointmentConfirmation(a AppointmentConfirmation) ([]byte, error) {
	doc := g.newDoc("Appointment Confirmation", a.GeneratedAt)

	g.sectionTitle(doc, "Patient")
	g.fieldRow(doc, "Name", a.PatientName)
	g.fieldRow(doc, "Phone", a.PatientPhone)

	g.sectionTitle(doc, "Doctor")
	g.fieldRow(doc, "Name", a.DoctorName)
	g.fieldRow(doc, "Specialization", a.Specialization)

	g.sectionTitle(doc, "Appointment")
	g.fieldRow(doc, "Date", a.AppointmentDate)
	g.fieldRow(doc, "Time", a.AppointmentTime)
	g.fieldRow(doc, "Type", a.AppointmentType)
	g.fieldRow(doc, "Consultation Fee", rupees(a.ConsultationFee))

	g.instructions(doc, []string{
		"Arrive 15 minutes before the scheduled time.",
		"Bring previous reports and the medicine list, if any.",
		"Contact support to reschedule at least 4 hours in advance.",
	})
	return output(doc)
}

// NurseBookingConfirmation renders the nurse booking confirmation.
func (g *Generator) NurseBookingConfirmation(n NurseBookingConfirmation) ([]byte, error) {
	doc := g.newDoc("Nurse Booking Confirmation", n.GeneratedAt)

	g.sectionTitle(doc, "Patient")
	g.fieldRow(doc, "Name", n.PatientName)
	g.fieldRow(doc, "Phone", n.PatientPhone)

	g.sectionTitle(doc, "Nurse")
	g.fieldRow(doc, "Name", n.NurseName)

	g.sectionTitle(doc, "Booking")
	g.fieldRow(doc, "Service", n.ServiceType)
	g.fieldRow(doc, "Date", n.BookingDate)
	g.fieldRow(doc, "Time", n.BookingTime)
	g.fieldRow(doc, "Service Fee", rupees(n.ServiceFee))

	if n.Notes != "" {
		g.sectionTitle(doc, "Notes")
		doc.SetFont("Helvetica", "", 10)
		doc.MultiCell(contentW, 5, n.Notes, "", "L", false)
	}

	g.instructions(doc, []string{
		"The nurse will present a platform ID card on arrival.",
		"Keep the care area accessible and prescriptions at hand.",
		"Contact support to reschedule at least 4 hours in advance.",
	})
	return output(doc)
}

func output(doc *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render failed: %w", err)
	}
	return buf.Bytes(), nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func rupees(v float64) string {
	return fmt.Sprintf("Rs. %.0f", v)
}

// discountPct derives the per-line discount from the original and payable
// prices; the order-level discount percentage on the request is not used here.
func discountPct(original, discounted float64) string {
	if original <= 0 {
		return "0%"
	}
	pct := math.Round((original - discounted) / original * 100)
	return fmt.Sprintf("%.0f%%", pct)
}
