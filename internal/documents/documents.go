// Package documents renders the PDF paperwork the back office sends out:
// booking confirmation letters, payment receipts and hotel vouchers.
package documents

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"

	"hotel-backend/internal/models"
	"hotel-backend/internal/pricing"
	"hotel-backend/internal/timeutil"
)

const companyName = "Hotel Reservations Back Office"

func newPDF(title string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, companyName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(190, 8, title, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)
	return pdf
}

func sectionHeader(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, title, "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 11)
}

func infoRow(pdf *gofpdf.Fpdf, left, right string) {
	pdf.CellFormat(95, 7, left, "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, right, "RB", 1, "L", false, 0, "")
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func roomTable(pdf *gofpdf.Fpdf, lines []pricing.RoomLine, nights int) {
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(55, 7, "Room Type", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Rate/Night", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Nights", "1", 0, "C", true, 0, "")
	pdf.CellFormat(50, 7, "Line Total", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, l := range lines {
		lineTotal := pricing.Round2(float64(l.Qty) * l.Rate * float64(nights))
		pdf.CellFormat(55, 6, l.RoomType, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%d", l.Qty), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%.2f", l.Rate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%d", nights), "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 6, fmt.Sprintf("%.2f SAR", lineTotal), "1", 1, "R", false, 0, "")
	}
}

// ConfirmationLetter renders the booking confirmation sent to the client.
func ConfirmationLetter(res *models.EnrichedReservation) ([]byte, error) {
	pdf := newPDF("Booking Confirmation")

	sectionHeader(pdf, "Reservation")
	infoRow(pdf, fmt.Sprintf("Reservation No: %s", res.ReservationNo), fmt.Sprintf("Status: %s", res.StatusBooking))
	infoRow(pdf, fmt.Sprintf("Client: %s", res.ClientName), fmt.Sprintf("Hotel: %s (%s)", res.HotelName, res.HotelCity))
	infoRow(pdf, fmt.Sprintf("Check-in: %s", res.CheckIn), fmt.Sprintf("Check-out: %s", res.CheckOut))
	infoRow(pdf, fmt.Sprintf("Nights: %d", res.StayNights), fmt.Sprintf("Meal Plan: %s", res.MealPlan))
	pdf.Ln(5)

	sectionHeader(pdf, "Rooms")
	roomTable(pdf, res.RoomLines(), res.StayNights)
	pdf.Ln(5)

	sectionHeader(pdf, "Financials")
	infoRow(pdf, fmt.Sprintf("Subtotal: %.2f SAR", res.Subtotal), fmt.Sprintf("VAT: %.2f SAR", res.VAT))
	infoRow(pdf, fmt.Sprintf("Total: %.2f SAR", res.TotalAmount), fmt.Sprintf("Paid: %.2f SAR", res.PaidAmount))
	infoRow(pdf, fmt.Sprintf("Remaining: %.2f SAR", res.Remaining), fmt.Sprintf("Payment Status: %s", res.StatusPayment))

	return output(pdf)
}

// PaymentReceipt renders a receipt for one recorded payment.
func PaymentReceipt(payment *models.Payment, clientName string) ([]byte, error) {
	pdf := newPDF("Payment Receipt")

	sectionHeader(pdf, "Payment")
	infoRow(pdf, fmt.Sprintf("Receipt No: %s", payment.ID), fmt.Sprintf("Date: %s", payment.Date))
	infoRow(pdf, fmt.Sprintf("Client: %s", clientName), fmt.Sprintf("Reservation: %s", payment.ReservationNo))
	infoRow(pdf, fmt.Sprintf("Amount: %.2f", payment.Amount), fmt.Sprintf("Exchange Rate: %.4f", payment.ExchangeRate))
	infoRow(pdf, fmt.Sprintf("Amount (SAR): %.2f", payment.AmountSAR), fmt.Sprintf("Detail: %s", payment.Detail))

	return output(pdf)
}

// Voucher renders the hotel voucher presented at check-in. It carries no
// financial information.
func Voucher(res *models.EnrichedReservation) ([]byte, error) {
	pdf := newPDF("Hotel Voucher")

	sectionHeader(pdf, "Stay")
	infoRow(pdf, fmt.Sprintf("Voucher No: %s", res.ReservationNo), fmt.Sprintf("Guest / Group: %s", res.ClientName))
	infoRow(pdf, fmt.Sprintf("Hotel: %s", res.HotelName), fmt.Sprintf("City: %s", res.HotelCity))
	infoRow(pdf, fmt.Sprintf("Check-in: %s", res.CheckIn), fmt.Sprintf("Check-out: %s", res.CheckOut))
	infoRow(pdf, fmt.Sprintf("Nights: %d", res.StayNights), fmt.Sprintf("Meal Plan: %s", res.MealPlan))
	pdf.Ln(5)

	sectionHeader(pdf, "Rooms")
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(95, 7, "Room Type", "1", 0, "C", true, 0, "")
	pdf.CellFormat(95, 7, "Qty", "1", 1, "C", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, l := range res.RoomLines() {
		pdf.CellFormat(95, 6, l.RoomType, "1", 0, "L", false, 0, "")
		pdf.CellFormat(95, 6, fmt.Sprintf("%d", l.Qty), "1", 1, "C", false, 0, "")
	}

	return output(pdf)
}
