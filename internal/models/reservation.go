package models

import (
	"time"

	"hotel-backend/internal/pricing"
)

// Booking statuses tracked on a reservation.
const (
	BookingTentative = "Tentative"
	BookingDefinite  = "Definite"
	BookingAmend     = "Amend"
	BookingUpgraded  = "Upgraded"
	BookingCancel    = "Cancel"
)

// Payment statuses tracked on a reservation.
const (
	PaymentUnpaid  = "unpaid"
	PaymentDP30    = "dp_30"
	PaymentPartial = "partial"
	PaymentFull    = "full_payment"
)

// ValidBookingStatus reports whether s is a known booking status.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingTentative, BookingDefinite, BookingAmend, BookingUpgraded, BookingCancel:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is a known payment status.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentUnpaid, PaymentDP30, PaymentPartial, PaymentFull:
		return true
	}
	return false
}

// Reservation mirrors one row of the reservations sheet. Room composition is
// kept flat (one qty/rate pair per room type) because that is the persisted
// column layout in both stores.
type Reservation struct {
	ReservationNo   string    `json:"reservation_no"`
	ClientID        string    `json:"client_id"`
	HotelID         string    `json:"hotel_id"`
	CheckIn         string    `json:"checkin"`  // YYYY-MM-DD
	CheckOut        string    `json:"checkout"` // YYYY-MM-DD
	StayNights      int       `json:"stay_nights"`
	RoomDoubleQty   int       `json:"room_double_qty"`
	RoomDoubleRate  float64   `json:"room_double_rate"`
	RoomTripleQty   int       `json:"room_triple_qty"`
	RoomTripleRate  float64   `json:"room_triple_rate"`
	RoomQuadQty     int       `json:"room_quad_qty"`
	RoomQuadRate    float64   `json:"room_quad_rate"`
	RoomExtraQty    int       `json:"room_extra_qty"`
	RoomExtraRate   float64   `json:"room_extra_rate"`
	MealPlan        string    `json:"meal_plan"`
	TotalAmount     float64   `json:"total_amount"`
	PaidAmount      float64   `json:"paid_amount"`
	StatusBooking   string    `json:"status_booking"`
	StatusPayment   string    `json:"status_payment"`
	DeadlinePayment string    `json:"deadline_payment"` // YYYY-MM-DD, optional
	TagStatus       TagStatus `json:"tag_status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// RoomLines expands the flat room composition into priced lines, skipping
// room types with zero quantity.
func (r *Reservation) RoomLines() []pricing.RoomLine {
	all := []pricing.RoomLine{
		{RoomType: pricing.RoomDouble, Qty: r.RoomDoubleQty, Rate: r.RoomDoubleRate},
		{RoomType: pricing.RoomTriple, Qty: r.RoomTripleQty, Rate: r.RoomTripleRate},
		{RoomType: pricing.RoomQuad, Qty: r.RoomQuadQty, Rate: r.RoomQuadRate},
		{RoomType: pricing.RoomExtra, Qty: r.RoomExtraQty, Rate: r.RoomExtraRate},
	}
	var lines []pricing.RoomLine
	for _, l := range all {
		if l.Qty > 0 {
			lines = append(lines, l)
		}
	}
	return lines
}

// CreateReservationRequest represents the request body for creating a reservation
type CreateReservationRequest struct {
	ReservationNo   string  `json:"reservation_no"` // optional, generated when blank
	ClientID        string  `json:"client_id"`
	HotelID         string  `json:"hotel_id"`
	CheckIn         string  `json:"checkin"`
	CheckOut        string  `json:"checkout"`
	RoomDoubleQty   int     `json:"room_double_qty"`
	RoomDoubleRate  float64 `json:"room_double_rate"`
	RoomTripleQty   int     `json:"room_triple_qty"`
	RoomTripleRate  float64 `json:"room_triple_rate"`
	RoomQuadQty     int     `json:"room_quad_qty"`
	RoomQuadRate    float64 `json:"room_quad_rate"`
	RoomExtraQty    int     `json:"room_extra_qty"`
	RoomExtraRate   float64 `json:"room_extra_rate"`
	MealPlan        string  `json:"meal_plan"`
	StatusBooking   string  `json:"status_booking"`
	DeadlinePayment string  `json:"deadline_payment"`
}

// UpdateReservationRequest represents the request body for updating a reservation.
// Financial fields are recomputed server-side; paid_amount is only ever changed
// through payment application.
type UpdateReservationRequest struct {
	ClientID        string  `json:"client_id"`
	HotelID         string  `json:"hotel_id"`
	CheckIn         string  `json:"checkin"`
	CheckOut        string  `json:"checkout"`
	RoomDoubleQty   int     `json:"room_double_qty"`
	RoomDoubleRate  float64 `json:"room_double_rate"`
	RoomTripleQty   int     `json:"room_triple_qty"`
	RoomTripleRate  float64 `json:"room_triple_rate"`
	RoomQuadQty     int     `json:"room_quad_qty"`
	RoomQuadRate    float64 `json:"room_quad_rate"`
	RoomExtraQty    int     `json:"room_extra_qty"`
	RoomExtraRate   float64 `json:"room_extra_rate"`
	MealPlan        string  `json:"meal_plan"`
	StatusBooking   string  `json:"status_booking"`
	DeadlinePayment string  `json:"deadline_payment"`
}

// EnrichedReservation is the denormalized view returned by list/detail
// endpoints and consumed by the document renderer.
type EnrichedReservation struct {
	Reservation
	ClientName string  `json:"client_name"`
	HotelName  string  `json:"hotel_name"`
	HotelCity  string  `json:"hotel_city"`
	Remaining  float64 `json:"remaining"`
	Subtotal   float64 `json:"subtotal"` // VAT backed out of total_amount
	VAT        float64 `json:"vat"`
}
