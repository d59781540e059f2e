package models

import (
	"time"

	"hotel-backend/internal/pricing"
)

// Supply is a vendor confirmation entry: what a supplier has confirmed for a
// reservation, priced with the same formula as the reservation itself.
// Supplies carry an intrinsic generated ID; row position is never identity.
type Supply struct {
	ID             string    `json:"id"`
	Vendor         string    `json:"vendor"`
	ReservationNo  string    `json:"reservation_no"`
	HotelID        string    `json:"hotel_id"`
	CheckIn        string    `json:"checkin"`
	CheckOut       string    `json:"checkout"`
	StayNights     int       `json:"stay_nights"`
	Meal           string    `json:"meal"`
	RoomDoubleQty  int       `json:"room_double_qty"`
	RoomDoubleRate float64   `json:"room_double_rate"`
	RoomTripleQty  int       `json:"room_triple_qty"`
	RoomTripleRate float64   `json:"room_triple_rate"`
	RoomQuadQty    int       `json:"room_quad_qty"`
	RoomQuadRate   float64   `json:"room_quad_rate"`
	RoomExtraQty   int       `json:"room_extra_qty"`
	RoomExtraRate  float64   `json:"room_extra_rate"`
	TotalAmount    float64   `json:"total_amount"`
	ProofFileURL   string    `json:"proof_file_url"`
	TagStatus      TagStatus `json:"tag_status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// RoomLines expands the flat room composition, skipping zero quantities.
func (s *Supply) RoomLines() []pricing.RoomLine {
	all := []pricing.RoomLine{
		{RoomType: pricing.RoomDouble, Qty: s.RoomDoubleQty, Rate: s.RoomDoubleRate},
		{RoomType: pricing.RoomTriple, Qty: s.RoomTripleQty, Rate: s.RoomTripleRate},
		{RoomType: pricing.RoomQuad, Qty: s.RoomQuadQty, Rate: s.RoomQuadRate},
		{RoomType: pricing.RoomExtra, Qty: s.RoomExtraQty, Rate: s.RoomExtraRate},
	}
	var lines []pricing.RoomLine
	for _, l := range all {
		if l.Qty > 0 {
			lines = append(lines, l)
		}
	}
	return lines
}

// CreateSupplyRequest represents the request body for creating a supply entry
type CreateSupplyRequest struct {
	Vendor         string  `json:"vendor"`
	ReservationNo  string  `json:"reservation_no"`
	HotelID        string  `json:"hotel_id"`
	CheckIn        string  `json:"checkin"`
	CheckOut       string  `json:"checkout"`
	Meal           string  `json:"meal"`
	RoomDoubleQty  int     `json:"room_double_qty"`
	RoomDoubleRate float64 `json:"room_double_rate"`
	RoomTripleQty  int     `json:"room_triple_qty"`
	RoomTripleRate float64 `json:"room_triple_rate"`
	RoomQuadQty    int     `json:"room_quad_qty"`
	RoomQuadRate   float64 `json:"room_quad_rate"`
	RoomExtraQty   int     `json:"room_extra_qty"`
	RoomExtraRate  float64 `json:"room_extra_rate"`
}

// UpdateSupplyRequest represents the request body for updating a supply entry
type UpdateSupplyRequest struct {
	Vendor         string  `json:"vendor"`
	ReservationNo  string  `json:"reservation_no"`
	HotelID        string  `json:"hotel_id"`
	CheckIn        string  `json:"checkin"`
	CheckOut       string  `json:"checkout"`
	Meal           string  `json:"meal"`
	RoomDoubleQty  int     `json:"room_double_qty"`
	RoomDoubleRate float64 `json:"room_double_rate"`
	RoomTripleQty  int     `json:"room_triple_qty"`
	RoomTripleRate float64 `json:"room_triple_rate"`
	RoomQuadQty    int     `json:"room_quad_qty"`
	RoomQuadRate   float64 `json:"room_quad_rate"`
	RoomExtraQty   int     `json:"room_extra_qty"`
	RoomExtraRate  float64 `json:"room_extra_rate"`
}
