// Package pricing holds the reservation financial arithmetic: stay-night
// calculation, multi-room totals, VAT backout and payment application.
// Everything here is pure; persistence never leaks in.
package pricing

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Room types priced on a reservation or supply entry.
const (
	RoomDouble = "double"
	RoomTriple = "triple"
	RoomQuad   = "quad"
	RoomExtra  = "extra"
)

// DefaultVATRate is the KSA standard VAT rate. Stored totals are always
// VAT-inclusive gross; the backout is presentational only.
const DefaultVATRate = 0.15

// DateLayout is the wire format for all business dates.
const DateLayout = "2006-01-02"

var (
	// ErrInvalidDateRange is returned on the write path when checkout is not
	// strictly after checkin.
	ErrInvalidDateRange = errors.New("checkout must be after checkin")
	// ErrNegativeRoomLine is returned when a quantity or rate is negative.
	ErrNegativeRoomLine = errors.New("room quantity and rate must not be negative")
)

// RoomLine is one priced room type on a reservation.
type RoomLine struct {
	RoomType string  `json:"room_type"`
	Qty      int     `json:"qty"`
	Rate     float64 `json:"rate"`
}

// StayNights returns the whole-day difference between checkin and checkout.
// This is the read-path variant: invalid or unparseable dates yield 0 rather
// than an error, so a malformed stored row never breaks a listing.
func StayNights(checkin, checkout string) int {
	in, err := time.Parse(DateLayout, checkin)
	if err != nil {
		return 0
	}
	out, err := time.Parse(DateLayout, checkout)
	if err != nil {
		return 0
	}
	nights := int(out.Sub(in).Hours() / 24)
	if nights < 0 {
		return 0
	}
	return nights
}

// ValidateStayNights is the write-path variant: it parses both dates and
// rejects a non-positive night count.
func ValidateStayNights(checkin, checkout string) (int, error) {
	in, err := time.Parse(DateLayout, checkin)
	if err != nil {
		return 0, fmt.Errorf("invalid checkin date %q: %w", checkin, err)
	}
	out, err := time.Parse(DateLayout, checkout)
	if err != nil {
		return 0, fmt.Errorf("invalid checkout date %q: %w", checkout, err)
	}
	nights := int(out.Sub(in).Hours() / 24)
	if nights <= 0 {
		return 0, ErrInvalidDateRange
	}
	return nights, nil
}

// ComputeTotal returns nights × Σ(qty × rate) over the given room lines.
// Negative quantities or rates are rejected; zero-quantity lines contribute
// nothing.
func ComputeTotal(lines []RoomLine, nights int) (float64, error) {
	if nights < 0 {
		return 0, ErrInvalidDateRange
	}
	var perNight float64
	for _, l := range lines {
		if l.Qty < 0 || l.Rate < 0 {
			return 0, fmt.Errorf("%w: %s qty=%d rate=%.2f", ErrNegativeRoomLine, l.RoomType, l.Qty, l.Rate)
		}
		perNight += float64(l.Qty) * l.Rate
	}
	return Round2(perNight * float64(nights)), nil
}

// BackoutVAT splits a VAT-inclusive gross total into (subtotal, vat).
// subtotal = total / (1 + rate); vat = total - subtotal. Both are rounded to
// 2 decimals; the pair sums back to the total within a cent.
func BackoutVAT(total, rate float64) (subtotal, vat float64) {
	if rate <= 0 {
		return Round2(total), 0
	}
	subtotal = Round2(total / (1 + rate))
	vat = Round2(total - subtotal)
	return subtotal, vat
}

// Round2 rounds to 2 decimal places, the precision of all stored amounts.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
