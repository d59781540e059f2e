package services

import (
	"context"

	"hotel-backend/internal/pricing"
)

// FinancialSummary aggregates the active reservations into the dashboard
// headline figures.
type FinancialSummary struct {
	Reservations int                `json:"reservations"`
	TotalAmount  float64            `json:"total_amount"`
	PaidAmount   float64            `json:"paid_amount"`
	Remaining    float64            `json:"remaining"`
	ByStatus     map[string]int     `json:"by_payment_status"`
	ByBooking    map[string]int     `json:"by_booking_status"`
	ByCity       map[string]float64 `json:"total_by_city"`
}

// Summarize folds the non-deleted reservations into one report. Soft-deleted
// rows are excluded the same way listings exclude them.
func (s *ReservationService) Summarize(ctx context.Context) (*FinancialSummary, error) {
	reservations, err := s.Reservations.List(ctx)
	if err != nil {
		return nil, err
	}
	allHotels, err := s.Hotels.List(ctx)
	if err != nil {
		return nil, err
	}
	hotels := hotelIndex(allHotels)

	summary := &FinancialSummary{
		ByStatus:  map[string]int{},
		ByBooking: map[string]int{},
		ByCity:    map[string]float64{},
	}
	for _, res := range reservations {
		if res.TagStatus.IsDeleted() {
			continue
		}
		summary.Reservations++
		summary.TotalAmount += res.TotalAmount
		summary.PaidAmount += res.PaidAmount
		summary.ByStatus[res.StatusPayment]++
		summary.ByBooking[res.StatusBooking]++

		city := "Unknown"
		if h, ok := hotels[res.HotelID]; ok {
			city = h.City
		}
		summary.ByCity[city] = pricing.Round2(summary.ByCity[city] + res.TotalAmount)
	}
	summary.TotalAmount = pricing.Round2(summary.TotalAmount)
	summary.PaidAmount = pricing.Round2(summary.PaidAmount)
	summary.Remaining = pricing.Round2(summary.TotalAmount - summary.PaidAmount)
	if summary.Remaining < 0 {
		summary.Remaining = 0
	}
	return summary, nil
}
