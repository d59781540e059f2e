package services

import (
	"hotel-backend/internal/models"
	"hotel-backend/internal/pricing"
)

// Placeholder names substituted when a foreign key does not resolve.
// Enrichment is a best-effort lookup and never fails a listing.
const (
	UnknownClient = "Unknown Client"
	UnknownHotel  = "Unknown Hotel"
)

// clientIndex maps client id to record for enrichment lookups.
func clientIndex(clients []*models.Client) map[string]*models.Client {
	idx := make(map[string]*models.Client, len(clients))
	for _, c := range clients {
		idx[c.ID] = c
	}
	return idx
}

func hotelIndex(hotels []*models.Hotel) map[string]*models.Hotel {
	idx := make(map[string]*models.Hotel, len(hotels))
	for _, h := range hotels {
		idx[h.ID] = h
	}
	return idx
}

// enrichReservation denormalizes a reservation with client and hotel names
// and the derived financial fields the dashboard and documents need.
func enrichReservation(res *models.Reservation, clients map[string]*models.Client, hotels map[string]*models.Hotel, vatRate float64) *models.EnrichedReservation {
	e := &models.EnrichedReservation{
		Reservation: *res,
		ClientName:  UnknownClient,
		HotelName:   UnknownHotel,
	}
	if c, ok := clients[res.ClientID]; ok {
		e.ClientName = c.Name
	}
	if h, ok := hotels[res.HotelID]; ok {
		e.HotelName = h.Name
		e.HotelCity = h.City
	}
	e.Remaining = pricing.Round2(res.TotalAmount - res.PaidAmount)
	if e.Remaining < 0 {
		e.Remaining = 0
	}
	e.Subtotal, e.VAT = pricing.BackoutVAT(res.TotalAmount, vatRate)
	return e
}
