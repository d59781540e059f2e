package services

import (
	"context"
	"strings"

	"hotel-backend/internal/models"
	"hotel-backend/internal/pricing"
	"hotel-backend/internal/store"
	"hotel-backend/internal/timeutil"
)

type ReservationService struct {
	Reservations store.ReservationStore
	Clients      store.ClientStore
	Hotels       store.HotelStore
	VATRate      float64
}

func NewReservationService(reservations store.ReservationStore, clients store.ClientStore, hotels store.HotelStore, vatRate float64) *ReservationService {
	if vatRate <= 0 {
		vatRate = pricing.DefaultVATRate
	}
	return &ReservationService{
		Reservations: reservations,
		Clients:      clients,
		Hotels:       hotels,
		VATRate:      vatRate,
	}
}

// CreateReservation validates the stay window, computes the derived financial
// fields and persists the record. Referencing a soft-deleted client or hotel
// is allowed; the tag is advisory only.
func (s *ReservationService) CreateReservation(ctx context.Context, req *models.CreateReservationRequest) (*models.Reservation, error) {
	if strings.TrimSpace(req.ClientID) == "" {
		return nil, validationf("client_id is required")
	}
	if strings.TrimSpace(req.HotelID) == "" {
		return nil, validationf("hotel_id is required")
	}
	nights, err := pricing.ValidateStayNights(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, validationf("%v", err)
	}

	statusBooking := req.StatusBooking
	if statusBooking == "" {
		statusBooking = models.BookingTentative
	}
	if !models.ValidBookingStatus(statusBooking) {
		return nil, validationf("unknown booking status %q", statusBooking)
	}

	now := timeutil.Now()
	res := &models.Reservation{
		ReservationNo:   strings.TrimSpace(req.ReservationNo),
		ClientID:        strings.TrimSpace(req.ClientID),
		HotelID:         strings.TrimSpace(req.HotelID),
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		StayNights:      nights,
		RoomDoubleQty:   req.RoomDoubleQty,
		RoomDoubleRate:  req.RoomDoubleRate,
		RoomTripleQty:   req.RoomTripleQty,
		RoomTripleRate:  req.RoomTripleRate,
		RoomQuadQty:     req.RoomQuadQty,
		RoomQuadRate:    req.RoomQuadRate,
		RoomExtraQty:    req.RoomExtraQty,
		RoomExtraRate:   req.RoomExtraRate,
		MealPlan:        req.MealPlan,
		PaidAmount:      0,
		StatusBooking:   statusBooking,
		StatusPayment:   models.PaymentUnpaid,
		DeadlinePayment: req.DeadlinePayment,
		TagStatus:       models.NextTag("", models.EventCreate),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if res.ReservationNo == "" {
		res.ReservationNo = newReservationNo()
	}

	total, err := pricing.ComputeTotal(res.RoomLines(), nights)
	if err != nil {
		return nil, validationf("%v", err)
	}
	res.TotalAmount = total

	if err := s.Reservations.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// UpdateReservation recomputes nights and total from the new inputs while
// preserving the accumulated paid amount and payment status.
func (s *ReservationService) UpdateReservation(ctx context.Context, reservationNo string, req *models.UpdateReservationRequest) (*models.Reservation, error) {
	res, err := s.Reservations.Get(ctx, reservationNo)
	if err != nil {
		return nil, err
	}

	nights, err := pricing.ValidateStayNights(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, validationf("%v", err)
	}
	if req.StatusBooking != "" && !models.ValidBookingStatus(req.StatusBooking) {
		return nil, validationf("unknown booking status %q", req.StatusBooking)
	}

	if req.ClientID != "" {
		res.ClientID = strings.TrimSpace(req.ClientID)
	}
	if req.HotelID != "" {
		res.HotelID = strings.TrimSpace(req.HotelID)
	}
	res.CheckIn = req.CheckIn
	res.CheckOut = req.CheckOut
	res.StayNights = nights
	res.RoomDoubleQty = req.RoomDoubleQty
	res.RoomDoubleRate = req.RoomDoubleRate
	res.RoomTripleQty = req.RoomTripleQty
	res.RoomTripleRate = req.RoomTripleRate
	res.RoomQuadQty = req.RoomQuadQty
	res.RoomQuadRate = req.RoomQuadRate
	res.RoomExtraQty = req.RoomExtraQty
	res.RoomExtraRate = req.RoomExtraRate
	res.MealPlan = req.MealPlan
	if req.StatusBooking != "" {
		res.StatusBooking = req.StatusBooking
	}
	res.DeadlinePayment = req.DeadlinePayment

	total, err := pricing.ComputeTotal(res.RoomLines(), nights)
	if err != nil {
		return nil, validationf("%v", err)
	}
	res.TotalAmount = total

	// Paid can now exceed a shrunken total; re-clamp and keep status coherent.
	if res.PaidAmount > total {
		res.PaidAmount = total
	}
	if res.PaidAmount >= total && total > 0 {
		res.StatusPayment = models.PaymentFull
	}

	res.TagStatus = models.NextTag(res.TagStatus, models.EventUpdate)
	res.UpdatedAt = timeutil.Now()
	if err := s.Reservations.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ReservationService) DeleteReservation(ctx context.Context, reservationNo string) error {
	res, err := s.Reservations.Get(ctx, reservationNo)
	if err != nil {
		return err
	}
	if res.TagStatus.IsDeleted() {
		return nil
	}
	res.TagStatus = models.NextTag(res.TagStatus, models.EventDelete)
	res.UpdatedAt = timeutil.Now()
	return s.Reservations.Update(ctx, res)
}

// GetReservation returns the enriched view of a single reservation.
func (s *ReservationService) GetReservation(ctx context.Context, reservationNo string) (*models.EnrichedReservation, error) {
	res, err := s.Reservations.Get(ctx, reservationNo)
	if err != nil {
		return nil, err
	}
	clients := map[string]*models.Client{}
	if c, err := s.Clients.Get(ctx, res.ClientID); err == nil {
		clients[c.ID] = c
	}
	hotels := map[string]*models.Hotel{}
	if h, err := s.Hotels.Get(ctx, res.HotelID); err == nil {
		hotels[h.ID] = h
	}
	return enrichReservation(res, clients, hotels, s.VATRate), nil
}

// ListReservations returns enriched reservations, excluding soft-deleted ones
// unless includeDeleted is set. Client and hotel indexes are rebuilt per call;
// nothing is cached between requests.
func (s *ReservationService) ListReservations(ctx context.Context, includeDeleted bool) ([]*models.EnrichedReservation, error) {
	reservations, err := s.Reservations.List(ctx)
	if err != nil {
		return nil, err
	}
	allClients, err := s.Clients.List(ctx)
	if err != nil {
		return nil, err
	}
	allHotels, err := s.Hotels.List(ctx)
	if err != nil {
		return nil, err
	}
	clients := clientIndex(allClients)
	hotels := hotelIndex(allHotels)

	enriched := make([]*models.EnrichedReservation, 0, len(reservations))
	for _, res := range reservations {
		if res.TagStatus.IsDeleted() && !includeDeleted {
			continue
		}
		enriched = append(enriched, enrichReservation(res, clients, hotels, s.VATRate))
	}
	return enriched, nil
}
