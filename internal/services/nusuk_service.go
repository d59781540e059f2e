package services

import (
	"context"
	"strings"

	"hotel-backend/internal/models"
	"hotel-backend/internal/store"
	"hotel-backend/internal/timeutil"
)

type NusukService struct {
	Nusuk        store.NusukStore
	Reservations store.ReservationStore
}

func NewNusukService(nusuk store.NusukStore, reservations store.ReservationStore) *NusukService {
	return &NusukService{Nusuk: nusuk, Reservations: reservations}
}

// SetAgreement upserts the Nusuk agreement for a reservation. The reservation
// must exist; the agreement is keyed by reservation number, one per
// reservation.
func (s *NusukService) SetAgreement(ctx context.Context, reservationNo string, req *models.UpsertNusukRequest) (*models.NusukAgreement, error) {
	reservationNo = strings.TrimSpace(reservationNo)
	if reservationNo == "" {
		return nil, validationf("reservation_no is required")
	}
	if !models.ValidNusukStatus(req.Status) {
		return nil, validationf("unknown nusuk status %q", req.Status)
	}
	if _, err := s.Reservations.Get(ctx, reservationNo); err != nil {
		return nil, err
	}

	agreement := &models.NusukAgreement{
		NusukNo:       strings.TrimSpace(req.NusukNo),
		ReservationNo: reservationNo,
		Status:        req.Status,
		UpdatedAt:     timeutil.Now(),
	}
	if err := s.Nusuk.Upsert(ctx, agreement); err != nil {
		return nil, err
	}
	return agreement, nil
}

func (s *NusukService) GetAgreement(ctx context.Context, reservationNo string) (*models.NusukAgreement, error) {
	return s.Nusuk.GetByReservation(ctx, reservationNo)
}

func (s *NusukService) ListAgreements(ctx context.Context) ([]*models.NusukAgreement, error) {
	return s.Nusuk.List(ctx)
}
