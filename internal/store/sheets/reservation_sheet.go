package sheets

import (
	"context"
	"log"
	"strings"

	"hotel-backend/internal/models"
	"hotel-backend/internal/store"
)

type ReservationSheet struct {
	*Store
}

func (s *ReservationSheet) Create(ctx context.Context, res *models.Reservation) error {
	return s.appendRow(ctx, tabReservations, encodeReservation(res))
}

func (s *ReservationSheet) locate(ctx context.Context, reservationNo string) (*models.Reservation, int, error) {
	rows, err := s.rows(ctx, tabReservations)
	if err != nil {
		return nil, 0, err
	}
	key := strings.TrimSpace(reservationNo)
	for i, row := range rows {
		res, err := decodeReservation(row)
		if err != nil {
			continue
		}
		if res.ReservationNo == key {
			return res, sheetRow(i), nil
		}
	}
	return nil, 0, store.ErrNotFound
}

func (s *ReservationSheet) Get(ctx context.Context, reservationNo string) (*models.Reservation, error) {
	res, _, err := s.locate(ctx, reservationNo)
	return res, err
}

func (s *ReservationSheet) List(ctx context.Context) ([]*models.Reservation, error) {
	rows, err := s.rows(ctx, tabReservations)
	if err != nil {
		return nil, err
	}
	var reservations []*models.Reservation
	for i, row := range rows {
		res, err := decodeReservation(row)
		if err != nil {
			log.Printf("[Sheets] Skipping %s row %d: %v", tabReservations, sheetRow(i), err)
			continue
		}
		reservations = append(reservations, res)
	}
	return reservations, nil
}

func (s *ReservationSheet) Update(ctx context.Context, res *models.Reservation) error {
	_, rowNum, err := s.locate(ctx, res.ReservationNo)
	if err != nil {
		return err
	}
	return s.overwriteRow(ctx, tabReservations, rowNum, encodeReservation(res))
}
