package sheets

import (
	"context"
	"log"
	"strings"

	"hotel-backend/internal/models"
	"hotel-backend/internal/store"
)

type NusukSheet struct {
	*Store
}

func (s *NusukSheet) locate(ctx context.Context, reservationNo string) (*models.NusukAgreement, int, error) {
	rows, err := s.rows(ctx, tabNusuk)
	if err != nil {
		return nil, 0, err
	}
	key := strings.TrimSpace(reservationNo)
	for i, row := range rows {
		agreement, err := decodeNusuk(row)
		if err != nil {
			continue
		}
		if agreement.ReservationNo == key {
			return agreement, sheetRow(i), nil
		}
	}
	return nil, 0, store.ErrNotFound
}

func (s *NusukSheet) Upsert(ctx context.Context, agreement *models.NusukAgreement) error {
	_, rowNum, err := s.locate(ctx, agreement.ReservationNo)
	if err == store.ErrNotFound {
		return s.appendRow(ctx, tabNusuk, encodeNusuk(agreement))
	}
	if err != nil {
		return err
	}
	return s.overwriteRow(ctx, tabNusuk, rowNum, encodeNusuk(agreement))
}

func (s *NusukSheet) GetByReservation(ctx context.Context, reservationNo string) (*models.NusukAgreement, error) {
	agreement, _, err := s.locate(ctx, reservationNo)
	return agreement, err
}

func (s *NusukSheet) List(ctx context.Context) ([]*models.NusukAgreement, error) {
	rows, err := s.rows(ctx, tabNusuk)
	if err != nil {
		return nil, err
	}
	var agreements []*models.NusukAgreement
	for i, row := range rows {
		agreement, err := decodeNusuk(row)
		if err != nil {
			log.Printf("[Sheets] Skipping %s row %d: %v", tabNusuk, sheetRow(i), err)
			continue
		}
		agreements = append(agreements, agreement)
	}
	return agreements, nil
}
