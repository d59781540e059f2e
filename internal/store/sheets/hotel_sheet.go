package sheets

import (
	"context"
	"log"
	"strings"

	"hotel-backend/internal/models"
	"hotel-backend/internal/store"
)

type HotelSheet struct {
	*Store
}

func (s *HotelSheet) Create(ctx context.Context, hotel *models.Hotel) error {
	return s.appendRow(ctx, tabHotels, encodeHotel(hotel))
}

func (s *HotelSheet) locate(ctx context.Context, id string) (*models.Hotel, int, error) {
	rows, err := s.rows(ctx, tabHotels)
	if err != nil {
		return nil, 0, err
	}
	key := strings.TrimSpace(id)
	for i, row := range rows {
		hotel, err := decodeHotel(row)
		if err != nil {
			continue
		}
		if hotel.ID == key {
			return hotel, sheetRow(i), nil
		}
	}
	return nil, 0, store.ErrNotFound
}

func (s *HotelSheet) Get(ctx context.Context, id string) (*models.Hotel, error) {
	hotel, _, err := s.locate(ctx, id)
	return hotel, err
}

func (s *HotelSheet) List(ctx context.Context) ([]*models.Hotel, error) {
	rows, err := s.rows(ctx, tabHotels)
	if err != nil {
		return nil, err
	}
	var hotels []*models.Hotel
	for i, row := range rows {
		hotel, err := decodeHotel(row)
		if err != nil {
			log.Printf("[Sheets] Skipping %s row %d: %v", tabHotels, sheetRow(i), err)
			continue
		}
		hotels = append(hotels, hotel)
	}
	return hotels, nil
}

func (s *HotelSheet) Update(ctx context.Context, hotel *models.Hotel) error {
	_, rowNum, err := s.locate(ctx, hotel.ID)
	if err != nil {
		return err
	}
	return s.overwriteRow(ctx, tabHotels, rowNum, encodeHotel(hotel))
}
