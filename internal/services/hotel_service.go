package services

import (
	"context"
	"strings"

	"hotel-backend/internal/models"
	"hotel-backend/internal/store"
	"hotel-backend/internal/timeutil"
)

type HotelService struct {
	Hotels store.HotelStore
}

func NewHotelService(hotels store.HotelStore) *HotelService {
	return &HotelService{Hotels: hotels}
}

func (s *HotelService) CreateHotel(ctx context.Context, req *models.CreateHotelRequest) (*models.Hotel, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, validationf("hotel name is required")
	}
	if strings.TrimSpace(req.City) == "" {
		return nil, validationf("hotel city is required")
	}
	now := timeutil.Now()
	hotel := &models.Hotel{
		ID:        newID(hotelIDPrefix),
		Name:      strings.TrimSpace(req.Name),
		City:      strings.TrimSpace(req.City),
		TagStatus: models.NextTag("", models.EventCreate),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Hotels.Create(ctx, hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}

func (s *HotelService) GetHotel(ctx context.Context, id string) (*models.Hotel, error) {
	return s.Hotels.Get(ctx, id)
}

func (s *HotelService) ListHotels(ctx context.Context, includeDeleted bool) ([]*models.Hotel, error) {
	hotels, err := s.Hotels.List(ctx)
	if err != nil {
		return nil, err
	}
	if includeDeleted {
		return hotels, nil
	}
	visible := make([]*models.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if !h.TagStatus.IsDeleted() {
			visible = append(visible, h)
		}
	}
	return visible, nil
}

func (s *HotelService) UpdateHotel(ctx context.Context, id string, req *models.UpdateHotelRequest) (*models.Hotel, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, validationf("hotel name is required")
	}
	hotel, err := s.Hotels.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	hotel.Name = strings.TrimSpace(req.Name)
	if city := strings.TrimSpace(req.City); city != "" {
		hotel.City = city
	}
	hotel.TagStatus = models.NextTag(hotel.TagStatus, models.EventUpdate)
	hotel.UpdatedAt = timeutil.Now()
	if err := s.Hotels.Update(ctx, hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}

func (s *HotelService) DeleteHotel(ctx context.Context, id string) error {
	hotel, err := s.Hotels.Get(ctx, id)
	if err != nil {
		return err
	}
	if hotel.TagStatus.IsDeleted() {
		return nil
	}
	hotel.TagStatus = models.NextTag(hotel.TagStatus, models.EventDelete)
	hotel.UpdatedAt = timeutil.Now()
	return s.Hotels.Update(ctx, hotel)
}
