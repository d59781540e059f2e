package services

import (
	"context"
	"strings"

	"hotel-backend/internal/models"
	"hotel-backend/internal/pricing"
	"hotel-backend/internal/store"
	"hotel-backend/internal/timeutil"
)

type SupplyService struct {
	Supplies store.SupplyStore
}

func NewSupplyService(supplies store.SupplyStore) *SupplyService {
	return &SupplyService{Supplies: supplies}
}

// CreateSupply records a vendor confirmation. The total uses the same stay
// formula as reservations: nights times the sum of qty times rate.
func (s *SupplyService) CreateSupply(ctx context.Context, req *models.CreateSupplyRequest) (*models.Supply, error) {
	if strings.TrimSpace(req.Vendor) == "" {
		return nil, validationf("vendor is required")
	}
	nights, err := pricing.ValidateStayNights(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, validationf("%v", err)
	}

	now := timeutil.Now()
	supply := &models.Supply{
		ID:             newID(supplyIDPrefix),
		Vendor:         strings.TrimSpace(req.Vendor),
		ReservationNo:  strings.TrimSpace(req.ReservationNo),
		HotelID:        strings.TrimSpace(req.HotelID),
		CheckIn:        req.CheckIn,
		CheckOut:       req.CheckOut,
		StayNights:     nights,
		Meal:           req.Meal,
		RoomDoubleQty:  req.RoomDoubleQty,
		RoomDoubleRate: req.RoomDoubleRate,
		RoomTripleQty:  req.RoomTripleQty,
		RoomTripleRate: req.RoomTripleRate,
		RoomQuadQty:    req.RoomQuadQty,
		RoomQuadRate:   req.RoomQuadRate,
		RoomExtraQty:   req.RoomExtraQty,
		RoomExtraRate:  req.RoomExtraRate,
		TagStatus:      models.NextTag("", models.EventCreate),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	total, err := pricing.ComputeTotal(supply.RoomLines(), nights)
	if err != nil {
		return nil, validationf("%v", err)
	}
	supply.TotalAmount = total

	if err := s.Supplies.Create(ctx, supply); err != nil {
		return nil, err
	}
	return supply, nil
}

func (s *SupplyService) UpdateSupply(ctx context.Context, id string, req *models.UpdateSupplyRequest) (*models.Supply, error) {
	supply, err := s.Supplies.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	nights, err := pricing.ValidateStayNights(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, validationf("%v", err)
	}

	if req.Vendor != "" {
		supply.Vendor = strings.TrimSpace(req.Vendor)
	}
	supply.ReservationNo = strings.TrimSpace(req.ReservationNo)
	supply.HotelID = strings.TrimSpace(req.HotelID)
	supply.CheckIn = req.CheckIn
	supply.CheckOut = req.CheckOut
	supply.StayNights = nights
	supply.Meal = req.Meal
	supply.RoomDoubleQty = req.RoomDoubleQty
	supply.RoomDoubleRate = req.RoomDoubleRate
	supply.RoomTripleQty = req.RoomTripleQty
	supply.RoomTripleRate = req.RoomTripleRate
	supply.RoomQuadQty = req.RoomQuadQty
	supply.RoomQuadRate = req.RoomQuadRate
	supply.RoomExtraQty = req.RoomExtraQty
	supply.RoomExtraRate = req.RoomExtraRate

	total, err := pricing.ComputeTotal(supply.RoomLines(), nights)
	if err != nil {
		return nil, validationf("%v", err)
	}
	supply.TotalAmount = total

	supply.TagStatus = models.NextTag(supply.TagStatus, models.EventUpdate)
	supply.UpdatedAt = timeutil.Now()
	if err := s.Supplies.Update(ctx, supply); err != nil {
		return nil, err
	}
	return supply, nil
}

// AttachProof stores the uploaded confirmation document's public URL.
func (s *SupplyService) AttachProof(ctx context.Context, id, fileURL string) (*models.Supply, error) {
	supply, err := s.Supplies.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	supply.ProofFileURL = fileURL
	supply.TagStatus = models.NextTag(supply.TagStatus, models.EventUpdate)
	supply.UpdatedAt = timeutil.Now()
	if err := s.Supplies.Update(ctx, supply); err != nil {
		return nil, err
	}
	return supply, nil
}

func (s *SupplyService) GetSupply(ctx context.Context, id string) (*models.Supply, error) {
	return s.Supplies.Get(ctx, id)
}

func (s *SupplyService) ListSupplies(ctx context.Context, includeDeleted bool) ([]*models.Supply, error) {
	supplies, err := s.Supplies.List(ctx)
	if err != nil {
		return nil, err
	}
	if includeDeleted {
		return supplies, nil
	}
	visible := make([]*models.Supply, 0, len(supplies))
	for _, sp := range supplies {
		if sp.TagStatus.IsDeleted() {
			continue
		}
		visible = append(visible, sp)
	}
	return visible, nil
}

func (s *SupplyService) DeleteSupply(ctx context.Context, id string) error {
	supply, err := s.Supplies.Get(ctx, id)
	if err != nil {
		return err
	}
	if supply.TagStatus.IsDeleted() {
		return nil
	}
	supply.TagStatus = models.NextTag(supply.TagStatus, models.EventDelete)
	supply.UpdatedAt = timeutil.Now()
	return s.Supplies.Update(ctx, supply)
}
