package sheets

import (
	"context"
	"log"
	"strings"

	"hotel-backend/internal/models"
	"hotel-backend/internal/store"
)

// SupplySheet stores vendor confirmations. Supplies are addressed by their
// generated id, never by row position; the row ordinal stays private to the
// locate step within a single call.
type SupplySheet struct {
	*Store
}

func (s *SupplySheet) Create(ctx context.Context, supply *models.Supply) error {
	return s.appendRow(ctx, tabSupplies, encodeSupply(supply))
}

func (s *SupplySheet) locate(ctx context.Context, id string) (*models.Supply, int, error) {
	rows, err := s.rows(ctx, tabSupplies)
	if err != nil {
		return nil, 0, err
	}
	key := strings.TrimSpace(id)
	for i, row := range rows {
		supply, err := decodeSupply(row)
		if err != nil {
			continue
		}
		if supply.ID == key {
			return supply, sheetRow(i), nil
		}
	}
	return nil, 0, store.ErrNotFound
}

func (s *SupplySheet) Get(ctx context.Context, id string) (*models.Supply, error) {
	supply, _, err := s.locate(ctx, id)
	return supply, err
}

func (s *SupplySheet) List(ctx context.Context) ([]*models.Supply, error) {
	rows, err := s.rows(ctx, tabSupplies)
	if err != nil {
		return nil, err
	}
	var supplies []*models.Supply
	for i, row := range rows {
		supply, err := decodeSupply(row)
		if err != nil {
			log.Printf("[Sheets] Skipping %s row %d: %v", tabSupplies, sheetRow(i), err)
			continue
		}
		supplies = append(supplies, supply)
	}
	return supplies, nil
}

func (s *SupplySheet) Update(ctx context.Context, supply *models.Supply) error {
	_, rowNum, err := s.locate(ctx, supply.ID)
	if err != nil {
		return err
	}
	return s.overwriteRow(ctx, tabSupplies, rowNum, encodeSupply(supply))
}
