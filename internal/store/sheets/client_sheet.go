package sheets

import (
	"context"
	"log"
	"strings"

	"hotel-backend/internal/models"
	"hotel-backend/internal/store"
)

type ClientSheet struct {
	*Store
}

func (s *ClientSheet) Create(ctx context.Context, client *models.Client) error {
	return s.appendRow(ctx, tabClients, encodeClient(client))
}

// locate scans the tab for an exact id match and returns the record with its
// 1-based sheet row.
func (s *ClientSheet) locate(ctx context.Context, id string) (*models.Client, int, error) {
	rows, err := s.rows(ctx, tabClients)
	if err != nil {
		return nil, 0, err
	}
	key := strings.TrimSpace(id)
	for i, row := range rows {
		client, err := decodeClient(row)
		if err != nil {
			continue
		}
		if client.ID == key {
			return client, sheetRow(i), nil
		}
	}
	return nil, 0, store.ErrNotFound
}

func (s *ClientSheet) Get(ctx context.Context, id string) (*models.Client, error) {
	client, _, err := s.locate(ctx, id)
	return client, err
}

func (s *ClientSheet) List(ctx context.Context) ([]*models.Client, error) {
	rows, err := s.rows(ctx, tabClients)
	if err != nil {
		return nil, err
	}
	var clients []*models.Client
	for i, row := range rows {
		client, err := decodeClient(row)
		if err != nil {
			log.Printf("[Sheets] Skipping %s row %d: %v", tabClients, sheetRow(i), err)
			continue
		}
		clients = append(clients, client)
	}
	return clients, nil
}

func (s *ClientSheet) Update(ctx context.Context, client *models.Client) error {
	_, rowNum, err := s.locate(ctx, client.ID)
	if err != nil {
		return err
	}
	return s.overwriteRow(ctx, tabClients, rowNum, encodeClient(client))
}
