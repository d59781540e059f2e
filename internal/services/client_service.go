package services

import (
	"context"
	"strings"

	"hotel-backend/internal/models"
	"hotel-backend/internal/store"
	"hotel-backend/internal/timeutil"
)

type ClientService struct {
	Clients store.ClientStore
}

func NewClientService(clients store.ClientStore) *ClientService {
	return &ClientService{Clients: clients}
}

func (s *ClientService) CreateClient(ctx context.Context, req *models.CreateClientRequest) (*models.Client, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, validationf("client name is required")
	}
	now := timeutil.Now()
	client := &models.Client{
		ID:        newID(clientIDPrefix),
		Name:      strings.TrimSpace(req.Name),
		TagStatus: models.NextTag("", models.EventCreate),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Clients.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) GetClient(ctx context.Context, id string) (*models.Client, error) {
	return s.Clients.Get(ctx, id)
}

// ListClients returns all clients, excluding soft-deleted ones unless
// includeDeleted is set.
func (s *ClientService) ListClients(ctx context.Context, includeDeleted bool) ([]*models.Client, error) {
	clients, err := s.Clients.List(ctx)
	if err != nil {
		return nil, err
	}
	if includeDeleted {
		return clients, nil
	}
	visible := make([]*models.Client, 0, len(clients))
	for _, c := range clients {
		if !c.TagStatus.IsDeleted() {
			visible = append(visible, c)
		}
	}
	return visible, nil
}

func (s *ClientService) UpdateClient(ctx context.Context, id string, req *models.UpdateClientRequest) (*models.Client, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, validationf("client name is required")
	}
	client, err := s.Clients.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	client.Name = strings.TrimSpace(req.Name)
	client.TagStatus = models.NextTag(client.TagStatus, models.EventUpdate)
	client.UpdatedAt = timeutil.Now()
	if err := s.Clients.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// DeleteClient flips the tag; the record stays queryable. Deleting an
// already-deleted client is a no-op.
func (s *ClientService) DeleteClient(ctx context.Context, id string) error {
	client, err := s.Clients.Get(ctx, id)
	if err != nil {
		return err
	}
	if client.TagStatus.IsDeleted() {
		return nil
	}
	client.TagStatus = models.NextTag(client.TagStatus, models.EventDelete)
	client.UpdatedAt = timeutil.Now()
	return s.Clients.Update(ctx, client)
}
