package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"hotel-backend/internal/models"
)

type ClientRepository struct {
	DB *pgxpool.Pool
}

func NewClientRepository(db *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{DB: db}
}

func (r *ClientRepository) Create(ctx context.Context, client *models.Client) error {
	query := `
		INSERT INTO clients (id, name, tag_status)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`
	return r.DB.QueryRow(ctx, query,
		client.ID,
		client.Name,
		client.TagStatus,
	).Scan(&client.CreatedAt, &client.UpdatedAt)
}

func (r *ClientRepository) Get(ctx context.Context, id string) (*models.Client, error) {
	query := `
		SELECT id, name, tag_status, created_at, updated_at
		FROM clients
		WHERE id = $1
	`
	client := &models.Client{}
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&client.ID,
		&client.Name,
		&client.TagStatus,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return client, nil
}

func (r *ClientRepository) List(ctx context.Context) ([]*models.Client, error) {
	query := `
		SELECT id, name, tag_status, created_at, updated_at
		FROM clients
		ORDER BY created_at DESC
	`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []*models.Client
	for rows.Next() {
		client := &models.Client{}
		err := rows.Scan(
			&client.ID,
			&client.Name,
			&client.TagStatus,
			&client.CreatedAt,
			&client.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}
	return clients, nil
}

func (r *ClientRepository) Update(ctx context.Context, client *models.Client) error {
	query := `
		UPDATE clients
		SET name = $2, tag_status = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	return notFound(r.DB.QueryRow(ctx, query,
		client.ID,
		client.Name,
		client.TagStatus,
	).Scan(&client.UpdatedAt))
}
