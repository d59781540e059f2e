package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"hotel-backend/internal/models"
)

type HotelRepository struct {
	DB *pgxpool.Pool
}

func NewHotelRepository(db *pgxpool.Pool) *HotelRepository {
	return &HotelRepository{DB: db}
}

func (r *HotelRepository) Create(ctx context.Context, hotel *models.Hotel) error {
	query := `
		INSERT INTO hotels (id, name, city, tag_status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`
	return r.DB.QueryRow(ctx, query,
		hotel.ID,
		hotel.Name,
		hotel.City,
		hotel.TagStatus,
	).Scan(&hotel.CreatedAt, &hotel.UpdatedAt)
}

func (r *HotelRepository) Get(ctx context.Context, id string) (*models.Hotel, error) {
	query := `
		SELECT id, name, city, tag_status, created_at, updated_at
		FROM hotels
		WHERE id = $1
	`
	hotel := &models.Hotel{}
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&hotel.ID,
		&hotel.Name,
		&hotel.City,
		&hotel.TagStatus,
		&hotel.CreatedAt,
		&hotel.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return hotel, nil
}

func (r *HotelRepository) List(ctx context.Context) ([]*models.Hotel, error) {
	query := `
		SELECT id, name, city, tag_status, created_at, updated_at
		FROM hotels
		ORDER BY created_at DESC
	`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hotels []*models.Hotel
	for rows.Next() {
		hotel := &models.Hotel{}
		err := rows.Scan(
			&hotel.ID,
			&hotel.Name,
			&hotel.City,
			&hotel.TagStatus,
			&hotel.CreatedAt,
			&hotel.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		hotels = append(hotels, hotel)
	}
	return hotels, nil
}

func (r *HotelRepository) Update(ctx context.Context, hotel *models.Hotel) error {
	query := `
		UPDATE hotels
		SET name = $2, city = $3, tag_status = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	return notFound(r.DB.QueryRow(ctx, query,
		hotel.ID,
		hotel.Name,
		hotel.City,
		hotel.TagStatus,
	).Scan(&hotel.UpdatedAt))
}
