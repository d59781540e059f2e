package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"hotel-backend/internal/models"
)

type NusukRepository struct {
	DB *pgxpool.Pool
}

func NewNusukRepository(db *pgxpool.Pool) *NusukRepository {
	return &NusukRepository{DB: db}
}

func (r *NusukRepository) Upsert(ctx context.Context, a *models.NusukAgreement) error {
	query := `
		INSERT INTO nusuk_agreements (reservation_no, nusuk_no, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (reservation_no)
		DO UPDATE SET nusuk_no = EXCLUDED.nusuk_no, status = EXCLUDED.status, updated_at = NOW()
		RETURNING updated_at
	`
	return r.DB.QueryRow(ctx, query,
		a.ReservationNo,
		a.NusukNo,
		a.Status,
	).Scan(&a.UpdatedAt)
}

func (r *NusukRepository) GetByReservation(ctx context.Context, reservationNo string) (*models.NusukAgreement, error) {
	query := `
		SELECT reservation_no, nusuk_no, status, updated_at
		FROM nusuk_agreements
		WHERE reservation_no = $1
	`
	a := &models.NusukAgreement{}
	err := r.DB.QueryRow(ctx, query, reservationNo).Scan(
		&a.ReservationNo,
		&a.NusukNo,
		&a.Status,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

func (r *NusukRepository) List(ctx context.Context) ([]*models.NusukAgreement, error) {
	query := `
		SELECT reservation_no, nusuk_no, status, updated_at
		FROM nusuk_agreements
		ORDER BY updated_at DESC
	`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var agreements []*models.NusukAgreement
	for rows.Next() {
		a := &models.NusukAgreement{}
		err := rows.Scan(&a.ReservationNo, &a.NusukNo, &a.Status, &a.UpdatedAt)
		if err != nil {
			return nil, err
		}
		agreements = append(agreements, a)
	}
	return agreements, nil
}
