package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"hotel-backend/internal/models"
)

type PaymentRepository struct {
	DB *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

const paymentColumns = `
	id, client_id, amount, exchange_rate, amount_sar, COALESCE(detail, ''),
	to_char(date, 'YYYY-MM-DD'), COALESCE(proof_file_url, ''),
	COALESCE(reservation_no, ''), tag_status, created_at, updated_at
`

func (r *PaymentRepository) scan(row interface{ Scan(...any) error }) (*models.Payment, error) {
	p := &models.Payment{}
	err := row.Scan(
		&p.ID,
		&p.ClientID,
		&p.Amount,
		&p.ExchangeRate,
		&p.AmountSAR,
		&p.Detail,
		&p.Date,
		&p.ProofFileURL,
		&p.ReservationNo,
		&p.TagStatus,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PaymentRepository) Create(ctx context.Context, p *models.Payment) error {
	query := `
		INSERT INTO payments (id, client_id, amount, exchange_rate, amount_sar,
		                      detail, date, proof_file_url, reservation_no, tag_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7::date, $8, NULLIF($9, ''), $10)
		RETURNING created_at, updated_at
	`
	return r.DB.QueryRow(ctx, query,
		p.ID,
		p.ClientID,
		p.Amount,
		p.ExchangeRate,
		p.AmountSAR,
		p.Detail,
		p.Date,
		p.ProofFileURL,
		p.ReservationNo,
		p.TagStatus,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *PaymentRepository) Get(ctx context.Context, id string) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	p, err := r.scan(r.DB.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

func (r *PaymentRepository) List(ctx context.Context) ([]*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY date DESC, created_at DESC`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		p, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, nil
}

func (r *PaymentRepository) ListByReservation(ctx context.Context, reservationNo string) ([]*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE reservation_no = $1 ORDER BY date DESC, created_at DESC`
	rows, err := r.DB.Query(ctx, query, reservationNo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		p, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, nil
}

func (r *PaymentRepository) Update(ctx context.Context, p *models.Payment) error {
	query := `
		UPDATE payments
		SET client_id = $2, amount = $3, exchange_rate = $4, amount_sar = $5,
		    detail = $6, date = $7::date, proof_file_url = $8,
		    reservation_no = NULLIF($9, ''), tag_status = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	return notFound(r.DB.QueryRow(ctx, query,
		p.ID,
		p.ClientID,
		p.Amount,
		p.ExchangeRate,
		p.AmountSAR,
		p.Detail,
		p.Date,
		p.ProofFileURL,
		p.ReservationNo,
		p.TagStatus,
	).Scan(&p.UpdatedAt))
}
