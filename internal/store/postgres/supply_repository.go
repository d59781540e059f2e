package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"hotel-backend/internal/models"
)

type SupplyRepository struct {
	DB *pgxpool.Pool
}

func NewSupplyRepository(db *pgxpool.Pool) *SupplyRepository {
	return &SupplyRepository{DB: db}
}

const supplyColumns = `
	id, vendor, reservation_no, hotel_id,
	to_char(checkin, 'YYYY-MM-DD'), to_char(checkout, 'YYYY-MM-DD'), stay_nights, meal,
	room_double_qty, room_double_rate, room_triple_qty, room_triple_rate,
	room_quad_qty, room_quad_rate, room_extra_qty, room_extra_rate,
	total_amount, COALESCE(proof_file_url, ''), tag_status, created_at, updated_at
`

func (r *SupplyRepository) scan(row interface{ Scan(...any) error }) (*models.Supply, error) {
	s := &models.Supply{}
	err := row.Scan(
		&s.ID,
		&s.Vendor,
		&s.ReservationNo,
		&s.HotelID,
		&s.CheckIn,
		&s.CheckOut,
		&s.StayNights,
		&s.Meal,
		&s.RoomDoubleQty,
		&s.RoomDoubleRate,
		&s.RoomTripleQty,
		&s.RoomTripleRate,
		&s.RoomQuadQty,
		&s.RoomQuadRate,
		&s.RoomExtraQty,
		&s.RoomExtraRate,
		&s.TotalAmount,
		&s.ProofFileURL,
		&s.TagStatus,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SupplyRepository) Create(ctx context.Context, s *models.Supply) error {
	query := `
		INSERT INTO supplies (
			id, vendor, reservation_no, hotel_id, checkin, checkout, stay_nights,
			meal, room_double_qty, room_double_rate, room_triple_qty, room_triple_rate,
			room_quad_qty, room_quad_rate, room_extra_qty, room_extra_rate,
			total_amount, proof_file_url, tag_status
		)
		VALUES ($1, $2, $3, $4, $5::date, $6::date, $7, $8, $9, $10, $11, $12,
		        $13, $14, $15, $16, $17, $18, $19)
		RETURNING created_at, updated_at
	`
	return r.DB.QueryRow(ctx, query,
		s.ID,
		s.Vendor,
		s.ReservationNo,
		s.HotelID,
		s.CheckIn,
		s.CheckOut,
		s.StayNights,
		s.Meal,
		s.RoomDoubleQty,
		s.RoomDoubleRate,
		s.RoomTripleQty,
		s.RoomTripleRate,
		s.RoomQuadQty,
		s.RoomQuadRate,
		s.RoomExtraQty,
		s.RoomExtraRate,
		s.TotalAmount,
		s.ProofFileURL,
		s.TagStatus,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
}

func (r *SupplyRepository) Get(ctx context.Context, id string) (*models.Supply, error) {
	query := `SELECT ` + supplyColumns + ` FROM supplies WHERE id = $1`
	s, err := r.scan(r.DB.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

func (r *SupplyRepository) List(ctx context.Context) ([]*models.Supply, error) {
	query := `SELECT ` + supplyColumns + ` FROM supplies ORDER BY created_at DESC`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var supplies []*models.Supply
	for rows.Next() {
		s, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		supplies = append(supplies, s)
	}
	return supplies, nil
}

func (r *SupplyRepository) Update(ctx context.Context, s *models.Supply) error {
	query := `
		UPDATE supplies
		SET vendor = $2, reservation_no = $3, hotel_id = $4, checkin = $5::date,
		    checkout = $6::date, stay_nights = $7, meal = $8,
		    room_double_qty = $9, room_double_rate = $10,
		    room_triple_qty = $11, room_triple_rate = $12,
		    room_quad_qty = $13, room_quad_rate = $14,
		    room_extra_qty = $15, room_extra_rate = $16,
		    total_amount = $17, proof_file_url = $18, tag_status = $19,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	return notFound(r.DB.QueryRow(ctx, query,
		s.ID,
		s.Vendor,
		s.ReservationNo,
		s.HotelID,
		s.CheckIn,
		s.CheckOut,
		s.StayNights,
		s.Meal,
		s.RoomDoubleQty,
		s.RoomDoubleRate,
		s.RoomTripleQty,
		s.RoomTripleRate,
		s.RoomQuadQty,
		s.RoomQuadRate,
		s.RoomExtraQty,
		s.RoomExtraRate,
		s.TotalAmount,
		s.ProofFileURL,
		s.TagStatus,
	).Scan(&s.UpdatedAt))
}
