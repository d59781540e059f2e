package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"hotel-backend/internal/models"
)

type ReservationRepository struct {
	DB *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

const reservationColumns = `
	reservation_no, client_id, hotel_id,
	to_char(checkin, 'YYYY-MM-DD'), to_char(checkout, 'YYYY-MM-DD'), stay_nights,
	room_double_qty, room_double_rate, room_triple_qty, room_triple_rate,
	room_quad_qty, room_quad_rate, room_extra_qty, room_extra_rate,
	meal_plan, total_amount, paid_amount, status_booking, status_payment,
	COALESCE(to_char(deadline_payment, 'YYYY-MM-DD'), ''), tag_status, created_at, updated_at
`

func (r *ReservationRepository) scan(row interface{ Scan(...any) error }) (*models.Reservation, error) {
	res := &models.Reservation{}
	err := row.Scan(
		&res.ReservationNo,
		&res.ClientID,
		&res.HotelID,
		&res.CheckIn,
		&res.CheckOut,
		&res.StayNights,
		&res.RoomDoubleQty,
		&res.RoomDoubleRate,
		&res.RoomTripleQty,
		&res.RoomTripleRate,
		&res.RoomQuadQty,
		&res.RoomQuadRate,
		&res.RoomExtraQty,
		&res.RoomExtraRate,
		&res.MealPlan,
		&res.TotalAmount,
		&res.PaidAmount,
		&res.StatusBooking,
		&res.StatusPayment,
		&res.DeadlinePayment,
		&res.TagStatus,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *ReservationRepository) Create(ctx context.Context, res *models.Reservation) error {
	query := `
		INSERT INTO reservations (
			reservation_no, client_id, hotel_id, checkin, checkout, stay_nights,
			room_double_qty, room_double_rate, room_triple_qty, room_triple_rate,
			room_quad_qty, room_quad_rate, room_extra_qty, room_extra_rate,
			meal_plan, total_amount, paid_amount, status_booking, status_payment,
			deadline_payment, tag_status
		)
		VALUES ($1, $2, $3, $4::date, $5::date, $6, $7, $8, $9, $10, $11, $12,
		        $13, $14, $15, $16, $17, $18, $19, NULLIF($20, '')::date, $21)
		RETURNING created_at, updated_at
	`
	return r.DB.QueryRow(ctx, query,
		res.ReservationNo,
		res.ClientID,
		res.HotelID,
		res.CheckIn,
		res.CheckOut,
		res.StayNights,
		res.RoomDoubleQty,
		res.RoomDoubleRate,
		res.RoomTripleQty,
		res.RoomTripleRate,
		res.RoomQuadQty,
		res.RoomQuadRate,
		res.RoomExtraQty,
		res.RoomExtraRate,
		res.MealPlan,
		res.TotalAmount,
		res.PaidAmount,
		res.StatusBooking,
		res.StatusPayment,
		res.DeadlinePayment,
		res.TagStatus,
	).Scan(&res.CreatedAt, &res.UpdatedAt)
}

func (r *ReservationRepository) Get(ctx context.Context, reservationNo string) (*models.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE reservation_no = $1`
	res, err := r.scan(r.DB.QueryRow(ctx, query, reservationNo))
	if err != nil {
		return nil, notFound(err)
	}
	return res, nil
}

func (r *ReservationRepository) List(ctx context.Context) ([]*models.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations ORDER BY created_at DESC`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []*models.Reservation
	for rows.Next() {
		res, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *models.Reservation) error {
	query := `
		UPDATE reservations
		SET client_id = $2, hotel_id = $3, checkin = $4::date, checkout = $5::date,
		    stay_nights = $6, room_double_qty = $7, room_double_rate = $8,
		    room_triple_qty = $9, room_triple_rate = $10, room_quad_qty = $11,
		    room_quad_rate = $12, room_extra_qty = $13, room_extra_rate = $14,
		    meal_plan = $15, total_amount = $16, paid_amount = $17,
		    status_booking = $18, status_payment = $19,
		    deadline_payment = NULLIF($20, '')::date, tag_status = $21,
		    updated_at = NOW()
		WHERE reservation_no = $1
		RETURNING updated_at
	`
	return notFound(r.DB.QueryRow(ctx, query,
		res.ReservationNo,
		res.ClientID,
		res.HotelID,
		res.CheckIn,
		res.CheckOut,
		res.StayNights,
		res.RoomDoubleQty,
		res.RoomDoubleRate,
		res.RoomTripleQty,
		res.RoomTripleRate,
		res.RoomQuadQty,
		res.RoomQuadRate,
		res.RoomExtraQty,
		res.RoomExtraRate,
		res.MealPlan,
		res.TotalAmount,
		res.PaidAmount,
		res.StatusBooking,
		res.StatusPayment,
		res.DeadlinePayment,
		res.TagStatus,
	).Scan(&res.UpdatedAt))
}
