package sheets

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"hotel-backend/internal/models"
	"hotel-backend/internal/timeutil"
)

// ErrMalformedRow marks a row the codec cannot turn into a record. Listings
// skip such rows; single-record fetches report them as not found.
var ErrMalformedRow = errors.New("malformed row")

// Cell readers. Rows come back ragged and untyped, so every reader tolerates
// a missing or blank cell: blank numeric cells read as 0, blank text as "".

func cellString(row []interface{}, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	switch v := row[i].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func cellFloat(row []interface{}, i int) float64 {
	if i >= len(row) || row[i] == nil {
		return 0
	}
	switch v := row[i].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(v, ",", ""))
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func cellInt(row []interface{}, i int) int {
	return int(cellFloat(row, i))
}

func cellBool(row []interface{}, i int) bool {
	switch strings.ToLower(strings.TrimSpace(cellString(row, i))) {
	case "true", "1", "yes":
		return true
	}
	return false
}

func cellTime(row []interface{}, i int) time.Time {
	s := strings.TrimSpace(cellString(row, i))
	if s == "" {
		return time.Time{}
	}
	t, err := timeutil.ParseInAST(timeutil.DateTimeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func encodeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return timeutil.FormatAST(t, timeutil.DateTimeLayout)
}

// requireKey trims a natural key cell and rejects a blank one.
func requireKey(value, field string) (string, error) {
	key := strings.TrimSpace(value)
	if key == "" {
		return "", fmt.Errorf("%w: blank %s", ErrMalformedRow, field)
	}
	return key, nil
}

// Client tab layout: id, name, created_at, updated_at, tag.

func decodeClient(row []interface{}) (*models.Client, error) {
	id, err := requireKey(cellString(row, 0), "client id")
	if err != nil {
		return nil, err
	}
	return &models.Client{
		ID:        id,
		Name:      cellString(row, 1),
		CreatedAt: cellTime(row, 2),
		UpdatedAt: cellTime(row, 3),
		TagStatus: models.ParseTag(cellString(row, 4)),
	}, nil
}

func encodeClient(c *models.Client) []interface{} {
	return []interface{}{
		c.ID,
		c.Name,
		encodeTime(c.CreatedAt),
		encodeTime(c.UpdatedAt),
		string(c.TagStatus),
	}
}

// Hotel tab layout: id, name, city, created_at, updated_at, tag.

func decodeHotel(row []interface{}) (*models.Hotel, error) {
	id, err := requireKey(cellString(row, 0), "hotel id")
	if err != nil {
		return nil, err
	}
	return &models.Hotel{
		ID:        id,
		Name:      cellString(row, 1),
		City:      cellString(row, 2),
		CreatedAt: cellTime(row, 3),
		UpdatedAt: cellTime(row, 4),
		TagStatus: models.ParseTag(cellString(row, 5)),
	}, nil
}

func encodeHotel(h *models.Hotel) []interface{} {
	return []interface{}{
		h.ID,
		h.Name,
		h.City,
		encodeTime(h.CreatedAt),
		encodeTime(h.UpdatedAt),
		string(h.TagStatus),
	}
}

// Reservation tab layout: reservation_no, client_id, hotel_id, checkin,
// checkout, stay_nights, double qty/rate, triple qty/rate, quad qty/rate,
// extra qty/rate, meal_plan, total_amount, paid_amount, status_booking,
// status_payment, deadline_payment, created_at, updated_at, tag.

func decodeReservation(row []interface{}) (*models.Reservation, error) {
	no, err := requireKey(cellString(row, 0), "reservation no")
	if err != nil {
		return nil, err
	}
	return &models.Reservation{
		ReservationNo:   no,
		ClientID:        cellString(row, 1),
		HotelID:         cellString(row, 2),
		CheckIn:         cellString(row, 3),
		CheckOut:        cellString(row, 4),
		StayNights:      cellInt(row, 5),
		RoomDoubleQty:   cellInt(row, 6),
		RoomDoubleRate:  cellFloat(row, 7),
		RoomTripleQty:   cellInt(row, 8),
		RoomTripleRate:  cellFloat(row, 9),
		RoomQuadQty:     cellInt(row, 10),
		RoomQuadRate:    cellFloat(row, 11),
		RoomExtraQty:    cellInt(row, 12),
		RoomExtraRate:   cellFloat(row, 13),
		MealPlan:        cellString(row, 14),
		TotalAmount:     cellFloat(row, 15),
		PaidAmount:      cellFloat(row, 16),
		StatusBooking:   cellString(row, 17),
		StatusPayment:   cellString(row, 18),
		DeadlinePayment: cellString(row, 19),
		CreatedAt:       cellTime(row, 20),
		UpdatedAt:       cellTime(row, 21),
		TagStatus:       models.ParseTag(cellString(row, 22)),
	}, nil
}

func encodeReservation(r *models.Reservation) []interface{} {
	return []interface{}{
		r.ReservationNo,
		r.ClientID,
		r.HotelID,
		r.CheckIn,
		r.CheckOut,
		r.StayNights,
		r.RoomDoubleQty,
		r.RoomDoubleRate,
		r.RoomTripleQty,
		r.RoomTripleRate,
		r.RoomQuadQty,
		r.RoomQuadRate,
		r.RoomExtraQty,
		r.RoomExtraRate,
		r.MealPlan,
		r.TotalAmount,
		r.PaidAmount,
		r.StatusBooking,
		r.StatusPayment,
		r.DeadlinePayment,
		encodeTime(r.CreatedAt),
		encodeTime(r.UpdatedAt),
		string(r.TagStatus),
	}
}

// Payment tab layout: id, client_id, amount, exchange_rate, amount_sar,
// detail, date, proof_file_url, reservation_no, created_at, updated_at, tag.

func decodePayment(row []interface{}) (*models.Payment, error) {
	id, err := requireKey(cellString(row, 0), "payment id")
	if err != nil {
		return nil, err
	}
	return &models.Payment{
		ID:            id,
		ClientID:      cellString(row, 1),
		Amount:        cellFloat(row, 2),
		ExchangeRate:  cellFloat(row, 3),
		AmountSAR:     cellFloat(row, 4),
		Detail:        cellString(row, 5),
		Date:          cellString(row, 6),
		ProofFileURL:  cellString(row, 7),
		ReservationNo: cellString(row, 8),
		CreatedAt:     cellTime(row, 9),
		UpdatedAt:     cellTime(row, 10),
		TagStatus:     models.ParseTag(cellString(row, 11)),
	}, nil
}

func encodePayment(p *models.Payment) []interface{} {
	return []interface{}{
		p.ID,
		p.ClientID,
		p.Amount,
		p.ExchangeRate,
		p.AmountSAR,
		p.Detail,
		p.Date,
		p.ProofFileURL,
		p.ReservationNo,
		encodeTime(p.CreatedAt),
		encodeTime(p.UpdatedAt),
		string(p.TagStatus),
	}
}

// Supply tab layout: id, vendor, reservation_no, hotel_id, checkin, checkout,
// stay_nights, meal, double qty/rate, triple qty/rate, quad qty/rate,
// extra qty/rate, total_amount, proof_file_url, created_at, updated_at, tag.

func decodeSupply(row []interface{}) (*models.Supply, error) {
	id, err := requireKey(cellString(row, 0), "supply id")
	if err != nil {
		return nil, err
	}
	return &models.Supply{
		ID:             id,
		Vendor:         cellString(row, 1),
		ReservationNo:  cellString(row, 2),
		HotelID:        cellString(row, 3),
		CheckIn:        cellString(row, 4),
		CheckOut:       cellString(row, 5),
		StayNights:     cellInt(row, 6),
		Meal:           cellString(row, 7),
		RoomDoubleQty:  cellInt(row, 8),
		RoomDoubleRate: cellFloat(row, 9),
		RoomTripleQty:  cellInt(row, 10),
		RoomTripleRate: cellFloat(row, 11),
		RoomQuadQty:    cellInt(row, 12),
		RoomQuadRate:   cellFloat(row, 13),
		RoomExtraQty:   cellInt(row, 14),
		RoomExtraRate:  cellFloat(row, 15),
		TotalAmount:    cellFloat(row, 16),
		ProofFileURL:   cellString(row, 17),
		CreatedAt:      cellTime(row, 18),
		UpdatedAt:      cellTime(row, 19),
		TagStatus:      models.ParseTag(cellString(row, 20)),
	}, nil
}

func encodeSupply(s *models.Supply) []interface{} {
	return []interface{}{
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
		encodeTime(s.CreatedAt),
		encodeTime(s.UpdatedAt),
		string(s.TagStatus),
	}
}

// Nusuk tab layout: reservation_no, nusuk_no, status, updated_at.

func decodeNusuk(row []interface{}) (*models.NusukAgreement, error) {
	no, err := requireKey(cellString(row, 0), "reservation no")
	if err != nil {
		return nil, err
	}
	return &models.NusukAgreement{
		ReservationNo: no,
		NusukNo:       cellString(row, 1),
		Status:        cellString(row, 2),
		UpdatedAt:     cellTime(row, 3),
	}, nil
}

func encodeNusuk(a *models.NusukAgreement) []interface{} {
	return []interface{}{
		a.ReservationNo,
		a.NusukNo,
		a.Status,
		encodeTime(a.UpdatedAt),
	}
}

// User tab layout: id, name, email, password_hash, role, is_active,
// created_at, updated_at, tag.

func decodeUser(row []interface{}) (*models.User, error) {
	id, err := requireKey(cellString(row, 0), "user id")
	if err != nil {
		return nil, err
	}
	return &models.User{
		ID:           id,
		Name:         cellString(row, 1),
		Email:        cellString(row, 2),
		PasswordHash: cellString(row, 3),
		Role:         cellString(row, 4),
		IsActive:     cellBool(row, 5),
		CreatedAt:    cellTime(row, 6),
		UpdatedAt:    cellTime(row, 7),
	}, nil
}

func encodeUser(u *models.User) []interface{} {
	return []interface{}{
		u.ID,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.Role,
		strconv.FormatBool(u.IsActive),
		encodeTime(u.CreatedAt),
		encodeTime(u.UpdatedAt),
		string(models.TagNew),
	}
}
