// Package store defines the persistence contracts the business services are
// written against. Two implementations exist: a PostgreSQL store and a Google
// Sheets store. Soft-delete is a tag flip performed by the caller through
// Update; stores never physically remove rows.
package store

import (
	"context"
	"errors"

	"hotel-backend/internal/models"
)

// ErrNotFound is returned by every store when a natural key does not match a
// record. Handlers translate it to 404.
var ErrNotFound = errors.New("record not found")

type ClientStore interface {
	Create(ctx context.Context, client *models.Client) error
	Get(ctx context.Context, id string) (*models.Client, error)
	List(ctx context.Context) ([]*models.Client, error)
	Update(ctx context.Context, client *models.Client) error
}

type HotelStore interface {
	Create(ctx context.Context, hotel *models.Hotel) error
	Get(ctx context.Context, id string) (*models.Hotel, error)
	List(ctx context.Context) ([]*models.Hotel, error)
	Update(ctx context.Context, hotel *models.Hotel) error
}

type ReservationStore interface {
	Create(ctx context.Context, reservation *models.Reservation) error
	Get(ctx context.Context, reservationNo string) (*models.Reservation, error)
	List(ctx context.Context) ([]*models.Reservation, error)
	Update(ctx context.Context, reservation *models.Reservation) error
}

type PaymentStore interface {
	Create(ctx context.Context, payment *models.Payment) error
	Get(ctx context.Context, id string) (*models.Payment, error)
	List(ctx context.Context) ([]*models.Payment, error)
	ListByReservation(ctx context.Context, reservationNo string) ([]*models.Payment, error)
	Update(ctx context.Context, payment *models.Payment) error
}

type SupplyStore interface {
	Create(ctx context.Context, supply *models.Supply) error
	Get(ctx context.Context, id string) (*models.Supply, error)
	List(ctx context.Context) ([]*models.Supply, error)
	Update(ctx context.Context, supply *models.Supply) error
}

type NusukStore interface {
	// Upsert creates the agreement for the reservation or replaces it in place.
	Upsert(ctx context.Context, agreement *models.NusukAgreement) error
	GetByReservation(ctx context.Context, reservationNo string) (*models.NusukAgreement, error)
	List(ctx context.Context) ([]*models.NusukAgreement, error)
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	Get(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// Stores bundles one implementation of every contract, plus a liveness probe
// for the health endpoint.
type Stores struct {
	Clients      ClientStore
	Hotels       HotelStore
	Reservations ReservationStore
	Payments     PaymentStore
	Supplies     SupplyStore
	Nusuk        NusukStore
	Users        UserStore
	Pinger       Pinger
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
