// Package postgres implements the store contracts on PostgreSQL via pgx.
// Column-targeted updates, parameterized queries, soft-delete as a tag column.
package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hotel-backend/internal/store"
)

// NewStores wires every repository onto one connection pool.
func NewStores(pool *pgxpool.Pool) store.Stores {
	return store.Stores{
		Clients:      NewClientRepository(pool),
		Hotels:       NewHotelRepository(pool),
		Reservations: NewReservationRepository(pool),
		Payments:     NewPaymentRepository(pool),
		Supplies:     NewSupplyRepository(pool),
		Nusuk:        NewNusukRepository(pool),
		Users:        NewUserRepository(pool),
		Pinger:       pool,
	}
}

// notFound maps pgx's no-rows sentinel to the store-level one.
func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}
