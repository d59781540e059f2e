package services

import (
	"context"

	"hotel-backend/internal/models"
	"hotel-backend/internal/store"
)

// In-memory stores backing the service tests. Maps keyed by the same natural
// keys the real stores use; insertion order is preserved for List.

type stubClientStore struct {
	order   []string
	clients map[string]*models.Client
}

func newStubClientStore() *stubClientStore {
	return &stubClientStore{clients: map[string]*models.Client{}}
}

func (s *stubClientStore) Create(_ context.Context, c *models.Client) error {
	cp := *c
	s.clients[c.ID] = &cp
	s.order = append(s.order, c.ID)
	return nil
}

func (s *stubClientStore) Get(_ context.Context, id string) (*models.Client, error) {
	c, ok := s.clients[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *stubClientStore) List(_ context.Context) ([]*models.Client, error) {
	out := make([]*models.Client, 0, len(s.order))
	for _, id := range s.order {
		cp := *s.clients[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (s *stubClientStore) Update(_ context.Context, c *models.Client) error {
	if _, ok := s.clients[c.ID]; !ok {
		return store.ErrNotFound
	}
	cp := *c
	s.clients[c.ID] = &cp
	return nil
}

type stubHotelStore struct {
	order  []string
	hotels map[string]*models.Hotel
}

func newStubHotelStore() *stubHotelStore {
	return &stubHotelStore{hotels: map[string]*models.Hotel{}}
}

func (s *stubHotelStore) Create(_ context.Context, h *models.Hotel) error {
	cp := *h
	s.hotels[h.ID] = &cp
	s.order = append(s.order, h.ID)
	return nil
}

func (s *stubHotelStore) Get(_ context.Context, id string) (*models.Hotel, error) {
	h, ok := s.hotels[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *h
	return &cp, nil
}

func (s *stubHotelStore) List(_ context.Context) ([]*models.Hotel, error) {
	out := make([]*models.Hotel, 0, len(s.order))
	for _, id := range s.order {
		cp := *s.hotels[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (s *stubHotelStore) Update(_ context.Context, h *models.Hotel) error {
	if _, ok := s.hotels[h.ID]; !ok {
		return store.ErrNotFound
	}
	cp := *h
	s.hotels[h.ID] = &cp
	return nil
}

type stubReservationStore struct {
	order        []string
	reservations map[string]*models.Reservation
}

func newStubReservationStore() *stubReservationStore {
	return &stubReservationStore{reservations: map[string]*models.Reservation{}}
}

func (s *stubReservationStore) Create(_ context.Context, r *models.Reservation) error {
	cp := *r
	s.reservations[r.ReservationNo] = &cp
	s.order = append(s.order, r.ReservationNo)
	return nil
}

func (s *stubReservationStore) Get(_ context.Context, no string) (*models.Reservation, error) {
	r, ok := s.reservations[no]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *stubReservationStore) List(_ context.Context) ([]*models.Reservation, error) {
	out := make([]*models.Reservation, 0, len(s.order))
	for _, no := range s.order {
		cp := *s.reservations[no]
		out = append(out, &cp)
	}
	return out, nil
}

func (s *stubReservationStore) Update(_ context.Context, r *models.Reservation) error {
	if _, ok := s.reservations[r.ReservationNo]; !ok {
		return store.ErrNotFound
	}
	cp := *r
	s.reservations[r.ReservationNo] = &cp
	return nil
}

type stubPaymentStore struct {
	order    []string
	payments map[string]*models.Payment
}

func newStubPaymentStore() *stubPaymentStore {
	return &stubPaymentStore{payments: map[string]*models.Payment{}}
}

func (s *stubPaymentStore) Create(_ context.Context, p *models.Payment) error {
	cp := *p
	s.payments[p.ID] = &cp
	s.order = append(s.order, p.ID)
	return nil
}

func (s *stubPaymentStore) Get(_ context.Context, id string) (*models.Payment, error) {
	p, ok := s.payments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *stubPaymentStore) List(_ context.Context) ([]*models.Payment, error) {
	out := make([]*models.Payment, 0, len(s.order))
	for _, id := range s.order {
		cp := *s.payments[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (s *stubPaymentStore) ListByReservation(_ context.Context, no string) ([]*models.Payment, error) {
	var out []*models.Payment
	for _, id := range s.order {
		if s.payments[id].ReservationNo == no {
			cp := *s.payments[id]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *stubPaymentStore) Update(_ context.Context, p *models.Payment) error {
	if _, ok := s.payments[p.ID]; !ok {
		return store.ErrNotFound
	}
	cp := *p
	s.payments[p.ID] = &cp
	return nil
}

type stubSupplyStore struct {
	order    []string
	supplies map[string]*models.Supply
}

func newStubSupplyStore() *stubSupplyStore {
	return &stubSupplyStore{supplies: map[string]*models.Supply{}}
}

func (s *stubSupplyStore) Create(_ context.Context, sp *models.Supply) error {
	cp := *sp
	s.supplies[sp.ID] = &cp
	s.order = append(s.order, sp.ID)
	return nil
}

func (s *stubSupplyStore) Get(_ context.Context, id string) (*models.Supply, error) {
	sp, ok := s.supplies[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *sp
	return &cp, nil
}

func (s *stubSupplyStore) List(_ context.Context) ([]*models.Supply, error) {
	out := make([]*models.Supply, 0, len(s.order))
	for _, id := range s.order {
		cp := *s.supplies[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (s *stubSupplyStore) Update(_ context.Context, sp *models.Supply) error {
	if _, ok := s.supplies[sp.ID]; !ok {
		return store.ErrNotFound
	}
	cp := *sp
	s.supplies[sp.ID] = &cp
	return nil
}

type stubNusukStore struct {
	order      []string
	agreements map[string]*models.NusukAgreement
}

func newStubNusukStore() *stubNusukStore {
	return &stubNusukStore{agreements: map[string]*models.NusukAgreement{}}
}

func (s *stubNusukStore) Upsert(_ context.Context, a *models.NusukAgreement) error {
	if _, ok := s.agreements[a.ReservationNo]; !ok {
		s.order = append(s.order, a.ReservationNo)
	}
	cp := *a
	s.agreements[a.ReservationNo] = &cp
	return nil
}

func (s *stubNusukStore) GetByReservation(_ context.Context, no string) (*models.NusukAgreement, error) {
	a, ok := s.agreements[no]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (s *stubNusukStore) List(_ context.Context) ([]*models.NusukAgreement, error) {
	out := make([]*models.NusukAgreement, 0, len(s.order))
	for _, no := range s.order {
		cp := *s.agreements[no]
		out = append(out, &cp)
	}
	return out, nil
}

type stubUserStore struct {
	order []string
	users map[string]*models.User
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{users: map[string]*models.User{}}
}

func (s *stubUserStore) Create(_ context.Context, u *models.User) error {
	cp := *u
	s.users[u.ID] = &cp
	s.order = append(s.order, u.ID)
	return nil
}

func (s *stubUserStore) Get(_ context.Context, id string) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *stubUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, id := range s.order {
		if s.users[id].Email == email {
			cp := *s.users[id]
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *stubUserStore) List(_ context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(s.order))
	for _, id := range s.order {
		cp := *s.users[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (s *stubUserStore) Update(_ context.Context, u *models.User) error {
	if _, ok := s.users[u.ID]; !ok {
		return store.ErrNotFound
	}
	cp := *u
	s.users[u.ID] = &cp
	return nil
}
