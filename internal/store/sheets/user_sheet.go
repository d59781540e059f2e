package sheets

import (
	"context"
	"log"
	"strings"

	"hotel-backend/internal/models"
	"hotel-backend/internal/store"
)

type UserSheet struct {
	*Store
}

func (s *UserSheet) Create(ctx context.Context, user *models.User) error {
	return s.appendRow(ctx, tabUsers, encodeUser(user))
}

func (s *UserSheet) locate(ctx context.Context, match func(*models.User) bool) (*models.User, int, error) {
	rows, err := s.rows(ctx, tabUsers)
	if err != nil {
		return nil, 0, err
	}
	for i, row := range rows {
		user, err := decodeUser(row)
		if err != nil {
			continue
		}
		if match(user) {
			return user, sheetRow(i), nil
		}
	}
	return nil, 0, store.ErrNotFound
}

func (s *UserSheet) Get(ctx context.Context, id string) (*models.User, error) {
	key := strings.TrimSpace(id)
	user, _, err := s.locate(ctx, func(u *models.User) bool { return u.ID == key })
	return user, err
}

func (s *UserSheet) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	key := strings.ToLower(strings.TrimSpace(email))
	user, _, err := s.locate(ctx, func(u *models.User) bool { return strings.ToLower(u.Email) == key })
	return user, err
}

func (s *UserSheet) List(ctx context.Context) ([]*models.User, error) {
	rows, err := s.rows(ctx, tabUsers)
	if err != nil {
		return nil, err
	}
	var users []*models.User
	for i, row := range rows {
		user, err := decodeUser(row)
		if err != nil {
			log.Printf("[Sheets] Skipping %s row %d: %v", tabUsers, sheetRow(i), err)
			continue
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *UserSheet) Update(ctx context.Context, user *models.User) error {
	key := strings.TrimSpace(user.ID)
	_, rowNum, err := s.locate(ctx, func(u *models.User) bool { return u.ID == key })
	if err != nil {
		return err
	}
	return s.overwriteRow(ctx, tabUsers, rowNum, encodeUser(user))
}
